package types

import (
	"slices"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Assembly is the mutable working state of an entity under construction.
// Layers fill it in; Seal freezes it.
type Assembly struct {
	ID         string
	Kind       Kind
	Make       string
	Model      string
	Year       int
	Passengers *int
	Capacity   *decimal.Decimal

	// Lineage records each layer as its initializer completes.
	Lineage []Capability
}

// Complete appends c to the lineage.
func (a *Assembly) Complete(c Capability) {
	a.Lineage = append(a.Lineage, c)
}

// Seal returns an immutable Entity holding a copy of the assembled values.
func (a *Assembly) Seal() *Entity {
	e := &Entity{
		id:      a.ID,
		kind:    a.Kind,
		make:    a.Make,
		model:   a.Model,
		year:    a.Year,
		lineage: slices.Clone(a.Lineage),
	}
	if a.Passengers != nil {
		p := *a.Passengers
		e.passengers = &p
	}
	if a.Capacity != nil {
		c := *a.Capacity
		e.capacity = &c
	}
	return e
}

// Entity is a fully assembled vehicle. It has no setters; every accessor
// returns a copy.
type Entity struct {
	id         string
	kind       Kind
	make       string
	model      string
	year       int
	passengers *int
	capacity   *decimal.Decimal
	lineage    []Capability
}

// ID returns the UUID v7 assigned at construction.
func (e *Entity) ID() string { return e.id }

// Kind returns the kind resolved from the capability set.
func (e *Entity) Kind() Kind { return e.kind }

// Make returns the manufacturer, e.g. "Toyota".
func (e *Entity) Make() string { return e.make }

// Model returns the model name, e.g. "Hilux".
func (e *Entity) Model() string { return e.model }

// Year returns the model year. Always positive.
func (e *Entity) Year() int { return e.year }

// Passengers returns the seat count. ok is false when the entity has no
// passenger capability.
func (e *Entity) Passengers() (n int, ok bool) {
	if e.passengers == nil {
		return 0, false
	}
	return *e.passengers, true
}

// Capacity returns the load tolerance in tons. ok is false when the entity
// has no cargo capability.
func (e *Entity) Capacity() (c decimal.Decimal, ok bool) {
	if e.capacity == nil {
		return decimal.Zero, false
	}
	return *e.capacity, true
}

// Has reports whether layer c took part in construction.
func (e *Entity) Has(c Capability) bool {
	return slices.Contains(e.lineage, c)
}

// Lineage returns the layers in the order their initializers completed.
// Base is always first.
func (e *Entity) Lineage() []Capability {
	return slices.Clone(e.lineage)
}

// entityJSON is the wire shape of an Entity.
type entityJSON struct {
	ID         string           `json:"id"`
	Kind       Kind             `json:"kind"`
	Make       string           `json:"make"`
	Model      string           `json:"model"`
	Year       int              `json:"year"`
	Passengers *int             `json:"passengers,omitempty"`
	Capacity   *decimal.Decimal `json:"capacity,omitempty"`
	Lineage    []Capability     `json:"lineage"`
}

// MarshalJSON encodes the entity with its optional capability fields
// omitted when absent.
func (e *Entity) MarshalJSON() ([]byte, error) {
	return json.Marshal(entityJSON{
		ID:         e.id,
		Kind:       e.kind,
		Make:       e.make,
		Model:      e.model,
		Year:       e.year,
		Passengers: e.passengers,
		Capacity:   e.capacity,
		Lineage:    e.lineage,
	})
}
