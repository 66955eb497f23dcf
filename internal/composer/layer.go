package composer

import (
	"fmt"

	"github.com/mesh-intelligence/motorpool/pkg/types"
)

// next continues construction with the fields the current layer left over.
type next func(remaining types.Fields) error

// layer is one link in a linearization. init must take its own fields out of
// remaining, call forward exactly once with the rest, and only then assign
// its attributes and mark itself complete.
type layer interface {
	capability() types.Capability
	init(a *types.Assembly, remaining types.Fields, forward next) error
	describe(e *types.Entity) string
}

var layers = map[types.Capability]layer{
	types.CapabilityBase:      baseLayer{},
	types.CapabilityPassenger: passengerLayer{},
	types.CapabilityCargo:     cargoLayer{},
}

type baseLayer struct{}

func (baseLayer) capability() types.Capability { return types.CapabilityBase }

func (baseLayer) init(a *types.Assembly, remaining types.Fields, forward next) error {
	mk, err := takeString(remaining, types.FieldMake, types.CapabilityBase)
	if err != nil {
		return err
	}
	model, err := takeString(remaining, types.FieldModel, types.CapabilityBase)
	if err != nil {
		return err
	}
	year, err := takeInt(remaining, types.FieldYear, types.CapabilityBase, 1)
	if err != nil {
		return err
	}
	if err := forward(remaining); err != nil {
		return err
	}
	a.Make = mk
	a.Model = model
	a.Year = year
	a.Complete(types.CapabilityBase)
	return nil
}

func (baseLayer) describe(e *types.Entity) string {
	return fmt.Sprintf("%d %s %s", e.Year(), e.Make(), e.Model())
}

type passengerLayer struct{}

func (passengerLayer) capability() types.Capability { return types.CapabilityPassenger }

func (passengerLayer) init(a *types.Assembly, remaining types.Fields, forward next) error {
	n, err := takeInt(remaining, types.FieldPassengers, types.CapabilityPassenger, 0)
	if err != nil {
		return err
	}
	if err := forward(remaining); err != nil {
		return err
	}
	a.Passengers = &n
	a.Complete(types.CapabilityPassenger)
	return nil
}

func (passengerLayer) describe(e *types.Entity) string {
	n, _ := e.Passengers()
	return fmt.Sprintf("%d passengers", n)
}

type cargoLayer struct{}

func (cargoLayer) capability() types.Capability { return types.CapabilityCargo }

func (cargoLayer) init(a *types.Assembly, remaining types.Fields, forward next) error {
	c, err := takeDecimal(remaining, types.FieldCapacity, types.CapabilityCargo)
	if err != nil {
		return err
	}
	if err := forward(remaining); err != nil {
		return err
	}
	a.Capacity = &c
	a.Complete(types.CapabilityCargo)
	return nil
}

func (cargoLayer) describe(e *types.Entity) string {
	c, _ := e.Capacity()
	return fmt.Sprintf("capacity of %s tons", c.String())
}
