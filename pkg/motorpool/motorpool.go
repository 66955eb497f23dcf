// Package motorpool provides the public API for composing vehicle entities.
// This package exposes the composer factory and one-shot helpers while
// keeping the layer machinery internal.
package motorpool

import (
	"github.com/mesh-intelligence/motorpool/internal/composer"
	"github.com/mesh-intelligence/motorpool/pkg/types"
)

// Version is the motorpool release version.
const Version = "0.1.0"

// Option configures a Composer.
type Option = composer.Option

// Composer options re-exported for callers outside this module.
var (
	WithLogger      = composer.WithLogger
	WithIDGenerator = composer.WithIDGenerator
)

// Composer builds and renders entities.
type Composer interface {
	Create(caps []types.Capability, fields types.Fields) (*types.Entity, error)
	CreateKind(kind types.Kind, fields types.Fields) (*types.Entity, error)
	Render(e *types.Entity) string
}

// NewComposer creates a Composer with the given policy.
//
// Example:
//
//	c, err := motorpool.NewComposer(types.Config{
//	    UnconsumedFields: types.PolicyStrict,
//	})
//	e, err := c.Create([]types.Capability{types.CapabilityPassenger}, fields)
//	fmt.Println(c.Render(e))
func NewComposer(cfg types.Config, opts ...Option) (Composer, error) {
	c, err := composer.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create assembles an entity with the default strict policy.
func Create(caps []types.Capability, fields types.Fields) (*types.Entity, error) {
	c, err := composer.New(types.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return c.Create(caps, fields)
}

// Render describes an assembled entity, base text first.
func Render(e *types.Entity) string {
	return composer.Render(e)
}
