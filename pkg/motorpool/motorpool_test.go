package motorpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/motorpool/pkg/types"
)

func TestCreateRenderPickup(t *testing.T) {
	e, err := Create(
		[]types.Capability{types.CapabilityBase, types.CapabilityPassenger, types.CapabilityCargo},
		types.Fields{"make": "Toyota", "model": "Hilux", "year": 2023, "passengers": 5, "capacity": 1.5},
	)
	require.NoError(t, err)
	assert.Equal(t, "2023 Toyota Hilux with 5 passengers and capacity of 1.5 tons", Render(e))
}

func TestCreateMissingPassengers(t *testing.T) {
	_, err := Create(
		[]types.Capability{types.CapabilityPassenger},
		types.Fields{"make": "Toyota", "model": "Hilux", "year": 2023},
	)
	var mf *types.MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "passengers", mf.Field)
}

func TestNewComposerPermissive(t *testing.T) {
	c, err := NewComposer(types.Config{UnconsumedFields: types.PolicyPermissive})
	require.NoError(t, err)

	e, err := c.CreateKind(types.KindTruck, types.Fields{
		"make": "Volvo", "model": "FH16", "year": 2020, "capacity": "44", "trailer": true,
	})
	require.NoError(t, err)
	assert.Equal(t, "2020 Volvo FH16 with capacity of 44 tons", c.Render(e))

	_, err = NewComposer(types.Config{})
	assert.ErrorIs(t, err, types.ErrPolicyEmpty)
}
