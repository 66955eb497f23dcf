package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/motorpool/pkg/types"
)

func TestResolutionOrder(t *testing.T) {
	tests := []struct {
		name      string
		caps      []types.Capability
		wantKind  types.Kind
		wantOrder []types.Capability
	}{
		{
			name:      "empty set is a car",
			caps:      nil,
			wantKind:  types.KindCar,
			wantOrder: []types.Capability{types.CapabilityBase},
		},
		{
			name:      "passenger",
			caps:      []types.Capability{types.CapabilityPassenger},
			wantKind:  types.KindPassengerCar,
			wantOrder: []types.Capability{types.CapabilityPassenger, types.CapabilityBase},
		},
		{
			name:      "cargo with explicit base",
			caps:      []types.Capability{types.CapabilityBase, types.CapabilityCargo},
			wantKind:  types.KindTruck,
			wantOrder: []types.Capability{types.CapabilityCargo, types.CapabilityBase},
		},
		{
			name:      "passenger and cargo",
			caps:      []types.Capability{types.CapabilityPassenger, types.CapabilityCargo},
			wantKind:  types.KindPickup,
			wantOrder: []types.Capability{types.CapabilityPassenger, types.CapabilityCargo, types.CapabilityBase},
		},
		{
			name:      "duplicates collapse",
			caps:      []types.Capability{types.CapabilityCargo, types.CapabilityPassenger, types.CapabilityCargo},
			wantKind:  types.KindPickup,
			wantOrder: []types.Capability{types.CapabilityPassenger, types.CapabilityCargo, types.CapabilityBase},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ResolutionOrder(tt.caps)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, res.Kind)
			assert.Equal(t, tt.wantOrder, res.Order)
		})
	}
}

func TestResolutionOrderUnknownCapability(t *testing.T) {
	_, err := ResolutionOrder([]types.Capability{types.CapabilityPassenger, "sidecar"})
	assert.ErrorIs(t, err, types.ErrUnknownCapability)
}

func TestEveryKindEndsInBaseOnce(t *testing.T) {
	for _, kind := range types.StandardKinds {
		res, err := KindOrder(kind)
		require.NoError(t, err, kind)
		require.NotEmpty(t, res.Order)
		assert.Equal(t, types.CapabilityBase, res.Order[len(res.Order)-1], kind)

		count := 0
		for _, c := range res.Order {
			if c == types.CapabilityBase {
				count++
			}
		}
		assert.Equal(t, 1, count, "%s must list base once", kind)
	}
}

func TestKindOrderReturnsCopy(t *testing.T) {
	res, err := KindOrder(types.KindPickup)
	require.NoError(t, err)
	res.Order[0] = types.CapabilityCargo

	again, err := KindOrder(types.KindPickup)
	require.NoError(t, err)
	assert.Equal(t, types.CapabilityPassenger, again.Order[0])
}
