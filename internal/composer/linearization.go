package composer

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/motorpool/pkg/types"
)

// linearizations maps each kind to its layer order. The last entry is always
// base; capabilities appear in declared left-to-right order.
var linearizations = map[types.Kind][]types.Capability{
	types.KindCar:          {types.CapabilityBase},
	types.KindPassengerCar: {types.CapabilityPassenger, types.CapabilityBase},
	types.KindTruck:        {types.CapabilityCargo, types.CapabilityBase},
	types.KindPickup:       {types.CapabilityPassenger, types.CapabilityCargo, types.CapabilityBase},
}

// Resolution is a kind together with its layer order.
type Resolution struct {
	Kind  types.Kind
	Order []types.Capability
}

// ResolutionOrder resolves a capability set to its kind and linearization
// without constructing anything. Base is implied; duplicates are ignored.
// Returns ErrUnknownCapability for tags outside the standard set.
func ResolutionOrder(caps []types.Capability) (Resolution, error) {
	var passenger, cargo bool
	for _, c := range caps {
		switch c {
		case types.CapabilityBase:
		case types.CapabilityPassenger:
			passenger = true
		case types.CapabilityCargo:
			cargo = true
		default:
			return Resolution{}, fmt.Errorf("%w: %q", types.ErrUnknownCapability, c)
		}
	}

	kind := types.KindCar
	switch {
	case passenger && cargo:
		kind = types.KindPickup
	case passenger:
		kind = types.KindPassengerCar
	case cargo:
		kind = types.KindTruck
	}
	return KindOrder(kind)
}

// KindOrder returns the linearization for a named kind.
// Returns ErrUnknownKind if the kind has none.
func KindOrder(kind types.Kind) (Resolution, error) {
	order, ok := linearizations[kind]
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %q", types.ErrUnknownKind, kind)
	}
	return Resolution{Kind: kind, Order: slices.Clone(order)}, nil
}
