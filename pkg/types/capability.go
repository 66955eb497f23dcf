package types

import (
	"fmt"
	"strings"
)

// Capability names one composable layer of an entity.
type Capability string

// Capability tags. Base is implicit in every capability set.
const (
	CapabilityBase      Capability = "base"
	CapabilityPassenger Capability = "passenger"
	CapabilityCargo     Capability = "cargo"
)

// Kind names a resolved capability set.
type Kind string

// Entity kinds, one per supported capability set.
const (
	KindCar          Kind = "car"
	KindPassengerCar Kind = "passenger_car"
	KindTruck        Kind = "truck"
	KindPickup       Kind = "pickup"
)

// StandardKinds lists every kind in declaration order, for enumeration.
var StandardKinds = []Kind{
	KindCar,
	KindPassengerCar,
	KindTruck,
	KindPickup,
}

var validCapabilities = map[Capability]bool{
	CapabilityBase:      true,
	CapabilityPassenger: true,
	CapabilityCargo:     true,
}

// ParseCapability converts a tag such as "passenger" into a Capability.
// Matching is case-insensitive and ignores surrounding whitespace.
// Returns ErrUnknownCapability for anything else.
func ParseCapability(s string) (Capability, error) {
	c := Capability(strings.ToLower(strings.TrimSpace(s)))
	if !validCapabilities[c] {
		return "", fmt.Errorf("%w: %q", ErrUnknownCapability, s)
	}
	return c, nil
}

// ParseCapabilities parses a comma-separated list of tags. Empty items are
// skipped, so "" yields an empty (base-only) set.
func ParseCapabilities(list string) ([]Capability, error) {
	var caps []Capability
	for item := range strings.SplitSeq(list, ",") {
		if strings.TrimSpace(item) == "" {
			continue
		}
		c, err := ParseCapability(item)
		if err != nil {
			return nil, err
		}
		caps = append(caps, c)
	}
	return caps, nil
}

// ParseKind converts a kind name such as "pickup" into a Kind.
// Returns ErrUnknownKind if the name is not one of StandardKinds.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range StandardKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (c Capability) String() string { return string(c) }
