package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCapability(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Capability
		wantErr error
	}{
		{name: "base", input: "base", want: CapabilityBase},
		{name: "passenger", input: "passenger", want: CapabilityPassenger},
		{name: "cargo mixed case and spaces", input: "  Cargo ", want: CapabilityCargo},
		{name: "unknown tag", input: "amphibious", wantErr: ErrUnknownCapability},
		{name: "empty tag", input: "", wantErr: ErrUnknownCapability},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCapability(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCapabilities(t *testing.T) {
	t.Run("empty list is base only", func(t *testing.T) {
		got, err := ParseCapabilities("")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("keeps declared order and skips blanks", func(t *testing.T) {
		got, err := ParseCapabilities("passenger, ,cargo")
		require.NoError(t, err)
		assert.Equal(t, []Capability{CapabilityPassenger, CapabilityCargo}, got)
	})

	t.Run("fails on first unknown tag", func(t *testing.T) {
		_, err := ParseCapabilities("passenger,wings")
		assert.ErrorIs(t, err, ErrUnknownCapability)
		assert.Contains(t, err.Error(), "wings")
	})
}

func TestParseKind(t *testing.T) {
	for _, k := range StandardKinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" PICKUP ")
	require.NoError(t, err)
	assert.Equal(t, KindPickup, got)

	_, err = ParseKind("hovercraft")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
