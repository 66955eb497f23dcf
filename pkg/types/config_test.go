package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty policy returns ErrPolicyEmpty",
			config:  Config{UnconsumedFields: ""},
			wantErr: ErrPolicyEmpty,
		},
		{
			name:    "unknown policy returns ErrPolicyUnknown",
			config:  Config{UnconsumedFields: "lenient"},
			wantErr: ErrPolicyUnknown,
		},
		{
			name:    "strict is valid",
			config:  Config{UnconsumedFields: PolicyStrict},
			wantErr: nil,
		},
		{
			name:    "permissive is valid",
			config:  Config{UnconsumedFields: PolicyPermissive},
			wantErr: nil,
		},
		{
			name:    "default config is valid",
			config:  DefaultConfig(),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigStrict(t *testing.T) {
	if !DefaultConfig().Strict() {
		t.Fatal("default config should be strict")
	}
	if (Config{UnconsumedFields: PolicyPermissive}).Strict() {
		t.Fatal("permissive config should not be strict")
	}
}
