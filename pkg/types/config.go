package types

import "errors"

// Config holds composer policy, typically loaded from config.yaml.
type Config struct {
	UnconsumedFields string `json:"unconsumed_fields" yaml:"unconsumed_fields"`
}

// Unconsumed-field policies. Strict rejects fields no layer claimed;
// permissive drops them.
const (
	PolicyStrict     = "strict"
	PolicyPermissive = "permissive"
)

// Config validation errors.
var (
	ErrPolicyEmpty   = errors.New("unconsumed field policy must not be empty")
	ErrPolicyUnknown = errors.New("unknown unconsumed field policy")
)

var knownPolicies = map[string]bool{
	PolicyStrict:     true,
	PolicyPermissive: true,
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{UnconsumedFields: PolicyStrict}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.UnconsumedFields == "" {
		return ErrPolicyEmpty
	}
	if !knownPolicies[c.UnconsumedFields] {
		return ErrPolicyUnknown
	}
	return nil
}

// Strict reports whether unconsumed fields are rejected.
func (c Config) Strict() bool {
	return c.UnconsumedFields != PolicyPermissive
}
