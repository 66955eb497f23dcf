package types

import (
	"errors"
	"fmt"
	"strings"
)

// Construction errors. The structured errors below unwrap to these, so
// callers can test with errors.Is and still recover details with errors.As.
var (
	ErrMissingField      = errors.New("missing field")
	ErrUnconsumedField   = errors.New("unconsumed field")
	ErrInvalidField      = errors.New("invalid field value")
	ErrUnknownCapability = errors.New("unknown capability")
	ErrUnknownKind       = errors.New("unknown kind")
)

// MissingFieldError reports a required field that was absent when the
// owning layer ran.
type MissingFieldError struct {
	Field string
	Layer Capability
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s layer: missing field %q", e.Layer, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// InvalidFieldError reports a field that was present but had the wrong type
// or an out-of-range value.
type InvalidFieldError struct {
	Field  string
	Layer  Capability
	Value  any
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s layer: invalid field %q (%v): %s", e.Layer, e.Field, e.Value, e.Reason)
}

func (e *InvalidFieldError) Unwrap() error { return ErrInvalidField }

// UnconsumedFieldError lists fields that no layer claimed. Fields is sorted.
type UnconsumedFieldError struct {
	Fields []string
}

func (e *UnconsumedFieldError) Error() string {
	return fmt.Sprintf("unconsumed fields: %s", strings.Join(e.Fields, ", "))
}

func (e *UnconsumedFieldError) Unwrap() error { return ErrUnconsumedField }
