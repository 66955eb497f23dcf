package types

import "sort"

// Field names understood by the standard layers.
const (
	FieldMake       = "make"
	FieldModel      = "model"
	FieldYear       = "year"
	FieldPassengers = "passengers"
	FieldCapacity   = "capacity"
)

// Fields is the flat, named input to entity construction. Values may be Go
// scalars, decimal values, or strings holding a number; each layer coerces
// the fields it owns.
type Fields map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Take removes name from f and returns its value. ok is false when the
// field is absent.
func (f Fields) Take(name string) (v any, ok bool) {
	v, ok = f[name]
	if ok {
		delete(f, name)
	}
	return v, ok
}

// Names returns the field names in sorted order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
