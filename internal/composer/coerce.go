package composer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/motorpool/pkg/types"
)

// takeString removes a required, non-empty string field.
func takeString(f types.Fields, name string, layer types.Capability) (string, error) {
	v, ok := f.Take(name)
	if !ok {
		return "", &types.MissingFieldError{Field: name, Layer: layer}
	}
	s, ok := v.(string)
	if !ok {
		return "", invalid(name, layer, v, fmt.Sprintf("want string, got %T", v))
	}
	if strings.TrimSpace(s) == "" {
		return "", invalid(name, layer, v, "must not be empty")
	}
	return s, nil
}

// takeInt removes a required integer field and checks it is at least min.
func takeInt(f types.Fields, name string, layer types.Capability, min int) (int, error) {
	v, ok := f.Take(name)
	if !ok {
		return 0, &types.MissingFieldError{Field: name, Layer: layer}
	}
	n, err := toInt(v)
	if err != nil {
		return 0, invalid(name, layer, v, err.Error())
	}
	if n < min {
		return 0, invalid(name, layer, v, fmt.Sprintf("must be at least %d", min))
	}
	return n, nil
}

// Bounds on decimal fields. Render expands the value in full, so a tiny
// input such as "1e50000000" must not get through.
const (
	maxDecimalExponent = 30
	minDecimalExponent = -30
	maxCoefficientBits = 128
)

// takeDecimal removes a required non-negative real field.
func takeDecimal(f types.Fields, name string, layer types.Capability) (decimal.Decimal, error) {
	v, ok := f.Take(name)
	if !ok {
		return decimal.Zero, &types.MissingFieldError{Field: name, Layer: layer}
	}
	d, err := toDecimal(v)
	if err != nil {
		return decimal.Zero, invalid(name, layer, v, err.Error())
	}
	if d.IsNegative() {
		return decimal.Zero, invalid(name, layer, v, "must not be negative")
	}
	if exp := d.Exponent(); exp > maxDecimalExponent || exp < minDecimalExponent {
		return decimal.Zero, invalid(name, layer, v, fmt.Sprintf("exponent %d out of range", exp))
	}
	if d.Coefficient().BitLen() > maxCoefficientBits {
		return decimal.Zero, invalid(name, layer, v, "too many digits")
	}
	return d, nil
}

func invalid(name string, layer types.Capability, v any, reason string) error {
	return &types.InvalidFieldError{Field: name, Layer: layer, Value: v, Reason: reason}
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, fmt.Errorf("%d overflows int", n)
		}
		return int(n), nil
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, fmt.Errorf("%d overflows int", n)
		}
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%d overflows int", n)
		}
		return int(n), nil
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("want integer, got %T", v)
	}
}

func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %v", f)
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%v overflows int", f)
	}
	return int(f), nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero, errors.New("nil decimal")
		}
		return *n, nil
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return decimal.Zero, fmt.Errorf("not a finite number: %v", n)
		}
		return decimal.NewFromFloat32(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, fmt.Errorf("not a finite number: %v", n)
		}
		return decimal.NewFromFloat(n), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, fmt.Errorf("not a number: %q", n)
		}
		return d, nil
	default:
		i, err := toInt(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("want number, got %T", v)
		}
		return decimal.NewFromInt(int64(i)), nil
	}
}
