// Package literal converts between text and typed numeric values.
package literal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shabbyrobe/go-num"

	"numcast/cast"
	"numcast/options"
	"numcast/primitive"
)

var (
	ErrInvalid = errors.New("invalid numeric literal")
	ErrRange   = errors.New("numeric literal out of range")
)

// Parse reads text as a value of t and returns it as t's canonical Go type:
// int8 for i8, num.U128 for u128, cast.NonZero[uint8] for nonzero_u8.
//
// Integers accept Go syntax (0x, 0o, 0b prefixes and underscores). Floats
// additionally accept inf, -inf, nan and -nan, the latter carrying the
// sign bit.
func Parse(t primitive.Type, text string) (any, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %s", primitive.ErrUnknownType, t)
	}

	s := strings.TrimSpace(text)
	if s == "" {
		return nil, fmt.Errorf("%w: empty literal for %s", ErrInvalid, t)
	}

	if t.NonZero {
		return parseNonZero(t, s)
	}

	switch k := t.Kind; {
	case k == primitive.KindUint128:
		return parseU128(s)
	case k == primitive.KindInt128:
		return parseI128(s)
	case k.IsUnsigned():
		u, err := strconv.ParseUint(s, 0, k.Bits())
		if err != nil {
			return nil, wrapNumError(t, s, err)
		}

		return box(t, u)
	case k.IsSigned():
		i, err := strconv.ParseInt(s, 0, k.Bits())
		if err != nil {
			return nil, wrapNumError(t, s, err)
		}

		return box(t, i)
	default:
		f, err := parseFloat(s, k.Bits())
		if err != nil {
			return nil, wrapNumError(t, s, err)
		}

		if k == primitive.KindFloat32 {
			return float32(f), nil
		}

		return f, nil
	}
}

// MustParse is like Parse but panics on error.
func MustParse(t primitive.Type, text string) any {
	v, err := Parse(t, text)
	if err != nil {
		panic(err)
	}

	return v
}

func parseNonZero(t primitive.Type, s string) (any, error) {
	v, err := Parse(t.Primitive(), s)
	if err != nil {
		return nil, err
	}

	res, err := cast.Eval(t.Primitive(), t, v, options.PolicyStrict)
	if err != nil {
		return nil, err
	}

	if res.Err != nil {
		return nil, fmt.Errorf("%w: %q is zero and cannot be %s", ErrRange, s, t)
	}

	return res.Value, nil
}

func parseU128(s string) (any, error) {
	t := primitive.Of(primitive.KindUint128)
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("%w: %q as %s", ErrRange, s, t)
	}

	v, accurate, err := num.U128FromString(strings.ReplaceAll(s, "_", ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %q as %s: %w", ErrInvalid, s, t, err)
	}

	if !accurate {
		return nil, fmt.Errorf("%w: %q as %s", ErrRange, s, t)
	}

	return v, nil
}

func parseI128(s string) (any, error) {
	t := primitive.Of(primitive.KindInt128)

	v, accurate, err := num.I128FromString(strings.ReplaceAll(s, "_", ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %q as %s: %w", ErrInvalid, s, t, err)
	}

	if !accurate {
		return nil, fmt.Errorf("%w: %q as %s", ErrRange, s, t)
	}

	return v, nil
}

func parseFloat(s string, bits int) (float64, error) {
	switch strings.ToLower(s) {
	case "nan", "+nan":
		return math.NaN(), nil
	case "-nan":
		return math.Copysign(math.NaN(), -1), nil
	}

	return strconv.ParseFloat(s, bits)
}

// box narrows a parsed 64-bit integer to the Go type of t. The value was
// range-checked by strconv for t's width.
func box(t primitive.Type, v any) (any, error) {
	res, err := cast.Eval(primitive.Of(kindOf(v)), t, v, options.PolicyStrict)
	if err != nil {
		return nil, err
	}

	return res.Value, res.Err
}

func kindOf(v any) primitive.KindEnum {
	if _, ok := v.(uint64); ok {
		return primitive.KindUint64
	}

	return primitive.KindInt64
}

func wrapNumError(t primitive.Type, s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q as %s", ErrRange, s, t)
	}

	return fmt.Errorf("%w: %q as %s", ErrInvalid, s, t)
}

// Format returns the text of a numeric value such that Parse reads it back
// unchanged. Floats use the shortest representation and -NaN keeps its
// sign.
func Format(v any) string {
	switch x := v.(type) {
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64, bits int) string {
	if math.IsNaN(f) && math.Signbit(f) {
		return "-NaN"
	}

	return strconv.FormatFloat(f, 'g', -1, bits)
}

// Equal reports whether a and b hold the same type and numeric value. Any
// two NaNs are equal; 0 and -0 are not.
func Equal(a, b any) bool {
	switch x := a.(type) {
	case float32:
		y, ok := b.(float32)
		return ok && floatEqual(float64(x), float64(y))
	case float64:
		y, ok := b.(float64)
		return ok && floatEqual(x, y)
	default:
		return a == b
	}
}

func floatEqual(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}

	return math.Float64bits(x) == math.Float64bits(y)
}
