package primitive

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/shabbyrobe/go-num"
)

var ErrUnknownType = errors.New("unknown numeric type")

// Type describes a numeric type: a kind plus the non-zero restriction that
// may be applied to integer kinds.
type Type struct {
	Kind    KindEnum
	NonZero bool
}

// Of returns the primitive type of kind k.
func Of(k KindEnum) Type {
	return Type{Kind: k}
}

// NonZeroOf returns the non-zero type wrapping integer kind k.
func NonZeroOf(k KindEnum) Type {
	return Type{Kind: k, NonZero: true}
}

func (t Type) IsValid() bool {
	return t.Kind.IsValid() && (!t.NonZero || t.Kind.IsInteger())
}

// Primitive strips the non-zero restriction.
func (t Type) Primitive() Type {
	return Type{Kind: t.Kind}
}

func (t Type) Bits() int {
	return t.Kind.Bits()
}

// String returns the Go spelling of the type, e.g. uint8 or NonZero[int64].
func (t Type) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("Type(%s, nonzero=%t)", t.Kind, t.NonZero)
	}

	if t.NonZero {
		return "NonZero[" + t.Kind.GoName() + "]"
	}

	return t.Kind.GoName()
}

// ShortName returns the compact spelling of the type, e.g. u8 or nonzero_i64.
func (t Type) ShortName() string {
	if t.NonZero {
		return "nonzero_" + t.Kind.ShortName()
	}

	return t.Kind.ShortName()
}

// Types returns every valid type: all primitive kinds followed by the
// non-zero integer kinds.
func Types() []Type {
	var res []Type
	for _, kind := range Kinds() {
		res = append(res, Of(kind))
	}

	for _, kind := range Kinds() {
		if kind.IsInteger() {
			res = append(res, NonZeroOf(kind))
		}
	}

	return res
}

var typeNames map[string]KindEnum

func init() {
	typeNames = map[string]KindEnum{
		"byte":      KindUint8,
		"rune":      KindInt32,
		"uintptr":   KindUint,
		"int128":    KindInt128,
		"uint128":   KindUint128,
		"i128":      KindInt128,
		"u128":      KindUint128,
		"num.i128":  KindInt128,
		"num.u128":  KindUint128,
		"float":     KindFloat64,
		"double":    KindFloat64,
		"pointer":   KindUint,
		"pointer_s": KindInt,
	}

	for _, kind := range Kinds() {
		typeNames[strings.ToLower(kind.GoName())] = kind
		typeNames[strings.ToLower(kind.ShortName())] = kind
	}
}

// ParseType parses a type name. It accepts Go names (uint8, num.U128),
// short names (u8, i128, usize, f32) and non-zero spellings such as
// nonzero_u8, NonZeroU8 and NonZero[uint8].
func ParseType(name string) (Type, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "cast.")

	var t Type
	switch {
	case strings.HasPrefix(s, "nonzero[") && strings.HasSuffix(s, "]"):
		t.NonZero = true
		s = s[len("nonzero[") : len(s)-1]
	case strings.HasPrefix(s, "nonzero_"):
		t.NonZero = true
		s = s[len("nonzero_"):]
	case strings.HasPrefix(s, "nonzero"):
		t.NonZero = true
		s = s[len("nonzero"):]
	}

	kind, ok := typeNames[s]
	if !ok {
		return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	t.Kind = kind
	if !t.IsValid() {
		return Type{}, fmt.Errorf("%w: %q is not an integer type and cannot be non-zero", ErrUnknownType, name)
	}

	return t, nil
}

// MustParseType is like ParseType but panics on error.
func MustParseType(name string) Type {
	t, err := ParseType(name)
	if err != nil {
		panic(err)
	}

	return t
}

// FromReflectType returns the numeric type of rtype, or the zero Type when
// rtype is not numeric. Named types resolve through their underlying kind;
// the cast package's NonZero wrapper is recognized by shape.
func FromReflectType(rtype reflect.Type) Type {
	if rtype == nil {
		return Type{}
	}

	// check if 128-bit integer type
	switch rtype {
	case reflect.TypeFor[num.U128]():
		return Of(KindUint128)
	case reflect.TypeFor[num.I128]():
		return Of(KindInt128)
	}

	// check if it's a non-zero wrapper
	if rtype.Kind() == reflect.Struct && strings.HasPrefix(rtype.Name(), "NonZero[") && rtype.NumField() == 1 {
		inner := FromReflectType(rtype.Field(0).Type)
		if inner.IsValid() && !inner.NonZero && inner.Kind.IsInteger() {
			return NonZeroOf(inner.Kind)
		}

		return Type{}
	}

	return Of(kindFromReflectKind(rtype.Kind()))
}

// MinFloat returns the minimum value of kind k as a float64. For integer
// kinds the value is a power of two (or zero) and therefore exact.
func (k KindEnum) MinFloat() float64 {
	switch {
	default:
		panic("minimum requested for invalid kind: " + k.String())
	case k.IsUnsigned():
		return 0
	case k.IsSigned():
		return -math.Ldexp(1, k.Digits())
	case k == KindFloat32:
		return -math.MaxFloat32
	case k == KindFloat64:
		return -math.MaxFloat64
	}
}

// MaxFloatBelow returns the largest float carrying at most digits
// significant bits that does not exceed the maximum value of kind k. Some
// integer maximums (e.g. math.MaxInt64) are not representable in floating
// point; range checks of float sources must compare against this value
// instead.
func (k KindEnum) MaxFloatBelow(digits int) float64 {
	switch {
	default:
		panic("maximum requested for invalid kind: " + k.String())
	case k == KindFloat32:
		return math.MaxFloat32
	case k == KindFloat64:
		return math.MaxFloat64
	case k.IsInteger():
		d := k.Digits()
		if d <= digits {
			return math.Ldexp(1, d) - 1
		}

		return math.Ldexp(math.Ldexp(1, digits)-1, d-digits)
	}
}
