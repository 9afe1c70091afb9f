package primitive

import (
	"reflect"
	"strconv"

	"github.com/shabbyrobe/go-num"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt // pointer-sized
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt128
	KindUint // pointer-sized
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint128
	KindFloat32
	KindFloat64

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// PointerBits is the width of int, uint and uintptr on the build target.
const PointerBits = 32 << (^uint(0) >> 63)

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	return k.IsValid()
}

func (k KindEnum) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64, KindInt128:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUint128:
		return true
	}
}

// IsPointerSized reports whether the width of k depends on the build target.
func (k KindEnum) IsPointerSized() bool {
	return k == KindInt || k == KindUint
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds have a meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		return PointerBits
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	case KindInt128, KindUint128:
		return 128
	}
}

// Digits returns the number of binary digits available for the magnitude of
// a value: the bit width minus the sign bit for integers, and the significand
// width including the implicit bit for floats.
func (k KindEnum) Digits() int {
	switch {
	case k == KindFloat32:
		return 24
	case k == KindFloat64:
		return 53
	case k.IsSigned():
		return k.Bits() - 1
	default:
		return k.Bits()
	}
}

// GoName returns the Go spelling of the type used for kind k.
func (k KindEnum) GoName() string {
	switch k {
	default:
		return k.String()
	case KindInt:
		return "int"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindInt128:
		return "num.I128"
	case KindUint:
		return "uint"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindUint128:
		return "num.U128"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	}
}

// ShortName returns the compact name of kind k, e.g. u8, i128, usize, f64.
func (k KindEnum) ShortName() string {
	switch {
	default:
		return k.String()
	case k == KindInt:
		return "isize"
	case k == KindUint:
		return "usize"
	case k.IsSigned():
		return "i" + strconv.Itoa(k.Bits())
	case k.IsUnsigned():
		return "u" + strconv.Itoa(k.Bits())
	case k.IsFloat():
		return "f" + strconv.Itoa(k.Bits())
	}
}

// ReflectType returns the canonical Go type of kind k.
func (k KindEnum) ReflectType() reflect.Type {
	switch k {
	default:
		return nil
	case KindInt:
		return reflect.TypeFor[int]()
	case KindInt8:
		return reflect.TypeFor[int8]()
	case KindInt16:
		return reflect.TypeFor[int16]()
	case KindInt32:
		return reflect.TypeFor[int32]()
	case KindInt64:
		return reflect.TypeFor[int64]()
	case KindInt128:
		return reflect.TypeFor[num.I128]()
	case KindUint:
		return reflect.TypeFor[uint]()
	case KindUint8:
		return reflect.TypeFor[uint8]()
	case KindUint16:
		return reflect.TypeFor[uint16]()
	case KindUint32:
		return reflect.TypeFor[uint32]()
	case KindUint64:
		return reflect.TypeFor[uint64]()
	case KindUint128:
		return reflect.TypeFor[num.U128]()
	case KindFloat32:
		return reflect.TypeFor[float32]()
	case KindFloat64:
		return reflect.TypeFor[float64]()
	}
}

// Kinds returns every valid kind in declaration order.
func Kinds() []KindEnum {
	kinds := make([]KindEnum, 0, KindTotal-1)
	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		kinds = append(kinds, kind)
	}

	return kinds
}

func kindFromReflectKind(kind reflect.Kind) KindEnum {
	switch kind {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint, reflect.Uintptr:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	}
}
