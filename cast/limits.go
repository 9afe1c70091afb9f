package cast

import (
	"math"

	"numcast/internal/wide"
	"numcast/primitive"
)

// Max returns the largest finite value of T.
func Max[T Number]() T {
	return store[T](maxOf(typeOf[T]()))
}

// Min returns the smallest finite value of T. The minimum of an unsigned
// NonZero is 1.
func Min[T Number]() T {
	return store[T](minOf(typeOf[T]()))
}

func maxOf(t primitive.Type) scalar {
	if t.Kind.IsFloat() {
		return floatScalar(maxFloat(t.Kind))
	}

	return intScalar(wide.Max(t.Bits(), t.Kind.IsSigned()))
}

func minOf(t primitive.Type) scalar {
	switch {
	case t.Kind.IsFloat():
		return floatScalar(-maxFloat(t.Kind))
	case t.NonZero && t.Kind.IsUnsigned():
		return intScalar(wide.FromUint64(1))
	default:
		return intScalar(wide.Min(t.Bits(), t.Kind.IsSigned()))
	}
}

// SmallestPositive returns the smallest positive value of T: 1 for
// integers and the smallest subnormal for floats.
func SmallestPositive[T Number]() T {
	t := typeOf[T]()
	switch t.Kind {
	case primitive.KindFloat32:
		return store[T](floatScalar(math.SmallestNonzeroFloat32))
	case primitive.KindFloat64:
		return store[T](floatScalar(math.SmallestNonzeroFloat64))
	default:
		return store[T](intScalar(wide.FromUint64(1)))
	}
}
