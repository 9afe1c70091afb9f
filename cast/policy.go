package cast

import (
	"fmt"

	"numcast/primitive"
)

// Classify converts v to T and reports whether the value survived.
func Classify[T, F Number](v F) Outcome[F, T] {
	from, to := typeOf[F](), typeOf[T]()

	status, raw := classify(from, to, load(v))
	o := Outcome[F, T]{From: v, Status: status}
	if status != StatusUnrepresentable {
		o.To = store[T](raw)
	}

	return o
}

// Strict returns v as a T, or an error when the cast is not exact. The
// error is a *LossyError or an *UnrepresentableError and matches ErrLossy
// or ErrUnrepresentable respectively.
func Strict[T, F Number](v F) (T, error) {
	return Classify[T](v).Value()
}

// Lossy returns v as a T and accepts any loss of precision: the result is
// what an unchecked conversion produces. Conversions that have no such
// result (a zero into a non-zero type) fall back to Closest.
func Lossy[T, F Number](v F) T {
	return Classify[T](v).Lossy()
}

// AssumedExact returns v as a T for call sites that know the cast is
// exact. See Outcome.AssumedExact.
func AssumedExact[T, F Number](v F) T {
	return Classify[T](v).AssumedExact()
}

// Closest returns the value of T nearest to v. Integers saturate, floats
// round half away from zero, NaN becomes 0 and non-zero targets never
// receive zero. Closest never fails.
func Closest[T, F Number](v F) T {
	from, to := typeOf[F](), typeOf[T]()
	return store[T](closest(from, to, load(v)))
}

// Saturated clamps an integer cast to the range of T. It is also defined
// for float32 to float64, which never saturates. Other pairs panic with
// ErrNotSaturating.
func Saturated[T, F Number](v F) T {
	from, to := typeOf[F](), typeOf[T]()
	if !primitive.IsSaturating(from, to) {
		panic(fmt.Errorf("%w: %s -> %s", ErrNotSaturating, from, to))
	}

	return store[T](closest(from, to, load(v)))
}

// IsStaticLossless reports whether every value of F survives a cast to T
// on this build target.
func IsStaticLossless[T, F Number]() bool {
	return primitive.IsStaticLossless(typeOf[F](), typeOf[T]())
}

// Lossless converts v for pairs where no value can be lost, such as
// uint8 to int16 or int32 to float64. The pair is checked once per call
// against the static table and any other pair panics with
// ErrNotStaticLossless, regardless of v.
func Lossless[T, F Number](v F) T {
	from, to := typeOf[F](), typeOf[T]()
	if !primitive.IsStaticLossless(from, to) {
		panic(fmt.Errorf("%w: %s -> %s", ErrNotStaticLossless, from, to))
	}

	_, raw := classify(from, to, load(v))
	return store[T](raw)
}

// TryBitwise reinterprets the bits of v as a T. The types must have the
// same width; float32 and uint32 qualify, int and int64 qualify only on
// 64-bit targets. An all-zero pattern cannot become a NonZero.
func TryBitwise[T, F Number](v F) (T, error) {
	from, to := typeOf[F](), typeOf[T]()
	if from.Bits() != to.Bits() {
		var zero T
		return zero, fmt.Errorf("%w: %s (%d bits) -> %s (%d bits)", ErrBitwiseWidth, from, from.Bits(), to, to.Bits())
	}

	out, ok := bitwise(from, to, load(v))
	if !ok {
		var zero T
		return zero, &UnrepresentableError[F, T]{From: v}
	}

	return store[T](out), nil
}

// Bitwise is like TryBitwise but panics on error.
func Bitwise[T, F Number](v F) T {
	out, err := TryBitwise[T](v)
	if err != nil {
		panic(err)
	}

	return out
}
