package cast

import (
	"math"

	"numcast/internal/wide"
	"numcast/primitive"
)

// float32Overflow is the smallest magnitude that rounds to an infinite
// float32: halfway between math.MaxFloat32 and 2^128, ties to even.
const float32Overflow = 0x1p128 - 0x1p103

func exactIf(ok bool) Status {
	if ok {
		return StatusExact
	}

	return StatusLossy
}

// classify returns the status of the cast and its raw value, a scalar of
// to's kind. The raw value is what an unchecked conversion produces and
// must not be used when the status is StatusUnrepresentable.
func classify(from, to primitive.Type, s scalar) (Status, scalar) {
	status, raw := classifyKind(from.Kind, to.Kind, s)
	if to.NonZero && raw.isZero() {
		return StatusUnrepresentable, raw
	}

	return status, raw
}

func classifyKind(from, to primitive.KindEnum, s scalar) (Status, scalar) {
	switch {
	case from.IsInteger() && to.IsInteger():
		width, signed := to.Bits(), to.IsSigned()
		return exactIf(s.i.Fits(width, signed)), intScalar(s.i.Wrap(width, signed))

	case from.IsInteger():
		// every integer of up to 128 bits is finite in both float kinds once
		// its significant bits fit the mantissa
		return exactIf(s.i.SignificantBits() <= to.Digits()), floatScalar(intToFloat(s.i, to))

	case to.IsInteger():
		if math.IsNaN(s.f) {
			return StatusLossy, intScalar(wide.Int{})
		}

		t := math.Trunc(s.f)
		exact := t == s.f && s.f >= to.MinFloat() && s.f <= to.MaxFloatBelow(primitive.KindFloat64.Digits())
		return exactIf(exact), intScalar(saturateFloat(t, to))

	default:
		if to == primitive.KindFloat64 || math.IsNaN(s.f) {
			return StatusExact, s
		}

		n := narrow32(s.f)
		return exactIf(n == s.f), floatScalar(n)
	}
}

// closest returns the representable value of to nearest to s. It never
// returns zero for a non-zero target.
func closest(from, to primitive.Type, s scalar) scalar {
	c := closestKind(from.Kind, to.Kind, s)
	if !to.NonZero || !c.isZero() {
		return c
	}

	if to.Kind.IsSigned() && s.isNegative() {
		return intScalar(wide.FromInt64(-1))
	}

	return intScalar(wide.FromUint64(1))
}

func closestKind(from, to primitive.KindEnum, s scalar) scalar {
	switch {
	case from.IsInteger() && to.IsInteger():
		return intScalar(s.i.Saturate(to.Bits(), to.IsSigned()))

	case from.IsInteger():
		f := intToFloat(s.i, to)
		if math.IsInf(f, 0) {
			f = math.Copysign(maxFloat(to), f)
		}

		return floatScalar(f)

	case to.IsInteger():
		if math.IsNaN(s.f) {
			return intScalar(wide.Int{})
		}

		// math.Round breaks ties away from zero
		return intScalar(saturateFloat(math.Round(s.f), to))

	default:
		if to == primitive.KindFloat64 {
			return s
		}

		n := narrow32(s.f)
		if math.IsInf(n, 0) && !math.IsInf(s.f, 0) {
			n = math.Copysign(math.MaxFloat32, n)
		}

		return floatScalar(n)
	}
}

// bitwise reinterprets the bit pattern of s as a value of to. Both types
// must have the same width. It reports false when the pattern is zero and
// to excludes zero.
func bitwise(from, to primitive.Type, s scalar) (scalar, bool) {
	hi, lo := bitPattern(from.Kind, s)

	var out scalar
	switch to.Kind {
	case primitive.KindFloat32:
		out = floatScalar(float64(math.Float32frombits(uint32(lo))))
	case primitive.KindFloat64:
		out = floatScalar(math.Float64frombits(lo))
	default:
		out = intScalar(wide.FromTwos(hi, lo).Wrap(to.Bits(), to.Kind.IsSigned()))
	}

	if to.NonZero && out.isZero() {
		return out, false
	}

	return out, true
}

// bitPattern returns the two's complement or IEEE 754 encoding of s,
// sign-extended to 128 bits for integers.
func bitPattern(k primitive.KindEnum, s scalar) (hi, lo uint64) {
	switch k {
	case primitive.KindFloat32:
		return 0, uint64(math.Float32bits(float32(s.f)))
	case primitive.KindFloat64:
		return 0, math.Float64bits(s.f)
	default:
		return s.i.Twos()
	}
}

func maxFloat(k primitive.KindEnum) float64 {
	if k == primitive.KindFloat32 {
		return math.MaxFloat32
	}

	return math.MaxFloat64
}

func intToFloat(i wide.Int, to primitive.KindEnum) float64 {
	if to == primitive.KindFloat32 {
		return float64(i.Float32())
	}

	return i.Float64()
}

// saturateFloat converts an integer-valued (or infinite) float to kind to,
// clamping it to the kind's range.
func saturateFloat(t float64, to primitive.KindEnum) wide.Int {
	width, signed := to.Bits(), to.IsSigned()

	switch {
	case t < to.MinFloat():
		return wide.Min(width, signed)
	case t > to.MaxFloatBelow(primitive.KindFloat64.Digits()):
		return wide.Max(width, signed)
	default:
		return wide.FromFloat(t)
	}
}

// narrow32 rounds f to the nearest float32, ties to even, and returns it
// as a float64. Finite values beyond the float32 range become infinite,
// which Go leaves to the implementation for plain conversions.
func narrow32(f float64) float64 {
	if math.Abs(f) >= float32Overflow {
		return math.Copysign(math.Inf(1), f)
	}

	return float64(float32(f))
}
