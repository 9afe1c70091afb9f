// Package wide implements the 128-bit integer arithmetic the cast engine
// needs: every integer of up to 128 bits, signed or unsigned, is held as a
// sign and a 128-bit magnitude.
package wide

import (
	"math"
	"math/bits"

	"github.com/shabbyrobe/go-num"
)

// Int is an integer in [-(2^128-1), 2^128-1]. The zero value is 0. Zero is
// never negative.
type Int struct {
	Neg    bool
	Hi, Lo uint64 // magnitude
}

func mk(neg bool, hi, lo uint64) Int {
	if hi == 0 && lo == 0 {
		neg = false
	}

	return Int{Neg: neg, Hi: hi, Lo: lo}
}

func FromUint64(v uint64) Int {
	return Int{Lo: v}
}

func FromInt64(v int64) Int {
	if v < 0 {
		return Int{Neg: true, Lo: uint64(-v)} // wraps correctly for math.MinInt64
	}

	return Int{Lo: uint64(v)}
}

func FromU128(v num.U128) Int {
	hi, lo := v.Raw()
	return Int{Hi: hi, Lo: lo}
}

func FromI128(v num.I128) Int {
	return FromTwos(v.Raw())
}

// FromTwos interprets hi:lo as a 128-bit two's complement integer.
func FromTwos(hi, lo uint64) Int {
	if hi>>63 == 0 {
		return Int{Hi: hi, Lo: lo}
	}

	hi, lo = negate(hi, lo)
	return Int{Neg: true, Hi: hi, Lo: lo}
}

// Twos returns the 128-bit two's complement encoding of x. Magnitudes of
// 2^127 and above wrap.
func (x Int) Twos() (hi, lo uint64) {
	if x.Neg {
		return negate(x.Hi, x.Lo)
	}

	return x.Hi, x.Lo
}

// Uint64 returns the low 64 bits of the two's complement encoding; converting
// the result to a narrower Go integer type truncates the same way.
func (x Int) Uint64() uint64 {
	_, lo := x.Twos()
	return lo
}

func (x Int) U128() num.U128 {
	return num.U128FromRaw(x.Twos())
}

func (x Int) I128() num.I128 {
	return num.I128FromRaw(x.Twos())
}

// String formats x in base 10.
func (x Int) String() string {
	s := num.U128FromRaw(x.Hi, x.Lo).String()
	if x.Neg {
		return "-" + s
	}

	return s
}

func (x Int) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// BitLen returns the number of bits needed to hold the magnitude.
func (x Int) BitLen() int {
	if x.Hi != 0 {
		return 128 - bits.LeadingZeros64(x.Hi)
	}

	return 64 - bits.LeadingZeros64(x.Lo)
}

// TrailingZeros returns the number of trailing zero bits of the magnitude;
// 128 for zero.
func (x Int) TrailingZeros() int {
	if x.Lo != 0 {
		return bits.TrailingZeros64(x.Lo)
	}

	if x.Hi != 0 {
		return 64 + bits.TrailingZeros64(x.Hi)
	}

	return 128
}

// SignificantBits returns the width of the magnitude once trailing zeros
// are shifted out; a float with at least that many digits holds x exactly.
func (x Int) SignificantBits() int {
	if x.IsZero() {
		return 0
	}

	return x.BitLen() - x.TrailingZeros()
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	switch {
	case x.Neg && !y.Neg:
		return -1
	case !x.Neg && y.Neg:
		return 1
	}

	c := cmpMag(x, y)
	if x.Neg {
		return -c
	}

	return c
}

func cmpMag(x, y Int) int {
	switch {
	case x.Hi < y.Hi:
		return -1
	case x.Hi > y.Hi:
		return 1
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	default:
		return 0
	}
}

// Max returns the largest integer of the given width and signedness.
func Max(width int, signed bool) Int {
	if signed {
		width--
	}

	hi, lo := ones(width)
	return Int{Hi: hi, Lo: lo}
}

// Min returns the smallest integer of the given width and signedness.
func Min(width int, signed bool) Int {
	if !signed {
		return Int{}
	}

	hi, lo := shl(1, width-1)
	return Int{Neg: true, Hi: hi, Lo: lo}
}

// Fits reports whether x lies within the range of the given integer type.
func (x Int) Fits(width int, signed bool) bool {
	if x.IsZero() {
		return true
	}

	if !signed {
		return !x.Neg && x.BitLen() <= width
	}

	if x.BitLen() <= width-1 {
		return true
	}

	// -2^(width-1) is the one value whose magnitude needs the full width
	return x.Neg && x.BitLen() == width && x.TrailingZeros() == width-1
}

// Wrap truncates the two's complement encoding of x to width bits and
// reinterprets the result with the given signedness, exactly like a Go
// conversion between integer types.
func (x Int) Wrap(width int, signed bool) Int {
	hi, lo := x.Twos()
	mhi, mlo := ones(width)
	hi, lo = hi&mhi, lo&mlo

	if signed && bit(hi, lo, width-1) {
		// sign-extend to 128 bits
		hi, lo = hi|^mhi, lo|^mlo
		return FromTwos(hi, lo)
	}

	return Int{Hi: hi, Lo: lo}
}

// Saturate returns x when it fits, otherwise the bound of the given type
// closest to x.
func (x Int) Saturate(width int, signed bool) Int {
	switch {
	case x.Fits(width, signed):
		return x
	case x.Neg:
		return Min(width, signed)
	default:
		return Max(width, signed)
	}
}

// FromFloat converts an integer-valued float with magnitude below 2^128.
// Other inputs produce unspecified results; callers range-check first.
func FromFloat(f float64) Int {
	neg := math.Signbit(f)
	a := math.Abs(f)
	if a < 1<<64 {
		return mk(neg, 0, uint64(a))
	}

	frac, exp := math.Frexp(a) // a = frac * 2^exp, frac in [0.5, 1)
	mant := uint64(math.Ldexp(frac, 53))
	hi, lo := shl(mant, exp-53)
	return mk(neg, hi, lo)
}

// Float64 returns x rounded to the nearest float64, ties to even.
func (x Int) Float64() float64 {
	top, shift := x.top64()
	f := math.Ldexp(float64(top), shift)
	if x.Neg {
		return -f
	}

	return f
}

// Float32 returns x rounded to the nearest float32, ties to even. Values
// rounding beyond the float32 range become infinite.
func (x Int) Float32() float32 {
	top, shift := x.top64()
	f := math.Ldexp(float64(float32(top)), shift)
	if f > math.MaxFloat32 {
		f = math.Inf(1)
	}

	if x.Neg {
		return -float32(f)
	}

	return float32(f)
}

// top64 returns the leading 64 bits of the magnitude and the shift that
// restores its scale. Bits shifted out are folded into the lowest bit so
// that a single rounding of top to 24 or 53 digits is still correct.
func (x Int) top64() (top uint64, shift int) {
	if x.Hi == 0 {
		return x.Lo, 0
	}

	n := 64 - bits.LeadingZeros64(x.Hi)
	top = x.Hi<<(64-n) | x.Lo>>n
	if x.Lo<<(64-n) != 0 {
		top |= 1
	}

	return top, n
}

func negate(hi, lo uint64) (uint64, uint64) {
	lo, borrow := bits.Sub64(0, lo, 0)
	hi, _ = bits.Sub64(0, hi, borrow)
	return hi, lo
}

// ones returns a mask of the lowest n bits, 0 <= n <= 128.
func ones(n int) (hi, lo uint64) {
	switch {
	case n <= 0:
		return 0, 0
	case n < 64:
		return 0, 1<<n - 1
	case n < 128:
		return 1<<(n-64) - 1, math.MaxUint64
	default:
		return math.MaxUint64, math.MaxUint64
	}
}

// shl shifts v left by n bits into a 128-bit value, 0 <= n < 128.
func shl(v uint64, n int) (hi, lo uint64) {
	if n >= 64 {
		return v << (n - 64), 0
	}

	return v >> (64 - n), v << n
}

func bit(hi, lo uint64, n int) bool {
	if n >= 64 {
		return hi>>(n-64)&1 == 1
	}

	return lo>>n&1 == 1
}
