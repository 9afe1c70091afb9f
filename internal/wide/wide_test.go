package wide

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromInt64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Int{Neg: true, Lo: 1 << 63}, FromInt64(math.MinInt64))
	assert.Equal(t, Int{Lo: math.MaxInt64}, FromInt64(math.MaxInt64))
	assert.Equal(t, Int{}, FromInt64(0))
	assert.Equal(t, "-7", FromInt64(-7).String())
}

func TestTwos(t *testing.T) {
	t.Parallel()

	hi, lo := FromInt64(-1).Twos()
	assert.Equal(t, uint64(math.MaxUint64), hi)
	assert.Equal(t, uint64(math.MaxUint64), lo)

	assert.Equal(t, FromInt64(-1), FromTwos(hi, lo))
	assert.Equal(t, Min(128, true), FromTwos(1<<63, 0))
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFF9C), FromInt64(-100).Uint64())
}

func TestFits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x      Int
		width  int
		signed bool
		fits   bool
	}{
		{"255 u8", FromUint64(255), 8, false, true},
		{"256 u8", FromUint64(256), 8, false, false},
		{"-1 u8", FromInt64(-1), 8, false, false},
		{"127 i8", FromInt64(127), 8, true, true},
		{"128 i8", FromInt64(128), 8, true, false},
		{"-128 i8", FromInt64(-128), 8, true, true},
		{"-129 i8", FromInt64(-129), 8, true, false},
		{"zero i8", Int{}, 8, true, true},
		{"min i128", Min(128, true), 128, true, true},
		{"max u128 i128", Max(128, false), 128, true, false},
		{"max u128 u128", Max(128, false), 128, false, true},
		{"min i64 i64", FromInt64(math.MinInt64), 64, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fits, tt.x.Fits(tt.width, tt.signed))
		})
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FromUint64(4), FromUint64(260).Wrap(8, false))
	assert.Equal(t, FromInt64(-1), FromUint64(255).Wrap(8, true))
	assert.Equal(t, FromUint64(255), FromInt64(-1).Wrap(8, false))
	assert.Equal(t, FromInt64(-128), FromUint64(128).Wrap(8, true))
	assert.Equal(t, Max(128, false), FromInt64(-1).Wrap(128, false))
	assert.Equal(t, FromInt64(-1), Max(128, false).Wrap(128, true))
	assert.Equal(t, FromUint64(math.MaxUint64), FromInt64(-1).Wrap(64, false))
}

func TestSaturate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FromUint64(255), FromUint64(1_000_000_000).Saturate(8, false))
	assert.Equal(t, Int{}, FromInt64(-7).Saturate(16, false))
	assert.Equal(t, FromInt64(-128), FromInt64(-1000).Saturate(8, true))
	assert.Equal(t, FromInt64(math.MaxInt64), Max(128, false).Saturate(64, true))
}

func TestBounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "170141183460469231731687303715884105727", Max(128, true).String())
	assert.Equal(t, "-170141183460469231731687303715884105728", Min(128, true).String())
	assert.Equal(t, "340282366920938463463374607431768211455", Max(128, false).String())
	assert.Equal(t, FromInt64(math.MinInt32), Min(32, true))
	assert.Equal(t, Int{}, Min(64, false))
}

func TestSignificantBits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Int{}.SignificantBits())
	assert.Equal(t, 1, FromUint64(1<<40).SignificantBits())
	assert.Equal(t, 25, FromUint64(16_777_217).SignificantBits())
	assert.Equal(t, 1, Min(128, true).SignificantBits())
	assert.Equal(t, 128, Max(128, false).SignificantBits())
	assert.Equal(t, 128, Int{}.TrailingZeros())
}

func TestFloat64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x    Int
		want float64
	}{
		{"zero", Int{}, 0},
		{"small", FromInt64(-42), -42},
		{"2^53+1 ties to even", FromUint64(1<<53 + 1), 1 << 53},
		{"2^53+3 ties to even", FromUint64(1<<53 + 3), 1<<53 + 4},
		{"max u64", FromUint64(math.MaxUint64), 1 << 64},
		{"max u128", Max(128, false), 0x1p128},
		{"min i128", Min(128, true), -0x1p127},
		// the sticky bit in the low word breaks the apparent tie upwards
		{"above tie", Int{Hi: 1 << 10, Lo: 1<<21 + 1}, 0x1p74 + 0x1p22},
		{"below tie", Int{Hi: 1 << 10, Lo: 1<<21 - 1}, 0x1p74},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.x.Float64())
		})
	}
}

func TestFloat32(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float32(16_777_216), FromUint64(16_777_217).Float32())
	assert.Equal(t, float32(16_777_220), FromUint64(16_777_219).Float32())
	assert.True(t, math.IsInf(float64(Max(128, false).Float32()), 1))
	assert.Equal(t, float32(-0x1p127), Min(128, true).Float32())
}

func TestFromFloat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FromInt64(-5), FromFloat(-5))
	assert.Equal(t, Int{}, FromFloat(math.Copysign(0, -1)))
	assert.Equal(t, Min(128, true), FromFloat(-0x1p127))
	assert.Equal(t, Int{Hi: 1}, FromFloat(0x1p64))
	assert.Equal(t, 0, Int{Hi: 3 << 40}.Cmp(FromFloat(0x3p104)))
}

func TestCmp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, FromInt64(-2).Cmp(FromInt64(-1)))
	assert.Equal(t, 1, FromInt64(1).Cmp(FromInt64(-1)))
	assert.Equal(t, 0, FromUint64(7).Cmp(FromInt64(7)))
	assert.Equal(t, -1, FromUint64(math.MaxUint64).Cmp(Int{Hi: 1}))
}
