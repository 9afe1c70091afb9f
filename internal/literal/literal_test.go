package literal_test

import (
	"math"
	"numcast/cast"
	"numcast/internal/literal"
	"numcast/primitive"
	"testing"

	"github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  string
		text string
		want any
	}{
		{"u8", "255", uint8(255)},
		{"u8", "0xff", uint8(255)},
		{"i8", "-128", int8(-128)},
		{"i32", "1_000_000", int32(1_000_000)},
		{"usize", "7", uint(7)},
		{"isize", "-7", int(-7)},
		{"u64", "18446744073709551615", uint64(math.MaxUint64)},
		{"u128", "340282366920938463463374607431768211455", num.MaxU128},
		{"i128", "-170141183460469231731687303715884105728", num.MinI128},
		{"f32", "5.5", float32(5.5)},
		{"f64", "-0", math.Copysign(0, -1)},
		{"f64", "-inf", math.Inf(-1)},
		{"f64", "1e300", 1e300},
		{"nonzero_u8", "3", cast.MustNonZero(uint8(3))},
		{"NonZero[int64]", "-9", cast.MustNonZero(int64(-9))},
	}

	for _, tt := range tests {
		t.Run(tt.typ+" "+tt.text, func(t *testing.T) {
			got, err := literal.Parse(primitive.MustParseType(tt.typ), tt.text)
			require.NoError(t, err)
			assert.True(t, literal.Equal(tt.want, got), "want %#v, got %#v", tt.want, got)
		})
	}
}

func TestParseNaN(t *testing.T) {
	t.Parallel()

	v, err := literal.Parse(primitive.Of(primitive.KindFloat32), "nan")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(v.(float32))))

	v, err = literal.Parse(primitive.Of(primitive.KindFloat64), "-NaN")
	require.NoError(t, err)
	assert.True(t, math.Signbit(v.(float64)))
	assert.Equal(t, "-NaN", literal.Format(v))
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  string
		text string
		err  error
	}{
		{"u8", "256", literal.ErrRange},
		{"u8", "-1", literal.ErrInvalid},
		{"i8", "128", literal.ErrRange},
		{"i16", "abc", literal.ErrInvalid},
		{"u32", "", literal.ErrInvalid},
		{"u32", "1.5", literal.ErrInvalid},
		{"f32", "1e39", literal.ErrRange},
		{"u128", "-1", literal.ErrRange},
		{"nonzero_u16", "0", literal.ErrRange},
		{"nonzero_i8", "300", literal.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.typ+" "+tt.text, func(t *testing.T) {
			_, err := literal.Parse(primitive.MustParseType(tt.typ), tt.text)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := literal.Parse(primitive.Type{}, "1")
	assert.ErrorIs(t, err, primitive.ErrUnknownType)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.1", literal.Format(float32(0.1)))
	assert.Equal(t, "1.6777216e+07", literal.Format(float32(16_777_216)))
	assert.Equal(t, "-0", literal.Format(math.Copysign(0, -1)))
	assert.Equal(t, "+Inf", literal.Format(math.Inf(1)))
	assert.Equal(t, "NaN", literal.Format(math.NaN()))
	assert.Equal(t, "255", literal.Format(uint8(255)))
	assert.Equal(t, "-3", literal.Format(cast.MustNonZero(int8(-3))))
	assert.Equal(t, "340282366920938463463374607431768211455", literal.Format(num.MaxU128))

	// formatted values parse back unchanged
	for _, v := range []float64{0.1, -2.5e-300, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		got, err := literal.Parse(primitive.Of(primitive.KindFloat64), literal.Format(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, literal.Equal(math.NaN(), math.Copysign(math.NaN(), -1)))
	assert.False(t, literal.Equal(0.0, math.Copysign(0, -1)))
	assert.False(t, literal.Equal(uint8(1), int8(1)))
	assert.False(t, literal.Equal(float32(1), float64(1)))
	assert.True(t, literal.Equal(num.MaxU128, num.MaxU128))
}
