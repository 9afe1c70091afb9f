package cast_test

import (
	"math"
	"numcast/cast"
	"testing"

	"github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNonZero(t *testing.T) {
	t.Parallel()

	n, ok := cast.NewNonZero(int8(-3))
	require.True(t, ok)
	assert.Equal(t, int8(-3), n.Get())
	assert.True(t, n.IsValid())
	assert.Equal(t, "-3", n.String())

	_, ok = cast.NewNonZero(uint64(0))
	assert.False(t, ok)

	_, ok = cast.NewNonZero(num.U128{})
	assert.False(t, ok)

	assert.False(t, cast.NonZero[int]{}.IsValid())
	assert.PanicsWithValue(t, "cast: zero passed to MustNonZero[uint16]", func() { cast.MustNonZero(uint16(0)) })
}

func TestClassifyNonZero(t *testing.T) {
	t.Parallel()

	t.Run("zero is unrepresentable", func(t *testing.T) {
		t.Parallel()

		o := cast.Classify[cast.NonZero[uint8]](int32(0))
		assert.Equal(t, cast.StatusUnrepresentable, o.Status)
		assert.EqualError(t, o.Err(), "numerical cast failed [0 (int32) -> (NonZero[uint8])]")

		_, err := cast.Strict[cast.NonZero[int64]](0.0)
		assert.ErrorIs(t, err, cast.ErrUnrepresentable)
		assert.NotErrorIs(t, err, cast.ErrLossy)

		var failed *cast.UnrepresentableError[float64, cast.NonZero[int64]]
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, 0.0, failed.From)
	})

	t.Run("raw value of zero is unrepresentable", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, cast.StatusUnrepresentable, cast.Classify[cast.NonZero[uint8]](uint16(256)).Status)
		assert.Equal(t, cast.StatusUnrepresentable, cast.Classify[cast.NonZero[int32]](0.75).Status)
		assert.Equal(t, cast.StatusUnrepresentable, cast.Classify[cast.NonZero[int32]](math.NaN()).Status)
	})

	t.Run("lossy keeps a valid value", func(t *testing.T) {
		t.Parallel()

		o := cast.Classify[cast.NonZero[uint8]](uint16(257))
		assert.Equal(t, cast.StatusLossy, o.Status)
		assert.Equal(t, cast.MustNonZero(uint8(1)), o.To)

		_, err := cast.Strict[cast.NonZero[uint8]](uint16(257))
		assert.EqualError(t, err, "numerical cast was lossy [257 (uint16) -> 1 (NonZero[uint8])]")
	})

	t.Run("exact", func(t *testing.T) {
		t.Parallel()

		o := cast.Classify[cast.NonZero[uint8]](uint8(5))
		assert.Equal(t, cast.StatusExact, o.Status)
		assert.Equal(t, uint8(5), o.To.Get())

		assert.Equal(t, int64(-3), cast.Lossless[cast.NonZero[int64]](cast.MustNonZero(int8(-3))).Get())
	})

	t.Run("non-zero source", func(t *testing.T) {
		t.Parallel()

		o := cast.Classify[uint8](cast.MustNonZero(int16(300)))
		assert.Equal(t, cast.StatusLossy, o.Status)
		assert.Equal(t, uint8(44), o.To)
		assert.Equal(t, "Lossy[300 (NonZero[int16]) -> 44 (uint8)]", o.String())

		assert.Equal(t, float32(-7), cast.Lossless[float32](cast.MustNonZero(int8(-7))))
	})
}

func TestClosestNonZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"zero into unsigned", int64(cast.Closest[cast.NonZero[uint8]](int32(0)).Get()), 1},
		{"zero into signed", int64(cast.Closest[cast.NonZero[int8]](int32(0)).Get()), 1},
		{"positive zero float", int64(cast.Closest[cast.NonZero[int8]](0.0).Get()), 1},
		{"negative zero float", int64(cast.Closest[cast.NonZero[int8]](math.Copysign(0, -1)).Get()), -1},
		{"negative zero into unsigned", int64(cast.Closest[cast.NonZero[uint8]](math.Copysign(0, -1)).Get()), 1},
		{"NaN", int64(cast.Closest[cast.NonZero[int16]](math.NaN()).Get()), 1},
		{"negative NaN", int64(cast.Closest[cast.NonZero[int16]](math.Copysign(math.NaN(), -1)).Get()), -1},
		{"negative NaN into unsigned", int64(cast.Closest[cast.NonZero[uint16]](math.Copysign(math.NaN(), -1)).Get()), 1},
		{"small negative rounds to zero", int64(cast.Closest[cast.NonZero[int16]](-0.4).Get()), -1},
		{"negative into unsigned saturates to zero", int64(cast.Closest[cast.NonZero[uint8]](int64(-300)).Get()), 1},
		{"saturates", int64(cast.Closest[cast.NonZero[int8]](int64(-300)).Get()), -128},
		{"rounds", int64(cast.Closest[cast.NonZero[uint32]](float32(2.5)).Get()), 3},
		{"non-zero source", int64(cast.Closest[cast.NonZero[uint8]](cast.MustNonZero(int64(-5))).Get()), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	assert.Equal(t, cast.MustNonZero(uint8(1)), cast.Lossy[cast.NonZero[uint8]](int32(0)))
	assert.Equal(t, uint8(255), cast.Closest[uint8](cast.MustNonZero(int32(1000))))
}
