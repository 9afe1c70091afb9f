package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"numcast/primitive"
)

func TestIsStaticLossless(t *testing.T) {
	t.Parallel()

	p := primitive.MustParseType

	tests := []struct {
		from, to string
		lossless bool
	}{
		{"u8", "u16", true},
		{"u16", "u8", false},
		{"u8", "i16", true},
		{"u8", "i8", false},
		{"i8", "u64", false},
		{"i32", "i128", true},
		{"u64", "u128", true},
		{"u32", "f64", true},
		{"i32", "f32", false},
		{"u16", "f32", true},
		{"u64", "f64", false},
		{"f32", "f64", true},
		{"f64", "f32", false},
		{"f32", "i128", false},
		{"nonzero_u8", "u16", true},
		{"nonzero_u8", "nonzero_u16", true},
		{"u8", "nonzero_u16", false},
		{"nonzero_i64", "nonzero_i32", false},
		{"u32", "u32", true},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.lossless, primitive.IsStaticLossless(p(tt.from), p(tt.to)))
		})
	}
}

func TestCategorize(t *testing.T) {
	t.Parallel()

	p := primitive.MustParseType

	assert.Equal(t, primitive.CategorySafeNumber|primitive.CategorySameWidth, primitive.Categorize(p("u32"), p("u32")))
	assert.Equal(t, primitive.CategoryUnsafeNumber|primitive.CategorySameWidth, primitive.Categorize(p("i64"), p("f64")))
	assert.Equal(t, primitive.CategorySafeNumber, primitive.Categorize(p("u8"), p("i16")))
	assert.Equal(t, primitive.CategoryUnsafeNumber, primitive.Categorize(p("f64"), p("u8")))
	assert.Equal(t, primitive.CategoryEnum(primitive.CategoryNone), primitive.Categorize(primitive.Type{}, p("u8")))

	assert.True(t, primitive.IsSameWidth(p("f32"), p("nonzero_i32")))
	assert.False(t, primitive.IsSameWidth(p("f32"), p("i64")))
}

func TestPairs(t *testing.T) {
	t.Parallel()

	n := len(primitive.Types())

	all := primitive.Pairs(primitive.CategoryAll)
	assert.Len(t, all, n*n)

	safe := primitive.Pairs(primitive.CategorySafeNumber)
	unsafe := primitive.Pairs(primitive.CategoryUnsafeNumber)
	assert.Len(t, unsafe, n*n-len(safe))

	for _, pair := range safe {
		assert.True(t, primitive.IsStaticLossless(pair.From, pair.To), "%s -> %s", pair.From, pair.To)
	}

	assert.Empty(t, primitive.Pairs(primitive.CategoryNone))
}
