package primitive_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numcast/options"
	"numcast/primitive"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	p := primitive.MustParseType

	tests := []struct {
		name     string
		from, to string
		policy   options.Policy
		want     []string
	}{
		{
			name:   "strict",
			from:   "u64",
			to:     "u8",
			policy: options.PolicyStrict,
			want: []string{
				"b, err = cast.Strict[uint8](a)",
				"if err != nil {",
				`	return fmt.Errorf("Convert: %w", err)`,
				"}",
			},
		},
		{
			name:   "closest",
			from:   "f64",
			to:     "nonzero_i32",
			policy: options.PolicyClosest,
			want:   []string{"b = cast.Closest[cast.NonZero[int32]](a)"},
		},
		{
			name:   "lossless native",
			from:   "u8",
			to:     "i16",
			policy: options.PolicyLossless,
			want:   []string{"b = int16(a)"},
		},
		{
			name:   "lossless wide",
			from:   "u64",
			to:     "u128",
			policy: options.PolicyLossless,
			want:   []string{"b = cast.Lossless[num.U128](a)"},
		},
		{
			name:   "lossless identity",
			from:   "nonzero_u8",
			to:     "nonzero_u8",
			policy: options.PolicyLossless,
			want:   []string{"b = a"},
		},
		{
			name:   "bitwise native",
			from:   "i32",
			to:     "u32",
			policy: options.PolicyBitwise,
			want:   []string{"b = uint32(a)"},
		},
		{
			name:   "bitwise float",
			from:   "f64",
			to:     "u64",
			policy: options.PolicyBitwise,
			want:   []string{"b = cast.Bitwise[uint64](a)"},
		},
		{
			name:   "saturated",
			from:   "i64",
			to:     "u16",
			policy: options.PolicySaturated,
			want:   []string{"b = cast.Saturated[uint16](a)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := primitive.Generate(p(tt.from), p(tt.to), "a", "b", "Convert", tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res, spew.Sdump(res))
		})
	}
}

func TestGenerateNotApplicable(t *testing.T) {
	t.Parallel()

	p := primitive.MustParseType

	_, err := primitive.Generate(p("u64"), p("u8"), "a", "b", "F", options.PolicyLossless)
	assert.ErrorIs(t, err, primitive.ErrPolicyNotApplicable)

	_, err = primitive.Generate(p("f64"), p("i32"), "a", "b", "F", options.PolicySaturated)
	assert.ErrorIs(t, err, primitive.ErrPolicyNotApplicable)

	_, err = primitive.Generate(p("u16"), p("u32"), "a", "b", "F", options.PolicyBitwise)
	assert.ErrorIs(t, err, primitive.ErrPolicyNotApplicable)

	_, err = primitive.Generate(primitive.Type{}, p("u32"), "a", "b", "F", options.PolicyStrict)
	assert.ErrorIs(t, err, primitive.ErrUnknownType)

	_, err = primitive.Generate(p("u8"), p("u32"), "a", "b", "F", options.Policy(0))
	assert.ErrorIs(t, err, options.ErrUnknownPolicy)
}

func TestImports(t *testing.T) {
	t.Parallel()

	lines := []string{
		"b, err = cast.Strict[num.U128](a)",
		`	return fmt.Errorf("F: %w", err)`,
	}

	assert.Equal(t, []string{"fmt", "github.com/shabbyrobe/go-num", "numcast/cast"}, primitive.Imports(lines))
	assert.Empty(t, primitive.Imports([]string{"b = uint16(a)"}))
}
