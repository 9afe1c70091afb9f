package plan_test

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numcast/internal/diagnostic"
	"numcast/internal/mapping"
	"numcast/internal/plan"
	"numcast/options"
)

func parse(t *testing.T, data string) *mapping.MappingFile {
	t.Helper()

	mf, err := mapping.Parse([]byte(data))
	require.NoError(t, err)

	return mf
}

func TestResolve(t *testing.T) {
	t.Parallel()

	p := plan.Resolve(parse(t, `
package: units
cast_pkg: example.com/cast
output: z_gen.go
funcs:
  - name: ToBytes
    from: "[]u32"
    to: "[]u8"
  - name: ToSample
    from: f64
    to: i16
    policy: [closest, assumed_exact]
    output: a_gen.go
  - name: Grams
    from: "map[string]u16"
    to: "map[string]f32"
    policy: lossless
`))
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Summary())
	t.Log(spew.Sdump(p.Files))

	require.Len(t, p.Files, 2)

	a, z := p.Files[0], p.Files[1]
	assert.Equal(t, "a_gen.go", a.Filename)
	assert.Equal(t, "units", a.Package)
	assert.Equal(t, "example.com/cast", a.CastPkg)
	require.Len(t, a.Funcs, 2)
	assert.Equal(t, "ToSampleClosest", a.Funcs[0].Name)
	assert.Equal(t, options.PolicyClosest, a.Funcs[0].Policy)
	assert.Equal(t, "ToSampleAssumedExact", a.Funcs[1].Name)
	assert.Equal(t, reflect.TypeFor[float64](), a.Funcs[1].Src)
	assert.Equal(t, reflect.TypeFor[int16](), a.Funcs[1].Dst)

	assert.Equal(t, "z_gen.go", z.Filename)
	require.Len(t, z.Funcs, 2)
	assert.Equal(t, "ToBytes", z.Funcs[0].Name)
	assert.Equal(t, options.PolicyStrict, z.Funcs[0].Policy)
	assert.Equal(t, reflect.TypeFor[[]uint8](), z.Funcs[0].Dst)
	assert.Equal(t, "Grams", z.Funcs[1].Name)
	assert.Equal(t, reflect.TypeFor[map[string]float32](), z.Funcs[1].Dst)
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		yaml  string
		code  string
		funcs int
	}{
		{
			name: "invalid mapping",
			yaml: "package: 1p\nfuncs:\n  - {name: F, from: u8, to: i8}\n",
			code: diagnostic.CodeInvalidMapping,
		},
		{
			name:  "unknown type",
			yaml:  "package: p\nfuncs:\n  - {name: F, from: u7, to: i8}\n  - {name: G, from: u8, to: i8}\n",
			code:  diagnostic.CodeInvalidMapping,
			funcs: 1,
		},
		{
			name: "shape mismatch",
			yaml: "package: p\nfuncs:\n  - {name: F, from: \"[]u8\", to: \"*i8\"}\n",
			code: diagnostic.CodeShapeMismatch,
		},
		{
			name:  "policy not applicable",
			yaml:  "package: p\nfuncs:\n  - {name: F, from: u64, to: u8, policy: [lossless, lossy]}\n",
			code:  diagnostic.CodePolicyRejected,
			funcs: 1,
		},
		{
			name:  "duplicate",
			yaml:  "package: p\nfuncs:\n  - {name: F, from: u64, to: u8}\n  - {name: F, from: u32, to: u8}\n",
			code:  diagnostic.CodeDuplicateFunc,
			funcs: 1,
		},
		{
			name:  "duplicate after expansion",
			yaml:  "package: p\nfuncs:\n  - {name: FLossy, from: u64, to: u8}\n  - {name: F, from: u32, to: u8, policy: [strict, lossy]}\n",
			code:  diagnostic.CodeDuplicateFunc,
			funcs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := plan.Resolve(parse(t, tt.yaml))
			assert.Equal(t, 1, p.Diagnostics.Count(tt.code), p.Diagnostics.Summary())

			funcs := 0
			for _, f := range p.Files {
				funcs += len(f.Funcs)
			}

			assert.Equal(t, tt.funcs, funcs)
		})
	}
}

func TestFuncSuffix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Strict", plan.FuncSuffix(options.PolicyStrict))
	assert.Equal(t, "AssumedExact", plan.FuncSuffix(options.PolicyAssumedExact))
	assert.Equal(t, "Bitwise", plan.FuncSuffix(options.PolicyBitwise))
}
