package mapping_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numcast/internal/diagnostic"
	"numcast/internal/mapping"
)

const sample = `
package: units
cast_pkg: example.com/cast
defaults:
  policy: closest
funcs:
  - name: ToBytes
    from: "[]u32"
    to: "[]u8"
    policy: strict
  - name: ToSample
    from: f64
    to: i16
    policy: [closest, lossy]
    output: samples_gen.go
  - name: Grams
    from: u32
    to: f64
`

func TestParse(t *testing.T) {
	t.Parallel()

	mf, err := mapping.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, mapping.CurrentVersion, mf.Version)
	assert.Equal(t, "units", mf.Package)
	assert.Equal(t, "example.com/cast", mf.CastPkg)
	assert.Equal(t, mapping.DefaultOutput, mf.Output)
	require.Len(t, mf.Funcs, 3)

	assert.Equal(t, mapping.StringOrArray{"strict"}, mf.Funcs[0].Policy)
	assert.Equal(t, mapping.DefaultOutput, mf.Funcs[0].Output)
	assert.Equal(t, "[]u32 -> []u8", mf.Funcs[0].Pair())

	assert.Equal(t, mapping.StringOrArray{"closest", "lossy"}, mf.Funcs[1].Policy)
	assert.Equal(t, "samples_gen.go", mf.Funcs[1].Output)

	assert.Equal(t, mapping.StringOrArray{"closest"}, mf.Funcs[2].Policy, "file default")

	assert.True(t, mapping.Validate(mf).IsValid())
}

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	mf, err := mapping.Parse([]byte("package: p\nfuncs:\n  - {name: F, from: u8, to: i8}\n"))
	require.NoError(t, err)

	assert.Equal(t, mapping.StringOrArray{"strict"}, mf.Defaults.Policy)
	assert.Equal(t, mapping.StringOrArray{"strict"}, mf.Funcs[0].Policy)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := mapping.Parse([]byte("funcs: [\n"))
	assert.ErrorContains(t, err, "failed to parse mapping YAML")

	_, err = mapping.Parse([]byte("package: p\nfuncs:\n  - name: F\n    policy: {strict: true}\n"))
	assert.ErrorContains(t, err, "expected string or array")

	_, err = mapping.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read mapping file")
}

func TestLoadFileRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "casts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	mf, err := mapping.LoadFile(path)
	require.NoError(t, err)

	data, err := mapping.Marshal(mf)
	require.NoError(t, err)
	assert.Contains(t, string(data), "policy: strict\n")
	assert.Contains(t, string(data), "- closest\n")

	again, err := mapping.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, mf, again)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		code string
		msg  string
	}{
		{
			name: "version",
			yaml: "version: \"2\"\npackage: p\n",
			code: diagnostic.CodeInvalidMapping,
			msg:  `unsupported mapping file version "2"`,
		},
		{
			name: "package",
			yaml: "package: my-pkg\nfuncs:\n  - {name: F, from: u8, to: i8}\n",
			code: diagnostic.CodeInvalidMapping,
			msg:  `package "my-pkg" is not an identifier`,
		},
		{
			name: "func name",
			yaml: "package: p\nfuncs:\n  - {name: 2F, from: u8, to: i8}\n",
			code: diagnostic.CodeInvalidMapping,
			msg:  `function name "2F" is not an identifier`,
		},
		{
			name: "missing type",
			yaml: "package: p\nfuncs:\n  - {name: F, from: u8}\n",
			code: diagnostic.CodeInvalidMapping,
			msg:  "both from and to are required",
		},
		{
			name: "output",
			yaml: "package: p\nfuncs:\n  - {name: F, from: u8, to: i8, output: gen/casts.go}\n",
			code: diagnostic.CodeInvalidMapping,
			msg:  "must be a .go file name",
		},
		{
			name: "policy",
			yaml: "package: p\nfuncs:\n  - {name: F, from: u8, to: i8, policy: saturate}\n",
			code: diagnostic.CodeInvalidMapping,
			msg:  "(did you mean saturated?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mf, err := mapping.Parse([]byte(tt.yaml))
			require.NoError(t, err)

			d := mapping.Validate(mf)
			require.True(t, d.HasErrors())
			assert.Equal(t, 1, d.Count(tt.code))
			assert.Contains(t, d.Errors[0].String(), tt.msg)
		})
	}

	assert.True(t, mapping.Validate(nil).HasErrors())

	mf, err := mapping.Parse([]byte("package: p\n"))
	require.NoError(t, err)

	d := mapping.Validate(mf)
	assert.False(t, d.HasErrors())
	assert.Len(t, d.Warnings, 1)
}
