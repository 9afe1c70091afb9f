package options_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"numcast/options"
)

func ExamplePolicies() {
	for _, p := range options.Policies() {
		fmt.Println(p, p.IsTotal())
	}
	// Output:
	// strict false
	// lossy true
	// assumed_exact true
	// closest true
	// saturated false
	// lossless false
	// bitwise false
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	tests := map[string]options.Policy{
		"strict":        options.PolicyStrict,
		" Checked ":     options.PolicyStrict,
		"Assumed-Exact": options.PolicyAssumedExact,
		"unchecked":     options.PolicyLossy,
		"accept_lossy":  options.PolicyLossy,
		"saturating":    options.PolicySaturated,
		"BITWISE":       options.PolicyBitwise,
	}

	for name, want := range tests {
		got, err := options.ParsePolicy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := options.ParsePolicy("sloppy")
	assert.ErrorIs(t, err, options.ErrUnknownPolicy)
}

func TestPolicyText(t *testing.T) {
	t.Parallel()

	var doc struct {
		Policy options.Policy `yaml:"policy"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("policy: assumed-exact\n"), &doc))
	assert.Equal(t, options.PolicyAssumedExact, doc.Policy)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "policy: assumed_exact\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("policy: fast\n"), &doc))

	_, err = options.Policy(0).MarshalText()
	assert.ErrorIs(t, err, options.ErrUnknownPolicy)
	assert.Equal(t, "Policy(0)", options.Policy(0).String())
	assert.False(t, options.Policy(options.PolicyTotal).IsValid())
}
