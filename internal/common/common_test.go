package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"numcast/internal/common"
)

func TestSlices(t *testing.T) {
	t.Parallel()

	args := []string{"gen", "-pair", "u8->i8"}

	first, ok := common.First(args)
	assert.True(t, ok)
	assert.Equal(t, "gen", first)
	assert.Equal(t, []string{"-pair", "u8->i8"}, common.Rest(args))

	_, ok = common.First([]string(nil))
	assert.False(t, ok)
	assert.Empty(t, common.Rest([]string(nil)))

	_, ok = common.Single(args)
	assert.False(t, ok)

	only, ok := common.Single([]string{"42"})
	assert.True(t, ok)
	assert.Equal(t, "42", only)
}

func TestPkgAlias(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cast", common.PkgAlias("numcast/cast"))
	assert.Equal(t, "castv2", common.PkgAlias("example.com/castv2"))
	assert.Equal(t, "", common.PkgAlias(""))
}
