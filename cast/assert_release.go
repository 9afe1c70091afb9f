//go:build numcast_release

package cast

const debugAssertions = false
