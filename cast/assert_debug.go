//go:build !numcast_release

package cast

// debugAssertions makes AssumedExact panic on lossy casts. Build with
// -tags numcast_release to turn the check off.
const debugAssertions = true
