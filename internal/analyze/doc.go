// Package analyze finds numeric conversions in Go source.
//
// It loads packages with golang.org/x/tools/go/packages and walks their AST
// with go/types information, reporting every conversion T(x) between
// numeric types whose operand is not a constant. Each conversion is
// categorized with the primitive package, so callers can tell the casts that
// preserve every value from those that may silently wrap, truncate or round.
package analyze
