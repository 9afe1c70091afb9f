// Package cast converts values between Go numeric types and classifies
// every conversion as exact, lossy or unrepresentable.
//
// Each policy is a generic function whose first type parameter is the
// target type; the source type is inferred:
//
//	n, err := cast.Strict[uint8](x)  // exact value or *LossyError
//	n := cast.Closest[uint8](x)      // nearest representable value
//	n := cast.Lossy[uint8](x)        // what an unchecked cast produces
//
// 128-bit integers are num.U128 and num.I128; NonZero wraps any integer
// type and excludes zero from its domain.
package cast

import (
	"fmt"

	"github.com/shabbyrobe/go-num"
	"golang.org/x/exp/constraints"
)

// Integer is satisfied by every Go integer type and the 128-bit integers.
type Integer interface {
	constraints.Integer | num.U128 | num.I128
}

type Float interface {
	constraints.Float
}

// NonZeroInteger is satisfied by the NonZero wrapper of each built-in
// integer type.
type NonZeroInteger interface {
	NonZero[int] | NonZero[int8] | NonZero[int16] | NonZero[int32] | NonZero[int64] | NonZero[num.I128] |
		NonZero[uint] | NonZero[uint8] | NonZero[uint16] | NonZero[uint32] | NonZero[uint64] | NonZero[num.U128] |
		NonZero[uintptr]
}

// Number is satisfied by every type the engine converts between.
type Number interface {
	Integer | Float | NonZeroInteger
}

// NonZero holds an integer that is known not to be zero. The zero value of
// NonZero is invalid; obtain values through NewNonZero, MustNonZero or a
// cast.
type NonZero[T Integer] struct {
	v T
}

// NewNonZero wraps v, reporting false when v is zero.
func NewNonZero[T Integer](v T) (NonZero[T], bool) {
	var zero T
	if v == zero {
		return NonZero[T]{}, false
	}

	return NonZero[T]{v: v}, true
}

// MustNonZero is like NewNonZero but panics when v is zero.
func MustNonZero[T Integer](v T) NonZero[T] {
	n, ok := NewNonZero(v)
	if !ok {
		panic(fmt.Sprintf("cast: zero passed to MustNonZero[%T]", v))
	}

	return n
}

// Get returns the wrapped integer.
func (n NonZero[T]) Get() T {
	return n.v
}

// IsValid reports whether n was constructed from a non-zero value.
func (n NonZero[T]) IsValid() bool {
	var zero T
	return n.v != zero
}

func (n NonZero[T]) String() string {
	return fmt.Sprint(n.v)
}

func (n NonZero[T]) load() scalar {
	return load(n.v)
}

func (n *NonZero[T]) store(s scalar) {
	n.v = store[T](s)
}

// nonZero is implemented by every NonZero instantiation so that the
// engine can reach the wrapped integer without knowing T.
type nonZero interface {
	load() scalar
}

type nonZeroPtr interface {
	store(s scalar)
}
