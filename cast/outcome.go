package cast

import (
	"errors"
	"fmt"
	"strings"

	"numcast/primitive"
)

//go:generate go tool stringer -type=Status -trimprefix=Status

// Status classifies a single conversion.
type Status int

const (
	_ Status = iota // zero value is not a classification

	StatusExact           // the target holds the source value exactly
	StatusLossy           // the target holds a different value
	StatusUnrepresentable // the target cannot hold any value derived from the source
)

var (
	ErrLossy             = errors.New("numerical cast was lossy")
	ErrUnrepresentable   = errors.New("numerical cast failed")
	ErrBitwiseWidth      = errors.New("bitwise cast between types of different width")
	ErrNotStaticLossless = errors.New("cast is not lossless for every source value")
	ErrNotSaturating     = errors.New("saturating cast is not defined for the type pair")
	ErrAssumedExact      = errors.New("cast assumed to be exact")
	ErrTypeMismatch      = errors.New("value does not match the source type")
	ErrUnknownStatus     = errors.New("unknown cast status")
)

// ParseStatus parses a status name such as "exact" or "Lossy".
func ParseStatus(name string) (Status, error) {
	for s := StatusExact; s <= StatusUnrepresentable; s++ {
		if strings.EqualFold(s.String(), strings.TrimSpace(name)) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, name)
}

// Outcome is the classified result of casting From to T. To is meaningful
// unless Status is StatusUnrepresentable.
type Outcome[F, T Number] struct {
	From   F
	To     T
	Status Status
}

func (o Outcome[F, T]) IsExact() bool {
	return o.Status == StatusExact
}

// Err returns nil for exact outcomes, otherwise a *LossyError or an
// *UnrepresentableError.
func (o Outcome[F, T]) Err() error {
	switch o.Status {
	case StatusExact:
		return nil
	case StatusLossy:
		return &LossyError[F, T]{From: o.From, To: o.To}
	default:
		return &UnrepresentableError[F, T]{From: o.From}
	}
}

// Value returns the exact value or the error describing why there is none.
func (o Outcome[F, T]) Value() (T, error) {
	if err := o.Err(); err != nil {
		var zero T
		return zero, err
	}

	return o.To, nil
}

// Lossy returns To, or the closest value when no raw value exists.
func (o Outcome[F, T]) Lossy() T {
	if o.Status == StatusUnrepresentable {
		return o.Closest()
	}

	return o.To
}

// Closest returns the representable value nearest to From.
func (o Outcome[F, T]) Closest() T {
	if o.Status == StatusExact {
		return o.To
	}

	return Closest[T](o.From)
}

// AssumedExact returns the exact value. A non-exact outcome panics with
// ErrAssumedExact unless built with the numcast_release tag, in which case
// it behaves like Lossy.
func (o Outcome[F, T]) AssumedExact() T {
	if o.Status != StatusExact && debugAssertions {
		panic(fmt.Errorf("%w: %w", ErrAssumedExact, o.Err()))
	}

	return o.Lossy()
}

func (o Outcome[F, T]) String() string {
	if o.Status == StatusUnrepresentable {
		return fmt.Sprintf("%s[%v (%s) -> (%s)]", o.Status, o.From, typeOf[F](), typeOf[T]())
	}

	return fmt.Sprintf("%s[%v (%s) -> %v (%s)]", o.Status, o.From, typeOf[F](), o.To, typeOf[T]())
}

// LossyError carries both the source value and the value the cast
// produced.
type LossyError[F, T Number] struct {
	From F
	To   T
}

func (e *LossyError[F, T]) Error() string {
	return lossyMessage(e.From, e.To, typeOf[F](), typeOf[T]())
}

func (e *LossyError[F, T]) Is(target error) bool {
	return target == ErrLossy
}

// UnrepresentableError carries the source value of a cast into a non-zero
// type whose result would have been zero.
type UnrepresentableError[F, T Number] struct {
	From F
}

func (e *UnrepresentableError[F, T]) Error() string {
	return unrepresentableMessage(e.From, typeOf[F](), typeOf[T]())
}

func (e *UnrepresentableError[F, T]) Is(target error) bool {
	return target == ErrUnrepresentable
}

// DynamicError is the error of a cast evaluated with Eval, where the Go
// types are only known at run time.
type DynamicError struct {
	From, To         any // To is nil when Status is StatusUnrepresentable
	FromType, ToType primitive.Type
	Status           Status
}

func (e *DynamicError) Error() string {
	if e.Status == StatusUnrepresentable {
		return unrepresentableMessage(e.From, e.FromType, e.ToType)
	}

	return lossyMessage(e.From, e.To, e.FromType, e.ToType)
}

func (e *DynamicError) Is(target error) bool {
	switch e.Status {
	case StatusLossy:
		return target == ErrLossy
	case StatusUnrepresentable:
		return target == ErrUnrepresentable
	default:
		return false
	}
}

func lossyMessage(from, to any, fromType, toType primitive.Type) string {
	return fmt.Sprintf("%s [%v (%s) -> %v (%s)]", ErrLossy, from, fromType, to, toType)
}

func unrepresentableMessage(from any, fromType, toType primitive.Type) string {
	return fmt.Sprintf("%s [%v (%s) -> (%s)]", ErrUnrepresentable, from, fromType, toType)
}
