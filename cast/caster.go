package cast

import (
	"fmt"

	"numcast/options"
	"numcast/primitive"
)

// Caster converts values of F to T under a fixed policy. It lets generic
// code accept "anything convertible to T" as a value rather than as a
// type-level bound.
type Caster[F, T Number] struct {
	policy options.Policy
}

// For returns a Caster applying policy. Strict is used when policy is the
// zero value.
func For[T, F Number](policy options.Policy) Caster[F, T] {
	if policy == 0 {
		policy = options.PolicyStrict
	}

	return Caster[F, T]{policy: policy}
}

func (c Caster[F, T]) Policy() options.Policy {
	return c.policy
}

// Cast converts v. Only the strict policy and the pair checks of Bitwise,
// Lossless and Saturated produce errors; AssumedExact follows its usual
// debug assertion.
func (c Caster[F, T]) Cast(v F) (T, error) {
	var zero T
	from, to := typeOf[F](), typeOf[T]()

	switch c.policy {
	default:
		return zero, fmt.Errorf("%w: %d", options.ErrUnknownPolicy, int(c.policy))
	case options.PolicyStrict:
		return Strict[T](v)
	case options.PolicyLossy:
		return Lossy[T](v), nil
	case options.PolicyAssumedExact:
		return AssumedExact[T](v), nil
	case options.PolicyClosest:
		return Closest[T](v), nil
	case options.PolicySaturated:
		if !primitive.IsSaturating(from, to) {
			return zero, fmt.Errorf("%w: %s -> %s", ErrNotSaturating, from, to)
		}

		return Saturated[T](v), nil
	case options.PolicyLossless:
		if !primitive.IsStaticLossless(from, to) {
			return zero, fmt.Errorf("%w: %s -> %s", ErrNotStaticLossless, from, to)
		}

		return Lossless[T](v), nil
	case options.PolicyBitwise:
		return TryBitwise[T](v)
	}
}

// Slice converts every element of vs, stopping at the first error. The
// error names the index of the offending element.
func (c Caster[F, T]) Slice(vs []F) ([]T, error) {
	res := make([]T, len(vs))
	for i, v := range vs {
		out, err := c.Cast(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		res[i] = out
	}

	return res, nil
}

// ConvertSlice applies convert, typically one of the policy functions such
// as Closest[T], to every element of vs.
func ConvertSlice[T, F Number](vs []F, convert func(F) T) []T {
	res := make([]T, len(vs))
	for i, v := range vs {
		res[i] = convert(v)
	}

	return res
}
