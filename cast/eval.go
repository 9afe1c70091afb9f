package cast

import (
	"fmt"
	"reflect"

	"numcast/options"
	"numcast/primitive"
)

// Evaluation is the result of a cast evaluated with Eval.
type Evaluation struct {
	Status Status
	Value  any   // a value of the target's canonical Go type; nil when Err is set
	Err    error // nil for total policies unless the policy does not apply to the pair
}

// Eval casts v from one type to another where both types are only known at
// run time. v must hold a value whose type resolves to from, e.g. uint8 for
// u8 or NonZero[int64] for nonzero_i64.
//
// Eval never panics on policy misuse: the errors Bitwise, Lossless,
// Saturated and AssumedExact would panic with are returned in Err instead.
// Status always holds the classification of the value.
func Eval(from, to primitive.Type, v any, policy options.Policy) (Evaluation, error) {
	if !from.IsValid() || !to.IsValid() {
		return Evaluation{}, fmt.Errorf("%w: %s -> %s", primitive.ErrUnknownType, from, to)
	}

	if got := primitive.FromReflectType(reflect.TypeOf(v)); got != from {
		return Evaluation{}, fmt.Errorf("%w: %T is not %s", ErrTypeMismatch, v, from)
	}

	s := loadAny(v)
	status, raw := classify(from, to, s)
	res := Evaluation{Status: status}

	dynErr := func() error {
		e := &DynamicError{From: v, FromType: from, ToType: to, Status: status}
		if status == StatusLossy {
			e.To = box(to, raw)
		}

		return e
	}

	lossy := func() any {
		if status == StatusUnrepresentable {
			return box(to, closest(from, to, s))
		}

		return box(to, raw)
	}

	switch policy {
	default:
		return Evaluation{}, fmt.Errorf("%w: %d", options.ErrUnknownPolicy, int(policy))

	case options.PolicyStrict:
		if status != StatusExact {
			res.Err = dynErr()
			return res, nil
		}

		res.Value = box(to, raw)

	case options.PolicyLossy:
		res.Value = lossy()

	case options.PolicyAssumedExact:
		if status != StatusExact && debugAssertions {
			res.Err = fmt.Errorf("%w: %w", ErrAssumedExact, dynErr())
			return res, nil
		}

		res.Value = lossy()

	case options.PolicyClosest:
		res.Value = box(to, closest(from, to, s))

	case options.PolicySaturated:
		if !primitive.IsSaturating(from, to) {
			res.Err = fmt.Errorf("%w: %s -> %s", ErrNotSaturating, from, to)
			return res, nil
		}

		res.Value = box(to, closest(from, to, s))

	case options.PolicyLossless:
		if !primitive.IsStaticLossless(from, to) {
			res.Err = fmt.Errorf("%w: %s -> %s", ErrNotStaticLossless, from, to)
			return res, nil
		}

		res.Value = box(to, raw)

	case options.PolicyBitwise:
		if from.Bits() != to.Bits() {
			res.Err = fmt.Errorf("%w: %s (%d bits) -> %s (%d bits)", ErrBitwiseWidth, from, from.Bits(), to, to.Bits())
			return res, nil
		}

		out, ok := bitwise(from, to, s)
		if !ok {
			res.Err = &DynamicError{From: v, FromType: from, ToType: to, Status: StatusUnrepresentable}
			return res, nil
		}

		res.Value = box(to, out)
	}

	return res, nil
}
