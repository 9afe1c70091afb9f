package options

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPolicy = errors.New("unknown cast policy")

// Policy selects how a cast reacts when the value cannot be preserved.
type Policy int

const (
	_ Policy = iota // zero value is not a policy

	PolicyStrict       // exact value or an error carrying the original and the lossy value
	PolicyLossy        // exact value or the raw lossy value, no signal
	PolicyAssumedExact // exact value; misuse fails a debug assertion
	PolicyClosest      // nearest representable value, never fails
	PolicySaturated    // integer casts clamped to the target range
	PolicyLossless     // only for pairs that are lossless for every value
	PolicyBitwise      // bit pattern reinterpretation between equal widths

	PolicyTotal = int(iota)
)

var policyNames = map[Policy]string{
	PolicyStrict:       "strict",
	PolicyLossy:        "lossy",
	PolicyAssumedExact: "assumed_exact",
	PolicyClosest:      "closest",
	PolicySaturated:    "saturated",
	PolicyLossless:     "lossless",
	PolicyBitwise:      "bitwise",
}

// String returns the policy name as accepted by ParsePolicy.
func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

func (p Policy) IsValid() bool {
	_, ok := policyNames[p]
	return ok
}

// IsTotal reports whether the policy always yields a value.
func (p Policy) IsTotal() bool {
	switch p {
	default:
		return false
	case PolicyLossy, PolicyAssumedExact, PolicyClosest:
		return true
	}
}

// Policies returns every policy in declaration order.
func Policies() []Policy {
	res := make([]Policy, 0, PolicyTotal-1)
	for p := Policy(1); int(p) < PolicyTotal; p++ {
		res = append(res, p)
	}

	return res
}

// ParsePolicy parses a policy name; dashes and case are ignored, so
// "Assumed-Exact" and "assumed_exact" are the same policy.
func ParsePolicy(name string) (Policy, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "-", "_")

	switch s {
	case "accept_lossy", "unchecked":
		return PolicyLossy, nil
	case "exact", "checked":
		return PolicyStrict, nil
	case "saturating":
		return PolicySaturated, nil
	}

	for p, n := range policyNames {
		if n == s {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}
