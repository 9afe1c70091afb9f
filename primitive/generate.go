package primitive

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/template"

	"numcast/options"
)

var ErrPolicyNotApplicable = errors.New("policy is not applicable to the type pair")

// Generate returns the Go statements that cast the expression srcName of
// type src into the variable dstName of type dst under policy. The strict
// policy assumes an enclosing function named funcName that returns an error,
// and a variable err in scope.
func Generate(src, dst Type, srcName, dstName, funcName string, policy options.Policy) ([]string, error) {
	if !src.IsValid() || !dst.IsValid() {
		return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownType, src, dst)
	}

	tmpl, err := selectTemplate(src, dst, policy)
	if err != nil {
		return nil, err
	}

	res := make([]string, len(tmpl))
	for i, line := range tmpl {
		t, err := template.New("line").Parse(line)
		if err != nil {
			panic(err)
		}

		var buf bytes.Buffer
		err = t.Execute(&buf, map[string]any{
			"src":      srcName,
			"dst":      dstName,
			"srcType":  src.CodeName(),
			"dstType":  dst.CodeName(),
			"funcName": funcName,
		})
		if err != nil {
			panic(err)
		}

		res[i] = buf.String()
	}

	return res, nil
}

func selectTemplate(src, dst Type, policy options.Policy) ([]string, error) {
	pair := fmt.Sprintf("%s -> %s", src, dst)

	switch policy {
	default:
		return nil, fmt.Errorf("%w: %d", options.ErrUnknownPolicy, int(policy))

	case options.PolicyStrict, options.PolicyLossy, options.PolicyAssumedExact, options.PolicyClosest:
		return templates[policy], nil

	case options.PolicySaturated:
		if !IsSaturating(src, dst) {
			return nil, fmt.Errorf("%w: %s is not saturating for %s", ErrPolicyNotApplicable, policy, pair)
		}

		return templates[policy], nil

	case options.PolicyLossless:
		if !IsStaticLossless(src, dst) {
			return nil, fmt.Errorf("%w: %s is not lossless for every value of %s", ErrPolicyNotApplicable, pair, src)
		}

		if src == dst {
			return identityTemplate, nil
		}

		if isNative(src) && isNative(dst) {
			return nativeTemplate, nil
		}

		return templates[policy], nil

	case options.PolicyBitwise:
		if !IsSameWidth(src, dst) {
			return nil, fmt.Errorf("%w: %s has different bit widths", ErrPolicyNotApplicable, pair)
		}

		// same-width integer conversion in Go already keeps the bit pattern
		if isNative(src) && isNative(dst) && src.Kind.IsInteger() && dst.Kind.IsInteger() {
			return nativeTemplate, nil
		}

		return templates[policy], nil
	}
}

// IsSaturating reports whether a saturating cast is defined for the pair:
// integer (or non-zero) sources into integer targets, and float32 into
// float64.
func IsSaturating(src, dst Type) bool {
	if src.Kind.IsInteger() && dst.Kind.IsInteger() {
		return true
	}

	return src == Of(KindFloat32) && dst == Of(KindFloat64)
}

// Imports returns the import paths needed by generated statements.
func Imports(lines []string) []string {
	imports := map[string]struct{}{}
	for _, ln := range lines {
		if strings.Contains(ln, "fmt.") {
			imports["fmt"] = struct{}{}
		}
		if strings.Contains(ln, "cast.") {
			imports["numcast/cast"] = struct{}{}
		}
		if strings.Contains(ln, "num.") {
			imports["github.com/shabbyrobe/go-num"] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(imports))
}

func allowedSet(allowed CategoryEnum) map[ConversionPair]struct{} {
	res := map[ConversionPair]struct{}{}

	for category := CategoryEnum(1); category&CategoryAll > 0; category <<= 1 {
		if allowed&category == 0 {
			continue
		}

		maps.Copy(res, conversionPairs[category])
	}

	return res
}
