package primitive

import (
	"numcast/options"
)

var (
	templates map[options.Policy][]string

	// statically lossless casts between native Go types need no runtime support
	nativeTemplate   = []string{"{{.dst}} = {{.dstType}}({{.src}})"}
	identityTemplate = []string{"{{.dst}} = {{.src}}"}
)

func init() {
	templates = map[options.Policy][]string{}

	templates[options.PolicyStrict] = []string{
		"{{.dst}}, err = cast.Strict[{{.dstType}}]({{.src}})",
		"if err != nil {",
		`	return fmt.Errorf("{{.funcName}}: %w", err)`,
		"}",
	}

	templates[options.PolicyLossy] = []string{"{{.dst}} = cast.Lossy[{{.dstType}}]({{.src}})"}
	templates[options.PolicyAssumedExact] = []string{"{{.dst}} = cast.AssumedExact[{{.dstType}}]({{.src}})"}
	templates[options.PolicyClosest] = []string{"{{.dst}} = cast.Closest[{{.dstType}}]({{.src}})"}
	templates[options.PolicySaturated] = []string{"{{.dst}} = cast.Saturated[{{.dstType}}]({{.src}})"}
	templates[options.PolicyLossless] = []string{"{{.dst}} = cast.Lossless[{{.dstType}}]({{.src}})"}
	templates[options.PolicyBitwise] = []string{"{{.dst}} = cast.Bitwise[{{.dstType}}]({{.src}})"}
}

// isNative reports whether t is a built-in Go numeric type.
func isNative(t Type) bool {
	return !t.NonZero && t.Kind != KindInt128 && t.Kind != KindUint128
}

// CodeName returns the spelling of t in code that imports the cast and num
// packages, e.g. cast.NonZero[uint8] or num.U128.
func (t Type) CodeName() string {
	if t.NonZero {
		return "cast.NonZero[" + t.Kind.GoName() + "]"
	}

	return t.Kind.GoName()
}
