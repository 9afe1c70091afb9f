package plan

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"numcast/internal/diagnostic"
	"numcast/internal/gen"
	"numcast/internal/mapping"
	"numcast/node"
	"numcast/options"
	"numcast/primitive"
)

// Plan is the output of resolution.
type Plan struct {
	// Files are ordered by file name; their functions keep mapping order.
	Files       []gen.File
	Diagnostics diagnostic.Diagnostics
}

// Resolve validates mf and resolves it into a plan. Functions with errors
// are left out of the plan and reported in its diagnostics.
func Resolve(mf *mapping.MappingFile) *Plan {
	p := &Plan{}

	p.Diagnostics.Merge(*mapping.Validate(mf))
	if p.Diagnostics.HasErrors() {
		return p
	}

	files := map[string]*gen.File{}
	seen := map[string]string{}

	for i := range mf.Funcs {
		fm := &mf.Funcs[i]

		for _, fn := range resolveFunc(&p.Diagnostics, fm) {
			if prev, ok := seen[fn.Name]; ok {
				p.Diagnostics.AddError(diagnostic.CodeDuplicateFunc,
					fmt.Sprintf("function %s is also generated for %s", fn.Name, prev), fm.Pair(), fm.Name)

				continue
			}

			seen[fn.Name] = fm.Pair()

			f, ok := files[fm.Output]
			if !ok {
				f = &gen.File{Filename: fm.Output, Package: mf.Package, CastPkg: mf.CastPkg}
				files[fm.Output] = f
			}

			f.Funcs = append(f.Funcs, fn)
		}
	}

	for _, f := range files {
		p.Files = append(p.Files, *f)
	}

	slices.SortFunc(p.Files, func(a, b gen.File) int {
		return strings.Compare(a.Filename, b.Filename)
	})

	return p
}

func resolveFunc(res *diagnostic.Diagnostics, fm *mapping.FuncMapping) []gen.Func {
	src, err := node.ParseShape(fm.From)
	if err != nil {
		res.AddError(diagnostic.CodeInvalidMapping, fmt.Sprintf("invalid source type: %v", err), fm.Pair(), fm.Name)
		return nil
	}

	dst, err := node.ParseShape(fm.To)
	if err != nil {
		res.AddError(diagnostic.CodeInvalidMapping, fmt.Sprintf("invalid target type: %v", err), fm.Pair(), fm.Name)
		return nil
	}

	var out []gen.Func

	for _, name := range fm.Policy {
		policy, _ := options.ParsePolicy(name) // checked by mapping.Validate

		fn := gen.Func{Name: fm.Name, Src: src, Dst: dst, Policy: policy}
		if len(fm.Policy) > 1 {
			fn.Name += FuncSuffix(policy)
		}

		if _, err := node.NewGenerator(policy, fn.Name).Generate(src, dst, "src", "dst"); err != nil {
			code := diagnostic.CodeInvalidMapping
			switch {
			case errors.Is(err, primitive.ErrPolicyNotApplicable):
				code = diagnostic.CodePolicyRejected
			case errors.Is(err, node.ErrShapeMismatch):
				code = diagnostic.CodeShapeMismatch
			}

			res.AddError(code, err.Error(), fm.Pair(), fn.Name)

			continue
		}

		out = append(out, fn)
	}

	return out
}

// FuncSuffix returns the name suffix of a function generated for policy,
// e.g. AssumedExact.
func FuncSuffix(policy options.Policy) string {
	var sb strings.Builder
	for part := range strings.SplitSeq(policy.String(), "_") {
		if part == "" {
			continue
		}

		sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}

	return sb.String()
}
