package mapping

import (
	"fmt"
	"go/token"
	"path/filepath"

	"numcast/internal/diagnostic"
	"numcast/internal/match"
	"numcast/options"
)

// Validate checks the structure of mf: names, outputs and policies. Types
// are checked when the file is planned.
func Validate(mf *MappingFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError(diagnostic.CodeInvalidMapping, "mapping file is nil", "", "")
		return res
	}

	if mf.Version != CurrentVersion {
		res.AddError(diagnostic.CodeInvalidMapping, fmt.Sprintf("unsupported mapping file version %q", mf.Version), "", "").
			Suggest("use version %q", CurrentVersion)

		return res
	}

	if !token.IsIdentifier(mf.Package) {
		res.AddError(diagnostic.CodeInvalidMapping, fmt.Sprintf("package %q is not an identifier", mf.Package), "", "")
	}

	if len(mf.Funcs) == 0 {
		res.AddWarning(diagnostic.CodeInvalidMapping, "mapping file has no funcs", "", "")
	}

	for i := range mf.Funcs {
		validateFunc(res, &mf.Funcs[i])
	}

	return res
}

func validateFunc(res *diagnostic.Diagnostics, f *FuncMapping) {
	if !token.IsIdentifier(f.Name) {
		res.AddError(diagnostic.CodeInvalidMapping, fmt.Sprintf("function name %q is not an identifier", f.Name), f.Pair(), f.Name)
	}

	if f.From == "" || f.To == "" {
		res.AddError(diagnostic.CodeInvalidMapping, "both from and to are required", f.Pair(), f.Name)
	}

	if err := validateOutput(f.Output); err != nil {
		res.AddError(diagnostic.CodeInvalidMapping, err.Error(), f.Pair(), f.Name)
	}

	for _, name := range f.Policy {
		if _, err := options.ParsePolicy(name); err != nil {
			d := res.AddError(diagnostic.CodeInvalidMapping, err.Error(), f.Pair(), f.Name)
			if s, ok := match.Closest(name, policyNames()); ok {
				d.Suggest("did you mean %s?", s)
			}
		}
	}
}

// validateOutput accepts plain Go file names only.
func validateOutput(name string) error {
	if filepath.Base(name) != name || filepath.Ext(name) != ".go" {
		return fmt.Errorf("output %q must be a .go file name without directories", name)
	}

	return nil
}

func policyNames() []string {
	names := make([]string, 0, options.PolicyTotal)
	for _, p := range options.Policies() {
		names = append(names, p.String())
	}

	return names
}
