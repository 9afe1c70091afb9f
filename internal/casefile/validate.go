package casefile

import (
	"errors"
	"fmt"

	"numcast/cast"
	"numcast/internal/diagnostic"
	"numcast/internal/literal"
	"numcast/internal/match"
	"numcast/primitive"
)

var ErrNilFile = errors.New("case file is nil")

// Resolve validates every case of f and returns the ones that can be
// evaluated. Problems are reported as diagnostics rather than aborting at
// the first one; a case with any error is left out of the result.
func Resolve(f *File) ([]Resolved, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(diagnostic.CodeInvalidCase, ErrNilFile.Error(), "", "")
		return nil, res
	}

	if f.Version != CurrentVersion {
		res.AddError(diagnostic.CodeInvalidCase, fmt.Sprintf("unsupported case file version %q", f.Version), "", "").
			Suggest("use version %q", CurrentVersion)

		return nil, res
	}

	if len(f.Cases) == 0 {
		res.AddWarning(diagnostic.CodeInvalidCase, "case file has no cases", "", "")
	}

	seen := map[string]struct{}{}
	resolved := make([]Resolved, 0, len(f.Cases))

	for i := range f.Cases {
		c := &f.Cases[i]

		if _, ok := seen[c.Name]; ok {
			res.AddError(diagnostic.CodeInvalidCase, fmt.Sprintf("duplicate case name %q", c.Name), c.Pair(), c.Name)
			continue
		}

		seen[c.Name] = struct{}{}

		r, ok := resolveCase(res, c)
		if ok {
			resolved = append(resolved, r)
		}
	}

	return resolved, res
}

func resolveCase(res *diagnostic.Diagnostics, c *Case) (Resolved, bool) {
	r := Resolved{Name: c.Name, Policy: c.Policy}
	valid := true

	from, err := primitive.ParseType(c.From)
	if err != nil {
		suggestType(res.AddError(diagnostic.CodeInvalidCase, fmt.Sprintf("invalid source type: %v", err), c.Pair(), c.Name), c.From)
		valid = false
	}

	to, err := primitive.ParseType(c.To)
	if err != nil {
		suggestType(res.AddError(diagnostic.CodeInvalidCase, fmt.Sprintf("invalid target type: %v", err), c.Pair(), c.Name), c.To)
		valid = false
	}

	if !c.Policy.IsValid() {
		res.AddError(diagnostic.CodeInvalidCase, fmt.Sprintf("invalid policy %s", c.Policy), c.Pair(), c.Name)
		valid = false
	}

	if c.ExpectStatus != "" {
		r.ExpectStatus, err = cast.ParseStatus(c.ExpectStatus)
		if err != nil {
			res.AddError(diagnostic.CodeInvalidCase, err.Error(), c.Pair(), c.Name).
				Suggest("expect_status is one of exact, lossy, unrepresentable")

			valid = false
		}
	}

	if !valid {
		return r, false
	}

	r.From, r.To = from, to

	r.Value, err = literal.Parse(from, string(c.Value))
	if err != nil {
		res.AddError(diagnostic.CodeInvalidLiteral, fmt.Sprintf("value: %v", err), c.Pair(), c.Name)
		valid = false
	}

	if c.Expect != nil {
		r.Expect, err = literal.Parse(to, string(*c.Expect))
		if err != nil {
			res.AddError(diagnostic.CodeInvalidLiteral, fmt.Sprintf("expect: %v", err), c.Pair(), c.Name)
			valid = false
		}
	}

	return r, valid
}

func suggestType(d *diagnostic.Diagnostic, name string) {
	types := primitive.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.ShortName()
	}

	if s, ok := match.Closest(name, names); ok {
		d.Suggest("did you mean %s?", s)
	}
}
