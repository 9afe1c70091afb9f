package analyze

import (
	"cmp"
	"fmt"
	"go/token"
	"slices"

	"numcast/options"
	"numcast/primitive"
)

// Conversion is a Go conversion expression between numeric types.
type Conversion struct {
	Pos      token.Position
	Func     string // enclosing function or method, empty at package level
	Operand  string // source text of the converted expression
	From, To primitive.Type
	Category primitive.CategoryEnum
}

// IsLossless reports whether the conversion preserves every source value.
func (c *Conversion) IsLossless() bool {
	return c.Category&primitive.CategorySafeNumber != 0
}

func (c *Conversion) String() string {
	verdict := "may lose information"
	if c.IsLossless() {
		verdict = "is lossless"
	}

	return fmt.Sprintf("%s: %s -> %s conversion of %s %s", c.Pos, c.From.ShortName(), c.To.ShortName(), c.Operand, verdict)
}

// Suggest returns statements replacing the conversion with a cast under
// policy, assigned to dstVar.
func (c *Conversion) Suggest(policy options.Policy, dstVar string) ([]string, error) {
	funcName := c.Func
	if funcName == "" {
		funcName = "init"
	}

	return primitive.Generate(c.From, c.To, c.Operand, dstVar, funcName, policy)
}

// Report lists the conversions found in the loaded packages, ordered by
// position.
type Report struct {
	Packages    []string
	Conversions []Conversion
}

// Lossy returns the conversions that may lose information.
func (r *Report) Lossy() []Conversion {
	var res []Conversion
	for _, c := range r.Conversions {
		if !c.IsLossless() {
			res = append(res, c)
		}
	}

	return res
}

func (r *Report) sort() {
	slices.Sort(r.Packages)
	slices.SortStableFunc(r.Conversions, func(a, b Conversion) int {
		return cmp.Or(
			cmp.Compare(a.Pos.Filename, b.Pos.Filename),
			cmp.Compare(a.Pos.Line, b.Pos.Line),
			cmp.Compare(a.Pos.Column, b.Pos.Column),
		)
	})
}
