// Package node generates Go statements converting composite numeric values:
// pointers, slices, arrays and maps whose leaves are numeric types. Leaves
// are converted with the statements of primitive.Generate.
package node

import (
	"errors"
	"fmt"
	"reflect"

	"numcast/options"
	"numcast/primitive"
)

var (
	ErrShapeMismatch   = errors.New("source and target shapes differ")
	ErrUnsupportedType = errors.New("unsupported type")
)

// Generator emits conversion statements under a single policy.
type Generator struct {
	policy   options.Policy
	funcName string
	names    map[string]struct{}
}

// Result holds generated statements and the imports they need.
type Result struct {
	Statements []string
	Imports    []string
}

// NewGenerator returns a Generator for policy. funcName names the enclosing
// function in the errors returned by strict statements.
func NewGenerator(policy options.Policy, funcName string) *Generator {
	return &Generator{policy: policy, funcName: funcName}
}

// Generate returns the statements assigning the conversion of srcExpr (of
// type src) to the variable dstVar (of type dst). Strict statements assume
// an err variable in scope. Nil pointers, slices and maps stay nil.
func (g *Generator) Generate(src, dst reflect.Type, srcExpr, dstVar string) (Result, error) {
	if src == nil || dst == nil {
		return Result{}, fmt.Errorf("%w: nil type", ErrUnsupportedType)
	}

	g.names = map[string]struct{}{srcExpr: {}, dstVar: {}, "err": {}}

	lines, err := g.gen(src, dst, srcExpr, dstVar)
	if err != nil {
		return Result{}, err
	}

	return Result{Statements: lines, Imports: primitive.Imports(lines)}, nil
}

func (g *Generator) gen(src, dst reflect.Type, srcExpr, dstVar string) ([]string, error) {
	switch Dispatch(src, dst) {
	case DispatcherPrimitive:
		return g.genPrimitive(src, dst, srcExpr, dstVar)
	case DispatcherPointer:
		return g.genPointer(src, dst, srcExpr, dstVar)
	case DispatcherSlice:
		return g.genSlice(src, dst, srcExpr, dstVar)
	case DispatcherArray:
		return g.genArray(src, dst, srcExpr, dstVar)
	case DispatcherMap:
		return g.genMap(src, dst, srcExpr, dstVar)
	}

	if isNumeric(src) && isNumeric(dst) {
		return nil, fmt.Errorf("%w: named numeric types %s -> %s", ErrUnsupportedType, src, dst)
	}

	return nil, fmt.Errorf("%w: %s -> %s", ErrShapeMismatch, TypeString(src), TypeString(dst))
}

func (g *Generator) genPrimitive(src, dst reflect.Type, srcExpr, dstVar string) ([]string, error) {
	if src == dst {
		return []string{fmt.Sprintf("%s = %s", dstVar, srcExpr)}, nil
	}

	return primitive.Generate(
		primitive.FromReflectType(src), primitive.FromReflectType(dst),
		srcExpr, dstVar, g.funcName, g.policy,
	)
}

func (g *Generator) genPointer(src, dst reflect.Type, srcExpr, dstVar string) ([]string, error) {
	tmp := g.next("v")

	elem, err := g.gen(src.Elem(), dst.Elem(), deref(srcExpr, src.Elem()), tmp)
	if err != nil {
		return nil, err
	}

	out := []string{
		fmt.Sprintf("%s = nil", dstVar),
		fmt.Sprintf("if %s != nil {", srcExpr),
		fmt.Sprintf("\tvar %s %s", tmp, TypeString(dst.Elem())),
	}
	out = append(out, indentAll(elem, 1)...)
	out = append(out,
		fmt.Sprintf("\t%s = &%s", dstVar, tmp),
		"}",
	)

	return out, nil
}

func (g *Generator) genSlice(src, dst reflect.Type, srcExpr, dstVar string) ([]string, error) {
	i := g.next("i")

	elem, err := g.gen(src.Elem(), dst.Elem(), srcExpr+"["+i+"]", dstVar+"["+i+"]")
	if err != nil {
		return nil, err
	}

	out := []string{
		fmt.Sprintf("%s = nil", dstVar),
		fmt.Sprintf("if %s != nil {", srcExpr),
		fmt.Sprintf("\t%s = make(%s, len(%s))", dstVar, TypeString(dst), srcExpr),
		fmt.Sprintf("\tfor %s := range %s {", i, srcExpr),
	}
	out = append(out, indentAll(elem, 2)...)
	out = append(out, "\t}", "}")

	return out, nil
}

func (g *Generator) genArray(src, dst reflect.Type, srcExpr, dstVar string) ([]string, error) {
	i := g.next("i")

	elem, err := g.gen(src.Elem(), dst.Elem(), srcExpr+"["+i+"]", dstVar+"["+i+"]")
	if err != nil {
		return nil, err
	}

	out := []string{fmt.Sprintf("for %s := range %s {", i, srcExpr)}
	out = append(out, indentAll(elem, 1)...)
	out = append(out, "}")

	return out, nil
}

// genMap converts map values through a temporary, as map elements are not
// addressable.
func (g *Generator) genMap(src, dst reflect.Type, srcExpr, dstVar string) ([]string, error) {
	k, v, tmp := g.next("k"), g.next("v"), g.next("v")

	elem, err := g.gen(src.Elem(), dst.Elem(), v, tmp)
	if err != nil {
		return nil, err
	}

	out := []string{
		fmt.Sprintf("%s = nil", dstVar),
		fmt.Sprintf("if %s != nil {", srcExpr),
		fmt.Sprintf("\t%s = make(%s, len(%s))", dstVar, TypeString(dst), srcExpr),
		fmt.Sprintf("\tfor %s, %s := range %s {", k, v, srcExpr),
		fmt.Sprintf("\t\tvar %s %s", tmp, TypeString(dst.Elem())),
	}
	out = append(out, indentAll(elem, 2)...)
	out = append(out,
		fmt.Sprintf("\t\t%s[%s] = %s", dstVar, k, tmp),
		"\t}",
		"}",
	)

	return out, nil
}

func (g *Generator) next(stem string) string {
	return NewStem(stem, g.names).Next()
}

func isNumeric(t reflect.Type) bool {
	return primitive.FromReflectType(t).IsValid()
}
