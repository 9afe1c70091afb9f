package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"numcast/primitive"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

var ErrPackageLoad = errors.New("failed to load packages")

var basicKinds = map[types.BasicKind]primitive.KindEnum{
	types.Int:     primitive.KindInt,
	types.Int8:    primitive.KindInt8,
	types.Int16:   primitive.KindInt16,
	types.Int32:   primitive.KindInt32,
	types.Int64:   primitive.KindInt64,
	types.Uint:    primitive.KindUint,
	types.Uint8:   primitive.KindUint8,
	types.Uint16:  primitive.KindUint16,
	types.Uint32:  primitive.KindUint32,
	types.Uint64:  primitive.KindUint64,
	types.Float32: primitive.KindFloat32,
	types.Float64: primitive.KindFloat64,
}

// Analyzer loads Go packages and collects their numeric conversions.
type Analyzer struct {
	// Dir is the directory patterns are resolved in; empty means the
	// current directory.
	Dir string
	// Tests includes the test files of each package.
	Tests bool
}

// NewAnalyzer creates a new Analyzer resolving patterns in dir.
func NewAnalyzer(dir string) *Analyzer {
	return &Analyzer{Dir: dir}
}

// LoadPackages loads the packages matching patterns (e.g. "./...") and
// reports their conversions.
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*Report, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     a.Dir,
		Tests:   a.Tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPackageLoad, err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrPackageLoad, errors.Join(errs...))
	}

	report := &Report{}
	// with Tests set, a package is loaded once more along with its test files
	seen := map[token.Position]struct{}{}

	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.ID, ".test") {
			continue // generated test main
		}

		report.Packages = append(report.Packages, pkg.PkgPath)
		processPackage(pkg, report, seen)
	}

	report.sort()
	report.Packages = slices.Compact(report.Packages)

	return report, nil
}

func processPackage(pkg *packages.Package, report *Report, seen map[token.Position]struct{}) {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			funcName := ""
			if fn, ok := decl.(*ast.FuncDecl); ok {
				funcName = declName(fn)
			}

			ast.Inspect(decl, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				conv, ok := conversion(pkg, call)
				if !ok {
					return true
				}

				if _, dup := seen[conv.Pos]; !dup {
					seen[conv.Pos] = struct{}{}
					conv.Func = funcName
					report.Conversions = append(report.Conversions, conv)
				}

				return true
			})
		}
	}
}

// conversion recognizes call as a numeric conversion of a non-constant
// operand between two different kinds.
func conversion(pkg *packages.Package, call *ast.CallExpr) (Conversion, bool) {
	if len(call.Args) != 1 {
		return Conversion{}, false
	}

	fun, ok := pkg.TypesInfo.Types[call.Fun]
	if !ok || !fun.IsType() {
		return Conversion{}, false
	}

	arg, ok := pkg.TypesInfo.Types[call.Args[0]]
	if !ok || arg.Value != nil {
		// constant conversions are checked by the compiler
		return Conversion{}, false
	}

	from, to := basicType(arg.Type), basicType(fun.Type)
	if !from.IsValid() || !to.IsValid() || from == to {
		return Conversion{}, false
	}

	return Conversion{
		Pos:      pkg.Fset.Position(call.Pos()),
		Operand:  types.ExprString(call.Args[0]),
		From:     from,
		To:       to,
		Category: primitive.Categorize(from, to),
	}, true
}

// basicType maps t through its underlying type to a numeric type, or the
// zero Type.
func basicType(t types.Type) primitive.Type {
	if t == nil {
		return primitive.Type{}
	}

	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return primitive.Type{}
	}

	kind, ok := basicKinds[b.Kind()]
	if !ok {
		return primitive.Type{}
	}

	return primitive.Of(kind)
}

func declName(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return fn.Name.Name
	}

	return recvName(fn.Recv.List[0].Type) + "." + fn.Name.Name
}

func recvName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return recvName(e.X)
	case *ast.IndexExpr:
		return recvName(e.X)
	case *ast.IndexListExpr:
		return recvName(e.X)
	case *ast.Ident:
		return e.Name
	default:
		return types.ExprString(expr)
	}
}
