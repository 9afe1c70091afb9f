package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"numcast/internal/gen"
	"numcast/internal/mapping"
	"numcast/internal/plan"
	"numcast/node"
)

func runGen(_ context.Context, e *env, args []string) int {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	var pf pairFlags
	pf.register(fs)
	policyName := fs.String("policy", "strict", "cast policy")
	src := fs.String("src", "src", "source expression")
	dst := fs.String("dst", "dst", "target variable")
	funcName := fs.String("func", "convert", "enclosing function, used in strict error messages")
	castPkg := fs.String("cast-pkg", gen.CastPkg, "import path of the cast package")
	out := fs.String("o", "", "write a complete Go file declaring -func to this path")
	pkgName := fs.String("package", "", "package clause of the -o file; defaults to the directory name")
	mappingPath := fs.String("mapping", "", "generate every function of a YAML mapping file; -o names the output directory")

	if code, ok := parseFlags(fs, e, args); !ok {
		return code
	}

	if fs.NArg() > 0 {
		e.errorf("gen takes no arguments")
		return ExitInvalidInvocation
	}

	if *mappingPath != "" {
		return runGenMapping(e, *mappingPath, *out)
	}

	if !token.IsIdentifier(*dst) {
		e.errorf("-dst %q is not an identifier", *dst)
		return ExitInvalidInvocation
	}

	fromName, toName, err := pf.names()
	if err != nil {
		e.errorf("%v", err)
		return ExitInvalidInvocation
	}

	from, err := node.ParseShape(fromName)
	if err != nil {
		e.errorf("%v", err)
		return ExitInvalidInvocation
	}

	to, err := node.ParseShape(toName)
	if err != nil {
		e.errorf("%v", err)
		return ExitInvalidInvocation
	}

	policy, ok := parsePolicy(e, *policyName)
	if !ok {
		return ExitInvalidInvocation
	}

	if *out != "" {
		return writeGenFile(e, genFile{
			path:    *out,
			pkg:     *pkgName,
			castPkg: *castPkg,
			fn:      gen.Func{Name: *funcName, Src: from, Dst: to, Policy: policy},
		})
	}

	res, err := node.NewGenerator(policy, *funcName).Generate(from, to, *src, *dst)
	if err != nil {
		e.errorf("%v", err)
		return ExitFailure
	}

	lines := res.Statements
	e.log.WithPair(fromName, toName).Debug("statements generated", "policy", policy.String(), "lines", len(lines))

	if imports := gen.Imports(res.Imports, *castPkg); len(imports) > 0 {
		fmt.Fprintln(e.stdout, "import (")
		for _, imp := range imports {
			fmt.Fprintf(e.stdout, "\t%s\n", imp)
		}
		fmt.Fprintln(e.stdout, ")")
		fmt.Fprintln(e.stdout)
	}

	fmt.Fprintln(e.stdout, strings.Join(lines, "\n"))

	return ExitSuccess
}

type genFile struct {
	path    string
	pkg     string
	castPkg string
	fn      gen.Func
}

func writeGenFile(e *env, f genFile) int {
	dir, name := filepath.Split(f.path)
	if dir == "" {
		dir = "."
	}

	pkg := f.pkg
	if pkg == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			e.errorf("%v", err)
			return ExitFailure
		}

		pkg = filepath.Base(abs)
	}

	file, err := gen.Generate(gen.File{
		Filename: name,
		Package:  pkg,
		CastPkg:  f.castPkg,
		Funcs:    []gen.Func{f.fn},
	})
	if err != nil {
		e.errorf("%v", err)
		if errors.Is(err, gen.ErrInvalidName) {
			return ExitInvalidInvocation
		}

		return ExitFailure
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{*file}, dir); err != nil {
		e.errorf("%v", err)
		return ExitFailure
	}

	e.log.Info("file generated", "path", f.path, "package", pkg, "policy", f.fn.Policy.String())

	return ExitSuccess
}

// runGenMapping generates the files of a mapping file into outDir, which
// defaults to the mapping file's directory.
func runGenMapping(e *env, path, outDir string) int {
	mf, err := mapping.LoadFile(path)
	if err != nil {
		e.errorf("%v", err)
		return ExitConfigError
	}

	p := plan.Resolve(mf)
	printDiagnostics(e.stderr, &p.Diagnostics, false)

	if p.Diagnostics.HasErrors() {
		e.log.Error("mapping rejected", "path", path, "errors", len(p.Diagnostics.Errors))
		return ExitFailure
	}

	if outDir == "" {
		outDir = filepath.Dir(path)
	}

	files := make([]gen.GeneratedFile, 0, len(p.Files))
	for _, f := range p.Files {
		file, err := gen.Generate(f)
		if err != nil {
			e.errorf("%v", err)
			return ExitFailure
		}

		files = append(files, *file)
	}

	if err := gen.WriteFiles(files, outDir); err != nil {
		e.errorf("%v", err)
		return ExitFailure
	}

	for _, f := range files {
		fmt.Fprintln(e.stdout, filepath.Join(outDir, f.Filename))
	}

	e.log.Info("mapping generated", "path", path, "files", len(files))

	return ExitSuccess
}
