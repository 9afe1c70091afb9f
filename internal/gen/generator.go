package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"reflect"
	"slices"
	"strings"
	"text/template"

	"numcast/node"
	"numcast/options"
	"numcast/primitive"
)

var (
	ErrInvalidName = errors.New("invalid identifier")
	ErrNoFuncs     = errors.New("no functions to generate")
)

// Func describes one generated cast function:
//
//	func Name(src Src, out *Dst) error
type Func struct {
	Name   string
	Src    reflect.Type
	Dst    reflect.Type
	Policy options.Policy
}

// File describes one generated file.
type File struct {
	Filename string
	Package  string
	// CastPkg is the import path of the cast package; empty means CastPkg.
	CastPkg string
	Funcs   []Func
}

// GeneratedFile is a rendered Go source file.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

type funcData struct {
	Name       string
	Src        string
	Dst        string
	Policy     string
	UsesErr    bool
	Statements []string
}

type fileData struct {
	Package string
	Imports []Import
	Funcs   []funcData
}

var fileTemplate = template.Must(template.New("file").Parse(
	`// Code generated by numcast. DO NOT EDIT.

package {{.Package}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{.}}
{{- end}}
)
{{end}}
{{- range .Funcs}}
// {{.Name}} converts {{.Src}} to {{.Dst}} with the {{.Policy}} policy.
func {{.Name}}(src {{.Src}}, out *{{.Dst}}) error {
	var dst {{.Dst}}
{{- if .UsesErr}}
	var err error
{{- end}}
{{- range .Statements}}
	{{.}}
{{- end}}
	*out = dst
	return nil
}
{{end}}`))

// Generate renders f. When the rendered source does not format, the
// unformatted content is returned along with the error.
func Generate(f File) (*GeneratedFile, error) {
	if !token.IsIdentifier(f.Package) {
		return nil, fmt.Errorf("%w: package %q", ErrInvalidName, f.Package)
	}

	if len(f.Funcs) == 0 {
		return nil, ErrNoFuncs
	}

	data := fileData{Package: f.Package}
	var paths []string

	for _, fn := range f.Funcs {
		fd, err := renderFunc(fn)
		if err != nil {
			return nil, err
		}

		data.Funcs = append(data.Funcs, fd)
		paths = append(paths, primitive.Imports(fd.Statements)...)
		paths = append(paths, primitive.Imports([]string{fd.Src, fd.Dst})...)
	}

	slices.Sort(paths)
	data.Imports = Imports(slices.Compact(paths), f.CastPkg)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	res := &GeneratedFile{Filename: f.Filename, Content: buf.Bytes()}

	formatted, err := format.Source(res.Content)
	if err != nil {
		return res, fmt.Errorf("formatting %s: %w", f.Filename, err)
	}

	res.Content = formatted

	return res, nil
}

func renderFunc(fn Func) (funcData, error) {
	if !token.IsIdentifier(fn.Name) {
		return funcData{}, fmt.Errorf("%w: function %q", ErrInvalidName, fn.Name)
	}

	res, err := node.NewGenerator(fn.Policy, fn.Name).Generate(fn.Src, fn.Dst, "src", "dst")
	if err != nil {
		return funcData{}, fmt.Errorf("%s: %w", fn.Name, err)
	}

	fd := funcData{
		Name:       fn.Name,
		Src:        node.TypeString(fn.Src),
		Dst:        node.TypeString(fn.Dst),
		Policy:     fn.Policy.String(),
		Statements: res.Statements,
	}

	fd.UsesErr = slices.ContainsFunc(res.Statements, func(s string) bool {
		return strings.Contains(s, "err = ")
	})

	return fd, nil
}
