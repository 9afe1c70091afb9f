package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MappingFile represents the top-level structure of a mapping file.
type MappingFile struct {
	// Version of the mapping file schema.
	Version string `yaml:"version"`
	// Package is the package clause of the generated files.
	Package string `yaml:"package"`
	// Output is the file functions are written to unless they name one.
	Output string `yaml:"output,omitempty"`
	// CastPkg is the import path of the cast package.
	CastPkg  string        `yaml:"cast_pkg,omitempty"`
	Defaults Defaults      `yaml:"defaults,omitempty"`
	Funcs    []FuncMapping `yaml:"funcs"`
}

// Defaults holds values shared by the functions of a file.
type Defaults struct {
	Policy StringOrArray `yaml:"policy,omitempty"`
}

// FuncMapping describes one generated function, or one per policy.
type FuncMapping struct {
	Name   string        `yaml:"name"`
	From   string        `yaml:"from"`
	To     string        `yaml:"to"`
	Policy StringOrArray `yaml:"policy,omitempty"`
	Output string        `yaml:"output,omitempty"`
}

// Pair returns the function's shape pair as written, e.g. "[]u32 -> []u8".
func (f *FuncMapping) Pair() string {
	return f.From + " -> " + f.To
}

// StringOrArray is a list of strings that may be written in YAML as a
// single string.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		*s = StringOrArray{}
		if str != "" {
			*s = StringOrArray{str}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array", node.Line)
	}
}

// MarshalYAML outputs a single string if s has one element.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}
