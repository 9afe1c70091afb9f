package casefile

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"numcast/cast"
	"numcast/options"
	"numcast/primitive"
)

// File represents the top-level structure of a case file.
type File struct {
	// Version of the case file schema.
	Version string `yaml:"version"`
	// Defaults apply to every case that leaves the field empty.
	Defaults Defaults `yaml:"defaults,omitempty"`
	// Cases are evaluated in order.
	Cases []Case `yaml:"cases"`
}

// Defaults holds values shared by the cases of a file.
type Defaults struct {
	Policy options.Policy `yaml:"policy,omitempty"`
	From   string         `yaml:"from,omitempty"`
	To     string         `yaml:"to,omitempty"`
}

// Case describes a single cast and, optionally, what it must produce.
type Case struct {
	// Name identifies the case in reports. Defaults to "case-N".
	Name string `yaml:"name,omitempty"`
	// From is the source type, e.g. u32 or nonzero_i8.
	From string `yaml:"from,omitempty"`
	// To is the target type.
	To string `yaml:"to,omitempty"`
	// Value is the source value as a literal of From.
	Value Literal `yaml:"value"`
	// Policy selects the cast function. Defaults to the file default, then
	// strict.
	Policy options.Policy `yaml:"policy,omitempty"`
	// Expect is the value the cast must produce, as a literal of To.
	Expect *Literal `yaml:"expect,omitempty"`
	// ExpectStatus is the classification the cast must have: exact, lossy
	// or unrepresentable.
	ExpectStatus string `yaml:"expect_status,omitempty"`
}

// Pair returns the case's type pair as written, e.g. "u32 -> u8".
func (c *Case) Pair() string {
	return c.From + " -> " + c.To
}

// Literal is the text of a numeric value. In YAML it may be written as a
// number or a string; YAML's .nan and .inf spellings are accepted.
type Literal string

// UnmarshalYAML implements custom YAML unmarshaling for Literal.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a numeric literal, got %v", node.Line, node.Kind)
	}

	switch strings.ToLower(node.Value) {
	case ".nan":
		*l = "nan"
	case ".inf", "+.inf":
		*l = "inf"
	case "-.inf":
		*l = "-inf"
	default:
		*l = Literal(node.Value)
	}

	return nil
}

// MarshalYAML implements custom YAML marshaling for Literal. Literals are
// written unquoted so that numbers stay numbers.
func (l Literal) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: string(l)}, nil
}

// Resolved is a validated case with parsed types and values.
type Resolved struct {
	Name     string
	From, To primitive.Type
	Value    any
	Policy   options.Policy
	// Expect is nil when the case has no expected value.
	Expect any
	// ExpectStatus is zero when the case has no expected status.
	ExpectStatus cast.Status
}

// Pair returns the resolved type pair in short names, e.g. "u32 -> u8".
func (r *Resolved) Pair() string {
	return r.From.ShortName() + " -> " + r.To.ShortName()
}
