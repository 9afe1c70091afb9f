package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"numcast/internal/common"
)

// Diagnostic codes reported by the case runner.
const (
	CodeInvalidCase      = "INVALID_CASE"
	CodeInvalidLiteral   = "INVALID_LITERAL"
	CodeCastExact        = "CAST_EXACT"
	CodeCastLossy        = "CAST_LOSSY"
	CodeCastFailed       = "CAST_UNREPRESENTABLE"
	CodePolicyRejected   = "POLICY_NOT_APPLICABLE"
	CodeValueMismatch    = "EXPECT_VALUE_MISMATCH"
	CodeStatusMismatch   = "EXPECT_STATUS_MISMATCH"
	CodeAssumptionFailed = "ASSUMED_EXACT_FAILED"
)

// Diagnostic codes reported for mapping files.
const (
	CodeInvalidMapping = "INVALID_MAPPING"
	CodeDuplicateFunc  = "DUPLICATE_FUNC"
	CodeShapeMismatch  = "SHAPE_MISMATCH"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// TypePair identifies the cast, e.g. "u32 -> u8" (if any).
	TypePair string
	// Case names the case this relates to (if any).
	Case string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic and returns it for further decoration.
func (d *Diagnostics) AddError(code, message, typePair, caseName string) *Diagnostic {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, typePair, caseName))
	return &d.Errors[len(d.Errors)-1]
}

// AddWarning adds a warning diagnostic and returns it for further decoration.
func (d *Diagnostics) AddWarning(code, message, typePair, caseName string) *Diagnostic {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, typePair, caseName))
	return &d.Warnings[len(d.Warnings)-1]
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typePair, caseName string) *Diagnostic {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, typePair, caseName))
	return &d.Infos[len(d.Infos)-1]
}

func newDiagnostic(severity DiagnosticSeverity, code, message, typePair, caseName string) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		TypePair: typePair,
		Case:     caseName,
	}
}

// Suggest appends a suggestion to d.
func (d *Diagnostic) Suggest(format string, args ...any) *Diagnostic {
	d.Suggestions = append(d.Suggestions, fmt.Sprintf(format, args...))
	return d
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	res := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	res = append(res, d.Errors...)
	res = append(res, d.Warnings...)
	return append(res, d.Infos...)
}

// Count returns the number of diagnostics carrying code.
func (d *Diagnostics) Count(code string) int {
	n := 0
	for _, diag := range d.All() {
		if diag.Code == code {
			n++
		}
	}

	return n
}

// Summary returns a one-line count of diagnostics by severity.
func (d *Diagnostics) Summary() string {
	return fmt.Sprintf("%d error(s), %d warning(s), %d info(s)", len(d.Errors), len(d.Warnings), len(d.Infos))
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Case != "" {
		prefix = append(prefix, d.Case)
	}

	if d.TypePair != "" {
		prefix = append(prefix, "["+d.TypePair+"]")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (" + strings.Join(d.Suggestions, "; ") + ")"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
