package diagnostic

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"

	"iface-caster/internal/common"
)

// Diagnostic codes.
const (
	CodeDuplicateImplementation = "duplicate-implementation"
	CodeDuplicateDeclaration    = "duplicate-declaration"
	CodeUndeclaredInterface     = "undeclared-interface"

	CodeManifestMissingInterface      = "manifest-missing-interface"
	CodeManifestMissingImplementation = "manifest-missing-implementation"
	CodeManifestUnexpected            = "manifest-unexpected-implementation"
	CodeManifestEmptyInterface        = "manifest-empty-interface"
)

// Diagnostics holds all diagnostic information from a build or a check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// TypePair identifies the "Concrete -> Interface" pair this relates to (if any).
	TypePair string
	// Origin is where the offending registration was made (if known).
	Origin string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Pair formats a concrete/interface pair the way TypePair expects it.
func Pair(concrete, iface fmt.Stringer) string {
	return concrete.String() + " -> " + iface.String()
}

// Add appends d to the bucket matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typePair, origin string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, TypePair: typePair, Origin: origin})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typePair, origin string) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, TypePair: typePair, Origin: origin})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typePair, origin string) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, TypePair: typePair, Origin: origin})
}

// HasErrors returns true if there are any error diagnostics.
func (d Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the number of diagnostics of every severity.
func (d Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Count returns the number of diagnostics with the given severity.
func (d Diagnostics) Count(s Severity) int {
	switch s {
	case SeverityError:
		return len(d.Errors)
	case SeverityWarning:
		return len(d.Warnings)
	default:
		return len(d.Infos)
	}
}

// ByCode returns every diagnostic carrying code, errors first.
func (d Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic
	for _, bucket := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range bucket {
			if diag.Code == code {
				out = append(out, diag)
			}
		}
	}

	return out
}

// All returns every diagnostic, errors first.
func (d Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, d.Len())
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)
	out = append(out, d.Infos...)

	return out
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Clone returns a copy of d sharing no memory with it.
func (d Diagnostics) Clone() Diagnostics {
	return Diagnostics{
		Errors:   cloneAll(d.Errors),
		Warnings: cloneAll(d.Warnings),
		Infos:    cloneAll(d.Infos),
	}
}

func cloneAll(ds []Diagnostic) []Diagnostic {
	out := slices.Clone(ds)
	for i := range out {
		out[i].Suggestions = slices.Clone(out[i].Suggestions)
	}

	return out
}

// IsValid returns true if there are no errors.
func (d Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d Diagnostics) Error() error {
	var result *multierror.Error
	for _, e := range d.Errors {
		result = multierror.Append(result, errors.New(e.String()))
	}

	return result.ErrorOrNil()
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.TypePair != "" {
		prefix = append(prefix, "["+d.TypePair+"]")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Origin != "" {
		msg += " (at " + d.Origin + ")"
	}

	if len(d.Suggestions) > 0 {
		msg += "; did you mean " + strings.Join(d.Suggestions, ", ") + "?"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
