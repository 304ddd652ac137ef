// Package validate checks loaded documents against their structural
// invariants. Problems come back as diagnostics, never as a single error:
// every rule runs so the user sees the whole picture at once.
package validate

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic.
type Severity int

const (
	// Error marks a violation that makes the document unusable.
	Error Severity = iota
	// Warning marks something suspicious the external trainer would accept.
	Warning
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic describes one problem found in a document.
type Diagnostic struct {
	Severity Severity
	// Subject locates the problem, e.g. "parameters.optim.kwargs.lr".
	Subject string
	Summary string
	Detail  string
}

// String formats the diagnostic for display.
func (d *Diagnostic) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s: %s", d.Severity, d.Subject, d.Summary)
	if d.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", d.Detail)
	}
	return sb.String()
}

// Diagnostics is a collection of diagnostics from one or more rule sets.
type Diagnostics []*Diagnostic

// Append adds a diagnostic and returns the extended collection.
func (d Diagnostics) Append(severity Severity, subject, summary string, detailFormat string, args ...any) Diagnostics {
	return append(d, &Diagnostic{
		Severity: severity,
		Subject:  subject,
		Summary:  summary,
		Detail:   fmt.Sprintf(detailFormat, args...),
	})
}

// HasErrors reports whether any diagnostic has Error severity.
func (d Diagnostics) HasErrors() bool {
	for _, diag := range d {
		if diag.Severity == Error {
			return true
		}
	}
	return false
}

// Errs returns only the error-severity diagnostics.
func (d Diagnostics) Errs() Diagnostics {
	var out Diagnostics
	for _, diag := range d {
		if diag.Severity == Error {
			out = append(out, diag)
		}
	}
	return out
}
