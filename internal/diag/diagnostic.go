package diag

import (
	"ruse/internal/source"
	"ruse/internal/textedit"
)

// Fix is a suggested rewrite for a diagnostic. Applying it is always
// the caller's explicit choice; the engine only proposes. The edit is
// keyed to the exact source the diagnostic was computed from.
type Fix struct {
	ID     string // stable identifier; synthesized when empty
	Title  string
	Edit   textedit.TextEdit
	Cursor uint32 // desired caret position after applying
	HasCursor bool
}

// Diagnostic is one finding: a primary span, a message, a severity,
// and optional fixes. Values are immutable once constructed and carry
// no back-reference to the tree or source text.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Fixes    []Fix
}

// New constructs a fix-less diagnostic.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError is the shape parser errors take: severity Error, no fix.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// WithFix returns a copy carrying an additional suggested fix.
func (d Diagnostic) WithFix(title string, edit textedit.TextEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edit: edit})
	return d
}
