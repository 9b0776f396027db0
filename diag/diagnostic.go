package diag

import (
	"github.com/cswinter/ron-parser/source"
)

// Label is a source range with an optional message rendered beneath it.
type Label struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a structured error report: a message, one primary labeled
// range, zero or more secondary labeled ranges (possibly in other files),
// and an optional free-text note.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  Label
	Labels   []Label
	Note     string
}
