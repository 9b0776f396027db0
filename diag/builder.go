package diag

import "github.com/cswinter/ron-parser/source"

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  Label{Span: primary},
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// WithPrimaryLabel sets the message rendered under the primary range.
func (d Diagnostic) WithPrimaryLabel(msg string) Diagnostic {
	d.Primary.Msg = msg
	return d
}

// WithLabel appends a secondary labeled range.
func (d Diagnostic) WithLabel(sp source.Span, msg string) Diagnostic {
	d.Labels = append(d.Labels, Label{Span: sp, Msg: msg})
	return d
}

// WithNote sets the free-text note shown after the code frame.
func (d Diagnostic) WithNote(msg string) Diagnostic {
	d.Note = msg
	return d
}
