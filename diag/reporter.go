package diag

// Reporter is the minimal contract for receiving diagnostics from the
// lexer, parser, and loader. Each top-level parse or load call owns its own
// Reporter, so repeated calls never interfere.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter is a Reporter that appends to a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter drops every diagnostic.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}
