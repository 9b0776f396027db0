package lexer

import (
	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/source"
)

// Options configure a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics. A nil Reporter is replaced
	// with NopReporter, so errors are dropped but scanning continues.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.opts.Reporter.Report(diag.NewError(code, sp, msg))
}
