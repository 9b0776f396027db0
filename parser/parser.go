// Package parser turns source text into a value tree plus diagnostics.
//
// Recovery policy: a failure inside a delimiter-balanced construct aborts
// that construct only. The production returns the diagnostic to its call
// site, which substitutes Unit for the failed subtree, records the
// diagnostic, and resumes in the parent context from wherever the cursor
// was left. There is no token-skipping resynchronization, so a misaligned
// cursor can cascade into further diagnostics.
package parser

import (
	"fmt"

	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/lexer"
	"github.com/cswinter/ron-parser/source"
	"github.com/cswinter/ron-parser/token"
	"github.com/cswinter/ron-parser/value"
)

// Options configure a Parser.
type Options struct {
	Reporter diag.Reporter
}

// Parser holds the state for parsing one file. The lexer runs once at
// construction time; parsing consumes the resulting token slice.
type Parser struct {
	file *source.File
	toks []token.Token
	pos  int
	opts Options
}

// New scans file and returns a parser over its tokens. Lexical
// diagnostics are reported through opts.Reporter during the scan. A nil
// Reporter is replaced with diag.NopReporter.
func New(file *source.File, opts Options) *Parser {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	return &Parser{
		file: file,
		toks: lx.Scan(),
		opts: opts,
	}
}

// Parse reads one top-level value. If unconsumed tokens remain, exactly
// one "expected end of input" diagnostic is appended. The returned value
// is best-effort: on errors it contains Unit placeholders for the failed
// constructs.
func (p *Parser) Parse() value.Value {
	v := p.parseValue()
	if !p.atEnd() {
		tok := p.peek()
		p.report(diag.NewError(diag.SynExpectedEOF, tok.Span,
			fmt.Sprintf("expected end of input, found `%s`", tok)))
	}
	return v
}

// parseValue is the recovery boundary: it parses one value and, on
// failure, records the diagnostic and substitutes Unit.
func (p *Parser) parseValue() value.Value {
	v, d := p.value()
	if d != nil {
		p.report(*d)
		return value.Unit{}
	}
	return v
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

// peekAt looks i tokens ahead, clamping at EOF.
func (p *Parser) peekAt(i int) token.Token {
	if p.pos+i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+i]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

// eat consumes the next token if it matches k.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// require consumes a token of kind k or returns an unexpected-token
// diagnostic for the caller to propagate.
func (p *Parser) require(k token.Kind) (token.Token, *diag.Diagnostic) {
	if p.at(k) {
		return p.advance(), nil
	}
	tok := p.peek()
	d := diag.NewError(diag.SynUnexpectedToken, tok.Span,
		fmt.Sprintf("unexpected token `%s`", tok.Kind)).
		WithPrimaryLabel(fmt.Sprintf("expected `%s`, found `%s`", k, tok.Kind))
	return token.Token{Kind: token.Invalid, Span: tok.Span}, &d
}

func (p *Parser) report(d diag.Diagnostic) {
	p.opts.Reporter.Report(d)
}

// labelSpan is the range from a construct's first token through the last
// consumed token, used for "begins here" labels.
func (p *Parser) labelSpan(start source.Span) source.Span {
	if p.pos == 0 {
		return start
	}
	return start.Cover(p.toks[p.pos-1].Span)
}
