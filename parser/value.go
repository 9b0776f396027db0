package parser

import (
	"fmt"

	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/token"
	"github.com/cswinter/ron-parser/value"
)

// value parses a single value in any position. Productions return the
// diagnostic instead of reporting it so the call site can apply the
// Unit-substitution recovery.
func (p *Parser) value() (value.Value, *diag.Diagnostic) {
	switch p.peek().Kind {
	case token.Ident, token.LParen:
		return p.structOrTuple()
	case token.LBrace:
		return p.mapValue()
	case token.LBracket:
		return p.seq()
	case token.KwTrue:
		p.advance()
		return value.Bool(true), nil
	case token.KwFalse:
		p.advance()
		return value.Bool(false), nil
	case token.KwNone:
		p.advance()
		return value.Option{}, nil
	case token.Number:
		return p.number()
	case token.String:
		return p.stringLit()
	case token.Hash:
		return p.valueDirective()
	default:
		tok := p.peek()
		d := diag.NewError(diag.SynExpectedValue, tok.Span,
			fmt.Sprintf("expected value, found `%s`", tok)).
			WithPrimaryLabel("a value was expected here")
		return nil, &d
	}
}
