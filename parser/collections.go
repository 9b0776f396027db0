package parser

import (
	"fmt"

	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/token"
	"github.com/cswinter/ron-parser/value"
)

// mapValue parses `{ key: value, ... }`. Keys are arbitrary values.
func (p *Parser) mapValue() (value.Value, *diag.Diagnostic) {
	start := p.advance().Span // '{'
	m := value.NewMap()
	for !p.at(token.RBrace) {
		key := p.parseValue()
		if _, d := p.require(token.Colon); d != nil {
			return nil, d
		}
		m.Insert(key, p.parseValue())
		if !p.eat(token.Comma) {
			break
		}
	}
	if !p.eat(token.RBrace) {
		tok := p.peek()
		d := diag.NewError(diag.SynUnclosedMap, tok.Span,
			fmt.Sprintf("unexpected token `%s`", tok.Kind)).
			WithPrimaryLabel(fmt.Sprintf("expected `}`, found `%s`", tok.Kind)).
			WithLabel(p.labelSpan(start), "map begins here").
			WithNote("expected `}` at end of map")
		return nil, &d
	}
	return m, nil
}

// seq parses `[ value, ... ]`. A missing comma between elements ends the
// element list; the closing bracket check then reports whatever follows.
func (p *Parser) seq() (value.Value, *diag.Diagnostic) {
	start := p.advance().Span // '['
	elems := value.Seq{}
	for !p.at(token.RBracket) {
		elems = append(elems, p.parseValue())
		if !p.eat(token.Comma) {
			break
		}
	}
	if !p.eat(token.RBracket) {
		tok := p.peek()
		d := diag.NewError(diag.SynUnclosedSeq, tok.Span,
			fmt.Sprintf("unexpected token `%s`", tok.Kind)).
			WithPrimaryLabel(fmt.Sprintf("expected `]`, found `%s`", tok.Kind)).
			WithLabel(p.labelSpan(start), "list begins here").
			WithNote("expected `]` at end of list")
		return nil, &d
	}
	return elems, nil
}
