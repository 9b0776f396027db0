package parser

import (
	"fmt"

	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/source"
	"github.com/cswinter/ron-parser/token"
	"github.com/cswinter/ron-parser/value"
)

// structOrTuple parses `Name(...)`, `(...)`, `Name()`, or `()`. The two
// forms share a prefix; the decision is made with bounded lookahead right
// after the opening parenthesis:
//
//	Ident Colon        -> struct field list
//	Hash Ident(prototype) -> struct with a prototype directive
//	anything else      -> tuple (or Unit for a bare empty `()`)
func (p *Parser) structOrTuple() (value.Value, *diag.Diagnostic) {
	start := p.peek().Span
	name := ""
	if p.at(token.Ident) {
		name = p.advance().Text
	}
	if !p.at(token.LParen) {
		tok := p.peek()
		d := diag.NewError(diag.SynUnexpectedToken, tok.Span,
			fmt.Sprintf("unexpected token `%s`", tok.Kind)).
			WithPrimaryLabel(fmt.Sprintf("expected `(`, found `%s`", tok.Kind)).
			WithLabel(p.labelSpan(start), "tuple begins here").
			WithNote("expected `(` at start of tuple")
		return nil, &d
	}
	p.advance()

	isStruct := (p.at(token.Ident) && p.peekAt(1).Kind == token.Colon) ||
		(p.at(token.Hash) && p.peekAt(1).Kind == token.Ident && p.peekAt(1).Text == "prototype")
	if isStruct {
		return p.structBody(name, start)
	}
	return p.tupleBody(name, start)
}

// structBody parses the field list after the opening parenthesis.
func (p *Parser) structBody(name string, start source.Span) (value.Value, *diag.Diagnostic) {
	s := value.NewStruct(name)
	for {
		if p.at(token.Hash) {
			path, d := p.structDirective()
			if d != nil {
				return nil, d
			}
			s.Prototype = path
		} else {
			field, d := p.require(token.Ident)
			if d != nil {
				return nil, d
			}
			if _, d := p.require(token.Colon); d != nil {
				return nil, d
			}
			s.Insert(field.Text, p.parseValue())
		}
		if !p.eat(token.Comma) {
			break
		}
		if p.at(token.RParen) {
			break
		}
	}
	if !p.eat(token.RParen) {
		tok := p.peek()
		d := diag.NewError(diag.SynUnclosedStruct, tok.Span,
			fmt.Sprintf("unexpected token `%s`", tok.Kind)).
			WithPrimaryLabel(fmt.Sprintf("expected `)`, found `%s`", tok.Kind)).
			WithLabel(p.labelSpan(start), "struct begins here").
			WithNote("expected `)` at end of struct")
		return nil, &d
	}
	return s, nil
}

// tupleBody parses the element list after the opening parenthesis. A
// bare `()` is the unit value; `Name()` is an empty named tuple.
func (p *Parser) tupleBody(name string, start source.Span) (value.Value, *diag.Diagnostic) {
	if p.eat(token.RParen) {
		if name == "" {
			return value.Unit{}, nil
		}
		return value.Tuple{Name: name}, nil
	}
	var elems []value.Value
	for {
		elems = append(elems, p.parseValue())
		if !p.eat(token.Comma) {
			break
		}
		if p.at(token.RParen) {
			break
		}
	}
	if !p.eat(token.RParen) {
		tok := p.peek()
		d := diag.NewError(diag.SynUnclosedTuple, tok.Span,
			fmt.Sprintf("unexpected token `%s`", tok.Kind)).
			WithPrimaryLabel(fmt.Sprintf("expected `)`, found `%s`", tok.Kind)).
			WithLabel(p.labelSpan(start), "tuple begins here").
			WithNote("expected `)` at end of tuple")
		return nil, &d
	}
	return value.Tuple{Name: name, Elems: elems}, nil
}
