package parser

import (
	"fmt"

	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/token"
	"github.com/cswinter/ron-parser/value"
)

// directive parses `#name("path")` and returns the directive name, its
// decoded path argument, and the hash token that introduced it.
func (p *Parser) directive() (name, path string, hash token.Token, d *diag.Diagnostic) {
	hash = p.advance() // '#'
	nameTok, d := p.require(token.Ident)
	if d != nil {
		return "", "", hash, d
	}
	if _, d = p.require(token.LParen); d != nil {
		return "", "", hash, d
	}
	pathTok, d := p.require(token.String)
	if d != nil {
		return "", "", hash, d
	}
	if _, d = p.require(token.RParen); d != nil {
		return "", "", hash, d
	}
	return nameTok.Text, p.decodeString(pathTok.Text, pathTok.Span), hash, nil
}

// valueDirective handles a directive in value position. Only #include
// produces a value; #prototype is legal inside struct bodies only.
func (p *Parser) valueDirective() (value.Value, *diag.Diagnostic) {
	name, path, hash, d := p.directive()
	if d != nil {
		return nil, d
	}
	switch name {
	case "include":
		return value.Include(path), nil
	case "prototype":
		d := diag.NewError(diag.SynStrayPrototype, hash.Span,
			"`#prototype` outside a struct").
			WithPrimaryLabel("prototypes can only appear inside struct bodies").
			WithNote("only structs can have prototypes")
		return nil, &d
	default:
		d := diag.NewError(diag.SynUnknownDirective, hash.Span,
			fmt.Sprintf("unknown directive `#%s`", name)).
			WithPrimaryLabel("this directive is not recognized")
		return nil, &d
	}
}

// structDirective handles a directive inside a struct body, where only
// #prototype is allowed.
func (p *Parser) structDirective() (string, *diag.Diagnostic) {
	name, path, hash, d := p.directive()
	if d != nil {
		return "", d
	}
	if name != "prototype" {
		d := diag.NewError(diag.SynUnknownDirective, hash.Span,
			fmt.Sprintf("unexpected directive `#%s` in struct body", name)).
			WithPrimaryLabel("this directive is not allowed here").
			WithNote("only `#prototype` may appear inside a struct")
		return "", &d
	}
	return path, nil
}
