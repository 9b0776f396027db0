package lexer

import (
	"github.com/cswinter/ron-parser/token"
)

// scanNumber greedily consumes everything that could belong to a numeric
// literal. No validation happens here; malformed numeric text surfaces as
// a parser-level diagnostic when the literal text fails to parse.
func (lx *Lexer) scanNumber(start Mark) token.Token {
	for {
		b := lx.cursor.Peek()
		if isDec(b) || b == '-' || b == '+' || b == '.' || b == 'e' {
			lx.cursor.Bump()
			continue
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: lx.text(sp)}
}

// scanString consumes until an unescaped closing quote. Escape state is a
// single "previous byte was a backslash" flag; escape legality is checked
// later, during decoding. An unterminated string runs to end of input.
func (lx *Lexer) scanString(start Mark) token.Token {
	escaped := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '"' && !escaped {
			break
		}
		escaped = b == '\\'
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.String, Span: sp, Text: lx.text(sp)}
}

// scanIdent consumes [A-Za-z0-9_]* after the start byte, then retags the
// keyword literals true/false/None by exact text match.
func (lx *Lexer) scanIdent(start Mark) token.Token {
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	kind := token.Ident
	if kw, ok := token.LookupKeyword(text); ok {
		kind = kw
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
