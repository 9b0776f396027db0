package lexer

import (
	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/token"
)

// scanComment is entered with the leading '/' already consumed.
// Supports // to end of line and /* ... */ terminated by the first "*/";
// block comments do not nest, and an unterminated block comment silently
// consumes to end of input.
func (lx *Lexer) scanComment(start Mark) token.Token {
	switch {
	case lx.cursor.Eat('/'):
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
	case lx.cursor.Eat('*'):
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				break
			}
			lx.cursor.Bump()
		}
	default:
		// A lone '/' is not part of the grammar.
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unexpected character `/`")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Comment, Span: sp, Text: lx.text(sp)}
}
