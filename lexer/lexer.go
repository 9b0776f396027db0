package lexer

import (
	"fmt"

	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/source"
	"github.com/cswinter/ron-parser/token"
)

// Lexer converts raw source text into a flat sequence of typed,
// span-tagged tokens in a single left-to-right pass with one character of
// lookahead.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Scan tokenizes the whole file. Trivia (whitespace, newlines, comments)
// is produced internally and discarded; the returned slice always ends
// with exactly one EOF token. Malformed characters are reported through
// the Reporter and scanning continues with the next character.
func (lx *Lexer) Scan() []token.Token {
	toks := make([]token.Token, 0, len(lx.file.Content)/4+1)
	for {
		tok := lx.next()
		if tok.Kind.IsTrivia() {
			continue
		}
		if tok.Kind == token.Invalid {
			// Already reported; keep scanning past the offending byte.
			continue
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// next scans one raw token, trivia included.
func (lx *Lexer) next() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.cursor.SpanFrom(start), Text: ""}
	}

	b := lx.cursor.Bump()
	var kind token.Kind
	switch {
	case b == '(':
		kind = token.LParen
	case b == ')':
		kind = token.RParen
	case b == '{':
		kind = token.LBrace
	case b == '}':
		kind = token.RBrace
	case b == '[':
		kind = token.LBracket
	case b == ']':
		kind = token.RBracket
	case b == ',':
		kind = token.Comma
	case b == ':':
		kind = token.Colon
	case b == '#':
		kind = token.Hash
	case b == '/':
		return lx.scanComment(start)
	case b == ' ' || b == '\r' || b == '\t':
		kind = token.Whitespace
	case b == '\n':
		kind = token.Newline
	case isDec(b) || b == '-':
		return lx.scanNumber(start)
	case b == '"':
		return lx.scanString(start)
	case isIdentStartByte(b):
		return lx.scanIdent(start)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unexpected character `%c`", b))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
