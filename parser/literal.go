package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/source"
	"github.com/cswinter/ron-parser/value"
)

// number converts a numeric token. Integer interpretation is tried first,
// so a literal keeps its integer identity whenever it has one.
func (p *Parser) number() (value.Value, *diag.Diagnostic) {
	tok := p.advance()
	if i, err := strconv.ParseInt(tok.Text, 10, 64); err == nil {
		return value.NewInt(i), nil
	}
	f, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		d := diag.NewError(diag.SynBadNumber, tok.Span,
			fmt.Sprintf("malformed number `%s`", tok.Text)).
			WithPrimaryLabel("not a valid integer or float").
			WithNote(err.Error())
		return nil, &d
	}
	return value.NewFloat(f), nil
}

func (p *Parser) stringLit() (value.Value, *diag.Diagnostic) {
	tok := p.advance()
	return value.String(p.decodeString(tok.Text, tok.Span)), nil
}

// decodeString strips the quotes from a string token and resolves escape
// sequences. An unknown escape is reported but non-fatal: the backslash
// and the escaped character are both dropped.
func (p *Parser) decodeString(text string, span source.Span) string {
	body := strings.TrimPrefix(text, `"`)
	// An unterminated string runs to end of file with no closing quote.
	if strings.HasSuffix(body, `"`) {
		body = body[:len(body)-1]
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		b := body[i]
		if b != '\\' || i+1 >= len(body) {
			sb.WriteByte(b)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case '0':
			sb.WriteByte(0)
		default:
			off := span.Start + uint32(i)
			p.report(diag.NewError(diag.SynBadEscape,
				source.Span{File: span.File, Start: off, End: off + 2},
				fmt.Sprintf("unknown escape sequence `\\%c`", body[i])).
				WithPrimaryLabel("this escape is not recognized"))
		}
	}
	return sb.String()
}
