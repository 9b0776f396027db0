package token

import (
	"fmt"

	"github.com/cswinter/ron-parser/source"
)

// Token represents a single source token with its location and exact text.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a boolean, None, numeric, or
// string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case KwTrue, KwFalse, KwNone, Number, String:
		return true
	default:
		return false
	}
}

func (t Token) String() string {
	switch t.Kind {
	case KwTrue, KwFalse, KwNone:
		return fmt.Sprintf("keyword %s", t.Kind)
	case Ident:
		return fmt.Sprintf("identifier %s", t.Text)
	default:
		return t.Kind.String()
	}
}
