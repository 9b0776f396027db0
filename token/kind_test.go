package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{LParen, "("},
		{RBracket, "]"},
		{Hash, "#"},
		{KwNone, "None"},
		{Number, "<NUMBER>"},
		{EOF, "<EOF>"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		kind  Kind
		ok    bool
	}{
		{"true", KwTrue, true},
		{"false", KwFalse, true},
		{"None", KwNone, true},
		{"none", 0, false},
		{"True", 0, false},
		{"Config", 0, false},
	}
	for _, tt := range tests {
		kind, ok := LookupKeyword(tt.ident)
		if ok != tt.ok || (ok && kind != tt.kind) {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v, %v", tt.ident, kind, ok, tt.kind, tt.ok)
		}
	}
}

func TestIsLiteral(t *testing.T) {
	for _, k := range []Kind{KwTrue, KwFalse, KwNone, Number, String} {
		if !(Token{Kind: k}).IsLiteral() {
			t.Errorf("%v should be a literal", k)
		}
	}
	for _, k := range []Kind{Ident, LParen, Comma, Hash, EOF} {
		if (Token{Kind: k}).IsLiteral() {
			t.Errorf("%v should not be a literal", k)
		}
	}
}

func TestIsTrivia(t *testing.T) {
	for _, k := range []Kind{Comment, Whitespace, Newline} {
		if !k.IsTrivia() {
			t.Errorf("%v should be trivia", k)
		}
	}
	for _, k := range []Kind{Ident, Number, EOF, Hash} {
		if k.IsTrivia() {
			t.Errorf("%v should not be trivia", k)
		}
	}
}
