package token

var keywords = map[string]Kind{
	"true":  KwTrue,
	"false": KwFalse,
	"None":  KwNone,
}

// LookupKeyword returns the keyword kind for ident, if ident is one.
// Keyword recognition happens after identifier scanning, so the match is
// exact and case-sensitive ('none' stays an identifier).
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
