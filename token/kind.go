package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket

	// Comma represents ','.
	Comma
	// Colon represents ':'.
	Colon
	// Hash represents '#', the directive marker.
	Hash

	// Comment represents a line or block comment. Filtered before parsing.
	Comment
	// Whitespace represents a run of spaces, tabs, or carriage returns.
	// Filtered before parsing.
	Whitespace
	// Newline represents '\n'. Filtered before parsing.
	Newline

	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNone represents the 'None' keyword.
	KwNone // None
	// Ident represents an identifier token.
	Ident
	// Number represents a numeric literal token.
	Number
	// String represents a string literal token.
	String
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "<INVALID>"
	case EOF:
		return "<EOF>"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Comma:
		return ","
	case Colon:
		return ":"
	case Hash:
		return "#"
	case Comment:
		return "<COMMENT>"
	case Whitespace:
		return "\\s"
	case Newline:
		return "\\n"
	case KwTrue:
		return "true"
	case KwFalse:
		return "false"
	case KwNone:
		return "None"
	case Ident:
		return "<IDENT>"
	case Number:
		return "<NUMBER>"
	case String:
		return "<STRING>"
	}
	return "<UNKNOWN>"
}

// IsTrivia reports whether the token kind never reaches the parser.
func (k Kind) IsTrivia() bool {
	switch k {
	case Comment, Whitespace, Newline:
		return true
	default:
		return false
	}
}
