// Package token defines lexical token kinds for the RON-style text format.
// Invariants:
//   - Token.Text is the exact source slice backing the token.
//   - Token.Span matches Text exactly (Start..End, half-open).
//   - Keywords (true, false, None) are retagged from Ident after scanning;
//     they are not a reserved-word set checked during the scan itself.
//   - Trivia kinds (Whitespace, Newline, Comment) are produced by the lexer
//     and filtered before the token stream reaches the parser.
package token
