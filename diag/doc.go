// Package diag defines the diagnostic model shared by the lexer, parser,
// and loader.
//
// Diagnostic is the central record: a severity, a compact numeric Code with
// a stable string form, a human-oriented message, a primary labeled source
// range, optional secondary labeled ranges (which may point into other
// files), and an optional free-text note. Labels should add context the
// message does not already carry, e.g. "struct begins here".
//
// Producers emit through a Reporter so that storage stays decoupled from
// detection; BagReporter aggregates into a Bag, which supports sorting,
// merging across files, and an upper limit. Rendering lives in package
// diagfmt; this package performs no formatting or IO.
package diag
