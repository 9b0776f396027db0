package diagfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/source"
)

// Pretty renders diagnostics in a human-readable code-frame format.
// It walks bag.Items() in order (call bag.Sort() first). Each diagnostic
// prints as:
//
//	<path>:<line>:<col>: <severity>[<CODE>]: <message>
//
// followed by the source line with a ^^^ underline for the primary span,
// --- underlines for secondary labels, and a trailing note if present.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderDiagnostic(w, d, fs, opts)
	}
}

// Render formats a single diagnostic as a string.
func Render(d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) string {
	var sb strings.Builder
	renderDiagnostic(&sb, d, fs, opts)
	return sb.String()
}

// Emit writes a single rendered diagnostic to standard error.
func Emit(d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	renderDiagnostic(os.Stderr, d, fs, opts)
}

func renderDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := severityColor(d.Severity, opts.Color)
	secondary := newColor(opts.Color, color.FgBlue)
	bold := newColor(opts.Color, color.Bold)

	file := fs.Get(d.Primary.Span.File)
	start, _ := fs.Resolve(d.Primary.Span)
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		displayPath(file.Path, opts.PathMode),
		start.Line, start.Col,
		sev.Sprintf("%s[%s]", d.Severity, d.Code.ID()),
		bold.Sprint(d.Message))

	gutter := gutterWidth(d, fs)
	renderLabel(w, d.Primary, '^', sev, fs, gutter)
	for _, l := range d.Labels {
		renderLabel(w, l, '-', secondary, fs, gutter)
	}
	if d.Note != "" {
		fmt.Fprintf(w, "%s = note: %s\n", strings.Repeat(" ", gutter), d.Note)
	}
}

// renderLabel prints one source line and an underline beneath the labeled
// range. A span reaching past the line is underlined to end of line; an
// empty span (end of file) gets a single marker.
func renderLabel(w io.Writer, l diag.Label, marker byte, c *color.Color, fs *source.FileSet, gutter int) {
	file := fs.Get(l.Span.File)
	start, end := fs.Resolve(l.Span)
	line := expandTabs(file.GetLine(start.Line))

	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	span := int(l.Span.Len())
	if end.Line != start.Line || col+span > len(line) {
		span = len(line) - col
	}
	if span < 1 {
		span = 1
	}

	pad := runewidth.StringWidth(line[:col])
	width := runewidth.StringWidth(line[col:min(col+span, len(line))])
	if width < 1 {
		width = 1
	}

	fmt.Fprintf(w, "%*d | %s\n", gutter, start.Line, line)
	fmt.Fprintf(w, "%s | %s%s",
		strings.Repeat(" ", gutter),
		strings.Repeat(" ", pad),
		c.Sprint(strings.Repeat(string(marker), width)))
	if l.Msg != "" {
		fmt.Fprintf(w, " %s", c.Sprint(l.Msg))
	}
	fmt.Fprintln(w)
}

// gutterWidth sizes the line-number column to the widest line number
// among the diagnostic's labels.
func gutterWidth(d diag.Diagnostic, fs *source.FileSet) int {
	maxLine := uint32(1)
	spans := []source.Span{d.Primary.Span}
	for _, l := range d.Labels {
		spans = append(spans, l.Span)
	}
	for _, sp := range spans {
		start, _ := fs.Resolve(sp)
		if start.Line > maxLine {
			maxLine = start.Line
		}
	}
	return len(strconv.FormatUint(uint64(maxLine), 10))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func severityColor(sev diag.Severity, enabled bool) *color.Color {
	switch sev {
	case diag.SevError:
		return newColor(enabled, color.FgRed, color.Bold)
	case diag.SevWarning:
		return newColor(enabled, color.FgYellow, color.Bold)
	default:
		return newColor(enabled, color.FgCyan)
	}
}

func newColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeRelative:
		if wd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil {
				return rel
			}
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}
