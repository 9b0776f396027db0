package diagfmt

import (
	"strings"
	"testing"

	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/parser"
	"github.com/cswinter/ron-parser/source"
	"github.com/cswinter/ron-parser/value"
)

func parseText(t *testing.T, text string) (value.Value, *diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ron", []byte(text))
	bag := diag.NewBag(0)
	p := parser.New(fs.Get(id), parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return p.Parse(), bag, fs
}

func TestPrettyTrailingTokens(t *testing.T) {
	_, bag, fs := parseText(t, "1 2")

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	want := "test.ron:1:3: ERROR[SYN2011]: expected end of input, found `<NUMBER>`\n" +
		"1 | 1 2\n" +
		"  |   ^\n"
	if sb.String() != want {
		t.Fatalf("Pretty output:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestPrettyUnclosedStruct(t *testing.T) {
	_, bag, fs := parseText(t, "Config(\n    version: 1")

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	out := sb.String()

	for _, fragment := range []string{
		"test.ron:2:15: ERROR[SYN2003]:",
		"expected `)`, found `<EOF>`",
		"struct begins here",
		"= note: expected `)` at end of struct",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, out)
		}
	}
}

func TestRenderMatchesPretty(t *testing.T) {
	_, bag, fs := parseText(t, "1 2")
	if bag.Len() != 1 {
		t.Fatalf("want 1 diagnostic, got %d", bag.Len())
	}

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	if got := Render(bag.Items()[0], fs, PrettyOpts{}); got != sb.String() {
		t.Fatalf("Render:\n%s\nPretty:\n%s", got, sb.String())
	}
}

func TestPrettySeparatesDiagnostics(t *testing.T) {
	_, bag, fs := parseText(t, "Config(a: @, b: @)")
	if bag.Len() < 2 {
		t.Fatalf("want at least 2 diagnostics, got %d", bag.Len())
	}

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	if !strings.Contains(sb.String(), "\n\n") {
		t.Fatalf("diagnostics not separated by a blank line:\n%s", sb.String())
	}
}

func TestPrettyColorDisabledHasNoEscapes(t *testing.T) {
	_, bag, fs := parseText(t, "1 2")

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Color: false})
	if strings.Contains(sb.String(), "\x1b[") {
		t.Fatalf("escape sequences present with color disabled:\n%q", sb.String())
	}

	sb.Reset()
	Pretty(&sb, bag, fs, PrettyOpts{Color: true})
	if !strings.Contains(sb.String(), "\x1b[") {
		t.Fatalf("no escape sequences with color enabled:\n%q", sb.String())
	}
}

func TestDisplayPathBasename(t *testing.T) {
	if got := displayPath("/a/b/c.ron", PathModeBasename); got != "c.ron" {
		t.Fatalf("got %q", got)
	}
	if got := displayPath("/a/b/c.ron", PathModeAuto); got != "/a/b/c.ron" {
		t.Fatalf("got %q", got)
	}
}
