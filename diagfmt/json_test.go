package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONOutput(t *testing.T) {
	_, bag, fs := parseText(t, "Config(\n    version: 1")

	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}

	d := out.Diagnostics[0]
	if d.Code != "SYN2003" || d.Severity != "ERROR" {
		t.Fatalf("diagnostic = %+v", d)
	}
	if d.Location.File != "test.ron" || d.Location.StartLine != 2 {
		t.Fatalf("location = %+v", d.Location)
	}
	if len(d.Labels) != 1 || d.Labels[0].Message != "struct begins here" {
		t.Fatalf("labels = %+v", d.Labels)
	}
	if d.Note == "" {
		t.Fatal("note missing")
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	_, bag, fs := parseText(t, "Config(a: @, b: @)")
	if bag.Len() < 2 {
		t.Fatalf("want at least 2 diagnostics, got %d", bag.Len())
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 1 {
		t.Fatalf("count = %d, want 1", out.Count)
	}
}
