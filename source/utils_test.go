package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    []byte
		changed bool
	}{
		{"no carriage returns", []byte("a\nb\n"), []byte("a\nb\n"), false},
		{"crlf pairs", []byte("a\r\nb\r\n"), []byte("a\nb\n"), true},
		{"lone cr kept", []byte("a\rb"), []byte("a\rb"), false},
		{"mixed", []byte("a\r\nb\rc\n"), []byte("a\nb\rc\n"), true},
		{"empty", []byte(""), []byte(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF(tt.input)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("normalizeCRLF(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if changed != tt.changed {
				t.Errorf("normalizeCRLF(%q) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(withBOM)
	if !had || string(got) != "hi" {
		t.Errorf("removeBOM = %q, had=%v", got, had)
	}

	plain := []byte("hi")
	got, had = removeBOM(plain)
	if had || string(got) != "hi" {
		t.Errorf("removeBOM on plain input = %q, had=%v", got, had)
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nxyz")
	idx := buildLineIndex(content)

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"start of file", 0, LineCol{Line: 1, Col: 1}},
		{"middle of first line", 1, LineCol{Line: 1, Col: 2}},
		{"first newline", 2, LineCol{Line: 1, Col: 3}},
		{"start of second line", 3, LineCol{Line: 2, Col: 1}},
		{"end of second line", 4, LineCol{Line: 2, Col: 2}},
		{"empty line", 6, LineCol{Line: 3, Col: 1}},
		{"last line", 7, LineCol{Line: 4, Col: 1}},
		{"end of input", 9, LineCol{Line: 4, Col: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toLineCol(idx, tt.off)
			if got != tt.want {
				t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
			}
		})
	}
}

func TestToLineColSingleLine(t *testing.T) {
	idx := buildLineIndex([]byte("no newline here"))
	got := toLineCol(idx, 5)
	want := LineCol{Line: 1, Col: 6}
	if got != want {
		t.Errorf("toLineCol(5) = %+v, want %+v", got, want)
	}
}
