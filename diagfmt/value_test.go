package diagfmt

import (
	"testing"

	"github.com/cswinter/ron-parser/value"
)

func TestFormatValueScalars(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{"true", value.Bool(true), "true"},
		{"false", value.Bool(false), "false"},
		{"none", value.Option{}, "None"},
		{"int", value.NewInt(-17), "-17"},
		{"float", value.NewFloat(3.5), "3.5"},
		{"whole float keeps float syntax", value.NewFloat(1000), "1000.0"},
		{"string", value.String("a\nb"), `"a\nb"`},
		{"unit", value.Unit{}, "()"},
		{"include", value.Include("other.ron"), `#include("other.ron")`},
		{"empty seq", value.Seq{}, "[]"},
		{"empty map", value.NewMap(), "{}"},
		{"named empty tuple", value.Tuple{Name: "Foo"}, "Foo()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.v); got != tt.want {
				t.Fatalf("FormatValue = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatValueNested(t *testing.T) {
	s := value.NewStruct("Config")
	s.Insert("version", value.NewInt(1))
	s.Insert("items", value.Seq{value.NewInt(1), value.NewInt(2)})

	want := `Config(
    version: 1,
    items: [
        1,
        2,
    ],
)`
	if got := FormatValue(s); got != want {
		t.Fatalf("FormatValue:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatValuePrototype(t *testing.T) {
	s := value.NewStruct("Goblin")
	s.Prototype = "base.ron"
	s.Insert("hp", value.NewInt(5))

	want := `Goblin(
    #prototype("base.ron"),
    hp: 5,
)`
	if got := FormatValue(s); got != want {
		t.Fatalf("FormatValue:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatValueRoundTrip(t *testing.T) {
	const src = `Config(
    flag: true,
    nothing: None,
    count: -5,
    ratio: 2.5,
    big: 1e3,
    label: "a\"b\\c\nd",
    items: [1, [2, 3], ()],
    lookup: {"a": 1, (1, 2): "pair", None: []},
    inner: Inner(x: 0),
    pair: NewType(42),
)`
	orig, bag, _ := parseText(t, src)
	if !bag.Empty() {
		t.Fatalf("fixture does not parse: %v", bag.Items())
	}

	again, bag2, _ := parseText(t, FormatValue(orig))
	if !bag2.Empty() {
		t.Fatalf("formatted output does not parse: %v", bag2.Items())
	}
	if !value.Equal(orig, again) {
		t.Fatalf("round trip changed the tree:\n%s", FormatValue(again))
	}
}
