package diag

import (
	"testing"

	"github.com/cswinter/ron-parser/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	sp := source.Span{File: 0, Start: 0, End: 1}

	if !b.Add(NewError(SynUnexpectedToken, sp, "one")) {
		t.Error("first Add should succeed")
	}
	if !b.Add(NewError(SynUnexpectedToken, sp, "two")) {
		t.Error("second Add should succeed")
	}
	if b.Add(NewError(SynUnexpectedToken, sp, "three")) {
		t.Error("third Add should hit the limit")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(0)
	sp := source.Span{}

	if b.HasErrors() {
		t.Error("empty bag should have no errors")
	}
	b.Add(New(SevWarning, UnknownCode, sp, "warn"))
	if b.HasErrors() {
		t.Error("warnings are not errors")
	}
	b.Add(NewError(LexUnknownChar, sp, "err"))
	if !b.HasErrors() {
		t.Error("expected HasErrors after adding an error")
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(0)
	b.Add(NewError(SynUnexpectedToken, source.Span{File: 0, Start: 20, End: 21}, "late"))
	b.Add(NewError(SynUnexpectedToken, source.Span{File: 0, Start: 5, End: 6}, "early"))
	b.Add(NewError(SynUnexpectedToken, source.Span{File: 1, Start: 0, End: 1}, "other file"))

	b.Sort()
	items := b.Items()
	if items[0].Message != "early" || items[1].Message != "late" || items[2].Message != "other file" {
		t.Errorf("unexpected order: %q, %q, %q", items[0].Message, items[1].Message, items[2].Message)
	}
}

func TestBagMerge(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(UnknownCode, source.Span{}, "a"))
	other := NewBag(1)
	other.Add(NewError(UnknownCode, source.Span{}, "b"))

	a.Merge(other)
	if a.Len() != 2 {
		t.Errorf("Len after merge = %d, want 2 (limit must grow)", a.Len())
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynBadNumber, "SYN2007"},
		{LoadPrototypeNotStruct, "LOAD3001"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("Code(%d).ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestBuilder(t *testing.T) {
	sp := source.Span{File: 0, Start: 3, End: 4}
	other := source.Span{File: 0, Start: 0, End: 2}
	d := NewError(SynUnclosedStruct, sp, "unexpected token `)`").
		WithPrimaryLabel("expected `)`, found `(`").
		WithLabel(other, "struct begins here").
		WithNote("expected `)` at end of struct")

	if d.Primary.Span != sp || d.Primary.Msg == "" {
		t.Errorf("primary label not set: %+v", d.Primary)
	}
	if len(d.Labels) != 1 || d.Labels[0].Span != other {
		t.Errorf("secondary label not set: %+v", d.Labels)
	}
	if d.Note != "expected `)` at end of struct" {
		t.Errorf("note = %q", d.Note)
	}
}
