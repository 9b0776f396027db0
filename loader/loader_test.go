package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/value"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func mustLoad(t *testing.T, path string) value.Value {
	t.Helper()
	res, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !res.Bag.Empty() {
		for _, d := range res.Bag.Items() {
			t.Errorf("unexpected diagnostic: %s: %s", d.Code.ID(), d.Message)
		}
		t.FailNow()
	}
	return res.Value
}

func TestLoadPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.ron", `Config(version: 1)`)

	v := mustLoad(t, path)
	want := value.NewStruct("Config")
	want.Insert("version", value.NewInt(1))
	if !value.Equal(v, want) {
		t.Fatalf("got %#v", v)
	}
}

func TestLoadResolvesIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "inner.ron", `[1, 2]`)
	path := writeFile(t, dir, "main.ron", `Config(items: #include("inner.ron"))`)

	v := mustLoad(t, path)
	s := v.(*value.Struct)
	items, _ := s.Get("items")
	if !value.Equal(items, value.Seq{value.NewInt(1), value.NewInt(2)}) {
		t.Fatalf("items = %#v", items)
	}
}

func TestLoadIncludeInSubdirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	// Include paths resolve relative to the directory of the including
	// file, not the process working directory.
	writeFile(t, dir, "leaf.ron", `42`)
	writeFile(t, filepath.Join(dir, "sub"), "mid.ron", `#include("../leaf.ron")`)
	path := writeFile(t, dir, "main.ron", `#include("sub/mid.ron")`)

	if v := mustLoad(t, path); !value.Equal(v, value.NewInt(42)) {
		t.Fatalf("got %#v", v)
	}
}

func TestLoadPrototypeMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.ron", `Monster(
    hp: 10,
    speed: 3,
    name: "base",
)`)
	path := writeFile(t, dir, "goblin.ron", `Goblin(
    #prototype("base.ron"),
    name: "goblin",
)`)

	v := mustLoad(t, path)
	s := v.(*value.Struct)
	if s.Name != "Goblin" {
		t.Fatalf("name = %q", s.Name)
	}
	if s.Prototype != "" {
		t.Fatalf("prototype not cleared: %q", s.Prototype)
	}
	// Own fields win; prototype-only fields are appended after them in
	// the prototype's order.
	wantFields := []value.Field{
		{Name: "name", Value: value.String("goblin")},
		{Name: "hp", Value: value.NewInt(10)},
		{Name: "speed", Value: value.NewInt(3)},
	}
	if s.Len() != len(wantFields) {
		t.Fatalf("field count = %d", s.Len())
	}
	for i, want := range wantFields {
		got := s.At(i)
		if got.Name != want.Name || !value.Equal(got.Value, want.Value) {
			t.Fatalf("field %d = %s:%v, want %s:%v", i, got.Name, got.Value, want.Name, want.Value)
		}
	}
}

func TestLoadPrototypeChain(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ron", `A(x: 1, y: 2)`)
	writeFile(t, dir, "b.ron", `B(#prototype("a.ron"), y: 20, z: 30)`)
	path := writeFile(t, dir, "c.ron", `C(#prototype("b.ron"), z: 300)`)

	v := mustLoad(t, path)
	s := v.(*value.Struct)
	got := map[string]int64{}
	for _, f := range s.Fields() {
		n, _ := f.Value.(value.Number).AsInt()
		got[f.Name] = n
	}
	want := map[string]int64{"x": 1, "y": 20, "z": 300}
	for k, wv := range want {
		if got[k] != wv {
			t.Fatalf("%s = %d, want %d (fields %v)", k, got[k], wv, got)
		}
	}
}

func TestLoadPrototypeNotStruct(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.ron", `[1, 2]`)
	path := writeFile(t, dir, "main.ron", `Goblin(#prototype("base.ron"), hp: 1)`)

	res, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.LoadPrototypeNotStruct {
		t.Fatalf("diagnostics = %v", items)
	}
	// The struct survives with its own fields and no prototype.
	s := res.Value.(*value.Struct)
	if s.Prototype != "" || !s.Has("hp") {
		t.Fatalf("struct = %#v", s)
	}
}

func TestLoadCycleIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ron", `#include("b.ron")`)
	path := writeFile(t, dir, "main.ron", `#include("a.ron")`)
	writeFile(t, dir, "b.ron", `#include("a.ron")`)

	_, err := Load(path, Options{})
	var cycle *CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("err = %v, want *CycleError", err)
	}
	if len(cycle.Stack) == 0 {
		t.Fatal("cycle stack empty")
	}
}

func TestLoadSelfIncludeIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.ron", `#include("a.ron")`)

	_, err := Load(path, Options{})
	var cycle *CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("err = %v, want *CycleError", err)
	}
}

func TestLoadMissingIncludeIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.ron", `#include("missing.ron")`)

	_, err := Load(path, Options{})
	if err == nil {
		t.Fatal("want error for missing include")
	}
}

// Including the same file twice must not alias: mutating one copy may
// not show up in the other.
func TestLoadSharedIncludeIsNotAliased(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shared.ron", `Shared(n: 1)`)
	path := writeFile(t, dir, "main.ron", `[#include("shared.ron"), #include("shared.ron")]`)

	v := mustLoad(t, path)
	seq := v.(value.Seq)
	first := seq[0].(*value.Struct)
	second := seq[1].(*value.Struct)
	if first == second {
		t.Fatal("both includes share one struct")
	}
	first.Insert("n", value.NewInt(99))
	if n, _ := second.Get("n"); !value.Equal(n, value.NewInt(1)) {
		t.Fatalf("mutation leaked: n = %v", n)
	}
}

func TestLoadParseErrorsAccumulate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.ron", `Config(version: 1`)
	path := writeFile(t, dir, "main.ron", `[#include("bad.ron"), 2]`)

	res, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("want parse diagnostics from included file")
	}
	// The include still resolves to the best-effort tree.
	seq := res.Value.(value.Seq)
	if !value.Equal(seq[1], value.NewInt(2)) {
		t.Fatalf("sibling element lost: %#v", seq)
	}
}

func TestLoadNestedIncludesInMapKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "key.ron", `(1, 2)`)
	path := writeFile(t, dir, "main.ron", `{#include("key.ron"): "pair"}`)

	v := mustLoad(t, path)
	m := v.(*value.Map)
	key := value.Tuple{Elems: []value.Value{value.NewInt(1), value.NewInt(2)}}
	got, ok := m.Get(key)
	if !ok || !value.Equal(got, value.String("pair")) {
		t.Fatalf("lookup by resolved key failed: %#v", m.Entries())
	}
}
