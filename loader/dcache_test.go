package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cswinter/ron-parser/value"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := value.NewStruct("Config")
	s.Insert("flag", value.Bool(true))
	s.Insert("nothing", value.Option{})
	s.Insert("n", value.NewFloat(2.5))
	s.Insert("items", value.Seq{value.NewInt(1), value.Unit{}})
	m := value.NewMap()
	m.Insert(value.Tuple{Elems: []value.Value{value.NewInt(1)}}, value.String("one"))
	s.Insert("lookup", m)

	snap, err := snapshotValue(s)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	restored, err := restoreValue(snap)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !value.Equal(s, restored) {
		t.Fatalf("restored tree differs: %#v", restored)
	}
}

func TestSnapshotRejectsInclude(t *testing.T) {
	if _, err := snapshotValue(value.Include("x.ron")); err == nil {
		t.Fatal("want error for include marker")
	}
}

func TestDiskCacheHit(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	writeFile(t, dir, "inner.ron", `[1, 2]`)
	path := writeFile(t, dir, "main.ron", `Config(items: #include("inner.ron"))`)

	first, err := Load(path, Options{DiskCache: cache})
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := Load(path, Options{DiskCache: cache})
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if !value.Equal(first.Value, second.Value) {
		t.Fatalf("cached load differs:\nfirst: %#v\nsecond: %#v", first.Value, second.Value)
	}
	// The cached load does not need to parse the included file.
	if second.Files.Len() != 1 {
		t.Fatalf("cached load touched %d files, want 1", second.Files.Len())
	}
}

func TestDiskCacheInvalidatedByDepChange(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	inner := writeFile(t, dir, "inner.ron", `1`)
	path := writeFile(t, dir, "main.ron", `#include("inner.ron")`)

	if _, err := Load(path, Options{DiskCache: cache}); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if err := os.WriteFile(inner, []byte(`2`), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Load(path, Options{DiskCache: cache})
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if !value.Equal(res.Value, value.NewInt(2)) {
		t.Fatalf("stale cache served: %v", res.Value)
	}
}

func TestDiskCacheSkipsDirtyResults(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	path := writeFile(t, dir, "bad.ron", `Config(version: 1`)

	res, err := Load(path, Options{DiskCache: cache})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("fixture should not parse cleanly")
	}

	// A second load must re-parse and report the same diagnostics, not
	// serve a silently cached tree.
	again, err := Load(path, Options{DiskCache: cache})
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if !again.Bag.HasErrors() {
		t.Fatal("diagnostics lost on second load")
	}
}
