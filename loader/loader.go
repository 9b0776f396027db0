// Package loader resolves parsed value trees into plain data: #include
// markers are replaced by the loaded contents of the referenced files and
// struct prototypes are merged in. A tree returned from Load contains no
// Include values and no prototype references.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/parser"
	"github.com/cswinter/ron-parser/source"
	"github.com/cswinter/ron-parser/value"
)

// Options configure a load.
type Options struct {
	// MaxDiagnostics caps the diagnostic bag. <= 0 means unlimited.
	MaxDiagnostics int
	// DiskCache, when set, is consulted before parsing and updated after
	// a clean resolution.
	DiskCache *DiskCache
}

// Result is the outcome of a load. Value is best-effort when Bag holds
// errors.
type Result struct {
	Value value.Value
	Bag   *diag.Bag
	Files *source.FileSet
}

// CycleError reports an include cycle. Fatal: a cycle means the document
// has no finite expansion.
type CycleError struct {
	// Path is the file whose inclusion closed the cycle.
	Path string
	// Stack is the resolution chain, outermost first.
	Stack []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("include cycle: %s -> %s", strings.Join(e.Stack, " -> "), e.Path)
}

// Loader caches fully resolved files across one or more Load calls.
// Loaders are not safe for concurrent use.
type Loader struct {
	fs    *source.FileSet
	bag   *diag.Bag
	opts  Options
	cache map[string]value.Value // canonical path -> resolved tree
	deps  map[string][]string    // canonical path -> transitive includes
	stack []string               // canonical paths being resolved
}

// NewLoader creates a loader with a fresh FileSet and diagnostic bag.
func NewLoader(opts Options) *Loader {
	return &Loader{
		fs:    source.NewFileSet(),
		bag:   diag.NewBag(opts.MaxDiagnostics),
		opts:  opts,
		cache: make(map[string]value.Value),
		deps:  make(map[string][]string),
	}
}

// Load parses and fully resolves the file at path. IO failures and
// include cycles abort the load with an error; parse and prototype
// problems accumulate in Result.Bag instead.
func Load(path string, opts Options) (Result, error) {
	l := NewLoader(opts)
	v, err := l.LoadFile(path)
	res := Result{Value: v, Bag: l.bag, Files: l.fs}
	if err != nil {
		return res, err
	}
	l.bag.Sort()
	return res, nil
}

// LoadFile resolves one file through the loader's cache.
func (l *Loader) LoadFile(path string) (value.Value, error) {
	canon, err := source.Canonicalize(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	return l.resolveFile(canon)
}

// Bag returns the diagnostics accumulated so far.
func (l *Loader) Bag() *diag.Bag {
	return l.bag
}

// Files returns the FileSet populated by this loader.
func (l *Loader) Files() *source.FileSet {
	return l.fs
}

// resolveFile loads, parses, and resolves the file at a canonical path.
// The cache holds only fully resolved trees, so a hit during resolution
// of another file can never observe a half-merged value.
func (l *Loader) resolveFile(canon string) (value.Value, error) {
	if v, ok := l.cache[canon]; ok {
		return value.Clone(v), nil
	}
	for _, p := range l.stack {
		if p == canon {
			return nil, &CycleError{Path: canon, Stack: append([]string(nil), l.stack...)}
		}
	}
	l.stack = append(l.stack, canon)
	defer func() {
		l.stack = l.stack[:len(l.stack)-1]
	}()

	id, err := l.fs.Load(canon)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", canon, err)
	}
	file := l.fs.Get(id)

	if v, ok := l.diskGet(canon, file.Hash); ok {
		l.cache[canon] = v
		return value.Clone(v), nil
	}

	errsBefore := l.bag.Len()
	p := parser.New(file, parser.Options{Reporter: &diag.BagReporter{Bag: l.bag}})
	parsed := p.Parse()

	resolved, err := l.resolveValue(parsed, filepath.Dir(canon), id)
	if err != nil {
		return nil, err
	}

	l.cache[canon] = resolved
	if l.bag.Len() == errsBefore {
		l.diskPut(canon, file.Hash, resolved)
	}
	return value.Clone(resolved), nil
}

// resolveValue rewrites a freshly parsed tree in place. baseDir anchors
// relative include paths; fileID locates diagnostics that have no better
// span than the including file.
func (l *Loader) resolveValue(v value.Value, baseDir string, fileID source.FileID) (value.Value, error) {
	switch v := v.(type) {
	case value.Include:
		return l.resolveInclude(string(v), baseDir)
	case value.Option:
		if v.IsNone() {
			return v, nil
		}
		inner, err := l.resolveValue(v.Value, baseDir, fileID)
		if err != nil {
			return nil, err
		}
		return value.Option{Value: inner}, nil
	case value.Seq:
		for i, e := range v {
			r, err := l.resolveValue(e, baseDir, fileID)
			if err != nil {
				return nil, err
			}
			v[i] = r
		}
		return v, nil
	case value.Tuple:
		for i, e := range v.Elems {
			r, err := l.resolveValue(e, baseDir, fileID)
			if err != nil {
				return nil, err
			}
			v.Elems[i] = r
		}
		return v, nil
	case *value.Map:
		// Keys can change identity during resolution, so the map is
		// rebuilt rather than patched.
		m := value.NewMap()
		for _, e := range v.Entries() {
			k, err := l.resolveValue(e.Key, baseDir, fileID)
			if err != nil {
				return nil, err
			}
			val, err := l.resolveValue(e.Value, baseDir, fileID)
			if err != nil {
				return nil, err
			}
			m.Insert(k, val)
		}
		return m, nil
	case *value.Struct:
		return l.resolveStruct(v, baseDir, fileID)
	default:
		return v, nil
	}
}

func (l *Loader) resolveInclude(path, baseDir string) (value.Value, error) {
	target := path
	if !filepath.IsAbs(target) {
		target = filepath.Join(baseDir, target)
	}
	canon, err := source.Canonicalize(target)
	if err != nil {
		return nil, fmt.Errorf("resolve include %s: %w", path, err)
	}
	if top := l.currentFile(); top != "" {
		l.deps[top] = append(l.deps[top], canon)
	}
	v, err := l.resolveFile(canon)
	if err != nil {
		return nil, err
	}
	if top := l.currentFile(); top != "" {
		l.deps[top] = append(l.deps[top], l.deps[canon]...)
	}
	return v, nil
}

// resolveStruct resolves field values, then merges the prototype: fields
// the struct already has win, prototype-only fields are appended in the
// prototype's order, and the prototype reference is cleared.
func (l *Loader) resolveStruct(s *value.Struct, baseDir string, fileID source.FileID) (value.Value, error) {
	for i := 0; i < s.Len(); i++ {
		r, err := l.resolveValue(s.At(i).Value, baseDir, fileID)
		if err != nil {
			return nil, err
		}
		s.SetValueAt(i, r)
	}
	if s.Prototype == "" {
		return s, nil
	}

	protoPath := s.Prototype
	s.Prototype = ""
	proto, err := l.resolveInclude(protoPath, baseDir)
	if err != nil {
		return nil, err
	}
	ps, ok := proto.(*value.Struct)
	if !ok {
		l.bag.Add(diag.NewError(diag.LoadPrototypeNotStruct,
			source.Span{File: fileID},
			fmt.Sprintf("prototype `%s` is not a struct", protoPath)).
			WithNote(fmt.Sprintf("the prototype resolved to a %s value", proto.Kind())))
		return s, nil
	}
	for _, f := range ps.Fields() {
		if !s.Has(f.Name) {
			s.Insert(f.Name, f.Value)
		}
	}
	return s, nil
}

func (l *Loader) currentFile() string {
	if len(l.stack) == 0 {
		return ""
	}
	return l.stack[len(l.stack)-1]
}
