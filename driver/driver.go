// Package driver wires the lexer, parser, and loader into the entry
// points the CLI calls.
package driver

import (
	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/lexer"
	"github.com/cswinter/ron-parser/loader"
	"github.com/cswinter/ron-parser/parser"
	"github.com/cswinter/ron-parser/source"
	"github.com/cswinter/ron-parser/token"
	"github.com/cswinter/ron-parser/value"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize scans one file and returns the token stream with lexical
// diagnostics.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	tokens := lx.Scan()
	bag.Sort()

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Value   value.Value
	Bag     *diag.Bag
}

// ParseFile parses one file without resolving directives.
func ParseFile(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parse(fs, fileID, maxDiagnostics), nil
}

// ParseText parses inline source. name identifies it in diagnostics.
func ParseText(name, text string, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(text))
	return parse(fs, fileID, maxDiagnostics)
}

func parse(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *ParseResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	p := parser.New(file, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	v := p.Parse()
	bag.Sort()

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Value:   v,
		Bag:     bag,
	}
}

type LoadResult struct {
	FileSet *source.FileSet
	Value   value.Value
	Bag     *diag.Bag
}

// LoadFile parses path and resolves every #include and #prototype
// directive. cache may be nil.
func LoadFile(path string, maxDiagnostics int, cache *loader.DiskCache) (*LoadResult, error) {
	res, err := loader.Load(path, loader.Options{
		MaxDiagnostics: maxDiagnostics,
		DiskCache:      cache,
	})
	if err != nil {
		return nil, err
	}
	return &LoadResult{
		FileSet: res.Files,
		Value:   res.Value,
		Bag:     res.Bag,
	}, nil
}
