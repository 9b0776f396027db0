// Package ron parses and loads RON-style configuration documents.
//
// Parse turns a single document into a value tree. Load additionally
// resolves #include and #prototype directives against the filesystem.
// The value variants live in the value package; rendering and diagnostic
// formatting live in diagfmt.
package ron

import (
	"fmt"

	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/loader"
	"github.com/cswinter/ron-parser/parser"
	"github.com/cswinter/ron-parser/source"
	"github.com/cswinter/ron-parser/value"
)

// ParseError reports that a document produced diagnostics. Partial holds
// the best-effort tree with Unit placeholders for failed constructs.
type ParseError struct {
	Partial     value.Value
	Diagnostics *diag.Bag
	Files       *source.FileSet
}

func (e *ParseError) Error() string {
	items := e.Diagnostics.Items()
	if len(items) == 0 {
		return "parse failed"
	}
	first := items[0]
	if len(items) == 1 {
		return fmt.Sprintf("%s: %s", first.Code.ID(), first.Message)
	}
	return fmt.Sprintf("%s: %s (and %d more)", first.Code.ID(), first.Message, len(items)-1)
}

// Parse reads one document from text. name identifies the source in
// diagnostics ("config.ron", "<stdin>", ...). On any diagnostic the
// returned error is a *ParseError carrying the partial tree.
func Parse(text, name string) (value.Value, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(text))
	bag := diag.NewBag(0)
	p := parser.New(fs.Get(id), parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	v := p.Parse()
	if !bag.Empty() {
		bag.Sort()
		return v, &ParseError{Partial: v, Diagnostics: bag, Files: fs}
	}
	return v, nil
}

// Load parses the file at path and resolves every #include and
// #prototype directive. Unreadable files and include cycles fail
// outright; parse and prototype problems come back as a *ParseError.
func Load(path string) (value.Value, error) {
	res, err := loader.Load(path, loader.Options{})
	if err != nil {
		return nil, err
	}
	if !res.Bag.Empty() {
		return res.Value, &ParseError{Partial: res.Value, Diagnostics: res.Bag, Files: res.Files}
	}
	return res.Value, nil
}
