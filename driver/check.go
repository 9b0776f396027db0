package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// FileReport is the outcome of checking one file. Each file keeps its
// own FileSet so diagnostic spans stay resolvable.
type FileReport struct {
	Path   string
	Result *ParseResult
}

// CheckDir parses every .ron file under dir in parallel and returns the
// per-file reports sorted by path. Unreadable files abort the check.
func CheckDir(ctx context.Context, dir string, maxDiagnostics int) ([]FileReport, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".ron") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	reports := make([]FileReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := ParseFile(path, maxDiagnostics)
			if err != nil {
				return err
			}
			reports[i] = FileReport{Path: path, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Path < reports[j].Path
	})
	return reports, nil
}
