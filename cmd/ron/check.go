package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cswinter/ron-parser/diagfmt"
	"github.com/cswinter/ron-parser/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [dir]",
	Short: "Parse every .ron file under a directory",
	Long: `Check parses all .ron files under the given directory (default: the
manifest root, or the current directory) and reports diagnostics. Files
are parsed in parallel; exit status is non-zero if any file has errors`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	} else if manifest, ok, err := loadManifest("."); err == nil && ok {
		dir = manifest.Root
	}

	reports, err := driver.CheckDir(cmd.Context(), dir, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
	failed := 0
	for _, r := range reports {
		if r.Result.Bag.Empty() {
			continue
		}
		diagfmt.Pretty(os.Stderr, r.Result.Bag, r.Result.FileSet, opts)
		fmt.Fprintln(os.Stderr)
		if r.Result.Bag.HasErrors() {
			failed++
		}
	}

	fmt.Printf("checked %d files, %d with errors\n", len(reports), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files have errors", failed, len(reports))
	}
	return nil
}
