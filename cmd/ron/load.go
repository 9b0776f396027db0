package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cswinter/ron-parser/diagfmt"
	"github.com/cswinter/ron-parser/driver"
	"github.com/cswinter/ron-parser/loader"
)

const cacheAppName = "ron-parser"

var loadUseCache bool

var loadCmd = &cobra.Command{
	Use:   "load [flags] [file.ron]",
	Short: "Load a document and resolve its directives",
	Long: `Load parses a document, replaces #include directives with the loaded
contents of the referenced files, and merges struct prototypes. With no
argument the entry point comes from ron.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().BoolVar(&loadUseCache, "cache", false, "reuse resolved trees from the disk cache")
}

func runLoad(cmd *cobra.Command, args []string) error {
	path, err := resolveEntryPath(args)
	if err != nil {
		return err
	}

	var cache *loader.DiskCache
	if loadUseCache {
		cache, err = loader.OpenDiskCache(cacheAppName)
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
	}

	result, err := driver.LoadFile(path, maxDiagnostics(cmd), cache)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	hadErrors := emitDiagnostics(cmd, result.Bag, result.FileSet)
	if err := diagfmt.WriteValue(os.Stdout, result.Value); err != nil {
		return err
	}
	if hadErrors {
		return fmt.Errorf("%s: load produced errors", path)
	}
	return nil
}

// resolveEntryPath picks the document to load: the explicit argument, or
// the [load].entry of the nearest ron.toml.
func resolveEntryPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	manifest, ok, err := loadManifest(".")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s", noRonTomlMessage)
	}
	return manifest.EntryPath(), nil
}
