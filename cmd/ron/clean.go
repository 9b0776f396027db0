package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cswinter/ron-parser/loader"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the disk cache of resolved documents",
	Long:  "Remove every cached resolved tree. The next load re-parses from source.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(_ *cobra.Command, _ []string) error {
	cache, err := loader.OpenDiskCache(cacheAppName)
	if err != nil {
		return fmt.Errorf("failed to open disk cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to drop disk cache: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, "disk cache removed")
	return nil
}
