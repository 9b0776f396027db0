package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cswinter/ron-parser/diagfmt"
	"github.com/cswinter/ron-parser/driver"
)

var parseText string

var parseCmd = &cobra.Command{
	Use:   "parse [flags] [file.ron]",
	Short: "Parse a document and print its value tree",
	Long: `Parse reads one document, reports diagnostics, and prints the parsed
value back in source syntax. Directives are kept as-is; use load to
resolve them`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseText, "text", "e", "", "parse inline text instead of a file")
}

func runParse(cmd *cobra.Command, args []string) error {
	var result *driver.ParseResult
	switch {
	case parseText != "" && len(args) > 0:
		return fmt.Errorf("pass either a file or --text, not both")
	case parseText != "":
		result = driver.ParseText("<inline>", parseText, maxDiagnostics(cmd))
	case len(args) == 1:
		var err error
		result, err = driver.ParseFile(args[0], maxDiagnostics(cmd))
		if err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
	default:
		return fmt.Errorf("pass a file or --text")
	}

	hadErrors := emitDiagnostics(cmd, result.Bag, result.FileSet)
	if err := diagfmt.WriteValue(os.Stdout, result.Value); err != nil {
		return err
	}
	if hadErrors {
		return fmt.Errorf("%s: parse produced errors", result.File.Path)
	}
	return nil
}
