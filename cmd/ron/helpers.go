package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cswinter/ron-parser/diag"
	"github.com/cswinter/ron-parser/diagfmt"
	"github.com/cswinter/ron-parser/source"
)

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 100
	}
	return n
}

// emitDiagnostics renders the bag to stderr and reports whether it held
// any errors.
func emitDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) bool {
	if bag.Empty() {
		return false
	}
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color: useColor(cmd, os.Stderr),
	})
	return bag.HasErrors()
}
