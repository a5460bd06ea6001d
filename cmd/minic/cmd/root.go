// Package cmd implements minic's command-line front-end: lex/parse/compile
// subcommands over a cobra root command, in the style of the teacher
// pack's cmd/dwscript/cmd.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "minic",
	Short:   "minic is a small C-like compiler front-end",
	Long:    "minic lexes, parses, and semantically analyzes a small C-like language, reporting the first diagnostic found (or, with recovery, every diagnostic in a batch).",
	Version: "0.1.0",
}

// Execute runs the root command, exiting the process with status 1 on
// failure (mirrors the teacher's cmd/dwscript/cmd/root.go Execute()).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitWithError(err)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose flag (no subcommand changes its output for it)")
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(replCmd)
}

// readSource returns inline source (if expr is non-empty) or the contents
// of the named file. Mirrors the file-or-inline convention the teacher's
// lex/parse commands both use.
func readSource(filePath, expr string) (string, error) {
	if expr != "" {
		return expr, nil
	}
	if filePath == "" {
		return "", fmt.Errorf("se requiere un archivo o la opción -e")
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
