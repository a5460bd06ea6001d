package cmd

import (
	"github.com/spf13/cobra"

	"github.com/andressilva/minic/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive minic read-eval-print loop",
	RunE: func(c *cobra.Command, args []string) error {
		return repl.Run()
	},
}
