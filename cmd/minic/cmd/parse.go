package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andressilva/minic/internal/driver"
	"github.com/andressilva/minic/internal/tree"
)

var (
	parseExpr string
	parseOut  string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a minic source file and pretty-print its parse tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseExpr, "expression", "e", "", "parse inline source instead of a file")
	parseCmd.Flags().StringVar(&parseOut, "out", "", "write the pretty-printed tree to this file instead of stdout")
}

func runParse(c *cobra.Command, args []string) error {
	var file string
	if len(args) == 1 {
		file = args[0]
	}
	src, err := readSource(file, parseExpr)
	if err != nil {
		return err
	}

	res := driver.Compile(src, driver.ModeParse, driver.Options{})
	if !res.Ok() {
		for _, e := range res.Errors {
			fmt.Println(e.Error())
		}
		return fmt.Errorf("parsing falló")
	}

	rendered := tree.Render(res.Tree)
	if parseOut != "" {
		if err := os.WriteFile(parseOut, []byte(rendered+"\n"), 0o644); err != nil {
			return err
		}
	}
	if parseOut == "" {
		fmt.Println(rendered)
	}
	return nil
}
