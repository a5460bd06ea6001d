package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andressilva/minic/internal/driver"
)

var (
	lexExpr       string
	lexShowPos    bool
	lexShowType   bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a minic source file and print its token stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "lex an inline expression instead of a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show each token's line:column")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", true, "show each token's kind")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "print only the diagnostic, not the token dump")
}

func runLex(c *cobra.Command, args []string) error {
	var file string
	if len(args) == 1 {
		file = args[0]
	}
	src, err := readSource(file, lexExpr)
	if err != nil {
		return err
	}

	res := driver.Compile(src, driver.ModeLex, driver.Options{})
	if !res.Ok() {
		for _, e := range res.Errors {
			fmt.Println(e.Error())
		}
		return fmt.Errorf("lexing falló")
	}

	if lexOnlyErrors {
		return nil
	}
	for _, tok := range res.Tokens {
		line := tok.Lexeme
		if lexShowType {
			line = fmt.Sprintf("%-16s %q", tok.Type, tok.Lexeme)
		}
		if lexShowPos {
			line = fmt.Sprintf("%s  %s", line, tok.Pos)
		}
		fmt.Println(line)
	}
	return nil
}
