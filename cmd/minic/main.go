// Command minic is the CLI entry point: lex/parse/compile/repl subcommands
// over minic's compiler front-end.
package main

import "github.com/andressilva/minic/cmd/minic/cmd"

func main() {
	cmd.Execute()
}
