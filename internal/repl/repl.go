// Package repl implements an interactive read-eval-print loop over the
// minic front-end, in the style of the example pack's go-mix REPL: line
// editing and history via chzyer/readline, colored verdicts via
// fatih/color, and multi-line input accumulated until braces balance.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/andressilva/minic/internal/driver"
	"github.com/andressilva/minic/internal/tree"
)

const prompt = "minic> "
const continuationPrompt = "  ...> "

var (
	ok   = color.New(color.FgGreen, color.Bold)
	bad  = color.New(color.FgRed, color.Bold)
	info = color.New(color.FgCyan)
)

// Run starts the REPL, reading from the terminal until EOF (Ctrl-D) or an
// explicit ":quit". Each accumulated block is compiled in ModeParse and
// its tree (or diagnostics) printed in color.
func Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "^D",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	info.Println("minic REPL -- type a program, or :quit to exit")

	var buf strings.Builder
	for {
		currentPrompt := prompt
		if buf.Len() > 0 {
			currentPrompt = continuationPrompt
		}
		rl.SetPrompt(currentPrompt)

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		if buf.Len() == 0 && (trimmed == ":quit" || trimmed == ":exit") {
			return nil
		}
		if trimmed == "" {
			continue
		}

		buf.WriteString(line)
		buf.WriteByte('\n')

		if !balanced(buf.String()) {
			continue
		}

		source := buf.String()
		buf.Reset()
		evaluate(source)
	}
}

// balanced reports whether every '{' in src has a matching '}' -- the
// REPL keeps reading lines until this holds, so a function or block can
// span several lines of input.
func balanced(src string) bool {
	depth := 0
	for _, r := range src {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return depth <= 0
}

// evaluate compiles one accumulated block and prints its verdict: the
// pretty-printed tree in green on success, or every diagnostic in red.
func evaluate(source string) {
	res := driver.Compile(source, driver.ModeParse, driver.Options{})
	if !res.Ok() {
		for _, err := range res.Errors {
			bad.Println(err.Error())
		}
		return
	}
	ok.Println(tree.Render(res.Tree))
	fmt.Println()
}
