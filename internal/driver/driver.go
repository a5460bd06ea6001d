// Package driver implements the single entry point described by spec
// §6.3: given source text and a run mode, produce either a token dump, a
// pretty-printed parse tree, or a full compile verdict, plus whatever
// diagnostics were raised along the way.
package driver

import (
	"github.com/andressilva/minic/internal/lexer"
	"github.com/andressilva/minic/internal/parser"
	"github.com/andressilva/minic/internal/token"
	"github.com/andressilva/minic/internal/tree"
)

// Mode selects which stage of the front-end Compile runs.
type Mode int

const (
	// ModeLex runs only the lexer, returning the token stream.
	ModeLex Mode = iota
	// ModeParse runs the lexer and parser (with interleaved semantic
	// analysis), returning the parse tree.
	ModeParse
	// ModeCompile runs the same stages as ModeParse and returns the same
	// outputs; the verdict is success, or the first diagnostic (every
	// diagnostic when Options.Recover is set).
	ModeCompile
)

// Result carries whichever outputs are meaningful for the Mode that
// produced it: Tokens for ModeLex, Tree for ModeParse/ModeCompile, and
// Errors for all three.
type Result struct {
	Mode   Mode
	Tokens []token.Token
	Tree   *tree.Node
	Errors []error
}

// Ok reports whether the run produced no diagnostics.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

// Options configures a Compile invocation.
type Options struct {
	// Recover enables parser error recovery (spec §7's batched test
	// mode): instead of stopping at the first error, keep parsing and
	// accumulate every diagnostic found.
	Recover bool
}

// Compile runs the front-end over source in the given mode.
func Compile(source string, mode Mode, opts Options) *Result {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return &Result{Mode: mode, Errors: []error{err}}
	}
	if mode == ModeLex {
		return &Result{Mode: mode, Tokens: tokens}
	}

	res := parser.New(tokens, parser.WithRecovery(opts.Recover)).Parse()
	return &Result{Mode: mode, Tokens: tokens, Tree: res.Tree, Errors: res.Errors}
}
