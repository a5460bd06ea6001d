package parser

import (
	"github.com/andressilva/minic/internal/compilererror"
	"github.com/andressilva/minic/internal/token"
)

// syntacticExpectedType builds a syntactic error for a position where a
// type keyword (int/float/char/void) was required but not found.
func syntacticExpectedType(tok token.Token) error {
	return compilererror.NewSyntactic("se esperaba un tipo (int, float, char o void)",
		tok.Pos.Line, tok.Pos.Column)
}
