package parser

import (
	"github.com/andressilva/minic/internal/compilererror"
	"github.com/andressilva/minic/internal/token"
)

// program implements the grammar root:
//
//	Program -> GlobalDeclaration* FunctionList
//
// An empty program is rejected, and the program must contain a function
// named "main" (spec §4.4, mirroring original_source/parser/parser.py's
// program()).
func (p *Parser) program() {
	p.builder.Begin("Program", nil)

	if p.isAtEnd() {
		p.fail(compilererror.NewSyntactic("El programa está vacío", 1, 1))
		p.builder.End()
		return
	}

	sawMain := false
	stopped := false
	for !p.isAtEnd() {
		if p.isFunctionDeclaration() {
			name, err := p.function()
			if err != nil {
				p.fail(err)
				if !p.recover {
					stopped = true
					break
				}
				p.synchronize()
				continue
			}
			if name == "main" {
				sawMain = true
			}
			continue
		}
		if isTypeToken(p.peek().Type) {
			if err := p.globalDeclaration(); err != nil {
				p.fail(err)
				if !p.recover {
					stopped = true
					break
				}
				p.synchronize()
			}
			continue
		}
		// Neither a declaration nor a function: unrecoverable shape at
		// this position.
		tok := p.peek()
		p.fail(compilererror.NewSyntactic(
			"se esperaba una declaración o una función", tok.Pos.Line, tok.Pos.Column))
		if !p.recover {
			stopped = true
			break
		}
		p.advance()
	}

	// A parse that stopped at its first error never saw the rest of the
	// program, so a missing main is only reported after a full pass.
	if !sawMain && !stopped {
		p.fail(compilererror.NewSyntactic("No se encontró la función 'main'", 1, 1))
	}

	p.builder.End()
}

// isFunctionDeclaration performs fixed lookahead to distinguish a function
// declaration (`type ID (`) from a global variable declaration
// (`type ID = ...;` or `type ID;`), without consuming any tokens.
func (p *Parser) isFunctionDeclaration() bool {
	if !isTypeToken(p.peek().Type) {
		return false
	}
	if p.peekAt(1).Type != token.ID {
		return false
	}
	return p.peekAt(2).Type == token.LPAREN
}
