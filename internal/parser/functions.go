package parser

import (
	"github.com/andressilva/minic/internal/token"
	"github.com/andressilva/minic/internal/types"
)

// function parses one function declaration:
//
//	Function -> Type ID '(' ParameterList? ')' Block
//
// enter_function/exit_function bracket the whole declaration (spec §4.3):
// the signature is registered, a scope opens for its parameters and body,
// and on exit the analyzer checks that a non-void function returned a
// value somewhere in its body.
func (p *Parser) function() (name string, err error) {
	typeTok := p.advance()
	returnType := dataTypeOf(typeTok.Type)

	nameTok, err := p.consume(token.ID, "se esperaba un identificador de función")
	if err != nil {
		return "", err
	}

	label := "Function"
	if nameTok.Lexeme == "main" {
		label = "MainFunction"
	}
	p.builder.Begin(label, &nameTok)
	defer p.builder.End()
	p.builder.Leaf("Type", &typeTok)

	if err := p.analyzer.EnterFunction(nameTok.Lexeme, returnType, nameTok.Pos.Line, nameTok.Pos.Column); err != nil {
		return "", err
	}

	if _, err := p.consume(token.LPAREN, "se esperaba '('"); err != nil {
		return "", err
	}
	if !p.check(token.RPAREN) {
		if err := p.parameterList(nameTok.Lexeme); err != nil {
			return "", err
		}
	}
	if _, err := p.consume(token.RPAREN, "se esperaba ')'"); err != nil {
		return "", err
	}

	if err := p.consumeFunctionBody(); err != nil {
		return "", err
	}

	if err := p.analyzer.ExitFunction(nameTok.Lexeme, nameTok.Pos.Line, nameTok.Pos.Column); err != nil {
		return "", err
	}

	return nameTok.Lexeme, nil
}

// consumeFunctionBody parses the function's block without opening a
// second analyzer scope on top of the one EnterFunction already opened --
// the parameter scope and the body scope are the same scope, the way
// original_source/parser/parser.py's function() does it.
func (p *Parser) consumeFunctionBody() error {
	if _, err := p.consume(token.LBRACE, "se esperaba '{'"); err != nil {
		return err
	}
	p.builder.Begin("Block", nil)
	defer p.builder.End()

	for !p.check(token.RBRACE) && !p.isAtEnd() {
		if err := p.statement(); err != nil {
			if !p.recover {
				return err
			}
			p.fail(err)
			p.synchronize()
		}
	}
	_, err := p.consume(token.RBRACE, "se esperaba '}'")
	return err
}

// parameterList parses `Parameter (',' Parameter)*` and registers each
// parameter against funcName's signature, already marked initialized.
//
//	Parameter -> Type ID
func (p *Parser) parameterList(funcName string) error {
	for {
		if err := p.parameter(funcName); err != nil {
			return err
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	return nil
}

func (p *Parser) parameter(funcName string) error {
	if !isTypeToken(p.peek().Type) {
		tok := p.peek()
		return syntacticExpectedType(tok)
	}
	typeTok := p.advance()
	dt := dataTypeOf(typeTok.Type)

	nameTok, err := p.consume(token.ID, "se esperaba un identificador de parámetro")
	if err != nil {
		return err
	}

	p.builder.Begin("Parameter", &nameTok)
	p.builder.Leaf("Type", &typeTok)
	p.builder.End()

	return p.analyzer.AddParameter(funcName, types.Variable{Name: nameTok.Lexeme, Type: dt},
		nameTok.Pos.Line, nameTok.Pos.Column)
}
