package parser

import "github.com/andressilva/minic/internal/token"

// globalDeclaration implements:
//
//	GlobalDeclaration -> Type ID ('=' Expression)? ';'
//
// and is also reused, unchanged in shape, for local declarations inside a
// function body (statement() in statements.go calls the shared core).
func (p *Parser) globalDeclaration() error {
	return p.declarationCore("GlobalDeclaration")
}

// declarationCore parses one variable declaration, building a tree node
// labeled label, declaring the variable with the analyzer, and -- if an
// initializer is present -- type-checking and marking it initialized.
func (p *Parser) declarationCore(label string) error {
	p.builder.Begin(label, nil)
	defer p.builder.End()

	typeTok := p.advance() // caller already confirmed this is a type token
	dt := dataTypeOf(typeTok.Type)
	p.builder.Leaf("Type", &typeTok)

	nameTok, err := p.consume(token.ID, "se esperaba un identificador")
	if err != nil {
		return err
	}
	p.builder.Leaf("Identifier", &nameTok)

	if err := p.analyzer.DeclareVariable(nameTok.Lexeme, dt, nameTok.Pos.Line, nameTok.Pos.Column); err != nil {
		return err
	}

	if p.match(token.ASSIGN) {
		assignTok := p.previous()
		exprType, err := p.expression()
		if err != nil {
			return err
		}
		v, err := p.analyzer.CheckVariableExists(nameTok.Lexeme, nameTok.Pos.Line, nameTok.Pos.Column)
		if err != nil {
			return err
		}
		if err := p.analyzer.AnalyzeAssignment(v, exprType, assignTok.Pos.Line, assignTok.Pos.Column); err != nil {
			return err
		}
	}

	_, err = p.consume(token.SEMICOLON, "se esperaba ';'")
	return err
}
