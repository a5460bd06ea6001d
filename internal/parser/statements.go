package parser

import (
	"github.com/andressilva/minic/internal/compilererror"
	"github.com/andressilva/minic/internal/token"
	"github.com/andressilva/minic/internal/types"
)

// statement dispatches on the current token to one of the statement forms
// spec §4.4 lists: a type keyword starts a local declaration, ID starts an
// assignment or a bare function-call statement, and each control-flow and
// I/O keyword starts its own form.
func (p *Parser) statement() error {
	switch {
	case isTypeToken(p.peek().Type):
		return p.declarationCore("Declaration")
	case p.check(token.ID):
		return p.assignmentOrCallStmt()
	case p.check(token.IF):
		return p.ifStmt()
	case p.check(token.WHILE):
		return p.whileStmt()
	case p.check(token.DO):
		return p.doWhileStmt()
	case p.check(token.RETURN):
		return p.returnStmt()
	case isPrintToken(p.peek().Type):
		return p.printStmt()
	case p.check(token.LBRACE):
		return p.block()
	default:
		tok := p.peek()
		return compilererror.NewSyntactic("se esperaba una instrucción", tok.Pos.Line, tok.Pos.Column)
	}
}

// block parses `'{' statement* '}'`, opening and closing one analyzer
// scope for its body (compound statements and if/while/do bodies; function
// bodies go through consumeFunctionBody instead).
func (p *Parser) block() error {
	if _, err := p.consume(token.LBRACE, "se esperaba '{'"); err != nil {
		return err
	}
	p.builder.Begin("Block", nil)
	defer p.builder.End()

	p.analyzer.EnterScope()
	defer p.analyzer.ExitScope()

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

// assignmentOrCallStmt disambiguates `ID '=' Expression ';'` from
// `ID '(' ArgumentList? ')' ';'` by one token of lookahead on what follows
// the identifier.
func (p *Parser) assignmentOrCallStmt() error {
	nameTok := p.advance()

	if p.check(token.LPAREN) {
		p.builder.Begin("CallStatement", nil)
		defer p.builder.End()
		if _, err := p.functionCall(nameTok); err != nil {
			return err
		}
		_, err := p.consume(token.SEMICOLON, "se esperaba ';'")
		return err
	}

	p.builder.Begin("Assignment", nil)
	defer p.builder.End()
	p.builder.Leaf("Identifier", &nameTok)

	assignTok, err := p.consume(token.ASSIGN, "se esperaba '='")
	if err != nil {
		return err
	}

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
	_, err = p.consume(token.SEMICOLON, "se esperaba ';'")
	return err
}

// ifStmt parses `'if' '(' Expression ')' Block ('else' Block)?`.
func (p *Parser) ifStmt() error {
	ifTok, _ := p.consume(token.IF, "se esperaba 'if'")
	p.builder.Begin("If", &ifTok)
	defer p.builder.End()

	if _, err := p.consume(token.LPAREN, "se esperaba '('"); err != nil {
		return err
	}
	condType, err := p.expression()
	if err != nil {
		return err
	}
	if err := p.analyzer.CheckCondition(condType, ifTok.Pos.Line, ifTok.Pos.Column); err != nil {
		return err
	}
	if _, err := p.consume(token.RPAREN, "se esperaba ')'"); err != nil {
		return err
	}
	if err := p.block(); err != nil {
		return err
	}
	if p.match(token.ELSE) {
		if err := p.block(); err != nil {
			return err
		}
	}
	return nil
}

// whileStmt parses `'while' '(' Expression ')' Block`.
func (p *Parser) whileStmt() error {
	whileTok, _ := p.consume(token.WHILE, "se esperaba 'while'")
	p.builder.Begin("While", &whileTok)
	defer p.builder.End()

	if _, err := p.consume(token.LPAREN, "se esperaba '('"); err != nil {
		return err
	}
	condType, err := p.expression()
	if err != nil {
		return err
	}
	if err := p.analyzer.CheckCondition(condType, whileTok.Pos.Line, whileTok.Pos.Column); err != nil {
		return err
	}
	if _, err := p.consume(token.RPAREN, "se esperaba ')'"); err != nil {
		return err
	}
	return p.block()
}

// doWhileStmt parses `'do' Block 'while' '(' Expression ')' ';'`.
func (p *Parser) doWhileStmt() error {
	doTok, _ := p.consume(token.DO, "se esperaba 'do'")
	p.builder.Begin("DoWhile", &doTok)
	defer p.builder.End()

	if err := p.block(); err != nil {
		return err
	}
	whileTok, err := p.consume(token.WHILE, "se esperaba 'while'")
	if err != nil {
		return err
	}
	if _, err := p.consume(token.LPAREN, "se esperaba '('"); err != nil {
		return err
	}
	condType, err := p.expression()
	if err != nil {
		return err
	}
	if err := p.analyzer.CheckCondition(condType, whileTok.Pos.Line, whileTok.Pos.Column); err != nil {
		return err
	}
	if _, err := p.consume(token.RPAREN, "se esperaba ')'"); err != nil {
		return err
	}
	_, err = p.consume(token.SEMICOLON, "se esperaba ';'")
	return err
}

// returnStmt parses `'return' Expression? ';'`, validating the returned
// value (or its absence) against the enclosing function's return type.
func (p *Parser) returnStmt() error {
	retTok, _ := p.consume(token.RETURN, "se esperaba 'return'")
	p.builder.Begin("Return", &retTok)
	defer p.builder.End()

	if p.check(token.SEMICOLON) {
		p.advance()
		return p.analyzer.CheckReturn(false, 0, retTok.Pos.Line, retTok.Pos.Column)
	}

	valueType, err := p.expression()
	if err != nil {
		return err
	}
	if err := p.analyzer.CheckReturn(true, valueType, retTok.Pos.Line, retTok.Pos.Column); err != nil {
		return err
	}
	_, err = p.consume(token.SEMICOLON, "se esperaba ';'")
	return err
}

// ioExpectedType maps a print keyword to the exact argument type spec §4.4's
// io_stmt requires for it: printInt->INT, printFloat->FLOAT, printChar and
// printStr->CHAR (string literals are typed CHAR for I/O purposes, spec §3).
func ioExpectedType(kw token.Type) types.DataType {
	switch kw {
	case token.PRINT_INT:
		return types.Int
	case token.PRINT_FLOAT:
		return types.Float
	default: // PRINT_CHAR, PRINT_STR
		return types.Char
	}
}

// printStmt parses `('printInt'|'printFloat'|'printChar'|'printStr') '(' Expression ')' ';'`.
// Unlike scan, every print variant requires an argument (spec §4.4's
// io_stmt: print always takes an expression, scan never does). The
// argument's type must exactly match the primitive's expected type -- the
// I/O context is strict, no INT->FLOAT widening (spec §4.4, mirrored by
// original_source/parse_tree/tree_parser.py's io_stmt).
func (p *Parser) printStmt() error {
	kwTok := p.advance()
	p.builder.Begin("Print", &kwTok)
	defer p.builder.End()

	if _, err := p.consume(token.LPAREN, "se esperaba '('"); err != nil {
		return err
	}
	argType, err := p.expression()
	if err != nil {
		return err
	}
	if err := p.analyzer.CheckTypes(ioExpectedType(kwTok.Type), argType, true, kwTok.Pos.Line, kwTok.Pos.Column); err != nil {
		return err
	}
	if _, err := p.consume(token.RPAREN, "se esperaba ')'"); err != nil {
		return err
	}
	_, err = p.consume(token.SEMICOLON, "se esperaba ';'")
	return err
}
