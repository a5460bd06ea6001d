package parser

import (
	"github.com/andressilva/minic/internal/compilererror"
	"github.com/andressilva/minic/internal/semantic"
	"github.com/andressilva/minic/internal/token"
	"github.com/andressilva/minic/internal/types"
)

// expression is the grammar's top rule. Its only irregularity is the scan
// family (scanInt/scanFloat/scanChar): a bare scan call is itself a
// complete expression, so it is recognized before falling through to the
// regular precedence chain (mirrors original_source/parser/parser.py's
// expression(), which special-cases scan calls the same way).
//
//	Expression -> ScanCall | LogicExpr
func (p *Parser) expression() (types.DataType, error) {
	if isScanToken(p.peek().Type) {
		return p.scanCall()
	}
	return p.logicExpr()
}

// scanCall parses `scanInt()` / `scanFloat()` / `scanChar()`.
func (p *Parser) scanCall() (types.DataType, error) {
	tok := p.advance()
	p.builder.Begin("ScanCall", &tok)
	defer p.builder.End()

	if _, err := p.consume(token.LPAREN, "se esperaba '('"); err != nil {
		return 0, err
	}
	if _, err := p.consume(token.RPAREN, "se esperaba ')'"); err != nil {
		return 0, err
	}

	switch tok.Type {
	case token.SCAN_INT:
		return types.Int, nil
	case token.SCAN_FLOAT:
		return types.Float, nil
	default:
		return types.Char, nil
	}
}

// logicExpr -> CompExpr (('&&' | '||') CompExpr)*
func (p *Parser) logicExpr() (types.DataType, error) {
	left, err := p.compExpr()
	if err != nil {
		return 0, err
	}
	for p.match(token.AND, token.OR) {
		opTok := p.previous()
		right, err := p.compExpr()
		if err != nil {
			return 0, err
		}
		left, err = p.analyzer.GetOperationType(left, semantic.Operator(opTok.Type), right,
			opTok.Pos.Line, opTok.Pos.Column)
		if err != nil {
			return 0, err
		}
	}
	return left, nil
}

// compExpr -> AddExpr (('==' | '!=' | '<' | '<=' | '>' | '>=') AddExpr)*
func (p *Parser) compExpr() (types.DataType, error) {
	left, err := p.addExpr()
	if err != nil {
		return 0, err
	}
	for p.match(token.EQUALS, token.NOT_EQUALS, token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL) {
		opTok := p.previous()
		right, err := p.addExpr()
		if err != nil {
			return 0, err
		}
		left, err = p.analyzer.GetOperationType(left, semantic.Operator(opTok.Type), right,
			opTok.Pos.Line, opTok.Pos.Column)
		if err != nil {
			return 0, err
		}
	}
	return left, nil
}

// addExpr -> MultExpr (('+' | '-') MultExpr)*
func (p *Parser) addExpr() (types.DataType, error) {
	left, err := p.multExpr()
	if err != nil {
		return 0, err
	}
	for p.match(token.PLUS, token.MINUS) {
		opTok := p.previous()
		right, err := p.multExpr()
		if err != nil {
			return 0, err
		}
		left, err = p.analyzer.GetOperationType(left, semantic.Operator(opTok.Type), right,
			opTok.Pos.Line, opTok.Pos.Column)
		if err != nil {
			return 0, err
		}
	}
	return left, nil
}

// multExpr -> Factor (('*' | '/') Factor)*
func (p *Parser) multExpr() (types.DataType, error) {
	left, err := p.factor()
	if err != nil {
		return 0, err
	}
	for p.match(token.TIMES, token.DIVIDE) {
		opTok := p.previous()
		right, err := p.factor()
		if err != nil {
			return 0, err
		}
		left, err = p.analyzer.GetOperationType(left, semantic.Operator(opTok.Type), right,
			opTok.Pos.Line, opTok.Pos.Column)
		if err != nil {
			return 0, err
		}
	}
	return left, nil
}

// factor -> INTEGER_LITERAL | FLOAT_LITERAL | CHAR_LITERAL | STRING_LITERAL
//         | ID ArgumentList?       -- a function call if followed by '('
//         | '(' Expression ')'
func (p *Parser) factor() (types.DataType, error) {
	switch {
	case p.check(token.INTEGER_LITERAL):
		tok := p.advance()
		p.builder.Leaf("Literal", &tok)
		return types.Int, nil

	case p.check(token.FLOAT_LITERAL):
		tok := p.advance()
		p.builder.Leaf("Literal", &tok)
		return types.Float, nil

	case p.check(token.CHAR_LITERAL):
		tok := p.advance()
		p.builder.Leaf("Literal", &tok)
		return types.Char, nil

	case p.check(token.STRING_LITERAL):
		tok := p.advance()
		p.builder.Leaf("Literal", &tok)
		return types.Char, nil

	case p.check(token.ID):
		return p.identifierOrCall()

	case p.match(token.LPAREN):
		dt, err := p.expression()
		if err != nil {
			return 0, err
		}
		if _, err := p.consume(token.RPAREN, "se esperaba ')'"); err != nil {
			return 0, err
		}
		return dt, nil

	default:
		tok := p.peek()
		return 0, compilererror.NewSyntactic("se esperaba una expresión", tok.Pos.Line, tok.Pos.Column)
	}
}

// identifierOrCall disambiguates a bare variable reference from a function
// call by one token of lookahead on '(' -- both start with ID.
func (p *Parser) identifierOrCall() (types.DataType, error) {
	nameTok := p.advance()

	if p.check(token.LPAREN) {
		return p.functionCall(nameTok)
	}

	p.builder.Leaf("Identifier", &nameTok)
	v, err := p.analyzer.CheckVariableExists(nameTok.Lexeme, nameTok.Pos.Line, nameTok.Pos.Column)
	if err != nil {
		return 0, err
	}
	if err := p.analyzer.CheckVariableInitialized(v, nameTok.Pos.Line, nameTok.Pos.Column); err != nil {
		return 0, err
	}
	return v.Type, nil
}

// functionCall parses the '(' ArgumentList? ')' tail of a call whose name
// token (nameTok) has already been consumed, and validates it against the
// callee's declared signature (strict, non-widening argument types).
func (p *Parser) functionCall(nameTok token.Token) (types.DataType, error) {
	p.builder.Begin("FunctionCall", &nameTok)
	defer p.builder.End()

	if _, err := p.consume(token.LPAREN, "se esperaba '('"); err != nil {
		return 0, err
	}

	var argTypes []types.DataType
	if !p.check(token.RPAREN) {
		for {
			dt, err := p.expression()
			if err != nil {
				return 0, err
			}
			argTypes = append(argTypes, dt)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	if _, err := p.consume(token.RPAREN, "se esperaba ')'"); err != nil {
		return 0, err
	}

	fn, err := p.analyzer.CheckFunctionExists(nameTok.Lexeme, nameTok.Pos.Line, nameTok.Pos.Column)
	if err != nil {
		return 0, err
	}
	if err := p.analyzer.CheckFunctionCall(fn, argTypes, nameTok.Pos.Line, nameTok.Pos.Column); err != nil {
		return 0, err
	}
	return fn.ReturnType, nil
}
