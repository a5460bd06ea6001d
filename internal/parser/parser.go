// Package parser implements minic's recursive-descent parser, interleaved
// with semantic analysis and parse-tree construction at each binding site
// (spec §4.4). There is no separate AST-building pass over a finished
// token stream and no separate analysis pass over a finished tree: parsing,
// type checking, and tree building all happen in the same walk, the way
// the original implementation's single Parser class does it (spec §9
// collapses the BaseParser/DeclarationParser/FunctionParser split into one
// module, which this package follows).
package parser

import (
	"github.com/andressilva/minic/internal/compilererror"
	"github.com/andressilva/minic/internal/semantic"
	"github.com/andressilva/minic/internal/token"
	"github.com/andressilva/minic/internal/tree"
	"github.com/andressilva/minic/internal/types"
)

// Parser walks a finished token stream once, left to right, with no
// backtracking: its fixed-lookahead predicates (such as
// isFunctionDeclaration) read ahead through peekAt and never move pos.
type Parser struct {
	tokens   []token.Token
	pos      int
	analyzer *semantic.Analyzer
	builder  *tree.Builder

	recover bool
	errors  []error
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithRecovery enables error recovery: instead of stopping at the first
// error, the parser calls synchronize() and keeps going, accumulating every
// error it finds (spec §7's recovery mode, used by the batched test
// runner).
func WithRecovery(recover bool) Option {
	return func(p *Parser) { p.recover = recover }
}

// New creates a Parser over a finished token stream (normally the output
// of lexer.Tokenize).
func New(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{
		tokens:   tokens,
		analyzer: semantic.New(),
		builder:  tree.NewBuilder(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result is everything Parse produces: the built tree (possibly partial,
// if parsing stopped early with recovery disabled) and every error seen.
type Result struct {
	Tree   *tree.Node
	Errors []error
}

// Parse runs the parser over the whole token stream, producing Program's
// tree node (spec grammar: Program -> GlobalDeclaration* FunctionList).
func (p *Parser) Parse() *Result {
	p.program()
	return &Result{Tree: p.builder.Root(), Errors: p.errors}
}

// --- token-stream primitives -------------------------------------------------

func (p *Parser) peek() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[i]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) check(tt token.Type) bool {
	if p.isAtEnd() {
		return tt == token.EOF
	}
	return p.peek().Type == tt
}

func (p *Parser) match(types ...token.Type) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires the current token to have type tt, advancing past it;
// otherwise it raises a syntactic error at the current position.
func (p *Parser) consume(tt token.Type, message string) (token.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	tok := p.peek()
	return token.Token{}, compilererror.NewSyntactic(message, tok.Pos.Line, tok.Pos.Column)
}

// fail records a syntactic/semantic error raised mid-rule. With recovery
// disabled this is surfaced as soon as Parse returns by the caller checking
// Result.Errors; with recovery enabled the caller also calls synchronize()
// and keeps parsing.
func (p *Parser) fail(err error) {
	p.errors = append(p.errors, err)
}

// synchronize resets the analyzer's transient per-function state and skips
// tokens until it finds a statement boundary: a semicolon (which it also
// consumes) or the start of a new statement/declaration/closing brace
// (spec §4.4's error-recovery rule). It does NOT touch the scope stack.
func (p *Parser) synchronize() {
	p.analyzer.Synchronize()
	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case token.INT, token.FLOAT, token.CHAR, token.VOID,
			token.IF, token.WHILE, token.DO, token.RETURN,
			token.PRINT_INT, token.PRINT_FLOAT, token.PRINT_CHAR, token.PRINT_STR,
			token.RBRACE:
			return
		}
		p.advance()
	}
}

// --- shared predicates --------------------------------------------------

func isTypeToken(tt token.Type) bool {
	switch tt {
	case token.INT, token.FLOAT, token.CHAR, token.VOID:
		return true
	default:
		return false
	}
}

func dataTypeOf(tt token.Type) types.DataType {
	switch tt {
	case token.INT:
		return types.Int
	case token.FLOAT:
		return types.Float
	case token.CHAR:
		return types.Char
	default:
		return types.Void
	}
}

func isPrintToken(tt token.Type) bool {
	switch tt {
	case token.PRINT_INT, token.PRINT_FLOAT, token.PRINT_CHAR, token.PRINT_STR:
		return true
	default:
		return false
	}
}

func isScanToken(tt token.Type) bool {
	switch tt {
	case token.SCAN_INT, token.SCAN_FLOAT, token.SCAN_CHAR:
		return true
	default:
		return false
	}
}

func isStatementStart(tt token.Type) bool {
	if isTypeToken(tt) || isPrintToken(tt) {
		return true
	}
	switch tt {
	case token.ID, token.IF, token.WHILE, token.DO, token.RETURN, token.LBRACE:
		return true
	default:
		return false
	}
}
