package semantic

import "github.com/andressilva/minic/internal/token"

// Operator wraps a token.Type that denotes a binary operator, giving
// GetOperationType a way to classify it into one of the three operation
// families spec §4.3 treats differently.
type Operator token.Type

// Category identifies which typing rule an operator falls under.
type Category int

const (
	Arithmetic Category = iota
	Comparison
	Logical
)

// Category classifies o into Arithmetic (+ - * /), Comparison
// (== != < <= > >=), or Logical (&& ||).
func (o Operator) Category() Category {
	switch token.Type(o) {
	case token.PLUS, token.MINUS, token.TIMES, token.DIVIDE:
		return Arithmetic
	case token.EQUALS, token.NOT_EQUALS, token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		return Comparison
	case token.AND, token.OR:
		return Logical
	default:
		return Arithmetic
	}
}

// String renders the operator's lexeme-ish symbol for error messages.
func (o Operator) String() string {
	switch token.Type(o) {
	case token.PLUS:
		return "+"
	case token.MINUS:
		return "-"
	case token.TIMES:
		return "*"
	case token.DIVIDE:
		return "/"
	case token.EQUALS:
		return "=="
	case token.NOT_EQUALS:
		return "!="
	case token.LESS:
		return "<"
	case token.LESS_EQUAL:
		return "<="
	case token.GREATER:
		return ">"
	case token.GREATER_EQUAL:
		return ">="
	case token.AND:
		return "&&"
	case token.OR:
		return "||"
	default:
		return "?"
	}
}
