package parser_test

import (
	"testing"

	"github.com/andressilva/minic/internal/lexer"
	"github.com/andressilva/minic/internal/parser"
)

func parseSource(t *testing.T, src string) *parser.Result {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected lexical error: %v", err)
	}
	return parser.New(tokens).Parse()
}

func TestParse_MinimalMain(t *testing.T) {
	res := parseSource(t, `void main() { }`)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.Tree == nil || res.Tree.Label != "Program" {
		t.Fatal("expected a Program root node")
	}
}

func TestParse_EmptyProgram(t *testing.T) {
	res := parseSource(t, ``)
	if len(res.Errors) == 0 {
		t.Fatal("expected an error for an empty program")
	}
}

func TestParse_MissingMain(t *testing.T) {
	res := parseSource(t, `void helper() { }`)
	if len(res.Errors) == 0 {
		t.Fatal("expected an error for a program with no 'main'")
	}
}

func TestParse_GlobalDeclarationWithInitializer(t *testing.T) {
	res := parseSource(t, `
		int counter = 0;
		void main() { }
	`)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
}

func TestParse_VariableUsedWithoutDeclaration(t *testing.T) {
	res := parseSource(t, `
		void main() {
			x = 1;
		}
	`)
	if len(res.Errors) == 0 {
		t.Fatal("expected an undeclared-variable error")
	}
}

func TestParse_VariableUsedBeforeInitialization(t *testing.T) {
	res := parseSource(t, `
		void main() {
			int x;
			int y = x + 1;
		}
	`)
	if len(res.Errors) == 0 {
		t.Fatal("expected an uninitialized-use error")
	}
}

func TestParse_FunctionCallArityMismatch(t *testing.T) {
	res := parseSource(t, `
		int add(int a, int b) {
			return a + b;
		}
		void main() {
			int r = add(1);
		}
	`)
	if len(res.Errors) == 0 {
		t.Fatal("expected an arity-mismatch error")
	}
}

func TestParse_FunctionCallArgumentTypeMismatch(t *testing.T) {
	res := parseSource(t, `
		int takesInt(int a) {
			return a;
		}
		void main() {
			int r = takesInt(1.5);
		}
	`)
	if len(res.Errors) == 0 {
		t.Fatal("expected an argument-type-mismatch error (strict function-call context)")
	}
}

func TestParse_NonVoidFunctionMissingReturn(t *testing.T) {
	res := parseSource(t, `
		int f() {
		}
		void main() { }
	`)
	if len(res.Errors) == 0 {
		t.Fatal("expected a missing-return error")
	}
}

func TestParse_WhileConditionMustBeInt(t *testing.T) {
	res := parseSource(t, `
		void main() {
			float f = 1.5;
			while (f) {
			}
		}
	`)
	if len(res.Errors) == 0 {
		t.Fatal("expected a condition-must-be-int error")
	}
}

func TestParse_IntWidensToFloatInAssignment(t *testing.T) {
	res := parseSource(t, `
		void main() {
			float f = 1;
		}
	`)
	if len(res.Errors) != 0 {
		t.Fatalf("int should widen to float in a general (non-strict) context: %v", res.Errors)
	}
}

func TestParse_IfElseAndDoWhile(t *testing.T) {
	res := parseSource(t, `
		void main() {
			int x = 1;
			if (x == 1) {
				x = 2;
			} else {
				x = 3;
			}
			do {
				x = x - 1;
			} while (x > 0);
		}
	`)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
}

func TestParse_PrintAndScan(t *testing.T) {
	res := parseSource(t, `
		void main() {
			int x = scanInt();
			printInt(x);
		}
	`)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
}

func TestParse_RecoveryContinuesAfterFirstError(t *testing.T) {
	tokens, err := lexer.Tokenize(`
		void main() {
			x = 1;
			int y = 2;
		}
	`)
	if err != nil {
		t.Fatalf("unexpected lexical error: %v", err)
	}
	res := parser.New(tokens, parser.WithRecovery(true)).Parse()
	if len(res.Errors) != 1 {
		t.Fatalf("got %d errors, want exactly 1 (the undeclared 'x'), errors: %v", len(res.Errors), res.Errors)
	}
}
