package lexer_test

import (
	"testing"

	"github.com/andressilva/minic/internal/compilererror"
	"github.com/andressilva/minic/internal/lexer"
	"github.com/andressilva/minic/internal/token"
)

func TestNextToken_Operators(t *testing.T) {
	tests := []struct {
		input string
		want  token.Type
	}{
		{"+", token.PLUS},
		{"-", token.MINUS},
		{"*", token.TIMES},
		{"/", token.DIVIDE},
		{"&&", token.AND},
		{"||", token.OR},
		{"==", token.EQUALS},
		{"!=", token.NOT_EQUALS},
		{"<", token.LESS},
		{"<=", token.LESS_EQUAL},
		{">", token.GREATER},
		{">=", token.GREATER_EQUAL},
		{"=", token.ASSIGN},
		{";", token.SEMICOLON},
		{",", token.COMMA},
		{"(", token.LPAREN},
		{")", token.RPAREN},
		{"{", token.LBRACE},
		{"}", token.RBRACE},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := lexer.New(tt.input)
			tok, err := l.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Type != tt.want {
				t.Errorf("got %s, want %s", tok.Type, tt.want)
			}
		})
	}
}

func TestNextToken_Keywords(t *testing.T) {
	tests := []struct {
		input string
		want  token.Type
	}{
		{"int", token.INT},
		{"float", token.FLOAT},
		{"char", token.CHAR},
		{"void", token.VOID},
		{"if", token.IF},
		{"else", token.ELSE},
		{"while", token.WHILE},
		{"do", token.DO},
		{"return", token.RETURN},
		{"printInt", token.PRINT_INT},
		{"printFloat", token.PRINT_FLOAT},
		{"printChar", token.PRINT_CHAR},
		{"printStr", token.PRINT_STR},
		{"scanInt", token.SCAN_INT},
		{"scanFloat", token.SCAN_FLOAT},
		{"scanChar", token.SCAN_CHAR},
		{"counter", token.ID},
		{"_hidden", token.ID},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := lexer.New(tt.input)
			tok, err := l.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Type != tt.want {
				t.Errorf("got %s, want %s", tok.Type, tt.want)
			}
			if tok.Lexeme != tt.input {
				t.Errorf("got lexeme %q, want %q", tok.Lexeme, tt.input)
			}
		})
	}
}

func TestNextToken_Numbers(t *testing.T) {
	tests := []struct {
		input string
		want  token.Type
	}{
		{"42", token.INTEGER_LITERAL},
		{"3.14", token.FLOAT_LITERAL},
		{"0", token.INTEGER_LITERAL},
		{"10.", token.INTEGER_LITERAL}, // trailing '.' with no digit stays out
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := lexer.New(tt.input)
			tok, err := l.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Type != tt.want {
				t.Errorf("got %s, want %s", tok.Type, tt.want)
			}
		})
	}
}

func TestNextToken_Literals(t *testing.T) {
	l := lexer.New(`'a' "hola"`)

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.CHAR_LITERAL || tok.Lexeme != "'a'" {
		t.Errorf("got %s %q, want CHAR_LITERAL 'a'", tok.Type, tok.Lexeme)
	}

	tok, err = l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.STRING_LITERAL || tok.Lexeme != `"hola"` {
		t.Errorf("got %s %q, want STRING_LITERAL \"hola\"", tok.Type, tok.Lexeme)
	}
}

func TestNextToken_SkipsWhitespaceAndComments(t *testing.T) {
	src := "  // a comment\n  /* block\ncomment */  int"
	l := lexer.New(src)
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.INT {
		t.Errorf("got %s, want INT", tok.Type)
	}
	if tok.Pos.Line != 3 {
		t.Errorf("got line %d, want 3", tok.Pos.Line)
	}
}

func TestNextToken_UnterminatedBlockComment(t *testing.T) {
	_, err := lexer.New("/* never closed").NextToken()
	if err == nil {
		t.Fatal("expected an error")
	}
	cerr, ok := err.(*compilererror.CompilerError)
	if !ok {
		t.Fatalf("got %T, want *compilererror.CompilerError", err)
	}
	if cerr.Kind != compilererror.Lexical {
		t.Errorf("got kind %v, want Lexical", cerr.Kind)
	}
}

func TestNextToken_UnrecognizedCharacter(t *testing.T) {
	_, err := lexer.New("@").NextToken()
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*compilererror.CompilerError); !ok {
		t.Fatalf("got %T, want *compilererror.CompilerError", err)
	}
}

func TestTokenize_EndsWithEOF(t *testing.T) {
	tokens, err := lexer.Tokenize("int x = 1;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) == 0 {
		t.Fatal("expected at least one token")
	}
	last := tokens[len(tokens)-1]
	if last.Type != token.EOF {
		t.Errorf("last token is %s, want EOF", last.Type)
	}
	for _, tok := range tokens[:len(tokens)-1] {
		if tok.Type == token.EOF {
			t.Fatal("EOF appeared before the end of the token stream")
		}
	}
}

func TestTokenize_LineAndColumnTracking(t *testing.T) {
	tokens, err := lexer.Tokenize("int x;\nfloat y;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "float" starts on line 2, column 1.
	for _, tok := range tokens {
		if tok.Lexeme == "float" {
			if tok.Pos.Line != 2 || tok.Pos.Column != 1 {
				t.Errorf("got position %s, want 2:1", tok.Pos)
			}
			return
		}
	}
	t.Fatal("did not find the 'float' token")
}
