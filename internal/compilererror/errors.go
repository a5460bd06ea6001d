// Package compilererror defines the single error type shared by the lexer,
// parser, and semantic analyzer. Every diagnostic the front-end can raise
// is one of three kinds carried by the same struct (spec §7); there is no
// exception hierarchy.
package compilererror

import (
	"fmt"
	"strings"
)

// Kind classifies a CompilerError by the stage that raised it.
type Kind int

const (
	Lexical Kind = iota
	Syntactic
	Semantic
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "léxico"
	case Syntactic:
		return "sintáctico"
	case Semantic:
		return "semántico"
	default:
		return "desconocido"
	}
}

// CompilerError is the one error type the front-end ever produces. Line and
// Column are 1-indexed source positions (spec §6.3).
type CompilerError struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
}

// NewLexical builds a lexical-stage error.
func NewLexical(message string, line, column int) *CompilerError {
	return &CompilerError{Kind: Lexical, Message: message, Line: line, Column: column}
}

// NewSyntactic builds a parser-stage error.
func NewSyntactic(message string, line, column int) *CompilerError {
	return &CompilerError{Kind: Syntactic, Message: message, Line: line, Column: column}
}

// NewSemantic builds a semantic-analyzer-stage error.
func NewSemantic(message string, line, column int) *CompilerError {
	return &CompilerError{Kind: Semantic, Message: message, Line: line, Column: column}
}

// Error renders the single-line diagnostic required by spec §6.3's driver
// contract: "Error en línea L, columna C: <message>". This is the only
// format the driver's failure exit path ever prints.
func (e *CompilerError) Error() string {
	return fmt.Sprintf("Error en línea %d, columna %d: %s", e.Line, e.Column, e.Message)
}

// Format renders the diagnostic with a kind label, optionally in color.
// Grounded on the teacher's errors.Format(color bool): a header line
// followed by the one-line message.
func (e *CompilerError) Format(color bool) string {
	header := fmt.Sprintf("error %s", e.Kind)
	if color {
		header = "\x1b[31;1m" + header + "\x1b[0m"
	}
	return fmt.Sprintf("%s: %s", header, e.Error())
}

// FormatWithContext renders the diagnostic together with the offending
// source line and a caret under the reported column, in the manner of the
// teacher's errors.FormatWithContext. contextLines controls how many lines
// of surrounding source (above and below) are included; 0 shows only the
// offending line.
func (e *CompilerError) FormatWithContext(source string, contextLines int, color bool) string {
	lines := strings.Split(source, "\n")
	idx := e.Line - 1
	if idx < 0 || idx >= len(lines) {
		return e.Format(color)
	}

	start := idx - contextLines
	if start < 0 {
		start = 0
	}
	end := idx + contextLines
	if end >= len(lines) {
		end = len(lines) - 1
	}

	var b strings.Builder
	b.WriteString(e.Format(color))
	b.WriteByte('\n')
	for i := start; i <= end; i++ {
		b.WriteString(fmt.Sprintf("%4d | %s\n", i+1, lines[i]))
		if i == idx {
			caret := strings.Repeat(" ", 7+max(e.Column-1, 0)) + "^"
			if color {
				caret = "\x1b[32;1m" + caret + "\x1b[0m"
			}
			b.WriteString(caret)
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
