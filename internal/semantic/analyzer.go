// Package semantic implements minic's semantic analyzer: type checking,
// variable/function binding against the symbol table, and the
// control-flow obligations (return-path, condition typing) spec §4.3
// describes. It is driven synchronously by the parser -- there is no
// separate analysis pass over a finished tree (spec §9: single interleaved
// pass, not the teacher's multi-pass architecture).
package semantic

import (
	"fmt"

	"github.com/andressilva/minic/internal/compilererror"
	"github.com/andressilva/minic/internal/symboltable"
	"github.com/andressilva/minic/internal/types"
)

// Analyzer holds the symbol table and the transient state scoped to the
// function currently being analyzed: its declared return type and whether
// a return statement has been seen yet.
type Analyzer struct {
	symbols           *symboltable.SymbolTable
	currentReturnType types.DataType
	hasReturn         bool
	inFunction        bool
}

// New creates an Analyzer with a fresh, empty symbol table.
func New() *Analyzer {
	return &Analyzer{symbols: symboltable.New()}
}

// Symbols exposes the underlying symbol table.
func (a *Analyzer) Symbols() *symboltable.SymbolTable {
	return a.symbols
}

// EnterScope/ExitScope delegate straight to the symbol table; analyzer
// state (current return type, has-return flag) is function-scoped, not
// block-scoped, so blocks don't touch it.
func (a *Analyzer) EnterScope() { a.symbols.EnterScope() }
func (a *Analyzer) ExitScope()  { a.symbols.ExitScope() }

// Synchronize resets only the analyzer's transient per-function state
// after a parse error triggers recovery. The scope stack is left alone --
// recovery resumes parsing, it does not unwind scopes (spec §4.4).
func (a *Analyzer) Synchronize() {
	a.inFunction = false
	a.hasReturn = false
	a.currentReturnType = types.Void
}

// CheckTypes validates that a value of type found may be used where
// expected is required. strict forbids the INT->FLOAT widening that
// general contexts allow (spec §4.3: function-argument and I/O contexts
// are strict; assignment/initialization contexts are general).
func (a *Analyzer) CheckTypes(expected, found types.DataType, strict bool, line, col int) error {
	if expected == found {
		return nil
	}
	if !strict && expected == types.Float && found == types.Int {
		return nil
	}
	return compilererror.NewSemantic(
		fmt.Sprintf("Tipo incompatible. Se esperaba %s, se recibió %s", expected, found),
		line, col)
}

// DeclareVariable defines a new variable in the current scope, in its
// not-yet-initialized state.
func (a *Analyzer) DeclareVariable(name string, dt types.DataType, line, col int) error {
	err := a.symbols.DefineVariable(types.Variable{Name: name, Type: dt, Line: line, Column: col})
	if err != nil {
		return compilererror.NewSemantic(err.Error(), line, col)
	}
	return nil
}

// CheckVariableExists resolves a variable reference, returning its record
// (so callers can read its type and initialization state) or a semantic
// error if it was never declared in any enclosing scope.
func (a *Analyzer) CheckVariableExists(name string, line, col int) (*types.Variable, error) {
	v, ok := a.symbols.LookupVariable(name)
	if !ok {
		return nil, compilererror.NewSemantic(
			fmt.Sprintf("Variable '%s' no declarada", name), line, col)
	}
	return v, nil
}

// CheckVariableInitialized requires that a variable used in an expression
// has been assigned a value at least once. Initialization only ever
// flips false->true; it is never un-set (spec invariant).
func (a *Analyzer) CheckVariableInitialized(v *types.Variable, line, col int) error {
	if !v.Initialized {
		return compilererror.NewSemantic(
			fmt.Sprintf("Variable '%s' usada sin inicializar", v.Name), line, col)
	}
	return nil
}

// AnalyzeAssignment checks an assignment's value type against the target
// variable's declared type (general context: INT widens to FLOAT) and
// marks the variable initialized.
func (a *Analyzer) AnalyzeAssignment(v *types.Variable, valueType types.DataType, line, col int) error {
	if err := a.CheckTypes(v.Type, valueType, false, line, col); err != nil {
		return err
	}
	v.Initialized = true
	return nil
}

// CheckCondition requires that an if/while/do-while condition's computed
// type is int -- minic has no boolean type, comparisons and logical
// operators all yield int (spec §4.3).
func (a *Analyzer) CheckCondition(dt types.DataType, line, col int) error {
	if dt != types.Int {
		return compilererror.NewSemantic("La condición debe ser de tipo int", line, col)
	}
	return nil
}

// CanCompare reports whether two operand types may appear on either side
// of a comparison operator: both must resolve to the same type, OR one of
// them widens per the general (non-strict) rule.
func (a *Analyzer) CanCompare(t1, t2 types.DataType) bool {
	if t1 == t2 {
		return true
	}
	return (t1 == types.Int && t2 == types.Float) || (t1 == types.Float && t2 == types.Int)
}

// GetOperationType computes the result type of a binary operation over
// operand types left and right (spec §4.3's get_operation_type):
//   - arithmetic (+ - * /): FLOAT if either operand is FLOAT, else INT;
//     any CHAR/VOID operand is an error.
//   - comparison (== != < <= > >=): operands must be comparable
//     (CanCompare); result is INT (minic has no bool).
//   - logical (&& ||): both operands must be INT; result is INT.
func (a *Analyzer) GetOperationType(left DataType, op Operator, right DataType, line, col int) (types.DataType, error) {
	switch op.Category() {
	case Arithmetic:
		if left == types.Char || left == types.Void || right == types.Char || right == types.Void {
			return 0, compilererror.NewSemantic(
				fmt.Sprintf("Operandos incompatibles: %s %s %s", left, op, right), line, col)
		}
		if left == types.Float || right == types.Float {
			return types.Float, nil
		}
		return types.Int, nil
	case Comparison:
		if !a.CanCompare(left, right) {
			return 0, compilererror.NewSemantic(
				fmt.Sprintf("Operandos incompatibles: %s %s %s", left, op, right), line, col)
		}
		return types.Int, nil
	case Logical:
		if left != types.Int || right != types.Int {
			return 0, compilererror.NewSemantic("Operadores lógicos requieren operandos enteros", line, col)
		}
		return types.Int, nil
	default:
		return 0, compilererror.NewSemantic("operador desconocido", line, col)
	}
}

// type alias kept local to avoid importing types twice under two names in
// this file's exported signatures.
type DataType = types.DataType

// EnterFunction begins analyzing a function body: registers the function's
// signature (arity + parameter types matter for later call checks),
// enters a new scope for its parameters and body, and resets the
// return-tracking state for this function.
func (a *Analyzer) EnterFunction(name string, returnType types.DataType, line, col int) error {
	fn := types.Function{Name: name, ReturnType: returnType, Line: line, Column: col}
	if err := a.symbols.DefineFunction(fn); err != nil {
		return compilererror.NewSemantic(err.Error(), line, col)
	}
	a.symbols.EnterFunction(name)
	a.symbols.EnterScope()
	a.currentReturnType = returnType
	a.hasReturn = false
	a.inFunction = true
	return nil
}

// AddParameter appends a parameter to the function currently being
// declared and defines it as a variable in the function's scope, already
// initialized (arguments arrive with a value).
func (a *Analyzer) AddParameter(funcName string, param types.Variable, line, col int) error {
	fn, ok := a.symbols.LookupFunction(funcName)
	if !ok {
		return compilererror.NewSemantic(
			fmt.Sprintf("Función '%s' no declarada", funcName), line, col)
	}
	fn.Parameters = append(fn.Parameters, param)
	param.Initialized = true
	if err := a.symbols.DefineVariable(param); err != nil {
		return compilererror.NewSemantic(err.Error(), line, col)
	}
	return nil
}

// CheckFunctionExists resolves a call target, returning its signature or a
// semantic error if no such function was declared.
func (a *Analyzer) CheckFunctionExists(name string, line, col int) (*types.Function, error) {
	fn, ok := a.symbols.LookupFunction(name)
	if !ok {
		return nil, compilererror.NewSemantic(
			fmt.Sprintf("Función '%s' no declarada", name), line, col)
	}
	return fn, nil
}

// CheckFunctionCall validates a call's argument list against the callee's
// parameter list: arity first, then each argument's type against its
// parameter's type, in the strict (non-widening) context functions require.
func (a *Analyzer) CheckFunctionCall(fn *types.Function, argTypes []types.DataType, line, col int) error {
	if len(argTypes) != len(fn.Parameters) {
		return compilererror.NewSemantic(
			fmt.Sprintf("Número incorrecto de argumentos para '%s'. Se esperaban %d, se recibieron %d",
				fn.Name, len(fn.Parameters), len(argTypes)),
			line, col)
	}
	for i, argType := range argTypes {
		want := fn.Parameters[i].Type
		if argType != want {
			return compilererror.NewSemantic(
				fmt.Sprintf("Tipo de argumento incompatible en posición %d. Se esperaba %s, se recibió %s",
					i+1, want, argType),
				line, col)
		}
	}
	return nil
}

// CheckReturn validates a return statement against the enclosing
// function's declared return type and records that a return was seen.
func (a *Analyzer) CheckReturn(hasValue bool, valueType types.DataType, line, col int) error {
	if !a.inFunction {
		return compilererror.NewSemantic("return fuera de una función", line, col)
	}
	if a.currentReturnType == types.Void {
		if hasValue {
			return compilererror.NewSemantic("función void no debe retornar un valor", line, col)
		}
	} else {
		if !hasValue {
			return compilererror.NewSemantic(
				fmt.Sprintf("función de tipo %s debe retornar un valor", a.currentReturnType), line, col)
		}
		// General typing context: a non-void return widens INT->FLOAT the
		// same as an assignment or initializer does (spec §4.3).
		if err := a.CheckTypes(a.currentReturnType, valueType, false, line, col); err != nil {
			return err
		}
	}
	a.hasReturn = true
	return nil
}

// ExitFunction closes out a function body: requires that a non-void
// function saw at least one return statement somewhere in its body (a
// non-path-sensitive check -- spec §4.3 does not require every control
// path to return, only that the function contains a return).
func (a *Analyzer) ExitFunction(name string, line, col int) error {
	if a.currentReturnType != types.Void && !a.hasReturn {
		a.symbols.ExitScope()
		a.symbols.ExitFunction()
		a.inFunction = false
		return compilererror.NewSemantic(
			fmt.Sprintf("La función '%s' debe retornar un valor", name), line, col)
	}
	a.symbols.ExitScope()
	a.symbols.ExitFunction()
	a.inFunction = false
	return nil
}
