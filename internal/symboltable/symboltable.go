// Package symboltable implements minic's scope chain: a stack of scopes
// for variables, plus a single flat function namespace shared by the whole
// program. Names are case-sensitive -- unlike the teacher's DWScript
// symbol table, minic's source language draws no case-insensitivity
// distinction, so no name normalization happens here.
package symboltable

import "github.com/andressilva/minic/internal/types"

// Scope holds the variables declared directly in one lexical block, plus a
// link to its enclosing scope. Functions are NOT per-scope: minic has no
// nested function declarations, so every function lives in one flat
// namespace held by SymbolTable itself (spec §4.2).
type Scope struct {
	variables map[string]*types.Variable
	parent    *Scope
}

func newScope(parent *Scope) *Scope {
	return &Scope{variables: make(map[string]*types.Variable), parent: parent}
}

// SymbolTable is the stack of scopes plus the global function namespace.
// CurrentFunction names the function whose body is currently being
// analyzed, or "" at global scope (spec §4.3, enter_function/exit_function).
type SymbolTable struct {
	global          *Scope
	current         *Scope
	functions       map[string]*types.Function
	currentFunction string
}

// New builds a SymbolTable with an empty global scope and no functions
// declared yet.
func New() *SymbolTable {
	g := newScope(nil)
	return &SymbolTable{global: g, current: g, functions: make(map[string]*types.Function)}
}

// EnterScope pushes a new block scope, nested inside the current one
// (entering an if/while/do body or a function body).
func (st *SymbolTable) EnterScope() {
	st.current = newScope(st.current)
}

// ExitScope pops the innermost scope. It is a no-op at the global scope --
// callers are expected to pair every EnterScope with exactly one ExitScope.
func (st *SymbolTable) ExitScope() {
	if st.current.parent != nil {
		st.current = st.current.parent
	}
}

// DefineVariable declares a variable in the current scope. It reports an
// error if a variable of the same name is already declared in THIS scope
// (shadowing an outer scope's variable is allowed; redeclaring in the same
// scope is not -- spec §4.3).
func (st *SymbolTable) DefineVariable(v types.Variable) error {
	if _, exists := st.current.variables[v.Name]; exists {
		return &DuplicateVariableError{Name: v.Name}
	}
	stored := v
	st.current.variables[v.Name] = &stored
	return nil
}

// LookupVariable walks the scope chain from innermost to the global scope
// and returns the first match. The returned pointer aliases the stored
// record, so callers can flip Initialized through it.
func (st *SymbolTable) LookupVariable(name string) (*types.Variable, bool) {
	for s := st.current; s != nil; s = s.parent {
		if v, ok := s.variables[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// DefineFunction declares a function in the flat global function namespace.
// It reports an error if a function of the same name is already declared.
func (st *SymbolTable) DefineFunction(f types.Function) error {
	if _, exists := st.functions[f.Name]; exists {
		return &DuplicateFunctionError{Name: f.Name}
	}
	stored := f
	st.functions[f.Name] = &stored
	return nil
}

// LookupFunction looks up a function by name in the flat global namespace
// -- there is no scope chain for functions (spec §4.2).
func (st *SymbolTable) LookupFunction(name string) (*types.Function, bool) {
	f, ok := st.functions[name]
	return f, ok
}

// EnterFunction records which function body is currently being analyzed.
func (st *SymbolTable) EnterFunction(name string) {
	st.currentFunction = name
}

// ExitFunction clears the current-function marker, returning to global
// scope's notion of "not inside a function".
func (st *SymbolTable) ExitFunction() {
	st.currentFunction = ""
}

// CurrentFunction returns the name of the function body currently being
// analyzed, or "" if analysis is at global scope.
func (st *SymbolTable) CurrentFunction() string {
	return st.currentFunction
}

// DuplicateVariableError reports a redeclaration of a variable within the
// same scope.
type DuplicateVariableError struct{ Name string }

func (e *DuplicateVariableError) Error() string {
	return "Variable '" + e.Name + "' ya declarada en este ámbito"
}

// DuplicateFunctionError reports a redeclaration of a function name.
type DuplicateFunctionError struct{ Name string }

func (e *DuplicateFunctionError) Error() string {
	return "Función '" + e.Name + "' ya declarada"
}

// UndeclaredVariableError reports a reference to a variable never declared
// in any enclosing scope.
type UndeclaredVariableError struct{ Name string }

func (e *UndeclaredVariableError) Error() string {
	return "Variable '" + e.Name + "' no declarada"
}

// UndeclaredFunctionError reports a call to a function never declared.
type UndeclaredFunctionError struct{ Name string }

func (e *UndeclaredFunctionError) Error() string {
	return "Función '" + e.Name + "' no declarada"
}
