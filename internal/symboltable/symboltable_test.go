package symboltable_test

import (
	"testing"

	"github.com/andressilva/minic/internal/symboltable"
	"github.com/andressilva/minic/internal/types"
)

func TestDefineAndLookupVariable(t *testing.T) {
	st := symboltable.New()
	if err := st.DefineVariable(types.Variable{Name: "x", Type: types.Int}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := st.LookupVariable("x")
	if !ok {
		t.Fatal("expected to find 'x'")
	}
	if v.Type != types.Int {
		t.Errorf("got type %s, want int", v.Type)
	}
}

func TestDefineVariable_DuplicateInSameScope(t *testing.T) {
	st := symboltable.New()
	_ = st.DefineVariable(types.Variable{Name: "x", Type: types.Int})
	err := st.DefineVariable(types.Variable{Name: "x", Type: types.Float})
	if err == nil {
		t.Fatal("expected a duplicate-declaration error")
	}
	if err.Error() != "Variable 'x' ya declarada en este ámbito" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestDefineVariable_ShadowingAllowedInNestedScope(t *testing.T) {
	st := symboltable.New()
	_ = st.DefineVariable(types.Variable{Name: "x", Type: types.Int})
	st.EnterScope()
	if err := st.DefineVariable(types.Variable{Name: "x", Type: types.Float}); err != nil {
		t.Fatalf("shadowing an outer variable should be allowed: %v", err)
	}
	v, _ := st.LookupVariable("x")
	if v.Type != types.Float {
		t.Errorf("inner scope's 'x' should shadow the outer one, got %s", v.Type)
	}
	st.ExitScope()
	v, _ = st.LookupVariable("x")
	if v.Type != types.Int {
		t.Errorf("after exiting the scope, 'x' should resolve to the outer one, got %s", v.Type)
	}
}

func TestLookupVariable_WalksChainToGlobal(t *testing.T) {
	st := symboltable.New()
	_ = st.DefineVariable(types.Variable{Name: "g", Type: types.Char})
	st.EnterScope()
	st.EnterScope()
	v, ok := st.LookupVariable("g")
	if !ok || v.Type != types.Char {
		t.Fatal("expected to find the global variable from a deeply nested scope")
	}
}

func TestLookupVariable_Undeclared(t *testing.T) {
	st := symboltable.New()
	_, ok := st.LookupVariable("missing")
	if ok {
		t.Fatal("did not expect to find an undeclared variable")
	}
}

func TestDefineAndLookupFunction(t *testing.T) {
	st := symboltable.New()
	fn := types.Function{Name: "add", ReturnType: types.Int, Parameters: []types.Variable{
		{Name: "a", Type: types.Int},
		{Name: "b", Type: types.Int},
	}}
	if err := st.DefineFunction(fn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := st.LookupFunction("add")
	if !ok {
		t.Fatal("expected to find 'add'")
	}
	if len(got.Parameters) != 2 {
		t.Errorf("got %d parameters, want 2", len(got.Parameters))
	}
}

func TestDefineFunction_Duplicate(t *testing.T) {
	st := symboltable.New()
	_ = st.DefineFunction(types.Function{Name: "f", ReturnType: types.Void})
	err := st.DefineFunction(types.Function{Name: "f", ReturnType: types.Int})
	if err == nil {
		t.Fatal("expected a duplicate-function error")
	}
}

func TestFunctionNamespace_IsFlatNotScoped(t *testing.T) {
	st := symboltable.New()
	_ = st.DefineFunction(types.Function{Name: "f", ReturnType: types.Void})
	st.EnterScope()
	_, ok := st.LookupFunction("f")
	if !ok {
		t.Fatal("functions must be visible from any nested scope, the namespace is flat")
	}
}

func TestEnterExitFunction_TracksCurrentFunction(t *testing.T) {
	st := symboltable.New()
	if st.CurrentFunction() != "" {
		t.Errorf("expected no current function at global scope")
	}
	st.EnterFunction("main")
	if st.CurrentFunction() != "main" {
		t.Errorf("got %q, want \"main\"", st.CurrentFunction())
	}
	st.ExitFunction()
	if st.CurrentFunction() != "" {
		t.Errorf("expected current function to clear after ExitFunction")
	}
}
