// Package types defines minic's value-type lattice and the declared-entity
// records the symbol table stores: DataType, Variable, and Function.
package types

// DataType is the closed set of value types minic's semantic analyzer
// reasons about (spec §3, DATA MODEL). There is no user-defined type.
type DataType int

const (
	Int DataType = iota
	Float
	Char
	Void
)

// String renders a DataType the way semantic error messages quote it (spec
// §8's scenario wording uses the uppercase type names, e.g. "Se esperaba
// INT, se recibió FLOAT").
func (d DataType) String() string {
	switch d {
	case Int:
		return "INT"
	case Float:
		return "FLOAT"
	case Char:
		return "CHAR"
	case Void:
		return "VOID"
	default:
		return "DESCONOCIDO"
	}
}

// Variable records a declared variable's name, type, declaration position,
// and initialization state. Initialized starts false and only ever flips
// to true -- it is never reset once set (spec invariant on monotonic
// initialization).
type Variable struct {
	Name        string
	Type        DataType
	Initialized bool
	Line        int
	Column      int
}

// Function records a declared function's signature and declaration
// position. Parameters are ordered; arity and per-position type both
// matter for call-site checking (spec §4.3, check_function_call).
type Function struct {
	Name       string
	ReturnType DataType
	Parameters []Variable
	Line       int
	Column     int
}
