// Package types defines the dynamic Value union exchanged between the
// parser, compiler, and evaluator, and returned to callers of the engine.
package types

// TypeCode identifies the dynamic kind of a Value.
type TypeCode int

const (
	TYPE_NULL TypeCode = iota
	TYPE_BOOL
	TYPE_INT
	TYPE_FLOAT
	TYPE_STRING
	TYPE_LIST
	TYPE_MAP
	TYPE_STRUCT
)

// String returns the name of the type code.
func (t TypeCode) String() string {
	switch t {
	case TYPE_NULL:
		return "null"
	case TYPE_BOOL:
		return "bool"
	case TYPE_INT:
		return "int"
	case TYPE_FLOAT:
		return "float"
	case TYPE_STRING:
		return "string"
	case TYPE_LIST:
		return "list"
	case TYPE_MAP:
		return "map"
	case TYPE_STRUCT:
		return "struct"
	default:
		return "unknown"
	}
}

// Value is the interface every dynamic value exchanged with the engine
// implements. Values are immutable from the engine's point of view: no
// evaluation step ever mutates a Value in place.
type Value interface {
	Type() TypeCode
	String() string   // human-readable / to_string representation
	Equal(Value) bool // structural equality, numeric coercion for Int/Float
	Truthy() bool      // Null and false are falsy; everything else is truthy
}

// IsNumeric reports whether v is Int or Float.
func IsNumeric(v Value) bool {
	switch v.Type() {
	case TYPE_INT, TYPE_FLOAT:
		return true
	default:
		return false
	}
}
