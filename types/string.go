package types

import "fmt"

// StringValue represents the UTF-8 String variant of Value.
type StringValue struct {
	Val string
}

// NewString creates a new StringValue.
func NewString(s string) StringValue {
	return StringValue{Val: s}
}

func (s StringValue) Type() TypeCode { return TYPE_STRING }

// String returns the raw string, used directly by concat/to_string builtins.
func (s StringValue) String() string { return s.Val }

// GoString is used by error messages and debugging where a quoted form reads
// better than the raw string.
func (s StringValue) GoString() string { return fmt.Sprintf("%q", s.Val) }

func (s StringValue) Equal(other Value) bool {
	o, ok := other.(StringValue)
	return ok && s.Val == o.Val
}

// Truthy: every String is truthy, including "" (spreadsheet truthiness rule).
func (s StringValue) Truthy() bool { return true }
