// Package errs implements the engine's three-kind error taxonomy.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the stage that detected a failure. These three values
// are the complete taxonomy; no new kinds are ever added.
type Kind int

const (
	Parser Kind = iota
	Compiler
	Runtime
)

func (k Kind) prefix() string {
	switch k {
	case Parser:
		return "Parse error"
	case Compiler:
		return "Compilation error"
	case Runtime:
		return "Runtime error"
	default:
		return "Error"
	}
}

// Error is the engine's structured error type, returned (never panicked,
// except via the explicit "bang" façade entry points) from every stage.
type Error struct {
	Kind    Kind
	Message string
	Line    int // 1-based; 0 means "not applicable" (Compiler/Runtime errors)
	Column  int // 1-based; 0 means "not applicable"
	Details any // plugin-supplied original error, when Kind == Runtime
}

// HasPosition reports whether Line and Column are both set.
func (e *Error) HasPosition() bool {
	return e.Line > 0 && e.Column > 0
}

// Error implements the standard error interface, formatted exactly as
// "{kind-prefix}{location?}: {message}".
func (e *Error) Error() string {
	if e.HasPosition() {
		return fmt.Sprintf("%s at line %d, column %d: %s", e.Kind.prefix(), e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind.prefix(), e.Message)
}

// Unwrap exposes Details as the error's cause when Details itself is an
// error, so callers can use errors.As/errors.Is against a wrapped plugin
// failure.
func (e *Error) Unwrap() error {
	if err, ok := e.Details.(error); ok {
		return err
	}
	return nil
}

// NewParser builds a Parser-kind error with source position.
func NewParser(line, column int, message string) *Error {
	return &Error{Kind: Parser, Message: message, Line: line, Column: column}
}

// NewCompiler builds a Compiler-kind error. Compiler errors never carry a
// position: they are detected after the full IR tree exists.
func NewCompiler(message string) *Error {
	return &Error{Kind: Compiler, Message: message}
}

// NewRuntime builds a Runtime-kind error.
func NewRuntime(message string) *Error {
	return &Error{Kind: Runtime, Message: message}
}

// Wrap turns an arbitrary error raised by a function plugin into a Runtime
// error, unless it already is an *Error (in which case it is re-raised
// unchanged per the propagation policy). fnName is attached to the
// message and the original error is preserved in Details so a caller can
// still reach it via errors.Unwrap/errors.As.
func Wrap(fnName string, err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	wrapped := errors.Wrapf(err, "function %q failed", fnName)
	return &Error{Kind: Runtime, Message: wrapped.Error(), Details: err}
}
