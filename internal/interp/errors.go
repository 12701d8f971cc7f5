// Package interp provides a tree-walking interpreter for Lox programs.
package interp

import (
	"fmt"

	"github.com/kolkov/glox/internal/token"
)

// RuntimeError represents an error during Lox execution: an operand
// type mismatch, an undefined variable or property, a bad call, or
// resource exhaustion. The first runtime error aborts the run; Lox has
// no catch construct.
type RuntimeError struct {
	Pos     token.Position // Position of the offending construct
	Message string         // Error description
}

// Error returns a formatted error message with position information.
func (e *RuntimeError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// runtimeErrorf creates a RuntimeError at the given position with a
// formatted message.
func runtimeErrorf(pos token.Position, format string, args ...any) *RuntimeError {
	return &RuntimeError{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}
