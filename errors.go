package glox

import (
	"errors"
	"fmt"

	"github.com/kolkov/glox/internal/interp"
	"github.com/kolkov/glox/internal/lexer"
	"github.com/kolkov/glox/internal/parser"
)

// ParseError represents a static error in Lox source code: a scan
// error (unexpected character, unterminated string) or a syntax error.
// All static errors found in one pass are reported together; any of
// them blocks execution of the run.
type ParseError struct {
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// ParseErrors is the full list of static errors from one pass.
type ParseErrors []*ParseError

func (el ParseErrors) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
	}
}

// RuntimeError represents an error during Lox execution. Execution
// halts at the first runtime error.
type RuntimeError struct {
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// IsStaticError reports whether err is a scan or parse error.
func IsStaticError(err error) bool {
	var pe *ParseError
	var pl ParseErrors
	return errors.As(err, &pe) || errors.As(err, &pl)
}

// IsRuntimeError reports whether err is a runtime error.
func IsRuntimeError(err error) bool {
	var re *RuntimeError
	return errors.As(err, &re)
}

// convertStaticError converts internal lexer/parser errors to the
// public types.
func convertStaticError(err error) error {
	switch e := err.(type) {
	case lexer.ErrorList:
		out := make(ParseErrors, 0, len(e))
		for _, se := range e {
			out = append(out, &ParseError{Line: se.Pos.Line, Column: se.Pos.Column, Message: se.Message})
		}
		return out
	case parser.ErrorList:
		out := make(ParseErrors, 0, len(e))
		for _, pe := range e {
			out = append(out, &ParseError{Line: pe.Pos.Line, Column: pe.Pos.Column, Message: pe.Message})
		}
		return out
	case *lexer.ScanError:
		return ParseErrors{{Line: e.Pos.Line, Column: e.Pos.Column, Message: e.Message}}
	case *parser.ParseError:
		return ParseErrors{{Line: e.Pos.Line, Column: e.Pos.Column, Message: e.Message}}
	default:
		return ParseErrors{{Message: err.Error()}}
	}
}

// convertRuntimeError converts an internal runtime error to the public type.
func convertRuntimeError(err error) error {
	if re, ok := err.(*interp.RuntimeError); ok {
		return &RuntimeError{Line: re.Pos.Line, Column: re.Pos.Column, Message: re.Message}
	}
	return &RuntimeError{Message: err.Error()}
}
