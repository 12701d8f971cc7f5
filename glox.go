package glox

import (
	"github.com/kolkov/glox/internal/lexer"
	"github.com/kolkov/glox/internal/parser"
)

// Version is the glox version string.
const Version = "0.1.0"

// Run executes a Lox program.
// This is a convenience function for one-off execution.
// For repeated execution of the same program, use Compile followed by
// Program.Run.
//
// Parameters:
//   - source: Lox source code
//   - config: execution configuration (can be nil for defaults)
//
// Returns the program output as a string (when config.Output is nil),
// or an error if scanning, parsing, or execution fails.
//
// Example:
//
//	output, err := glox.Run(`print 1 + 2;`, nil)
//	// output: "3\n"
func Run(source string, config *Config) (string, error) {
	prog, err := Compile(source)
	if err != nil {
		return "", err
	}
	return prog.Run(config)
}

// Compile scans and parses a Lox program for execution.
// The returned Program can be executed multiple times; each Run gets a
// fresh global environment, so repeated runs produce identical output.
//
// Scan errors and parse errors are each accumulated across their whole
// pass and returned together as ParseErrors; a program with any static
// error is never executed.
func Compile(source string) (*Program, error) {
	toks, err := lexer.TokenizeString(source)
	if err != nil {
		return nil, convertStaticError(err)
	}

	stmts, err := parser.Parse(toks)
	if err != nil {
		return nil, convertStaticError(err)
	}

	return &Program{
		stmts:  stmts,
		source: source,
	}, nil
}

// MustCompile is like Compile but panics if the program has errors.
// It simplifies initialization of global program variables.
func MustCompile(source string) *Program {
	prog, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return prog
}
