package glox

import (
	"bytes"
	"strings"

	"github.com/kolkov/glox/internal/ast"
	"github.com/kolkov/glox/internal/interp"
)

// Program represents a parsed Lox program ready for execution.
// The AST is never mutated after parsing, so a Program may be run any
// number of times; each call to Run creates an independent interpreter
// with a fresh global environment.
type Program struct {
	stmts  []ast.Stmt
	source string // Original source for debugging
}

// Run executes the program with the given configuration.
// Returns the output as a string when config.Output is nil, or an
// error if execution fails.
func (p *Program) Run(config *Config) (string, error) {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()

	var outputBuf *bytes.Buffer
	out := config.Output
	if out == nil {
		outputBuf = &bytes.Buffer{}
		out = outputBuf
	}

	i := interp.New(interp.Options{
		Output: out,
		Now:    config.Now,
	})

	if err := i.Run(p.stmts); err != nil {
		if outputBuf != nil {
			return outputBuf.String(), convertRuntimeError(err)
		}
		return "", convertRuntimeError(err)
	}

	if outputBuf != nil {
		return outputBuf.String(), nil
	}
	return "", nil
}

// Dump returns a pretty-printed representation of the parsed AST in
// canonical source form. Useful for debugging what the parser built
// (for loops appear desugared).
func (p *Program) Dump() string {
	var sb strings.Builder
	_ = ast.NewPrinter(&sb).PrintProgram(p.stmts)
	return sb.String()
}

// Source returns the original Lox source code.
func (p *Program) Source() string {
	return p.source
}

// Session is a persistent interpreter for interactive use: globals
// defined by one Eval remain visible to the next. File-mode execution
// should prefer Program.Run, which isolates runs from each other.
type Session struct {
	interp *interp.Interp
}

// NewSession creates a session with a fresh global environment.
// A nil config uses defaults (output to stdout).
func NewSession(config *Config) *Session {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()

	return &Session{
		interp: interp.New(interp.Options{
			Output: config.Output,
			Now:    config.Now,
		}),
	}
}

// Eval scans, parses, and executes one chunk of source against the
// session's persistent global environment. Static errors are returned
// without executing anything; a runtime error aborts the chunk but the
// session remains usable.
func (s *Session) Eval(source string) error {
	prog, err := Compile(source)
	if err != nil {
		return err
	}
	if err := s.interp.Run(prog.stmts); err != nil {
		return convertRuntimeError(err)
	}
	return nil
}
