// Package glox provides a tree-walking interpreter for the Lox
// scripting language.
//
// Lox is a small dynamically-typed, C-like language: expressions,
// variables, control flow, first-class functions with closures, and
// single-inheritance classes with instance state. Execution is a
// three-stage pipeline: lexical scanning, recursive-descent parsing
// into an AST, and tree-walking evaluation against a chain of lexical
// environments.
//
// # Quick Start
//
// For simple one-off execution:
//
//	output, err := glox.Run(`print "hello";`, nil)
//
// # Compiled Programs
//
// For repeated execution of the same program:
//
//	prog, err := glox.Compile(`
//	    fun greet(name) { print "hi, " + name; }
//	    greet("lox");
//	`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	output, err := prog.Run(nil)
//
// Each Run gets a fresh global environment: no state survives from one
// run to the next.
//
// # Interactive Sessions
//
// A [Session] keeps its global environment alive between evaluations,
// which is what a REPL needs:
//
//	s := glox.NewSession(&glox.Config{Output: os.Stdout})
//	s.Eval(`var x = 1;`)
//	s.Eval(`print x;`) // 1
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [ParseErrors]: all scan/parse errors found in one pass; any of
//     them blocks execution
//   - [RuntimeError]: the first error during execution, which halts
//     the run
//
// # Thread Safety
//
// Compiled [Program] objects are safe for concurrent use. Each call to
// [Program.Run] creates an independent interpreter. A [Session] is
// single-threaded, like the language itself.
package glox
