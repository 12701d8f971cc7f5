// glox - a Lox interpreter
//
// Runs a Lox script file, or starts an interactive session when
// invoked without arguments. Uses manual argument parsing in the
// POSIX style.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kolkov/glox"
)

// version is set at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
)

// Exit codes follow the sysexits convention.
const (
	exitOK      = 0
	exitUsage   = 64 // command line usage error
	exitStatic  = 65 // scan or parse error in the script
	exitNoInput = 66 // script file not found
	exitRuntime = 70 // runtime error during execution
	exitIOErr   = 74 // other I/O error
)

const usage = `usage: glox [-d] [script]

Without a script, glox starts an interactive session.

Arguments:
  -d                print parsed AST to stderr instead of executing
  -h, --help        show this help message
  -version          show glox version and exit
`

func main() {
	var script string
	debug := false

	for _, arg := range os.Args[1:] {
		switch arg {
		case "-d":
			debug = true
		case "-h", "--help":
			fmt.Print(usage)
			os.Exit(exitOK)
		case "-version", "--version":
			fmt.Printf("glox version %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			os.Exit(exitOK)
		default:
			if len(arg) > 1 && arg[0] == '-' {
				fmt.Fprintf(os.Stderr, "glox: flag provided but not defined: %s\n", arg)
				fmt.Fprint(os.Stderr, usage)
				os.Exit(exitUsage)
			}
			if script != "" {
				fmt.Fprint(os.Stderr, usage)
				os.Exit(exitUsage)
			}
			script = arg
		}
	}

	if script == "" {
		runPrompt()
		return
	}
	runFile(script, debug)
}

// runFile executes a Lox script file and exits with the code matching
// the outcome: 65 for static errors, 70 for runtime errors.
func runFile(filename string, debug bool) {
	src, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "glox: file '%s' not found\n", filename)
			os.Exit(exitNoInput)
		}
		fmt.Fprintf(os.Stderr, "glox: cannot read '%s': %v\n", filename, err)
		os.Exit(exitIOErr)
	}

	prog, err := glox.Compile(string(src))
	if err != nil {
		reportAll(err)
		os.Exit(exitStatic)
	}

	if debug {
		fmt.Fprint(os.Stderr, prog.Dump())
		os.Exit(exitOK)
	}

	stdout := bufio.NewWriter(os.Stdout)
	_, err = prog.Run(&glox.Config{Output: stdout})
	if flushErr := stdout.Flush(); flushErr != nil && err == nil {
		fmt.Fprintf(os.Stderr, "glox: %v\n", flushErr)
		os.Exit(exitIOErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "glox: %v\n", err)
		os.Exit(exitRuntime)
	}
}

// reportAll prints every accumulated static error on its own line.
func reportAll(err error) {
	var list glox.ParseErrors
	if errors.As(err, &list) {
		for _, pe := range list {
			fmt.Fprintf(os.Stderr, "glox: %v\n", pe)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "glox: %v\n", err)
}
