package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/kolkov/glox"
)

const prompt = "> "

// completionWords are Lox keywords and natives for tab completion.
var completionWords = []string{
	"and", "break", "class", "else", "false", "fun", "for", "if", "nil",
	"or", "print", "return", "super", "this", "true", "var", "while",
	"clock",
}

// runPrompt starts an interactive session with line editing and
// history. Each line is evaluated against a persistent global
// environment; errors are reported and the session keeps accepting
// input. An empty line or Ctrl-D exits.
func runPrompt() {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(line string) []string {
		return filterCompletions(line)
	})

	historyFile := filepath.Join(os.TempDir(), ".glox_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	session := glox.NewSession(&glox.Config{Output: os.Stdout})

	fmt.Printf("glox %s\n", version)
	fmt.Println("Press Ctrl+D or enter an empty line to exit")

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Println("^C")
				continue
			}
			if err == io.EOF {
				fmt.Println()
				return
			}
			fmt.Fprintf(os.Stderr, "glox: %v\n", err)
			return
		}

		if strings.TrimSpace(input) == "" {
			return
		}
		line.AppendHistory(input)

		if err := session.Eval(input); err != nil {
			reportAll(err)
		}
	}
}

// filterCompletions returns completion candidates for the word being
// typed at the end of the line.
func filterCompletions(input string) []string {
	start := strings.LastIndexAny(input, " \t(.{;") + 1
	prefix := input[start:]
	if prefix == "" {
		return nil
	}

	var out []string
	for _, w := range completionWords {
		if strings.HasPrefix(w, prefix) {
			out = append(out, input[:start]+w)
		}
	}
	return out
}
