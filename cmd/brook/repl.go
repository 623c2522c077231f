package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/brook-lang/brook/lexer"
)

const (
	historyFile = ".brook_history"
	promptMain  = ">> "
	banner      = "Brook scanner REPL — Ctrl+C to cancel input, Ctrl+D to exit. Type :help for commands."
	helpText    = `
REPL commands:
  :help            Show this help
  :quit / :exit    Exit the REPL
  :load <file>     Scan a file and print its token stream
`
)

// runREPL reads lines and prints their token streams.
func runREPL() {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// Load history (best-effort)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			// Ctrl+C aborts the current input; let the user start again.
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			ln.AppendHistory(line)
			if done := handleReplCommand(line); done {
				break
			}
			continue
		}

		printTokens(line)
		ln.AppendHistory(line)
	}

	// Persist history (best-effort)
	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
}

// handleReplCommand handles :help, :quit, :load
func handleReplCommand(line string) (exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case ":help":
		fmt.Print(helpText)

	case ":quit", ":exit":
		return true

	case ":load":
		if len(fields) < 2 {
			fmt.Println("usage: :load <file>")
			return false
		}
		if _, err := scanFile(os.Stdout, fields[1]); err != nil {
			fmt.Printf("cannot read %s: %v\n", fields[1], err)
		}

	default:
		fmt.Println("unknown command. Type :help for help.")
	}
	return false
}

// printTokens dumps the token stream for one line of input.
func printTokens(source string) {
	for _, tok := range lexer.Tokenize(source) {
		if tok.Type == lexer.TokenEOF {
			break
		}
		fmt.Printf("  %-24s line %d, start %d\n", tok, tok.Line, tok.Start)
	}
}
