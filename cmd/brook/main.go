// Brook CLI - scans Brook source files and runs bytecode chunks
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"

	"github.com/brook-lang/brook/lexer"
	"github.com/brook-lang/brook/manifest"
	"github.com/brook-lang/brook/vm"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("brook")

// Exit codes follow the sysexits convention: 65 for malformed input,
// 70 for a runtime fault.
const (
	exitUsage   = 1
	exitData    = 65
	exitRuntime = 70
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	interactive := flag.Bool("i", false, "Start interactive REPL")
	trace := flag.Bool("trace", false, "Trace execution instruction by instruction")
	disassemble := flag.Bool("d", false, "Disassemble chunks before running")
	demo := flag.Bool("demo", false, "Assemble and run the built-in sample chunk")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: brook [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Scans .bk files and prints their token streams. With no files it falls back\n")
		fmt.Fprintf(os.Stderr, "to the brook.toml entry file; with nothing to scan it starts the REPL.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  brook -i               # Start REPL\n")
		fmt.Fprintf(os.Stderr, "  brook main.bk          # Print main.bk's token stream\n")
		fmt.Fprintf(os.Stderr, "  brook -demo -d         # Disassemble and run the sample chunk\n")
		fmt.Fprintf(os.Stderr, "  brook -demo -trace     # Run the sample chunk with execution tracing\n")
	}
	flag.Parse()

	// Pick up project defaults from brook.toml, if there is one. Explicit
	// flags stay in force; the manifest only turns things on.
	man, err := manifest.FindAndLoad(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	verbosity := 0
	if *verbose {
		verbosity = 1
	}
	if man != nil {
		*trace = *trace || man.Runtime.Trace
		*disassemble = *disassemble || man.Runtime.Disassemble
		if man.Runtime.Verbosity > verbosity {
			verbosity = man.Runtime.Verbosity
		}
	}
	commonlog.Configure(verbosity, nil)
	if man != nil {
		log.Infof("using manifest for %q in %s", man.Project.Name, man.Dir)
	}

	if *demo {
		if err := runDemo(os.Stdout, *disassemble, *trace); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitRuntime)
		}
		return
	}

	files := flag.Args()
	if len(files) == 0 && !*interactive && man != nil {
		if _, err := os.Stat(man.EntryPath()); err == nil {
			files = append(files, man.EntryPath())
		}
	}

	if len(files) > 0 {
		clean := true
		for _, path := range files {
			ok, err := scanFile(os.Stdout, path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(exitUsage)
			}
			clean = clean && ok
		}
		if !clean {
			os.Exit(exitData)
		}
		return
	}

	runREPL()
}

// scanFile prints path's token stream to w, one token per line. It
// reports whether the stream was free of error tokens.
func scanFile(w io.Writer, path string) (bool, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	log.Infof("scanning %s (%d bytes)", path, len(source))
	return scanSource(w, path, string(source)), nil
}

// scanSource prints one line per token. Error tokens are reported in
// file:line form and scanning continues past them, so every problem in
// the source shows up in one pass.
func scanSource(w io.Writer, name string, source string) bool {
	clean := true
	for _, tok := range lexer.Tokenize(source) {
		if tok.Type == lexer.TokenError {
			clean = false
			fmt.Fprintf(w, "%s:%d: error: %s\n", name, tok.Line, tok.Lexeme)
			continue
		}
		fmt.Fprintf(w, "%s:%d: %s\n", name, tok.Line, tok)
	}
	return clean
}

// runDemo assembles the arithmetic sample chunk (1.2 + 3.4), optionally
// disassembles it, runs it, and prints the value left on the stack.
func runDemo(w io.Writer, disassemble, trace bool) error {
	chunk := vm.NewChunk()
	chunk.WriteConstant(1.2)
	chunk.WriteConstant(3.4)
	chunk.WriteOp(vm.OpAdd)
	chunk.WriteOp(vm.OpReturn)

	if disassemble {
		vm.DisassembleChunk(w, chunk, "demo chunk")
	}

	machine := vm.NewVM()
	if trace {
		machine.Trace = os.Stderr
	}
	if err := machine.Interpret(chunk); err != nil {
		return err
	}
	if top, ok := machine.Top(); ok {
		fmt.Fprintln(w, top)
	}
	return nil
}
