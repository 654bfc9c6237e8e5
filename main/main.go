/*
File: lumen/main/main.go

Package main is the CLI entry point: two modes, no arguments runs the
REPL, one filename argument runs that file once. Grounded on
akashmaji946/go-mix's main/main.go — its --help/--version flags and
panic-recovery-then-exit-nonzero pattern are kept; its `server` TCP mode
and the `file` package's in-language file-I/O builtins are dropped, since
both exercise functionality this language excludes by design (networking,
file I/O as a language feature) — see DESIGN.md.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/lumen/interp"
	"github.com/akashmaji946/lumen/parser"
	"github.com/akashmaji946/lumen/repl"
	"github.com/akashmaji946/lumen/value"
)

var (
	VERSION = "v0.1.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	LICENSE = "MIT"
	PROMPT  = "lumen >>> "
	BANNER  = `
 ██▓    █    ██  ███▄ ▄███▓▓█████  ███▄    █
▓██▒    ██  ▓██▒▓██▒▀█▀ ██▒▓█   ▀  ██ ▀█   █
▒██░   ▓██  ▒██░▓██    ▓██░▒███   ▓██  ▀█ ██▒
▒██░   ▓▓█  ░██░▒██    ▒██ ▒▓█  ▄ ▓██▒  ▐▌██▒
░██████▒▒█████▓ ▒██▒   ░██▒░▒████▒▒██░   ▓██░
░ ▒░▓  ░░▒▓▒ ▒ ▒ ░ ▒░   ░  ░░░ ▒░ ░░ ▒░   ▒ ▒
░ ░ ▒  ░░░▒░ ░ ░ ░  ░      ░ ░ ░  ░░ ░░   ░ ▒░
`
	LINE = "----------------------------------------------------------------"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		default:
			runFile(arg)
		}
		return
	}
	repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT).Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("Lumen - a small general-purpose scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lumen                    Start interactive REPL mode")
	yellowColor.Println("  lumen <path-to-file>     Execute a Lumen file")
	yellowColor.Println("  lumen --help             Display this help message")
	yellowColor.Println("  lumen --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                    Exit the REPL")
}

func showVersion() {
	cyanColor.Println("Lumen - a small general-purpose scripting language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and evaluates a source file as a single program,
// exiting with a nonzero status on any lex, parse, or runtime failure.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(source))
}

func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	p, err := parser.New(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[LEXER ERROR] %v\n", err)
		os.Exit(1)
	}
	root, err := p.Parse()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %v\n", err)
		os.Exit(1)
	}

	result, err := interp.New().Evaluate(root)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", err)
		os.Exit(1)
	}
	if result.Kind() != value.KindNull {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Render())
	}
}
