/*
File: lumen/repl/repl.go

Package repl implements the interactive read-eval-print loop: read one
line, lex+parse+evaluate it with a persistent interpreter instance, print
the result. Grounded on akashmaji946/go-mix's repl/repl.go, adapted from
its eval.Evaluator/parser.Parser types to this module's interp.Interpreter
and parser.Parser, and from its error-only-to-stdout style to the
project's "keep evaluating, print fatal-elsewhere errors in red" REPL
convention — file mode is the one that exits non-zero.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/lumen/interp"
	"github.com/akashmaji946/lumen/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic strings the CLI passes in (banner, version,
// prompt) with nothing evaluator-specific — each Start call builds its
// own persistent Interpreter.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New returns a Repl ready to Start.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Lumen!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop until the user exits or input ends.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interp.New()
	it.SetOutput(writer)
	it.SetInput(reader)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, it)
	}
}

// executeWithRecovery lexes, parses and evaluates one line. Unlike file
// mode, the REPL never exits the process on error — it reports and
// returns to the prompt, so panics are recovered here too.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, it *interp.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p, err := parser.New(line)
	if err != nil {
		redColor.Fprintf(writer, "[LEXER ERROR] %v\n", err)
		return
	}
	root, err := p.Parse()
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}

	result, err := it.Evaluate(root)
	if err != nil {
		redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", err)
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.Render())
}
