/*
File: lumen/interp/interpreter.go

Two-pass tree-walking interpreter: Pass 1 hoists every Declaration (at
any depth) into the global scope; Pass 2 evaluates top-level children in
textual order, short-circuiting on an early return. Grounded on
akashmaji946/go-mix's eval/evaluator.go (Evaluator struct + central
Eval(Node) dispatcher) and eval/evaluator_expressions.go, narrowed to
the node-kind set and its scope-stack-not-closures model.
*/
package interp

import (
	"bufio"
	"io"
	"os"

	"github.com/akashmaji946/lumen/function"
	"github.com/akashmaji946/lumen/parser"
	"github.com/akashmaji946/lumen/scope"
	"github.com/akashmaji946/lumen/value"
)

// Interpreter owns the scope stack and the I/O streams built-ins use
// (print/println/input). There is no other mutable global state.
type Interpreter struct {
	scopes *scope.Stack
	out    io.Writer
	in     *bufio.Reader
}

// New returns an Interpreter wired to stdout/stdin, suitable for both the
// REPL and file-mode drivers.
func New() *Interpreter {
	return &Interpreter{
		scopes: scope.New(),
		out:    os.Stdout,
		in:     bufio.NewReader(os.Stdin),
	}
}

// SetOutput redirects print/println output (e.g. to a REPL's writer).
func (it *Interpreter) SetOutput(w io.Writer) { it.out = w }

// SetInput redirects the input() built-in's source.
func (it *Interpreter) SetInput(r io.Reader) { it.in = bufio.NewReader(r) }

// Output and Input satisfy builtins.Runtime.
func (it *Interpreter) Output() io.Writer    { return it.out }
func (it *Interpreter) Input() *bufio.Reader { return it.in }

// Evaluate runs a full program: hoist, then evaluate top-level children
// in order, returning the final child's value (or the value passed to an
// early return that short-circuits the walk).
func (it *Interpreter) Evaluate(program *parser.Node) (value.Value, error) {
	it.hoist(program)
	var result value.Value = value.NullValue
	for _, child := range program.Children {
		v, isReturn, err := it.eval(child)
		if err != nil {
			return nil, err
		}
		result = v
		if isReturn {
			break
		}
	}
	return result, nil
}

// hoist descends the whole program tree; every Declaration found, at any
// depth, is bound into the global frame before Pass 2 runs — giving
// function declarations hoist-style visibility.
// Non-function let bindings are left alone.
func (it *Interpreter) hoist(n *parser.Node) {
	if n == nil {
		return
	}
	if n.Kind == parser.KindDeclaration {
		name := n.Children[0].Value
		it.scopes.BindGlobal(name, function.Function{Name: name, Node: n.Children[1]})
	}
	for _, child := range n.Children {
		it.hoist(child)
	}
}
