/*
File: lumen/function/function.go

Function values wrap their AST node and nothing else: no captured
environment, since this language's functions are not true closures. Grounded on akashmaji946/go-mix's function/function.go,
with the closure-supporting Scp (defining scope) field dropped — the
very thing that package exists to hold is the thing this language omits.
*/
package function

import (
	"fmt"

	"github.com/akashmaji946/lumen/parser"
	"github.com/akashmaji946/lumen/value"
)

// Function is a first-class value pairing a name (for rendering/errors
// only — not part of identity) with the parser.Node of Kind Function it
// was declared from.
type Function struct {
	Name string
	Node *parser.Node
}

func (Function) Kind() value.Kind { return value.KindFunction }

// Render always produces the literal token "function", not the
// function's name or body.
func (Function) Render() string { return "function" }

// Args returns the function's parameter-name list.
func (f Function) Args() []string {
	return f.Node.Children[0].Names
}

// Body returns the function's Block body node.
func (f Function) Body() *parser.Node {
	return f.Node.Children[1]
}

func (f Function) String() string {
	return fmt.Sprintf("<function %s(%v)>", f.Name, f.Args())
}

var _ value.Value = Function{}
