/*
File: lumen/parser/node.go

The AST is a tagged tree: every node carries a Kind, an optional string
Value payload, and an ordered list of Children — the shared contract the
lexer, parser and interpreter all agree on. Grounded on
akashmaji946/go-mix's parser/node.go typed-node layout, reduced to the
kind set this language needs and flattened from its ~30-method
NodeVisitor interface down to a single Kind tag the interpreter
type-switches on.
*/
package parser

// Kind tags an AST node with its grammar production.
type Kind string

const (
	KindProgram      Kind = "Program"
	KindBlock        Kind = "Block"
	KindExpression   Kind = "Expression"
	KindTerm         Kind = "Term"
	KindFactor       Kind = "Factor"
	KindOperation    Kind = "Operation"
	KindAssignment   Kind = "Assignment"
	KindReassignment Kind = "Reassignment"
	KindDeclaration  Kind = "Declaration"
	KindFunctionCall Kind = "FunctionCall"
	KindIf           Kind = "If"
	KindList         Kind = "List"
	KindIndex        Kind = "Index"
	KindLiteral      Kind = "Literal"
	KindIdentifier   Kind = "Identifier"
	KindArgs         Kind = "Args"
	KindParameters   Kind = "Parameters"
	KindFunction     Kind = "Function"
	KindReturn       Kind = "Return"
)

// Node is any AST node: a Kind tag, an optional string payload, the
// 1-based source line it was parsed from, and its ordered children.
//
// Names holds the parameter-name list for an Args node only; every other
// kind leaves it nil. Keeping it as a sibling field rather than wrapping
// each name in its own Identifier child avoids a layer of indirection
// Args never needs.
type Node struct {
	Kind     Kind
	Value    string
	Names    []string
	Line     int
	Children []*Node
}

func newNode(kind Kind, line int, children ...*Node) *Node {
	return &Node{Kind: kind, Line: line, Children: children}
}

func newLeaf(kind Kind, value string, line int) *Node {
	return &Node{Kind: kind, Value: value, Line: line}
}
