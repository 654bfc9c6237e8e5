package parser

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// Dump renders an AST as an indented tree, for debugging. Grounded on
// akashmaji946/go-mix's print_visitor.go (a PrintingVisitor implementing
// NodeVisitor); folded here into a direct recursive walk since this
// package's evaluator already type-switches on Kind and a second parallel
// Visitor interface would just be another thing to keep in sync with it.
func Dump(n *Node) string {
	var buf bytes.Buffer
	dump(&buf, n, 0)
	return buf.String()
}

func dump(buf *bytes.Buffer, n *Node, depth int) {
	if n == nil {
		return
	}
	pad := bytes.Repeat([]byte(" "), depth*indentSize)
	buf.Write(pad)
	if n.Value != "" {
		fmt.Fprintf(buf, "%s(%q)\n", n.Kind, n.Value)
	} else if len(n.Names) > 0 {
		fmt.Fprintf(buf, "%s%v\n", n.Kind, n.Names)
	} else {
		fmt.Fprintf(buf, "%s\n", n.Kind)
	}
	for _, c := range n.Children {
		dump(buf, c, depth+1)
	}
}
