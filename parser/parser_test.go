package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parse(t *testing.T, src string) *Node {
	t.Helper()
	p, err := New(src)
	assert.NoError(t, err)
	root, err := p.Parse()
	assert.NoError(t, err)
	return root
}

func TestParse_LetAndAddition(t *testing.T) {
	root := parse(t, `let int x = 6; let int y = 6; x + y;`)
	assert.Len(t, root.Children, 3)
	assert.Equal(t, KindAssignment, root.Children[0].Kind)
	assert.Equal(t, "x", root.Children[0].Children[0].Value)
}

func TestParse_PrecedenceMultiplyOverAdd(t *testing.T) {
	root := parse(t, `(1 + 2) * 3;`)
	assert.Len(t, root.Children, 1)
	term := root.Children[0].Children[0] // Expression -> Term
	assert.Equal(t, KindTerm, term.Kind)
	mul := term.Children[0] // the parenthesized '+' is an operand of '*'
	assert.Equal(t, KindOperation, mul.Kind)
	assert.Equal(t, "*", mul.Value)
}

func TestParse_FunctionDeclarationAndIf(t *testing.T) {
	root := parse(t, `funk factorial(int x) { if (x == 0) { 1; } else { x * factorial(x - 1); } }`)
	assert.Len(t, root.Children, 1)
	decl := root.Children[0]
	assert.Equal(t, KindDeclaration, decl.Kind)
	assert.Equal(t, "factorial", decl.Children[0].Value)
	fn := decl.Children[1]
	assert.Equal(t, KindFunction, fn.Kind)
	assert.Equal(t, []string{"x"}, fn.Children[0].Names)
	block := fn.Children[1]
	assert.Equal(t, KindIf, block.Children[0].Kind)
}

func TestParse_ReturnInsideIfBlock(t *testing.T) {
	root := parse(t, `funk add(int x, int y) { if (x == 6) { return 6; } x + y; }`)
	decl := root.Children[0]
	body := decl.Children[1].Children[1]
	ifNode := body.Children[0]
	assert.Equal(t, KindIf, ifNode.Kind)
	thenBlock := ifNode.Children[1]
	assert.Equal(t, KindReturn, thenBlock.Children[0].Kind)
}

func TestParse_ListIndexing(t *testing.T) {
	root := parse(t, `let list x = [1, 2, 3]; x[1 + 1];`)
	assert.Len(t, root.Children, 2)
	listLit := root.Children[0].Children[1].Children[0].Children[0].Children[0] // Assignment->Expr->Term->Factor->List
	assert.Equal(t, KindList, listLit.Kind)
}

func TestParse_StringConcat(t *testing.T) {
	root := parse(t, `"hello" + " " + "world"`)
	assert.Len(t, root.Children, 1)
	op := root.Children[0].Children[0]
	assert.Equal(t, KindOperation, op.Kind)
	assert.Equal(t, "+", op.Value)
}

func TestParse_ReassignmentDisambiguatedFromEquality(t *testing.T) {
	root := parse(t, `let int x = 1; x = 2; x == 2;`)
	assert.Equal(t, KindAssignment, root.Children[0].Kind)
	assert.Equal(t, KindReassignment, root.Children[1].Kind)
	assert.Equal(t, KindExpression, root.Children[2].Kind)
}

func TestParse_FunctionAsFirstClassValue(t *testing.T) {
	root := parse(t, `funk add(int x, int y) { x + y; } funk apply(function f, int x, int y) { f(x, y); } apply(add, 6, 6);`)
	assert.Len(t, root.Children, 3)
	applyDecl := root.Children[1]
	assert.Equal(t, []string{"f", "x", "y"}, applyDecl.Children[1].Children[0].Names)
}

func TestParse_UnexpectedTokenProducesDiagnostic(t *testing.T) {
	p, err := New(`let int x = ;`)
	assert.NoError(t, err)
	_, perr := p.Parse()
	assert.Error(t, perr)
	assert.Contains(t, perr.Error(), "Error found near line")
}
