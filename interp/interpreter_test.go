package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lumen/parser"
	"github.com/akashmaji946/lumen/value"
)

func run(t *testing.T, src string) (value.Value, error) {
	t.Helper()
	p, err := parser.New(src)
	assert.NoError(t, err)
	root, err := p.Parse()
	assert.NoError(t, err)
	return New().Evaluate(root)
}

// Scenario 1: let int x = 6; let int y = 6; x + y; -> Number(12)
func TestScenario_AdditionOfLetBindings(t *testing.T) {
	v, err := run(t, `let int x = 6; let int y = 6; x + y;`)
	assert.NoError(t, err)
	assert.Equal(t, value.Number(12), v)
}

// Scenario 2: (1 + 2) * 3; -> Number(9)
func TestScenario_ParenthesesAndPrecedence(t *testing.T) {
	v, err := run(t, `(1 + 2) * 3;`)
	assert.NoError(t, err)
	assert.Equal(t, value.Number(9), v)
}

// Scenario 3: factorial(5) -> Number(120)
func TestScenario_Factorial(t *testing.T) {
	v, err := run(t, `funk factorial(int x) { if (x == 0) { 1; } else { x * factorial(x - 1); } } factorial(5);`)
	assert.NoError(t, err)
	assert.Equal(t, value.Number(120), v)
}

// Scenario 4: fibonacci(10) -> Number(55)
func TestScenario_Fibonacci(t *testing.T) {
	v, err := run(t, `funk fibonacci(int x) { if (x == 0) { 0; } else { if (x == 1) { 1; } else { fibonacci(x - 1) + fibonacci(x - 2); } } } fibonacci(10);`)
	assert.NoError(t, err)
	assert.Equal(t, value.Number(55), v)
}

// Scenario 5: let list x = [1, 2, 3]; x[1 + 1]; -> Number(3)
func TestScenario_ListIndexing(t *testing.T) {
	v, err := run(t, `let list x = [1, 2, 3]; x[1 + 1];`)
	assert.NoError(t, err)
	assert.Equal(t, value.Number(3), v)
}

// Scenario 6: "hello" + " " + "world" -> String("hello world")
func TestScenario_StringConcatenation(t *testing.T) {
	v, err := run(t, `"hello" + " " + "world"`)
	assert.NoError(t, err)
	assert.Equal(t, value.String("hello world"), v)
}

// Scenario 7: early return short-circuits a function body.
func TestScenario_EarlyReturn(t *testing.T) {
	v, err := run(t, `funk add(int x, int y) { if (x == 6) { return 6; } x + y; } add(6, 6);`)
	assert.NoError(t, err)
	assert.Equal(t, value.Number(6), v)
}

// Scenario 8: functions are first-class values.
func TestScenario_FunctionAsFirstClassValue(t *testing.T) {
	v, err := run(t, `funk add(int x, int y) { x + y; } funk apply(function f, int x, int y) { f(x, y); } apply(add, 6, 6);`)
	assert.NoError(t, err)
	assert.Equal(t, value.Number(12), v)
}

func TestInvariant_LeftAssociativeSubtraction(t *testing.T) {
	v, err := run(t, `10 - 3 - 2;`)
	assert.NoError(t, err)
	assert.Equal(t, value.Number(5), v) // (10-3)-2, not 10-(3-2)
}

func TestInvariant_ScopeIsolation(t *testing.T) {
	_, err := run(t, `funk f() { let int inner = 1; inner; } f(); inner;`)
	assert.Error(t, err) // 'inner' must not leak out of the call frame
}

func TestInvariant_Hoisting(t *testing.T) {
	v, err := run(t, `let int r = greet(); funk greet() { 42; } r;`)
	assert.NoError(t, err)
	assert.Equal(t, value.Number(42), v)
}

func TestInvariant_ValueCopyOnArgumentBinding(t *testing.T) {
	v, err := run(t, `let list original = [1, 2]; funk mutate(list l) { l = [9, 9, 9]; l; } mutate(original); original;`)
	assert.NoError(t, err)
	assert.Equal(t, value.List{value.Number(1), value.Number(2)}, v)
}

func TestRuntimeError_NonBooleanCondition(t *testing.T) {
	_, err := run(t, `if (1) { 1; }`)
	assert.Error(t, err)
}

func TestRuntimeError_UnknownIdentifier(t *testing.T) {
	_, err := run(t, `missing_name;`)
	assert.Error(t, err)
}

func TestRuntimeError_ComparisonChainTypeMismatch(t *testing.T) {
	// a < b < c parses as (a < b) < c, mixing Boolean and Number — documented,
	// not fixed.
	_, err := run(t, `1 < 2 < 3;`)
	assert.Error(t, err)
}
