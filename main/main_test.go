package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lumen/interp"
	"github.com/akashmaji946/lumen/parser"
	"github.com/akashmaji946/lumen/value"
)

// runSource exercises the same parser+interpreter path executeFileWithRecovery
// takes, without touching os.Exit.
func runSource(t *testing.T, src string) (value.Value, error) {
	t.Helper()
	p, err := parser.New(src)
	assert.NoError(t, err)
	root, err := p.Parse()
	assert.NoError(t, err)
	return interp.New().Evaluate(root)
}

func TestMain_ProgramEvaluatesToFinalExpression(t *testing.T) {
	v, err := runSource(t, `let int x = 10; let int y = 20; x + y;`)
	assert.NoError(t, err)
	assert.Equal(t, value.Number(30), v)
}

func TestMain_PrintWritesToProvidedOutput(t *testing.T) {
	p, err := parser.New(`print("hello");`)
	assert.NoError(t, err)
	root, err := p.Parse()
	assert.NoError(t, err)

	it := interp.New()
	var out bytes.Buffer
	it.SetOutput(&out)
	_, err = it.Evaluate(root)
	assert.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

func TestMain_ParseErrorIsReported(t *testing.T) {
	p, err := parser.New(`let = ;`)
	assert.NoError(t, err)
	_, err = p.Parse()
	assert.Error(t, err)
}

func TestMain_RuntimeErrorIsReported(t *testing.T) {
	_, err := runSource(t, `undefined_name;`)
	assert.Error(t, err)
}

func TestMain_HelpAndVersionDoNotPanic(t *testing.T) {
	assert.NotPanics(t, showHelp)
	assert.NotPanics(t, showVersion)
}
