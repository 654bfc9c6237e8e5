/*
File: lumen/parser/parser.go

Pure recursive descent, one token of lookahead via peek(), no
backtracking. Grounded on akashmaji946/go-mix's parser/parser.go
two-token cursor (CurrToken/NextToken, advance/expectAdvance) and its
Errors-slice diagnostic collection — generalized here to a collected
[]error joined into a single returned error, since library entry points
that want to embed this parser expect an idiomatic error return rather
than a side-channel slice the caller must remember to check.
*/
package parser

import (
	"errors"
	"fmt"

	"github.com/akashmaji946/lumen/lexer"
)

// typeHints are the keywords accepted after 'let' and before a function
// parameter name. The evaluator never looks at them.
var typeHints = map[string]bool{
	"bool": true, "int": true, "str": true, "list": true, "function": true,
}

// builtinKeywords are the reserved words that parse as a call expression
// when immediately followed by '('.
var builtinKeywords = map[string]bool{
	"head": true, "tail": true, "len": true, "type": true,
	"is_bool": true, "is_number": true, "is_string": true, "is_list": true,
	"is_function": true, "input": true, "print": true, "println": true,
}

// Parser walks a token slice produced by the lexer and builds a Program
// AST, collecting diagnostics rather than panicking on the first one.
type Parser struct {
	tokens []lexer.Token
	idx    int
	errs   []error
}

// New lexes src and returns a Parser positioned at its first token. A lex
// failure is fatal and non-recoverable, so it is returned
// immediately rather than deferred into the parse errors.
func New(src string) (*Parser, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return &Parser{tokens: tokens}, nil
}

func (p *Parser) cur() lexer.Token  { return p.tokenAt(p.idx) }
func (p *Parser) peek() lexer.Token { return p.tokenAt(p.idx + 1) }

func (p *Parser) tokenAt(i int) lexer.Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	line := 1
	if len(p.tokens) > 0 {
		line = p.tokens[len(p.tokens)-1].Line
	}
	return lexer.Token{Kind: lexer.EOFKind, Lexeme: "", Line: line}
}

func (p *Parser) atEOF() bool { return p.cur().Kind == lexer.EOFKind }

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	p.idx++
	return t
}

func (p *Parser) atKind(kind lexer.Kind) bool { return p.cur().Kind == kind }

func (p *Parser) atKeyword(word string) bool {
	t := p.cur()
	return t.Kind == lexer.Keyword && t.Lexeme == word
}

func (p *Parser) atOperator(op string) bool {
	t := p.cur()
	return t.Kind == lexer.Operator && t.Lexeme == op
}

// expect consumes the current token if it matches kind, else records a
// diagnostic and returns the ok=false zero value.
func (p *Parser) expect(kind lexer.Kind, what string) (lexer.Token, bool) {
	if p.atKind(kind) {
		return p.advance(), true
	}
	p.errorf(what)
	return lexer.Token{}, false
}

// errorf records a line-tagged diagnostic: "Error found near line L
// with value 'V': message".
func (p *Parser) errorf(message string) {
	tok := p.cur()
	p.errs = append(p.errs, fmt.Errorf("Error found near line %d with value '%s': %s", tok.Line, tok.Lexeme, message))
}

// Parse consumes every token and returns the Program root. Parse errors
// do not abort early — when a parseStatement call cannot make progress
// (it has recorded a diagnostic), the loop skips one token so it never
// spins — but a returned non-nil error means the tree is not trustworthy and
// must not be evaluated.
func (p *Parser) Parse() (*Node, error) {
	root := newNode(KindProgram, 1)
	for !p.atEOF() {
		before := p.idx
		stmt := p.parseStatement()
		if stmt != nil {
			root.Children = append(root.Children, stmt)
		}
		if p.idx == before {
			// parseStatement could not consume anything; skip this token rather than loop forever.
			p.advance()
		}
		if stmt == nil && len(p.errs) > 8 {
			break
		}
	}
	if len(p.errs) > 0 {
		return root, errors.Join(p.errs...)
	}
	return root, nil
}
