package parser

import "github.com/akashmaji946/lumen/lexer"

// parseStatement implements:
//
//	Statement → Let | If | Funk | Return | Reassignment | Expression
//
// Reassignment is not in the grammar verbatim but is
// required by the data model (a Reassignment node must be producible
// somehow) — see DESIGN.md. It is disambiguated with exactly one
// token of lookahead: an Identifier immediately followed by a bare '='.
func (p *Parser) parseStatement() *Node {
	switch {
	case p.atKeyword("let"):
		return p.parseLet()
	case p.atKeyword("if"):
		return p.parseIf()
	case p.atKeyword("funk"):
		return p.parseFunk()
	case p.atKeyword("return"):
		return p.parseReturn()
	case p.atKind(lexer.Identifier) && p.peek().Kind == lexer.Operator && p.peek().Lexeme == "=":
		return p.parseReassignment()
	default:
		return p.parseExpression()
	}
}

// parseLet: 'let' TypeHint? Identifier '=' Expression
func (p *Parser) parseLet() *Node {
	line := p.advance().Line // 'let'
	if p.cur().Kind == lexer.Keyword && typeHints[p.cur().Lexeme] {
		p.advance() // type hint, accepted and ignored
	}
	nameTok, ok := p.expect(lexer.Identifier, "expected identifier after 'let'")
	if !ok {
		return nil
	}
	if !p.atOperator("=") {
		p.errorf("expected '=' in let binding")
		return nil
	}
	p.advance() // '='
	rhs := p.parseExpression()
	ident := newLeaf(KindIdentifier, nameTok.Lexeme, nameTok.Line)
	return newNode(KindAssignment, line, ident, rhs)
}

// parseReassignment: Identifier '=' Expression
func (p *Parser) parseReassignment() *Node {
	nameTok := p.advance()
	line := nameTok.Line
	p.advance() // '='
	rhs := p.parseExpression()
	ident := newLeaf(KindIdentifier, nameTok.Lexeme, line)
	return newNode(KindReassignment, line, ident, rhs)
}

// parseFunk: 'funk' Identifier '(' Args? ')' Block
func (p *Parser) parseFunk() *Node {
	line := p.advance().Line // 'funk'
	nameTok, ok := p.expect(lexer.Identifier, "expected function name after 'funk'")
	if !ok {
		return nil
	}
	if _, ok := p.expect(lexer.LeftParen, "expected '(' after function name"); !ok {
		return nil
	}
	args := p.parseArgs()
	if _, ok := p.expect(lexer.RightParen, "expected ')' to close parameter list"); !ok {
		return nil
	}
	block := p.parseBlock()
	fn := newNode(KindFunction, line, args, block)
	ident := newLeaf(KindIdentifier, nameTok.Lexeme, line)
	return newNode(KindDeclaration, line, ident, fn)
}

// parseArgs: Identifier (',' Identifier)* — each name may be preceded by
// an ignored type hint, matching the typed-parameter style used in the
// worked examples ("funk factorial(int x)").
func (p *Parser) parseArgs() *Node {
	line := p.cur().Line
	args := &Node{Kind: KindArgs, Line: line}
	if p.atKind(lexer.RightParen) {
		return args
	}
	for {
		if p.cur().Kind == lexer.Keyword && typeHints[p.cur().Lexeme] {
			p.advance()
		}
		nameTok, ok := p.expect(lexer.Identifier, "expected parameter name")
		if !ok {
			return args
		}
		args.Names = append(args.Names, nameTok.Lexeme)
		if p.atKind(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	return args
}

// parseIf: 'if' Expression Block ('else' (Block | If))?
func (p *Parser) parseIf() *Node {
	line := p.advance().Line // 'if'
	cond := p.parseExpression()
	thenBlock := p.parseBlock()
	children := []*Node{cond, thenBlock}
	if p.atKeyword("else") {
		p.advance()
		if p.atKeyword("if") {
			children = append(children, p.parseIf())
		} else {
			children = append(children, p.parseBlock())
		}
	}
	return newNode(KindIf, line, children...)
}

// parseReturn: 'return' Expression
func (p *Parser) parseReturn() *Node {
	line := p.advance().Line // 'return'
	expr := p.parseExpression()
	return newNode(KindReturn, line, expr)
}

// parseBlock: '{' Statement* '}' — see DESIGN.md on why this
// admits full statements (Let/If/Funk/Return) rather than the
// literal "Expression*", which cannot host the `return` the worked
// examples require inside an `if` branch.
func (p *Parser) parseBlock() *Node {
	openTok, ok := p.expect(lexer.LeftBrace, "expected '{' to start block")
	if !ok {
		return newNode(KindBlock, p.cur().Line)
	}
	var children []*Node
	for !p.atKind(lexer.RightBrace) && !p.atEOF() {
		before := p.idx
		stmt := p.parseStatement()
		if stmt != nil {
			children = append(children, stmt)
		}
		if p.idx == before {
			p.advance()
		}
	}
	p.expect(lexer.RightBrace, "expected '}' to close block")
	return newNode(KindBlock, openTok.Line, children...)
}
