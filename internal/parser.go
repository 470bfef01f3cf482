package internal

// parser turns the scanned tokens into one top-level expression
type parser struct {
	state *interpreterState

	current int
}

func (p *parser) parse() {
	defer func() {
		if r := recover(); r != nil {
			p.state.expr = nil
		}
	}()
	p.state.expr = p.expression()
	if !p.isAtEnd() {
		p.state.fatalError(errTrailingInput, p.peek().line, p.peek().pos)
	}
}

func (p *parser) expression() expr {
	if p.match(LEFT_PAREN) {
		return p.list()
	}
	return p.atom()
}

func (p *parser) atom() expr {
	if p.isAtEnd() {
		p.state.fatalError(errUnexpectedEOF, p.peek().line, p.peek().pos)
	}
	tk := p.advance()
	switch tk.token {
	case INTEGER:
		return &integerExpr{token: tk}
	case FLOAT:
		return &floatExpr{token: tk, value: tk.literal.(float64)}
	case TRUE, FALSE:
		return &boolExpr{token: tk, value: tk.token == TRUE}
	case STRING:
		return &stringExpr{token: tk, value: tk.literal.(string)}
	case SYMBOL:
		return &symbolExpr{name: tk}
	}
	p.state.fatalError(errUnexpectedToken, tk.line, tk.pos)
	return nil
}

func (p *parser) list() expr {
	if p.check(RIGHT_PAREN) {
		p.state.fatalError(errEmptyList, p.peek().line, p.peek().pos)
	}
	op := p.peek()
	if op.token != SYMBOL {
		p.state.fatalError(errExpectedOperator, op.line, op.pos)
	}
	p.advance()
	switch op.lexeme {
	case "if":
		return p.ifForm(op)
	case "let":
		return p.letForm(op)
	}
	return p.callForm(op)
}

func (p *parser) ifForm(keyword *token) expr {
	parts := make([]expr, 0, 3)
	for i := 0; i < 3; i++ {
		if p.check(RIGHT_PAREN) {
			p.state.fatalError(errIfArity, p.peek().line, p.peek().pos)
		}
		parts = append(parts, p.expression())
	}
	if !p.check(RIGHT_PAREN) {
		p.state.fatalError(errIfArity, p.peek().line, p.peek().pos)
	}
	p.consume(RIGHT_PAREN, errUnclosedParen)
	return &ifExpr{
		keyword:    keyword,
		condition:  parts[0],
		thenBranch: parts[1],
		elseBranch: parts[2],
	}
}

func (p *parser) letForm(keyword *token) expr {
	name := p.peek()
	if name.token != SYMBOL {
		p.state.fatalError(errLetName, name.line, name.pos)
	}
	p.advance()
	if p.check(RIGHT_PAREN) {
		p.state.fatalError(errLetArity, p.peek().line, p.peek().pos)
	}
	first := p.expression()

	var annotation *ltype
	value := first
	if !p.check(RIGHT_PAREN) {
		// (let name type value): the third-to-last element must
		// name a type
		sym, ok := first.(*symbolExpr)
		if !ok {
			p.state.fatalError(errInvalidAnnotation, keyword.line, keyword.pos)
		}
		t, ok := typeByName(sym.name.lexeme)
		if !ok {
			p.state.fatalError(errUnknownType, sym.name.line, sym.name.pos)
		}
		annotation = &t
		value = p.expression()
	}
	p.consume(RIGHT_PAREN, errUnclosedParen)
	return &letExpr{
		keyword:    keyword,
		name:       name,
		annotation: annotation,
		value:      value,
	}
}

func (p *parser) callForm(name *token) expr {
	args := make([]expr, 0)
	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		args = append(args, p.expression())
	}
	p.consume(RIGHT_PAREN, errUnclosedParen)
	return &callExpr{name: name, args: args}
}

func (p *parser) consume(tt TokenType, err error) *token {
	if p.check(tt) {
		return p.advance()
	}
	p.state.fatalError(err, p.peek().line, p.peek().pos)
	return nil
}

func (p *parser) check(tt TokenType) bool {
	return p.peek().token == tt
}

func (p *parser) match(tt TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) peek() *token {
	return &p.state.tokens[p.current]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == EOF
}
