package internal

// parser is a recursive-descent parser matching the language grammar
// exactly, following grotsky's one-method-per-precedence-level shape
// (archive/internal/parser.go's assignment/or/and/equality/.../primary
// chain). Beyond tree construction it disambiguates assignment targets,
// desugars for-loops into while-loops, and recovers from syntax errors by
// synchronizing to the next statement boundary.
type parser struct {
	current int

	state *interpreterState
}

const maxArgs = 255

func newParser(state *interpreterState) *parser {
	return &parser{state: state}
}

func (p *parser) parse() {
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			p.state.stmts = append(p.state.stmts, s)
		}
	}
}

func (p *parser) declaration() (s stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseSignal); ok {
				p.synchronize()
				s = nil
				return
			}
			panic(r)
		}
	}()

	if p.match(CLASS) {
		return p.classDeclaration()
	}
	if p.match(FUN) {
		return p.function("function")
	}
	if p.match(VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

// parseSignal unwinds declaration() to its recover point on a syntax
// error, the same non-local-exit idiom grotsky uses for return.
type parseSignal struct{}

func (p *parser) classDeclaration() stmt {
	name := p.consume(IDENTIFIER, errExpectedClassName)

	var superclass *variableExpr
	if p.match(LESS) {
		p.consume(IDENTIFIER, errExpectedSuperclassName)
		superclass = &variableExpr{name: p.previous()}
	}

	p.consume(LEFT_BRACE, errExpectedOpeningBrace)

	var methods []*functionStmt
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(RIGHT_BRACE, errUnclosedBrace)

	return &classStmt{name: name, superclass: superclass, methods: methods}
}

func (p *parser) function(kind string) *functionStmt {
	nameErr := errExpectedFunctionName
	if kind == "method" {
		nameErr = errExpectedMethodName
	}
	name := p.consume(IDENTIFIER, nameErr)

	p.consume(LEFT_PAREN, errExpectedParen)
	var params []*token
	if !p.check(RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.state.setError(errMaxParameters, p.peek().line)
			}
			params = append(params, p.consume(IDENTIFIER, errExpectedParameterName))
			if !p.match(COMMA) {
				break
			}
		}
	}
	p.consume(RIGHT_PAREN, errUnclosedParen)

	p.consume(LEFT_BRACE, errExpectedOpeningBrace)
	body := p.block()

	return &functionStmt{name: name, params: params, body: body}
}

func (p *parser) varDeclaration() stmt {
	name := p.consume(IDENTIFIER, errExpectedVarName)

	var initializer expr
	if p.match(EQUAL) {
		initializer = p.expression()
	}

	p.consume(SEMICOLON, errExpectedSemicolon)
	return &varStmt{name: name, initializer: initializer}
}

func (p *parser) statement() stmt {
	if p.match(FOR) {
		return p.forStatement()
	}
	if p.match(IF) {
		return p.ifStatement()
	}
	if p.match(PRINT) {
		return p.printStatement()
	}
	if p.match(RETURN) {
		return p.returnStatement()
	}
	if p.match(WHILE) {
		return p.whileStatement()
	}
	if p.match(LEFT_BRACE) {
		return &blockStmt{statements: p.block()}
	}
	return p.expressionStatement()
}

// forStatement desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }`. There is no dedicated
// for-loop AST node: the desugaring happens here, once, instead of
// adding evaluator cases for it.
func (p *parser) forStatement() stmt {
	p.consume(LEFT_PAREN, errExpectedParen)

	var initializer stmt
	if p.match(SEMICOLON) {
		initializer = nil
	} else if p.match(VAR) {
		initializer = p.varDeclaration()
	} else {
		initializer = p.expressionStatement()
	}

	var condition expr
	if !p.check(SEMICOLON) {
		condition = p.expression()
	}
	p.consume(SEMICOLON, errExpectedSemicolon)

	var increment expr
	if !p.check(RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(RIGHT_PAREN, errUnclosedParen)

	body := p.statement()

	if increment != nil {
		body = &blockStmt{statements: []stmt{body, &expressionStmt{expression: increment}}}
	}

	if condition == nil {
		condition = &literalExpr{value: true}
	}
	body = &whileStmt{condition: condition, body: body}

	if initializer != nil {
		body = &blockStmt{statements: []stmt{initializer, body}}
	}

	return body
}

func (p *parser) ifStatement() stmt {
	p.consume(LEFT_PAREN, errExpectedParen)
	condition := p.expression()
	p.consume(RIGHT_PAREN, errUnclosedParen)

	thenBranch := p.statement()
	var elseBranch stmt
	if p.match(ELSE) {
		elseBranch = p.statement()
	}

	return &ifStmt{condition: condition, thenBranch: thenBranch, elseBranch: elseBranch}
}

func (p *parser) printStatement() stmt {
	value := p.expression()
	p.consume(SEMICOLON, errExpectedSemicolon)
	return &printStmt{expression: value}
}

func (p *parser) returnStatement() stmt {
	keyword := p.previous()
	var value expr
	if !p.check(SEMICOLON) {
		value = p.expression()
	}
	p.consume(SEMICOLON, errExpectedSemicolon)
	return &returnStmt{keyword: keyword, value: value}
}

func (p *parser) whileStatement() stmt {
	p.consume(LEFT_PAREN, errExpectedParen)
	condition := p.expression()
	p.consume(RIGHT_PAREN, errUnclosedParen)
	body := p.statement()
	return &whileStmt{condition: condition, body: body}
}

func (p *parser) block() []stmt {
	var statements []stmt
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			statements = append(statements, s)
		}
	}
	p.consume(RIGHT_BRACE, errUnclosedBrace)
	return statements
}

func (p *parser) expressionStatement() stmt {
	value := p.expression()
	p.consume(SEMICOLON, errExpectedSemicolon)
	return &expressionStmt{expression: value}
}

func (p *parser) expression() expr {
	return p.assignment()
}

// assignment parses the left side as a normal expression, then converts it
// to an assignment target if an `=` follows, exactly as grotsky does:
// variableExpr -> assignExpr, getExpr -> setExpr. Any other left-hand side
// is a syntax error without consuming the `=`.
func (p *parser) assignment() expr {
	e := p.or()

	if p.check(EQUAL) {
		equals := p.peek()

		if variable, ok := e.(*variableExpr); ok {
			p.advance()
			value := p.assignment()
			return &assignExpr{name: variable.name, value: value}
		}
		if get, ok := e.(*getExpr); ok {
			p.advance()
			value := p.assignment()
			return &setExpr{object: get.object, name: get.name, value: value}
		}

		p.state.setError(errInvalidAssignTarget, equals.line)
		return e
	}

	return e
}

func (p *parser) or() expr {
	e := p.and()
	for p.match(OR) {
		operator := p.previous()
		right := p.and()
		e = &logicalExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) and() expr {
	e := p.equality()
	for p.match(AND) {
		operator := p.previous()
		right := p.equality()
		e = &logicalExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) equality() expr {
	e := p.comparison()
	for p.match(BANG_EQUAL, EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		e = &binaryExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) comparison() expr {
	e := p.term()
	for p.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		e = &binaryExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) term() expr {
	e := p.factor()
	for p.match(MINUS, PLUS) {
		operator := p.previous()
		right := p.factor()
		e = &binaryExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) factor() expr {
	e := p.unary()
	for p.match(SLASH, STAR) {
		operator := p.previous()
		right := p.unary()
		e = &binaryExpr{left: e, operator: operator, right: right}
	}
	return e
}

func (p *parser) unary() expr {
	if p.match(BANG, MINUS) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{operator: operator, right: right}
	}
	return p.call()
}

func (p *parser) call() expr {
	e := p.primary()
	for {
		if p.match(LEFT_PAREN) {
			e = p.finishCall(e)
		} else if p.match(DOT) {
			name := p.consume(IDENTIFIER, errExpectedPropertyName)
			e = &getExpr{object: e, name: name}
		} else {
			break
		}
	}
	return e
}

func (p *parser) finishCall(callee expr) expr {
	var arguments []expr
	if !p.check(RIGHT_PAREN) {
		for {
			if len(arguments) >= maxArgs {
				p.state.setError(errMaxArguments, p.peek().line)
			}
			arguments = append(arguments, p.expression())
			if !p.match(COMMA) {
				break
			}
		}
	}
	paren := p.consume(RIGHT_PAREN, errUnclosedParen)
	return &callExpr{callee: callee, paren: paren, arguments: arguments}
}

func (p *parser) primary() expr {
	if p.match(FALSE) {
		return &literalExpr{value: false}
	}
	if p.match(TRUE) {
		return &literalExpr{value: true}
	}
	if p.match(NIL) {
		return &literalExpr{value: nil}
	}
	if p.match(NUMBER, STRING) {
		return &literalExpr{value: p.previous().literal}
	}
	if p.match(SUPER) {
		keyword := p.previous()
		p.consume(DOT, errExpectedSuperDot)
		method := p.consume(IDENTIFIER, errExpectedSuperMethod)
		return &superExpr{keyword: keyword, method: method}
	}
	if p.match(THIS) {
		return &thisExpr{keyword: p.previous()}
	}
	if p.match(IDENTIFIER) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(LEFT_PAREN) {
		e := p.expression()
		p.consume(RIGHT_PAREN, errUnclosedParen)
		return &groupingExpr{expression: e}
	}

	p.state.setError(errExpectedExpression, p.peek().line)
	panic(parseSignal{})
}

func (p *parser) consume(kind TokenType, err error) *token {
	if p.check(kind) {
		return p.advance()
	}
	p.state.setError(err, p.peek().line)
	panic(parseSignal{})
}

func (p *parser) match(kinds ...TokenType) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(kind TokenType) bool {
	if p.isAtEnd() {
		return kind == EOF
	}
	return p.peek().kind == kind
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) isAtEnd() bool {
	return p.peek().kind == EOF
}

func (p *parser) peek() *token {
	return p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return p.state.tokens[p.current-1]
}

// synchronize discards tokens until the next statement boundary, the same
// recovery idiom as grotsky's parser.synchronize.
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().kind == SEMICOLON {
			return
		}
		switch p.peek().kind {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}
		p.advance()
	}
}
