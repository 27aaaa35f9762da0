package internal

// Interpreter is a tree walker holding two environment handles -
// globals (flat map) and env (the current scope in the chain) - exactly
// grotsky's execute struct (archive/internal/exec.go), generalized
// to use the resolver's depth table instead of dynamic name lookup.
type Interpreter struct {
	state   *interpreterState
	globals *environment
	env     *environment
}

func newInterpreter(state *interpreterState) *Interpreter {
	globals := newEnvironment(nil)
	defineNatives(globals)
	return &Interpreter{state: state, globals: globals, env: globals}
}

// Interpret walks every top-level statement. A runtime error unwinds via
// panic/recover to here, the same non-local-exit shape grotsky's
// execute.interpret uses, and is recorded on state rather than
// propagated further so callers can inspect state.runtimeErr.
func (interp *Interpreter) Interpret(statements []stmt) {
	defer func() {
		if r := recover(); r != nil {
			if rtErr, ok := r.(*runtimeError); ok {
				interp.state.runtimeErr = rtErr
				return
			}
			panic(r)
		}
	}()
	for _, s := range statements {
		interp.execute(s)
	}
}

func (interp *Interpreter) execute(s stmt) {
	s.accept(interp)
}

func (interp *Interpreter) evaluate(e expr) interface{} {
	return e.accept(interp)
}

func (interp *Interpreter) executeBlock(statements []stmt, env *environment) {
	previous := interp.env
	defer func() { interp.env = previous }()
	interp.env = env
	for _, s := range statements {
		interp.execute(s)
	}
}

func (interp *Interpreter) visitBlockStmt(s *blockStmt) interface{} {
	interp.executeBlock(s.statements, newEnvironment(interp.env))
	return nil
}

func (interp *Interpreter) visitClassStmt(s *classStmt) interface{} {
	var superclass *class
	if s.superclass != nil {
		value := interp.evaluate(s.superclass)
		sc, ok := value.(*class)
		if !ok {
			panic(newRuntimeError(s.superclass.name, errSuperclassMustBeClass))
		}
		superclass = sc
	}

	interp.env.define(s.name.lexeme, nil)

	if s.superclass != nil {
		interp.env = newEnvironment(interp.env)
		interp.env.define("super", superclass)
	}

	methods := make(map[string]*function)
	for _, m := range s.methods {
		methods[m.name.lexeme] = &function{
			declaration:   m,
			closure:       interp.env,
			isInitializer: m.name.lexeme == "init",
		}
	}

	cls := &class{name: s.name.lexeme, superclass: superclass, methods: methods}

	if s.superclass != nil {
		interp.env = interp.env.enclosing
	}

	interp.env.assign(s.name, cls)
	return nil
}

func (interp *Interpreter) visitExpressionStmt(s *expressionStmt) interface{} {
	interp.evaluate(s.expression)
	return nil
}

func (interp *Interpreter) visitFunctionStmt(s *functionStmt) interface{} {
	fn := &function{declaration: s, closure: interp.env}
	interp.env.define(s.name.lexeme, fn)
	return nil
}

func (interp *Interpreter) visitIfStmt(s *ifStmt) interface{} {
	if isTruthy(interp.evaluate(s.condition)) {
		interp.execute(s.thenBranch)
	} else if s.elseBranch != nil {
		interp.execute(s.elseBranch)
	}
	return nil
}

func (interp *Interpreter) visitPrintStmt(s *printStmt) interface{} {
	value := interp.evaluate(s.expression)
	interp.state.out.Println(stringify(value))
	return nil
}

func (interp *Interpreter) visitReturnStmt(s *returnStmt) interface{} {
	var value interface{}
	if s.value != nil {
		value = interp.evaluate(s.value)
	}
	panic(returnSignal{value: value})
}

func (interp *Interpreter) visitVarStmt(s *varStmt) interface{} {
	var value interface{}
	if s.initializer != nil {
		value = interp.evaluate(s.initializer)
	}
	interp.env.define(s.name.lexeme, value)
	return nil
}

func (interp *Interpreter) visitWhileStmt(s *whileStmt) interface{} {
	for isTruthy(interp.evaluate(s.condition)) {
		interp.execute(s.body)
	}
	return nil
}

func (interp *Interpreter) visitAssignExpr(e *assignExpr) interface{} {
	value := interp.evaluate(e.value)
	if distance, ok := interp.state.locals[e]; ok {
		interp.env.assignAt(distance, e.name, value)
	} else {
		interp.globals.assign(e.name, value)
	}
	return value
}

func (interp *Interpreter) visitBinaryExpr(e *binaryExpr) interface{} {
	left := interp.evaluate(e.left)
	right := interp.evaluate(e.right)

	switch e.operator.kind {
	case GREATER:
		l, r := interp.numberOperands(e.operator, left, right)
		return l > r
	case GREATER_EQUAL:
		l, r := interp.numberOperands(e.operator, left, right)
		return l >= r
	case LESS:
		l, r := interp.numberOperands(e.operator, left, right)
		return l < r
	case LESS_EQUAL:
		l, r := interp.numberOperands(e.operator, left, right)
		return l <= r
	case MINUS:
		l, r := interp.numberOperands(e.operator, left, right)
		return l - r
	case SLASH:
		l, r := interp.numberOperands(e.operator, left, right)
		return l / r
	case STAR:
		l, r := interp.numberOperands(e.operator, left, right)
		return l * r
	case PLUS:
		return interp.add(e.operator, left, right)
	case EQUAL_EQUAL:
		return isEqual(left, right)
	case BANG_EQUAL:
		return !isEqual(left, right)
	}

	// unreachable: the parser only ever builds binaryExpr with one of the
	// operators above.
	return nil
}

func (interp *Interpreter) add(operator *token, left, right interface{}) interface{} {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return l + r
		}
	}
	panic(newRuntimeError(operator, errOperandsMustBeNumbersOrStrings))
}

func (interp *Interpreter) numberOperands(operator *token, left, right interface{}) (float64, float64) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		panic(newRuntimeError(operator, errOperandsMustBeNumbers))
	}
	return l, r
}

func (interp *Interpreter) visitCallExpr(e *callExpr) interface{} {
	callee := interp.evaluate(e.callee)

	arguments := make([]interface{}, len(e.arguments))
	for i, arg := range e.arguments {
		arguments[i] = interp.evaluate(arg)
	}

	fn, ok := callee.(callable)
	if !ok {
		panic(newRuntimeError(e.paren, errOnlyCallFunctionsAndClasses))
	}

	if len(arguments) != fn.arity() {
		panic(newRuntimeError(e.paren, errExpectedArgs(fn.arity(), len(arguments))))
	}

	return fn.call(interp, arguments)
}

func (interp *Interpreter) visitGetExpr(e *getExpr) interface{} {
	object := interp.evaluate(e.object)
	if obj, ok := object.(*instance); ok {
		return obj.get(e.name)
	}
	panic(newRuntimeError(e.name, errOnlyInstancesHaveProperties))
}

func (interp *Interpreter) visitSetExpr(e *setExpr) interface{} {
	object := interp.evaluate(e.object)
	obj, ok := object.(*instance)
	if !ok {
		panic(newRuntimeError(e.name, errOnlyInstancesHaveFields))
	}
	value := interp.evaluate(e.value)
	obj.set(e.name, value)
	return value
}

func (interp *Interpreter) visitSuperExpr(e *superExpr) interface{} {
	distance := interp.state.locals[e]
	superclass := interp.env.getAt(distance, "super").(*class)
	object := interp.env.getAt(distance-1, "this").(*instance)

	method := superclass.findMethod(e.method.lexeme)
	if method == nil {
		panic(newRuntimeError(e.method, errUndefinedProperty(e.method.lexeme)))
	}
	return method.bind(object)
}

func (interp *Interpreter) visitGroupingExpr(e *groupingExpr) interface{} {
	return interp.evaluate(e.expression)
}

func (interp *Interpreter) visitLiteralExpr(e *literalExpr) interface{} {
	return e.value
}

func (interp *Interpreter) visitLogicalExpr(e *logicalExpr) interface{} {
	left := interp.evaluate(e.left)

	if e.operator.kind == OR {
		if isTruthy(left) {
			return left
		}
	} else {
		if !isTruthy(left) {
			return left
		}
	}

	return interp.evaluate(e.right)
}

func (interp *Interpreter) visitThisExpr(e *thisExpr) interface{} {
	return interp.lookUpVariable(e.keyword, e)
}

func (interp *Interpreter) visitUnaryExpr(e *unaryExpr) interface{} {
	right := interp.evaluate(e.right)

	switch e.operator.kind {
	case BANG:
		return !isTruthy(right)
	case MINUS:
		value, ok := right.(float64)
		if !ok {
			panic(newRuntimeError(e.operator, errOperandMustBeNumber))
		}
		return -value
	}
	return nil
}

func (interp *Interpreter) visitVariableExpr(e *variableExpr) interface{} {
	return interp.lookUpVariable(e.name, e)
}

// lookUpVariable walks exactly the resolved depth up the chain, or falls
// back to globals if the resolver left this use unresolved.
func (interp *Interpreter) lookUpVariable(name *token, e expr) interface{} {
	if distance, ok := interp.state.locals[e]; ok {
		return interp.env.getAt(distance, name.lexeme)
	}
	return interp.globals.get(name)
}
