package internal

// expr is any expression AST node. Kept as a tiny visitor-pattern
// interface, the same shape as grotsky's expr/exprVisitor pair.
type expr interface {
	accept(exprVisitor) interface{}
}

type exprVisitor interface {
	visitAssignExpr(e *assignExpr) interface{}
	visitBinaryExpr(e *binaryExpr) interface{}
	visitCallExpr(e *callExpr) interface{}
	visitGetExpr(e *getExpr) interface{}
	visitSetExpr(e *setExpr) interface{}
	visitSuperExpr(e *superExpr) interface{}
	visitGroupingExpr(e *groupingExpr) interface{}
	visitLiteralExpr(e *literalExpr) interface{}
	visitLogicalExpr(e *logicalExpr) interface{}
	visitThisExpr(e *thisExpr) interface{}
	visitUnaryExpr(e *unaryExpr) interface{}
	visitVariableExpr(e *variableExpr) interface{}
}

type assignExpr struct {
	name  *token
	value expr
}

func (e *assignExpr) accept(v exprVisitor) interface{} { return v.visitAssignExpr(e) }

type binaryExpr struct {
	left     expr
	operator *token
	right    expr
}

func (e *binaryExpr) accept(v exprVisitor) interface{} { return v.visitBinaryExpr(e) }

type callExpr struct {
	callee    expr
	paren     *token
	arguments []expr
}

func (e *callExpr) accept(v exprVisitor) interface{} { return v.visitCallExpr(e) }

type getExpr struct {
	object expr
	name   *token
}

func (e *getExpr) accept(v exprVisitor) interface{} { return v.visitGetExpr(e) }

type setExpr struct {
	object expr
	name   *token
	value  expr
}

func (e *setExpr) accept(v exprVisitor) interface{} { return v.visitSetExpr(e) }

type superExpr struct {
	keyword *token
	method  *token
}

func (e *superExpr) accept(v exprVisitor) interface{} { return v.visitSuperExpr(e) }

type groupingExpr struct {
	expression expr
}

func (e *groupingExpr) accept(v exprVisitor) interface{} { return v.visitGroupingExpr(e) }

type literalExpr struct {
	value interface{}
}

func (e *literalExpr) accept(v exprVisitor) interface{} { return v.visitLiteralExpr(e) }

type logicalExpr struct {
	left     expr
	operator *token
	right    expr
}

func (e *logicalExpr) accept(v exprVisitor) interface{} { return v.visitLogicalExpr(e) }

type thisExpr struct {
	keyword *token
}

func (e *thisExpr) accept(v exprVisitor) interface{} { return v.visitThisExpr(e) }

type unaryExpr struct {
	operator *token
	right    expr
}

func (e *unaryExpr) accept(v exprVisitor) interface{} { return v.visitUnaryExpr(e) }

type variableExpr struct {
	name *token
}

func (e *variableExpr) accept(v exprVisitor) interface{} { return v.visitVariableExpr(e) }
