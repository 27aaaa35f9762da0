package internal

// stmt is any statement AST node, the statement-side twin of expr.
type stmt interface {
	accept(stmtVisitor) interface{}
}

type stmtVisitor interface {
	visitExpressionStmt(s *expressionStmt) interface{}
	visitPrintStmt(s *printStmt) interface{}
	visitVarStmt(s *varStmt) interface{}
	visitBlockStmt(s *blockStmt) interface{}
	visitIfStmt(s *ifStmt) interface{}
	visitWhileStmt(s *whileStmt) interface{}
	visitFunctionStmt(s *functionStmt) interface{}
	visitReturnStmt(s *returnStmt) interface{}
	visitClassStmt(s *classStmt) interface{}
}

type expressionStmt struct {
	expression expr
}

func (s *expressionStmt) accept(v stmtVisitor) interface{} { return v.visitExpressionStmt(s) }

type printStmt struct {
	expression expr
}

func (s *printStmt) accept(v stmtVisitor) interface{} { return v.visitPrintStmt(s) }

type varStmt struct {
	name        *token
	initializer expr
}

func (s *varStmt) accept(v stmtVisitor) interface{} { return v.visitVarStmt(s) }

type blockStmt struct {
	statements []stmt
}

func (s *blockStmt) accept(v stmtVisitor) interface{} { return v.visitBlockStmt(s) }

type ifStmt struct {
	condition  expr
	thenBranch stmt
	elseBranch stmt
}

func (s *ifStmt) accept(v stmtVisitor) interface{} { return v.visitIfStmt(s) }

type whileStmt struct {
	condition expr
	body      stmt
}

func (s *whileStmt) accept(v stmtVisitor) interface{} { return v.visitWhileStmt(s) }

type functionStmt struct {
	name   *token
	params []*token
	body   []stmt
}

func (s *functionStmt) accept(v stmtVisitor) interface{} { return v.visitFunctionStmt(s) }

type returnStmt struct {
	keyword *token
	value   expr
}

func (s *returnStmt) accept(v stmtVisitor) interface{} { return v.visitReturnStmt(s) }

type classStmt struct {
	name       *token
	superclass *variableExpr
	methods    []*functionStmt
}

func (s *classStmt) accept(v stmtVisitor) interface{} { return v.visitClassStmt(s) }
