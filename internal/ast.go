package internal

// R is the result of a visitor method: an ltype for the checker,
// a value for the evaluator.
type R interface{}

type expr interface {
	accept(exprVisitor) R
}

type exprVisitor interface {
	visitIntegerExpr(expr *integerExpr) R
	visitFloatExpr(expr *floatExpr) R
	visitBoolExpr(expr *boolExpr) R
	visitStringExpr(expr *stringExpr) R
	visitSymbolExpr(expr *symbolExpr) R
	visitCallExpr(expr *callExpr) R
	visitIfExpr(expr *ifExpr) R
	visitLetExpr(expr *letExpr) R
}

// integerExpr keeps the raw literal text so the checker can validate
// the 32-bit range and report the text the user wrote.
type integerExpr struct {
	token *token

	// set by the checker once the literal is proven in range
	value int32
}

func (s *integerExpr) accept(visitor exprVisitor) R {
	return visitor.visitIntegerExpr(s)
}

type floatExpr struct {
	token *token
	value float64
}

func (s *floatExpr) accept(visitor exprVisitor) R {
	return visitor.visitFloatExpr(s)
}

type boolExpr struct {
	token *token
	value bool
}

func (s *boolExpr) accept(visitor exprVisitor) R {
	return visitor.visitBoolExpr(s)
}

type stringExpr struct {
	token *token
	value string
}

func (s *stringExpr) accept(visitor exprVisitor) R {
	return visitor.visitStringExpr(s)
}

type symbolExpr struct {
	name *token
}

func (s *symbolExpr) accept(visitor exprVisitor) R {
	return visitor.visitSymbolExpr(s)
}

type callExpr struct {
	name *token
	args []expr

	// operand type recorded by the checker, read back by the
	// evaluator for type-of and the print pass-through
	argType ltype
}

func (s *callExpr) accept(visitor exprVisitor) R {
	return visitor.visitCallExpr(s)
}

type ifExpr struct {
	keyword    *token
	condition  expr
	thenBranch expr
	elseBranch expr
}

func (s *ifExpr) accept(visitor exprVisitor) R {
	return visitor.visitIfExpr(s)
}

type letExpr struct {
	keyword *token
	name    *token
	// nil when the binding carries no annotation
	annotation *ltype
	value      expr

	// resolved binding type, recorded by the checker so the
	// evaluator commits (type, value) together
	vtype ltype
}

func (s *letExpr) accept(visitor exprVisitor) R {
	return visitor.visitLetExpr(s)
}
