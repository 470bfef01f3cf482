package internal

import (
	"math"
	"strconv"
)

// checker infers and validates types. It never evaluates and never
// writes the session scope: types bound by let land in a scratch
// overlay that is dropped when checking ends, and the evaluator
// commits the real (type, value) pair only after the value exists.
type checker struct {
	state   *interpreterState
	globals *env

	scratch map[string]ltype
}

func newChecker(state *interpreterState, globals *env) *checker {
	return &checker{
		state:   state,
		globals: globals,
		scratch: make(map[string]ltype),
	}
}

func (c *checker) check(e expr) (t ltype, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*typeError); !ok {
				panic(r)
			}
			err = c.state.typeError
		}
	}()
	return c.checkExpr(e), nil
}

func (c *checker) checkExpr(e expr) ltype {
	return e.accept(c).(ltype)
}

// isolated checks e against a copy of the scratch scope. Positions
// the evaluator may never reach check their lets here, so a binding
// that might never materialize at runtime stays invisible to sibling
// expressions.
func (c *checker) isolated(e expr) ltype {
	saved := c.scratch
	c.scratch = make(map[string]ltype, len(saved))
	for name, t := range saved {
		c.scratch[name] = t
	}
	t := c.checkExpr(e)
	c.scratch = saved
	return t
}

func (c *checker) lookup(name string) (ltype, bool) {
	if t, ok := c.scratch[name]; ok {
		return t, true
	}
	if b, ok := c.globals.get(name); ok {
		return b.vtype, true
	}
	return 0, false
}

func (c *checker) visitIntegerExpr(expr *integerExpr) R {
	n, err := strconv.ParseInt(expr.token.lexeme, 10, 32)
	if err != nil {
		c.state.typeErr(
			"Integer literal %s out of range for i32 [%d, %d]",
			expr.token.lexeme, math.MinInt32, math.MaxInt32,
		)
	}
	expr.value = int32(n)
	return typeI32
}

func (c *checker) visitFloatExpr(expr *floatExpr) R {
	return typeF64
}

func (c *checker) visitBoolExpr(expr *boolExpr) R {
	return typeBool
}

func (c *checker) visitStringExpr(expr *stringExpr) R {
	return typeString
}

func (c *checker) visitSymbolExpr(expr *symbolExpr) R {
	t, ok := c.lookup(expr.name.lexeme)
	if !ok {
		c.state.typeErr("Undefined variable: %s", expr.name.lexeme)
	}
	return t
}

func (c *checker) visitCallExpr(expr *callExpr) R {
	name := expr.name.lexeme
	arity, ok := builtinArity[name]
	if !ok {
		c.state.typeErr("Undefined variable: %s", name)
	}
	// arity is validated before any operand type is compared
	if len(expr.args) != arity {
		c.state.typeErr(
			"Wrong number of arguments for %s: expected %d, got %d",
			name, arity, len(expr.args),
		)
	}

	switch {
	case intArith[name] != nil:
		c.operands(expr, typeI32)
		return typeI32
	case floatArith[name] != nil:
		c.operands(expr, typeF64)
		return typeF64
	case intCompare[name] != nil:
		left := c.checkExpr(expr.args[0])
		if left != typeI32 && left != typeF64 {
			c.state.typeErr("Type mismatch: expected i32 or f64, got %s", left)
		}
		if right := c.checkExpr(expr.args[1]); right != left {
			c.state.typeErr("Type mismatch: expected %s, got %s", left, right)
		}
		return typeBool
	case boolOps[name] != nil:
		c.operands(expr, typeBool)
		return typeBool
	case name == "not":
		c.operands(expr, typeBool)
		return typeBool
	case name == "type-of":
		// the operand is never evaluated
		expr.argType = c.isolated(expr.args[0])
		return typeString
	case name == "print", name == "println":
		// pass-through: the result type is the operand's type
		expr.argType = c.checkExpr(expr.args[0])
		return expr.argType
	}
	panic("unreachable: builtin without a checking rule: " + name)
}

func (c *checker) operands(call *callExpr, want ltype) {
	for _, a := range call.args {
		if t := c.checkExpr(a); t != want {
			c.state.typeErr("Type mismatch: expected %s, got %s", want, t)
		}
	}
}

func (c *checker) visitIfExpr(expr *ifExpr) R {
	if cond := c.checkExpr(expr.condition); cond != typeBool {
		c.state.typeErr("If condition must be bool, got %s", cond)
	}
	// only one branch will run, so neither branch's lets may
	// satisfy lookups outside it
	thenType := c.isolated(expr.thenBranch)
	elseType := c.isolated(expr.elseBranch)
	if thenType != elseType {
		c.state.typeErr("If branches must have same type: %s vs %s", thenType, elseType)
	}
	return thenType
}

func (c *checker) visitLetExpr(expr *letExpr) R {
	t := c.checkExpr(expr.value)
	if expr.annotation != nil && *expr.annotation != t {
		c.state.typeErr("Type mismatch: expected %s, got %s", *expr.annotation, t)
	}
	if expr.annotation != nil {
		t = *expr.annotation
	}
	c.scratch[expr.name.lexeme] = t
	expr.vtype = t
	return t
}
