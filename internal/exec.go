package internal

import (
	"fmt"
)

// exec evaluates expressions the checker already accepted. Type
// assertions on operand values never fail here: a mismatch would
// mean checker and evaluator disagree, which is a programming fault,
// not a user error.
type exec struct {
	state   *interpreterState
	env     *env
	printer IPrinter
}

func (e *exec) interpret(ex expr) (v value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*runtimeError); !ok {
				panic(r)
			}
			err = e.state.runtimeError
		}
	}()
	return e.evalExpr(ex), nil
}

func (e *exec) evalExpr(ex expr) value {
	return ex.accept(e).(value)
}

func (e *exec) visitIntegerExpr(expr *integerExpr) R {
	return ruspInt(expr.value)
}

func (e *exec) visitFloatExpr(expr *floatExpr) R {
	return ruspFloat(expr.value)
}

func (e *exec) visitBoolExpr(expr *boolExpr) R {
	return ruspBool(expr.value)
}

func (e *exec) visitStringExpr(expr *stringExpr) R {
	return ruspString(expr.value)
}

func (e *exec) visitSymbolExpr(expr *symbolExpr) R {
	b, ok := e.env.get(expr.name.lexeme)
	if !ok {
		// the checker proved this binding exists
		panic(fmt.Sprintf("internal: unbound symbol %q reached evaluation", expr.name.lexeme))
	}
	return b.val
}

func (e *exec) visitCallExpr(expr *callExpr) R {
	name := expr.name.lexeme

	switch name {
	case "type-of":
		// carried over from check time, the operand is not evaluated
		return ruspString(expr.argType.String())
	case "print":
		v := e.evalExpr(expr.args[0])
		e.printer.Print(v.String())
		return v
	case "println":
		v := e.evalExpr(expr.args[0])
		e.printer.Println(v.String())
		return v
	case "not":
		v := e.evalExpr(expr.args[0]).(ruspBool)
		return ruspBool(!bool(v))
	}

	// binary builtins evaluate operands left to right
	if apply, ok := intArith[name]; ok {
		a := e.evalExpr(expr.args[0]).(ruspInt)
		b := e.evalExpr(expr.args[1]).(ruspInt)
		r, err := apply(int32(a), int32(b))
		if err != nil {
			e.state.runtimeErr(err)
		}
		return ruspInt(r)
	}
	if apply, ok := floatArith[name]; ok {
		a := e.evalExpr(expr.args[0]).(ruspFloat)
		b := e.evalExpr(expr.args[1]).(ruspFloat)
		r, err := apply(float64(a), float64(b))
		if err != nil {
			e.state.runtimeErr(err)
		}
		return ruspFloat(r)
	}
	if _, ok := intCompare[name]; ok {
		a := e.evalExpr(expr.args[0])
		b := e.evalExpr(expr.args[1])
		switch left := a.(type) {
		case ruspInt:
			return ruspBool(intCompare[name](int32(left), int32(b.(ruspInt))))
		case ruspFloat:
			return ruspBool(floatCompare[name](float64(left), float64(b.(ruspFloat))))
		}
	}
	if apply, ok := boolOps[name]; ok {
		a := e.evalExpr(expr.args[0]).(ruspBool)
		b := e.evalExpr(expr.args[1]).(ruspBool)
		return ruspBool(apply(bool(a), bool(b)))
	}

	panic("internal: unknown builtin reached evaluation: " + name)
}

func (e *exec) visitIfExpr(expr *ifExpr) R {
	// only the selected branch is evaluated
	if bool(e.evalExpr(expr.condition).(ruspBool)) {
		return e.evalExpr(expr.thenBranch)
	}
	return e.evalExpr(expr.elseBranch)
}

func (e *exec) visitLetExpr(expr *letExpr) R {
	v := e.evalExpr(expr.value)
	// type from check time and value from just now enter together;
	// the binding stays in the staging scope until the whole line
	// succeeds
	e.env.define(expr.name.lexeme, binding{vtype: expr.vtype, val: v})
	return v
}
