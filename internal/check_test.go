package internal

import (
	"testing"
)

func checkOver(t *testing.T, source string, globals *env) (ltype, expr, error) {
	t.Helper()
	state := newState(source)
	lx := &lexer{state: state, line: 1}
	lx.scan()
	if !state.valid() {
		t.Fatalf("scan error: %s", state.firstError())
	}
	ps := &parser{state: state}
	ps.parse()
	if !state.valid() {
		t.Fatalf("parse error: %s", state.firstError())
	}
	ty, err := newChecker(state, globals).check(state.expr)
	return ty, state.expr, err
}

func TestCheckerNeverWritesGlobals(t *testing.T) {
	globals := newEnv(nil)
	ty, _, err := checkOver(t, "(let x 1)", globals)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if ty != typeI32 {
		t.Errorf("got %s, want i32", ty)
	}
	if _, ok := globals.get("x"); ok {
		t.Error("checking a let must not bind the session scope")
	}
}

func TestCheckerReadsGlobals(t *testing.T) {
	globals := newEnv(nil)
	globals.define("x", binding{vtype: typeF64, val: ruspFloat(1.5)})
	ty, _, err := checkOver(t, "(+. x 1.0)", globals)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if ty != typeF64 {
		t.Errorf("got %s, want f64", ty)
	}
}

func TestCheckerAnnotatesLet(t *testing.T) {
	_, e, err := checkOver(t, "(let x 1.5)", newEnv(nil))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if let := e.(*letExpr); let.vtype != typeF64 {
		t.Errorf("let annotated with %s, want f64", let.vtype)
	}
}

func TestCheckerAnnotatesTypeOf(t *testing.T) {
	ty, e, err := checkOver(t, "(type-of 42)", newEnv(nil))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if ty != typeString {
		t.Errorf("type-of checks to %s, want String", ty)
	}
	if call := e.(*callExpr); call.argType != typeI32 {
		t.Errorf("operand type recorded as %s, want i32", call.argType)
	}
}

func TestCheckerValidatesIntegerRange(t *testing.T) {
	_, e, err := checkOver(t, "2147483647", newEnv(nil))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if n := e.(*integerExpr); n.value != 2147483647 {
		t.Errorf("literal value %d", n.value)
	}

	_, _, err = checkOver(t, "2147483648", newEnv(nil))
	if err == nil {
		t.Fatal("expected an out of range error")
	}
	if _, ok := err.(*typeError); !ok {
		t.Errorf("expected a type error, got %T", err)
	}
}

func TestCheckerIsolatesBranchScratch(t *testing.T) {
	// lets checked under an if branch or a type-of operand are not
	// visible to sibling expressions
	_, _, err := checkOver(t, "(if false (let x 1) x)", newEnv(nil))
	if err == nil {
		t.Fatal("expected an unbound variable error")
	}
	if err.Error() != "Undefined variable: x" {
		t.Errorf("got %q", err.Error())
	}

	_, _, err = checkOver(t, "(+ (type-of (let x 1)) 1)", newEnv(nil))
	if err == nil || err.Error() != "Type mismatch: expected i32, got String" {
		t.Fatalf("unexpected result: %v", err)
	}
	// same shape, but with the leak the second operand would check
	_, _, err = checkOver(t, `(if true (type-of (let x 1)) (type-of x))`, newEnv(nil))
	if err == nil || err.Error() != "Undefined variable: x" {
		t.Errorf("type-of operand leaked into a sibling: %v", err)
	}
}

func TestStateRecordsPhaseErrors(t *testing.T) {
	state := newState(`(+ 1 "a")`)
	lx := &lexer{state: state, line: 1}
	lx.scan()
	ps := &parser{state: state}
	ps.parse()
	_, err := newChecker(state, newEnv(nil)).check(state.expr)
	if err == nil || err != state.typeError {
		t.Errorf("checker error not recorded on state: %v vs %v", err, state.typeError)
	}

	state = newState("(/ 1 0)")
	lx = &lexer{state: state, line: 1}
	lx.scan()
	ps = &parser{state: state}
	ps.parse()
	if _, cerr := newChecker(state, newEnv(nil)).check(state.expr); cerr != nil {
		t.Fatalf("unexpected check error: %s", cerr)
	}
	ex := &exec{state: state, env: newEnv(nil), printer: &testPrinter{}}
	_, err = ex.interpret(state.expr)
	if err == nil || err != state.runtimeError {
		t.Errorf("runtime error not recorded on state: %v vs %v", err, state.runtimeError)
	}
}

func TestCheckerNestedLetScratch(t *testing.T) {
	// a let nested in a checked expression is visible to the rest of
	// the check but never to the session
	globals := newEnv(nil)
	ty, _, err := checkOver(t, "(+ (let a 1) (let b a))", globals)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if ty != typeI32 {
		t.Errorf("got %s, want i32", ty)
	}
	if _, ok := globals.get("a"); ok {
		t.Error("a leaked into the session scope")
	}
}
