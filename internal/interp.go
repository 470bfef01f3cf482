package internal

import (
	log "github.com/sirupsen/logrus"
)

// IPrinter is the output collaborator print and println write to
type IPrinter interface {
	Print(a ...interface{}) (n int, err error)
	Println(a ...interface{}) (n int, err error)
}

// Result is what the REPL echoes for a successful line
type Result struct {
	Value string
	Type  string
}

// Session keeps the persistent top-level scope of a REPL session.
// It lives from interpreter start to process teardown.
type Session struct {
	globals *env
	printer IPrinter
}

func NewSession(printer IPrinter) *Session {
	return &Session{
		globals: newEnv(nil),
		printer: printer,
	}
}

// RunLine feeds one top-level expression through
// scan → parse → check → eval. A failing line reports an error and
// leaves the session scope untouched.
func (s *Session) RunLine(source string) (Result, error) {
	state := newState(source)

	lx := &lexer{state: state, line: 1}
	lx.scan()
	if !state.valid() {
		return Result{}, state.firstError()
	}
	log.WithField("tokens", len(state.tokens)).Debug("scanned")

	ps := &parser{state: state}
	ps.parse()
	if !state.valid() {
		return Result{}, state.firstError()
	}
	log.Debug("parsed")

	ck := newChecker(state, s.globals)
	t, err := ck.check(state.expr)
	if err != nil {
		return Result{}, err
	}
	log.WithField("type", t.String()).Debug("checked")

	// lets evaluate into a staging scope chained onto the session
	// scope: a failing line commits nothing, not even lets that
	// finished before the failure
	staging := newEnv(s.globals)
	ex := &exec{state: state, env: staging, printer: s.printer}
	v, err := ex.interpret(state.expr)
	if err != nil {
		return Result{}, err
	}
	for name, b := range staging.values {
		s.globals.bind(name, b)
	}

	return Result{Value: v.repr(), Type: t.String()}, nil
}
