package internal

import (
	"fmt"
)

// interpreterState stores the state of one pipeline run: a single
// top-level expression from scan to result.
type interpreterState struct {
	source string
	tokens []token
	expr   expr

	errors []*parseError

	typeError    *typeError
	runtimeError *runtimeError
}

func newState(source string) *interpreterState {
	return &interpreterState{
		source: source,
		errors: make([]*parseError, 0),
	}
}

func (s *interpreterState) setError(err error, line, pos int) {
	s.errors = append(s.errors, &parseError{
		err:  err,
		line: line,
		pos:  pos,
	})
}

func (s *interpreterState) fatalError(err error, line, pos int) {
	s.setError(err, line, pos)
	panic(err)
}

// valid returns true if no parse error has been recorded
func (s *interpreterState) valid() bool {
	return len(s.errors) == 0
}

func (s *interpreterState) firstError() error {
	return s.errors[0]
}

// typeErr aborts checking; recovered at the checker boundary
func (s *interpreterState) typeErr(format string, args ...interface{}) {
	e := &typeError{msg: fmt.Sprintf(format, args...)}
	s.typeError = e
	panic(e)
}

// runtimeErr aborts evaluation; recovered at the evaluator boundary
func (s *interpreterState) runtimeErr(err error) {
	e := &runtimeError{msg: err.Error()}
	s.runtimeError = e
	panic(e)
}
