package internal

import (
	"errors"
	"fmt"
)

// Lexer errors
var errIllegalChar = errors.New("Illegal character")
var errUnclosedString = errors.New("Closing \" was expected")
var errInvalidNumber = errors.New("Invalid number literal")

// Parser errors
var errUnclosedParen = errors.New("Expect ')' after expression")
var errEmptyList = errors.New("Empty list")
var errExpectedOperator = errors.New("Expected operator symbol after '('")
var errIfArity = errors.New("If requires 3 arguments")
var errLetArity = errors.New("Let requires at least 2 arguments")
var errLetName = errors.New("Let binding must have a symbol name")
var errUnknownType = errors.New("Unknown type")
var errInvalidAnnotation = errors.New("Invalid type annotation")
var errUnexpectedToken = errors.New("Unexpected token")
var errUnexpectedEOF = errors.New("Unexpected end of input")
var errTrailingInput = errors.New("Unexpected input after expression")

// Runtime errors
var errDivisionByZero = errors.New("Division by zero")

// parseError aborts the current line before checking starts.
type parseError struct {
	err  error
	line int
	pos  int
}

func (e *parseError) Error() string {
	return fmt.Sprintf("%s (at %d:%d)", e.err, e.line, e.pos)
}

// typeError is raised by the checker before any evaluation.
type typeError struct {
	msg string
}

func (e *typeError) Error() string {
	return e.msg
}

// runtimeError is raised only for operations that pass type checking
// but fail on actual values.
type runtimeError struct {
	msg string
}

func (e *runtimeError) Error() string {
	return e.msg
}
