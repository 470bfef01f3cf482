package internal

// TokenType Holds a token kind
type TokenType int

const (
	EOF TokenType = iota - 1

	// Delimiters.
	// (, )
	LEFT_PAREN
	RIGHT_PAREN

	// Literals.
	// 42, 1.5, "text", true, false
	INTEGER
	FLOAT
	STRING
	TRUE
	FALSE

	// Operators, keywords and variable names are all symbols:
	// +, -., <=, and, let, if, type-of, x, ...
	SYMBOL
)

type token struct {
	token   TokenType
	lexeme  string
	literal interface{}
	line    int
	pos     int
}
