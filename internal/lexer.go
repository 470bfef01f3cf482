package internal

import (
	"strconv"
	"strings"
)

type lexer struct {
	state *interpreterState

	start     int
	current   int
	line      int
	lineStart int
}

func (l *lexer) scan() {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.start = l.current
	l.emit(EOF, nil)
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(LEFT_PAREN, nil)
	case ')':
		l.emit(RIGHT_PAREN, nil)
	case ';':
		// leave the newline to the scan loop so line tracking
		// stays right
		for !l.isAtEnd() && l.peek() != '\n' {
			l.advance()
		}
	case ' ', '\r', '\t':
		// ignore whitespace
	case '\n':
		l.line++
		l.lineStart = l.current
	case '"':
		l.scanString()
	default:
		if isDigit(c) || (c == '-' && isDigit(l.peek())) {
			l.scanNumber()
		} else if isSymbolChar(c) {
			l.scanSymbol()
		} else {
			l.state.setError(errIllegalChar, l.line, l.pos())
		}
	}
}

func (l *lexer) scanString() {
	var sb strings.Builder
	for !l.isAtEnd() && l.peek() != '"' {
		c := l.advance()
		if c == '\\' && !l.isAtEnd() {
			switch l.advance() {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				l.state.setError(errIllegalChar, l.line, l.pos())
				return
			}
			continue
		}
		if c == '\n' {
			l.line++
			l.lineStart = l.current
		}
		sb.WriteByte(c)
	}
	if l.isAtEnd() {
		l.state.setError(errUnclosedString, l.line, l.pos())
		return
	}
	// consume closing "
	l.advance()
	l.emit(STRING, sb.String())
}

func (l *lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
		f, err := strconv.ParseFloat(l.lexeme(), 64)
		if err != nil {
			l.state.setError(errInvalidNumber, l.line, l.pos())
			return
		}
		l.emit(FLOAT, f)
		return
	}
	// Integers carry their raw text: the checker owns the
	// 32-bit range validation.
	l.emit(INTEGER, nil)
}

func (l *lexer) scanSymbol() {
	for isSymbolChar(l.peek()) {
		l.advance()
	}
	switch l.lexeme() {
	case "true":
		l.emit(TRUE, true)
	case "false":
		l.emit(FALSE, false)
	default:
		l.emit(SYMBOL, nil)
	}
}

func (l *lexer) lexeme() string {
	return l.state.source[l.start:l.current]
}

func (l *lexer) pos() int {
	return l.start - l.lineStart
}

func (l *lexer) emit(tk TokenType, literal interface{}) {
	l.state.tokens = append(l.state.tokens, token{
		token:   tk,
		lexeme:  l.lexeme(),
		literal: literal,
		line:    l.line,
		pos:     l.pos(),
	})
}

func (l *lexer) advance() byte {
	l.current++
	return l.state.source[l.current-1]
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.state.source[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.state.source) {
		return 0
	}
	return l.state.source[l.current+1]
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.state.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSymbolChar(c byte) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c) {
		return true
	}
	return strings.IndexByte("+-*/<>=!&|_?.", c) >= 0
}
