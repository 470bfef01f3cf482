package internal

import (
	"testing"
)

func scanSource(t *testing.T, source string) []token {
	t.Helper()
	state := newState(source)
	lx := &lexer{state: state, line: 1}
	lx.scan()
	if !state.valid() {
		t.Fatalf("Error on: \n%s\n\tunexpected scan error: %s", source, state.firstError())
	}
	return state.tokens
}

func checkTokens(t *testing.T, source string, want []TokenType) {
	t.Helper()
	tokens := scanSource(t, source)
	if len(tokens) != len(want) {
		t.Fatalf("Error on: \n%s\n\tgot %d tokens, want %d", source, len(tokens), len(want))
	}
	for i, tk := range tokens {
		if tk.token != want[i] {
			t.Errorf("Error on: \n%s\n\ttoken %d is %d, want %d", source, i, tk.token, want[i])
		}
	}
}

func TestScanTokens(t *testing.T) {
	checkTokens(t, "(let x 10)", []TokenType{
		LEFT_PAREN, SYMBOL, SYMBOL, INTEGER, RIGHT_PAREN, EOF,
	})
	checkTokens(t, "(+. 1.5 2.5)", []TokenType{
		LEFT_PAREN, SYMBOL, FLOAT, FLOAT, RIGHT_PAREN, EOF,
	})
	checkTokens(t, `(if true "a" "b")`, []TokenType{
		LEFT_PAREN, SYMBOL, TRUE, STRING, STRING, RIGHT_PAREN, EOF,
	})
	checkTokens(t, "", []TokenType{EOF})
}

func TestScanSymbols(t *testing.T) {
	for _, sym := range []string{"+", "-", "*", "/", "+.", "-.", "*.", "/.",
		"=", "<", ">", "<=", ">=", "and", "or", "not", "type-of", "x", "my_var?"} {
		tokens := scanSource(t, sym)
		if tokens[0].token != SYMBOL || tokens[0].lexeme != sym {
			t.Errorf("%q scanned as %d %q", sym, tokens[0].token, tokens[0].lexeme)
		}
	}
}

func TestScanNumbers(t *testing.T) {
	// integers keep their raw text and carry no literal
	tokens := scanSource(t, "99999999999999999999")
	if tokens[0].token != INTEGER || tokens[0].lexeme != "99999999999999999999" {
		t.Errorf("integer lexeme %q", tokens[0].lexeme)
	}

	tokens = scanSource(t, "-42")
	if tokens[0].token != INTEGER || tokens[0].lexeme != "-42" {
		t.Errorf("negative integer lexeme %q", tokens[0].lexeme)
	}

	tokens = scanSource(t, "-1.25")
	if tokens[0].token != FLOAT || tokens[0].literal.(float64) != -1.25 {
		t.Errorf("float literal %v", tokens[0].literal)
	}
}

func TestScanStrings(t *testing.T) {
	tokens := scanSource(t, `"hello"`)
	if tokens[0].literal.(string) != "hello" {
		t.Errorf("string literal %q", tokens[0].literal)
	}

	tokens = scanSource(t, `"a\"b\\c\n"`)
	if tokens[0].literal.(string) != "a\"b\\c\n" {
		t.Errorf("escaped string literal %q", tokens[0].literal)
	}
}

func TestScanComments(t *testing.T) {
	checkTokens(t, "42 ; the answer", []TokenType{INTEGER, EOF})
	checkTokens(t, "; just a comment", []TokenType{EOF})

	// line tracking survives a comment's newline
	tokens := scanSource(t, "1 ; one\n2")
	if tokens[0].line != 1 || tokens[1].line != 2 {
		t.Errorf("token lines %d, %d, want 1, 2", tokens[0].line, tokens[1].line)
	}
	if tokens[1].pos != 0 {
		t.Errorf("token position %d, want 0", tokens[1].pos)
	}
}

func TestScanErrors(t *testing.T) {
	state := newState(`"abc`)
	lx := &lexer{state: state, line: 1}
	lx.scan()
	if state.valid() {
		t.Fatal("expected an unclosed string error")
	}

	state = newState("@")
	lx = &lexer{state: state, line: 1}
	lx.scan()
	if state.valid() {
		t.Fatal("expected an illegal character error")
	}
}
