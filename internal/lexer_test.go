package internal

import "testing"

func scanOK(t *testing.T, source string) []*token {
	t.Helper()
	state := newInterpreterState(source, nil, nil)
	tokens := newLexer(source, state).scan()
	if !state.valid() {
		t.Fatalf("source:\n%s\nunexpected lex errors: %v", source, state.errors)
	}
	return tokens
}

func kinds(tokens []*token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.kind
	}
	return out
}

func assertKinds(t *testing.T, source string, want ...TokenType) {
	t.Helper()
	got := kinds(scanOK(t, source))
	if len(got) != len(want) {
		t.Fatalf("source %q: got %d tokens %v, want %d %v", source, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("source %q: token %d is %v, want %v", source, i, got[i], want[i])
		}
	}
}

func TestLexerPunctuation(t *testing.T) {
	assertKinds(t, "(){},.-+;*", LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE,
		COMMA, DOT, MINUS, PLUS, SEMICOLON, STAR, EOF)
}

func TestLexerTwoCharOperators(t *testing.T) {
	assertKinds(t, "! != = == < <= > >=",
		BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL, LESS, LESS_EQUAL, GREATER, GREATER_EQUAL, EOF)
}

func TestLexerLineComment(t *testing.T) {
	tokens := scanOK(t, "1 // a trailing comment\n2")
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3 (two numbers plus EOF): %v", len(tokens), kinds(tokens))
	}
	if tokens[0].kind != NUMBER || tokens[1].kind != NUMBER {
		t.Errorf("got kinds %v, want [NUMBER NUMBER EOF]", kinds(tokens))
	}
	if tokens[1].line != 2 {
		t.Errorf("second number reported on line %d, want 2", tokens[1].line)
	}
}

func TestLexerNumbers(t *testing.T) {
	tokens := scanOK(t, "123")
	if tokens[0].literal.(float64) != 123 {
		t.Errorf("got %v, want 123", tokens[0].literal)
	}

	tokens = scanOK(t, "1.5")
	if tokens[0].literal.(float64) != 1.5 {
		t.Errorf("got %v, want 1.5", tokens[0].literal)
	}
}

// "123." lexes as NUMBER("123") followed by DOT, not as a trailing-dot
// number: a fractional part requires a digit after the dot.
func TestLexerTrailingDotIsNotPartOfNumber(t *testing.T) {
	assertKinds(t, "123.", NUMBER, DOT, EOF)
}

func TestLexerStringEscapes(t *testing.T) {
	tokens := scanOK(t, `"a\"b\\c"`)
	if tokens[0].literal.(string) != `a"b\c` {
		t.Errorf("got %q, want %q", tokens[0].literal, `a"b\c`)
	}
}

func TestLexerMultilineString(t *testing.T) {
	tokens := scanOK(t, "\"a\nb\"\nnil")
	if tokens[0].literal.(string) != "a\nb" {
		t.Errorf("got %q", tokens[0].literal)
	}
	if tokens[1].line != 3 {
		t.Errorf("nil reported on line %d, want 3", tokens[1].line)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	state := newInterpreterState(`"unterminated`, nil, nil)
	newLexer(`"unterminated`, state).scan()
	if state.valid() {
		t.Fatal("expected an unterminated-string error")
	}
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	assertKinds(t, "and class else false fun for if nil or print return super this true var while",
		AND, CLASS, ELSE, FALSE, FUN, FOR, IF, NIL, OR, PRINT, RETURN, SUPER, THIS, TRUE, VAR, WHILE, EOF)
	assertKinds(t, "classroom", IDENTIFIER, EOF)
}

func TestLexerIllegalCharacter(t *testing.T) {
	state := newInterpreterState("1 @ 2", nil, nil)
	newLexer("1 @ 2", state).scan()
	if state.valid() {
		t.Fatal("expected an illegal-character error")
	}
}
