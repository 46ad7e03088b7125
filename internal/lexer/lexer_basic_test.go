package lexer

import "testing"

func TestNextTokenBasic(t *testing.T) {
	input := `int x;
if (x < 10) { x = x + 1; }`

	tests := []struct {
		kind   Kind
		lexeme string
	}{
		{KEYWORD, "int"},
		{IDENT, "x"},
		{SYMBOL, ";"},
		{KEYWORD, "if"},
		{SYMBOL, "("},
		{IDENT, "x"},
		{SYMBOL, "<"},
		{NUM, "10"},
		{SYMBOL, ")"},
		{SYMBOL, "{"},
		{IDENT, "x"},
		{SYMBOL, "="},
		{IDENT, "x"},
		{SYMBOL, "+"},
		{NUM, "1"},
		{SYMBOL, ";"},
		{SYMBOL, "}"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.kind {
			t.Fatalf("token %d: kind = %s, want %s (lexeme %q)", i, tok.Kind, tt.kind, tok.Lexeme)
		}
		if tok.Lexeme != tt.lexeme {
			t.Fatalf("token %d: lexeme = %q, want %q", i, tok.Lexeme, tt.lexeme)
		}
	}
}

func TestKeywordsAreNotIdentifiers(t *testing.T) {
	for _, kw := range Keywords {
		l := New(kw)
		tok := l.NextToken()
		if tok.Kind != KEYWORD {
			t.Errorf("%q: kind = %s, want KEYWORD", kw, tok.Kind)
		}
	}
}

func TestEqualityVsAssignment(t *testing.T) {
	l := New("a = b == c")
	want := []string{"a", "=", "b", "==", "c"}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Lexeme != w {
			t.Fatalf("token %d: lexeme = %q, want %q", i, tok.Lexeme, w)
		}
	}
}

func TestWhitespaceAndCommentsAreTrivia(t *testing.T) {
	l := New("  /* comment */\n\tint")
	tok := l.NextToken()
	if tok.Kind != KEYWORD || tok.Lexeme != "int" {
		t.Fatalf("got %v, want (KEYWORD, int)", tok)
	}
}

func TestPreserveTrivia(t *testing.T) {
	l := New("/* c */ int", WithPreserveTrivia(true))
	tok := l.NextToken()
	if tok.Kind != COMMENT {
		t.Fatalf("first token kind = %s, want COMMENT", tok.Kind)
	}
	tok = l.NextToken()
	if tok.Kind != WHITESPACE {
		t.Fatalf("second token kind = %s, want WHITESPACE", tok.Kind)
	}
	tok = l.NextToken()
	if tok.Kind != KEYWORD || tok.Lexeme != "int" {
		t.Fatalf("third token = %v, want (KEYWORD, int)", tok)
	}
}
