package lexer

import (
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `(12 + 3.5) * -2 / .5 - 1e3`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{PAREN_OPEN, "("},
		{NUMBER, "12"},
		{PLUS, "+"},
		{NUMBER, "3.5"},
		{PAREN_CLOSE, ")"},
		{ASTERISK, "*"},
		{MINUS, "-"},
		{NUMBER, "2"},
		{SLASH, "/"},
		{NUMBER, ".5"},
		{MINUS, "-"},
		{NUMBER, "1e3"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTokenizeRejectsIdentifiers(t *testing.T) {
	inputs := []string{"x/2", "4*milk", "alert(1)", "2e", "1;2"}
	for _, input := range inputs {
		if _, err := Tokenize(input); err == nil {
			t.Errorf("Tokenize(%q): expected error, got nil", input)
		}
	}
}

func TestTokenizeExponentSign(t *testing.T) {
	tokens, err := Tokenize("2e-3+1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Literal != "2e-3" {
		t.Errorf("expected literal 2e-3, got %q", tokens[0].Literal)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tokens, err := Tokenize("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
}
