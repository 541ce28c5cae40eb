package lexer

import (
	"lispy/token"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"(+ 1 2)", []string{"(", "+", "1", "2", ")"}},
		{"", []string{}},
		{"   \t\n ", []string{}},
		{"((3) (4))", []string{"(", "(", "3", ")", "(", "4", ")", ")"}},
		{"(define  x\t5)", []string{"(", "define", "x", "5", ")"}},
		{"foo)bar", []string{"foo", ")", "bar"}},
		{"3.14 -2 abc?", []string{"3.14", "-2", "abc?"}},
	}

	for _, tt := range tests {
		got := Tokenize(tt.input)
		if len(got) != len(tt.expected) {
			t.Fatalf("Tokenize(%q) wrong length. expected=%q, got=%q",
				tt.input, tt.expected, got)
		}
		for i := range tt.expected {
			if got[i] != tt.expected[i] {
				t.Errorf("Tokenize(%q)[%d] wrong. expected=%q, got=%q",
					tt.input, i, tt.expected[i], got[i])
			}
		}
	}
}

func TestNextToken(t *testing.T) {
	input := `(define pi2 (* 2 pi))`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LPAREN, "("},
		{token.ATOM, "define"},
		{token.ATOM, "pi2"},
		{token.LPAREN, "("},
		{token.ATOM, "*"},
		{token.ATOM, "2"},
		{token.ATOM, "pi"},
		{token.RPAREN, ")"},
		{token.RPAREN, ")"},
		{token.EOF, ""},
		{token.EOF, ""},
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
