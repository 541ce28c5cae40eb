package ast

import (
	"lispy/token"
	"math"
	"testing"
)

// TestString は式木のString()メソッドが正しく動作するかテストする。
// `(define x (+ 1 2.5))` を手動で組み立てて出力を検証する。
func TestString(t *testing.T) {
	form := &Form{
		Token: token.Token{Type: token.LPAREN, Literal: "("},
		Elements: []Expression{
			&Symbol{Token: token.Token{Type: token.ATOM, Literal: "define"}, Name: "define"},
			&Symbol{Token: token.Token{Type: token.ATOM, Literal: "x"}, Name: "x"},
			&Form{
				Token: token.Token{Type: token.LPAREN, Literal: "("},
				Elements: []Expression{
					&Symbol{Token: token.Token{Type: token.ATOM, Literal: "+"}, Name: "+"},
					&Integer{Token: token.Token{Type: token.ATOM, Literal: "1"}, Value: 1},
					&Float{Token: token.Token{Type: token.ATOM, Literal: "2.5"}, Value: 2.5},
				},
			},
		},
	}

	if form.String() != "(define x (+ 1 2.5))" {
		t.Errorf("form.String() wrong. got=%q", form.String())
	}

	head, ok := form.Head()
	if !ok || head != "define" {
		t.Errorf("form.Head() wrong. got=(%q, %t)", head, ok)
	}

	empty := &Form{}
	if _, ok := empty.Head(); ok {
		t.Errorf("empty form must not have a head")
	}
	if empty.String() != "()" {
		t.Errorf("empty.String() wrong. got=%q", empty.String())
	}
}

func TestClassifyInteger(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"42", 42},
		{"0", 0},
		{"-7", -7},
		{"+3", 3},
	}

	for _, tt := range tests {
		atom := Classify(tt.input)
		i, ok := atom.(*Integer)
		if !ok {
			t.Errorf("Classify(%q) is not *Integer. got=%T", tt.input, atom)
			continue
		}
		if i.Value != tt.expected {
			t.Errorf("Classify(%q) wrong value. expected=%d, got=%d",
				tt.input, tt.expected, i.Value)
		}
		if i.TokenLiteral() != tt.input {
			t.Errorf("TokenLiteral wrong. expected=%q, got=%q",
				tt.input, i.TokenLiteral())
		}
	}
}

func TestClassifyFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"3.14", 3.14},
		{"-0.5", -0.5},
		{"1e3", 1000},
		{".5", 0.5},
		// int64 に収まらない整数は浮動小数点数に落ちる
		{"99999999999999999999", 1e20},
	}

	for _, tt := range tests {
		atom := Classify(tt.input)
		f, ok := atom.(*Float)
		if !ok {
			t.Errorf("Classify(%q) is not *Float. got=%T", tt.input, atom)
			continue
		}
		if math.Abs(f.Value-tt.expected) > 1e-9*math.Max(1, math.Abs(tt.expected)) {
			t.Errorf("Classify(%q) wrong value. expected=%g, got=%g",
				tt.input, tt.expected, f.Value)
		}
	}
}

func TestClassifySymbol(t *testing.T) {
	tests := []string{"foo", "-", "+", "define", "null?", "1/2", "1.2.3", "x1"}

	for _, input := range tests {
		atom := Classify(input)
		sym, ok := atom.(*Symbol)
		if !ok {
			t.Errorf("Classify(%q) is not *Symbol. got=%T", input, atom)
			continue
		}
		if sym.Name != input {
			t.Errorf("Classify(%q) wrong name. got=%q", input, sym.Name)
		}
	}
}

func TestClassifyOutOfRangeFloat(t *testing.T) {
	tests := []struct {
		input string
		sign  int
	}{
		{"1e400", 1},
		{"-1e400", -1},
	}

	for _, tt := range tests {
		atom := Classify(tt.input)
		f, ok := atom.(*Float)
		if !ok {
			t.Errorf("Classify(%q) is not *Float. got=%T", tt.input, atom)
			continue
		}
		if !math.IsInf(f.Value, tt.sign) {
			t.Errorf("Classify(%q) wrong value. expected Inf(%d), got=%g",
				tt.input, tt.sign, f.Value)
		}
	}
}
