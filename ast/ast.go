// Package ast は lispy の式木（抽象構文木）を定義するパッケージ。
// パーサーがトークン列から組み立てた結果がこの式木になる。
//
// 式は閉じた直和型で、アトム（Integer, Float, Symbol）か
// 式の順序付き列である Form のいずれかである。
// 外部パッケージから新しい種類の式を追加できないよう、
// マーカーメソッドは非公開にしてある。
package ast

import (
	"bytes"
	"errors"
	"lispy/token"
	"strconv"
	"strings"
)

// Node は式木の全ノードが実装する基本インターフェース。
// TokenLiteral() はデバッグ用にトークンのリテラル値を返す。
// String() はノードを人間が読める文字列に変換する。
type Node interface {
	TokenLiteral() string
	String() string
}

// Expression は「式」を表すノードのインターフェース。
type Expression interface {
	Node
	expressionNode()
}

// Atom はそれ以上分解できない式（整数・浮動小数点数・記号）。
type Atom interface {
	Expression
	atomNode()
}

// Integer は整数リテラルを表すアトム。
type Integer struct {
	Token token.Token
	Value int64
}

func (i *Integer) expressionNode()      {}
func (i *Integer) atomNode()            {}
func (i *Integer) TokenLiteral() string { return i.Token.Literal }
func (i *Integer) String() string       { return strconv.FormatInt(i.Value, 10) }

// Float は浮動小数点数リテラルを表すアトム。
type Float struct {
	Token token.Token
	Value float64
}

func (f *Float) expressionNode()      {}
func (f *Float) atomNode()            {}
func (f *Float) TokenLiteral() string { return f.Token.Literal }
func (f *Float) String() string       { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// Symbol は記号（名前）を表すアトム。
// 数値として解釈できなかった字句はすべて記号になる。
type Symbol struct {
	Token token.Token
	Name  string
}

func (s *Symbol) expressionNode()      {}
func (s *Symbol) atomNode()            {}
func (s *Symbol) TokenLiteral() string { return s.Token.Literal }
func (s *Symbol) String() string       { return s.Name }

// Form は括弧で囲まれた式の列 `(e1 e2 ...)`。
// 要素の順序には意味がある（先頭が演算子、残りが被演算子）。
type Form struct {
	Token    token.Token // '(' トークン
	Elements []Expression
}

func (f *Form) expressionNode()      {}
func (f *Form) TokenLiteral() string { return f.Token.Literal }

// String は `(e1 e2 ...)` の形式で文字列を返す。
func (f *Form) String() string {
	var out bytes.Buffer

	elements := []string{}
	for _, el := range f.Elements {
		elements = append(elements, el.String())
	}

	out.WriteString("(")
	out.WriteString(strings.Join(elements, " "))
	out.WriteString(")")

	return out.String()
}

// Head は Form の先頭要素が記号であればその名前を返す。
// 特殊形式（define, if, quote）の判定に使う。
func (f *Form) Head() (string, bool) {
	if len(f.Elements) == 0 {
		return "", false
	}
	sym, ok := f.Elements[0].(*Symbol)
	if !ok {
		return "", false
	}
	return sym.Name, true
}

// Classify は1つの字句をアトムに分類する。
// 整数として完全に解釈できれば Integer、次に浮動小数点数として
// 解釈できれば Float、どちらでもなければその字句をそのまま名前とする
// Symbol を返す。この順序は固定で、失敗することはない。
// float64 の範囲を超える数値リテラルは ±Inf になる。
func Classify(literal string) Atom {
	tok := token.Token{Type: token.ATOM, Literal: literal}

	if v, err := strconv.ParseInt(literal, 10, 64); err == nil {
		return &Integer{Token: tok, Value: v}
	}
	// 範囲外の浮動小数点数は ±Inf として受け入れる
	if v, err := strconv.ParseFloat(literal, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return &Float{Token: tok, Value: v}
	}
	return &Symbol{Token: tok, Name: literal}
}
