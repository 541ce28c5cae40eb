// Package token は lispy のトークン（字句）を定義するパッケージ。
// レキサーが入力文字列を分割した最小単位がトークンであり、
// パーサーはこのトークン列を入力として構文解析を行う。
package token

// TokenType はトークンの種類を文字列で表す型。
type TokenType string

const (
	EOF = "EOF" // 入力の終端

	// 括弧以外のすべての字句。数値か記号かは ast.Classify が決める。
	ATOM = "ATOM"

	// デリミタ（区切り文字）
	LPAREN = "("
	RPAREN = ")"
)

// Token はトークンの型とリテラル値のペア。
type Token struct {
	Type    TokenType
	Literal string
}

// delimiters は構造的な意味を持つ字句のマップ。
var delimiters = map[string]TokenType{
	"(": LPAREN,
	")": RPAREN,
}

// LookupType は字句が括弧かどうかを判定する。
// 括弧であればそのトークン型を、そうでなければATOMを返す。
func LookupType(literal string) TokenType {
	if tok, ok := delimiters[literal]; ok {
		return tok
	}
	return ATOM
}
