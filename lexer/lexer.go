// Package lexer は入力文字列をトークン列に分割するレキサーを実装するパッケージ。
//
// lispy の字句規則は単純で、'(' と ')' の前後に必ず空白を挿入してから
// 空白の連続で分割するだけである。文字列リテラルやエスケープはない。
package lexer

import (
	"lispy/token"
	"strings"
)

// Tokenize は文字列を字句のスライスに分割する。
// 失敗することはなく、空文字列からは空のスライスを返す。
func Tokenize(input string) []string {
	spaced := strings.NewReplacer("(", " ( ", ")", " ) ").Replace(input)
	return strings.Fields(spaced)
}

// Lexer は分割済みの字句列の上を進むカーソル。
// パーサーはここから1つずつトークンを受け取る。
type Lexer struct {
	words    []string
	position int // 次に返す字句の位置
}

// New は入力文字列からレキサーを生成する。
func New(input string) *Lexer {
	return &Lexer{words: Tokenize(input)}
}

// NextToken は次のトークンを返してカーソルを進める。
// 字句を使い切った後は常に EOF を返す。
func (l *Lexer) NextToken() token.Token {
	if l.position >= len(l.words) {
		return token.Token{Type: token.EOF, Literal: ""}
	}

	word := l.words[l.position]
	l.position++

	return token.Token{Type: token.LookupType(word), Literal: word}
}
