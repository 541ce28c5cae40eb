// Package parser は lispy の再帰下降パーサーを実装するパッケージ。
// レキサーから受け取ったトークン列を、入れ子になった式木に変換する。
//
// 括弧の入れ子はそのまま再帰呼び出しの深さになる。深さの上限は
// goroutine のスタック上限（既定 1GB）だけで、それを超えると
// ランタイムが致命的エラーで停止する。人工的な深さ制限は設けていない。
package parser

import (
	"fmt"
	"io"
	"lispy/ast"
	"lispy/lexer"
	"lispy/token"
)

// ErrorKind は構文エラーの種類。
type ErrorKind int

const (
	ErrEmpty           ErrorKind = iota + 1 // 解析するトークンがない
	ErrUnclosed                             // '(' が閉じられないまま入力が終わった
	ErrUnexpectedClose                      // 対応する '(' のない ')'
	ErrTrailing                             // 厳格モードで最初の式の後に字句が残っている
)

func (k ErrorKind) String() string {
	switch k {
	case ErrEmpty:
		return "empty input"
	case ErrUnclosed:
		return "unclosed form"
	case ErrUnexpectedClose:
		return "unexpected close"
	case ErrTrailing:
		return "trailing tokens"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// SyntaxError はパース時のエラー。
// 部分的な式木は決して返さず、このエラーだけが呼び出し元に伝わる。
type SyntaxError struct {
	Kind ErrorKind
	Msg  string
}

func (e *SyntaxError) Error() string { return e.Msg }

// Is は errors.Is で種類だけを比較できるようにする。
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	return ok && t.Kind == e.Kind
}

func newSyntaxError(kind ErrorKind, format string, a ...interface{}) *SyntaxError {
	return &SyntaxError{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// Option はパーサーの挙動を切り替える関数。
type Option func(*Parser)

// Strict は最初の式の後に字句が残っていればエラーにする。
// 既定では残りの字句は黙って無視される。
func Strict() Option {
	return func(p *Parser) { p.strict = true }
}

// Trace は解析関数の入口と出口を w に出力する。デバッグ用。
func Trace(w io.Writer) Option {
	return func(p *Parser) { p.tracer = w }
}

// Parser は lispy のパーサー。
// レキサーからトークンを読み取り、式木を構築する。
type Parser struct {
	l *lexer.Lexer

	curToken token.Token // まだ消費していない先頭のトークン

	strict bool

	tracer     io.Writer
	traceLevel int
}

// New はレキサーからパーサーを生成し、最初のトークンを読み込む。
func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{l: l}
	for _, opt := range opts {
		opt(p)
	}

	p.nextToken()

	return p
}

// Parse は文字列の先頭にある式を1つだけパースして返す。
func Parse(input string, opts ...Option) (ast.Expression, error) {
	p := New(lexer.New(input), opts...)
	return p.ParseExpression()
}

// ParseAll は文字列に含まれる全てのトップレベルの式をパースする。
func ParseAll(input string, opts ...Option) ([]ast.Expression, error) {
	p := New(lexer.New(input), opts...)
	return p.ParseProgram()
}

// nextToken は次のトークンに進む。
func (p *Parser) nextToken() {
	p.curToken = p.l.NextToken()
}

// curTokenIs は現在のトークンが指定された型か判定する。
func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

// ParseExpression はトップレベルの式を1つパースする。
// 厳格モードでなければ、その後に残った字句は無視する。
func (p *Parser) ParseExpression() (ast.Expression, error) {
	exp, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.strict && !p.curTokenIs(token.EOF) {
		return nil, newSyntaxError(ErrTrailing,
			"unexpected trailing tokens starting at %q", p.curToken.Literal)
	}

	return exp, nil
}

// ParseProgram は EOF に到達するまでトップレベルの式を順にパースする。
// 空の入力は空のプログラムであり、エラーではない。
func (p *Parser) ParseProgram() ([]ast.Expression, error) {
	program := []ast.Expression{}

	for !p.curTokenIs(token.EOF) {
		exp, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		program = append(program, exp)
	}

	return program, nil
}

// parseExpression は現在のトークンから式を1つ読み取る。
// '(' なら Form を、')' ならエラーを、それ以外ならアトムを返す。
func (p *Parser) parseExpression() (ast.Expression, error) {
	defer p.untrace(p.trace("parseExpression"))

	tok := p.curToken

	switch tok.Type {
	case token.EOF:
		return nil, newSyntaxError(ErrEmpty, "unexpected EOF")
	case token.LPAREN:
		p.nextToken()
		return p.parseForm(tok)
	case token.RPAREN:
		return nil, newSyntaxError(ErrUnexpectedClose, "unexpected close parenthesis")
	default:
		p.nextToken()
		return ast.Classify(tok.Literal), nil
	}
}

// parseForm は '(' の直後から対応する ')' までの要素をパースする。
// ')' を見る前に入力が尽きた場合は、途中までの Form を返さずにエラーにする。
func (p *Parser) parseForm(open token.Token) (ast.Expression, error) {
	defer p.untrace(p.trace("parseForm"))

	form := &ast.Form{Token: open, Elements: []ast.Expression{}}

	for !p.curTokenIs(token.RPAREN) {
		if p.curTokenIs(token.EOF) {
			return nil, newSyntaxError(ErrUnclosed, "no closing parenthesis")
		}

		el, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		form.Elements = append(form.Elements, el)
	}

	// 閉じ括弧を消費する
	p.nextToken()

	return form, nil
}
