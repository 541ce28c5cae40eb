// Package repl は lispy のREPL（Read-Eval-Print Loop）を実装するパッケージ。
// ユーザーが入力した行をパース → 評価し、結果またはエラーを表示する。
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"lispy/evaluator"
	"lispy/object"
	"lispy/parser"
)

// PROMPT はREPLのプロンプト文字列。
const PROMPT = "lispy> "

// Options はREPLセッションの設定。
type Options struct {
	Strict      bool      // 束縛のない記号をエラーにする
	StrictParse bool      // 1行に2つ以上の式があればエラーにする
	Trace       io.Writer // nil でなければパーサーのトレースを出力する
}

func (o Options) environment() *object.Environment {
	if o.Strict {
		return evaluator.NewStandardEnvironment(object.WithStrict())
	}
	return evaluator.NewStandardEnvironment()
}

func (o Options) parserOptions() []parser.Option {
	opts := []parser.Option{}
	if o.StrictParse {
		opts = append(opts, parser.Strict())
	}
	if o.Trace != nil {
		opts = append(opts, parser.Trace(o.Trace))
	}
	return opts
}

// Start はREPLを起動する。
// 入力ストリームから1行ずつ読み取り、各行の先頭の式を評価して出力ストリームに書き出す。
// 環境（env）をループ全体で共有することで、define の束縛がセッション中持続する。
func Start(in io.Reader, out io.Writer, opts Options) {
	scanner := bufio.NewScanner(in)
	env := opts.environment()
	popts := opts.parserOptions()

	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			// 長すぎる行などで読み取りが失敗した場合は理由を表示して終わる
			if err := scanner.Err(); err != nil {
				io.WriteString(out, "\n")
				printError(out, err)
			}
			return
		}

		line := scanner.Text()
		exp, err := parser.Parse(line, popts...)
		if err != nil {
			// 空行は何もしない
			if errors.Is(err, &parser.SyntaxError{Kind: parser.ErrEmpty}) {
				continue
			}
			printError(out, err)
			continue
		}

		evaluated, err := evaluator.Evaluate(exp, env)
		if err != nil {
			printError(out, err)
			continue
		}
		io.WriteString(out, evaluated.Inspect())
		io.WriteString(out, "\n")
	}
}

// Run は入力全体をプログラムとしてパースし、全ての式を順に評価する。
// 各式の結果を出力し、最初のエラーで中断してそれを返す。
func Run(in io.Reader, out io.Writer, opts Options) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	program, err := parser.ParseAll(string(src), opts.parserOptions()...)
	if err != nil {
		return err
	}

	env := opts.environment()
	for _, exp := range program {
		evaluated, err := evaluator.Evaluate(exp, env)
		if err != nil {
			return err
		}
		io.WriteString(out, evaluated.Inspect())
		io.WriteString(out, "\n")
	}

	return nil
}

// printError はエラーを種類付きで出力する。
func printError(out io.Writer, err error) {
	var serr *parser.SyntaxError
	var rerr *evaluator.RuntimeError

	switch {
	case errors.As(err, &serr):
		fmt.Fprintf(out, "SyntaxError: %s\n", serr.Msg)
	case errors.As(err, &rerr):
		fmt.Fprintf(out, "RuntimeError: %s\n", rerr.Msg)
	default:
		fmt.Fprintf(out, "error: %s\n", err)
	}
}
