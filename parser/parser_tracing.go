// parser_tracing.go はパーサーのデバッグ用トレーシング機能を提供する。
// Trace オプションで出力先が設定されている場合に限り、
// 各解析関数の入口と出口でログを出力する。
package parser

import (
	"fmt"
	"strings"
)

const traceIdentPlaceholder string = "\t"

// identLevel は現在のトレースレベルに応じたインデント文字列を返す。
func (p *Parser) identLevel() string {
	return strings.Repeat(traceIdentPlaceholder, p.traceLevel-1)
}

// tracePrint はインデント付きでメッセージを出力する。
func (p *Parser) tracePrint(fs string) {
	fmt.Fprintf(p.tracer, "%s%s\n", p.identLevel(), fs)
}

// trace は解析関数の入口で呼ぶ。"BEGIN <msg>" を出力してインデントを増やす。
func (p *Parser) trace(msg string) string {
	if p.tracer == nil {
		return msg
	}
	p.traceLevel++
	p.tracePrint(fmt.Sprintf("BEGIN %s %q", msg, p.curToken.Literal))
	return msg
}

// untrace は解析関数の出口で呼ぶ。"END <msg>" を出力してインデントを減らす。
func (p *Parser) untrace(msg string) {
	if p.tracer == nil {
		return
	}
	p.tracePrint("END " + msg)
	p.traceLevel--
}
