// Package evaluator は lispy のTree-walking評価器を実装するパッケージ。
// 式木を再帰的にたどりながら（tree-walking）、各ノードを評価して
// object.Object としての結果を返す。
//
// Form の評価では、先頭が特殊形式（define, if, quote）のキーワードかを
// 先に調べ、そうでなければ通常の関数適用として扱う。
// 再帰の深さは式の入れ子の深さに比例し、goroutine のスタック上限を
// 超えるとランタイムが停止する。
package evaluator

import (
	"fmt"
	"lispy/ast"
	"lispy/object"
)

// シングルトンオブジェクト。
// true, false は常に同じオブジェクトを使い回す。
var (
	TRUE  = &object.Boolean{Value: true}
	FALSE = &object.Boolean{Value: false}
)

// 特殊形式のキーワード。
const (
	DEFINE = "define"
	IF     = "if"
	QUOTE  = "quote"
)

// RuntimeError は評価時のエラー。
// 評価器は式の途中で回復を試みず、最初のエラーをそのまま返す。
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return e.Msg }

// Evaluate は式を評価し、エラーオブジェクトを Go の error に変換して返す。
// 対話シェルなどの呼び出し側はこちらを使う。
func Evaluate(exp ast.Expression, env *object.Environment) (object.Object, error) {
	result := Eval(exp, env)
	if errObj, ok := result.(*object.Error); ok {
		return nil, &RuntimeError{Msg: errObj.Message}
	}
	return result, nil
}

// Eval は式を評価してオブジェクトを返す、評価器のメイン関数。
// 式の型に応じたswitch文で処理を分岐する。
func Eval(exp ast.Expression, env *object.Environment) object.Object {
	switch exp := exp.(type) {

	// 数値アトムはそのまま値になる
	case *ast.Integer:
		return &object.Integer{Value: exp.Value}

	case *ast.Float:
		return &object.Float{Value: exp.Value}

	// Symbol: 環境から値を取得する
	case *ast.Symbol:
		return evalSymbol(exp, env)

	case *ast.Form:
		return evalForm(exp, env)
	}

	return newError("unknown expression: %T", exp)
}

// evalSymbol は記号を評価する。
// 組み込み層、ユーザー層の順に探し、見つからなければ
// 寛容モードでは記号自身を、厳格モードではエラーを返す。
func evalSymbol(sym *ast.Symbol, env *object.Environment) object.Object {
	if val, ok := env.Get(sym.Name); ok {
		return val
	}

	if env.Strict() {
		return newError("symbol not found: %s", sym.Name)
	}

	return &object.Symbol{Name: sym.Name}
}

// evalForm は Form を評価する。
// 空の Form はそのまま空リストになる。
func evalForm(form *ast.Form, env *object.Environment) object.Object {
	if len(form.Elements) == 0 {
		return &object.List{Elements: []object.Object{}}
	}

	if head, ok := form.Head(); ok {
		switch head {
		case DEFINE:
			return evalDefine(form, env)
		case IF:
			return evalIf(form, env)
		case QUOTE:
			return evalQuote(form)
		}
	}

	// 関数適用: まず関数自体を評価する
	function := Eval(form.Elements[0], env)
	if isError(function) {
		return function
	}

	// 引数を左から右に評価する
	args := evalExpressions(form.Elements[1:], env)
	if len(args) == 1 && isError(args[0]) {
		return args[0]
	}

	return applyFunction(function, args)
}

// =====================
// 特殊形式
// =====================

// evalDefine は `(define <symbol> <expression>)` を評価する。
// 値を現在の環境で評価し、ユーザー層に束縛する。
func evalDefine(form *ast.Form, env *object.Environment) object.Object {
	if len(form.Elements) != 3 {
		return newError("malformed define: expected 3 elements, got=%d",
			len(form.Elements))
	}

	target, ok := form.Elements[1].(*ast.Symbol)
	if !ok {
		return newError("malformed define: target must be a symbol, got %s",
			form.Elements[1].String())
	}

	val := Eval(form.Elements[2], env)
	if isError(val) {
		return val
	}

	env.Set(target.Name, val)

	return &object.Definition{Name: target.Name, Value: val}
}

// evalIf は `(if <condition> <consequent> <alternative>)` を評価する。
// 選ばれなかった分岐は評価しない。
func evalIf(form *ast.Form, env *object.Environment) object.Object {
	if len(form.Elements) != 4 {
		return newError("malformed if: expected 4 elements, got=%d",
			len(form.Elements))
	}

	condition := Eval(form.Elements[1], env)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return Eval(form.Elements[2], env)
	}
	return Eval(form.Elements[3], env)
}

// evalQuote は `(quote <expression>)` を評価せずに値へ変換して返す。
func evalQuote(form *ast.Form) object.Object {
	if len(form.Elements) != 2 {
		return newError("malformed quote: expected 2 elements, got=%d",
			len(form.Elements))
	}

	return quoteExpression(form.Elements[1])
}

// quoteExpression は式木をそのままの構造で値に変換する。
// Form は List に、アトムは同じ種類のオブジェクトになる。
func quoteExpression(exp ast.Expression) object.Object {
	switch exp := exp.(type) {
	case *ast.Integer:
		return &object.Integer{Value: exp.Value}
	case *ast.Float:
		return &object.Float{Value: exp.Value}
	case *ast.Symbol:
		return &object.Symbol{Name: exp.Name}
	case *ast.Form:
		elements := make([]object.Object, 0, len(exp.Elements))
		for _, el := range exp.Elements {
			elements = append(elements, quoteExpression(el))
		}
		return &object.List{Elements: elements}
	}

	return newError("unknown expression: %T", exp)
}

// =====================
// ユーティリティ関数
// =====================

// nativeBoolToBooleanObject はGoのbool値をシングルトンのBooleanオブジェクトに変換する。
func nativeBoolToBooleanObject(input bool) *object.Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

// isTruthy はオブジェクトが「真」とみなされるか判定する。
// false, 0, 0.0, 空リストが偽で、それ以外は全て真。
func isTruthy(obj object.Object) bool {
	switch obj := obj.(type) {
	case *object.Boolean:
		return obj.Value
	case *object.Integer:
		return obj.Value != 0
	case *object.Float:
		return obj.Value != 0
	case *object.List:
		return len(obj.Elements) > 0
	default:
		return true
	}
}

// newError はエラーオブジェクトを生成するヘルパー関数。
func newError(format string, a ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, a...)}
}

// isError はオブジェクトがエラーかどうか判定する。
func isError(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == object.ERROR_OBJ
	}
	return false
}

// =====================
// 関数呼び出し
// =====================

// evalExpressions は式のリスト（関数引数など）を左から右に評価する。
// 途中でエラーが発生したら、エラーだけを含むスライスを返す。
func evalExpressions(
	exps []ast.Expression,
	env *object.Environment,
) []object.Object {
	result := make([]object.Object, 0, len(exps))

	for _, e := range exps {
		evaluated := Eval(e, env)
		if isError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

// applyFunction は関数オブジェクトに引数を適用して実行する。
// lispy にはユーザー定義関数がないので、呼び出せるのは組み込み関数だけ。
func applyFunction(fn object.Object, args []object.Object) object.Object {
	builtin, ok := fn.(*object.Builtin)
	if !ok {
		return newError("not a procedure: %s", fn.Inspect())
	}

	if result := builtin.Fn(args...); result != nil {
		return result
	}
	return newError("builtin %s returned no value", builtin.Name)
}
