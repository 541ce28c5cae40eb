// builtins.go は lispy の組み込み関数を定義する。
// これらの関数はユーザーが定義しなくても最初から使える。
//
// リスト操作:
// - car: リストの最初の要素を返す
// - cdr: 最初の要素を除いた新しいリストを返す
// - cons: リストの先頭に要素を追加した新しいリストを返す
// - list: 引数を集めたリストを返す
// - append: リストを連結した新しいリストを返す
// - apply: 関数をリストの要素を引数として呼び出す
// - begin: 最後の引数を返す
// - length: リストの要素数を返す
//
// どの関数も引数のリストを変更しない（イミュータブル）。
package evaluator

import (
	"lispy/object"
	"sync"
)

// checkList は引数が List であることを確認する。
func checkList(name string, arg object.Object) (*object.List, *object.Error) {
	list, ok := arg.(*object.List)
	if !ok {
		return nil, newError("argument to `%s` must be LIST, got %s",
			name, arg.Type())
	}
	return list, nil
}

// listBuiltins はリスト操作の組み込み関数名から関数へのマップ。
var listBuiltins = map[string]object.BuiltinFunction{
	// car はリストの最初の要素を返す。
	// 空リストの場合はエラー。
	"car": func(args ...object.Object) object.Object {
		if err := checkArity(args, 1); err != nil {
			return err
		}
		list, err := checkList("car", args[0])
		if err != nil {
			return err
		}
		if len(list.Elements) == 0 {
			return newError("car of empty list")
		}
		return list.Elements[0]
	},

	// cdr は最初の要素を除いた新しいリストを返す。
	"cdr": func(args ...object.Object) object.Object {
		if err := checkArity(args, 1); err != nil {
			return err
		}
		list, err := checkList("cdr", args[0])
		if err != nil {
			return err
		}
		length := len(list.Elements)
		if length == 0 {
			return newError("cdr of empty list")
		}

		newElements := make([]object.Object, length-1)
		copy(newElements, list.Elements[1:length])
		return &object.List{Elements: newElements}
	},

	// cons は (cons x lst) で x を先頭に追加した新しいリストを返す。
	"cons": func(args ...object.Object) object.Object {
		if err := checkArity(args, 2); err != nil {
			return err
		}
		list, err := checkList("cons", args[1])
		if err != nil {
			return err
		}

		newElements := make([]object.Object, 0, len(list.Elements)+1)
		newElements = append(newElements, args[0])
		newElements = append(newElements, list.Elements...)
		return &object.List{Elements: newElements}
	},

	"list": func(args ...object.Object) object.Object {
		elements := make([]object.Object, len(args))
		copy(elements, args)
		return &object.List{Elements: elements}
	},

	// append は全ての引数のリストを順に連結する。
	"append": func(args ...object.Object) object.Object {
		elements := []object.Object{}
		for _, arg := range args {
			list, err := checkList("append", arg)
			if err != nil {
				return err
			}
			elements = append(elements, list.Elements...)
		}
		return &object.List{Elements: elements}
	},

	// apply は (apply f lst) で lst の要素を引数として f を呼び出す。
	"apply": func(args ...object.Object) object.Object {
		if err := checkArity(args, 2); err != nil {
			return err
		}
		list, err := checkList("apply", args[1])
		if err != nil {
			return err
		}
		return applyFunction(args[0], list.Elements)
	},

	// begin は引数を評価済みで受け取るので、最後の値だけを返せばよい。
	"begin": func(args ...object.Object) object.Object {
		if len(args) == 0 {
			return newError("wrong number of arguments. got=0, want>=1")
		}
		return args[len(args)-1]
	},

	"length": func(args ...object.Object) object.Object {
		if err := checkArity(args, 1); err != nil {
			return err
		}
		list, err := checkList("length", args[0])
		if err != nil {
			return err
		}
		return &object.Integer{Value: int64(len(list.Elements))}
	},
}

// predicate は1引数の述語を組み込みにする。
func predicate(test func(object.Object) bool) object.BuiltinFunction {
	return func(args ...object.Object) object.Object {
		if err := checkArity(args, 1); err != nil {
			return err
		}
		return nativeBoolToBooleanObject(test(args[0]))
	}
}

// relation は2引数の関係を組み込みにする。
func relation(test func(a, b object.Object) bool) object.BuiltinFunction {
	return func(args ...object.Object) object.Object {
		if err := checkArity(args, 2); err != nil {
			return err
		}
		return nativeBoolToBooleanObject(test(args[0], args[1]))
	}
}

var predicateBuiltins = map[string]object.BuiltinFunction{
	"null?": predicate(func(obj object.Object) bool {
		list, ok := obj.(*object.List)
		return ok && len(list.Elements) == 0
	}),
	"list?": predicate(func(obj object.Object) bool {
		_, ok := obj.(*object.List)
		return ok
	}),
	"number?": predicate(isNumber),
	"symbol?": predicate(func(obj object.Object) bool {
		_, ok := obj.(*object.Symbol)
		return ok
	}),
	"procedure?": predicate(func(obj object.Object) bool {
		_, ok := obj.(*object.Builtin)
		return ok
	}),
	"not": predicate(func(obj object.Object) bool {
		return !isTruthy(obj)
	}),
	"equal?": relation(objectsEqual),
	"eq?":    relation(identical),
	"is?":    relation(identical),
}

// objectsEqual は2つの値を構造的に比較する。
// 数値は整数と浮動小数点数の区別なく値で比較する。
func objectsEqual(a, b object.Object) bool {
	if isNumber(a) && isNumber(b) {
		return compareNumbers(a, b) == 0
	}

	switch a := a.(type) {
	case *object.Symbol:
		b, ok := b.(*object.Symbol)
		return ok && a.Name == b.Name
	case *object.Boolean:
		b, ok := b.(*object.Boolean)
		return ok && a.Value == b.Value
	case *object.List:
		b, ok := b.(*object.List)
		if !ok || len(a.Elements) != len(b.Elements) {
			return false
		}
		for i := range a.Elements {
			if !objectsEqual(a.Elements[i], b.Elements[i]) {
				return false
			}
		}
		return true
	case *object.Definition:
		b, ok := b.(*object.Definition)
		return ok && a.Name == b.Name && objectsEqual(a.Value, b.Value)
	}

	return a == b
}

// identical は同一性を判定する。
// 記号・数値・真偽値は同じ種類で同じ値なら同一とみなし、
// リストや関数はポインタが等しい場合だけ同一とする。
func identical(a, b object.Object) bool {
	if a.Type() != b.Type() {
		return false
	}

	switch a := a.(type) {
	case *object.Integer, *object.Float, *object.Symbol, *object.Boolean:
		return objectsEqual(a, b)
	}

	return a == b
}

var (
	builtinsOnce  sync.Once
	builtinsScope *object.Scope
)

// NewStandardEnvironment は組み込み層と空のユーザー層を持つ新しい環境を作る。
// 組み込み層はプロセス内で1度だけ作られ、全ての環境で読み取り専用として共有される。
func NewStandardEnvironment(opts ...object.EnvOption) *object.Environment {
	builtinsOnce.Do(func() {
		builtinsScope = newBuiltinScope()
	})
	return object.NewEnvironment(builtinsScope, opts...)
}

// newBuiltinScope は全ての組み込みを束縛した、凍結前の層を作る。
func newBuiltinScope() *object.Scope {
	scope := object.NewScope()

	define := func(name string, fn object.BuiltinFunction) {
		scope.Set(name, &object.Builtin{Name: name, Fn: fn})
	}

	define("+", fold(addOp, &object.Integer{Value: 0}))
	define("-", subtract)
	define("*", fold(mulOp, &object.Integer{Value: 1}))
	define("/", divide)
	define("%", modulo)

	define(">", compare(">", func(c int) bool { return c > 0 }))
	define("<", compare("<", func(c int) bool { return c < 0 }))
	define(">=", compare(">=", func(c int) bool { return c >= 0 }))
	define("<=", compare("<=", func(c int) bool { return c <= 0 }))
	define("=", compare("=", func(c int) bool { return c == 0 }))

	define("abs", abs)
	define("max", extremum("max", 1))
	define("min", extremum("min", -1))
	define("log", logarithm)

	for name, fn := range mathFunctions {
		define(name, mathFunc(name, fn, false))
	}
	for name, fn := range integralFunctions {
		define(name, mathFunc(name, fn, true))
	}
	for name, fn := range mathFunctions2 {
		define(name, mathFunc2(name, fn))
	}
	for name, fn := range listBuiltins {
		define(name, fn)
	}
	for name, fn := range predicateBuiltins {
		define(name, fn)
	}

	for name, value := range mathConstants {
		scope.Set(name, &object.Float{Value: value})
	}
	scope.Set("nil", &object.List{Elements: []object.Object{}})
	scope.Set("true", TRUE)
	scope.Set("false", FALSE)

	return scope
}
