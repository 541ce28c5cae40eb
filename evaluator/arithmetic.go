// arithmetic.go は数値演算・比較・数学関数の組み込みを定義する。
//
// 整数同士の演算は整数のまま行い、どちらかが浮動小数点数であれば
// 浮動小数点数に昇格する。数値以外の引数はエラーになる。
package evaluator

import (
	"lispy/object"
	"math"
)

// isNumber はオブジェクトが数値（整数か浮動小数点数）か判定する。
func isNumber(obj object.Object) bool {
	switch obj.(type) {
	case *object.Integer, *object.Float:
		return true
	}
	return false
}

// toFloat は数値オブジェクトを float64 に変換する。
func toFloat(obj object.Object) (float64, bool) {
	switch obj := obj.(type) {
	case *object.Integer:
		return float64(obj.Value), true
	case *object.Float:
		return obj.Value, true
	}
	return 0, false
}

// checkNumbers は全ての引数が数値であることを確認する。
func checkNumbers(name string, args []object.Object) *object.Error {
	for _, arg := range args {
		if !isNumber(arg) {
			return newError("argument to `%s` must be a number, got %s",
				name, arg.Type())
		}
	}
	return nil
}

func checkArity(args []object.Object, want int) *object.Error {
	if len(args) != want {
		return newError("wrong number of arguments. got=%d, want=%d",
			len(args), want)
	}
	return nil
}

// binaryOp は2つの数値に対する演算。
// 整数版が nil を返した場合は浮動小数点数版で計算し直す。
type binaryOp struct {
	name  string
	ints  func(a, b int64) (object.Object, *object.Error)
	float func(a, b float64) (object.Object, *object.Error)
}

func (op binaryOp) apply(left, right object.Object) object.Object {
	l, lok := left.(*object.Integer)
	r, rok := right.(*object.Integer)
	if lok && rok && op.ints != nil {
		result, err := op.ints(l.Value, r.Value)
		if err != nil {
			return err
		}
		if result != nil {
			return result
		}
	}

	a, _ := toFloat(left)
	b, _ := toFloat(right)
	result, err := op.float(a, b)
	if err != nil {
		return err
	}
	return result
}

// fold は引数を左から順に op で畳み込む。
// 引数がなければ identity を返す。
func fold(op binaryOp, identity object.Object) object.BuiltinFunction {
	return func(args ...object.Object) object.Object {
		if err := checkNumbers(op.name, args); err != nil {
			return err
		}
		if len(args) == 0 {
			return identity
		}

		acc := args[0]
		for _, arg := range args[1:] {
			acc = op.apply(acc, arg)
			if isError(acc) {
				return acc
			}
		}
		return acc
	}
}

// mulOverflows は a*b が int64 に収まらないかを判定する。
func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return true
	}
	return (a*b)/b != a
}

// 整数版は int64 の範囲を超える場合 nil を返し、浮動小数点数で計算し直させる。
var (
	addOp = binaryOp{
		name: "+",
		ints: func(a, b int64) (object.Object, *object.Error) {
			if (a > 0 && b > math.MaxInt64-a) || (a < 0 && b < math.MinInt64-a) {
				return nil, nil
			}
			return &object.Integer{Value: a + b}, nil
		},
		float: func(a, b float64) (object.Object, *object.Error) {
			return &object.Float{Value: a + b}, nil
		},
	}

	subOp = binaryOp{
		name: "-",
		ints: func(a, b int64) (object.Object, *object.Error) {
			if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
				return nil, nil
			}
			return &object.Integer{Value: a - b}, nil
		},
		float: func(a, b float64) (object.Object, *object.Error) {
			return &object.Float{Value: a - b}, nil
		},
	}

	mulOp = binaryOp{
		name: "*",
		ints: func(a, b int64) (object.Object, *object.Error) {
			if mulOverflows(a, b) {
				return nil, nil
			}
			return &object.Integer{Value: a * b}, nil
		},
		float: func(a, b float64) (object.Object, *object.Error) {
			return &object.Float{Value: a * b}, nil
		},
	}

	// 割り切れる整数の除算だけが整数を返す
	divOp = binaryOp{
		name: "/",
		ints: func(a, b int64) (object.Object, *object.Error) {
			if b == 0 {
				return nil, newError("division by zero")
			}
			if a == math.MinInt64 && b == -1 {
				return nil, nil
			}
			if a%b == 0 {
				return &object.Integer{Value: a / b}, nil
			}
			return nil, nil
		},
		float: func(a, b float64) (object.Object, *object.Error) {
			if b == 0 {
				return nil, newError("division by zero")
			}
			return &object.Float{Value: a / b}, nil
		},
	}

	// 剰余の符号は除数に合わせる（床除算）
	modOp = binaryOp{
		name: "%",
		ints: func(a, b int64) (object.Object, *object.Error) {
			if b == 0 {
				return nil, newError("modulo by zero")
			}
			m := a % b
			if m != 0 && (m < 0) != (b < 0) {
				m += b
			}
			return &object.Integer{Value: m}, nil
		},
		float: func(a, b float64) (object.Object, *object.Error) {
			if b == 0 {
				return nil, newError("modulo by zero")
			}
			m := math.Mod(a, b)
			if m != 0 && (m < 0) != (b < 0) {
				m += b
			}
			return &object.Float{Value: m}, nil
		},
	}
)

// subtract は `-` を実装する。引数が1つなら符号を反転する。
func subtract(args ...object.Object) object.Object {
	if len(args) == 0 {
		return newError("wrong number of arguments. got=0, want>=1")
	}
	if len(args) == 1 {
		return fold(subOp, nil)(&object.Integer{Value: 0}, args[0])
	}
	return fold(subOp, nil)(args...)
}

// divide は `/` を実装する。引数が1つなら逆数を返す。
func divide(args ...object.Object) object.Object {
	if len(args) == 0 {
		return newError("wrong number of arguments. got=0, want>=1")
	}
	if len(args) == 1 {
		return fold(divOp, nil)(&object.Integer{Value: 1}, args[0])
	}
	return fold(divOp, nil)(args...)
}

func modulo(args ...object.Object) object.Object {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	if err := checkNumbers("%", args); err != nil {
		return err
	}
	return modOp.apply(args[0], args[1])
}

// compare は2引数の数値比較を行う組み込みを作る。
func compare(name string, cmp func(c int) bool) object.BuiltinFunction {
	return func(args ...object.Object) object.Object {
		if err := checkArity(args, 2); err != nil {
			return err
		}
		if err := checkNumbers(name, args); err != nil {
			return err
		}
		return nativeBoolToBooleanObject(cmp(compareNumbers(args[0], args[1])))
	}
}

// compareNumbers は a < b なら -1、a == b なら 0、a > b なら 1 を返す。
// 整数同士は精度を落とさないよう整数のまま比較する。
func compareNumbers(a, b object.Object) int {
	l, lok := a.(*object.Integer)
	r, rok := b.(*object.Integer)
	if lok && rok {
		switch {
		case l.Value < r.Value:
			return -1
		case l.Value > r.Value:
			return 1
		}
		return 0
	}

	x, _ := toFloat(a)
	y, _ := toFloat(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// extremum は max / min を実装する。元の数値オブジェクトをそのまま返す。
func extremum(name string, want int) object.BuiltinFunction {
	return func(args ...object.Object) object.Object {
		if len(args) == 0 {
			return newError("wrong number of arguments. got=0, want>=1")
		}
		if err := checkNumbers(name, args); err != nil {
			return err
		}
		best := args[0]
		for _, arg := range args[1:] {
			if compareNumbers(arg, best) == want {
				best = arg
			}
		}
		return best
	}
}

func abs(args ...object.Object) object.Object {
	if err := checkArity(args, 1); err != nil {
		return err
	}
	switch arg := args[0].(type) {
	case *object.Integer:
		if arg.Value == math.MinInt64 {
			return &object.Float{Value: -float64(arg.Value)}
		}
		if arg.Value < 0 {
			return &object.Integer{Value: -arg.Value}
		}
		return arg
	case *object.Float:
		return &object.Float{Value: math.Abs(arg.Value)}
	}
	return newError("argument to `abs` must be a number, got %s", args[0].Type())
}

// toInteger は整数値の浮動小数点数を Integer に変換する。
// int64 の範囲外や NaN はそのまま Float で返す。
func toInteger(f float64) object.Object {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < math.MinInt64 || f >= math.MaxInt64 {
		return &object.Float{Value: f}
	}
	return &object.Integer{Value: int64(f)}
}

// mathFunc は1引数の数学関数を組み込みにする。
// 定義域外の引数（結果が NaN になるもの）はエラーにする。
func mathFunc(name string, fn func(float64) float64, integral bool) object.BuiltinFunction {
	return func(args ...object.Object) object.Object {
		if err := checkArity(args, 1); err != nil {
			return err
		}
		x, ok := toFloat(args[0])
		if !ok {
			return newError("argument to `%s` must be a number, got %s",
				name, args[0].Type())
		}

		result := fn(x)
		if math.IsNaN(result) && !math.IsNaN(x) {
			return newError("math domain error: %s(%s)", name, args[0].Inspect())
		}
		if integral {
			return toInteger(result)
		}
		return &object.Float{Value: result}
	}
}

// mathFunc2 は2引数の数学関数を組み込みにする。
func mathFunc2(name string, fn func(float64, float64) float64) object.BuiltinFunction {
	return func(args ...object.Object) object.Object {
		if err := checkArity(args, 2); err != nil {
			return err
		}
		if err := checkNumbers(name, args); err != nil {
			return err
		}

		x, _ := toFloat(args[0])
		y, _ := toFloat(args[1])
		result := fn(x, y)
		if math.IsNaN(result) && !math.IsNaN(x) && !math.IsNaN(y) {
			return newError("math domain error: %s(%s, %s)",
				name, args[0].Inspect(), args[1].Inspect())
		}
		return &object.Float{Value: result}
	}
}

// logarithm は `log` を実装する。2番目の引数があれば底として使う。
func logarithm(args ...object.Object) object.Object {
	switch len(args) {
	case 1:
		return mathFunc("log", math.Log, false)(args...)
	case 2:
		return mathFunc2("log", func(x, base float64) float64 {
			return math.Log(x) / math.Log(base)
		})(args...)
	}
	return newError("wrong number of arguments. got=%d, want=1 or 2", len(args))
}

// mathFunctions は Go の math パッケージに対応する1引数関数の一覧。
var mathFunctions = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"sqrt":  math.Sqrt,
	"exp":   math.Exp,
	"log10": math.Log10,
	"log2":  math.Log2,
	"fabs":  math.Abs,
	"degrees": func(x float64) float64 {
		return x * 180 / math.Pi
	},
	"radians": func(x float64) float64 {
		return x * math.Pi / 180
	},
}

// integralFunctions は結果を整数で返す丸め関数。
var integralFunctions = map[string]func(float64) float64{
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"trunc": math.Trunc,
	"round": math.RoundToEven,
}

var mathFunctions2 = map[string]func(float64, float64) float64{
	"atan2": math.Atan2,
	"pow":   math.Pow,
	"hypot": math.Hypot,
}

var mathConstants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
	"inf": math.Inf(1),
}
