// Package object は lispy のランタイムオブジェクトシステムを定義するパッケージ。
// 評価器が式木を評価した結果はすべてこのパッケージの Object として表現される。
// 全てのオブジェクトは Object インターフェースを実装する。
package object

import (
	"bytes"
	"strconv"
	"strings"
)

// ObjectType はオブジェクトの種類を識別する文字列型。
type ObjectType string

// オブジェクトの種類を表す定数。
const (
	ERROR_OBJ = "ERROR" // エラーオブジェクト

	INTEGER_OBJ = "INTEGER" // 整数
	FLOAT_OBJ   = "FLOAT"   // 浮動小数点数
	SYMBOL_OBJ  = "SYMBOL"  // 記号
	BOOLEAN_OBJ = "BOOLEAN" // 真偽値
	LIST_OBJ    = "LIST"    // 値の列（quote や list の結果）

	DEFINITION_OBJ = "DEFINITION" // define の結果

	BUILTIN_OBJ = "BUILTIN" // 組み込み関数
)

// Object は lispy の全ての値が実装するインターフェース。
// Type() はオブジェクトの種類を返し、Inspect() は値の文字列表現を返す。
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Integer は整数値を表すオブジェクト。
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }

// Float は浮動小数点数を表すオブジェクト。
type Float struct {
	Value float64
}

func (f *Float) Type() ObjectType { return FLOAT_OBJ }
func (f *Float) Inspect() string  { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// Symbol は記号を表すオブジェクト。
// quote された記号や、束縛のない記号を寛容モードで評価した結果になる。
type Symbol struct {
	Name string
}

func (s *Symbol) Type() ObjectType { return SYMBOL_OBJ }
func (s *Symbol) Inspect() string  { return s.Name }

// Boolean は真偽値を表すオブジェクト。
// 比較演算と述語の結果として現れる。
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return strconv.FormatBool(b.Value) }

// List は値の順序付き列。
// 空の List が nil（空リスト）を表す。
type List struct {
	Elements []Object
}

func (l *List) Type() ObjectType { return LIST_OBJ }

// Inspect は `(e1 e2 ...)` の形式で文字列を返す。
func (l *List) Inspect() string {
	var out bytes.Buffer

	elements := []string{}
	for _, e := range l.Elements {
		elements = append(elements, e.Inspect())
	}

	out.WriteString("(")
	out.WriteString(strings.Join(elements, " "))
	out.WriteString(")")

	return out.String()
}

// Definition は define 式の評価結果。
// 束縛した名前と値を人間が読める形で保持する。
type Definition struct {
	Name  string
	Value Object
}

func (d *Definition) Type() ObjectType { return DEFINITION_OBJ }
func (d *Definition) Inspect() string  { return d.Name + " = " + d.Value.Inspect() }

// BuiltinFunction は組み込み関数の型。
// 評価済みの引数を受け取り、結果またはエラーオブジェクトを返す。
type BuiltinFunction func(args ...Object) Object

// Builtin は組み込み関数をラップするオブジェクト。
type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "<builtin " + b.Name + ">" }

// Error は評価中に発生したエラーを表すオブジェクト。
// エラーは評価中に伝播し、以降の評価を停止させる。
type Error struct {
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }
