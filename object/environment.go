// environment.go は記号の束縛を管理する環境を定義する。
//
// Environment は Scope（名前から値へのマップ）の順序付きリストで、
// 検索は先頭の層から順に行う。標準環境では
// [組み込み層, ユーザー層] の2層を持つ。組み込み層は構築後に凍結され、
// 複数の環境で読み取り専用として共有できる。ユーザー層は環境ごとに
// 1つ持ち、define によってのみ書き換えられる。
package object

import "fmt"

// Scope は1つの層の束縛を保持する。
type Scope struct {
	store  map[string]Object
	frozen bool
}

// NewScope は空の層を作成する。
func NewScope() *Scope {
	return &Scope{store: make(map[string]Object)}
}

// Get は名前に束縛された値を返す。
func (s *Scope) Get(name string) (Object, bool) {
	obj, ok := s.store[name]
	return obj, ok
}

// Set は名前に値を束縛する。凍結済みの層に書き込むと panic する。
func (s *Scope) Set(name string, val Object) Object {
	if s.frozen {
		panic(fmt.Sprintf("object: write of %q to a frozen scope", name))
	}
	s.store[name] = val
	return val
}

// Freeze は以降の書き込みを禁止する。
func (s *Scope) Freeze() *Scope {
	s.frozen = true
	return s
}

// Frozen は層が凍結済みかどうかを返す。
func (s *Scope) Frozen() bool { return s.frozen }

// Len は層に含まれる束縛の数を返す。
func (s *Scope) Len() int { return len(s.store) }

// EnvOption は環境の挙動を切り替える関数。
type EnvOption func(*Environment)

// WithStrict は束縛のない記号の評価をエラーにする。
// 既定（寛容モード）では記号そのものが値として返る。
func WithStrict() EnvOption {
	return func(e *Environment) { e.strict = true }
}

// Environment はセッションごとの評価環境。
// 同時に複数のセッションを扱う場合は、セッションごとに別の
// Environment を作ること（ユーザー層は共有してはならない）。
type Environment struct {
	layers []*Scope // 検索順。末尾がユーザー層
	strict bool
}

// NewEnvironment は builtins を先頭の層、空のユーザー層を末尾に持つ環境を作成する。
// builtins は凍結される。
func NewEnvironment(builtins *Scope, opts ...EnvOption) *Environment {
	env := &Environment{
		layers: []*Scope{builtins.Freeze(), NewScope()},
	}
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// Get は層を先頭から順に探し、最初に見つかった値を返す。
// 見つからなければ (nil, false) を返す。
func (e *Environment) Get(name string) (Object, bool) {
	for _, layer := range e.layers {
		if obj, ok := layer.Get(name); ok {
			return obj, true
		}
	}
	return nil, false
}

// Set はユーザー層に値を束縛する。既存の束縛は上書きされる。
// 組み込み層は変更されない。
func (e *Environment) Set(name string, val Object) Object {
	return e.user().Set(name, val)
}

// Strict は束縛のない記号をエラーにするかどうかを返す。
func (e *Environment) Strict() bool { return e.strict }

// Builtins は組み込み層を返す。
func (e *Environment) Builtins() *Scope { return e.layers[0] }

// User はユーザー層の束縛を名前から引く。
func (e *Environment) User(name string) (Object, bool) {
	return e.user().Get(name)
}

func (e *Environment) user() *Scope {
	return e.layers[len(e.layers)-1]
}
