package object

import "testing"

func TestEnvironmentLookupOrder(t *testing.T) {
	builtins := NewScope()
	builtins.Set("pi", &Float{Value: 3.14})

	env := NewEnvironment(builtins)

	if _, ok := env.Get("x"); ok {
		t.Fatalf("x must be unbound in a fresh environment")
	}

	env.Set("x", &Integer{Value: 5})
	obj, ok := env.Get("x")
	if !ok {
		t.Fatalf("x not found after Set")
	}
	if i, ok := obj.(*Integer); !ok || i.Value != 5 {
		t.Errorf("x wrong. got=%s", obj.Inspect())
	}

	// 組み込みと同名の束縛はユーザー層に入り、組み込み層は変わらない
	env.Set("pi", &Integer{Value: 3})
	obj, _ = env.Get("pi")
	if f, ok := obj.(*Float); !ok || f.Value != 3.14 {
		t.Errorf("builtin pi must win lookup. got=%s", obj.Inspect())
	}
	if user, ok := env.User("pi"); !ok || user.Inspect() != "3" {
		t.Errorf("user layer must hold the new pi. got=%v", user)
	}
	if b, _ := builtins.Get("pi"); b.Inspect() != "3.14" {
		t.Errorf("builtin layer was modified. got=%s", b.Inspect())
	}
}

func TestEnvironmentsShareBuiltinsOnly(t *testing.T) {
	builtins := NewScope()
	builtins.Set("one", &Integer{Value: 1})

	a := NewEnvironment(builtins)
	b := NewEnvironment(builtins, WithStrict())

	a.Set("x", &Integer{Value: 1})
	if _, ok := b.Get("x"); ok {
		t.Errorf("user layers must not be shared between environments")
	}
	if _, ok := b.Get("one"); !ok {
		t.Errorf("builtin layer must be shared")
	}

	if a.Strict() || !b.Strict() {
		t.Errorf("strict flag wrong. a=%t, b=%t", a.Strict(), b.Strict())
	}
	if a.Builtins() != b.Builtins() {
		t.Errorf("both environments must see the same builtin scope")
	}
}

func TestFrozenScopePanics(t *testing.T) {
	s := NewScope()
	s.Set("a", &Integer{Value: 1})
	s.Freeze()

	if !s.Frozen() || s.Len() != 1 {
		t.Fatalf("scope state wrong. frozen=%t, len=%d", s.Frozen(), s.Len())
	}

	defer func() {
		if recover() == nil {
			t.Errorf("writing to a frozen scope must panic")
		}
	}()
	s.Set("b", &Integer{Value: 2})
}
