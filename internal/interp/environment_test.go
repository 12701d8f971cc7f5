package interp

import (
	"testing"

	"github.com/kolkov/glox/internal/types"
)

func TestEnvironmentDefineGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", types.Num(1))

	v, ok := env.Get("x")
	if !ok {
		t.Fatal("Get(x) not found")
	}
	if v.AsNum() != 1 {
		t.Errorf("Get(x) = %s, want 1", v)
	}

	if _, ok := env.Get("y"); ok {
		t.Error("Get(y) found, want not found")
	}
}

func TestEnvironmentRedefine(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", types.Num(1))
	env.Define("x", types.Num(2))

	v, _ := env.Get("x")
	if v.AsNum() != 2 {
		t.Errorf("Get(x) = %s, want 2", v)
	}
}

func TestEnvironmentChainLookup(t *testing.T) {
	global := NewEnvironment()
	global.Define("x", types.Str("global"))
	inner := NewEnclosed(NewEnclosed(global))

	v, ok := inner.Get("x")
	if !ok || v.AsStr() != "global" {
		t.Errorf("Get(x) = %s, %v; want global binding", v, ok)
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", types.Num(1))
	inner := NewEnclosed(outer)
	inner.Define("x", types.Num(2))

	v, _ := inner.Get("x")
	if v.AsNum() != 2 {
		t.Errorf("inner Get(x) = %s, want 2", v)
	}
	v, _ = outer.Get("x")
	if v.AsNum() != 1 {
		t.Errorf("outer Get(x) = %s, want 1", v)
	}
}

func TestEnvironmentAssign(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", types.Num(1))
	inner := NewEnclosed(outer)

	// Assignment walks outward and mutates the outer binding.
	if !inner.Assign("x", types.Num(5)) {
		t.Fatal("Assign(x) = false, want true")
	}
	v, _ := outer.Get("x")
	if v.AsNum() != 5 {
		t.Errorf("outer Get(x) = %s, want 5", v)
	}

	// Assignment never creates bindings.
	if inner.Assign("y", types.Num(1)) {
		t.Error("Assign(y) = true, want false")
	}
	if _, ok := inner.Get("y"); ok {
		t.Error("failed assignment created a binding")
	}
}

func TestEnvironmentAssignPrefersInnermost(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", types.Num(1))
	inner := NewEnclosed(outer)
	inner.Define("x", types.Num(2))

	inner.Assign("x", types.Num(3))

	v, _ := inner.Get("x")
	if v.AsNum() != 3 {
		t.Errorf("inner Get(x) = %s, want 3", v)
	}
	v, _ = outer.Get("x")
	if v.AsNum() != 1 {
		t.Errorf("outer Get(x) = %s, want 1 (untouched)", v)
	}
}

func TestEnvironmentSharedCapture(t *testing.T) {
	// Two children of the same scope observe each other's mutations of
	// a shared outer binding.
	shared := NewEnvironment()
	shared.Define("count", types.Num(0))
	a := NewEnclosed(shared)
	b := NewEnclosed(shared)

	a.Assign("count", types.Num(1))
	v, _ := b.Get("count")
	if v.AsNum() != 1 {
		t.Errorf("b sees count = %s, want 1", v)
	}
}
