package interp

import (
	"github.com/kolkov/glox/internal/types"
)

// Environment is one lexical scope: a name→value mapping plus a
// reference to the enclosing scope. Scopes form a chain out to the
// global environment.
//
// A function's closure is the environment that was active at its
// definition; every call creates a fresh child environment parented to
// that closure, never to the call site. Multiple closures may share an
// outer environment, and mutation through any one of them is visible
// to all holders — that sharing is what makes captured counters work.
// The garbage collector keeps a shared scope alive for exactly as long
// as any closure or active frame can still reach it.
type Environment struct {
	values    map[string]types.Value
	enclosing *Environment // nil for the global scope
}

// NewEnvironment creates a new global (chain-root) environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]types.Value)}
}

// NewEnclosed creates a new environment nested inside enclosing.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]types.Value),
		enclosing: enclosing,
	}
}

// Define binds name to value in this scope only. Redefining an
// existing name in the same scope overwrites it; that is how var
// redeclaration behaves in Lox.
func (e *Environment) Define(name string, value types.Value) {
	e.values[name] = value
}

// Get looks name up in this scope, then outward through the enclosing
// chain. Returns false if the name is not bound anywhere.
func (e *Environment) Get(name string) (types.Value, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return types.Nil(), false
}

// Assign mutates an existing binding, searching outward like Get.
// It never creates a binding: assigning an undefined name returns
// false and the caller reports the runtime error.
func (e *Environment) Assign(name string, value types.Value) bool {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name]; ok {
			env.values[name] = value
			return true
		}
	}
	return false
}
