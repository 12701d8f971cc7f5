package interp

import (
	"github.com/kolkov/glox/internal/ast"
	"github.com/kolkov/glox/internal/types"
)

// Callable is implemented by every value that can appear before an
// argument list: user functions, native functions, classes (calling a
// class constructs an instance), and bound methods. The caller has
// already checked arity when Call runs.
type Callable interface {
	types.Object
	Arity() int
	Call(i *Interp, args []types.Value) (types.Value, error)
}

// Function is a user-declared Lox function: the declaration plus the
// environment captured at declaration time. The same type backs class
// methods; isInit marks an initializer, whose calls always yield the
// receiver instead of a return value.
type Function struct {
	decl    *ast.FuncStmt
	closure *Environment
	isInit  bool
}

// NewFunction creates a function value capturing the given closure.
func NewFunction(decl *ast.FuncStmt, closure *Environment, isInit bool) *Function {
	return &Function{decl: decl, closure: closure, isInit: isInit}
}

// Name returns the declared function name.
func (f *Function) Name() string { return f.decl.Name }

func (f *Function) Arity() int { return len(f.decl.Params) }

// Call executes the function body in a fresh environment parented to
// the captured closure (not the call site), with parameters bound
// positionally. A return signal caught here supplies the result;
// otherwise the result is nil.
func (f *Function) Call(i *Interp, args []types.Value) (types.Value, error) {
	env := NewEnclosed(f.closure)
	for idx, param := range f.decl.Params {
		env.Define(param, args[idx])
	}

	sig, err := i.execBlock(f.decl.Body, env)
	if err != nil {
		return types.Nil(), err
	}

	if f.isInit {
		// init always yields the receiver, even on explicit return.
		this, _ := f.closure.Get("this")
		return this, nil
	}
	if sig.kind == signalReturn {
		return sig.value, nil
	}
	return types.Nil(), nil
}

func (f *Function) TypeName() string { return "function" }

func (f *Function) String() string { return "<fn " + f.decl.Name + ">" }

// bind pairs the function with a receiver, producing the bound method
// returned by property access.
func (f *Function) bind(recv *Instance) *BoundMethod {
	return &BoundMethod{Recv: recv, Fn: f}
}

// BoundMethod is a method paired with the instance it was looked up
// on. Invoking it runs the underlying function with 'this' bound to
// the receiver in a per-instance environment wrapped around the
// method's closure.
type BoundMethod struct {
	Recv *Instance
	Fn   *Function
}

func (m *BoundMethod) Arity() int { return m.Fn.Arity() }

func (m *BoundMethod) Call(i *Interp, args []types.Value) (types.Value, error) {
	env := NewEnclosed(m.Fn.closure)
	env.Define("this", types.Obj(m.Recv))
	bound := &Function{decl: m.Fn.decl, closure: env, isInit: m.Fn.isInit}
	return bound.Call(i, args)
}

func (m *BoundMethod) TypeName() string { return "function" }

func (m *BoundMethod) String() string { return m.Fn.String() }

// NativeFn is the host implementation of a native function.
type NativeFn func(i *Interp, args []types.Value) (types.Value, error)

// Native is a fixed-arity function implemented in Go. From the Lox
// side it is indistinguishable from a user function.
type Native struct {
	name  string
	arity int
	fn    NativeFn
}

func (n *Native) Arity() int { return n.arity }

func (n *Native) Call(i *Interp, args []types.Value) (types.Value, error) {
	return n.fn(i, args)
}

func (n *Native) TypeName() string { return "function" }

func (n *Native) String() string { return "<native fn " + n.name + ">" }

// Compile-time checks

var (
	_ Callable = (*Function)(nil)
	_ Callable = (*BoundMethod)(nil)
	_ Callable = (*Native)(nil)
	_ Callable = (*Class)(nil)
)
