package interp

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kolkov/glox/internal/ast"
	"github.com/kolkov/glox/internal/token"
	"github.com/kolkov/glox/internal/types"
)

// maxCallDepth bounds Lox call nesting. The evaluator's Go recursion
// mirrors the Lox call stack, so a runaway recursive program must be
// stopped with a runtime error before it exhausts the native stack.
const maxCallDepth = 4096

// signalKind classifies the outcome of a statement.
type signalKind uint8

const (
	signalNone   signalKind = iota // Normal completion
	signalReturn                   // return: unwind to the nearest call frame
	signalBreak                    // break: unwind to the nearest loop
)

// signal is the control outcome of statement execution. return and
// break are not errors: each propagates untouched through intervening
// blocks and is consumed exactly at its matching boundary (the call
// frame, the loop).
type signal struct {
	kind  signalKind
	value types.Value // Carried value for signalReturn
}

// Options configures an interpreter.
type Options struct {
	// Output is the writer for print statements (default os.Stdout).
	Output io.Writer

	// Now supplies the current time for the clock native
	// (default time.Now). Injectable for deterministic tests.
	Now func() time.Time
}

// Interp is the tree-walking Lox interpreter. It owns the global
// environment, which lives for the whole session; nested environments
// are created per block and per call. A single Interp executes one
// statement sequence at a time; it is not safe for concurrent use.
type Interp struct {
	globals *Environment
	env     *Environment // Current scope, global between runs
	out     io.Writer
	now     func() time.Time

	callDepth int
}

// New creates an interpreter with a fresh global environment and the
// native functions registered.
func New(opts Options) *Interp {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	globals := NewEnvironment()
	i := &Interp{
		globals: globals,
		env:     globals,
		out:     opts.Output,
		now:     opts.Now,
	}
	i.registerBuiltins()
	return i
}

// Globals returns the global environment. Definitions made between
// runs (REPL sessions) persist there.
func (i *Interp) Globals() *Environment { return i.globals }

// SetOutput redirects print output.
func (i *Interp) SetOutput(w io.Writer) { i.out = w }

// Run executes a parsed program. Execution stops at the first runtime
// error, which is returned as a *RuntimeError.
func (i *Interp) Run(stmts []ast.Stmt) error {
	for _, s := range stmts {
		sig, err := i.exec(s)
		if err != nil {
			return err
		}
		// The parser rejects top-level return/break, so a stray
		// signal here is an interpreter bug.
		if sig.kind != signalNone {
			return runtimeErrorf(s.Pos(), "unexpected control transfer at top level")
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Statement execution
// -----------------------------------------------------------------------------

func (i *Interp) exec(s ast.Stmt) (signal, error) {
	switch n := s.(type) {
	case *ast.ExprStmt:
		_, err := i.eval(n.Expr)
		return signal{}, err

	case *ast.PrintStmt:
		v, err := i.eval(n.Expr)
		if err != nil {
			return signal{}, err
		}
		_, err = fmt.Fprintln(i.out, v.Format())
		return signal{}, err

	case *ast.VarStmt:
		value := types.Nil()
		if n.Init != nil {
			v, err := i.eval(n.Init)
			if err != nil {
				return signal{}, err
			}
			value = v
		}
		i.env.Define(n.Name, value)
		return signal{}, nil

	case *ast.BlockStmt:
		return i.execBlock(n.Stmts, NewEnclosed(i.env))

	case *ast.IfStmt:
		cond, err := i.eval(n.Cond)
		if err != nil {
			return signal{}, err
		}
		if cond.AsBool() {
			return i.exec(n.Then)
		}
		if n.Else != nil {
			return i.exec(n.Else)
		}
		return signal{}, nil

	case *ast.WhileStmt:
		for {
			cond, err := i.eval(n.Cond)
			if err != nil {
				return signal{}, err
			}
			if !cond.AsBool() {
				return signal{}, nil
			}
			sig, err := i.exec(n.Body)
			if err != nil {
				return signal{}, err
			}
			switch sig.kind {
			case signalBreak:
				return signal{}, nil
			case signalReturn:
				return sig, nil
			}
		}

	case *ast.BreakStmt:
		return signal{kind: signalBreak}, nil

	case *ast.ReturnStmt:
		value := types.Nil()
		if n.Value != nil {
			v, err := i.eval(n.Value)
			if err != nil {
				return signal{}, err
			}
			value = v
		}
		return signal{kind: signalReturn, value: value}, nil

	case *ast.FuncStmt:
		fn := NewFunction(n, i.env, false)
		i.env.Define(n.Name, types.Obj(fn))
		return signal{}, nil

	case *ast.ClassStmt:
		return signal{}, i.execClass(n)

	default:
		return signal{}, runtimeErrorf(s.Pos(), "unhandled statement %T", s)
	}
}

// execBlock executes stmts in env, restoring the previous environment
// on every exit path: normal completion, runtime error, or control
// transfer. Function calls enter here with an environment parented to
// the callee's closure.
func (i *Interp) execBlock(stmts []ast.Stmt, env *Environment) (signal, error) {
	prev := i.env
	i.env = env
	defer func() { i.env = prev }()

	for _, s := range stmts {
		sig, err := i.exec(s)
		if err != nil {
			return signal{}, err
		}
		if sig.kind != signalNone {
			return sig, nil
		}
	}
	return signal{}, nil
}

// execClass evaluates a class declaration: the optional superclass
// expression, then the method table. When there is a superclass, the
// methods' closure gains a scope binding 'super' to it — that binding
// is what makes super resolve from the defining class, not from the
// runtime type of the receiver.
func (i *Interp) execClass(n *ast.ClassStmt) error {
	var super *Class
	if n.Superclass != nil {
		sv, err := i.eval(n.Superclass)
		if err != nil {
			return err
		}
		sc, ok := sv.AsObj().(*Class)
		if !ok {
			return runtimeErrorf(n.Superclass.Pos(), "superclass must be a class, got %s", sv.TypeName())
		}
		super = sc
	}

	// Two-step binding so methods can refer to the class by name.
	i.env.Define(n.Name, types.Nil())

	methodEnv := i.env
	if super != nil {
		methodEnv = NewEnclosed(i.env)
		methodEnv.Define("super", types.Obj(super))
	}

	methods := make(map[string]*Function, len(n.Methods))
	for _, m := range n.Methods {
		methods[m.Name] = NewFunction(m, methodEnv, m.Name == "init")
	}

	class := &Class{Name: n.Name, Super: super, Methods: methods}
	i.env.Assign(n.Name, types.Obj(class))
	return nil
}

// -----------------------------------------------------------------------------
// Expression evaluation
// -----------------------------------------------------------------------------

func (i *Interp) eval(e ast.Expr) (types.Value, error) {
	switch n := e.(type) {
	case *ast.LitExpr:
		return n.Value, nil

	case *ast.GroupExpr:
		return i.eval(n.Expr)

	case *ast.IdentExpr:
		v, ok := i.env.Get(n.Name)
		if !ok {
			return types.Nil(), runtimeErrorf(n.Pos(), "undefined variable '%s'", n.Name)
		}
		return v, nil

	case *ast.AssignExpr:
		v, err := i.eval(n.Value)
		if err != nil {
			return types.Nil(), err
		}
		if !i.env.Assign(n.Name, v) {
			return types.Nil(), runtimeErrorf(n.Pos(), "undefined variable '%s'", n.Name)
		}
		return v, nil

	case *ast.UnaryExpr:
		return i.evalUnary(n)

	case *ast.BinaryExpr:
		return i.evalBinary(n)

	case *ast.LogicalExpr:
		return i.evalLogical(n)

	case *ast.CallExpr:
		return i.evalCall(n)

	case *ast.GetExpr:
		return i.evalGet(n)

	case *ast.SetExpr:
		return i.evalSet(n)

	case *ast.ThisExpr:
		v, _ := i.env.Get("this")
		return v, nil

	case *ast.SuperExpr:
		return i.evalSuper(n)

	default:
		return types.Nil(), runtimeErrorf(e.Pos(), "unhandled expression %T", e)
	}
}

func (i *Interp) evalUnary(n *ast.UnaryExpr) (types.Value, error) {
	right, err := i.eval(n.Right)
	if err != nil {
		return types.Nil(), err
	}

	switch n.Op {
	case token.NOT:
		return types.Bool(!right.AsBool()), nil
	case token.SUB:
		if !right.IsNum() {
			return types.Nil(), runtimeErrorf(n.OpPos, "operand of '-' must be a number, got %s", right.TypeName())
		}
		return types.Num(-right.AsNum()), nil
	default:
		return types.Nil(), runtimeErrorf(n.OpPos, "invalid unary operator '%s'", n.Op)
	}
}

func (i *Interp) evalBinary(n *ast.BinaryExpr) (types.Value, error) {
	left, err := i.eval(n.Left)
	if err != nil {
		return types.Nil(), err
	}
	right, err := i.eval(n.Right)
	if err != nil {
		return types.Nil(), err
	}

	switch n.Op {
	case token.ADD:
		if left.IsNum() && right.IsNum() {
			return types.Num(left.AsNum() + right.AsNum()), nil
		}
		if left.IsStr() && right.IsStr() {
			return types.Str(left.AsStr() + right.AsStr()), nil
		}
		return types.Nil(), runtimeErrorf(n.OpPos,
			"operands of '+' must be two numbers or two strings, got %s and %s",
			left.TypeName(), right.TypeName())

	case token.SUB, token.MUL, token.DIV:
		l, r, err := i.numOperands(n.OpPos, n.Op, left, right)
		if err != nil {
			return types.Nil(), err
		}
		switch n.Op {
		case token.SUB:
			return types.Num(l - r), nil
		case token.MUL:
			return types.Num(l * r), nil
		default:
			// Division by zero follows IEEE 754: ±Inf or NaN.
			return types.Num(l / r), nil
		}

	case token.LESS, token.LTE, token.GREATER, token.GTE:
		l, r, err := i.numOperands(n.OpPos, n.Op, left, right)
		if err != nil {
			return types.Nil(), err
		}
		switch n.Op {
		case token.LESS:
			return types.Bool(l < r), nil
		case token.LTE:
			return types.Bool(l <= r), nil
		case token.GREATER:
			return types.Bool(l > r), nil
		default:
			return types.Bool(l >= r), nil
		}

	case token.EQUALS:
		return types.Bool(types.Equal(left, right)), nil
	case token.NOT_EQUALS:
		return types.Bool(!types.Equal(left, right)), nil

	default:
		return types.Nil(), runtimeErrorf(n.OpPos, "invalid binary operator '%s'", n.Op)
	}
}

// numOperands checks that both operands are numbers and unwraps them.
func (i *Interp) numOperands(pos token.Position, op token.Type, left, right types.Value) (float64, float64, error) {
	if !left.IsNum() || !right.IsNum() {
		return 0, 0, runtimeErrorf(pos, "operands of '%s' must be numbers, got %s and %s",
			op, left.TypeName(), right.TypeName())
	}
	return left.AsNum(), right.AsNum(), nil
}

// evalLogical short-circuits: the right operand is evaluated only when
// the left does not decide the result, and the value of the deciding
// operand (not a coerced boolean) is the result.
func (i *Interp) evalLogical(n *ast.LogicalExpr) (types.Value, error) {
	left, err := i.eval(n.Left)
	if err != nil {
		return types.Nil(), err
	}

	if n.Op == token.OR {
		if left.AsBool() {
			return left, nil
		}
	} else {
		if !left.AsBool() {
			return left, nil
		}
	}
	return i.eval(n.Right)
}

func (i *Interp) evalCall(n *ast.CallExpr) (types.Value, error) {
	callee, err := i.eval(n.Callee)
	if err != nil {
		return types.Nil(), err
	}

	args := make([]types.Value, 0, len(n.Args))
	for _, arg := range n.Args {
		v, err := i.eval(arg)
		if err != nil {
			return types.Nil(), err
		}
		args = append(args, v)
	}

	fn, ok := callee.AsObj().(Callable)
	if !ok {
		return types.Nil(), runtimeErrorf(n.Paren, "can only call functions and classes, got %s", callee.TypeName())
	}

	if len(args) != fn.Arity() {
		return types.Nil(), runtimeErrorf(n.Paren, "expected %d arguments but got %d", fn.Arity(), len(args))
	}

	if i.callDepth >= maxCallDepth {
		return types.Nil(), runtimeErrorf(n.Paren, "stack overflow")
	}
	i.callDepth++
	defer func() { i.callDepth-- }()

	return fn.Call(i, args)
}

func (i *Interp) evalGet(n *ast.GetExpr) (types.Value, error) {
	object, err := i.eval(n.Object)
	if err != nil {
		return types.Nil(), err
	}

	inst, ok := object.AsObj().(*Instance)
	if !ok {
		return types.Nil(), runtimeErrorf(n.NamePos, "only instances have properties, got %s", object.TypeName())
	}

	v, ok := inst.Get(n.Name)
	if !ok {
		return types.Nil(), runtimeErrorf(n.NamePos, "undefined property '%s'", n.Name)
	}
	return v, nil
}

func (i *Interp) evalSet(n *ast.SetExpr) (types.Value, error) {
	object, err := i.eval(n.Object)
	if err != nil {
		return types.Nil(), err
	}

	inst, ok := object.AsObj().(*Instance)
	if !ok {
		return types.Nil(), runtimeErrorf(n.NamePos, "only instances have fields, got %s", object.TypeName())
	}

	v, err := i.eval(n.Value)
	if err != nil {
		return types.Nil(), err
	}
	inst.Set(n.Name, v)
	return v, nil
}

// evalSuper resolves super.method from the superclass of the class the
// executing method was defined in. That class was captured in the
// 'super' binding when the class declaration ran, so lookup here is
// independent of the receiver's dynamic class.
func (i *Interp) evalSuper(n *ast.SuperExpr) (types.Value, error) {
	sv, ok := i.env.Get("super")
	if !ok {
		return types.Nil(), runtimeErrorf(n.Pos(), "cannot use 'super' here")
	}
	super := sv.AsObj().(*Class)

	tv, _ := i.env.Get("this")
	recv, _ := tv.AsObj().(*Instance)

	method := super.FindMethod(n.Method)
	if method == nil {
		return types.Nil(), runtimeErrorf(n.Pos(), "undefined property '%s'", n.Method)
	}
	return types.Obj(method.bind(recv)), nil
}
