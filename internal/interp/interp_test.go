package interp_test

import (
	"strings"
	"testing"
	"time"

	"github.com/kolkov/glox/internal/interp"
	"github.com/kolkov/glox/internal/parser"
)

// run parses and executes src, returning print output and any runtime
// error.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	stmts, err := parser.ParseSource(src)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	var out strings.Builder
	i := interp.New(interp.Options{Output: &out})
	runErr := i.Run(stmts)
	return out.String(), runErr
}

// mustRun is run, failing the test on a runtime error.
func mustRun(t *testing.T, src string) string {
	t.Helper()
	out, err := run(t, src)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"precedence", "print 1 + 2 * 3;", "7\n"},
		{"grouping", "print (1 + 2) * 3;", "9\n"},
		{"subtraction chains left", "print 10 - 3 - 2;", "5\n"},
		{"unary minus", "print -4 + 1;", "-3\n"},
		{"double negation", "print --4;", "4\n"},
		{"fractional result", "print 7 / 2;", "3.5\n"},
		{"integral division prints without fraction", "print 8 / 2;", "4\n"},
		{"division by zero", "print 1 / 0;", "Infinity\n"},
		{"negative division by zero", "print -1 / 0;", "-Infinity\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRun(t, tt.src); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringConcat(t *testing.T) {
	got := mustRun(t, `print "foo" + "bar";`)
	if got != "foobar\n" {
		t.Errorf("output = %q, want %q", got, "foobar\n")
	}
}

func TestComparisonAndEquality(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"less", "print 1 < 2;", "true\n"},
		{"less or equal", "print 2 <= 2;", "true\n"},
		{"greater", "print 1 > 2;", "false\n"},
		{"equality", "print 1 == 1;", "true\n"},
		{"inequality", "print 1 != 2;", "true\n"},
		{"string equality", `print "a" == "a";`, "true\n"},
		{"no coercion", `print 1 == "1";`, "false\n"},
		{"nil equals nil", "print nil == nil;", "true\n"},
		{"nil not false", "print nil == false;", "false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRun(t, tt.src); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruthiness(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"not nil", "print !nil;", "true\n"},
		{"not false", "print !false;", "true\n"},
		{"not zero", "print !0;", "false\n"},
		{"not empty string", `print !"";`, "false\n"},
		{"if on zero", "if (0) print \"yes\"; else print \"no\";", "yes\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRun(t, tt.src); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogicalShortCircuit(t *testing.T) {
	// The right operand must not be evaluated when the left decides,
	// and the result is the deciding operand's value, not a boolean.
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"or returns left when truthy", `print "a" or sideEffect();`, "a\n"},
		{"and returns left when falsey", "print nil and sideEffect();", "nil\n"},
		{"or returns right", `print false or "b";`, "b\n"},
		{"and returns right", `print 1 and "c";`, "c\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// sideEffect is deliberately undefined: reaching it would
			// be a runtime error.
			if got := mustRun(t, tt.src); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVariables(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"declare and read", "var x = 1; print x;", "1\n"},
		{"uninitialized reads nil", "var x; print x;", "nil\n"},
		{"assignment", "var x = 1; x = 2; print x;", "2\n"},
		{"assignment is an expression", "var x; print x = 3;", "3\n"},
		{"redeclaration allowed", "var x = 1; var x = 2; print x;", "2\n"},
		{
			name: "block shadowing",
			src:  "var x = 1; { var x = 2; print x; } print x;",
			want: "2\n1\n",
		},
		{
			name: "inner assignment mutates outer",
			src:  "var x = 1; { x = 2; } print x;",
			want: "2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRun(t, tt.src); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestControlFlow(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "while loop",
			src:  "var i = 0; while (i < 3) { print i; i = i + 1; }",
			want: "0\n1\n2\n",
		},
		{
			name: "for loop",
			src:  "for (var i = 0; i < 3; i = i + 1) print i;",
			want: "0\n1\n2\n",
		},
		{
			name: "for loop with outer initializer",
			src:  "var i = 10; for (i = 0; i < 2; i = i + 1) print i; print i;",
			want: "0\n1\n2\n",
		},
		{
			name: "break exits innermost loop",
			src: `var i = 0;
while (true) {
    if (i == 2) break;
    print i;
    i = i + 1;
}
print "done";`,
			want: "0\n1\ndone\n",
		},
		{
			name: "break in nested loop",
			src: `for (var i = 0; i < 2; i = i + 1) {
    for (var j = 0; j < 10; j = j + 1) {
        if (j == 1) break;
        print i;
    }
}`,
			want: "0\n1\n",
		},
		{
			name: "dangling else binds to nearest if",
			src:  "if (true) if (false) print 1; else print 2;",
			want: "2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRun(t, tt.src); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFunctions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "call with return",
			src:  "fun add(a, b) { return a + b; } print add(1, 2);",
			want: "3\n",
		},
		{
			name: "no return yields nil",
			src:  "fun f() {} print f();",
			want: "nil\n",
		},
		{
			name: "bare return yields nil",
			src:  "fun f() { return; } print f();",
			want: "nil\n",
		},
		{
			name: "return unwinds nested blocks and loops",
			src: `fun f() {
    while (true) {
        { return "inner"; }
    }
}
print f();`,
			want: "inner\n",
		},
		{
			name: "recursion",
			src: `fun fib(n) {
    if (n < 2) return n;
    return fib(n - 2) + fib(n - 1);
}
print fib(10);`,
			want: "55\n",
		},
		{
			name: "functions print as fn",
			src:  "fun f() {} print f;",
			want: "<fn f>\n",
		},
		{
			name: "arguments evaluate left to right",
			src: `var log = "";
fun note(x) { log = log + x; return x; }
fun three(a, b, c) {}
three(note("a"), note("b"), note("c"));
print log;`,
			want: "abc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRun(t, tt.src); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClosures(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "counter captures and mutates",
			src: `fun makeCounter() {
    var count = 0;
    fun increment() {
        count = count + 1;
        return count;
    }
    return increment;
}
var counter = makeCounter();
print counter();
print counter();
print counter();`,
			want: "1\n2\n3\n",
		},
		{
			name: "two closures share one variable",
			src: `fun makePair() {
    var x = 0;
    fun get() { return x; }
    fun set(v) { x = v; }
    set(42);
    print get();
}
makePair();`,
			want: "42\n",
		},
		{
			name: "independent counters",
			src: `fun makeCounter() {
    var n = 0;
    fun inc() { n = n + 1; return n; }
    return inc;
}
var a = makeCounter();
var b = makeCounter();
a(); a();
print a();
print b();`,
			want: "3\n1\n",
		},
		{
			name: "closure sees declaration scope not call scope",
			src: `var x = "global";
fun outer() {
    var x = "outer";
    fun inner() { print x; }
    inner();
}
outer();`,
			want: "outer\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRun(t, tt.src); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClasses(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "class prints its name",
			src:  "class A {} print A;",
			want: "A\n",
		},
		{
			name: "instance prints class name",
			src:  "class A {} print A();",
			want: "A instance\n",
		},
		{
			name: "fields created by assignment",
			src:  "class A {} var a = A(); a.x = 1; print a.x;",
			want: "1\n",
		},
		{
			name: "method call with this",
			src: `class Greeter {
    greet(name) { return "hello " + name + " from " + this.tag; }
}
var g = Greeter();
g.tag = "g1";
print g.greet("world");`,
			want: "hello world from g1\n",
		},
		{
			name: "init binds fields",
			src: `class Point {
    init(x, y) { this.x = x; this.y = y; }
}
var p = Point(1, 2);
print p.x + p.y;`,
			want: "3\n",
		},
		{
			name: "constructor returns instance despite init return",
			src: `class A {
    init() { return; }
}
print A();`,
			want: "A instance\n",
		},
		{
			name: "fields shadow methods",
			src: `class A {
    m() { return "method"; }
}
var a = A();
a.m = "field";
print a.m;`,
			want: "field\n",
		},
		{
			name: "bound method extraction",
			src: `class A {
    init(v) { this.v = v; }
    get() { return this.v; }
}
var a = A(7);
var m = a.get;
print m();`,
			want: "7\n",
		},
		{
			name: "state shared through aliases",
			src: `class Box {}
var a = Box();
var b = a;
a.v = 5;
print b.v;`,
			want: "5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRun(t, tt.src); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInheritance(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "inherited method",
			src: `class A { m() { return "A.m"; } }
class B < A {}
print B().m();`,
			want: "A.m\n",
		},
		{
			name: "override",
			src: `class A { m() { return "A"; } }
class B < A { m() { return "B"; } }
print B().m();`,
			want: "B\n",
		},
		{
			name: "super calls overridden method",
			src: `class A { m() { return "A"; } }
class B < A { m() { return super.m() + "B"; } }
print B().m();`,
			want: "AB\n",
		},
		{
			name: "super resolves from defining class",
			src: `class A { method() { print "A method"; } }
class B < A {
    method() { print "B method"; }
    test() { super.method(); }
}
class C < B {}
C().test();`,
			want: "A method\n",
		},
		{
			name: "inherited init",
			src: `class A { init(v) { this.v = v; } }
class B < A {}
print B(9).v;`,
			want: "9\n",
		},
		{
			name: "super init",
			src: `class A { init() { this.base = "base"; } }
class B < A {
    init() {
        super.init();
        this.extra = "extra";
    }
}
var b = B();
print b.base + " " + b.extra;`,
			want: "base extra\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRun(t, tt.src); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{
			name:    "undefined variable",
			src:     "print nope;",
			wantMsg: "undefined variable 'nope'",
		},
		{
			name:    "assignment to undefined variable",
			src:     "nope = 1;",
			wantMsg: "undefined variable 'nope'",
		},
		{
			name:    "mixed plus operands",
			src:     `print 1 + "a";`,
			wantMsg: "operands of '+' must be two numbers or two strings",
		},
		{
			name:    "non-numeric comparison",
			src:     `print "a" < "b";`,
			wantMsg: "operands of '<' must be numbers",
		},
		{
			name:    "negating a string",
			src:     `print -"x";`,
			wantMsg: "operand of '-' must be a number",
		},
		{
			name:    "calling a non-callable",
			src:     `"not a function"();`,
			wantMsg: "can only call functions and classes",
		},
		{
			name:    "arity mismatch",
			src:     "fun f(a, b) {} f(1);",
			wantMsg: "expected 2 arguments but got 1",
		},
		{
			name:    "property on non-instance",
			src:     "var x = 1; print x.y;",
			wantMsg: "only instances have properties",
		},
		{
			name:    "undefined property",
			src:     "class A {} print A().missing;",
			wantMsg: "undefined property 'missing'",
		},
		{
			name:    "superclass must be a class",
			src:     "var NotAClass = 1; class A < NotAClass {}",
			wantMsg: "superclass must be a class",
		},
		{
			name:    "stack overflow",
			src:     "fun f() { return f(); } f();",
			wantMsg: "stack overflow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.src)
			if err == nil {
				t.Fatalf("expected runtime error containing %q", tt.wantMsg)
			}
			re, ok := err.(*interp.RuntimeError)
			if !ok {
				t.Fatalf("error is %T, want *interp.RuntimeError", err)
			}
			if !strings.Contains(re.Message, tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", re.Message, tt.wantMsg)
			}
		})
	}
}

func TestRuntimeErrorPosition(t *testing.T) {
	_, err := run(t, "var x = 1;\nprint nope;\n")
	if err == nil {
		t.Fatal("expected runtime error")
	}
	re := err.(*interp.RuntimeError)
	if re.Pos.Line != 2 {
		t.Errorf("error at line %d, want 2", re.Pos.Line)
	}
}

func TestRuntimeErrorStopsExecution(t *testing.T) {
	var out strings.Builder
	stmts, err := parser.ParseSource(`print "before"; print nope; print "after";`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	i := interp.New(interp.Options{Output: &out})
	if err := i.Run(stmts); err == nil {
		t.Fatal("expected runtime error")
	}
	if got := out.String(); got != "before\n" {
		t.Errorf("output = %q, want %q", got, "before\n")
	}
}

func TestClockNative(t *testing.T) {
	fixed := time.Unix(1000, 500_000_000)
	var out strings.Builder
	stmts, err := parser.ParseSource("print clock();")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	i := interp.New(interp.Options{
		Output: &out,
		Now:    func() time.Time { return fixed },
	})
	if err := i.Run(stmts); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "1000.5\n" {
		t.Errorf("output = %q, want %q", got, "1000.5\n")
	}
}

func TestGlobalsPersistAcrossRuns(t *testing.T) {
	var out strings.Builder
	i := interp.New(interp.Options{Output: &out})

	first, err := parser.ParseSource("var x = 41;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if err := i.Run(first); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	second, err := parser.ParseSource("print x + 1;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if err := i.Run(second); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "42\n" {
		t.Errorf("output = %q, want %q", got, "42\n")
	}
}
