package parser_test

import (
	"strings"
	"testing"

	"github.com/kolkov/glox/internal/ast"
	"github.com/kolkov/glox/internal/parser"
	"github.com/kolkov/glox/internal/token"
)

func TestParseEmpty(t *testing.T) {
	stmts, err := parser.ParseSource("")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(stmts) != 0 {
		t.Errorf("statements = %d, want 0", len(stmts))
	}
}

// TestParseProgram tests parsing complete programs.
func TestParseProgram(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantStmts int
		wantErr   bool
	}{
		{
			name:      "expression statement",
			src:       "1 + 2;",
			wantStmts: 1,
		},
		{
			name:      "print statement",
			src:       `print "hello";`,
			wantStmts: 1,
		},
		{
			name:      "var declarations",
			src:       "var x; var y = 1;",
			wantStmts: 2,
		},
		{
			name:      "block",
			src:       "{ var x = 1; print x; }",
			wantStmts: 1,
		},
		{
			name:      "if else",
			src:       "if (x) print 1; else print 2;",
			wantStmts: 1,
		},
		{
			name:      "while",
			src:       "while (x < 10) x = x + 1;",
			wantStmts: 1,
		},
		{
			name:      "function",
			src:       "fun add(a, b) { return a + b; }",
			wantStmts: 1,
		},
		{
			name:      "class",
			src:       "class Point { init(x, y) { this.x = x; this.y = y; } }",
			wantStmts: 1,
		},
		{
			name:      "class with superclass",
			src:       "class B {} class C < B {}",
			wantStmts: 2,
		},
		{
			name:    "missing semicolon",
			src:     "print 1",
			wantErr: true,
		},
		{
			name:    "unexpected token",
			src:     "var = 3;",
			wantErr: true,
		},
		{
			name:    "unclosed paren",
			src:     "(1 + 2;",
			wantErr: true,
		},
		{
			name:    "return at top level",
			src:     "return 1;",
			wantErr: true,
		},
		{
			name:    "break outside loop",
			src:     "break;",
			wantErr: true,
		},
		{
			name:    "break in function outside loop",
			src:     "while (true) { fun f() { break; } }",
			wantErr: true,
		},
		{
			name:      "break inside loop",
			src:       "while (true) { break; }",
			wantStmts: 1,
		},
		{
			name:      "return inside function",
			src:       "fun f() { return; }",
			wantStmts: 1,
		},
		{
			name:    "this outside class",
			src:     "print this;",
			wantErr: true,
		},
		{
			name:    "super outside class",
			src:     "print super.m;",
			wantErr: true,
		},
		{
			name:    "super without superclass",
			src:     "class A { m() { return super.m(); } }",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := parser.ParseSource(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(stmts) != tt.wantStmts {
				t.Errorf("statements = %d, want %d", len(stmts), tt.wantStmts)
			}
		})
	}
}

// TestParsePrecedence checks that operators nest according to the
// grammar by comparing the canonical form of the parsed tree.
func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3;", "1 + 2 * 3"},
		{"(1 + 2) * 3;", "(1 + 2) * 3"},
		{"1 < 2 == true;", "1 < 2 == true"},
		{"!1 == 2;", "!1 == 2"},
		{"-a.b;", "-a.b"},
		{"a or b and c;", "a or b and c"},
		{"a = b = c;", "a = b = c"},
		{"f(1)(2);", "f(1)(2)"},
		{"a.b.c;", "a.b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			stmts, err := parser.ParseSource(tt.src)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(stmts) != 1 {
				t.Fatalf("statements = %d, want 1", len(stmts))
			}
			es, ok := stmts[0].(*ast.ExprStmt)
			if !ok {
				t.Fatalf("statement is %T, want *ast.ExprStmt", stmts[0])
			}
			if got := ast.Format(es.Expr); got != tt.want {
				t.Errorf("parsed as %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePrecedenceShape(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3).
	stmts, err := parser.ParseSource("1 + 2 * 3;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	bin := stmts[0].(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	if bin.Op != token.ADD {
		t.Fatalf("root op = %v, want +", bin.Op)
	}
	right, ok := bin.Right.(*ast.BinaryExpr)
	if !ok || right.Op != token.MUL {
		t.Fatalf("right operand is %T, want * expression", bin.Right)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	// 1 - 2 - 3 must parse as (1 - 2) - 3.
	stmts, err := parser.ParseSource("1 - 2 - 3;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	bin := stmts[0].(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	if _, ok := bin.Left.(*ast.BinaryExpr); !ok {
		t.Fatalf("left operand is %T, want nested subtraction", bin.Left)
	}
}

func TestParseAssignmentTargets(t *testing.T) {
	// Variable target produces AssignExpr, property target SetExpr.
	stmts, err := parser.ParseSource("x = 1; a.b = 2;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, ok := stmts[0].(*ast.ExprStmt).Expr.(*ast.AssignExpr); !ok {
		t.Errorf("x = 1 parsed as %T, want *ast.AssignExpr", stmts[0].(*ast.ExprStmt).Expr)
	}
	if _, ok := stmts[1].(*ast.ExprStmt).Expr.(*ast.SetExpr); !ok {
		t.Errorf("a.b = 2 parsed as %T, want *ast.SetExpr", stmts[1].(*ast.ExprStmt).Expr)
	}
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, err := parser.ParseSource("1 + 2 = 3;")
	if err == nil {
		t.Fatal("expected error for invalid assignment target")
	}
	if !strings.Contains(err.Error(), "invalid assignment target") {
		t.Errorf("error = %v, want invalid assignment target", err)
	}
}

func TestParseForDesugaring(t *testing.T) {
	// for (var i = 0; i < 3; i = i + 1) print i;
	// desugars to { var i = 0; while (i < 3) { print i; i = i + 1; } }
	stmts, err := parser.ParseSource("for (var i = 0; i < 3; i = i + 1) print i;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	block, ok := stmts[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("for parsed as %T, want enclosing *ast.BlockStmt", stmts[0])
	}
	if len(block.Stmts) != 2 {
		t.Fatalf("enclosing block has %d statements, want 2", len(block.Stmts))
	}
	if _, ok := block.Stmts[0].(*ast.VarStmt); !ok {
		t.Errorf("first statement is %T, want *ast.VarStmt", block.Stmts[0])
	}
	loop, ok := block.Stmts[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("second statement is %T, want *ast.WhileStmt", block.Stmts[1])
	}
	body, ok := loop.Body.(*ast.BlockStmt)
	if !ok || len(body.Stmts) != 2 {
		t.Fatalf("loop body must be a block of body+increment, got %T", loop.Body)
	}
}

func TestParseForEmptyClauses(t *testing.T) {
	// for (;;) with no clauses becomes while (true).
	stmts, err := parser.ParseSource("for (;;) break;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	loop, ok := stmts[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("for (;;) parsed as %T, want *ast.WhileStmt", stmts[0])
	}
	lit, ok := loop.Cond.(*ast.LitExpr)
	if !ok || !lit.Value.AsBool() {
		t.Errorf("condition = %v, want literal true", loop.Cond)
	}
}

func TestParseErrorAccumulation(t *testing.T) {
	// Two independent errors on different lines are both reported in
	// one pass thanks to statement-boundary synchronization.
	src := "var = 1;\nprint 2;\nvar y 3;\n"
	_, err := parser.ParseSource(src)
	if err == nil {
		t.Fatal("expected parse errors")
	}
	el, ok := err.(parser.ErrorList)
	if !ok {
		t.Fatalf("expected ErrorList, got %T", err)
	}
	if len(el) != 2 {
		t.Fatalf("errors = %d, want 2: %v", len(el), el)
	}
	if el[0].Pos.Line != 1 {
		t.Errorf("first error at line %d, want 1", el[0].Pos.Line)
	}
	if el[1].Pos.Line != 3 {
		t.Errorf("second error at line %d, want 3", el[1].Pos.Line)
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := parser.ParseSource("\n\n  var;\n")
	if err == nil {
		t.Fatal("expected parse error")
	}
	el := err.(parser.ErrorList)
	if el[0].Pos.Line != 3 {
		t.Errorf("error at line %d, want 3", el[0].Pos.Line)
	}
}

func TestParseTooManyArguments(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("f(")
	for i := 0; i < 256; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("1")
	}
	sb.WriteString(");")

	_, err := parser.ParseSource(sb.String())
	if err == nil {
		t.Fatal("expected error for 256 arguments")
	}
	if !strings.Contains(err.Error(), "more than 255 arguments") {
		t.Errorf("error = %v, want argument limit message", err)
	}
}

func TestParseMethodsHaveNoFunKeyword(t *testing.T) {
	stmts, err := parser.ParseSource("class A { m() { return 1; } n() { return 2; } }")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	class := stmts[0].(*ast.ClassStmt)
	if len(class.Methods) != 2 {
		t.Fatalf("methods = %d, want 2", len(class.Methods))
	}
	if class.Methods[0].Name != "m" || class.Methods[1].Name != "n" {
		t.Errorf("method names = %s, %s", class.Methods[0].Name, class.Methods[1].Name)
	}
}
