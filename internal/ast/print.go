package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer provides pretty-printing for AST nodes.
// It outputs the program in canonical source form, suitable for
// debugging what the parser actually built (note that for loops appear
// in their desugared while form).
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes a pretty-printed representation of the node to the writer.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

// PrintProgram writes a pretty-printed representation of a statement list.
func (p *Printer) PrintProgram(stmts []Stmt) error {
	for _, s := range stmts {
		p.printStmt(s)
		p.printf("\n")
	}
	return p.err
}

// Format returns the canonical source form of a node as a string.
func Format(node Node) string {
	var sb strings.Builder
	p := NewPrinter(&sb)
	p.printNode(node)
	return sb.String()
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, "    ")
	}
}

func (p *Printer) printNode(node Node) {
	if node == nil {
		p.printf("<nil>")
		return
	}

	switch n := node.(type) {
	case Expr:
		p.printExpr(n)
	case Stmt:
		p.printStmt(n)
	default:
		p.printf("<%T>", node)
	}
}

func (p *Printer) printExpr(e Expr) {
	if e == nil {
		p.printf("<nil>")
		return
	}

	switch n := e.(type) {
	case *LitExpr:
		if n.Value.IsStr() {
			p.printf("%q", n.Value.AsStr())
		} else {
			p.printf("%s", n.Value.Format())
		}

	case *IdentExpr:
		p.printf("%s", n.Name)

	case *BinaryExpr:
		p.printExpr(n.Left)
		p.printf(" %s ", n.Op)
		p.printExpr(n.Right)

	case *LogicalExpr:
		p.printExpr(n.Left)
		p.printf(" %s ", n.Op)
		p.printExpr(n.Right)

	case *UnaryExpr:
		p.printf("%s", n.Op)
		p.printExpr(n.Right)

	case *GroupExpr:
		p.printf("(")
		p.printExpr(n.Expr)
		p.printf(")")

	case *AssignExpr:
		p.printf("%s = ", n.Name)
		p.printExpr(n.Value)

	case *CallExpr:
		p.printExpr(n.Callee)
		p.printf("(")
		for i, arg := range n.Args {
			if i > 0 {
				p.printf(", ")
			}
			p.printExpr(arg)
		}
		p.printf(")")

	case *GetExpr:
		p.printExpr(n.Object)
		p.printf(".%s", n.Name)

	case *SetExpr:
		p.printExpr(n.Object)
		p.printf(".%s = ", n.Name)
		p.printExpr(n.Value)

	case *ThisExpr:
		p.printf("this")

	case *SuperExpr:
		p.printf("super.%s", n.Method)

	default:
		p.printf("<%T>", e)
	}
}

func (p *Printer) printStmt(s Stmt) {
	if s == nil {
		p.printf("<nil>")
		return
	}

	switch n := s.(type) {
	case *ExprStmt:
		p.printExpr(n.Expr)
		p.printf(";")

	case *PrintStmt:
		p.printf("print ")
		p.printExpr(n.Expr)
		p.printf(";")

	case *VarStmt:
		p.printf("var %s", n.Name)
		if n.Init != nil {
			p.printf(" = ")
			p.printExpr(n.Init)
		}
		p.printf(";")

	case *BlockStmt:
		p.printBlock(n.Stmts)

	case *IfStmt:
		p.printf("if (")
		p.printExpr(n.Cond)
		p.printf(") ")
		p.printStmt(n.Then)
		if n.Else != nil {
			p.printf(" else ")
			p.printStmt(n.Else)
		}

	case *WhileStmt:
		p.printf("while (")
		p.printExpr(n.Cond)
		p.printf(") ")
		p.printStmt(n.Body)

	case *BreakStmt:
		p.printf("break;")

	case *ReturnStmt:
		p.printf("return")
		if n.Value != nil {
			p.printf(" ")
			p.printExpr(n.Value)
		}
		p.printf(";")

	case *FuncStmt:
		p.printf("fun ")
		p.printFunc(n)

	case *ClassStmt:
		p.printf("class %s", n.Name)
		if n.Superclass != nil {
			p.printf(" < %s", n.Superclass.Name)
		}
		p.printf(" {\n")
		p.indent++
		for _, m := range n.Methods {
			p.writeIndent()
			p.printFunc(m)
			p.printf("\n")
		}
		p.indent--
		p.writeIndent()
		p.printf("}")

	default:
		p.printf("<%T>", s)
	}
}

func (p *Printer) printFunc(f *FuncStmt) {
	p.printf("%s(", f.Name)
	for i, param := range f.Params {
		if i > 0 {
			p.printf(", ")
		}
		p.printf("%s", param)
	}
	p.printf(") ")
	p.printBlock(f.Body)
}

func (p *Printer) printBlock(stmts []Stmt) {
	p.printf("{\n")
	p.indent++
	for _, s := range stmts {
		p.writeIndent()
		p.printStmt(s)
		p.printf("\n")
	}
	p.indent--
	p.writeIndent()
	p.printf("}")
}
