// Package ast defines the abstract syntax tree for Lox programs.
//
// The AST is built once by the parser and is read-only afterwards: the
// interpreter and the debug printer only walk it. Every node carries
// source positions for error reporting.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr (interface) - expressions that produce values
//	│   ├── LitExpr, IdentExpr - literals and references
//	│   ├── BinaryExpr, LogicalExpr, UnaryExpr, GroupExpr - operations
//	│   ├── AssignExpr, CallExpr - mutation and invocation
//	│   └── GetExpr, SetExpr, ThisExpr, SuperExpr - object access
//	└── Stmt (interface) - statements that perform actions
//	    ├── ExprStmt, PrintStmt, VarStmt, BlockStmt - basic
//	    ├── IfStmt, WhileStmt, BreakStmt - control flow
//	    └── FuncStmt, ReturnStmt, ClassStmt - declarations
package ast

import "github.com/kolkov/glox/internal/token"

// Node is the interface implemented by all AST nodes.
// It provides source position information for error reporting.
type Node interface {
	// Pos returns the position of the first character belonging to this node.
	Pos() token.Position
}

// Expr is the interface for all expression nodes.
// Expressions are AST nodes that evaluate to a value.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
// Statements are AST nodes that perform actions.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// BaseExpr provides the common position field for expression nodes.
// Embedded in concrete expression types.
type BaseExpr struct {
	StartPos token.Position // Position of first token
}

func (b *BaseExpr) Pos() token.Position { return b.StartPos }
func (b *BaseExpr) exprNode()           {}

// BaseStmt provides the common position field for statement nodes.
// Embedded in concrete statement types.
type BaseStmt struct {
	StartPos token.Position // Position of first token
}

func (b *BaseStmt) Pos() token.Position { return b.StartPos }
func (b *BaseStmt) stmtNode()           {}

// IsAssignTarget returns true if the expression can appear on the
// left-hand side of an assignment (a variable or a property access).
func IsAssignTarget(e Expr) bool {
	switch e.(type) {
	case *IdentExpr, *GetExpr:
		return true
	default:
		return false
	}
}

// MakeBaseExpr creates a BaseExpr at the given position.
func MakeBaseExpr(start token.Position) BaseExpr {
	return BaseExpr{StartPos: start}
}

// MakeBaseStmt creates a BaseStmt at the given position.
func MakeBaseStmt(start token.Position) BaseStmt {
	return BaseStmt{StartPos: start}
}
