package ast

import (
	"github.com/kolkov/glox/internal/token"
	"github.com/kolkov/glox/internal/types"
)

// -----------------------------------------------------------------------------
// Literals and references
// -----------------------------------------------------------------------------

// LitExpr represents a literal expression.
// Examples: 42, "hello", true, nil
type LitExpr struct {
	BaseExpr
	Value types.Value // Literal value (nil, bool, number, or string)
}

// IdentExpr represents a variable reference.
// Examples: x, counter
type IdentExpr struct {
	BaseExpr
	Name string // Variable name
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// BinaryExpr represents a binary operation.
// Examples: a + b, x == y, n < limit
type BinaryExpr struct {
	BaseExpr
	Left  Expr           // Left operand
	Op    token.Type     // Operator token
	OpPos token.Position // Operator position (for runtime errors)
	Right Expr           // Right operand
}

// LogicalExpr represents a short-circuiting logical operation.
// The right operand is evaluated only if the left does not already
// determine the result.
// Examples: a and b, x or fallback
type LogicalExpr struct {
	BaseExpr
	Left  Expr       // Left operand
	Op    token.Type // AND or OR
	Right Expr       // Right operand
}

// UnaryExpr represents a unary operation.
// Examples: -x, !flag
type UnaryExpr struct {
	BaseExpr
	Op    token.Type     // Operator token (SUB or NOT)
	OpPos token.Position // Operator position (for runtime errors)
	Right Expr           // Operand
}

// GroupExpr represents a parenthesized expression.
// Example: (a + b)
type GroupExpr struct {
	BaseExpr
	Expr Expr // Inner expression
}

// AssignExpr represents an assignment to a variable.
// Example: x = 1
type AssignExpr struct {
	BaseExpr
	Name  string // Target variable name
	Value Expr   // Value expression
}

// -----------------------------------------------------------------------------
// Calls and object access
// -----------------------------------------------------------------------------

// CallExpr represents a call expression.
// Examples: f(), clock(), obj.method(a, b)
type CallExpr struct {
	BaseExpr
	Callee Expr           // Called expression
	Paren  token.Position // Position of closing paren (for arity errors)
	Args   []Expr         // Arguments (may be empty)
}

// GetExpr represents a property access.
// Example: point.x
type GetExpr struct {
	BaseExpr
	Object  Expr           // Object expression
	Name    string         // Property name
	NamePos token.Position // Property name position
}

// SetExpr represents a property assignment.
// Example: point.x = 1
type SetExpr struct {
	BaseExpr
	Object  Expr           // Object expression
	Name    string         // Property name
	NamePos token.Position // Property name position
	Value   Expr           // Value expression
}

// ThisExpr represents the receiver reference inside a method.
type ThisExpr struct {
	BaseExpr
}

// SuperExpr represents a superclass method access.
// Example: super.init(name)
type SuperExpr struct {
	BaseExpr
	Method string // Method name after the dot
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

// Ensure all expression types implement Expr interface.
var (
	_ Expr = (*LitExpr)(nil)
	_ Expr = (*IdentExpr)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*LogicalExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*GroupExpr)(nil)
	_ Expr = (*AssignExpr)(nil)
	_ Expr = (*CallExpr)(nil)
	_ Expr = (*GetExpr)(nil)
	_ Expr = (*SetExpr)(nil)
	_ Expr = (*ThisExpr)(nil)
	_ Expr = (*SuperExpr)(nil)
)
