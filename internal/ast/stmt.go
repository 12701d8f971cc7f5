package ast

// -----------------------------------------------------------------------------
// Basic statements
// -----------------------------------------------------------------------------

// ExprStmt represents an expression used as a statement.
// Examples: counter = counter + 1; f();
type ExprStmt struct {
	BaseStmt
	Expr Expr // Expression to evaluate
}

// PrintStmt represents a print statement.
// Example: print "hello";
type PrintStmt struct {
	BaseStmt
	Expr Expr // Expression to print
}

// VarStmt represents a variable declaration.
// Examples: var x; var y = 1;
type VarStmt struct {
	BaseStmt
	Name string // Variable name
	Init Expr   // Initializer (nil means the variable starts as nil)
}

// BlockStmt represents a braced block of statements.
// Example: { stmt1; stmt2; }
type BlockStmt struct {
	BaseStmt
	Stmts []Stmt // Statements in the block (may be empty)
}

// -----------------------------------------------------------------------------
// Control flow statements
// -----------------------------------------------------------------------------

// IfStmt represents an if or if-else statement.
// Examples:
//   - if (cond) stmt
//   - if (cond) { stmts } else { stmts }
type IfStmt struct {
	BaseStmt
	Cond Expr // Condition expression
	Then Stmt // Then branch
	Else Stmt // Else branch (nil if no else, or another *IfStmt for else-if)
}

// WhileStmt represents a while loop. A for loop desugars to a WhileStmt
// wrapped in a BlockStmt during parsing, so the interpreter never sees
// a for node.
// Example: while (cond) { body }
type WhileStmt struct {
	BaseStmt
	Cond Expr // Loop condition
	Body Stmt // Loop body
}

// BreakStmt represents a break statement.
// Exits the innermost enclosing loop.
type BreakStmt struct {
	BaseStmt
}

// ReturnStmt represents a return statement.
// Returns from the current function, optionally with a value.
// Example: return x + 1;
type ReturnStmt struct {
	BaseStmt
	Value Expr // Return value (nil for bare return)
}

// -----------------------------------------------------------------------------
// Declarations
// -----------------------------------------------------------------------------

// FuncStmt represents a function declaration. The same node is used for
// class methods; the parser sets no special flag, the interpreter
// distinguishes an initializer by its name.
// Example: fun add(a, b) { return a + b; }
type FuncStmt struct {
	BaseStmt
	Name   string   // Function name
	Params []string // Parameter names (at most 255)
	Body   []Stmt   // Function body statements
}

// ClassStmt represents a class declaration.
// Example: class Circle < Shape { area() { ... } }
type ClassStmt struct {
	BaseStmt
	Name       string      // Class name
	Superclass *IdentExpr  // Superclass reference (nil if none)
	Methods    []*FuncStmt // Method declarations
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

// Ensure all statement types implement Stmt interface.
var (
	_ Stmt = (*ExprStmt)(nil)
	_ Stmt = (*PrintStmt)(nil)
	_ Stmt = (*VarStmt)(nil)
	_ Stmt = (*BlockStmt)(nil)
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*WhileStmt)(nil)
	_ Stmt = (*BreakStmt)(nil)
	_ Stmt = (*ReturnStmt)(nil)
	_ Stmt = (*FuncStmt)(nil)
	_ Stmt = (*ClassStmt)(nil)
)
