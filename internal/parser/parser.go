package parser

import (
	"strconv"

	"github.com/kolkov/glox/internal/ast"
	"github.com/kolkov/glox/internal/lexer"
	"github.com/kolkov/glox/internal/token"
	"github.com/kolkov/glox/internal/types"
)

// maxArgs is the maximum number of arguments or parameters in a call
// or function declaration.
const maxArgs = 255

// Parser is a recursive descent parser for Lox programs.
// It consumes the token sequence produced by the lexer and builds the
// AST, accumulating errors and synchronizing at statement boundaries so
// one pass reports every syntax error in the source.
type Parser struct {
	toks   []lexer.Token // Token sequence, terminated with EOF
	idx    int           // Index of current token
	errors ErrorList     // Accumulated errors

	// Parsing state
	loopDepth  int    // nesting depth of loops (for break validation)
	funcDepth  int    // nesting depth of functions (for return validation)
	classDepth int    // nesting depth of class bodies (for this/super validation)
	superStack []bool // per enclosing class: does it declare a superclass?
}

// Parse parses a Lox program from a token sequence.
// Returns the statement list and any parse errors encountered; a
// non-nil error means the program must not be executed.
func Parse(toks []lexer.Token) ([]ast.Stmt, error) {
	p := &Parser{toks: toks}

	var stmts []ast.Stmt
	for !p.atEnd() {
		if stmt := p.parseDeclaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	if err := p.errors.Err(); err != nil {
		return nil, err
	}
	return stmts, nil
}

// ParseSource tokenizes and parses Lox source code in one step.
// Useful for tests; scan errors are returned as-is.
func ParseSource(src string) ([]ast.Stmt, error) {
	toks, err := lexer.TokenizeString(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// tok returns the current token.
func (p *Parser) tok() lexer.Token {
	return p.toks[p.idx]
}

// prev returns the most recently consumed token.
func (p *Parser) prev() lexer.Token {
	if p.idx == 0 {
		return p.toks[0]
	}
	return p.toks[p.idx-1]
}

// next advances to the next token. The terminating EOF is never consumed.
func (p *Parser) next() {
	if !p.atEnd() {
		p.idx++
	}
}

func (p *Parser) atEnd() bool {
	return p.toks[p.idx].Type == token.EOF
}

// accept consumes the current token if it matches any of the given
// types and returns true.
func (p *Parser) accept(types ...token.Type) bool {
	for _, t := range types {
		if p.tok().Type == t {
			p.next()
			return true
		}
	}
	return false
}

// expect checks that the current token is t and consumes it.
// If not, it returns an error describing what was expected.
func (p *Parser) expect(t token.Type, context string) error {
	if p.tok().Type != t {
		return expectedError(p.tok().Pos, "'"+t.String()+"' "+context, p.tokenDesc())
	}
	p.next()
	return nil
}

// expectIdent expects an IDENT token and returns its name and position.
func (p *Parser) expectIdent(context string) (string, token.Position, error) {
	tok := p.tok()
	if tok.Type != token.IDENT {
		return "", tok.Pos, expectedError(tok.Pos, context, p.tokenDesc())
	}
	p.next()
	return tok.Value, tok.Pos, nil
}

// tokenDesc returns a description of the current token for error messages.
func (p *Parser) tokenDesc() string {
	tok := p.tok()
	switch tok.Type {
	case token.IDENT, token.NUMBER:
		return "'" + tok.Value + "'"
	case token.STRING:
		return "string"
	case token.EOF:
		return "end of file"
	default:
		return "'" + tok.Type.String() + "'"
	}
}

// error records a parse error.
func (p *Parser) error(err error) {
	if pe, ok := err.(*ParseError); ok {
		p.errors = append(p.errors, pe)
		return
	}
	p.errors = append(p.errors, &ParseError{Pos: p.tok().Pos, Message: err.Error()})
}

// synchronize discards tokens until a likely statement boundary: just
// past a semicolon, or just before a statement-starting keyword. This
// keeps one syntax error from cascading into spurious follow-ups.
func (p *Parser) synchronize() {
	p.next()
	for !p.atEnd() {
		if p.prev().Type == token.SEMICOLON {
			return
		}
		switch p.tok().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.next()
	}
}

// -----------------------------------------------------------------------------
// Declarations
// -----------------------------------------------------------------------------

// parseDeclaration parses a declaration or statement. On a parse error
// it records the error, synchronizes, and returns nil so the caller can
// keep collecting diagnostics for the rest of the source.
func (p *Parser) parseDeclaration() ast.Stmt {
	var stmt ast.Stmt
	var err error

	switch p.tok().Type {
	case token.CLASS:
		stmt, err = p.parseClass()
	case token.FUN:
		stmt, err = p.parseFun()
	case token.VAR:
		stmt, err = p.parseVar()
	default:
		stmt, err = p.parseStatement()
	}

	if err != nil {
		p.error(err)
		p.synchronize()
		return nil
	}
	return stmt
}

// parseVar parses a variable declaration: var name ( = expr )? ;
func (p *Parser) parseVar() (ast.Stmt, error) {
	startPos := p.tok().Pos
	p.next() // consume 'var'

	name, _, err := p.expectIdent("variable name")
	if err != nil {
		return nil, err
	}

	var init ast.Expr
	if p.accept(token.ASSIGN) {
		init, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(token.SEMICOLON, "after variable declaration"); err != nil {
		return nil, err
	}
	return &ast.VarStmt{
		BaseStmt: ast.MakeBaseStmt(startPos),
		Name:     name,
		Init:     init,
	}, nil
}

// parseFun parses a function declaration starting at 'fun'.
func (p *Parser) parseFun() (ast.Stmt, error) {
	startPos := p.tok().Pos
	p.next() // consume 'fun'
	return p.parseFunction(startPos, "function")
}

// parseFunction parses a named function: name(params) { body }.
// Used for both fun declarations and class methods (kind selects the
// error wording).
func (p *Parser) parseFunction(startPos token.Position, kind string) (*ast.FuncStmt, error) {
	name, _, err := p.expectIdent(kind + " name")
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.LPAREN, "after "+kind+" name"); err != nil {
		return nil, err
	}

	var params []string
	if p.tok().Type != token.RPAREN {
		for {
			if len(params) >= maxArgs {
				// Recorded but not fatal; parsing continues.
				p.error(errorf(p.tok().Pos, "cannot have more than %d parameters", maxArgs))
			}
			param, _, err := p.expectIdent("parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.accept(token.COMMA) {
				break
			}
		}
	}
	if err := p.expect(token.RPAREN, "after parameters"); err != nil {
		return nil, err
	}

	if err := p.expect(token.LBRACE, "before "+kind+" body"); err != nil {
		return nil, err
	}

	p.funcDepth++
	savedLoops := p.loopDepth
	p.loopDepth = 0 // break may not cross a function boundary
	body, err := p.parseBlockStmts()
	p.loopDepth = savedLoops
	p.funcDepth--
	if err != nil {
		return nil, err
	}

	return &ast.FuncStmt{
		BaseStmt: ast.MakeBaseStmt(startPos),
		Name:     name,
		Params:   params,
		Body:     body,
	}, nil
}

// parseClass parses a class declaration:
// class Name ( < Superclass )? { methods }
func (p *Parser) parseClass() (ast.Stmt, error) {
	startPos := p.tok().Pos
	p.next() // consume 'class'

	name, _, err := p.expectIdent("class name")
	if err != nil {
		return nil, err
	}

	var superclass *ast.IdentExpr
	if p.accept(token.LESS) {
		superName, superPos, err := p.expectIdent("superclass name")
		if err != nil {
			return nil, err
		}
		superclass = &ast.IdentExpr{
			BaseExpr: ast.MakeBaseExpr(superPos),
			Name:     superName,
		}
	}

	if err := p.expect(token.LBRACE, "before class body"); err != nil {
		return nil, err
	}

	p.classDepth++
	p.superStack = append(p.superStack, superclass != nil)
	defer func() {
		p.classDepth--
		p.superStack = p.superStack[:len(p.superStack)-1]
	}()

	var methods []*ast.FuncStmt
	for p.tok().Type != token.RBRACE && !p.atEnd() {
		method, err := p.parseFunction(p.tok().Pos, "method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	if err := p.expect(token.RBRACE, "after class body"); err != nil {
		return nil, err
	}

	return &ast.ClassStmt{
		BaseStmt:   ast.MakeBaseStmt(startPos),
		Name:       name,
		Superclass: superclass,
		Methods:    methods,
	}, nil
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.tok().Type {
	case token.PRINT:
		return p.parsePrint()
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		return p.parseBreak()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parsePrint() (ast.Stmt, error) {
	startPos := p.tok().Pos
	p.next() // consume 'print'

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SEMICOLON, "after value"); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{
		BaseStmt: ast.MakeBaseStmt(startPos),
		Expr:     expr,
	}, nil
}

func (p *Parser) parseBlock() (ast.Stmt, error) {
	startPos := p.tok().Pos
	p.next() // consume '{'

	stmts, err := p.parseBlockStmts()
	if err != nil {
		return nil, err
	}
	return &ast.BlockStmt{
		BaseStmt: ast.MakeBaseStmt(startPos),
		Stmts:    stmts,
	}, nil
}

// parseBlockStmts parses statements until the closing brace, which it
// consumes. The opening brace must already be consumed.
func (p *Parser) parseBlockStmts() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for p.tok().Type != token.RBRACE && !p.atEnd() {
		if stmt := p.parseDeclaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if err := p.expect(token.RBRACE, "after block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	startPos := p.tok().Pos
	p.next() // consume 'if'

	if err := p.expect(token.LPAREN, "after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN, "after if condition"); err != nil {
		return nil, err
	}

	thenStmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	var elseStmt ast.Stmt
	if p.accept(token.ELSE) {
		elseStmt, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfStmt{
		BaseStmt: ast.MakeBaseStmt(startPos),
		Cond:     cond,
		Then:     thenStmt,
		Else:     elseStmt,
	}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	startPos := p.tok().Pos
	p.next() // consume 'while'

	if err := p.expect(token.LPAREN, "after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN, "after while condition"); err != nil {
		return nil, err
	}

	p.loopDepth++
	body, err := p.parseStatement()
	p.loopDepth--
	if err != nil {
		return nil, err
	}

	return &ast.WhileStmt{
		BaseStmt: ast.MakeBaseStmt(startPos),
		Cond:     cond,
		Body:     body,
	}, nil
}

// parseFor parses a C-style for loop and desugars it into an
// equivalent while loop:
//
//	for (init; cond; incr) body
//
// becomes
//
//	{ init; while (cond) { body; incr; } }
func (p *Parser) parseFor() (ast.Stmt, error) {
	startPos := p.tok().Pos
	p.next() // consume 'for'

	if err := p.expect(token.LPAREN, "after 'for'"); err != nil {
		return nil, err
	}

	// Initializer: declaration, expression, or empty.
	var init ast.Stmt
	var err error
	switch p.tok().Type {
	case token.SEMICOLON:
		p.next()
	case token.VAR:
		init, err = p.parseVar()
		if err != nil {
			return nil, err
		}
	default:
		init, err = p.parseExprStmt()
		if err != nil {
			return nil, err
		}
	}

	// Condition: empty means always true.
	var cond ast.Expr
	if p.tok().Type != token.SEMICOLON {
		cond, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.SEMICOLON, "after loop condition"); err != nil {
		return nil, err
	}

	// Increment: optional.
	var incr ast.Expr
	if p.tok().Type != token.RPAREN {
		incr, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.RPAREN, "after for clauses"); err != nil {
		return nil, err
	}

	p.loopDepth++
	body, err := p.parseStatement()
	p.loopDepth--
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = &ast.BlockStmt{
			BaseStmt: ast.MakeBaseStmt(body.Pos()),
			Stmts: []ast.Stmt{
				body,
				&ast.ExprStmt{BaseStmt: ast.MakeBaseStmt(incr.Pos()), Expr: incr},
			},
		}
	}

	if cond == nil {
		cond = &ast.LitExpr{
			BaseExpr: ast.MakeBaseExpr(startPos),
			Value:    types.Bool(true),
		}
	}

	var loop ast.Stmt = &ast.WhileStmt{
		BaseStmt: ast.MakeBaseStmt(startPos),
		Cond:     cond,
		Body:     body,
	}

	if init != nil {
		loop = &ast.BlockStmt{
			BaseStmt: ast.MakeBaseStmt(startPos),
			Stmts:    []ast.Stmt{init, loop},
		}
	}
	return loop, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	startPos := p.tok().Pos
	p.next() // consume 'return'

	if p.funcDepth == 0 {
		return nil, errorf(startPos, "cannot return from top-level code")
	}

	var value ast.Expr
	var err error
	if p.tok().Type != token.SEMICOLON {
		value, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.SEMICOLON, "after return value"); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{
		BaseStmt: ast.MakeBaseStmt(startPos),
		Value:    value,
	}, nil
}

func (p *Parser) parseBreak() (ast.Stmt, error) {
	startPos := p.tok().Pos
	p.next() // consume 'break'

	if p.loopDepth == 0 {
		return nil, errorf(startPos, "cannot use 'break' outside of a loop")
	}
	if err := p.expect(token.SEMICOLON, "after 'break'"); err != nil {
		return nil, err
	}
	return &ast.BreakStmt{BaseStmt: ast.MakeBaseStmt(startPos)}, nil
}

func (p *Parser) parseExprStmt() (ast.Stmt, error) {
	startPos := p.tok().Pos
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.SEMICOLON, "after expression"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{
		BaseStmt: ast.MakeBaseStmt(startPos),
		Expr:     expr,
	}, nil
}

// -----------------------------------------------------------------------------
// Expressions
//
// One method per precedence level, lowest to highest:
// assignment, or, and, equality, comparison, term, factor, unary, call,
// primary. Left-associative levels loop while the next token is in the
// operator set for that level.
// -----------------------------------------------------------------------------

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseAssignment()
}

// parseAssignment parses a (right-associative) assignment or anything
// of higher precedence. The left-hand side is parsed first as an
// ordinary expression and then checked: only variables and property
// accesses are valid targets.
func (p *Parser) parseAssignment() (ast.Expr, error) {
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if p.tok().Type == token.ASSIGN {
		eqPos := p.tok().Pos
		p.next()

		value, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *ast.IdentExpr:
			return &ast.AssignExpr{
				BaseExpr: ast.MakeBaseExpr(target.Pos()),
				Name:     target.Name,
				Value:    value,
			}, nil
		case *ast.GetExpr:
			return &ast.SetExpr{
				BaseExpr: ast.MakeBaseExpr(target.Pos()),
				Object:   target.Object,
				Name:     target.Name,
				NamePos:  target.NamePos,
				Value:    value,
			}, nil
		}

		// Recorded but not synchronized: the expression on both sides
		// parsed fine, so parsing can continue at this point.
		p.error(errorf(eqPos, "invalid assignment target"))
		return expr, nil
	}

	return expr, nil
}

func (p *Parser) parseOr() (ast.Expr, error) {
	expr, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok().Type == token.OR {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		expr = &ast.LogicalExpr{
			BaseExpr: ast.MakeBaseExpr(expr.Pos()),
			Left:     expr,
			Op:       token.OR,
			Right:    right,
		}
	}
	return expr, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	expr, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.tok().Type == token.AND {
		p.next()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		expr = &ast.LogicalExpr{
			BaseExpr: ast.MakeBaseExpr(expr.Pos()),
			Left:     expr,
			Op:       token.AND,
			Right:    right,
		}
	}
	return expr, nil
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseComparison, token.EQUALS, token.NOT_EQUALS)
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseTerm, token.LESS, token.LTE, token.GREATER, token.GTE)
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseFactor, token.ADD, token.SUB)
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseUnary, token.MUL, token.DIV)
}

// parseBinaryLevel parses one left-associative binary precedence level:
// operand (op operand)* for the given operator set.
func (p *Parser) parseBinaryLevel(operand func() (ast.Expr, error), ops ...token.Type) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		op := p.tok().Type
		opPos := p.tok().Pos
		p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{
			BaseExpr: ast.MakeBaseExpr(expr.Pos()),
			Left:     expr,
			Op:       op,
			OpPos:    opPos,
			Right:    right,
		}
	}
	return expr, nil
}

// match returns true if the current token matches any of the given types.
func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.tok().Type == t {
			return true
		}
	}
	return false
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.match(token.NOT, token.SUB) {
		op := p.tok().Type
		opPos := p.tok().Pos
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{
			BaseExpr: ast.MakeBaseExpr(opPos),
			Op:       op,
			OpPos:    opPos,
			Right:    right,
		}, nil
	}
	return p.parseCall()
}

// parseCall parses a primary expression followed by any number of call
// and property-access suffixes.
func (p *Parser) parseCall() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.tok().Type {
		case token.LPAREN:
			p.next()
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}

		case token.DOT:
			p.next()
			name, namePos, err := p.expectIdent("property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = &ast.GetExpr{
				BaseExpr: ast.MakeBaseExpr(expr.Pos()),
				Object:   expr,
				Name:     name,
				NamePos:  namePos,
			}

		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if p.tok().Type != token.RPAREN {
		for {
			if len(args) >= maxArgs {
				p.error(errorf(p.tok().Pos, "cannot have more than %d arguments", maxArgs))
			}
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.accept(token.COMMA) {
				break
			}
		}
	}

	parenPos := p.tok().Pos
	if err := p.expect(token.RPAREN, "after arguments"); err != nil {
		return nil, err
	}

	return &ast.CallExpr{
		BaseExpr: ast.MakeBaseExpr(callee.Pos()),
		Callee:   callee,
		Paren:    parenPos,
		Args:     args,
	}, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.tok()
	switch tok.Type {
	case token.NUMBER:
		p.next()
		n, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, errorf(tok.Pos, "invalid number literal %q", tok.Value)
		}
		return &ast.LitExpr{
			BaseExpr: ast.MakeBaseExpr(tok.Pos),
			Value:    types.Num(n),
		}, nil

	case token.STRING:
		p.next()
		return &ast.LitExpr{
			BaseExpr: ast.MakeBaseExpr(tok.Pos),
			Value:    types.Str(tok.Value),
		}, nil

	case token.TRUE:
		p.next()
		return &ast.LitExpr{
			BaseExpr: ast.MakeBaseExpr(tok.Pos),
			Value:    types.Bool(true),
		}, nil

	case token.FALSE:
		p.next()
		return &ast.LitExpr{
			BaseExpr: ast.MakeBaseExpr(tok.Pos),
			Value:    types.Bool(false),
		}, nil

	case token.NIL:
		p.next()
		return &ast.LitExpr{
			BaseExpr: ast.MakeBaseExpr(tok.Pos),
			Value:    types.Nil(),
		}, nil

	case token.IDENT:
		p.next()
		return &ast.IdentExpr{
			BaseExpr: ast.MakeBaseExpr(tok.Pos),
			Name:     tok.Value,
		}, nil

	case token.THIS:
		p.next()
		if p.classDepth == 0 {
			return nil, errorf(tok.Pos, "cannot use 'this' outside of a class")
		}
		return &ast.ThisExpr{BaseExpr: ast.MakeBaseExpr(tok.Pos)}, nil

	case token.SUPER:
		p.next()
		if p.classDepth == 0 {
			return nil, errorf(tok.Pos, "cannot use 'super' outside of a class")
		}
		if !p.superStack[len(p.superStack)-1] {
			return nil, errorf(tok.Pos, "cannot use 'super' in a class with no superclass")
		}
		if err := p.expect(token.DOT, "after 'super'"); err != nil {
			return nil, err
		}
		method, _, err := p.expectIdent("superclass method name")
		if err != nil {
			return nil, err
		}
		return &ast.SuperExpr{
			BaseExpr: ast.MakeBaseExpr(tok.Pos),
			Method:   method,
		}, nil

	case token.LPAREN:
		p.next()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN, "after expression"); err != nil {
			return nil, err
		}
		return &ast.GroupExpr{
			BaseExpr: ast.MakeBaseExpr(tok.Pos),
			Expr:     expr,
		}, nil

	default:
		return nil, expectedError(tok.Pos, "expression", p.tokenDesc())
	}
}
