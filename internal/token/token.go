// Package token defines lexical tokens for Lox.
package token

import "fmt"

// Type represents a lexical token type.
type Type uint8

const (
	// Special tokens
	ILLEGAL Type = iota // <illegal>
	EOF                 // EOF

	// Operators and delimiters
	operatorStart
	ADD // +
	SUB // -
	MUL // *
	DIV // /

	ASSIGN     // =
	EQUALS     // ==
	NOT        // !
	NOT_EQUALS // !=
	LESS       // <
	LTE        // <=
	GREATER    // >
	GTE        // >=

	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	DOT       // .
	SEMICOLON // ;
	operatorEnd

	// Keywords
	keywordStart
	AND    // and
	BREAK  // break
	CLASS  // class
	ELSE   // else
	FALSE  // false
	FUN    // fun
	FOR    // for
	IF     // if
	NIL    // nil
	OR     // or
	PRINT  // print
	RETURN // return
	SUPER  // super
	THIS   // this
	TRUE   // true
	VAR    // var
	WHILE  // while
	keywordEnd

	// Literals
	IDENT  // identifier
	NUMBER // number
	STRING // string
)

// IsOperator returns true if the token is an operator or delimiter.
func (t Type) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsKeyword returns true if the token is a keyword.
func (t Type) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsLiteral returns true if the token is a literal (identifier, number, string).
func (t Type) IsLiteral() bool {
	return t == IDENT || t == NUMBER || t == STRING
}

// keywords maps keyword strings to their token types.
// Lookup is case-sensitive: "If" and "CLASS" are ordinary identifiers.
var keywords = map[string]Type{
	"and":    AND,
	"break":  BREAK,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"fun":    FUN,
	"for":    FOR,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// LookupIdent returns the token type for a given identifier.
// Returns the keyword token if found, otherwise IDENT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// LookupKeyword returns the token type for a keyword, or ILLEGAL if not found.
func LookupKeyword(name string) Type {
	if tok, ok := keywords[name]; ok {
		return tok
	}
	return ILLEGAL
}

// names maps token types to their source representation, used in
// diagnostics ("expected ';'", "operands of '+' must be numbers").
var names = map[Type]string{
	ILLEGAL:    "<illegal>",
	EOF:        "end of file",
	ADD:        "+",
	SUB:        "-",
	MUL:        "*",
	DIV:        "/",
	ASSIGN:     "=",
	EQUALS:     "==",
	NOT:        "!",
	NOT_EQUALS: "!=",
	LESS:       "<",
	LTE:        "<=",
	GREATER:    ">",
	GTE:        ">=",
	LPAREN:     "(",
	RPAREN:     ")",
	LBRACE:     "{",
	RBRACE:     "}",
	COMMA:      ",",
	DOT:        ".",
	SEMICOLON:  ";",
	AND:        "and",
	BREAK:      "break",
	CLASS:      "class",
	ELSE:       "else",
	FALSE:      "false",
	FUN:        "fun",
	FOR:        "for",
	IF:         "if",
	NIL:        "nil",
	OR:         "or",
	PRINT:      "print",
	RETURN:     "return",
	SUPER:      "super",
	THIS:       "this",
	TRUE:       "true",
	VAR:        "var",
	WHILE:      "while",
	IDENT:      "identifier",
	NUMBER:     "number",
	STRING:     "string",
}

// String returns the source representation of the token type.
func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", t)
}
