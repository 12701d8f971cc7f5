// Package lexer provides Lox source code tokenization.
package lexer

import (
	"github.com/kolkov/glox/internal/token"
)

// Lexer tokenizes Lox source code.
type Lexer struct {
	src     []byte         // Source code
	ch      byte           // Current character (0 at EOF)
	offset  int            // Current byte offset
	pos     token.Position // Current position
	nextPos token.Position // Position of next character
}

// New creates a new Lexer for the given source code.
func New(src []byte) *Lexer {
	l := &Lexer{
		src: src,
		nextPos: token.Position{
			Line:   1,
			Column: 1,
		},
	}
	l.next() // Initialize first character
	return l
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string) *Lexer {
	return New([]byte(src))
}

// Token represents a scanned token with its position and value.
// Value holds the lexeme for identifiers and numbers and the cooked
// literal for strings; it is empty for most operators and keywords.
type Token struct {
	Type  token.Type
	Pos   token.Position
	Value string
}

// Tokenize scans the entire source and returns the token sequence,
// always terminated with EOF. Scan errors (unexpected characters,
// unterminated strings) are accumulated and returned together; the
// token sequence is still complete so callers can inspect it, but a
// non-nil error means the run must not proceed to parsing.
func Tokenize(src []byte) ([]Token, error) {
	l := New(src)
	var toks []Token
	var errs ErrorList
	for {
		tok := l.Scan()
		if tok.Type == token.ILLEGAL {
			errs.Add(tok.Pos, tok.Value)
			continue
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks, errs.Err()
}

// TokenizeString is like Tokenize but takes a string.
func TokenizeString(src string) ([]Token, error) {
	return Tokenize([]byte(src))
}

// Scan scans and returns the next token.
// Illegal input produces an ILLEGAL token whose Value is the error
// message; scanning continues past it.
func (l *Lexer) Scan() Token {
	l.skipWhitespace()

	// Record position
	pos := l.pos

	// EOF
	if l.ch == 0 {
		return Token{Type: token.EOF, Pos: pos}
	}

	switch l.ch {
	case '+':
		l.next()
		return Token{Type: token.ADD, Pos: pos}

	case '-':
		l.next()
		return Token{Type: token.SUB, Pos: pos}

	case '*':
		l.next()
		return Token{Type: token.MUL, Pos: pos}

	case '/':
		l.next()
		if l.ch == '/' {
			l.skipComment()
			return l.Scan()
		}
		return Token{Type: token.DIV, Pos: pos}

	case '=':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.EQUALS, Pos: pos}
		}
		return Token{Type: token.ASSIGN, Pos: pos}

	case '!':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.NOT_EQUALS, Pos: pos}
		}
		return Token{Type: token.NOT, Pos: pos}

	case '<':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.LTE, Pos: pos}
		}
		return Token{Type: token.LESS, Pos: pos}

	case '>':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.GTE, Pos: pos}
		}
		return Token{Type: token.GREATER, Pos: pos}

	case '(':
		l.next()
		return Token{Type: token.LPAREN, Pos: pos}
	case ')':
		l.next()
		return Token{Type: token.RPAREN, Pos: pos}
	case '{':
		l.next()
		return Token{Type: token.LBRACE, Pos: pos}
	case '}':
		l.next()
		return Token{Type: token.RBRACE, Pos: pos}
	case ',':
		l.next()
		return Token{Type: token.COMMA, Pos: pos}
	case ';':
		l.next()
		return Token{Type: token.SEMICOLON, Pos: pos}

	case '.':
		// A leading dot never starts a number in Lox.
		l.next()
		return Token{Type: token.DOT, Pos: pos}

	case '"':
		return l.scanString(pos)

	default:
		if isDigit(l.ch) {
			return l.scanNumber(pos)
		}
		if isIdentStart(l.ch) {
			return l.scanIdent(pos)
		}
		ch := l.ch
		l.next()
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unexpected character " + quoteByte(ch)}
	}
}

// scanString scans a string literal. Lox strings are single-line and
// have no escape sequences; the closing quote must appear before the
// end of the line.
func (l *Lexer) scanString(pos token.Position) Token {
	l.next() // consume opening quote
	start := l.pos.Offset

	for l.ch != 0 && l.ch != '"' && l.ch != '\n' {
		l.next()
	}

	if l.ch != '"' {
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unterminated string"}
	}

	value := string(l.src[start:l.pos.Offset])
	l.next() // consume closing quote
	return Token{Type: token.STRING, Pos: pos, Value: value}
}

// scanNumber scans a decimal number literal with an optional fraction.
// Lox has no exponent form: "1e3" scans as number 1 then identifier e3.
func (l *Lexer) scanNumber(pos token.Position) Token {
	start := pos.Offset

	for isDigit(l.ch) {
		l.next()
	}
	// Fraction only if the dot is followed by a digit, so "1.foo"
	// scans as number, dot, identifier.
	if l.ch == '.' && l.offset < len(l.src) && isDigit(l.src[l.offset]) {
		l.next()
		for isDigit(l.ch) {
			l.next()
		}
	}

	return Token{Type: token.NUMBER, Pos: pos, Value: string(l.src[start:l.endOffset()])}
}

func (l *Lexer) scanIdent(pos token.Position) Token {
	start := pos.Offset
	for isIdentContinue(l.ch) {
		l.next()
	}
	name := string(l.src[start:l.endOffset()])
	return Token{Type: token.LookupIdent(name), Pos: pos, Value: name}
}

// endOffset returns the correct end offset for slicing l.src.
// At EOF, l.pos is not updated, so we use len(l.src); otherwise l.pos.Offset.
func (l *Lexer) endOffset() int {
	if l.ch == 0 {
		return len(l.src)
	}
	return l.pos.Offset
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.next()
	}
}

func (l *Lexer) skipComment() {
	for l.ch != 0 && l.ch != '\n' {
		l.next()
	}
}

func (l *Lexer) next() {
	if l.offset >= len(l.src) {
		l.ch = 0
		return
	}

	l.pos = l.nextPos
	l.ch = l.src[l.offset]
	l.offset++
	l.nextPos.Column++
	l.nextPos.Offset = l.offset

	if l.ch == '\n' {
		l.nextPos.Line++
		l.nextPos.Column = 1
	}
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func quoteByte(ch byte) string {
	return "'" + string(ch) + "'"
}
