package lexer

import (
	"fmt"
)

type TokenType int

const (
	// Special
	ILLEGAL TokenType = iota
	EOF

	// Literals
	NUMBER // 12, 1.5, 2e3

	// Operators & Punctuation
	PLUS        // +
	MINUS       // -
	ASTERISK    // *
	SLASH       // /
	PAREN_OPEN  // (
	PAREN_CLOSE // )
)

var tokenNames = map[TokenType]string{
	ILLEGAL:     "ILLEGAL",
	EOF:         "EOF",
	NUMBER:      "NUMBER",
	PLUS:        "+",
	MINUS:       "-",
	ASTERISK:    "*",
	SLASH:       "/",
	PAREN_OPEN:  "(",
	PAREN_CLOSE: ")",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

type Token struct {
	Type    TokenType
	Literal string
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q)", t.Type, t.Literal)
}

// Lexer scans an arithmetic expression. Only numbers, the four operators,
// parentheses and whitespace are recognized; anything else is ILLEGAL.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	column       int
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition += 1
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	switch l.ch {
	case '+':
		tok = newToken(PLUS, l.ch, l.column)
	case '-':
		tok = newToken(MINUS, l.ch, l.column)
	case '*':
		tok = newToken(ASTERISK, l.ch, l.column)
	case '/':
		tok = newToken(SLASH, l.ch, l.column)
	case '(':
		tok = newToken(PAREN_OPEN, l.ch, l.column)
	case ')':
		tok = newToken(PAREN_CLOSE, l.ch, l.column)
	case 0:
		if l.position < len(l.input) {
			// NUL inside the input is not end of input
			tok = newToken(ILLEGAL, l.ch, l.column)
			break
		}
		tok.Literal = ""
		tok.Type = EOF
		tok.Column = l.column
		return tok
	default:
		if isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())) {
			col := l.column
			return Token{Type: NUMBER, Literal: l.readNumber(), Column: col}
		}
		tok = newToken(ILLEGAL, l.ch, l.column)
	}

	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	// Exponent only when digits follow, otherwise 'e' is left as ILLEGAL
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || ((next == '+' || next == '-') && l.readPosition+1 < len(l.input) && isDigit(l.input[l.readPosition+1])) {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}
	return l.input[position:l.position]
}

func newToken(tokenType TokenType, ch byte, col int) Token {
	return Token{Type: tokenType, Literal: string(ch), Column: col}
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize scans the entire input at once
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		if tok.Type == ILLEGAL {
			return nil, fmt.Errorf("illegal token at col %d: %q", tok.Column, tok.Literal)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
