package parser

import (
	"fmt"
	"strconv"

	"github.com/DabicD/Recruitment/internal/parser/ast"
	"github.com/DabicD/Recruitment/internal/parser/lexer"
)

// Parser builds an arithmetic expression tree from lexer tokens.
// Grammar:
//
//	expr    := term (('+'|'-') term)*
//	term    := unary (('*'|'/') unary)*
//	unary   := ('+'|'-') unary | primary
//	primary := NUMBER | '(' expr ')'
type Parser struct {
	tokens  []lexer.Token
	curPos  int
	curTok  lexer.Token
	peekTok lexer.Token
}

func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens, curPos: 0}
	// Read two tokens to set curTok and peekTok
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.curPos < len(p.tokens) {
		p.peekTok = p.tokens[p.curPos]
		p.curPos++
	} else {
		p.peekTok = lexer.Token{Type: lexer.EOF}
	}
}

// Parse parses a complete expression; trailing tokens are an error
func (p *Parser) Parse() (ast.Expression, error) {
	if p.curTok.Type == lexer.EOF {
		return nil, fmt.Errorf("empty expression")
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.curTok.Type != lexer.EOF {
		return nil, fmt.Errorf("unexpected token %s after expression", p.curTok.Literal)
	}
	return expr, nil
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.curTok.Type == lexer.PLUS || p.curTok.Type == lexer.MINUS {
		op := p.curTok.Literal
		p.nextToken()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Left: left, Operator: op, Right: right}
	}

	return left, nil
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.curTok.Type == lexer.ASTERISK || p.curTok.Type == lexer.SLASH {
		op := p.curTok.Literal
		p.nextToken()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Left: left, Operator: op, Right: right}
	}

	return left, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.curTok.Type == lexer.PLUS || p.curTok.Type == lexer.MINUS {
		op := p.curTok.Literal
		p.nextToken()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Operator: op, Right: right}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.curTok.Type {
	case lexer.NUMBER:
		valStr := p.curTok.Literal
		p.nextToken()
		f, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %s", valStr)
		}
		return &ast.NumberLiteral{TokenLiteralValue: valStr, Value: f}, nil
	case lexer.PAREN_OPEN:
		p.nextToken()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.curTok.Type != lexer.PAREN_CLOSE {
			return nil, fmt.Errorf("expected ), got %s", p.curTok.Type)
		}
		p.nextToken()
		return expr, nil
	case lexer.EOF:
		return nil, fmt.Errorf("unexpected end of expression")
	default:
		return nil, fmt.Errorf("unexpected token in expression: %s", p.curTok.Literal)
	}
}

// Evaluate tokenizes, parses and evaluates an arithmetic expression
func Evaluate(input string) (float64, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return 0, fmt.Errorf("lexer error: %w", err)
	}
	expr, err := New(tokens).Parse()
	if err != nil {
		return 0, fmt.Errorf("parse error: %w", err)
	}
	return expr.Eval()
}
