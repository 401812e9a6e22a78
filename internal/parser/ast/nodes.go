package ast

import (
	"bytes"
	"math"
	"strconv"

	"github.com/DabicD/Recruitment/internal/domain/errors"
)

// Node is the base interface for all AST nodes
type Node interface {
	TokenLiteral() string
	String() string
}

// Expression represents an arithmetic value or operation
type Expression interface {
	Node
	expressionNode()
	Eval() (float64, error)
}

// NumberLiteral represents a decimal number
type NumberLiteral struct {
	TokenLiteralValue string
	Value             float64
}

func (n *NumberLiteral) expressionNode()        {}
func (n *NumberLiteral) TokenLiteral() string   { return n.TokenLiteralValue }
func (n *NumberLiteral) String() string         { return n.TokenLiteralValue }
func (n *NumberLiteral) Eval() (float64, error) { return n.Value, nil }

// UnaryExpression: -expr or +expr
type UnaryExpression struct {
	Operator string
	Right    Expression
}

func (u *UnaryExpression) expressionNode()      {}
func (u *UnaryExpression) TokenLiteral() string { return u.Operator }
func (u *UnaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(u.Operator)
	out.WriteString(u.Right.String())
	out.WriteString(")")
	return out.String()
}

func (u *UnaryExpression) Eval() (float64, error) {
	v, err := u.Right.Eval()
	if err != nil {
		return 0, err
	}
	switch u.Operator {
	case "-":
		return -v, nil
	case "+":
		return v, nil
	default:
		return 0, &errors.EvalError{Op: u.Operator, Reason: "unknown unary operator"}
	}
}

// BinaryExpression: left <op> right
type BinaryExpression struct {
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryExpression) expressionNode()      {}
func (b *BinaryExpression) TokenLiteral() string { return b.Operator }
func (b *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(b.Left.String())
	out.WriteString(" " + b.Operator + " ")
	out.WriteString(b.Right.String())
	out.WriteString(")")
	return out.String()
}

// Eval fails with *errors.EvalError on division by zero or a non-finite result
func (b *BinaryExpression) Eval() (float64, error) {
	left, err := b.Left.Eval()
	if err != nil {
		return 0, err
	}
	right, err := b.Right.Eval()
	if err != nil {
		return 0, err
	}

	var result float64
	switch b.Operator {
	case "+":
		result = left + right
	case "-":
		result = left - right
	case "*":
		result = left * right
	case "/":
		if right == 0 {
			return 0, &errors.EvalError{Op: b.String(), Reason: "division by zero"}
		}
		result = left / right
	default:
		return 0, &errors.EvalError{Op: b.Operator, Reason: "unknown binary operator"}
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, &errors.EvalError{Op: b.String(), Reason: "result is not a finite number"}
	}
	return result, nil
}

// FormatNumber renders a value with the shortest decimal text that round-trips
func FormatNumber(v float64) string {
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
