package ast

import (
	"testing"

	"github.com/akashmaji946/golox/token"
	"github.com/stretchr/testify/assert"
)

func TestPrintLiteralNil(t *testing.T) {
	assert.Equal(t, "nil", Print(&LiteralExpr{Value: nil}))
}

func TestPrintLiteralNumberDropsTrailingZeros(t *testing.T) {
	assert.Equal(t, "3", Print(&LiteralExpr{Value: 3.0}))
}

func TestPrintLiteralString(t *testing.T) {
	assert.Equal(t, `"hi"`, Print(&LiteralExpr{Value: "hi"}))
}

func TestPrintBinaryIsFullyParenthesizedInfix(t *testing.T) {
	expr := &BinaryExpr{
		Left:     &LiteralExpr{Value: 1.0},
		Operator: token.New(token.PLUS, "+", 1),
		Right:    &LiteralExpr{Value: 2.0},
	}
	assert.Equal(t, "(1 + 2)", Print(expr))
}

func TestPrintUnary(t *testing.T) {
	expr := &UnaryExpr{
		Operator: token.New(token.MINUS, "-", 1),
		Right:    &LiteralExpr{Value: 5.0},
	}
	assert.Equal(t, "(-5)", Print(expr))
}

func TestPrintGroupingWrapsInnerExpression(t *testing.T) {
	expr := &GroupingExpr{Expression: &LiteralExpr{Value: 1.0}}
	assert.Equal(t, "(1)", Print(expr))
}

func TestPrintCallRendersCalleeAndArguments(t *testing.T) {
	expr := &CallExpr{
		Callee: &VariableExpr{Name: token.New(token.IDENTIFIER, "add", 1)},
		Paren:  token.New(token.RIGHT_PAREN, ")", 1),
		Arguments: []Expr{
			&LiteralExpr{Value: 1.0},
			&LiteralExpr{Value: 2.0},
		},
	}
	assert.Equal(t, "add(1, 2)", Print(expr))
}

func TestPrintAssign(t *testing.T) {
	expr := &AssignExpr{
		Name:  token.New(token.IDENTIFIER, "x", 1),
		Value: &LiteralExpr{Value: 1.0},
	}
	assert.Equal(t, "(x = 1)", Print(expr))
}
