package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/token"
)

// Callable is anything Lox can invoke with "(" Arguments ")" — both
// user-defined functions and natives like clock (spec.md §3).
type Callable interface {
	Arity() int
	Call(i *Interpreter, arguments []interface{}) (interface{}, error)
	String() string
}

// isTruthy implements Lox's truthiness rule: nil and false are falsy,
// every other value — including 0 and "" — is truthy (spec.md §4.4).
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual implements structural equality: Nil==Nil is true, Nil vs
// anything else is false, otherwise compare by value and type
// (spec.md §4.4).
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// checkNumberOperand reports a runtime error anchored at operator
// unless operand is a float64.
func checkNumberOperand(operator token.Token, operand interface{}) error {
	if _, ok := operand.(float64); ok {
		return nil
	}
	return diagnostics.NewRuntimeError(operator, "Operand must be a number.")
}

// checkNumberOperands reports a runtime error anchored at operator
// unless both left and right are float64.
func checkNumberOperands(operator token.Token, left, right interface{}) error {
	_, lok := left.(float64)
	_, rok := right.(float64)
	if lok && rok {
		return nil
	}
	return diagnostics.NewRuntimeError(operator, "Operands must be numbers.")
}

// stringify renders a Lox runtime value the way `print` and string
// concatenation do (spec.md §4.4): Nil -> "nil", booleans -> "true"/
// "false", numbers drop a trailing ".0" when integral, callables
// render via their own String(), everything else passes through.
func stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		text := strconv.FormatFloat(v, 'f', -1, 64)
		if strings.HasSuffix(text, ".0") {
			text = text[:len(text)-2]
		}
		return text
	case string:
		return v
	case Callable:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
