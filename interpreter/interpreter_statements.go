package interpreter

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
)

func (i *Interpreter) VisitExpressionStmt(stmt *ast.ExpressionStmt) error {
	_, err := i.evaluate(stmt.Expression)
	return err
}

func (i *Interpreter) VisitPrintStmt(stmt *ast.PrintStmt) error {
	value, err := i.evaluate(stmt.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.Stdout, stringify(value))
	return nil
}

func (i *Interpreter) VisitVarStmt(stmt *ast.VarStmt) error {
	var value interface{}
	if stmt.Initializer != nil {
		v, err := i.evaluate(stmt.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	i.environment.Define(stmt.Name.Lexeme, value)
	return nil
}

func (i *Interpreter) VisitBlockStmt(stmt *ast.BlockStmt) error {
	return i.executeBlock(stmt.Statements, environment.New(i.environment))
}

func (i *Interpreter) VisitIfStmt(stmt *ast.IfStmt) error {
	cond, err := i.evaluate(stmt.Condition)
	if err != nil {
		return err
	}
	if isTruthy(cond) {
		return i.execute(stmt.ThenBranch)
	}
	if stmt.ElseBranch != nil {
		return i.execute(stmt.ElseBranch)
	}
	return nil
}

func (i *Interpreter) VisitWhileStmt(stmt *ast.WhileStmt) error {
	for {
		cond, err := i.evaluate(stmt.Condition)
		if err != nil {
			return err
		}
		if !isTruthy(cond) {
			return nil
		}
		if err := i.execute(stmt.Body); err != nil {
			return err
		}
	}
}

func (i *Interpreter) VisitFunctionStmt(stmt *ast.FunctionStmt) error {
	function := NewFunction(stmt, i.environment)
	i.environment.Define(stmt.Name.Lexeme, function)
	return nil
}

// VisitReturnStmt evaluates the return value (Nil if omitted) and
// raises it as a returnSignal, which unwinds as an ordinary error up
// through executeBlock to the enclosing Function.Call.
func (i *Interpreter) VisitReturnStmt(stmt *ast.ReturnStmt) error {
	var value interface{}
	if stmt.Value != nil {
		v, err := i.evaluate(stmt.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &returnSignal{Value: value}
}
