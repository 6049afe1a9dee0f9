package interpreter

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
)

// Function is a user-defined Lox function value: a reference to its
// declaration AST plus the environment it closed over at definition
// time (spec.md §3 "Function value").
//
// This resolves the closures open question from spec.md §9: naively
// parenting every call's environment at globals breaks lexical
// closures, so the call environment is parented at Closure instead —
// the environment captured when the function was declared.
type Function struct {
	Declaration *ast.FunctionStmt
	Closure     *environment.Environment
}

// NewFunction wraps declaration, closing over env as its lexical scope.
func NewFunction(declaration *ast.FunctionStmt, env *environment.Environment) *Function {
	return &Function{Declaration: declaration, Closure: env}
}

func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Call binds each parameter to its argument in a fresh environment
// parented at the closure, then executes the body as a block. A
// returnSignal unwinding out of the body supplies the call's result;
// falling off the end of the body yields Nil (spec.md §3, §9).
func (f *Function) Call(i *Interpreter, arguments []interface{}) (interface{}, error) {
	callEnv := environment.New(f.Closure)
	for idx, param := range f.Declaration.Params {
		callEnv.Define(param.Lexeme, arguments[idx])
	}

	err := i.executeBlock(f.Declaration.Body, callEnv)
	if ret, ok := err.(*returnSignal); ok {
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// returnSignal is the unwinding signal a `return` statement raises
// (spec.md §9 design note): it propagates as an ordinary Go error
// through the normal statement-execution error path up to the
// enclosing Function.Call, which is the only place that consumes it.
// Anything that is not a *returnSignal keeps propagating as a real
// error (a runtime error unwinding to the interpreter entry).
type returnSignal struct {
	Value interface{}
}

func (r *returnSignal) Error() string { return "return" }
