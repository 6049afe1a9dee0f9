/*
Package interpreter implements the tree-walking evaluator: it executes
a parsed statement sequence against a chain of environment.Environment
scopes, starting from a single globals scope pre-populated with the
clock native (spec.md §4.4).

Runtime failures and `return` unwinding both propagate as ordinary Go
errors returned from Accept, rather than panics, so the evaluation
stack unwinds through normal error returns all the way to Interpret.
*/
package interpreter

import (
	"io"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/environment"
)

// Interpreter executes a parsed Lox program against a mutable "current
// environment" reference, starting with globals (spec.md §5 "Shared
// resources").
type Interpreter struct {
	Globals     *environment.Environment
	environment *environment.Environment
	Stdout      io.Writer
	Sink        *diagnostics.Sink
}

// New creates an Interpreter writing `print` output to stdout and
// diagnostics to sink. Globals starts pre-populated with clock.
func New(stdout io.Writer, sink *diagnostics.Sink) *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", clock{})
	return &Interpreter{
		Globals:     globals,
		environment: globals,
		Stdout:      stdout,
		Sink:        sink,
	}
}

// Interpret executes statements in order against the current
// environment. A runtime error aborts execution of the remaining
// top-level statements, is reported to the sink, and is returned to
// the caller (spec.md §5 "Error unwinding", §7).
func (i *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			if rte, ok := err.(*diagnostics.RuntimeError); ok {
				i.Sink.RuntimeErrorReport(rte)
			}
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	return stmt.Accept(i)
}

func (i *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	return expr.Accept(i)
}

// executeBlock runs statements against env, restoring the interpreter's
// previous current-environment on every exit path — normal completion,
// a returnSignal unwind, or a runtime error (spec.md §4.4 "Block",
// §5 "Shared resources").
func (i *Interpreter) executeBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}
