/*
Package environment implements the lexically scoped identifier→value
chain Lox programs evaluate against (spec.md §3, §4.3): a mapping from
name to Value with an optional parent link, searched innermost-first
for both lookup and assignment.

Lox variables are uniformly mutable, so there is no const/let-style
bookkeeping here — just a map plus a parent pointer, walked recursively
by Get/Assign, with Define always writing to the current scope only.
*/
package environment

import (
	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/token"
)

// Environment is one scope in the chain: its own bindings plus a link
// to the enclosing scope, or nil for globals.
type Environment struct {
	values    map[string]interface{}
	enclosing *Environment
}

// New creates a scope enclosed by parent. Pass nil to create globals.
func New(parent *Environment) *Environment {
	return &Environment{
		values:    make(map[string]interface{}),
		enclosing: parent,
	}
}

// Define unconditionally binds name to value in this scope, shadowing
// any binding of the same name in an enclosing scope. Redefining a
// name already bound in this same scope simply overwrites it.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get returns the value bound to name.Lexeme, searching this scope and
// then each enclosing scope in turn. It never creates a binding; an
// unbound name is a runtime error anchored at the token (spec.md §3).
func (e *Environment) Get(name token.Token) (interface{}, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, diagnostics.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign mutates the nearest enclosing binding that already defines
// name.Lexeme. It never creates a new binding — an unbound name is a
// runtime error anchored at the token (spec.md §3).
func (e *Environment) Assign(name token.Token, value interface{}) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return diagnostics.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}
