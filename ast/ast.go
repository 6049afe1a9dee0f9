/*
Package ast defines the Lox abstract syntax tree: a small set of tagged
expression and statement node types produced by the parser and walked by
the interpreter.

Dispatch follows the visitor pattern: each node's Accept method calls
back into the visitor's matching method. This keeps node construction
and traversal decoupled — a pretty-printer and the tree-walking
interpreter are both just ExprVisitor/StmtVisitor implementations over
the same tree.

Nodes are immutable after construction and own their children; a program
is a flat top-level []Stmt with no back-references, so the tree has no
cycles.
*/
package ast

import "github.com/akashmaji946/golox/token"

// ExprVisitor is implemented by anything that walks expression nodes
// (the interpreter, the AST printer used for the round-trip test
// property).
type ExprVisitor interface {
	VisitLiteralExpr(expr *LiteralExpr) (interface{}, error)
	VisitGroupingExpr(expr *GroupingExpr) (interface{}, error)
	VisitUnaryExpr(expr *UnaryExpr) (interface{}, error)
	VisitBinaryExpr(expr *BinaryExpr) (interface{}, error)
	VisitLogicalExpr(expr *LogicalExpr) (interface{}, error)
	VisitVariableExpr(expr *VariableExpr) (interface{}, error)
	VisitAssignExpr(expr *AssignExpr) (interface{}, error)
	VisitCallExpr(expr *CallExpr) (interface{}, error)
}

// Expr is any expression AST node.
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

// StmtVisitor is implemented by anything that walks statement nodes.
type StmtVisitor interface {
	VisitExpressionStmt(stmt *ExpressionStmt) error
	VisitPrintStmt(stmt *PrintStmt) error
	VisitVarStmt(stmt *VarStmt) error
	VisitBlockStmt(stmt *BlockStmt) error
	VisitIfStmt(stmt *IfStmt) error
	VisitWhileStmt(stmt *WhileStmt) error
	VisitFunctionStmt(stmt *FunctionStmt) error
	VisitReturnStmt(stmt *ReturnStmt) error
}

// Stmt is any statement AST node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// --- Expressions ---

// LiteralExpr holds a constant value produced directly by the scanner: a
// number (float64), a string, a bool, or nil.
type LiteralExpr struct {
	Value interface{}
}

func (e *LiteralExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// GroupingExpr is a parenthesized expression: "(" Expression ")".
type GroupingExpr struct {
	Expression Expr
}

func (e *GroupingExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// UnaryExpr is a prefix operator applied to a single operand: "!" or "-".
type UnaryExpr struct {
	Operator token.Token
	Right    Expr
}

func (e *UnaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// BinaryExpr is a left-associative infix operator application.
type BinaryExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *BinaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// LogicalExpr is "and"/"or", kept distinct from BinaryExpr because its
// right operand is evaluated conditionally (short-circuiting).
type LogicalExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *LogicalExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// VariableExpr reads the value bound to Name in the current environment
// chain.
type VariableExpr struct {
	Name token.Token
}

func (e *VariableExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// AssignExpr rewrites the nearest enclosing binding for Name to the
// result of evaluating Value, and yields that value.
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

func (e *AssignExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// CallExpr invokes Callee with Arguments. Paren is the closing ")"
// token, kept for anchoring arity/type-mismatch runtime errors to a
// line.
type CallExpr struct {
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func (e *CallExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

// --- Statements ---

// ExpressionStmt evaluates Expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates Expression and writes its stringified form
// followed by a newline to standard output.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt declares Name in the current environment, bound to the result
// of evaluating Initializer, or Nil if Initializer is nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) Accept(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt introduces a new lexical scope and executes Statements
// inside it.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt executes ThenBranch when Condition is truthy, else ElseBranch
// (which may be nil).
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

func (s *IfStmt) Accept(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt repeatedly executes Body while Condition evaluates truthy.
// The parser desugars "for" loops into this node (see spec.md §4.2); no
// dedicated For node exists.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function: its formal parameter names and
// its body statements.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// ReturnStmt unwinds to the nearest enclosing function call, yielding
// Value (or Nil if Value is nil).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) Accept(v StmtVisitor) error { return v.VisitReturnStmt(s) }
