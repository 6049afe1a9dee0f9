/*
Package parser implements a recursive-descent parser with panic-mode
error recovery for Lox, turning a token stream into a flat sequence of
statement AST nodes (spec.md §4.2).

A failed expectation is reported to the diagnostics sink and raised as an
internal parseError signal; the single catch point is declaration(),
which recovers, synchronizes to the next plausible statement boundary,
and resumes — a "collect errors, don't abort on the first one" policy,
built on a recursive-descent grammar rather than an operator-precedence
table.
*/
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/token"
)

// parseError is the internal signal a failed expectation raises; it
// unwinds to the nearest declaration() call, which synchronizes and
// moves on to the next declaration. It carries no data of its own — the
// diagnostic was already reported to the sink at the point of failure.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Parser holds the token stream and parsing cursor.
type Parser struct {
	tokens  []token.Token
	current int
	sink    *diagnostics.Sink
}

// New creates a Parser over tokens that reports syntax errors to sink.
func New(tokens []token.Token, sink *diagnostics.Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

// Parse parses Program -> Declaration* EOF and returns the (possibly
// partial, if errors occurred) statement list. Callers must check
// sink.HadError before executing the result (spec.md §4.2 "Failure
// semantics").
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// declaration parses one Declaration production. It is the single
// panic-mode recovery boundary: any parseError raised while parsing this
// declaration is caught here, synchronize() is invoked, and nil is
// returned so Parse simply skips the broken declaration and moves on.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	if p.match(token.VAR) {
		return p.varDeclaration()
	}
	if p.match(token.FUN) {
		return p.function("function")
	}
	return p.statement()
}

// varDeclaration parses "var" IDENTIFIER ("=" Expression)? ";".
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

// synchronize discards tokens after a parse error until a plausible
// statement boundary: the token just consumed ended a statement (a
// ';'), or the next token begins one (spec.md §4.2).
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// --- token-stream cursor helpers ---

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// consume expects the next token to have kind, advancing past it. If
// the expectation fails, it reports message anchored to the offending
// token and panics with the parseError signal to unwind to
// declaration().
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt reports message anchored to tok and returns the parseError
// signal for the caller to panic with.
func (p *Parser) errorAt(tok token.Token, message string) parseError {
	p.sink.ErrorAt(tok, message)
	return parseError{}
}
