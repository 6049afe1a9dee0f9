/*
Command golox is the Lox driver: zero arguments starts an interactive
REPL, one argument executes that file, and two or more print a usage
message and exit (spec.md §6 "CLI").
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/repl"
	"github.com/akashmaji946/golox/scanner"
)

const (
	exitSuccess   = 0
	exitUsage     = 64
	exitSyntax    = 65
	exitRuntime   = 70
	banner        = "   _____       _               "
	bannerVersion = "0.1.0"
	bannerAuthor  = "golox contributors"
	bannerLine    = "--------------------------------"
	bannerLicense = "MIT"
)

func main() {
	args := os.Args[1:]
	switch {
	case len(args) > 1:
		fmt.Println("Usage: jlox [script]")
		os.Exit(exitUsage)
	case len(args) == 1:
		os.Exit(runFile(args[0]))
	default:
		runPrompt()
	}
}

// runFile executes the script at path and returns the process exit
// code: 0 on success, 65 if a syntax error occurred, 70 if a runtime
// error occurred (spec.md §6 "Exit codes").
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	sink := diagnostics.NewSink(os.Stderr)
	tokens := scanner.New(string(source), sink).Scan()
	statements := parser.New(tokens, sink).Parse()
	if sink.HadError {
		return exitSyntax
	}

	interp := interpreter.New(os.Stdout, sink)
	if err := interp.Interpret(statements); err != nil {
		return exitRuntime
	}
	return exitSuccess
}

// runPrompt starts the interactive REPL. It never returns a non-zero
// exit code on its own — syntax and runtime errors are reported and
// the session continues (spec.md §6 "REPL never exits with 65/70").
func runPrompt() {
	session := repl.New(banner, bannerVersion, bannerAuthor, bannerLine, bannerLicense, "> ")
	session.Start(os.Stdin, os.Stdout)
	os.Exit(exitSuccess)
}
