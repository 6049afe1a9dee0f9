/*
Package repl implements the Lox Read-Eval-Print Loop: an interactive
session where each line the user enters is scanned, parsed, and
interpreted as a complete program, with the globals environment
persisting across prompts (spec.md §6 "REPL").

This keeps the shape of the banner/readline/color REPL shell — a Repl
struct carrying display fields, readline for line editing and history,
color-coded error output — adapted to wire the new scanner, parser,
and interpreter packages instead of a Pratt-parser/evaluator pair, and
to the spec-mandated "> " prompt and reset-only-the-syntax-flag
behavior between lines.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/scanner"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// errWriter colors every write red, used so the diagnostics sink's
// plain-text output reads as an error in the interactive session
// without changing the wire format itself (spec.md §6 still specifies
// the exact uncolored diagnostic text).
type errWriter struct{ w io.Writer }

func (e errWriter) Write(p []byte) (int, error) {
	redColor.Fprint(e.w, string(p))
	return len(p), nil
}

// Repl holds the display configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl. Prompt should ordinarily be "> " (spec.md §6);
// the other fields are purely cosmetic banner text.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Lox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against writer until the user types ".exit",
// sends EOF (Ctrl+D), or readline itself errors. A single Interpreter
// and its globals environment persist across every line; only the
// diagnostics sink's syntax-error flag resets between prompts
// (spec.md §6, §7).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	sink := diagnostics.NewSink(errWriter{writer})
	interp := interpreter.New(writer, sink)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		r.executeLine(writer, line, sink, interp)
	}
}

// executeLine scans, parses, and interprets one line as a complete
// program. Syntax errors suppress interpretation (spec.md §7
// "Propagation policy"); either kind of error is already reported to
// the sink by the stage that detected it, so this just resets the
// syntax flag for the next prompt.
func (r *Repl) executeLine(writer io.Writer, line string, sink *diagnostics.Sink, interp *interpreter.Interpreter) {
	defer sink.Reset()

	tokens := scanner.New(line, sink).Scan()
	statements := parser.New(tokens, sink).Parse()
	if sink.HadError {
		return
	}

	// Interpret already reports a runtime error to the sink; the REPL
	// just lets the session continue either way.
	_ = interp.Interpret(statements)
}
