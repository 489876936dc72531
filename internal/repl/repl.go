package repl

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"newt/internal/evaluator"
	"newt/internal/lexer"
	"newt/internal/object"
	"newt/internal/parser"
)

// PROMPT is the default prompt; the binary may override it from its
// configuration before starting the loop.
var PROMPT = ">> "

// Start runs a read-eval-print loop against a persistent environment.
// Parser and runtime errors abort only the current line.
func Start(in io.Reader, out io.Writer, e *evaluator.Evaluator, env *object.Environment) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		switch line {
		case "":
			continue
		case ":quit", ":exit":
			return
		case ":clear":
			env.Clear()
			continue
		case ":modules":
			names := e.ModuleNames()
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			continue
		}

		l := lexer.New(line)
		p := parser.New(l, line)
		program := p.ParseProgram()
		if len(p.Errors()) != 0 {
			printParserErrors(out, p.Errors())
			continue
		}

		result := e.Eval(program, env)
		if result == nil {
			continue
		}
		if object.IsError(result) {
			fmt.Fprintln(out, result.Inspect())
			continue
		}
		if result != object.NIL {
			fmt.Fprintln(out, result.Inspect())
		}
	}
}

func printParserErrors(out io.Writer, errors []string) {
	for _, msg := range errors {
		fmt.Fprintf(out, "parse error: %s\n", msg)
	}
}
