package repl

import (
	"bytes"
	"strings"
	"testing"

	"newt/internal/evaluator"
	"newt/internal/object"
)

func runRepl(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	e := evaluator.New(&out)
	Start(strings.NewReader(input), &out, e, object.NewEnvironment())
	return out.String()
}

func TestReplEvaluatesAndPersistsBindings(t *testing.T) {
	out := runRepl(t, "let x = 2\nx * 3\n")
	if !strings.Contains(out, "6") {
		t.Errorf("expected 6 in output, got %q", out)
	}
}

func TestReplErrorAbortsOnlyTheLine(t *testing.T) {
	out := runRepl(t, "let x = 1\n1 / 0\nx\n")
	if !strings.Contains(out, "DivisionByZeroError") {
		t.Errorf("expected the error to be reported, got %q", out)
	}
	if !strings.Contains(out, "1\n") {
		t.Errorf("expected the session to continue after the error, got %q", out)
	}
}

func TestReplParserErrorsAreReported(t *testing.T) {
	out := runRepl(t, "let = 5\n")
	if !strings.Contains(out, "parse error") {
		t.Errorf("expected a parse error, got %q", out)
	}
}

func TestReplClearResetsBindings(t *testing.T) {
	out := runRepl(t, "let x = 1\n:clear\nx\n")
	if !strings.Contains(out, "NameError") {
		t.Errorf("expected x to be gone after :clear, got %q", out)
	}
}
