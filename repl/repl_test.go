package repl

import (
	"bufio"
	"bytes"
	"errors"
	"lispy/evaluator"
	"lispy/parser"
	"strings"
	"testing"
)

func TestStart(t *testing.T) {
	input := strings.Join([]string{
		"(define r 10)",
		"",
		"(* 2 (* r r))",
		"(+ 1 2",
		")",
		"(car nil)",
		"r",
		"(+ 1 2) ignored",
	}, "\n")

	var out bytes.Buffer
	Start(strings.NewReader(input), &out, Options{})

	expected := []string{
		"r = 10",
		"200",
		"SyntaxError: no closing parenthesis",
		"SyntaxError: unexpected close parenthesis",
		"RuntimeError: car of empty list",
		"10",
		"3",
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), PROMPT), PROMPT)
	var got []string
	for _, line := range lines {
		if line = strings.TrimSuffix(line, "\n"); line != "" {
			got = append(got, line)
		}
	}

	if len(got) != len(expected) {
		t.Fatalf("wrong output.\nexpected=%q\ngot=%q", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("line %d wrong. expected=%q, got=%q", i, expected[i], got[i])
		}
	}
}

func TestStartLineTooLong(t *testing.T) {
	input := "(define x 1)\n(list " + strings.Repeat("x ", bufio.MaxScanTokenSize) + ")\nx\n"

	var out bytes.Buffer
	Start(strings.NewReader(input), &out, Options{})

	got := out.String()
	if !strings.Contains(got, "x = 1") {
		t.Errorf("lines before the failure must be evaluated. got=%q", got)
	}
	if !strings.HasSuffix(got, "error: "+bufio.ErrTooLong.Error()+"\n") {
		t.Errorf("read error must be reported. got=%q", got)
	}
}

func TestStartStrict(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader("foo\n(+ 1 2) 3\n"), &out, Options{Strict: true, StrictParse: true})

	got := out.String()
	if !strings.Contains(got, "RuntimeError: symbol not found: foo") {
		t.Errorf("strict environment must reject unbound symbols. got=%q", got)
	}
	if !strings.Contains(got, "SyntaxError: unexpected trailing tokens") {
		t.Errorf("strict parse must reject trailing tokens. got=%q", got)
	}
}

func TestRun(t *testing.T) {
	src := `
(define xs (quote (3 1 2)))
(define n (length xs))
(if (> n 2) (car xs) 0)
`
	var out bytes.Buffer
	if err := Run(strings.NewReader(src), &out, Options{}); err != nil {
		t.Fatalf("Run returned error: %s", err)
	}

	expected := "xs = (3 1 2)\nn = 3\n3\n"
	if out.String() != expected {
		t.Errorf("wrong output. expected=%q, got=%q", expected, out.String())
	}

	err := Run(strings.NewReader("(define a 1) (car a)"), &out, Options{})
	var rerr *evaluator.RuntimeError
	if !errors.As(err, &rerr) {
		t.Errorf("Run must return the runtime error. got=%v", err)
	}

	err = Run(strings.NewReader("(define a 1"), &out, Options{})
	if !errors.Is(err, &parser.SyntaxError{Kind: parser.ErrUnclosed}) {
		t.Errorf("Run must return the syntax error. got=%v", err)
	}
}
