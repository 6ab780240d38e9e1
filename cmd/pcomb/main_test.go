package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseCmd(t *testing.T) {
	path := writeFile(t, "prog.calc", "let x = 1 + 2;\nx - 1\n")

	out, _, err := run(t, "", "parse", path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if want := "(let x (+ 1 2))\n(- x 1)\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestParseCmdStdinJSON(t *testing.T) {
	out, _, err := run(t, "a -> a", "parse", "--format", "json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.Contains(out, `"kind": "lambda"`) {
		t.Errorf("output missing lambda node:\n%s", out)
	}
}

func TestParseCmdErrors(t *testing.T) {
	if _, _, err := run(t, "let = 1", "parse", "-"); err == nil || !strings.Contains(err.Error(), "<stdin>") {
		t.Errorf("err = %v, want parse error naming <stdin>", err)
	}
	if _, _, err := run(t, "1", "parse", "--format", "xml"); err == nil {
		t.Error("unknown format accepted")
	}
	if _, _, err := run(t, "", "parse", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing file accepted")
	}
}

const listGrammar = `
List  = "[" [ word { "," word } ] "]" .
word  = letter { letter } .
letter = "a" … "z" .
`

func TestEbnfCheckCmd(t *testing.T) {
	good := writeFile(t, "list.ebnf", listGrammar)
	if _, stderr, err := run(t, "", "ebnf", "check", good, "--start", "List"); err != nil {
		t.Fatalf("check: %v\n%s", err, stderr)
	}

	leftrec := writeFile(t, "rec.ebnf", `E = E "+" "1" | "1" .`)
	_, stderr, err := run(t, "", "ebnf", "check", leftrec, "--start", "E")
	if err == nil {
		t.Fatal("check accepted a left-recursive grammar")
	}
	if !strings.Contains(stderr, "left recursion") {
		t.Errorf("stderr = %q, want left recursion message", stderr)
	}

	missing := writeFile(t, "missing.ebnf", `S = A B .`)
	_, stderr, err = run(t, "", "ebnf", "check", missing, "--start", "S")
	if err == nil {
		t.Fatal("check accepted a grammar with missing productions")
	}
	for _, want := range []string{"missing production A", "missing production B"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr = %q, want %q", stderr, want)
		}
	}
	if n := strings.Count(stderr, "\n"); n != 2 {
		t.Errorf("stderr has %d lines, want one per error:\n%s", n, stderr)
	}
}

func TestEbnfParseCmd(t *testing.T) {
	g := writeFile(t, "list.ebnf", listGrammar)

	out, _, err := run(t, "[ab, c]", "ebnf", "parse", g, "--start", "List", "--skip-space")
	if err != nil {
		t.Fatalf("ebnf parse: %v", err)
	}
	want := strings.Join([]string{
		`List [0,7)`,
		`  "[" "[" [0,1)`,
		`  word "ab" [1,3)`,
		`  "," "," [3,4)`,
		`  word "c" [5,6)`,
		`  "]" "]" [6,7)`,
		``,
	}, "\n")
	if out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}

	if _, _, err := run(t, "[ab, c]", "ebnf", "parse", g, "--start", "List"); err == nil {
		t.Error("parse without --skip-space accepted spaces")
	}
	if _, _, err := run(t, "[a]", "ebnf", "parse", g); err == nil {
		t.Error("parse without --start accepted")
	}
}
