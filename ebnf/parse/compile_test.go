package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/pcomb/comb"
)

const exprGrammar = `
	Expr   = Term { ( "+" | "-" ) Term } .
	Term   = number | "(" Expr ")" .
	number = digit { digit } .
	digit  = "0" … "9" .
`

func mustCompile(t *testing.T, src, start string, opts ...Option) *Parser {
	t.Helper()
	g, err := ReadGrammar("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("read grammar: %v", err)
	}
	p, err := Compile(g, start, opts...)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return p
}

func kinds(nodes []*Node) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.Kind)
	}
	return out
}

func count(n *Node, kind string) int {
	c := 0
	if n.Kind == kind {
		c++
	}
	for _, child := range n.Children {
		c += count(child, kind)
	}
	return c
}

func TestCompileExpressionTree(t *testing.T) {
	p := mustCompile(t, exprGrammar, "Expr")

	root, err := p.Parse("12+(3-4)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if root.Kind != "Expr" {
		t.Errorf("root Kind = %q, want %q", root.Kind, "Expr")
	}
	if root.Span != (Span{Start: 0, End: 8}) {
		t.Errorf("root Span = %+v, want {0 8}", root.Span)
	}
	got := strings.Join(kinds(root.Children), " ")
	if want := `Term "+" Term`; got != want {
		t.Errorf("children = %s, want %s", got, want)
	}

	num := root.Find("number")
	if num == nil {
		t.Fatal("no number node")
	}
	if num.Text != "12" || !num.IsTerminal() {
		t.Errorf("number = %+v, want terminal 12", num)
	}
	if num.Span != (Span{Start: 0, End: 2}) {
		t.Errorf("number Span = %+v, want {0 2}", num.Span)
	}

	inner := root.Children[2].Find("Expr")
	if inner == nil {
		t.Fatal("no nested Expr")
	}
	if inner.Span != (Span{Start: 4, End: 7}) {
		t.Errorf("nested Span = %+v, want {4 7}", inner.Span)
	}
}

func TestCompileSkipSpace(t *testing.T) {
	strict := mustCompile(t, exprGrammar, "Expr")
	loose := mustCompile(t, exprGrammar, "Expr", WithSkipSpace())

	const input = "  1 + ( 23 - 4 )\n"

	if _, err := loose.Parse(input); err != nil {
		t.Errorf("skip-space parse: %v", err)
	}

	_, err := strict.Parse(input)
	var perr *comb.Error
	if !errors.As(err, &perr) {
		t.Fatalf("strict parse error = %v, want *comb.Error", err)
	}
	if perr.At.Offset() != 0 {
		t.Errorf("strict failure offset = %d, want 0", perr.At.Offset())
	}
}

func TestCompileLexicalDoesNotSkipSpace(t *testing.T) {
	p := mustCompile(t, exprGrammar, "Expr", WithSkipSpace())

	_, err := p.Parse("1 2")
	var perr *comb.Error
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *comb.Error", err)
	}
	if !perr.Leftover || perr.At.Offset() != 2 {
		t.Errorf("got leftover=%v offset=%d, want leftover at 2", perr.Leftover, perr.At.Offset())
	}
}

func TestCompileOptionalAndEmpty(t *testing.T) {
	p := mustCompile(t, `
		List  = "[" [ Items ] "]" .
		Items = Item { "," Item } .
		Item  = word | Empty .
		Empty = .
		word  = "a" … "z" { "a" … "z" } .
	`, "List", WithSkipSpace())

	tests := []struct {
		input string
		words int
	}{
		{"[]", 0},
		{"[ abc ]", 1},
		{"[a, b ,c]", 3},
		{"[a,,c]", 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			root, err := p.Parse(tt.input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if n := count(root, "word"); n != tt.words {
				t.Errorf("words = %d, want %d", n, tt.words)
			}
		})
	}
}

func TestCompileRejectsLeftRecursion(t *testing.T) {
	tests := []struct {
		name    string
		grammar string
		start   string
		cycle   string
	}{
		{
			name:    "direct",
			grammar: `Expr = Expr "+" number | number . number = "0" … "9" .`,
			start:   "Expr",
			cycle:   "Expr -> Expr",
		},
		{
			name:    "through nullable prefix",
			grammar: `A = B "x" . B = [ "y" ] A | "z" .`,
			start:   "A",
			cycle:   "A -> B -> A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadGrammar("test", strings.NewReader(tt.grammar))
			if err != nil {
				t.Fatalf("read grammar: %v", err)
			}
			_, err = Compile(g, tt.start)
			if err == nil {
				t.Fatal("Compile succeeded, want left recursion error")
			}
			if !strings.Contains(err.Error(), tt.cycle) {
				t.Errorf("error = %q, want it to mention %q", err, tt.cycle)
			}
		})
	}
}

func TestCompileVerifies(t *testing.T) {
	g, err := ReadGrammar("test", strings.NewReader(`Start = Missing .`))
	if err != nil {
		t.Fatalf("read grammar: %v", err)
	}
	if _, err := Compile(g, "Start"); err == nil {
		t.Error("Compile succeeded with an undefined production")
	}
}

func TestReadGrammarSyntaxError(t *testing.T) {
	if _, err := ReadGrammar("bad", strings.NewReader(`Start = "a" `)); err == nil {
		t.Error("ReadGrammar succeeded on a production without a terminating period")
	}
}

func TestRule(t *testing.T) {
	p := mustCompile(t, exprGrammar, "Expr")
	if p.Start() != "Expr" {
		t.Errorf("Start() = %q, want Expr", p.Start())
	}

	num, ok := p.Rule("number")
	if !ok {
		t.Fatal("Rule(number) not found")
	}
	r := comb.Parse(num, "987x")
	if !r.OK || r.Value.Text != "987" || r.Rest.Rest() != "x" {
		t.Errorf("number rule = %+v", r)
	}
	if _, ok := p.Rule("nope"); ok {
		t.Error("Rule(nope) found")
	}
}
