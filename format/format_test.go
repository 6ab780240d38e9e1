package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/pcomb/ebnf/parse"
	"github.com/dhamidi/pcomb/grammar"
)

func sampleProgram(t *testing.T) grammar.Code {
	t.Helper()
	code, err := grammar.ParseProgram("let f = x -> x + 1; f - 2")
	if err != nil {
		t.Fatalf("parse program: %v", err)
	}
	return code
}

func sampleNode() *parse.Node {
	root := parse.NewNonTerminal("Sum")
	root.AddChild(parse.NewTerminal("number", "1", 0))
	root.AddChild(parse.NewTerminal(`"+"`, "+", 1))
	root.AddChild(parse.NewTerminal("number", "22", 2))
	return root
}

func TestNewEncoder(t *testing.T) {
	for _, name := range Names {
		if _, err := NewEncoder(name, &bytes.Buffer{}); err != nil {
			t.Errorf("NewEncoder(%q) error: %v", name, err)
		}
	}
	if _, err := NewEncoder("xml", &bytes.Buffer{}); err == nil {
		t.Error("NewEncoder(xml) succeeded")
	}
}

func TestTextEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTextEncoder(&buf)

	if err := enc.EncodeProgram(sampleProgram(t)); err != nil {
		t.Fatalf("EncodeProgram: %v", err)
	}
	want := "(let f (-> x (+ x 1)))\n(- f 2)\n"
	if buf.String() != want {
		t.Errorf("program = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := enc.EncodeNode(sampleNode()); err != nil {
		t.Fatalf("EncodeNode: %v", err)
	}
	want = "Sum [0,4)\n" +
		"  number \"1\" [0,1)\n" +
		"  \"+\" \"+\" [1,2)\n" +
		"  number \"22\" [2,4)\n"
	if buf.String() != want {
		t.Errorf("node =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestJSONEncoderProgram(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).EncodeProgram(sampleProgram(t)); err != nil {
		t.Fatalf("EncodeProgram: %v", err)
	}

	var got astNode
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Kind != "program" || len(got.Children) != 2 {
		t.Fatalf("got %+v, want program with 2 statements", got)
	}

	assign := got.Children[0]
	if assign.Kind != "assign" || len(assign.Children) != 2 {
		t.Fatalf("first statement = %+v, want assign", assign)
	}
	lambda := assign.Children[1].Children[0]
	if lambda.Kind != "lambda" || lambda.Text != "x" {
		t.Errorf("assigned value = %+v, want lambda over x", lambda)
	}

	sub := got.Children[1]
	if sub.Kind != "binary" || sub.Text != "-" {
		t.Errorf("second statement = %+v, want binary -", sub)
	}
}

func TestJSONEncoderNode(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).EncodeNode(sampleNode()); err != nil {
		t.Fatalf("EncodeNode: %v", err)
	}
	if !strings.Contains(buf.String(), `"kind": "Sum"`) {
		t.Errorf("missing root kind in %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"text": "22"`) {
		t.Errorf("missing terminal text in %s", buf.String())
	}
}

func TestYAMLEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAMLEncoder(&buf).EncodeNode(sampleNode()); err != nil {
		t.Fatalf("EncodeNode: %v", err)
	}

	var got astNode
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Kind != "Sum" || len(got.Children) != 3 {
		t.Fatalf("got %+v, want Sum with 3 children", got)
	}
	if got.Span == nil || got.Span.End != 4 {
		t.Errorf("span = %+v, want end 4", got.Span)
	}
	if got.Children[2].Text != "22" {
		t.Errorf("last child text = %q, want 22", got.Children[2].Text)
	}
}
