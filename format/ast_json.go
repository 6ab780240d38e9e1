package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/pcomb/ebnf/parse"
	"github.com/dhamidi/pcomb/grammar"
)

// astNode is the serialized shape shared by the JSON and YAML encoders.
type astNode struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Text     string     `json:"text,omitempty" yaml:"text,omitempty"`
	Span     *astSpan   `json:"span,omitempty" yaml:"span,omitempty"`
	Children []*astNode `json:"children,omitempty" yaml:"children,omitempty"`
}

type astSpan struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) EncodeProgram(code grammar.Code) error {
	return e.write(programToAST(code))
}

func (e *JSONEncoder) EncodeNode(node *parse.Node) error {
	return e.write(nodeToAST(node))
}

func (e *JSONEncoder) write(n *astNode) error {
	text, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func programToAST(code grammar.Code) *astNode {
	n := &astNode{Kind: "program"}
	for _, e := range code.Expressions {
		n.Children = append(n.Children, exprToAST(e))
	}
	return n
}

func exprToAST(e grammar.Expression) *astNode {
	switch e := e.(type) {
	case grammar.Num:
		return &astNode{Kind: "num", Text: e.Digits}
	case grammar.Variable:
		return &astNode{Kind: "variable", Text: e.Name}
	case grammar.Binary:
		return &astNode{Kind: "binary", Text: e.Op.String(), Children: []*astNode{exprToAST(e.Left), exprToAST(e.Right)}}
	case grammar.Assign:
		return &astNode{Kind: "assign", Children: []*astNode{exprToAST(e.Target), exprToAST(e.Value)}}
	case grammar.Map:
		return &astNode{Kind: "map", Children: []*astNode{formulaToAST(e.Formula)}}
	default:
		return &astNode{Kind: "unknown", Text: e.String()}
	}
}

func formulaToAST(f grammar.Formula) *astNode {
	switch f := f.(type) {
	case grammar.Id:
		return &astNode{Kind: "id", Text: f.Name}
	case grammar.Lambda:
		return &astNode{Kind: "lambda", Text: f.Param, Children: []*astNode{exprToAST(f.Body)}}
	default:
		return &astNode{Kind: "unknown", Text: f.String()}
	}
}

func nodeToAST(n *parse.Node) *astNode {
	an := &astNode{
		Kind: n.Kind,
		Text: n.Text,
		Span: &astSpan{Start: n.Span.Start, End: n.Span.End},
	}
	if len(n.Children) > 0 {
		an.Children = make([]*astNode, len(n.Children))
		for i, child := range n.Children {
			an.Children[i] = nodeToAST(child)
		}
	}
	return an
}
