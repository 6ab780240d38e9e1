package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/pcomb/ebnf/parse"
	"github.com/dhamidi/pcomb/grammar"
)

// TextEncoder writes programs as one s-expression per statement and syntax
// trees as an indented outline.
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) EncodeProgram(code grammar.Code) error {
	_, err := io.WriteString(e.w, code.String())
	return err
}

func (e *TextEncoder) EncodeNode(node *parse.Node) error {
	var sb strings.Builder
	writeOutline(&sb, node, 0)
	_, err := io.WriteString(e.w, sb.String())
	return err
}

func writeOutline(sb *strings.Builder, n *parse.Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	if n.IsTerminal() {
		fmt.Fprintf(sb, "%s %q [%d,%d)\n", n.Kind, n.Text, n.Span.Start, n.Span.End)
		return
	}
	fmt.Fprintf(sb, "%s [%d,%d)\n", n.Kind, n.Span.Start, n.Span.End)
	for _, child := range n.Children {
		writeOutline(sb, child, depth+1)
	}
}
