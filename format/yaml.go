package format

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/pcomb/ebnf/parse"
	"github.com/dhamidi/pcomb/grammar"
)

type YAMLEncoder struct {
	w io.Writer
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) EncodeProgram(code grammar.Code) error {
	return e.write(programToAST(code))
}

func (e *YAMLEncoder) EncodeNode(node *parse.Node) error {
	return e.write(nodeToAST(node))
}

func (e *YAMLEncoder) write(n *astNode) error {
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return err
	}
	return enc.Close()
}
