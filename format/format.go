// Package format writes parse results as text, JSON or YAML.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/pcomb/ebnf/parse"
	"github.com/dhamidi/pcomb/grammar"
)

// Encoder writes parse results to an underlying writer.
type Encoder interface {
	EncodeProgram(code grammar.Code) error
	EncodeNode(node *parse.Node) error
}

// Names lists the formats accepted by NewEncoder.
var Names = []string{"text", "json", "yaml"}

// NewEncoder returns the encoder for the named format.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}
