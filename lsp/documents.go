// Package lsp serves diagnostics and completions for the arithmetic language
// over the Language Server Protocol.
package lsp

import (
	"errors"
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dhamidi/pcomb/comb"
	"github.com/dhamidi/pcomb/grammar"
)

// Document is the last parsed state of an open file.
type Document struct {
	URI  string
	Text string
	Code grammar.Code
	Err  *comb.Error
}

// Documents holds open documents keyed by URI.
type Documents struct {
	mu   sync.Mutex
	docs map[string]*Document
}

func NewDocuments() *Documents {
	return &Documents{docs: make(map[string]*Document)}
}

// Update parses text and stores the result under uri.
func (d *Documents) Update(uri, text string) *Document {
	doc := &Document{URI: uri, Text: text}
	code, err := grammar.ParseProgram(text)
	var perr *comb.Error
	switch {
	case err == nil:
		doc.Code = code
	case errors.As(err, &perr):
		doc.Err = perr
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.docs[uri] = doc
	return doc
}

func (d *Documents) Get(uri string) *Document {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.docs[uri]
}

func (d *Documents) Remove(uri string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.docs, uri)
}

// Names returns the variables assigned in the document. When the document
// does not parse, the longest valid prefix is used.
func (doc *Document) Names() []string {
	if doc.Err == nil {
		return doc.Code.Names()
	}
	r := comb.Parse(grammar.Program(), doc.Text)
	if !r.OK {
		return nil
	}
	return r.Value.Names()
}

// position converts a byte offset into a zero-based line and UTF-16 column,
// the encoding LSP clients use by default.
func position(text string, offset int) (line, character int) {
	if offset > len(text) {
		offset = len(text)
	}
	for i := 0; i < offset; {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if r == '\n' {
			line++
			character = 0
			continue
		}
		character += utf16.RuneLen(r)
	}
	return line, character
}
