package comb

import (
	"fmt"
	"unicode/utf8"
)

// Input is a read-only view of the unconsumed part of a source string.
// Parsing narrows the view; it never copies or mutates the source.
type Input struct {
	src string
	off int
}

// NewInput returns a view of the whole of src.
func NewInput(src string) Input {
	return Input{src: src}
}

// Rest returns the unconsumed text.
func (in Input) Rest() string {
	return in.src[in.off:]
}

// Source returns the full text the input was created from.
func (in Input) Source() string {
	return in.src
}

// Offset returns the number of bytes consumed so far.
func (in Input) Offset() int {
	return in.off
}

// Len returns the number of unconsumed bytes.
func (in Input) Len() int {
	return len(in.src) - in.off
}

// AtEOF reports whether all input has been consumed.
func (in Input) AtEOF() bool {
	return in.off >= len(in.src)
}

// Next decodes the first unconsumed rune and returns it with its width in bytes.
// At end of input the width is 0.
func (in Input) Next() (rune, int) {
	if in.AtEOF() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(in.src[in.off:])
}

// Drop returns the input with the first n bytes consumed.
// It panics if n is out of range or does not fall on a rune boundary.
func (in Input) Drop(n int) Input {
	if n < 0 || n > in.Len() {
		panic(fmt.Sprintf("comb: Drop(%d) out of range [0,%d]", n, in.Len()))
	}
	end := in.off + n
	if end < len(in.src) && !utf8.RuneStart(in.src[end]) {
		panic(fmt.Sprintf("comb: Drop(%d) splits a rune at offset %d", n, end))
	}
	return Input{src: in.src, off: end}
}

// Since returns the text consumed between earlier and in.
// Both inputs must come from the same source and earlier must not be ahead of in.
func (in Input) Since(earlier Input) string {
	if earlier.off > in.off {
		panic("comb: Since called with a later input")
	}
	return in.src[earlier.off:in.off]
}

func (in Input) String() string {
	return in.Rest()
}
