package comb

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse runs p on the whole of src.
func Parse[T any](p Parser[T], src string) Result[T] {
	return p.Parse(NewInput(src))
}

// ParseAll runs p on src and requires that it consumes everything.
// A failure, or input left over after a success, is reported as an [*Error].
func ParseAll[T any](p Parser[T], src string) (T, error) {
	r := Parse(p, src)
	if !r.OK {
		var zero T
		return zero, r.Err()
	}
	if !r.Rest.AtEOF() {
		var zero T
		return zero, &Error{At: r.Rest, Leftover: true}
	}
	return r.Value, nil
}

// Error reports where a parse stopped.
type Error struct {
	At Input
	// Leftover is set when the parser succeeded but did not consume all input.
	Leftover bool
}

func (e *Error) Error() string {
	line, col := e.Position()
	what := "no parse"
	if e.Leftover {
		what = "unexpected input"
	}
	return fmt.Sprintf("%s at %d:%d (offset %d): %s", what, line, col, e.At.Offset(), excerpt(e.At.Rest()))
}

// Position returns the 1-based line and column of the failure.
// Columns count runes, not bytes.
func (e *Error) Position() (line, col int) {
	consumed := e.At.Source()[:e.At.Offset()]
	line = 1 + strings.Count(consumed, "\n")
	if i := strings.LastIndexByte(consumed, '\n'); i >= 0 {
		consumed = consumed[i+1:]
	}
	return line, 1 + utf8.RuneCountInString(consumed)
}

func excerpt(s string) string {
	if s == "" {
		return "end of input"
	}
	const limit = 16
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if utf8.RuneCountInString(s) > limit {
		s = string([]rune(s)[:limit]) + "..."
	}
	return fmt.Sprintf("%q", s)
}
