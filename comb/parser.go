package comb

// Parser consumes a prefix of its input and produces a value of type T.
// Parsers must be deterministic: the same input always yields the same result.
type Parser[T any] interface {
	Parse(in Input) Result[T]
}

// Func adapts an ordinary function to the Parser interface.
type Func[T any] func(in Input) Result[T]

// Parse calls f(in).
func (f Func[T]) Parse(in Input) Result[T] {
	return f(in)
}
