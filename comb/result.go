package comb

// Result is the outcome of running a parser.
//
// On success, OK is true, Value holds the parsed value and Rest is the
// remaining input, always a suffix of the input the parser was given.
// On failure, OK is false and Rest is exactly the input the failing parser
// received.
type Result[T any] struct {
	Value T
	Rest  Input
	OK    bool
}

// Success returns a successful result.
func Success[T any](rest Input, value T) Result[T] {
	return Result[T]{Value: value, Rest: rest, OK: true}
}

// Failure returns a failed result reporting in.
func Failure[T any](in Input) Result[T] {
	return Result[T]{Rest: in}
}

// Err returns nil on success and an [*Error] describing the failure position otherwise.
func (r Result[T]) Err() error {
	if r.OK {
		return nil
	}
	return &Error{At: r.Rest}
}

// failed converts a failure of one value type into another.
func failed[B, A any](r Result[A]) Result[B] {
	return Failure[B](r.Rest)
}
