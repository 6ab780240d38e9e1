package comb

import "strings"

// AnyChar consumes a single rune.
func AnyChar() Parser[rune] {
	return Func[rune](func(in Input) Result[rune] {
		r, n := in.Next()
		if n == 0 {
			return Failure[rune](in)
		}
		return Success(in.Drop(n), r)
	})
}

// Satisfy consumes a single rune accepted by pred.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return Predicate(AnyChar(), pred)
}

// Tag matches the literal text s.
func Tag(s string) Parser[string] {
	return Func[string](func(in Input) Result[string] {
		if !strings.HasPrefix(in.Rest(), s) {
			return Failure[string](in)
		}
		return Success(in.Drop(len(s)), s)
	})
}

// Recognize runs p and returns the text it consumed instead of its value.
func Recognize[T any](p Parser[T]) Parser[string] {
	return Func[string](func(in Input) Result[string] {
		r := p.Parse(in)
		if !r.OK {
			return failed[string](r)
		}
		return Success(r.Rest, r.Rest.Since(in))
	})
}

// End succeeds without consuming anything when the input is exhausted.
func End() Parser[struct{}] {
	return Func[struct{}](func(in Input) Result[struct{}] {
		if !in.AtEOF() {
			return Failure[struct{}](in)
		}
		return Success(in, struct{}{})
	})
}

// Succeed returns a parser that consumes nothing and yields v.
func Succeed[T any](v T) Parser[T] {
	return Func[T](func(in Input) Result[T] {
		return Success(in, v)
	})
}

// Fail returns a parser that always fails.
func Fail[T any]() Parser[T] {
	return Func[T](func(in Input) Result[T] {
		return Failure[T](in)
	})
}
