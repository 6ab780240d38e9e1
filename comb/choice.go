package comb

// Either tries p1 and, if it fails, runs p2 on the same input.
// The first alternative that succeeds wins; argument order matters.
func Either[T any](p1, p2 Parser[T]) Parser[T] {
	return Func[T](func(in Input) Result[T] {
		if r := p1.Parse(in); r.OK {
			return r
		}
		return p2.Parse(in)
	})
}

// Choice is Either generalized to any number of alternatives.
// With no alternatives it always fails.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		return Fail[T]()
	}
	p := ps[0]
	for _, next := range ps[1:] {
		p = Either(p, next)
	}
	return p
}

// Maybe is the value of an optional parser.
type Maybe[T any] struct {
	Value T
	Valid bool
}

// Optional runs p and succeeds without consuming anything when p fails.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return Either(
		Map(p, func(v T) Maybe[T] { return Maybe[T]{Value: v, Valid: true} }),
		Succeed(Maybe[T]{}),
	)
}
