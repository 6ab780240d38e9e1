package comb

// ZeroOrMore applies p as many times as it succeeds and collects the values.
// It always succeeds, possibly with an empty slice.
//
// Repetition also ends when p succeeds without consuming input; the value of
// that zero-width match is discarded.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return Func[[]T](func(in Input) Result[[]T] {
		values, rest := repeat(p, in)
		return Success(rest, values)
	})
}

// OneOrMore is like ZeroOrMore but fails, reporting its input, unless p
// succeeds at least once.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return Func[[]T](func(in Input) Result[[]T] {
		values, rest := repeat(p, in)
		if len(values) == 0 {
			return Failure[[]T](in)
		}
		return Success(rest, values)
	})
}

func repeat[T any](p Parser[T], in Input) ([]T, Input) {
	var values []T
	for {
		r := p.Parse(in)
		if !r.OK || r.Rest.Offset() <= in.Offset() {
			return values, in
		}
		values = append(values, r.Value)
		in = r.Rest
	}
}

// SepBy parses zero or more p separated by sep and keeps the values of p.
// A trailing separator is left unconsumed.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Map(Optional(SepBy1(p, sep)), func(m Maybe[[]T]) []T {
		if !m.Valid {
			return []T{}
		}
		return m.Value
	})
}

// SepBy1 parses one or more p separated by sep.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Map(Bind(p, ZeroOrMore(Right(sep, p))), func(pr Pair[T, []T]) []T {
		return append([]T{pr.First}, pr.Second...)
	})
}
