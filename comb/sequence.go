package comb

// Pair holds the values of two parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Bind runs p1 and then runs p2 on what p1 left over.
// If either fails, the result reports the input the failing parser received.
func Bind[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Pair[A, B]] {
	return Func[Pair[A, B]](func(in Input) Result[Pair[A, B]] {
		r1 := p1.Parse(in)
		if !r1.OK {
			return failed[Pair[A, B]](r1)
		}
		r2 := p2.Parse(r1.Rest)
		if !r2.OK {
			return failed[Pair[A, B]](r2)
		}
		return Success(r2.Rest, Pair[A, B]{First: r1.Value, Second: r2.Value})
	})
}

// Map applies f to the value produced by p. Consumption and outcome are unchanged.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return Func[B](func(in Input) Result[B] {
		r := p.Parse(in)
		if !r.OK {
			return failed[B](r)
		}
		return Success(r.Rest, f(r.Value))
	})
}

// Left runs p1 then p2 and keeps the value of p1.
func Left[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return Map(Bind(p1, p2), func(p Pair[A, B]) A { return p.First })
}

// Right runs p1 then p2 and keeps the value of p2.
func Right[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Map(Bind(p1, p2), func(p Pair[A, B]) B { return p.Second })
}

// Between runs open, p and closing in order and keeps the value of p.
func Between[O, T, C any](open Parser[O], p Parser[T], closing Parser[C]) Parser[T] {
	return Left(Right(open, p), closing)
}
