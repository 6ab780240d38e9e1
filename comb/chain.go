package comb

// AndThen runs p, passes its value to f and runs the returned parser on the
// remaining input. It lets the shape of what follows depend on what was parsed.
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return Func[B](func(in Input) Result[B] {
		r := p.Parse(in)
		if !r.OK {
			return failed[B](r)
		}
		return f(r.Value).Parse(r.Rest)
	})
}
