package comb

// Predicate runs p and keeps its result only if pred accepts the value.
// A rejected value fails with the input Predicate received, not p's remainder.
func Predicate[T any](p Parser[T], pred func(T) bool) Parser[T] {
	return Func[T](func(in Input) Result[T] {
		r := p.Parse(in)
		if r.OK && pred(r.Value) {
			return r
		}
		return Failure[T](in)
	})
}
