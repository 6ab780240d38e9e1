package comb

import "sync/atomic"

// Ref is a parser whose definition is supplied after it is created.
// It lets a rule refer to itself, directly or through other rules:
//
//	expr := comb.Deferred[Expr]()
//	paren := comb.Between(comb.Tag("("), expr, comb.Tag(")"))
//	expr.Set(comb.Either(number, paren))
//
// The target is looked up on every call to Parse, so the Ref can be used in
// compositions before Set is called. It must be set before the first parse.
type Ref[T any] struct {
	name   string
	target atomic.Pointer[Parser[T]]
}

// Deferred returns an unset Ref.
func Deferred[T any]() *Ref[T] {
	return &Ref[T]{}
}

// Named returns an unset Ref whose name appears in panic messages.
func Named[T any](name string) *Ref[T] {
	return &Ref[T]{name: name}
}

// Set assigns the parser that r delegates to. It panics if r is already set.
func (r *Ref[T]) Set(p Parser[T]) {
	if p == nil {
		panic("comb: Set called with a nil parser on " + r.label())
	}
	if !r.target.CompareAndSwap(nil, &p) {
		panic("comb: " + r.label() + " set twice")
	}
}

// IsSet reports whether Set has been called.
func (r *Ref[T]) IsSet() bool {
	return r.target.Load() != nil
}

// Parse runs the assigned parser. It panics if r has not been set.
func (r *Ref[T]) Parse(in Input) Result[T] {
	p := r.target.Load()
	if p == nil {
		panic("comb: parse through unset " + r.label())
	}
	return (*p).Parse(in)
}

func (r *Ref[T]) label() string {
	if r.name == "" {
		return "deferred parser"
	}
	return "deferred parser " + r.name
}
