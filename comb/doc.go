// Package comb provides parser combinators over immutable text.
//
// A [Parser] maps an [Input] to a [Result]: either a success carrying the
// remaining input and a value, or a failure carrying the input the parser was
// given. Larger parsers are built by combining smaller ones:
//
//   - [Bind], [Left], [Right], [Between]: sequencing
//   - [Map]: transforming the value
//   - [Either], [Choice], [Optional]: ordered choice
//   - [AndThen]: choosing the next parser from the previous value
//   - [ZeroOrMore], [OneOrMore], [SepBy], [SepBy1]: repetition
//   - [Predicate]: rejecting values
//   - [Deferred]: recursive grammars
//
// Parsers are immutable once built and may be shared between goroutines.
// A failure never reports partially consumed input, so [Either] can always
// retry its second alternative from where the first one started.
package comb
