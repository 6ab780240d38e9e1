package grammar

import (
	"slices"
	"unicode"

	"github.com/dhamidi/pcomb/comb"
)

var keywords = []string{"let"}

// Keywords returns the words that cannot be used as variable names.
func Keywords() []string {
	return slices.Clone(keywords)
}

// Literal matches the exact word.
func Literal(word string) comb.Parser[string] {
	return comb.Tag(word)
}

// Whitespace matches one or more whitespace characters.
func Whitespace() comb.Parser[struct{}] {
	return comb.Map(comb.OneOrMore(comb.Satisfy(unicode.IsSpace)), func([]rune) struct{} {
		return struct{}{}
	})
}

// Identifier matches a letter followed by any number of letters and digits.
func Identifier() comb.Parser[Formula] {
	return comb.Map(identName(), func(name string) Formula { return Id{Name: name} })
}

// Number matches a run of decimal digits.
func Number() comb.Parser[Expression] {
	digits := comb.Recognize(comb.OneOrMore(comb.Satisfy(isDigit)))
	return comb.Map(digits, func(s string) Expression { return Num{Digits: s} })
}

func identName() comb.Parser[string] {
	first := comb.Satisfy(unicode.IsLetter)
	rest := comb.ZeroOrMore(comb.Satisfy(isAlphanumeric))
	return comb.Recognize(comb.Bind(first, rest))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isKeyword(name string) bool {
	return slices.Contains(keywords, name)
}
