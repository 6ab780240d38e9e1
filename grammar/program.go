package grammar

import (
	"sync"

	"github.com/dhamidi/pcomb/comb"
)

// Program returns the parser for a whole program:
//
//	program    = { statement } .
//	statement  = ( assignment | expression ) [ ";" ] .
//	assignment = "let" ident "=" expression .
//	expression = lambda | sum .
//	lambda     = ident "->" expression .
//	sum        = term { ( "+" | "-" ) term } .
//	term       = number | ident | "(" expression ")" .
//
// Whitespace may appear between any two tokens. The parser is built once and
// shared.
func Program() comb.Parser[Code] {
	return program()
}

// ParseProgram parses src and requires that all of it is consumed.
// Failures are reported as *comb.Error.
func ParseProgram(src string) (Code, error) {
	return comb.ParseAll(Program(), src)
}

// Expr returns the parser for a single expression, without leading whitespace.
func Expr() comb.Parser[Expression] {
	return expression()
}

var program = sync.OnceValue(func() comb.Parser[Code] {
	statement := comb.Left(
		comb.Either(assignment(), expression()),
		comb.Optional(symbol(";")),
	)
	body := comb.Right(comb.Optional(Whitespace()), comb.ZeroOrMore(statement))
	return comb.Map(body, func(exprs []Expression) Code { return Code{Expressions: exprs} })
})

var expression = sync.OnceValue(func() comb.Parser[Expression] {
	expr := comb.Named[Expression]("expression")

	term := comb.Choice(
		lexeme(Number()),
		comb.Map(name(), func(n string) Expression { return Variable{Name: n} }),
		comb.Between[string, Expression, string](symbol("("), expr, symbol(")")),
	)

	op := comb.Either(
		comb.Map(symbol("+"), func(string) Operator { return Add }),
		comb.Map(symbol("-"), func(string) Operator { return Sub }),
	)

	sum := comb.Map(
		comb.Bind(term, comb.ZeroOrMore(comb.Bind(op, term))),
		func(p comb.Pair[Expression, []comb.Pair[Operator, Expression]]) Expression {
			left := p.First
			for _, next := range p.Second {
				left = Binary{Left: left, Op: next.First, Right: next.Second}
			}
			return left
		},
	)

	lambda := comb.Map(
		comb.Bind(comb.Left(name(), symbol("->")), comb.Parser[Expression](expr)),
		func(p comb.Pair[string, Expression]) Expression {
			return Map{Formula: Lambda{Param: p.First, Body: p.Second}}
		},
	)

	expr.Set(comb.Either(lambda, sum))
	return expr
})

func assignment() comb.Parser[Expression] {
	let := comb.Left(Literal("let"), Whitespace())
	target := comb.Left(comb.Right(let, name()), symbol("="))
	return comb.Map(comb.Bind(target, expression()), func(p comb.Pair[string, Expression]) Expression {
		return Assign{Target: Variable{Name: p.First}, Value: p.Second}
	})
}

// name is an identifier that is not a keyword, with trailing whitespace skipped.
func name() comb.Parser[string] {
	return lexeme(comb.Predicate(identName(), func(s string) bool { return !isKeyword(s) }))
}

func symbol(s string) comb.Parser[string] {
	return lexeme(Literal(s))
}

func lexeme[T any](p comb.Parser[T]) comb.Parser[T] {
	return comb.Left(p, comb.Optional(Whitespace()))
}
