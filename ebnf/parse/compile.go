package parse

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/pcomb/comb"
)

var log = commonlog.GetLogger("pcomb.ebnf")

// Option configures Compile.
type Option func(*compiler)

// WithSkipSpace makes non-lexical productions skip whitespace before each
// token and before each reference to a lexical production.
func WithSkipSpace() Option {
	return func(c *compiler) {
		c.skipSpace = true
	}
}

// Parser is a grammar compiled into combinators.
type Parser struct {
	start string
	root  comb.Parser[*Node]
	rules map[string]*comb.Ref[*Node]
}

type compiler struct {
	grammar   ebnf.Grammar
	skipSpace bool
	rules     map[string]*comb.Ref[*Node]
	space     comb.Parser[[]rune]
}

// Compile verifies g and compiles every production into a parser.
// The start production becomes the root. Grammars with left recursion are
// rejected.
func Compile(g ebnf.Grammar, start string, opts ...Option) (*Parser, error) {
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	if err := checkLeftRecursion(g); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}

	c := &compiler{
		grammar: g,
		rules:   make(map[string]*comb.Ref[*Node], len(g)),
		space:   comb.ZeroOrMore(comb.Satisfy(unicode.IsSpace)),
	}
	for _, opt := range opts {
		opt(c)
	}

	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
		c.rules[name] = comb.Named[*Node](name)
	}
	sort.Strings(names)
	for _, name := range names {
		c.rules[name].Set(c.production(g[name]))
	}
	log.Debugf("compiled %d productions, start %q", len(names), start)

	var root comb.Parser[*Node] = c.rules[start]
	if c.skipSpace {
		root = comb.Between(c.space, root, c.space)
	}
	return &Parser{start: start, root: root, rules: c.rules}, nil
}

// Parse parses src from the start production. All of src must be consumed.
func (p *Parser) Parse(src string) (*Node, error) {
	return comb.ParseAll(p.root, src)
}

// Start returns the name of the start production.
func (p *Parser) Start() string {
	return p.start
}

// Root returns the combinator parser for the start production.
func (p *Parser) Root() comb.Parser[*Node] {
	return p.root
}

// Rule returns the parser for a single production, without whitespace
// handling around it.
func (p *Parser) Rule(name string) (comb.Parser[*Node], bool) {
	r, ok := p.rules[name]
	return r, ok
}

func (c *compiler) production(prod *ebnf.Production) comb.Parser[*Node] {
	name := prod.Name.String
	lexical := isLexical(name)
	body := c.expr(prod.Expr, lexical)

	if lexical {
		return comb.Func[*Node](func(in comb.Input) comb.Result[*Node] {
			r := body.Parse(in)
			if !r.OK {
				return comb.Failure[*Node](r.Rest)
			}
			return comb.Success(r.Rest, NewTerminal(name, r.Rest.Since(in), in.Offset()))
		})
	}

	return comb.Func[*Node](func(in comb.Input) comb.Result[*Node] {
		r := body.Parse(in)
		if !r.OK {
			return comb.Failure[*Node](r.Rest)
		}
		node := NewNonTerminal(name)
		node.Span = Span{Start: r.Rest.Offset(), End: r.Rest.Offset()}
		for _, child := range r.Value {
			node.AddChild(child)
		}
		return comb.Success(r.Rest, node)
	})
}

// expr compiles an expression into a parser for the child nodes it contributes.
func (c *compiler) expr(x ebnf.Expression, lexical bool) comb.Parser[[]*Node] {
	switch e := x.(type) {
	case nil:
		return comb.Succeed[[]*Node](nil)

	case ebnf.Alternative:
		alts := make([]comb.Parser[[]*Node], len(e))
		for i, alt := range e {
			alts[i] = c.expr(alt, lexical)
		}
		return comb.Choice(alts...)

	case ebnf.Sequence:
		p := c.expr(e[0], lexical)
		for _, next := range e[1:] {
			p = comb.Map(comb.Bind(p, c.expr(next, lexical)), concat)
		}
		return p

	case *ebnf.Group:
		return c.expr(e.Body, lexical)

	case *ebnf.Option:
		return comb.Map(comb.Optional(c.expr(e.Body, lexical)), func(m comb.Maybe[[]*Node]) []*Node {
			return m.Value
		})

	case *ebnf.Repetition:
		return comb.Map(comb.ZeroOrMore(c.expr(e.Body, lexical)), func(groups [][]*Node) []*Node {
			return slices.Concat(groups...)
		})

	case *ebnf.Token:
		return c.skip(terminal(strconv.Quote(e.String), comb.Tag(e.String)), lexical)

	case *ebnf.Range:
		lo, _ := utf8.DecodeRuneInString(e.Begin.String)
		hi, _ := utf8.DecodeRuneInString(e.End.String)
		match := comb.Recognize(comb.Satisfy(func(r rune) bool { return r >= lo && r <= hi }))
		return c.skip(terminal(e.Begin.String+"…"+e.End.String, match), lexical)

	case *ebnf.Name:
		ref := comb.Map[*Node, []*Node](c.rules[e.String], func(n *Node) []*Node { return []*Node{n} })
		if isLexical(e.String) {
			return c.skip(ref, lexical)
		}
		return ref

	default:
		panic(fmt.Sprintf("parse: unexpected expression %T", x))
	}
}

// skip prefixes p with optional whitespace in non-lexical context.
func (c *compiler) skip(p comb.Parser[[]*Node], lexical bool) comb.Parser[[]*Node] {
	if lexical || !c.skipSpace {
		return p
	}
	return comb.Right(c.space, p)
}

func terminal(kind string, p comb.Parser[string]) comb.Parser[[]*Node] {
	return comb.Func[[]*Node](func(in comb.Input) comb.Result[[]*Node] {
		r := p.Parse(in)
		if !r.OK {
			return comb.Failure[[]*Node](r.Rest)
		}
		return comb.Success(r.Rest, []*Node{NewTerminal(kind, r.Value, in.Offset())})
	})
}

func concat(p comb.Pair[[]*Node, []*Node]) []*Node {
	return slices.Concat(p.First, p.Second)
}
