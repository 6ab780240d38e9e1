package parse

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/ebnf"
)

// checkLeftRecursion rejects grammars in which a production can reach itself
// without consuming input. Combinator parsers would recurse forever on them.
func checkLeftRecursion(g ebnf.Grammar) error {
	nullable := nullableSet(g)

	edges := make(map[string][]string, len(g))
	for name, prod := range g {
		seen := make(map[string]bool)
		leading(prod.Expr, nullable, seen)
		for n := range seen {
			edges[name] = append(edges[name], n)
		}
		sort.Strings(edges[name])
	}

	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(g))
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			i := indexOf(path, name)
			cycle := append(append([]string{}, path[i:]...), name)
			return fmt.Errorf("left recursion: %s", strings.Join(cycle, " -> "))
		case done:
			return nil
		}
		state[name] = visiting
		path = append(path, name)
		for _, next := range edges[name] {
			if err := visit(next); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}

// nullableSet returns the productions that can match the empty string.
func nullableSet(g ebnf.Grammar) map[string]bool {
	nullable := make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for name, prod := range g {
			if !nullable[name] && isNullable(prod.Expr, nullable) {
				nullable[name] = true
				changed = true
			}
		}
	}
	return nullable
}

func isNullable(expr ebnf.Expression, nullable map[string]bool) bool {
	switch e := expr.(type) {
	case nil:
		return true
	case ebnf.Alternative:
		for _, x := range e {
			if isNullable(x, nullable) {
				return true
			}
		}
		return false
	case ebnf.Sequence:
		for _, x := range e {
			if !isNullable(x, nullable) {
				return false
			}
		}
		return true
	case *ebnf.Group:
		return isNullable(e.Body, nullable)
	case *ebnf.Option, *ebnf.Repetition:
		return true
	case *ebnf.Token:
		return e.String == ""
	case *ebnf.Name:
		return nullable[e.String]
	default:
		return false
	}
}

// leading collects the names that can be invoked before any input is consumed.
func leading(expr ebnf.Expression, nullable map[string]bool, out map[string]bool) {
	switch e := expr.(type) {
	case ebnf.Alternative:
		for _, x := range e {
			leading(x, nullable, out)
		}
	case ebnf.Sequence:
		for _, x := range e {
			leading(x, nullable, out)
			if !isNullable(x, nullable) {
				return
			}
		}
	case *ebnf.Group:
		leading(e.Body, nullable, out)
	case *ebnf.Option:
		leading(e.Body, nullable, out)
	case *ebnf.Repetition:
		leading(e.Body, nullable, out)
	case *ebnf.Name:
		out[e.String] = true
	}
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
