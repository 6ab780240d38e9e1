// Package grammar implements a small arithmetic and assignment language on
// top of package comb.
package grammar

import (
	"fmt"
	"strings"
)

// Operator is a binary arithmetic operator.
type Operator int

const (
	Add Operator = iota
	Sub
)

func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Expression is a node of the expression tree.
type Expression interface {
	fmt.Stringer
	expression()
}

// Num is an integer literal, kept as written.
type Num struct {
	Digits string
}

// Variable refers to a name.
type Variable struct {
	Name string
}

// Map wraps a formula so it can be used as a value.
type Map struct {
	Formula Formula
}

// Binary is Left Op Right.
type Binary struct {
	Left  Expression
	Op    Operator
	Right Expression
}

// Assign binds Value to Target.
type Assign struct {
	Target Expression
	Value  Expression
}

func (Num) expression()      {}
func (Variable) expression() {}
func (Map) expression()      {}
func (Binary) expression()   {}
func (Assign) expression()   {}

func (n Num) String() string      { return n.Digits }
func (v Variable) String() string { return v.Name }
func (m Map) String() string      { return m.Formula.String() }

func (b Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Op, b.Left, b.Right)
}

func (a Assign) String() string {
	return fmt.Sprintf("(let %s %s)", a.Target, a.Value)
}

// Formula is either a bare identifier or a one-parameter mapping.
type Formula interface {
	fmt.Stringer
	formula()
}

// Id is an identifier.
type Id struct {
	Name string
}

// Lambda maps Param to Body.
type Lambda struct {
	Param string
	Body  Expression
}

func (Id) formula()     {}
func (Lambda) formula() {}

func (i Id) String() string { return i.Name }

func (l Lambda) String() string {
	return fmt.Sprintf("(-> %s %s)", l.Param, l.Body)
}

// Code is a parsed program: its statements in source order.
type Code struct {
	Expressions []Expression
}

func (c Code) String() string {
	var sb strings.Builder
	for _, e := range c.Expressions {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Names returns the variables assigned by the program, in order of first assignment.
func (c Code) Names() []string {
	var names []string
	seen := make(map[string]bool)
	for _, e := range c.Expressions {
		a, ok := e.(Assign)
		if !ok {
			continue
		}
		v, ok := a.Target.(Variable)
		if !ok || seen[v.Name] {
			continue
		}
		seen[v.Name] = true
		names = append(names, v.Name)
	}
	return names
}
