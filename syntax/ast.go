// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package syntax is the syntax of call sites:
// expressions, keyword arguments, and calls.
package syntax

//go:generate peggy -o grammar.go -t grammar.peggy

import "github.com/eaburns/pycheck/loc"

// A File is a parsed source file:
// a sequence of expression statements.
type File struct {
	Path  string
	Text  string
	Stmts []Expr
}

// An Expr is an expression.
type Expr interface {
	GetRange() loc.Range
	String() string
}

// A Name is an identifier.
type Name struct {
	loc.Range
	Text string
}

// An Int is an integer literal.
type Int struct {
	loc.Range
	Text string
}

// A Str is a string literal.
type Str struct {
	loc.Range
	// Text is the source text of the literal, including quotes.
	Text string
	// Data is the unquoted string value.
	Data string
}

// A Placeholder is an inference-variable placeholder, ?name.
type Placeholder struct {
	loc.Range
	Name string
}

// An Attr is an attribute selection, X.Name.
type Attr struct {
	loc.Range
	X    Expr
	Name string
}

// A Subscript is X[Index...].
type Subscript struct {
	loc.Range
	X     Expr
	Index []Expr
}

// A List is a list display, [Elems...].
type List struct {
	loc.Range
	Elems []Expr
}

// An Or is a union, L | R.
type Or struct {
	loc.Range
	L, R Expr
}

// A Call is a call expression.
type Call struct {
	loc.Range
	Fun      Expr
	Args     []Expr
	Keywords []Keyword
}

// A Keyword is a keyword argument, Name=Value,
// or a keyword splat, **Value, if Name is "".
type Keyword struct {
	loc.Range
	Name  string
	Value Expr
}

// FunName returns the dotted name of the called function,
// or "" if the function is not a dotted name.
func (n *Call) FunName() string { return dotted(n.Fun) }

func dotted(e Expr) string {
	switch e := e.(type) {
	case *Name:
		return e.Text
	case *Attr:
		if x := dotted(e.X); x != "" {
			return x + "." + e.Name
		}
	}
	return ""
}
