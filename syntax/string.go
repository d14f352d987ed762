// Copyright © 2020 The Pea Authors under an MIT-style license.

package syntax

import "strings"

func (n *Name) String() string        { return n.Text }
func (n *Int) String() string         { return n.Text }
func (n *Str) String() string         { return n.Text }
func (n *Placeholder) String() string { return "?" + n.Name }
func (n *Attr) String() string        { return n.X.String() + "." + n.Name }
func (n *Or) String() string          { return n.L.String() + " | " + n.R.String() }

func (n *Subscript) String() string {
	var s strings.Builder
	s.WriteString(n.X.String())
	s.WriteRune('[')
	buildExprs(n.Index, &s)
	s.WriteRune(']')
	return s.String()
}

func (n *List) String() string {
	var s strings.Builder
	s.WriteRune('[')
	buildExprs(n.Elems, &s)
	s.WriteRune(']')
	return s.String()
}

func (n *Call) String() string {
	var s strings.Builder
	s.WriteString(n.Fun.String())
	s.WriteRune('(')
	buildExprs(n.Args, &s)
	for i, k := range n.Keywords {
		if i > 0 || len(n.Args) > 0 {
			s.WriteString(", ")
		}
		s.WriteString(k.String())
	}
	s.WriteRune(')')
	return s.String()
}

func (n Keyword) String() string {
	if n.Name == "" {
		return "**" + n.Value.String()
	}
	return n.Name + "=" + n.Value.String()
}

func buildExprs(es []Expr, s *strings.Builder) {
	for i, e := range es {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(e.String())
	}
}
