// Copyright © 2020 The Pea Authors under an MIT-style license.

package types

import (
	"strconv"
	"strings"
)

func (n *Class) String() string    { return buildString(n) }
func (n *Callable) String() string { return buildString(n) }
func (n *Union) String() string    { return buildString(n) }
func (n *Never) String() string    { return buildString(n) }
func (n *Any) String() string      { return buildString(n) }
func (n *Var) String() string      { return buildString(n) }
func (n *SelfType) String() string { return buildString(n) }
func (n *SelfForm) String() string { return buildString(n) }
func (n *NoneType) String() string { return buildString(n) }
func (n *TypeOf) String() string   { return buildString(n) }
func (n *Literal) String() string  { return buildString(n) }

func buildString(t Type) string {
	var s strings.Builder
	buildTypeString(t, &s)
	return s.String()
}

func buildTypeString(t Type, s *strings.Builder) {
	switch t := t.(type) {
	case nil:
		s.WriteString("<nil>")
	case *Class:
		buildClassString(t, s)
	case *Callable:
		buildCallableString(t, s)
	case *Union:
		for i, m := range t.Members {
			if i > 0 {
				s.WriteString(" | ")
			}
			if _, ok := m.(*Callable); ok {
				s.WriteRune('(')
				buildTypeString(m, s)
				s.WriteRune(')')
				continue
			}
			buildTypeString(m, s)
		}
	case *Never:
		if t.Style == NoReturn {
			s.WriteString("NoReturn")
		} else {
			s.WriteString("Never")
		}
	case *Any:
		s.WriteString("Any")
	case *Var:
		s.WriteRune('@')
		s.WriteString(strconv.Itoa(t.ID))
	case *SelfType:
		s.WriteString("Self@")
		s.WriteString(t.Class)
	case *SelfForm:
		s.WriteString("Self")
	case *NoneType:
		s.WriteString("None")
	case *TypeOf:
		s.WriteString("type[")
		buildTypeString(t.Of, s)
		s.WriteRune(']')
	case *Literal:
		s.WriteString("Literal[")
		s.WriteString(t.Value)
		s.WriteRune(']')
	}
}

func buildClassString(n *Class, s *strings.Builder) {
	s.WriteString(n.Name)
	if len(n.Args) == 0 && len(n.Keyed) == 0 {
		return
	}
	s.WriteRune('[')
	for i, a := range n.Args {
		if i > 0 {
			s.WriteString(", ")
		}
		buildTypeString(a, s)
	}
	for i, a := range n.Keyed {
		if i > 0 || len(n.Args) > 0 {
			s.WriteString(", ")
		}
		s.WriteString(a.Param)
		s.WriteRune('=')
		buildTypeString(a.Type, s)
	}
	s.WriteRune(']')
}

func buildCallableString(n *Callable, s *strings.Builder) {
	s.WriteRune('(')
	for i, p := range n.Params {
		if i > 0 {
			s.WriteString(", ")
		}
		switch p.Kind {
		case VarArgs:
			s.WriteRune('*')
		case KwArgs:
			s.WriteString("**")
		}
		if p.Name != "" {
			s.WriteString(p.Name)
			s.WriteString(": ")
		}
		buildTypeString(p.Type, s)
	}
	s.WriteString(") -> ")
	buildTypeString(n.Ret, s)
}
