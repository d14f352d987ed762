// Copyright © 2020 The Pea Authors under an MIT-style license.

package types

import "strings"

// A TypeInfo is the type of an expression
// together with facets: the narrowed types
// of attributes or items reached from the expression.
type TypeInfo struct {
	Type   Type
	Facets []Facet
}

// A Facet is the TypeInfo of one attribute or item.
type Facet struct {
	// Key names the attribute or item, for example x or [0].
	Key  string
	Info TypeInfo
}

// Info returns a TypeInfo with no facets.
func Info(t Type) TypeInfo { return TypeInfo{Type: t} }

// Facet returns the facet with the given key.
func (n TypeInfo) Facet(key string) (TypeInfo, bool) {
	for _, f := range n.Facets {
		if f.Key == key {
			return f.Info, true
		}
	}
	return TypeInfo{}, false
}

// Map returns a copy of n with every Type in it,
// including the Types of all facets, replaced by f of that Type.
func (n TypeInfo) Map(f func(Type) Type) TypeInfo {
	m := TypeInfo{Type: f(n.Type)}
	for _, fct := range n.Facets {
		m.Facets = append(m.Facets, Facet{Key: fct.Key, Info: fct.Info.Map(f)})
	}
	return m
}

// String returns the TypeInfo as its type,
// followed by its facets in parentheses, if any.
func (n TypeInfo) String() string {
	var s strings.Builder
	buildInfoString(&n, &s)
	return s.String()
}

func buildInfoString(n *TypeInfo, s *strings.Builder) {
	buildTypeString(n.Type, s)
	if len(n.Facets) == 0 {
		return
	}
	s.WriteString(" (")
	for i := range n.Facets {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(n.Facets[i].Key)
		s.WriteString(": ")
		buildInfoString(&n.Facets[i].Info, s)
	}
	s.WriteRune(')')
}
