// Copyright © 2020 The Pea Authors under an MIT-style license.

package types

import "fmt"

// Map returns a copy of t with f applied bottom up:
// the children of each node are mapped first,
// then f is applied to the rebuilt node.
//
// Map never modifies t.
// The Base of a Literal is not mapped.
func Map(t Type, f func(Type) Type) Type {
	if t == nil {
		return nil
	}
	switch t := t.(type) {
	case *Class:
		c := &Class{Name: t.Name, TParams: t.TParams}
		c.Args = mapList(t.Args, f)
		for _, a := range t.Keyed {
			c.Keyed = append(c.Keyed, TArg{Param: a.Param, Type: Map(a.Type, f)})
		}
		return f(c)
	case *Callable:
		c := &Callable{Name: t.Name, Flags: t.Flags}
		for _, p := range t.Params {
			c.Params = append(c.Params, Param{Name: p.Name, Kind: p.Kind, Type: Map(p.Type, f)})
		}
		c.Ret = Map(t.Ret, f)
		return f(c)
	case *Union:
		return f(&Union{Members: mapList(t.Members, f)})
	case *TypeOf:
		return f(&TypeOf{Of: Map(t.Of, f)})
	case *Never:
		n := *t
		return f(&n)
	case *Any:
		a := *t
		return f(&a)
	case *Var:
		v := *t
		return f(&v)
	case *SelfType:
		s := *t
		return f(&s)
	case *SelfForm:
		return f(&SelfForm{})
	case *NoneType:
		return f(&NoneType{})
	case *Literal:
		l := *t
		return f(&l)
	default:
		panic(fmt.Sprintf("impossible type %T", t))
	}
}

func mapList(ts []Type, f func(Type) Type) []Type {
	if ts == nil {
		return nil
	}
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = Map(t, f)
	}
	return out
}

// SubstSelf returns a copy of t with every *SelfType
// for which keep returns true replaced by repl.
func SubstSelf(t, repl Type, keep func(*SelfType) bool) Type {
	return Map(t, func(t Type) Type {
		if s, ok := t.(*SelfType); ok && keep(s) {
			return repl
		}
		return t
	})
}
