// Copyright © 2020 The Pea Authors under an MIT-style license.

package infer

import (
	"github.com/eaburns/pycheck/diag"
	"github.com/eaburns/pycheck/syntax"
	"github.com/eaburns/pycheck/types"
)

// annotation returns the type denoted by x.
func (e *Engine) annotation(x syntax.Expr, sink diag.Sink) types.Type {
	switch x := x.(type) {
	case *syntax.Name:
		return e.annotName(x, sink)
	case *syntax.Attr:
		if isModule(x.X) {
			return e.annotName(&syntax.Name{Range: x.Range, Text: x.Name}, sink)
		}
	case *syntax.Subscript:
		return e.annotSubscript(x, sink)
	case *syntax.Or:
		return union(e.annotation(x.L, sink), e.annotation(x.R, sink))
	case *syntax.Placeholder:
		return e.env.Placeholder(x.Name)
	case *syntax.Str:
		// A forward reference.
		fwd, err := syntax.ParseExpr(x.Data)
		if err != nil {
			return report(sink, x.Range, diag.InvalidAnnotation, "Could not parse type string: %s", x.Data)
		}
		return e.annotation(syntax.Shift(fwd, x.Range[0]+1), sink)
	}
	return e.notAType(x, sink)
}

func (e *Engine) notAType(x syntax.Expr, sink diag.Sink) types.Type {
	var discard diag.Collector
	t := e.ForDisplay(e.Infer(x, &discard))
	return report(sink, x.GetRange(), diag.InvalidAnnotation, "Expected a type form, got instance of `%s`", t)
}

func (e *Engine) annotName(x *syntax.Name, sink diag.Sink) types.Type {
	switch x.Text {
	case "None":
		return types.None()
	case "Any":
		return &types.Any{Style: types.Explicit}
	case "Never":
		return &types.Never{Style: types.NeverBottom}
	case "NoReturn":
		return &types.Never{Style: types.NoReturn}
	case "Self":
		if e.env.Self == "" {
			return report(sink, x.Range, diag.InvalidAnnotation, "`Self` must appear within a class")
		}
		return &types.SelfType{Class: e.env.Self}
	case "type":
		return &types.TypeOf{Of: &types.Any{Style: types.Implicit}}
	case "Callable", "Literal", "Union", "Optional":
		return report(sink, x.Range, diag.InvalidAnnotation, "`%s` requires type arguments", x.Text)
	}
	if _, ok := e.env.vars[x.Text]; ok {
		return e.notAType(x, sink)
	}
	if _, ok := e.env.funcs[x.Text]; ok {
		return e.notAType(x, sink)
	}
	if c := e.env.class(x.Text); c != nil {
		return c
	}
	if t, ok := e.env.aliases[x.Text]; ok {
		return t
	}
	return report(sink, x.Range, diag.UnknownName, "Could not find name `%s`", x.Text)
}

func (e *Engine) annotSubscript(x *syntax.Subscript, sink diag.Sink) types.Type {
	var name string
	switch base := x.X.(type) {
	case *syntax.Name:
		name = base.Text
	case *syntax.Attr:
		if isModule(base.X) {
			name = base.Name
		}
	}
	switch name {
	case "type":
		if len(x.Index) != 1 {
			return report(sink, x.Range, diag.InvalidAnnotation, "`type` requires exactly one type argument")
		}
		return &types.TypeOf{Of: e.annotation(x.Index[0], sink)}
	case "Optional":
		if len(x.Index) != 1 {
			return report(sink, x.Range, diag.InvalidAnnotation, "`Optional` requires exactly one type argument")
		}
		return union(e.annotation(x.Index[0], sink), types.None())
	case "Union":
		var u types.Type
		for _, i := range x.Index {
			u = union(u, e.annotation(i, sink))
		}
		return u
	case "Literal":
		var u types.Type
		for _, i := range x.Index {
			u = union(u, e.literal(i, sink))
		}
		return u
	case "Callable":
		return e.annotCallable(x, sink)
	}
	if _, ok := e.env.vars[name]; ok || name == "" {
		return e.notAType(x, sink)
	}
	if _, ok := e.env.funcs[name]; ok {
		return e.notAType(x, sink)
	}
	c := e.env.class(name)
	if c == nil {
		if _, ok := e.env.aliases[name]; ok {
			return report(sink, x.Range, diag.InvalidAnnotation, "Type alias `%s` is not generic", name)
		}
		return report(sink, x.X.GetRange(), diag.UnknownName, "Could not find name `%s`", name)
	}
	if len(x.Index) > len(c.TParams) {
		return report(sink, x.Range, diag.InvalidAnnotation,
			"Expected %d type argument(s) for `%s`, got %d", len(c.TParams), name, len(x.Index))
	}
	for _, i := range x.Index {
		c.Args = append(c.Args, e.annotation(i, sink))
	}
	return c
}

func (e *Engine) annotCallable(x *syntax.Subscript, sink diag.Sink) types.Type {
	if len(x.Index) != 2 {
		return report(sink, x.Range, diag.InvalidAnnotation, "`Callable` requires a parameter list and a result type")
	}
	params, ok := x.Index[0].(*syntax.List)
	if !ok {
		return report(sink, x.Index[0].GetRange(), diag.InvalidAnnotation, "`Callable` parameters must be a list of types")
	}
	c := &types.Callable{}
	for _, p := range params.Elems {
		c.Params = append(c.Params, types.Param{Kind: types.PosOnly, Type: e.annotation(p, sink)})
	}
	c.Ret = e.annotation(x.Index[1], sink)
	return c
}

func (e *Engine) literal(x syntax.Expr, sink diag.Sink) types.Type {
	switch x := x.(type) {
	case *syntax.Int, *syntax.Str:
		return e.Infer(x, sink)
	case *syntax.Name:
		switch x.Text {
		case "True", "False":
			return e.Infer(x, sink)
		case "None":
			return types.None()
		}
	}
	return report(sink, x.GetRange(), diag.InvalidAnnotation, "Invalid literal value `%s`", x)
}

// union returns the union of a and b,
// flattening nested unions and dropping duplicates.
// If a is nil, b is returned.
func union(a, b types.Type) types.Type {
	if a == nil {
		return b
	}
	var ms []types.Type
	for _, t := range []types.Type{a, b} {
		if u, ok := t.(*types.Union); ok {
			for _, m := range u.Members {
				if !contains(ms, m) {
					ms = append(ms, m)
				}
			}
		} else if !contains(ms, t) {
			ms = append(ms, t)
		}
	}
	if len(ms) == 1 {
		return ms[0]
	}
	return &types.Union{Members: ms}
}
