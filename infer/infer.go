// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package infer is a small inference engine over call-site syntax.
//
// It infers the types of names, literals, attributes, subscripts, and calls
// in an Env, and interprets expressions as type annotations.
// It implements intrinsic.Engine.
package infer

import (
	"fmt"
	"strings"

	"github.com/eaburns/pycheck/canon"
	"github.com/eaburns/pycheck/diag"
	"github.com/eaburns/pycheck/intrinsic"
	"github.com/eaburns/pycheck/loc"
	"github.com/eaburns/pycheck/syntax"
	"github.com/eaburns/pycheck/types"
)

// An Engine infers types in an Env.
type Engine struct {
	env *Env

	// Calls, if non-nil, is tried first for every call expression.
	// If it returns true, its type is the type of the call.
	Calls func(*syntax.Call, diag.Sink) (types.Type, bool)
}

var _ intrinsic.Engine = (*Engine)(nil)

// New returns a new Engine for env.
func New(env *Env) *Engine { return &Engine{env: env} }

// Solver returns the solver of the Engine's Env.
func (e *Engine) Solver() *types.Solver { return e.env.solver }

// ForDisplay resolves inference variables
// and puts class type arguments in canonical form.
func (e *Engine) ForDisplay(t types.Type) types.Type {
	return canon.Generics(e.env.solver.ResolveFully(t))
}

// Untype returns the type denoted by a value of type t.
func (e *Engine) Untype(t types.Type, r loc.Range) (types.Type, bool) {
	switch t := t.(type) {
	case *types.TypeOf:
		return t.Of, true
	case *types.Any:
		return t, true
	case *types.NoneType:
		return t, true
	case *types.Var:
		if s, ok := e.env.solver.Find(t).(*types.Var); !ok || s.ID != t.ID {
			return e.Untype(e.env.solver.ResolveFully(t), r)
		}
	}
	return nil, false
}

// InferAnnotation returns the type denoted by the annotation x.
// The context must be intrinsic.FunctionArgument.
func (e *Engine) InferAnnotation(x syntax.Expr, ctx intrinsic.TypeFormContext, sink diag.Sink) types.Type {
	if ctx != intrinsic.FunctionArgument {
		panic(fmt.Sprintf("impossible type form context %d", int(ctx)))
	}
	return e.annotation(x, sink)
}

// InferTypeInfo returns the type of x along with its known facets.
func (e *Engine) InferTypeInfo(x syntax.Expr, sink diag.Sink) types.TypeInfo {
	switch x := x.(type) {
	case *syntax.Name:
		if info, ok := e.env.vars[x.Text]; ok {
			return info
		}
	case *syntax.Attr:
		if !isModule(x.X) {
			return e.attrInfo(x, sink)
		}
	case *syntax.Subscript:
		if !e.isTypeForm(x) {
			return e.itemInfo(x, sink)
		}
	}
	return types.Info(e.Infer(x, sink))
}

// Infer returns the type of x evaluated as a value.
func (e *Engine) Infer(x syntax.Expr, sink diag.Sink) types.Type {
	if e.isTypeForm(x) {
		return &types.TypeOf{Of: e.annotation(x, sink)}
	}
	switch x := x.(type) {
	case *syntax.Name:
		return e.inferName(x, sink)
	case *syntax.Int:
		return &types.Literal{Value: x.Text, Base: e.env.class("int")}
	case *syntax.Str:
		return &types.Literal{Value: quote(x.Data), Base: e.env.class("str")}
	case *syntax.Placeholder:
		return e.env.Placeholder(x.Name)
	case *syntax.Attr:
		if isModule(x.X) {
			return e.inferName(&syntax.Name{Range: x.Range, Text: x.Name}, sink)
		}
		return e.attrInfo(x, sink).Type
	case *syntax.Subscript:
		return e.itemInfo(x, sink).Type
	case *syntax.List:
		return e.inferList(x, sink)
	case *syntax.Or:
		e.Infer(x.L, sink)
		e.Infer(x.R, sink)
		return &types.Any{}
	case *syntax.Call:
		return e.inferCall(x, sink)
	default:
		panic(fmt.Sprintf("impossible expr %T", x))
	}
}

func (e *Engine) inferName(x *syntax.Name, sink diag.Sink) types.Type {
	switch x.Text {
	case "None":
		return types.None()
	case "True", "False":
		return &types.Literal{Value: x.Text, Base: e.env.class("bool")}
	}
	if info, ok := e.env.vars[x.Text]; ok {
		return info.Type
	}
	if f, ok := e.env.funcs[x.Text]; ok {
		return f
	}
	return report(sink, x.Range, diag.UnknownName, "Could not find name `%s`", x.Text)
}

// attrInfo returns the facet of x.X named by x,
// or Any if x.X has no such facet.
func (e *Engine) attrInfo(x *syntax.Attr, sink diag.Sink) types.TypeInfo {
	if info, ok := e.InferTypeInfo(x.X, sink).Facet(x.Name); ok {
		return info
	}
	return types.Info(&types.Any{})
}

// itemInfo returns the facet of x.X for the index,
// or else the element type of a list or the value type of a dict.
func (e *Engine) itemInfo(x *syntax.Subscript, sink diag.Sink) types.TypeInfo {
	base := e.InferTypeInfo(x.X, sink)
	if len(x.Index) == 1 {
		if info, ok := base.Facet("[" + x.Index[0].String() + "]"); ok {
			return info
		}
	}
	for _, i := range x.Index {
		e.Infer(i, sink)
	}
	c, ok := canon.Generics(e.env.solver.ResolveFully(base.Type)).(*types.Class)
	switch {
	case !ok:
		return types.Info(&types.Any{})
	case c.Name == "list" && len(c.Args) == 1:
		return types.Info(c.Args[0])
	case c.Name == "dict" && len(c.Args) == 2:
		return types.Info(c.Args[1])
	default:
		return types.Info(&types.Any{})
	}
}

func (e *Engine) inferList(x *syntax.List, sink diag.Sink) types.Type {
	var elems []types.Type
	for _, el := range x.Elems {
		t := e.Infer(el, sink)
		if l, ok := t.(*types.Literal); ok && l.Base != nil {
			t = l.Base
		}
		if !contains(elems, t) {
			elems = append(elems, t)
		}
	}
	var elem types.Type
	switch len(elems) {
	case 0:
		elem = e.env.solver.Fresh()
	case 1:
		elem = elems[0]
	default:
		elem = &types.Union{Members: elems}
	}
	list := e.env.class("list")
	list.Args = []types.Type{elem}
	return list
}

func (e *Engine) inferCall(x *syntax.Call, sink diag.Sink) types.Type {
	if e.Calls != nil {
		if t, ok := e.Calls(x, sink); ok {
			return t
		}
	}
	fun := e.Infer(x.Fun, sink)
	for _, a := range x.Args {
		e.Infer(a, sink)
	}
	for _, k := range x.Keywords {
		e.Infer(k.Value, sink)
	}
	switch fun := e.env.solver.ResolveFully(fun).(type) {
	case *types.Callable:
		return fun.Ret
	case *types.TypeOf:
		if c, ok := fun.Of.(*types.Class); ok {
			return c
		}
	}
	return &types.Any{}
}

// isTypeForm returns whether x, as a value, denotes a type.
func (e *Engine) isTypeForm(x syntax.Expr) bool {
	switch x := x.(type) {
	case *syntax.Name:
		if _, ok := e.env.vars[x.Text]; ok {
			return false
		}
		if _, ok := e.env.funcs[x.Text]; ok {
			return false
		}
		return e.env.classes[x.Text] != nil || e.env.aliases[x.Text] != nil || specialForms[x.Text]
	case *syntax.Attr:
		return isModule(x.X) && e.isTypeForm(&syntax.Name{Range: x.Range, Text: x.Name})
	case *syntax.Subscript:
		return e.isTypeForm(x.X)
	case *syntax.Or:
		return e.isTypeForm(x.L) && (e.isTypeForm(x.R) || isNone(x.R)) ||
			isNone(x.L) && e.isTypeForm(x.R)
	default:
		return false
	}
}

var specialForms = map[string]bool{
	"Any":      true,
	"Never":    true,
	"NoReturn": true,
	"Self":     true,
	"Callable": true,
	"Literal":  true,
	"Union":    true,
	"Optional": true,
	"type":     true,
}

func isModule(x syntax.Expr) bool {
	n, ok := x.(*syntax.Name)
	return ok && (n.Text == "typing" || n.Text == "typing_extensions")
}

func isNone(x syntax.Expr) bool {
	n, ok := x.(*syntax.Name)
	return ok && n.Text == "None"
}

func contains(ts []types.Type, t types.Type) bool {
	for _, u := range ts {
		if types.Equal(u, t) {
			return true
		}
	}
	return false
}

func quote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`).Replace(s) + "'"
}

func report(sink diag.Sink, r loc.Range, kind diag.Kind, f string, vs ...interface{}) types.Type {
	sink.Report(diag.Diagnostic{Kind: kind, Msg: fmt.Sprintf(f, vs...), Range: r})
	return types.ErrorType()
}
