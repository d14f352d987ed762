// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package canon rewrites types into a canonical form,
// in which types that mean the same thing are Equal.
package canon

import "github.com/eaburns/pycheck/types"

// A Resolver replaces inference variables with their solutions.
// *types.Solver is a Resolver.
type Resolver interface {
	ResolveFully(types.Type) types.Type
}

// Canonicalize returns the canonical form of t.
//
// The passes are applied in this order:
// 	ResolvePass
// 	Generics
// 	ExplicitAny
// 	NoReturnToNever
// 	AnonCallables
//
// If r is nil, inference variables are left as they are.
func Canonicalize(t types.Type, r Resolver) types.Type {
	t = ResolvePass(t, r)
	t = Generics(t)
	t = ExplicitAny(t)
	t = NoReturnToNever(t)
	return AnonCallables(t)
}

// ResolvePass replaces every inference variable with its current solution.
func ResolvePass(t types.Type, r Resolver) types.Type {
	if r == nil {
		return t
	}
	return r.ResolveFully(t)
}

// Generics rewrites the type arguments of each class
// into positional form with one argument per type parameter.
// Keyed arguments are placed at the position of their parameter,
// and parameters with no argument get an implicit Any.
// A keyed argument replaces a positional argument for the same parameter,
// and of two keyed arguments for one parameter the last wins.
// Arguments beyond the class's type parameters are kept in order.
func Generics(t types.Type) types.Type {
	return types.Map(t, func(t types.Type) types.Type {
		c, ok := t.(*types.Class)
		if !ok || len(c.TParams) == 0 && len(c.Keyed) == 0 {
			return t
		}
		return canonicalClass(c)
	})
}

func canonicalClass(c *types.Class) *types.Class {
	args := make([]types.Type, len(c.TParams))
	copy(args, c.Args)
	var extra []types.Type
	if len(c.Args) > len(c.TParams) {
		extra = append(extra, c.Args[len(c.TParams):]...)
	}
	for _, k := range c.Keyed {
		i := index(c.TParams, k.Param)
		if i < 0 {
			extra = append(extra, k.Type)
			continue
		}
		args[i] = k.Type
	}
	for i := range args {
		if args[i] == nil {
			args[i] = &types.Any{Style: types.Implicit}
		}
	}
	return &types.Class{Name: c.Name, TParams: c.TParams, Args: append(args, extra...)}
}

func index(ss []string, s string) int {
	for i := range ss {
		if ss[i] == s {
			return i
		}
	}
	return -1
}

// ExplicitAny replaces explicitly-annotated Any with implicit Any.
func ExplicitAny(t types.Type) types.Type {
	return types.Map(t, func(t types.Type) types.Type {
		if a, ok := t.(*types.Any); ok && a.Style == types.Explicit {
			return &types.Any{Style: types.Implicit}
		}
		return t
	})
}

// NoReturnToNever replaces NoReturn with Never.
func NoReturnToNever(t types.Type) types.Type {
	return types.Map(t, func(t types.Type) types.Type {
		if n, ok := t.(*types.Never); ok && n.Style == types.NoReturn {
			return &types.Never{Style: types.NeverBottom}
		}
		return t
	})
}

// AnonCallables removes the function name, flags,
// and parameter names from every callable.
func AnonCallables(t types.Type) types.Type {
	return types.Map(t, func(t types.Type) types.Type {
		c, ok := t.(*types.Callable)
		if !ok {
			return t
		}
		anon := &types.Callable{Ret: c.Ret}
		for _, p := range c.Params {
			anon.Params = append(anon.Params, types.Param{Kind: p.Kind, Type: p.Type})
		}
		return anon
	})
}
