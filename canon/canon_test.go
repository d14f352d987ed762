// Copyright © 2020 The Pea Authors under an MIT-style license.

package canon

import (
	"testing"

	"github.com/eaburns/pretty"
	"github.com/eaburns/pycheck/types"
)

var (
	intType = &types.Class{Name: "int"}
	strType = &types.Class{Name: "str"}
)

func dict(k, v types.Type) *types.Class {
	return &types.Class{Name: "dict", TParams: []string{"K", "V"}, Args: []types.Type{k, v}}
}

func TestCanonicalizeIdentifies(t *testing.T) {
	s := types.NewSolver()
	solved, unsolved := s.Fresh(), s.Fresh()
	if err := s.Solve(solved, intType); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		a, b types.Type
	}{
		{
			name: "explicit and implicit any",
			a:    &types.Any{Style: types.Explicit},
			b:    &types.Any{Style: types.Implicit},
		},
		{
			name: "nested explicit any",
			a:    &types.Class{Name: "list", TParams: []string{"T"}, Args: []types.Type{&types.Any{Style: types.Explicit}}},
			b:    &types.Class{Name: "list", TParams: []string{"T"}, Args: []types.Type{&types.Any{}}},
		},
		{
			name: "noreturn and never",
			a:    &types.Never{Style: types.NoReturn},
			b:    &types.Never{Style: types.NeverBottom},
		},
		{
			name: "callables differing in names and flags",
			a: &types.Callable{
				Name:   "f",
				Flags:  types.Overload | types.Deprecated,
				Params: []types.Param{{Name: "x", Kind: types.PosOrKw, Type: intType}},
				Ret:    &types.Never{Style: types.NoReturn},
			},
			b: &types.Callable{
				Params: []types.Param{{Name: "y", Kind: types.PosOrKw, Type: intType}},
				Ret:    &types.Never{},
			},
		},
		{
			name: "keyed args in any order",
			a: &types.Class{Name: "dict", TParams: []string{"K", "V"}, Keyed: []types.TArg{
				{Param: "V", Type: strType},
				{Param: "K", Type: intType},
			}},
			b: dict(intType, strType),
		},
		{
			name: "mixed positional and keyed",
			a: &types.Class{Name: "dict", TParams: []string{"K", "V"},
				Args:  []types.Type{intType},
				Keyed: []types.TArg{{Param: "V", Type: strType}},
			},
			b: dict(intType, strType),
		},
		{
			name: "bare generic",
			a:    &types.Class{Name: "dict", TParams: []string{"K", "V"}},
			b:    dict(&types.Any{}, &types.Any{Style: types.Explicit}),
		},
		{
			name: "solved var",
			a:    &types.Union{Members: []types.Type{solved, types.None()}},
			b:    &types.Union{Members: []types.Type{intType, types.None()}},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			a, b := Canonicalize(test.a, s), Canonicalize(test.b, s)
			if !types.Equal(a, b) {
				t.Errorf("%s and %s are not canonically equal:\n%s\n%s",
					test.a, test.b, pretty.String(a), pretty.String(b))
			}
		})
	}

	if a, b := Canonicalize(unsolved, s), Canonicalize(s.Fresh(), s); types.Equal(a, b) {
		t.Errorf("distinct unsolved vars are canonically equal: %s, %s", a, b)
	}
}

func TestCanonicalizeDistinguishes(t *testing.T) {
	tests := []struct {
		name string
		a, b types.Type
	}{
		{name: "different classes", a: intType, b: strType},
		{name: "different args", a: dict(intType, strType), b: dict(strType, intType)},
		{
			name: "different param types",
			a:    &types.Callable{Params: []types.Param{{Name: "x", Type: intType}}, Ret: types.None()},
			b:    &types.Callable{Params: []types.Param{{Name: "x", Type: strType}}, Ret: types.None()},
		},
		{
			name: "different param kinds",
			a:    &types.Callable{Params: []types.Param{{Kind: types.PosOnly, Type: intType}}, Ret: types.None()},
			b:    &types.Callable{Params: []types.Param{{Kind: types.VarArgs, Type: intType}}, Ret: types.None()},
		},
		{name: "any and never", a: &types.Any{Style: types.Explicit}, b: &types.Never{}},
		{name: "self types of different classes", a: &types.SelfType{Class: "C"}, b: &types.SelfType{Class: "D"}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if a, b := Canonicalize(test.a, nil), Canonicalize(test.b, nil); types.Equal(a, b) {
				t.Errorf("%s and %s are canonically equal", test.a, test.b)
			}
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	s := types.NewSolver()
	v := s.Fresh()
	if err := s.Solve(v, &types.Class{Name: "set", TParams: []string{"T"}}); err != nil {
		t.Fatal(err)
	}
	tests := []types.Type{
		intType,
		v,
		s.Fresh(),
		&types.Class{Name: "dict", TParams: []string{"K", "V"}, Keyed: []types.TArg{{Param: "V", Type: v}}},
		&types.Class{Name: "tuple", Args: []types.Type{intType, strType}},
		&types.Class{Name: "box", TParams: []string{"T"}, Args: []types.Type{intType, strType}},
		&types.Class{Name: "box", Keyed: []types.TArg{{Param: "Q", Type: intType}}},
		&types.Union{Members: []types.Type{
			&types.Callable{Name: "f", Params: []types.Param{{Name: "a", Type: &types.Any{Style: types.Explicit}}}, Ret: &types.Never{Style: types.NoReturn}},
			types.None(),
		}},
		&types.TypeOf{Of: &types.SelfType{Class: "C"}},
		&types.Literal{Value: "1", Base: intType},
	}
	for _, test := range tests {
		once := Canonicalize(test, s)
		twice := Canonicalize(once, s)
		if !types.Equal(once, twice) {
			t.Errorf("Canonicalize(%s) is not idempotent: %s then %s", test, once, twice)
		}
	}
}

func TestGenericsExtraArgs(t *testing.T) {
	c := &types.Class{
		Name:    "box",
		TParams: []string{"T"},
		Args:    []types.Type{intType, strType},
		Keyed:   []types.TArg{{Param: "U", Type: types.None()}},
	}
	if got, want := Generics(c).String(), "box[int, str, None]"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got, want := c.String(), "box[int, str, U=None]"; got != want {
		t.Errorf("Generics modified its input: got %s, want %s", got, want)
	}
}

func TestGenericsKeyedOverridesPositional(t *testing.T) {
	c := &types.Class{
		Name:    "dict",
		TParams: []string{"K", "V"},
		Args:    []types.Type{intType, strType},
		Keyed: []types.TArg{
			{Param: "K", Type: strType},
			{Param: "V", Type: intType},
			{Param: "V", Type: types.None()},
		},
	}
	if got, want := Generics(c).String(), "dict[str, None]"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
