// Copyright © 2020 The Pea Authors under an MIT-style license.

package types

import (
	"testing"

	"github.com/eaburns/pretty"
)

var (
	intType = &Class{Name: "int"}
	strType = &Class{Name: "str"}
)

func listOf(t Type) *Class {
	return &Class{Name: "list", TParams: []string{"T"}, Args: []Type{t}}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{name: "same class", a: intType, b: &Class{Name: "int"}, want: true},
		{name: "different class", a: intType, b: strType, want: false},
		{name: "same args", a: listOf(intType), b: listOf(&Class{Name: "int"}), want: true},
		{name: "different args", a: listOf(intType), b: listOf(strType), want: false},
		{
			name: "positional vs keyed",
			a:    listOf(intType),
			b:    &Class{Name: "list", TParams: []string{"T"}, Keyed: []TArg{{"T", intType}}},
			want: false,
		},
		{name: "any styles differ", a: &Any{Style: Explicit}, b: &Any{Style: Implicit}, want: false},
		{name: "never styles differ", a: &Never{Style: NoReturn}, b: &Never{}, want: false},
		{name: "vars by id", a: &Var{ID: 1}, b: &Var{ID: 1}, want: true},
		{name: "distinct vars", a: &Var{ID: 1}, b: &Var{ID: 2}, want: false},
		{name: "self types", a: &SelfType{Class: "C"}, b: &SelfType{Class: "D"}, want: false},
		{name: "self form", a: &SelfForm{}, b: &SelfForm{}, want: true},
		{name: "none", a: None(), b: &NoneType{}, want: true},
		{name: "none vs any", a: None(), b: &Any{}, want: false},
		{
			name: "union order matters",
			a:    &Union{Members: []Type{intType, strType}},
			b:    &Union{Members: []Type{strType, intType}},
			want: false,
		},
		{
			name: "callable param names matter",
			a:    &Callable{Params: []Param{{Name: "x", Type: intType}}, Ret: None()},
			b:    &Callable{Params: []Param{{Name: "y", Type: intType}}, Ret: None()},
			want: false,
		},
		{
			name: "callables",
			a:    &Callable{Params: []Param{{Type: intType}}, Ret: strType},
			b:    &Callable{Params: []Param{{Type: intType}}, Ret: strType},
			want: true,
		},
		{
			name: "literals",
			a:    &Literal{Value: "1", Base: intType},
			b:    &Literal{Value: "1", Base: &Class{Name: "int"}},
			want: true,
		},
		{name: "type of", a: &TypeOf{Of: intType}, b: &TypeOf{Of: strType}, want: false},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := Equal(test.a, test.b); got != test.want {
				t.Errorf("Equal(%s, %s)=%v, want %v", test.a, test.b, got, test.want)
			}
			if got := Equal(test.b, test.a); got != test.want {
				t.Errorf("Equal(%s, %s)=%v, want %v", test.b, test.a, got, test.want)
			}
		})
	}
}

func TestSubstSelf(t *testing.T) {
	in := &Union{Members: []Type{
		&SelfType{Class: "C"},
		listOf(&SelfType{Class: "D"}),
		&Callable{Params: []Param{{Name: "x", Type: &SelfType{Class: "C"}}}, Ret: None()},
	}}
	orig := in.String()

	all := SubstSelf(in, &SelfForm{}, func(*SelfType) bool { return true })
	if got, want := all.String(), "Self | list[Self] | ((x: Self) -> None)"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	onlyC := SubstSelf(in, &SelfForm{}, func(s *SelfType) bool { return s.Class == "C" })
	if got, want := onlyC.String(), "Self | list[Self@D] | ((x: Self) -> None)"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	if in.String() != orig {
		t.Errorf("SubstSelf modified its input: got %s, want %s", in, orig)
	}
}

func TestMapRebuilds(t *testing.T) {
	in := listOf(intType)
	out := Map(in, func(t Type) Type { return t })
	if !Equal(in, out) {
		t.Fatalf("identity Map changed the type: %s", pretty.String(out))
	}
	if out.(*Class) == in || out.(*Class).Args[0] == in.Args[0] {
		t.Errorf("Map aliased its input")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{intType, "int"},
		{listOf(intType), "list[int]"},
		{&Class{Name: "dict", TParams: []string{"K", "V"}, Keyed: []TArg{{"V", strType}, {"K", intType}}}, "dict[V=str, K=int]"},
		{&Callable{Params: []Param{{Name: "x", Type: intType}, {Kind: VarArgs, Name: "rest", Type: strType}}, Ret: None()}, "(x: int, *rest: str) -> None"},
		{&Callable{Params: []Param{{Type: intType}}, Ret: &Never{Style: NoReturn}}, "(int) -> NoReturn"},
		{&Union{Members: []Type{intType, None()}}, "int | None"},
		{&Any{Style: Explicit}, "Any"},
		{&Never{}, "Never"},
		{&Var{ID: 3}, "@3"},
		{&SelfType{Class: "C"}, "Self@C"},
		{&TypeOf{Of: listOf(strType)}, "type[list[str]]"},
		{&Literal{Value: "'a'", Base: strType}, "Literal['a']"},
	}
	for _, test := range tests {
		if got := test.typ.String(); got != test.want {
			t.Errorf("got %s, want %s", got, test.want)
		}
	}
}

func TestTypeInfo(t *testing.T) {
	info := TypeInfo{
		Type: &Class{Name: "C"},
		Facets: []Facet{
			{Key: "x", Info: Info(&Union{Members: []Type{intType, None()}})},
			{Key: "y", Info: TypeInfo{
				Type:   &Var{ID: 0},
				Facets: []Facet{{Key: "[0]", Info: Info(&Var{ID: 1})}},
			}},
		},
	}
	if got, want := info.String(), "C (x: int | None, y: @0 ([0]: @1))"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	mapped := info.Map(func(t Type) Type {
		if _, ok := t.(*Var); ok {
			return intType
		}
		return t
	})
	if got, want := mapped.String(), "C (x: int | None, y: int ([0]: int))"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if _, ok := info.Facet("y"); !ok {
		t.Errorf("Facet(y) not found")
	}
	if _, ok := info.Facet("z"); ok {
		t.Errorf("Facet(z) found")
	}
}
