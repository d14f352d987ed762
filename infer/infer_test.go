// Copyright © 2020 The Pea Authors under an MIT-style license.

package infer

import (
	"strings"
	"testing"

	"github.com/eaburns/pretty"
	"github.com/eaburns/pycheck/diag"
	"github.com/eaburns/pycheck/intrinsic"
	"github.com/eaburns/pycheck/loc"
	"github.com/eaburns/pycheck/syntax"
	"github.com/eaburns/pycheck/types"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const testEnv = `
self: C
classes:
  - name: Box
    params: [T]
  - name: C
aliases:
  IntList: list[int]
  MaybeStr: str | None
functions:
  f:
    params:
      - {name: x, type: int, kind: posonly}
    returns: str
    flags: [final]
  exit:
    returns: NoReturn
vars:
  i: int
  xs: list[int]
  ys: list[?a]
  zs: list[?b]
  u: "?u"
  self: Self
  d: dict[str, int]
  obj:
    type: C
    facets:
      attr: int | None
      items:
        type: list[int | None]
        facets:
          "[0]": int
solutions:
  a: int
  b: "?c"
`

func loadTestEnv(t *testing.T) *Env {
	t.Helper()
	env, err := LoadEnv(strings.NewReader(testEnv))
	if err != nil {
		t.Fatalf("failed to load env: %s", err)
	}
	return env
}

type exprTest struct {
	src   string
	want  string
	diags []diag.Diagnostic
}

func runExprTests(t *testing.T, tests []exprTest, f func(*Engine, syntax.Expr, diag.Sink) types.Type) {
	t.Helper()
	for _, test := range tests {
		test := test
		t.Run(test.src, func(t *testing.T) {
			x, err := syntax.ParseExpr(test.src)
			if err != nil {
				t.Fatalf("failed to parse %s: %s", test.src, err)
			}
			eng := New(loadTestEnv(t))
			var sink diag.Collector
			got := f(eng, x, &sink)
			if got == nil {
				t.Fatalf("%s: got nil type", test.src)
			}
			if s := eng.ForDisplay(got).String(); s != test.want {
				t.Errorf("%s=%s, want %s\n%s", test.src, s, test.want, pretty.String(got))
			}
			opts := []cmp.Option{cmpopts.EquateEmpty(), cmpopts.IgnoreFields(diag.Diagnostic{}, "Range")}
			if diff := cmp.Diff(test.diags, sink.Diags, opts...); diff != "" {
				t.Errorf("%s diagnostics mismatch (-want +got):\n%s", test.src, diff)
			}
		})
	}
}

func d(k diag.Kind, msg string) diag.Diagnostic { return diag.Diagnostic{Kind: k, Msg: msg} }

func TestAnnotation(t *testing.T) {
	tests := []exprTest{
		{src: "int", want: "int"},
		{src: "Box", want: "Box[Any]"},
		{src: "Box[int]", want: "Box[int]"},
		{src: "dict[str, list[int]]", want: "dict[str, list[int]]"},
		{src: "Optional[int]", want: "int | None"},
		{src: "Union[int, str, int]", want: "int | str"},
		{src: "int | str | None", want: "int | str | None"},
		{src: "Literal[1, 'a', True, None]", want: "Literal[1] | Literal['a'] | Literal[True] | None"},
		{src: "Callable[[int, str], None]", want: "(int, str) -> None"},
		{src: "type[int]", want: "type[int]"},
		{src: "'list[int]'", want: "list[int]"},
		{src: "typing.Any", want: "Any"},
		{src: "typing_extensions.Never", want: "Never"},
		{src: "NoReturn", want: "NoReturn"},
		{src: "Self", want: "Self@C"},
		{src: "IntList", want: "list[int]"},
		{src: "?a", want: "int"},
		{
			src:   "i",
			want:  "Any",
			diags: []diag.Diagnostic{d(diag.InvalidAnnotation, "Expected a type form, got instance of `int`")},
		},
		{
			src:   "1",
			want:  "Any",
			diags: []diag.Diagnostic{d(diag.InvalidAnnotation, "Expected a type form, got instance of `Literal[1]`")},
		},
		{
			src:   "nope",
			want:  "Any",
			diags: []diag.Diagnostic{d(diag.UnknownName, "Could not find name `nope`")},
		},
		{
			src:   "int[str]",
			want:  "Any",
			diags: []diag.Diagnostic{d(diag.InvalidAnnotation, "Expected 0 type argument(s) for `int`, got 1")},
		},
		{
			src:   "Callable[int, str]",
			want:  "Any",
			diags: []diag.Diagnostic{d(diag.InvalidAnnotation, "`Callable` parameters must be a list of types")},
		},
		{
			src:   "'list['",
			want:  "Any",
			diags: []diag.Diagnostic{d(diag.InvalidAnnotation, "Could not parse type string: list[")},
		},
		{
			src:   "Literal[i]",
			want:  "Any",
			diags: []diag.Diagnostic{d(diag.InvalidAnnotation, "Invalid literal value `i`")},
		},
		{
			src:   "IntList[int]",
			want:  "Any",
			diags: []diag.Diagnostic{d(diag.InvalidAnnotation, "Type alias `IntList` is not generic")},
		},
		{
			src:   "Union",
			want:  "Any",
			diags: []diag.Diagnostic{d(diag.InvalidAnnotation, "`Union` requires type arguments")},
		},
	}
	runExprTests(t, tests, func(e *Engine, x syntax.Expr, sink diag.Sink) types.Type {
		return e.InferAnnotation(x, intrinsic.FunctionArgument, sink)
	})
}

func TestInfer(t *testing.T) {
	tests := []exprTest{
		{src: "i", want: "int"},
		{src: "1", want: "Literal[1]"},
		{src: "'a'", want: "Literal['a']"},
		{src: `"it's"`, want: `Literal['it\'s']`},
		{src: "None", want: "None"},
		{src: "True", want: "Literal[True]"},
		{src: "int", want: "type[int]"},
		{src: "list[int]", want: "type[list[int]]"},
		{src: "int | None", want: "type[int | None]"},
		{src: "typing.Any", want: "type[Any]"},
		{src: "IntList", want: "type[list[int]]"},
		{src: "f", want: "(x: int) -> str"},
		{src: "f(1)", want: "str"},
		{src: "exit()", want: "NoReturn"},
		{src: "Box()", want: "Box[Any]"},
		{src: "xs[0]", want: "int"},
		{src: "ys[0]", want: "int"},
		{src: "d['k']", want: "int"},
		{src: "obj.attr", want: "int | None"},
		{src: "obj.items[0]", want: "int"},
		{src: "obj.items[1]", want: "int | None"},
		{src: "obj.other", want: "Any"},
		{src: "[1, 2]", want: "list[int]"},
		{src: "[1, 'a', 2]", want: "list[int | str]"},
		{src: "self", want: "Self@C"},
		{
			src:   "nope",
			want:  "Any",
			diags: []diag.Diagnostic{d(diag.UnknownName, "Could not find name `nope`")},
		},
		{
			src:   "f(nope)",
			want:  "str",
			diags: []diag.Diagnostic{d(diag.UnknownName, "Could not find name `nope`")},
		},
	}
	runExprTests(t, tests, (*Engine).Infer)
}

func TestInferTypeInfo(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"i", "int"},
		{"obj", "C (attr: int | None, items: list[int | None] ([0]: int))"},
		{"obj.items", "list[int | None] ([0]: int)"},
		{"obj.items[0]", "int"},
		{"ys", "list[@1]"},
	}
	for _, test := range tests {
		x, err := syntax.ParseExpr(test.src)
		if err != nil {
			t.Fatal(err)
		}
		var sink diag.Collector
		if got := New(loadTestEnv(t)).InferTypeInfo(x, &sink).String(); got != test.want {
			t.Errorf("InferTypeInfo(%s)=%s, want %s", test.src, got, test.want)
		}
	}
}

func TestUntype(t *testing.T) {
	env := loadTestEnv(t)
	eng := New(env)
	typeOfInt := env.Solver().Fresh()
	if err := env.Solver().Solve(typeOfInt, &types.TypeOf{Of: &types.Class{Name: "int"}}); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		in   types.Type
		want string
		ok   bool
	}{
		{in: &types.TypeOf{Of: &types.Class{Name: "int"}}, want: "int", ok: true},
		{in: &types.Any{Style: types.AnyError}, want: "Any", ok: true},
		{in: types.None(), want: "None", ok: true},
		{in: typeOfInt, want: "int", ok: true},
		{in: env.Placeholder("u"), ok: false},
		{in: &types.Class{Name: "int"}, ok: false},
		{in: &types.Literal{Value: "1", Base: &types.Class{Name: "int"}}, ok: false},
	}
	for _, test := range tests {
		got, ok := eng.Untype(test.in, loc.Range{})
		if ok != test.ok {
			t.Errorf("Untype(%s) ok=%v, want %v", test.in, ok, test.ok)
			continue
		}
		if ok && got.String() != test.want {
			t.Errorf("Untype(%s)=%s, want %s", test.in, got, test.want)
		}
	}
}

func TestLoadEnv(t *testing.T) {
	env := loadTestEnv(t)
	if env.Self != "C" {
		t.Errorf("Self=%q, want C", env.Self)
	}
	f := env.funcs["f"]
	if f == nil {
		t.Fatalf("function f not loaded")
	}
	want := &types.Callable{
		Name:   "f",
		Params: []types.Param{{Name: "x", Kind: types.PosOnly, Type: &types.Class{Name: "int"}}},
		Ret:    &types.Class{Name: "str"},
		Flags:  types.Final,
	}
	if diff := cmp.Diff(want, f, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("function f mismatch (-want +got):\n%s", diff)
	}
	var keys []string
	for _, fct := range env.vars["obj"].Facets {
		keys = append(keys, fct.Key)
	}
	if diff := cmp.Diff([]string{"attr", "items"}, keys); diff != "" {
		t.Errorf("facet order mismatch (-want +got):\n%s", diff)
	}
	zs := env.Solver().ResolveFully(env.Placeholder("b"))
	if !types.Equal(zs, env.Solver().ResolveFully(env.Placeholder("c"))) {
		t.Errorf("?b and ?c are not linked")
	}
}

func TestLoadEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  string
	}{
		{name: "bad var type", src: "vars: {x: 'list['}", err: "var x"},
		{name: "unknown var type", src: "vars: {x: Nope}", err: "Could not find name `Nope`"},
		{name: "bad param kind", src: "functions: {f: {params: [{name: x, type: int, kind: weird}]}}", err: "unknown parameter kind weird"},
		{name: "bad flag", src: "functions: {f: {flags: [fast]}}", err: "unknown flag fast"},
		{name: "unnamed class", src: "classes: [{params: [T]}]", err: "class with no name"},
		{name: "bad solution", src: "solutions: {a: Nope}", err: "solution a: Could not find name `Nope`"},
		{name: "solutions not a mapping", src: "solutions: [int]", err: "solutions must be a mapping"},
		{name: "unknown facet field", src: "vars: {x: {type: int, narrow: str}}", err: "unknown field narrow"},
		{name: "bad yaml", src: "vars: [", err: "yaml"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadEnv(strings.NewReader(test.src))
			switch {
			case test.err == "" && err != nil:
				t.Errorf("got error %s, want nil", err)
			case test.err != "" && err == nil:
				t.Errorf("got nil error, want %q", test.err)
			case test.err != "" && !strings.Contains(err.Error(), test.err):
				t.Errorf("got error %s, want it to contain %q", err, test.err)
			}
		})
	}
}

func TestEmptyEnv(t *testing.T) {
	env, err := LoadEnv(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	x, err := syntax.ParseExpr("Self")
	if err != nil {
		t.Fatal(err)
	}
	var sink diag.Collector
	got := New(env).InferAnnotation(x, intrinsic.FunctionArgument, &sink)
	if !types.IsError(got) {
		t.Errorf("Self outside a class=%s, want the error type", got)
	}
	want := []diag.Diagnostic{{Kind: diag.InvalidAnnotation, Msg: "`Self` must appear within a class", Range: loc.Range{0, 4}}}
	if diff := cmp.Diff(want, sink.Diags, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestInferAnnotationContext(t *testing.T) {
	env, err := LoadEnv(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	x, err := syntax.ParseExpr("int")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("InferAnnotation with an unknown context did not panic")
		}
	}()
	var sink diag.Collector
	New(env).InferAnnotation(x, intrinsic.FunctionArgument+1, &sink)
}

func TestEngineSolver(t *testing.T) {
	env := NewEnv()
	if got := New(env).Solver(); got != env.Solver() {
		t.Errorf("Engine solver %p is not the Env solver %p", got, env.Solver())
	}
}
