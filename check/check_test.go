// Copyright © 2020 The Pea Authors under an MIT-style license.

package check

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eaburns/pycheck/diag"
	"github.com/eaburns/pycheck/infer"
	"github.com/eaburns/pycheck/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEnv = `
self: C
classes:
  - name: Box
    params: [T]
  - name: C
aliases:
  IntList: list[int]
functions:
  f:
    params:
      - {name: x, type: int, kind: posonly}
    returns: str
  exit:
    returns: NoReturn
vars:
  i: int
  ys: list[?a]
  u: "?u"
  self: Self
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
`

type want struct {
	kind diag.Kind
	msg  string
}

func newChecker(t *testing.T, cfg Config) *Checker {
	t.Helper()
	env, err := infer.LoadEnv(strings.NewReader(testEnv))
	require.NoError(t, err)
	return New(env, cfg)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		src       string
		typ       string
		intrinsic bool
		diags     []want
	}{
		{src: "assert_type(i, int)", typ: "None", intrinsic: true},
		{src: "assert_type(obj.other, Any)", typ: "None", intrinsic: true},
		{src: "assert_type(exit(), Never)", typ: "None", intrinsic: true},
		{src: "assert_type(f, Callable[[int], str])", typ: "None", intrinsic: true},
		{src: "assert_type(Box(), Box[Any])", typ: "None", intrinsic: true},
		{src: "assert_type(ys, list[int])", typ: "None", intrinsic: true},
		{src: "assert_type(self, Self)", typ: "None", intrinsic: true},
		{src: "assert_type(cast(str, i), str)", typ: "None", intrinsic: true},
		{src: "typing.assert_type(obj.items[0], int)", typ: "None", intrinsic: true},
		{
			src:       "assert_type(i, str)",
			typ:       "None",
			intrinsic: true,
			diags:     []want{{diag.AssertType, "assert_type(int, str) failed"}},
		},
		{
			src:       "assert_type(f, Callable[[str], str])",
			typ:       "None",
			intrinsic: true,
			diags:     []want{{diag.AssertType, "assert_type((int) -> str, (str) -> str) failed"}},
		},
		{
			src:       "assert_type(u, int)",
			typ:       "None",
			intrinsic: true,
			diags:     []want{{diag.AssertType, "assert_type(@0, int) failed"}},
		},
		{
			src:       "assert_type(1)",
			typ:       "None",
			intrinsic: true,
			diags:     []want{{diag.BadArgumentCount, "assert_type needs 2 positional arguments, got 1"}},
		},
		{
			src:       "assert_type(i, str, k=1)",
			typ:       "None",
			intrinsic: true,
			diags: []want{
				{diag.AssertType, "assert_type(int, str) failed"},
				{diag.UnexpectedKeyword, "`assert_type` got an unexpected keyword argument `k`"},
			},
		},
		{
			src:       "reveal_type(i)",
			typ:       "None",
			intrinsic: true,
			diags:     []want{{diag.RevealType, "revealed type: int"}},
		},
		{
			src:       "reveal_type(ys)",
			typ:       "None",
			intrinsic: true,
			diags:     []want{{diag.RevealType, "revealed type: list[int]"}},
		},
		{
			src:       "typing_extensions.reveal_type(obj)",
			typ:       "None",
			intrinsic: true,
			diags:     []want{{diag.RevealType, "revealed type: C (attr: int | None, items: list[int | None] ([0]: int))"}},
		},
		{
			src:       "reveal_type(i, extra=1)",
			typ:       "None",
			intrinsic: true,
			diags: []want{
				{diag.RevealType, "revealed type: int"},
				{diag.UnexpectedKeyword, "`reveal_type` got an unexpected keyword argument `extra`"},
			},
		},
		{
			src:       "reveal_type(nope)",
			typ:       "None",
			intrinsic: true,
			diags: []want{
				{diag.UnknownName, "Could not find name `nope`"},
				{diag.RevealType, "revealed type: Any"},
			},
		},
		{
			src:       "reveal_type(cast(int, nope))",
			typ:       "None",
			intrinsic: true,
			diags:     []want{{diag.RevealType, "revealed type: int"}},
		},
		{src: "cast(int, nope)", typ: "int", intrinsic: true},
		{src: "cast(IntList, 1)", typ: "list[int]", intrinsic: true},
		{src: "cast(int | None, 1)", typ: "int | None", intrinsic: true},
		{src: "typing.cast(str, 1)", typ: "str", intrinsic: true},
		{
			src:       "cast()",
			typ:       "Any",
			intrinsic: true,
			diags: []want{
				{diag.MissingArgument, "`typing.cast` missing required argument `typ`"},
				{diag.MissingArgument, "`typing.cast` missing required argument `val`"},
			},
		},
		{
			src:       "cast(typ=int, typ=str, val=1)",
			typ:       "str",
			intrinsic: true,
			diags:     []want{{diag.InvalidArgument, "`typing.cast` got multiple values for argument `typ`"}},
		},
		{
			src:       "cast(int, 1, 2)",
			typ:       "int",
			intrinsic: true,
			diags:     []want{{diag.BadArgumentCount, "`typing.cast` expected 2 arguments, got 3"}},
		},
		{
			src:       "cast(int, val=1, extra=2)",
			typ:       "int",
			intrinsic: true,
			diags:     []want{{diag.BadArgumentCount, "`typing.cast` expected 2 arguments, got 3"}},
		},
		{
			src:       "cast(i, 1)",
			typ:       "Any",
			intrinsic: true,
			diags:     []want{{diag.BadArgumentType, "First argument to `typing.cast` must be a type"}},
		},
		{src: "f(1)", typ: "str"},
		{src: "i", typ: "int"},
		{
			src:   "f(nope)",
			typ:   "str",
			diags: []want{{diag.UnknownName, "Could not find name `nope`"}},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.src, func(t *testing.T) {
			c := newChecker(t, Config{})
			run, err := c.Source("test.py", test.src)
			require.NoError(t, err)
			require.Len(t, run.Results, 1)

			res := run.Results[0]
			assert.Equal(t, test.typ, c.Engine().ForDisplay(res.Type).String())
			assert.Equal(t, test.intrinsic, res.Intrinsic)

			var got []want
			for _, d := range run.Diags.Diags {
				got = append(got, want{d.Kind, d.Msg})
			}
			assert.Equal(t, test.diags, got)
		})
	}
}

func TestCastErrorResult(t *testing.T) {
	c := newChecker(t, Config{})
	run, err := c.Source("test.py", "cast()\ncast(i, 1)")
	require.NoError(t, err)
	for _, res := range run.Results {
		assert.True(t, types.IsError(res.Type), "%s: %s is not the error type", res.Stmt, res.Type)
	}
}

func TestSelfFromAnyClass(t *testing.T) {
	env, err := infer.LoadEnv(strings.NewReader("self: Derived"))
	require.NoError(t, err)
	env.AddVar("base", types.Info(&types.SelfType{Class: "Base"}))
	c := New(env, Config{})
	run, err := c.Source("test.py", "assert_type(base, Self)\nassert_type(base, Derived)")
	require.NoError(t, err)
	require.Len(t, run.Diags.Diags, 1)
	assert.Equal(t, "assert_type(Self, Derived) failed", run.Diags.Diags[0].Msg)
}

func TestErrors(t *testing.T) {
	c := newChecker(t, Config{})
	run, err := c.Source("test.py", "reveal_type(i)\nassert_type(i, str)\ncast()\n")
	require.NoError(t, err)
	require.Len(t, run.Results, 3)

	var got []string
	for _, err := range run.Errors() {
		got = append(got, err.Error())
	}
	assert.Equal(t, []string{
		"test.py:2.1-2.20: error: assert_type(int, str) failed [assert-type]",
		"test.py:3.1-3.7: error: `typing.cast` missing required argument `typ` [missing-argument]",
		"test.py:3.1-3.7: error: `typing.cast` missing required argument `val` [missing-argument]",
	}, got)

	reveal := run.Diags.Diags[0]
	assert.Equal(t, "test.py:1.1-1.15: info: revealed type: int [reveal-type]", diag.Format(reveal, run.Loc(reveal.Range)))
}

func TestAssertTypeNotes(t *testing.T) {
	c := newChecker(t, Config{})
	run, err := c.Source("test.py", "assert_type(f, Callable[[str], str])")
	require.NoError(t, err)
	require.Len(t, run.Diags.Diags, 1)
	assert.Equal(t, []string{"(x: int) -> str is canonically (int) -> str"}, run.Diags.Diags[0].Notes)

	errs := run.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "test.py:1.1-1.37: error: assert_type((int) -> str, (str) -> str) failed [assert-type]\n"+
		"\t(x: int) -> str is canonically (int) -> str", errs[0].Error())
}

func TestStatementsShareSolver(t *testing.T) {
	c := newChecker(t, Config{})
	run, err := c.Source("test.py", "reveal_type([])\nreveal_type([])")
	require.NoError(t, err)
	require.Len(t, run.Diags.Diags, 2)
	assert.NotEqual(t, run.Diags.Diags[0].Msg, run.Diags.Diags[1].Msg)
}

func TestSourceSyntaxError(t *testing.T) {
	c := newChecker(t, Config{})
	_, err := c.Source("bad.py", "assert_type(i,")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.py")
}

func TestTrace(t *testing.T) {
	var out bytes.Buffer
	c := newChecker(t, Config{Trace: true, TraceOut: &out})
	_, err := c.Source("test.py", "assert_type(cast(str, i), str)")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "assert_type(")
	assert.Contains(t, out.String(), "cast(")
}
