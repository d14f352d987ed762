// Copyright © 2020 The Pea Authors under an MIT-style license.

package syntax

import (
	"strings"
	"testing"

	"github.com/eaburns/peggy/peg"
	"github.com/eaburns/pycheck/loc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExprString(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x", "x"},
		{"  x  ", "x"},
		{"list[int]", "list[int]"},
		{"dict[str, list[int]]", "dict[str, list[int]]"},
		{"int | None", "int | None"},
		{"int | str | None", "int | str | None"},
		{"Callable[[int, str], bool]", "Callable[[int, str], bool]"},
		{"Callable[[], None]", "Callable[[], None]"},
		{"typing.cast", "typing.cast"},
		{"x.y.z", "x.y.z"},
		{"?a", "?a"},
		{"list[?a]", "list[?a]"},
		{"'abc'", "'abc'"},
		{`"abc"`, `"abc"`},
		{"42", "42"},
		{"(int)", "int"},
		{"f()", "f()"},
		{"f(x, y)", "f(x, y)"},
		{"cast(typ=int, val=1)", "cast(typ=int, val=1)"},
		{"f(x, **kw)", "f(x, **kw)"},
		{"f(x,)", "f(x)"},
		{"f(\n\tx,\n\ty,\n)", "f(x, y)"},
		{"f(x)(y)", "f(x)(y)"},
		{"Literal['a', 1]", "Literal['a', 1]"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.src, func(t *testing.T) {
			e, err := ParseExpr(test.src)
			require.NoError(t, err)
			assert.Equal(t, test.want, e.String())
		})
	}
}

func TestParseCall(t *testing.T) {
	e, err := ParseExpr("typing.cast(int, x, typ=str, **kw)")
	require.NoError(t, err)
	call, ok := e.(*Call)
	require.True(t, ok, "got %T, want *Call", e)

	assert.Equal(t, "typing.cast", call.FunName())
	assert.Equal(t, loc.Range{0, 34}, call.Range)
	require.Len(t, call.Args, 2)
	assert.Equal(t, loc.Range{12, 15}, call.Args[0].GetRange())
	assert.Equal(t, loc.Range{17, 18}, call.Args[1].GetRange())
	require.Len(t, call.Keywords, 2)
	assert.Equal(t, "typ", call.Keywords[0].Name)
	assert.Equal(t, loc.Range{20, 27}, call.Keywords[0].Range)
	assert.Equal(t, "", call.Keywords[1].Name)
	assert.Equal(t, "kw", call.Keywords[1].Value.String())
}

func TestParseRanges(t *testing.T) {
	e, err := ParseExpr("a.b[c] | d")
	require.NoError(t, err)
	or, ok := e.(*Or)
	require.True(t, ok)
	assert.Equal(t, loc.Range{0, 10}, or.Range)
	assert.Equal(t, loc.Range{0, 6}, or.L.GetRange())
	assert.Equal(t, loc.Range{9, 10}, or.R.GetRange())
}

func TestParseStr(t *testing.T) {
	e, err := ParseExpr(`'a\'b\n'`)
	require.NoError(t, err)
	s, ok := e.(*Str)
	require.True(t, ok)
	assert.Equal(t, "a'b\n", s.Data)
}

func TestParseFile(t *testing.T) {
	src := `
		# comments are ignored
		reveal_type(x)
		assert_type(x, int); cast(
			str,
			x,
		)
	`
	f, err := Parse("test.py", strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, f.Stmts, 3)
	assert.Equal(t, "reveal_type(x)", f.Stmts[0].String())
	assert.Equal(t, "assert_type(x, int)", f.Stmts[1].String())
	assert.Equal(t, "cast(str, x)", f.Stmts[2].String())
	assert.Equal(t, "cast(\n\t\t\tstr,\n\t\t\tx,\n\t\t)", f.Stmts[2].GetRange().Text(src))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		pos        int
		incomplete bool
	}{
		{name: "missing close paren", src: "f(x", pos: 3, incomplete: true},
		{name: "missing close bracket", src: "list[int", pos: 8, incomplete: true},
		{name: "empty subscript", src: "list[]", pos: 5},
		{name: "positional after keyword", src: "f(a=1, b)", pos: 7},
		{name: "bad token", src: "f(@)", pos: 2},
		{name: "two exprs", src: "x y", pos: 2},
		{name: "dangling dot", src: "x.", pos: 2},
		{name: "dangling or", src: "int |", pos: 5},
		{name: "unterminated string", src: "'abc", pos: 0},
		{name: "dangling or in call", src: "f(x |", pos: 5, incomplete: true},
		{name: "nested open list", src: "[1, [2", pos: 6, incomplete: true},
		{name: "open second argument", src: "f(x, y", pos: 6, incomplete: true},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseExpr(test.src)
			require.Error(t, err)
			assert.NotEmpty(t, err.Error())
			assert.Equal(t, test.incomplete, IsIncomplete(err))

			pe, ok := err.(*parseError)
			require.True(t, ok, "got %T, want *parseError", err)
			leaves := peg.LeafFails(pe.Tree())
			require.NotEmpty(t, leaves)
			assert.Equal(t, test.pos, leaves[0].Pos)
		})
	}
}

func TestParseErrorWant(t *testing.T) {
	_, err := ParseExpr("f(a=1, b)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keyword argument")

	_, err = ParseExpr("f(x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"," or ")"`)
}

func TestParseKeywordSplatFirst(t *testing.T) {
	e, err := ParseExpr("f(**kw, a=1)")
	require.NoError(t, err)
	call := e.(*Call)
	assert.Empty(t, call.Args)
	require.Len(t, call.Keywords, 2)
	assert.Equal(t, "", call.Keywords[0].Name)
	assert.Equal(t, "a", call.Keywords[1].Name)
}

func TestParseFileError(t *testing.T) {
	_, err := ParseString("bad.py", "reveal_type(x)\nreveal_type(x y)\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.py")
	assert.False(t, IsIncomplete(err))

	pe, ok := err.(*parseError)
	require.True(t, ok, "got %T, want *parseError", err)
	assert.Equal(t, 29, peg.LeafFails(pe.Tree())[0].Pos)
}

func TestShift(t *testing.T) {
	e, err := ParseExpr("f(a[b], k=c | d)")
	require.NoError(t, err)
	s := Shift(e, 10)
	assert.Equal(t, e.String(), s.String())
	assert.Equal(t, loc.Range{10, 26}, s.GetRange())
	call := s.(*Call)
	assert.Equal(t, loc.Range{14, 15}, call.Args[0].(*Subscript).Index[0].GetRange())
	assert.Equal(t, loc.Range{18, 25}, call.Keywords[0].Range)
	assert.Equal(t, loc.Range{0, 16}, e.GetRange(), "Shift modified its input")
}
