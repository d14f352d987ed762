// Copyright © 2020 The Pea Authors under an MIT-style license.

package intrinsic

import (
	"github.com/eaburns/pycheck/diag"
	"github.com/eaburns/pycheck/loc"
	"github.com/eaburns/pycheck/syntax"
)

// bindFixed reports a BadArgumentCount diagnostic
// unless there are exactly n positional arguments.
// It returns whether the arity is correct.
// Keyword arguments are not considered; see checkKeywords.
func (x *Checker) bindFixed(fun string, n int, args []syntax.Expr, r loc.Range, sink diag.Sink) bool {
	if len(args) == n {
		return true
	}
	s := "s"
	if n == 1 {
		s = ""
	}
	x.report(sink, r, diag.BadArgumentCount, "%s needs %d positional argument%s, got %d", fun, n, s, len(args))
	return false
}

// checkKeywords reports an UnexpectedKeyword diagnostic for each keyword.
func (x *Checker) checkKeywords(fun string, kws []syntax.Keyword, r loc.Range, sink diag.Sink) {
	for _, kw := range kws {
		if kw.Name == "" {
			x.report(sink, r, diag.UnexpectedKeyword, "`%s` got an unexpected keyword argument", fun)
			continue
		}
		x.report(sink, r, diag.UnexpectedKeyword, "`%s` got an unexpected keyword argument `%s`", fun, kw.Name)
	}
}

// castArgs are the bound arguments of a call to typing.cast.
type castArgs struct {
	typ, val syntax.Expr
	// extra counts positional arguments after the first two
	// and keywords other than typ and val.
	extra int
}

// bindCast binds the arguments of typing.cast(typ, val).
// A parameter bound more than once is reported,
// and the later argument replaces the earlier one.
// Any excess arguments are reported by a single BadArgumentCount.
func (x *Checker) bindCast(args []syntax.Expr, kws []syntax.Keyword, r loc.Range, sink diag.Sink) castArgs {
	var b castArgs
	switch {
	case len(args) >= 2:
		b.typ, b.val = args[0], args[1]
		b.extra = len(args) - 2
	case len(args) == 1:
		b.typ = args[0]
	}
	for _, kw := range kws {
		var p *syntax.Expr
		switch kw.Name {
		case "typ":
			p = &b.typ
		case "val":
			p = &b.val
		default:
			b.extra++
			continue
		}
		if *p != nil {
			x.report(sink, r, diag.InvalidArgument, "`typing.cast` got multiple values for argument `%s`", kw.Name)
		}
		*p = kw.Value
	}
	if b.extra > 0 {
		x.report(sink, r, diag.BadArgumentCount, "`typing.cast` expected 2 arguments, got %d", b.extra+2)
	}
	return b
}
