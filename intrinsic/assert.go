// Copyright © 2020 The Pea Authors under an MIT-style license.

package intrinsic

import (
	"github.com/eaburns/pycheck/canon"
	"github.com/eaburns/pycheck/diag"
	"github.com/eaburns/pycheck/loc"
	"github.com/eaburns/pycheck/syntax"
	"github.com/eaburns/pycheck/types"
)

// AssertType evaluates assert_type(value, expected_type).
//
// The value is inferred as an expression,
// and the expected type is interpreted as a type annotation.
// If the canonical forms of the two differ, an AssertType diagnostic is reported.
// An operand whose canonical form displays differently
// than the inferred type gets a note showing both.
// The result is always None.
func (x *Checker) AssertType(args []syntax.Expr, kws []syntax.Keyword, r loc.Range, sink diag.Sink) (ret types.Type) {
	defer x.tr("assert_type(%s)", argsString(args, kws))(&ret)

	if x.bindFixed("assert_type", 2, args, r, sink) {
		va := x.eng.Infer(args[0], sink)
		vb := x.eng.InferAnnotation(args[1], FunctionArgument, sink)
		a, b := x.assertForm(va), x.assertForm(vb)
		x.log("%s =? %s", a, b)
		if !types.Equal(a, b) {
			d := newDiag(r, diag.AssertType, "assert_type(%s, %s) failed", x.display(a), x.display(b))
			x.noteCanonical(d, va, a)
			x.noteCanonical(d, vb, b)
			x.reportDiag(sink, d)
		}
	}
	x.checkKeywords("assert_type", kws, r, sink)
	return types.None()
}

// assertForm returns the canonical form of t
// with every Self type replaced by the Self special form,
// so that Self of any class compares equal to typing.Self.
func (x *Checker) assertForm(t types.Type) types.Type {
	t = canon.Canonicalize(t, x.eng.Solver())
	return types.SubstSelf(t, &types.SelfForm{}, func(*types.SelfType) bool { return true })
}

// noteCanonical notes on d that t is canonically c
// if the two display differently.
func (x *Checker) noteCanonical(d *diag.Diagnostic, t, c types.Type) {
	if ts, cs := x.display(t), x.display(c); ts != cs {
		d.Note("%s is canonically %s", ts, cs)
	}
}
