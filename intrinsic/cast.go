// Copyright © 2020 The Pea Authors under an MIT-style license.

package intrinsic

import (
	"github.com/eaburns/pycheck/diag"
	"github.com/eaburns/pycheck/loc"
	"github.com/eaburns/pycheck/syntax"
	"github.com/eaburns/pycheck/types"
)

// Cast evaluates typing.cast(typ, val), whose signature is
// 	(typ: type[T], val: Any) -> T
//
// The result is the type denoted by typ,
// or the error type if typ is missing or does not denote a type.
// The val argument must be present, but it is never inferred:
// the result does not depend on it.
func (x *Checker) Cast(args []syntax.Expr, kws []syntax.Keyword, r loc.Range, sink diag.Sink) (ret types.Type) {
	defer x.tr("cast(%s)", argsString(args, kws))(&ret)

	b := x.bindCast(args, kws, r, sink)
	if b.typ != nil {
		t, ok := x.eng.Untype(x.eng.Infer(b.typ, sink), r)
		if ok {
			ret = t
		} else {
			ret = x.report(sink, r, diag.BadArgumentType, "First argument to `typing.cast` must be a type")
		}
	} else {
		ret = x.report(sink, r, diag.MissingArgument, "`typing.cast` missing required argument `typ`")
	}
	if b.val == nil {
		x.report(sink, r, diag.MissingArgument, "`typing.cast` missing required argument `val`")
	}
	return ret
}
