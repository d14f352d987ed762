// Copyright © 2020 The Pea Authors under an MIT-style license.

package intrinsic

import (
	"github.com/eaburns/pycheck/diag"
	"github.com/eaburns/pycheck/loc"
	"github.com/eaburns/pycheck/syntax"
	"github.com/eaburns/pycheck/types"
)

// RevealType evaluates reveal_type(value),
// reporting the type of the value, with its facets,
// as a RevealType diagnostic.
// The result is always None.
func (x *Checker) RevealType(args []syntax.Expr, kws []syntax.Keyword, r loc.Range, sink diag.Sink) (ret types.Type) {
	defer x.tr("reveal_type(%s)", argsString(args, kws))(&ret)

	if x.bindFixed("reveal_type", 1, args, r, sink) {
		info := x.eng.InferTypeInfo(args[0], sink).Map(x.eng.ForDisplay)
		x.report(sink, r, diag.RevealType, "revealed type: %s", info)
	}
	x.checkKeywords("reveal_type", kws, r, sink)
	return types.None()
}
