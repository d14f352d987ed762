// Copyright © 2020 The Pea Authors under an MIT-style license.

package intrinsic

import (
	"github.com/eaburns/pycheck/diag"
	"github.com/eaburns/pycheck/loc"
	"github.com/eaburns/pycheck/syntax"
	"github.com/eaburns/pycheck/types"
)

// A Handler evaluates a call to one intrinsic.
type Handler func(x *Checker, args []syntax.Expr, kws []syntax.Keyword, r loc.Range, sink diag.Sink) types.Type

// handlers are keyed by the qualified names of the intrinsics.
var handlers = map[string]Handler{
	"assert_type":                   (*Checker).AssertType,
	"typing.assert_type":            (*Checker).AssertType,
	"typing_extensions.assert_type": (*Checker).AssertType,
	"reveal_type":                   (*Checker).RevealType,
	"typing.reveal_type":            (*Checker).RevealType,
	"typing_extensions.reveal_type": (*Checker).RevealType,
	"cast":                          (*Checker).Cast,
	"typing.cast":                   (*Checker).Cast,
}

// Lookup returns the Handler of the intrinsic with the given qualified name.
func Lookup(name string) (Handler, bool) {
	h, ok := handlers[name]
	return h, ok
}

// Call evaluates call if its function is the name of an intrinsic.
// It returns false, and reports nothing, otherwise.
//
// Call assumes that the name refers to the intrinsic,
// and not to a user definition that shadows it.
func (x *Checker) Call(call *syntax.Call, sink diag.Sink) (types.Type, bool) {
	h, ok := Lookup(call.FunName())
	if !ok {
		return nil, false
	}
	return h(x, call.Args, call.Keywords, call.Range, sink), true
}
