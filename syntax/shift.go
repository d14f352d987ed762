// Copyright © 2020 The Pea Authors under an MIT-style license.

package syntax

import (
	"fmt"

	"github.com/eaburns/pycheck/loc"
)

// Shift returns a copy of e with every range moved by d bytes.
// It is used for expressions parsed from within a string literal.
func Shift(e Expr, d int) Expr {
	mv := func(r loc.Range) loc.Range { return loc.Range{r[0] + d, r[1] + d} }
	switch e := e.(type) {
	case *Name:
		return &Name{Range: mv(e.Range), Text: e.Text}
	case *Int:
		return &Int{Range: mv(e.Range), Text: e.Text}
	case *Str:
		return &Str{Range: mv(e.Range), Text: e.Text, Data: e.Data}
	case *Placeholder:
		return &Placeholder{Range: mv(e.Range), Name: e.Name}
	case *Attr:
		return &Attr{Range: mv(e.Range), X: Shift(e.X, d), Name: e.Name}
	case *Subscript:
		return &Subscript{Range: mv(e.Range), X: Shift(e.X, d), Index: shiftAll(e.Index, d)}
	case *List:
		return &List{Range: mv(e.Range), Elems: shiftAll(e.Elems, d)}
	case *Or:
		return &Or{Range: mv(e.Range), L: Shift(e.L, d), R: Shift(e.R, d)}
	case *Call:
		c := &Call{Range: mv(e.Range), Fun: Shift(e.Fun, d), Args: shiftAll(e.Args, d)}
		for _, k := range e.Keywords {
			c.Keywords = append(c.Keywords, Keyword{Range: mv(k.Range), Name: k.Name, Value: Shift(k.Value, d)})
		}
		return c
	default:
		panic(fmt.Sprintf("impossible expr %T", e))
	}
}

func shiftAll(es []Expr, d int) []Expr {
	var out []Expr
	for _, e := range es {
		out = append(out, Shift(e, d))
	}
	return out
}
