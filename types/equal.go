// Copyright © 2020 The Pea Authors under an MIT-style license.

package types

import "fmt"

// Equal returns whether a and b are structurally equal.
//
// Equal does not canonicalize;
// types that differ only in representation are not Equal.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case *Class:
		b, ok := b.(*Class)
		return ok && classEqual(a, b)
	case *Callable:
		b, ok := b.(*Callable)
		if !ok || a.Name != b.Name || a.Flags != b.Flags || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			pa, pb := &a.Params[i], &b.Params[i]
			if pa.Name != pb.Name || pa.Kind != pb.Kind || !Equal(pa.Type, pb.Type) {
				return false
			}
		}
		return Equal(a.Ret, b.Ret)
	case *Union:
		b, ok := b.(*Union)
		return ok && equalList(a.Members, b.Members)
	case *Never:
		b, ok := b.(*Never)
		return ok && a.Style == b.Style
	case *Any:
		b, ok := b.(*Any)
		return ok && a.Style == b.Style
	case *Var:
		b, ok := b.(*Var)
		return ok && a.ID == b.ID
	case *SelfType:
		b, ok := b.(*SelfType)
		return ok && a.Class == b.Class
	case *SelfForm:
		_, ok := b.(*SelfForm)
		return ok
	case *NoneType:
		_, ok := b.(*NoneType)
		return ok
	case *TypeOf:
		b, ok := b.(*TypeOf)
		return ok && Equal(a.Of, b.Of)
	case *Literal:
		b, ok := b.(*Literal)
		return ok && a.Value == b.Value && classEqual(a.Base, b.Base)
	default:
		panic(fmt.Sprintf("impossible type %T", a))
	}
}

func classEqual(a, b *Class) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || !equalList(a.Args, b.Args) || len(a.Keyed) != len(b.Keyed) {
		return false
	}
	for i := range a.Keyed {
		if a.Keyed[i].Param != b.Keyed[i].Param || !Equal(a.Keyed[i].Type, b.Keyed[i].Type) {
			return false
		}
	}
	return true
}

func equalList(as, bs []Type) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}
