// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package types defines the type values that flow
// through intrinsic call evaluation.
//
// Type values are immutable once built.
// Rewrites, such as substitution or canonicalization,
// return a new tree that may share unchanged subtrees with the old one.
package types

// A Type is a type value.
//
// It is one of:
// 	*Class
// 	*Callable
// 	*Union
// 	*Never
// 	*Any
// 	*Var
// 	*SelfType
// 	*SelfForm
// 	*NoneType
// 	*TypeOf
// 	*Literal
type Type interface {
	// String returns the source-syntax rendering of the type.
	String() string

	isType()
}

// A Class is an instantiation of a, possibly generic, class.
//
// Type arguments have two representations:
// positional Args, in the order of TParams,
// or Keyed args, naming the parameter that each binds, in any order.
// Either may be partial or empty.
// The canonical form uses only Args, with one arg per TParam.
type Class struct {
	Name    string
	TParams []string
	Args    []Type
	Keyed   []TArg
}

// A TArg is a type argument bound to a named type parameter.
type TArg struct {
	Param string
	Type  Type
}

// ParamKind is the kind of a callable parameter.
type ParamKind int

const (
	// PosOnly is a positional-only parameter.
	PosOnly ParamKind = iota
	// PosOrKw is a parameter passable either by position or by keyword.
	PosOrKw
	// KwOnly is a keyword-only parameter.
	KwOnly
	// VarArgs is a *args parameter.
	VarArgs
	// KwArgs is a **kwargs parameter.
	KwArgs
)

// A Param is a callable parameter.
type Param struct {
	// Name is the parameter name, or "" if anonymous.
	Name string
	Kind ParamKind
	Type Type
}

// Flags are cosmetic metadata of a Callable.
type Flags uint

const (
	// Overload marks a callable defined by an @overload.
	Overload Flags = 1 << iota
	// Deprecated marks a callable defined with @deprecated.
	Deprecated
	// Final marks a callable defined with @final.
	Final
)

// A Callable is the shape of a function.
type Callable struct {
	// Name is the name of the defining function,
	// or "" for an anonymous callable.
	Name   string
	Params []Param
	Ret    Type
	Flags  Flags
}

// A Union is a union of its members.
type Union struct {
	Members []Type
}

// NeverStyle distinguishes the spellings of the bottom type.
type NeverStyle int

const (
	// NeverBottom is typing.Never.
	NeverBottom NeverStyle = iota
	// NoReturn is typing.NoReturn,
	// the return type of a function that never returns.
	NoReturn
)

// Never is the bottom type.
type Never struct {
	Style NeverStyle
}

// AnyStyle records how an Any came about.
type AnyStyle int

const (
	// Implicit is an Any that was inferred.
	Implicit AnyStyle = iota
	// Explicit is an Any written in an annotation.
	Explicit
	// AnyError is an Any substituted after an error.
	AnyError
)

// Any is the dynamic type.
type Any struct {
	Style AnyStyle
}

// A Var is an inference-variable placeholder.
// Vars are equal only if they have the same ID.
type Var struct {
	ID int
}

// A SelfType is the type of Self
// within a method of the named class.
type SelfType struct {
	Class string
}

// SelfForm is the unbound typing.Self special form.
type SelfForm struct{}

// NoneType is the type of None.
type NoneType struct{}

// A TypeOf is the type of a value that denotes a type,
// for example the value of a class name, type[int].
type TypeOf struct {
	Of Type
}

// A Literal is a literal type.
type Literal struct {
	// Value is the source text of the literal value,
	// for example 1, 'abc', or True.
	Value string
	// Base is the class of the literal value.
	Base *Class
}

func (*Class) isType()    {}
func (*Callable) isType() {}
func (*Union) isType()    {}
func (*Never) isType()    {}
func (*Any) isType()      {}
func (*Var) isType()      {}
func (*SelfType) isType() {}
func (*SelfForm) isType() {}
func (*NoneType) isType() {}
func (*TypeOf) isType()   {}
func (*Literal) isType()  {}

// ErrorType returns the error-sentinel type.
func ErrorType() Type { return &Any{Style: AnyError} }

// None returns the None type.
func None() Type { return &NoneType{} }

// IsError returns whether t is the error-sentinel type.
func IsError(t Type) bool {
	a, ok := t.(*Any)
	return ok && a.Style == AnyError
}
