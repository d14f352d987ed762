// Copyright © 2020 The Pea Authors under an MIT-style license.

package intrinsic

import (
	"github.com/eaburns/pycheck/diag"
	"github.com/eaburns/pycheck/loc"
	"github.com/eaburns/pycheck/syntax"
	"github.com/eaburns/pycheck/types"
)

// TypeFormContext is the syntactic position
// in which an expression is interpreted as a type.
type TypeFormContext int

// FunctionArgument is a type passed as an argument to a function,
// for example the second argument of assert_type.
// It is the only context in which intrinsics interpret types.
const FunctionArgument TypeFormContext = 0

// An Engine is the inference engine that intrinsic handlers call back into.
//
// Diagnostics that the Engine reports while inferring
// go directly to the given sink;
// the intrinsic handlers never inspect them.
type Engine interface {
	// Infer returns the type of an expression evaluated as a value.
	Infer(syntax.Expr, diag.Sink) types.Type

	// InferTypeInfo returns the type of an expression
	// along with the narrowed types of its attributes and items.
	InferTypeInfo(syntax.Expr, diag.Sink) types.TypeInfo

	// InferAnnotation returns the type denoted by
	// an expression interpreted as a type annotation.
	InferAnnotation(syntax.Expr, TypeFormContext, diag.Sink) types.Type

	// Untype returns the type denoted by a value of type t,
	// for example int for type[int].
	// It returns false if values of type t do not denote a type.
	Untype(t types.Type, r loc.Range) (types.Type, bool)

	// ForDisplay returns a type rewritten for display to the user.
	ForDisplay(types.Type) types.Type

	// Solver returns the solver holding the current solutions
	// of inference variables.
	Solver() *types.Solver
}
