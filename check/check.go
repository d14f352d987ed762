// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package check evaluates source files of call expressions
// in an inference environment.
package check

import (
	"io"

	"github.com/eaburns/pycheck/diag"
	"github.com/eaburns/pycheck/infer"
	"github.com/eaburns/pycheck/intrinsic"
	"github.com/eaburns/pycheck/loc"
	"github.com/eaburns/pycheck/syntax"
	"github.com/eaburns/pycheck/types"
)

// Config are configuration parameters for checking.
type Config struct {
	// Trace is whether to enable debug tracing of intrinsic calls.
	Trace bool
	// TraceOut is where trace output is written (default=os.Stdout).
	TraceOut io.Writer
}

// A Result is the type of one statement.
type Result struct {
	Stmt syntax.Expr
	Type types.Type
	// Intrinsic is whether the statement is a call to an intrinsic.
	Intrinsic bool
}

// A Run is the outcome of checking one file.
type Run struct {
	File    *syntax.File
	Files   loc.Files
	Results []Result
	Diags   diag.Collector
}

// Errors returns the error diagnostics of the Run with locations.
func (r *Run) Errors() []error { return r.Diags.Errors(r.Files) }

// Loc returns the location of a Range in the checked file.
func (r *Run) Loc(rng loc.Range) *loc.Loc { return r.Files.Loc(rng) }

// Checker checks files in a shared Env.
type Checker struct {
	eng *infer.Engine
	x   *intrinsic.Checker
}

// New returns a new Checker for env.
func New(env *infer.Env, cfg Config) *Checker {
	eng := infer.New(env)
	x := intrinsic.New(eng, intrinsic.Config{Trace: cfg.Trace, TraceOut: cfg.TraceOut})
	eng.Calls = x.Call
	return &Checker{eng: eng, x: x}
}

// Engine returns the Checker's inference engine.
func (c *Checker) Engine() *infer.Engine { return c.eng }

// File checks a parsed file.
// Each statement is evaluated in order;
// diagnostics are collected in the order they are reported.
func (c *Checker) File(f *syntax.File) *Run {
	r := &Run{File: f}
	r.Files.Add(f.Path, f.Text)
	for _, stmt := range f.Stmts {
		res := Result{Stmt: stmt}
		if call, ok := stmt.(*syntax.Call); ok {
			_, res.Intrinsic = intrinsic.Lookup(call.FunName())
		}
		res.Type = c.eng.Infer(stmt, &r.Diags)
		r.Results = append(r.Results, res)
	}
	return r
}

// Source parses and checks the source text of a file.
func (c *Checker) Source(path, text string) (*Run, error) {
	f, err := syntax.ParseString(path, text)
	if err != nil {
		return nil, err
	}
	return c.File(f), nil
}
