// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package intrinsic evaluates calls to the intrinsic functions
// assert_type, reveal_type, and typing.cast.
//
// The caller decides that a call targets an intrinsic;
// the handlers here bind its arguments, report diagnostics,
// and return the type of the call expression.
package intrinsic

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/eaburns/pycheck/diag"
	"github.com/eaburns/pycheck/loc"
	"github.com/eaburns/pycheck/syntax"
	"github.com/eaburns/pycheck/types"
)

// Config are configuration parameters for a Checker.
type Config struct {
	// Trace is whether to enable debug tracing.
	Trace bool
	// TraceOut is where trace output is written (default=os.Stdout).
	TraceOut io.Writer
}

// A Checker evaluates intrinsic calls.
type Checker struct {
	eng    Engine
	cfg    Config
	indent string
}

// New returns a new Checker that infers types with eng.
func New(eng Engine, cfg Config) *Checker {
	x := &Checker{eng: eng, cfg: cfg}
	setConfigDefaults(x)
	return x
}

func setConfigDefaults(x *Checker) {
	if x.cfg.TraceOut == nil {
		x.cfg.TraceOut = os.Stdout
	}
}

// report reports a diagnostic and returns the error-sentinel type.
func (x *Checker) report(sink diag.Sink, r loc.Range, kind diag.Kind, f string, vs ...interface{}) types.Type {
	return x.reportDiag(sink, newDiag(r, kind, f, vs...))
}

func newDiag(r loc.Range, kind diag.Kind, f string, vs ...interface{}) *diag.Diagnostic {
	return &diag.Diagnostic{Kind: kind, Msg: fmt.Sprintf(f, vs...), Range: r}
}

// reportDiag reports d, notes included,
// and returns the error-sentinel type.
func (x *Checker) reportDiag(sink diag.Sink, d *diag.Diagnostic) types.Type {
	x.log("%s: %s", d.Kind, d.Msg)
	for _, n := range d.Notes {
		x.log("\t%s", n)
	}
	sink.Report(*d)
	return types.ErrorType()
}

// display returns the user-facing rendering of t.
func (x *Checker) display(t types.Type) string {
	return x.eng.ForDisplay(t).String()
}

// The argument to the returned function,
// if non-empty, only the first element of vs is used.
// It must be a pointer to a value to log on return.
func (x *Checker) tr(f string, vs ...interface{}) func(...interface{}) {
	if !x.cfg.Trace {
		return func(...interface{}) {}
	}
	x.log(f, vs...)
	olddent := x.indent
	x.indent += "---"
	return func(res ...interface{}) {
		defer func() { x.indent = olddent }()
		if len(res) == 0 {
			return
		}
		v := reflect.ValueOf(res[0])
		if v.IsNil() || v.Elem().Kind() == reflect.Interface && v.Elem().IsNil() {
			return
		}
		x.log("→ %v", v.Elem().Interface())
	}
}

func (x *Checker) log(f string, vs ...interface{}) {
	if !x.cfg.Trace {
		return
	}
	fmt.Fprint(x.cfg.TraceOut, x.indent)
	fmt.Fprintf(x.cfg.TraceOut, f, vs...)
	fmt.Fprintln(x.cfg.TraceOut, "")
}

func argsString(args []syntax.Expr, kws []syntax.Keyword) string {
	var ss []string
	for _, a := range args {
		ss = append(ss, a.String())
	}
	for _, k := range kws {
		ss = append(ss, k.String())
	}
	return strings.Join(ss, ", ")
}
