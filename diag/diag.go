// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package diag defines the diagnostics reported
// while evaluating intrinsic calls.
package diag

import (
	"fmt"
	"strings"

	"github.com/eaburns/pycheck/loc"
)

// Kind is the kind of a Diagnostic.
type Kind int

// The Kinds.
// The first group is reported by intrinsic handlers;
// the second by the inference engine.
const (
	BadArgumentCount Kind = iota
	InvalidArgument
	MissingArgument
	UnexpectedKeyword
	BadArgumentType
	AssertType
	RevealType

	UnknownName
	InvalidAnnotation
)

// Kinds returns all Kinds.
func Kinds() []Kind {
	return []Kind{
		BadArgumentCount,
		InvalidArgument,
		MissingArgument,
		UnexpectedKeyword,
		BadArgumentType,
		AssertType,
		RevealType,
		UnknownName,
		InvalidAnnotation,
	}
}

func (k Kind) String() string {
	switch k {
	case BadArgumentCount:
		return "bad-argument-count"
	case InvalidArgument:
		return "invalid-argument"
	case MissingArgument:
		return "missing-argument"
	case UnexpectedKeyword:
		return "unexpected-keyword"
	case BadArgumentType:
		return "bad-argument-type"
	case AssertType:
		return "assert-type"
	case RevealType:
		return "reveal-type"
	case UnknownName:
		return "unknown-name"
	case InvalidAnnotation:
		return "invalid-annotation"
	default:
		panic(fmt.Sprintf("impossible kind %d", int(k)))
	}
}

// Severity is the severity of a Diagnostic.
type Severity int

const (
	Error Severity = iota
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Info:
		return "info"
	default:
		panic(fmt.Sprintf("impossible severity %d", int(s)))
	}
}

// Severity returns the severity of diagnostics of Kind k.
func (k Kind) Severity() Severity {
	switch k {
	case RevealType:
		return Info
	case BadArgumentCount, InvalidArgument, MissingArgument, UnexpectedKeyword,
		BadArgumentType, AssertType, UnknownName, InvalidAnnotation:
		return Error
	default:
		panic(fmt.Sprintf("impossible kind %d", int(k)))
	}
}

// A Diagnostic is a single reported event.
type Diagnostic struct {
	Kind  Kind
	Msg   string
	Range loc.Range
	Notes []string
}

// Note adds a note to the Diagnostic.
func (d *Diagnostic) Note(f string, vs ...interface{}) {
	d.Notes = append(d.Notes, fmt.Sprintf(f, vs...))
}

// A Sink receives Diagnostics in the order they are reported.
type Sink interface {
	Report(Diagnostic)
}

// A Collector is a Sink that records Diagnostics in order.
type Collector struct {
	Diags []Diagnostic
}

// Report appends d.
func (c *Collector) Report(d Diagnostic) { c.Diags = append(c.Diags, d) }

// Len returns the number of collected Diagnostics.
func (c *Collector) Len() int { return len(c.Diags) }

// Kinds returns the Kinds of the collected Diagnostics, in order.
func (c *Collector) Kinds() []Kind {
	var ks []Kind
	for _, d := range c.Diags {
		ks = append(ks, d.Kind)
	}
	return ks
}

// Errors returns the collected Diagnostics of severity Error
// as errors with locations from files.
func (c *Collector) Errors(files loc.Files) []error {
	var errs []error
	for _, d := range c.Diags {
		if d.Kind.Severity() == Error {
			errs = append(errs, &located{Diagnostic: d, loc: files.Loc(d.Range)})
		}
	}
	return errs
}

type located struct {
	Diagnostic
	loc *loc.Loc
}

func (err *located) Error() string { return Format(err.Diagnostic, err.loc) }

// Format returns a Diagnostic as text:
// the location, if non-nil, the severity, the message, the kind,
// and each note on a tab-indented line.
func Format(d Diagnostic, l *loc.Loc) string {
	var s strings.Builder
	if l != nil {
		s.WriteString(l.String())
		s.WriteString(": ")
	}
	s.WriteString(d.Kind.Severity().String())
	s.WriteString(": ")
	s.WriteString(d.Msg)
	s.WriteString(" [")
	s.WriteString(d.Kind.String())
	s.WriteRune(']')
	for _, n := range d.Notes {
		s.WriteString("\n\t")
		s.WriteString(n)
	}
	return s.String()
}
