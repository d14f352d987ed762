// Copyright © 2020 The Pea Authors under an MIT-style license.

package types

import "testing"

func TestResolveFully(t *testing.T) {
	s := NewSolver()
	a, b, c, d := s.Fresh(), s.Fresh(), s.Fresh(), s.Fresh()
	if err := s.Solve(a, listOf(b)); err != nil {
		t.Fatal(err)
	}
	if err := s.Link(b, c); err != nil {
		t.Fatal(err)
	}
	if err := s.Solve(c, intType); err != nil {
		t.Fatal(err)
	}

	got := s.ResolveFully(&Union{Members: []Type{a, d}})
	if want := "list[int] | @3"; got.String() != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if !Equal(s.ResolveFully(b), intType) {
		t.Errorf("linked var did not resolve to int: %s", s.ResolveFully(b))
	}
}

func TestResolveUnsolvedLinks(t *testing.T) {
	s := NewSolver()
	a, b, c := s.Fresh(), s.Fresh(), s.Fresh()
	if err := s.Link(a, b); err != nil {
		t.Fatal(err)
	}
	if !Equal(s.ResolveFully(a), s.ResolveFully(b)) {
		t.Errorf("linked unsolved vars are not equal: %s, %s", s.ResolveFully(a), s.ResolveFully(b))
	}
	if Equal(s.ResolveFully(a), s.ResolveFully(c)) {
		t.Errorf("distinct unsolved vars are equal")
	}
}

func TestResolveCycle(t *testing.T) {
	s := NewSolver()
	a := s.Fresh()
	if err := s.Solve(a, listOf(a)); err != nil {
		t.Fatal(err)
	}
	if got, want := s.ResolveFully(a).String(), "list[@0]"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestSolverErrors(t *testing.T) {
	s := NewSolver()
	a, b := s.Fresh(), s.Fresh()
	if err := s.Solve(a, intType); err != nil {
		t.Fatal(err)
	}
	if err := s.Solve(a, strType); err == nil {
		t.Errorf("re-solve: got nil error")
	}
	if err := s.Solve(b, strType); err != nil {
		t.Fatal(err)
	}
	if err := s.Link(a, b); err == nil {
		t.Errorf("link solved: got nil error")
	}
	if err := s.Solve(&Var{ID: 10}, intType); err == nil {
		t.Errorf("foreign var: got nil error")
	}
	if got := s.Find(&Var{ID: 10}); !Equal(got, &Var{ID: 10}) {
		t.Errorf("Find(foreign)=%s, want @10", got)
	}
}
