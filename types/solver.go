// Copyright © 2020 The Pea Authors under an MIT-style license.

package types

import "fmt"

// A Solver is an arena of inference-variable cells.
//
// Cells are addressed by Var.ID and form a union-find forest.
// The root of each tree holds the solution of all Vars in the tree,
// or nil if they are not yet solved.
type Solver struct {
	cells []cell
}

type cell struct {
	parent   int
	solution Type
}

// NewSolver returns a new, empty Solver.
func NewSolver() *Solver { return &Solver{} }

// Fresh returns a new, unsolved Var.
func (s *Solver) Fresh() *Var {
	id := len(s.cells)
	s.cells = append(s.cells, cell{parent: id})
	return &Var{ID: id}
}

// Len returns the number of Vars allocated by the Solver.
func (s *Solver) Len() int { return len(s.cells) }

func (s *Solver) owns(v *Var) bool { return v.ID >= 0 && v.ID < len(s.cells) }

func (s *Solver) root(id int) int {
	r := id
	for s.cells[r].parent != r {
		r = s.cells[r].parent
	}
	for id != r {
		next := s.cells[id].parent
		s.cells[id].parent = r
		id = next
	}
	return r
}

// Solve records t as the solution of v.
// It is an error if v is already solved.
func (s *Solver) Solve(v *Var, t Type) error {
	if !s.owns(v) {
		return fmt.Errorf("unknown variable %s", v)
	}
	r := s.root(v.ID)
	if old := s.cells[r].solution; old != nil {
		return fmt.Errorf("variable %s is already solved to %s", v, old)
	}
	s.cells[r].solution = t
	return nil
}

// Link unifies a and b, so that they share one solution.
// It is an error if both are already solved.
func (s *Solver) Link(a, b *Var) error {
	if !s.owns(a) || !s.owns(b) {
		return fmt.Errorf("unknown variable in link %s=%s", a, b)
	}
	ra, rb := s.root(a.ID), s.root(b.ID)
	if ra == rb {
		return nil
	}
	sa, sb := s.cells[ra].solution, s.cells[rb].solution
	if sa != nil && sb != nil {
		return fmt.Errorf("cannot link solved variables %s=%s and %s=%s", a, sa, b, sb)
	}
	s.cells[ra].parent = rb
	if sb == nil {
		s.cells[rb].solution = sa
	}
	s.cells[ra].solution = nil
	return nil
}

// Find returns the current solution of v,
// or the Var at the root of v's tree if v is unsolved.
// The solution itself is not resolved.
func (s *Solver) Find(v *Var) Type {
	if !s.owns(v) {
		return v
	}
	r := s.root(v.ID)
	if t := s.cells[r].solution; t != nil {
		return t
	}
	return &Var{ID: r}
}

// ResolveFully returns t with every Var replaced
// by its solution, recursively.
// Unsolved Vars are replaced by the Var at the root of their tree,
// so that linked, unsolved Vars are Equal.
// A Var whose solution refers back to itself is left unresolved
// at the point of recurrence.
func (s *Solver) ResolveFully(t Type) Type {
	return s.resolve(t, make(map[int]bool))
}

func (s *Solver) resolve(t Type, active map[int]bool) Type {
	return Map(t, func(t Type) Type {
		v, ok := t.(*Var)
		if !ok || !s.owns(v) {
			return t
		}
		r := s.root(v.ID)
		sol := s.cells[r].solution
		if sol == nil || active[r] {
			return &Var{ID: r}
		}
		active[r] = true
		defer delete(active, r)
		return s.resolve(sol, active)
	})
}
