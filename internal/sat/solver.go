/*
Copyright SUSE LLC.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sat

import (
	"github.com/crillab/gophersat/solver"
)

// Solver accumulates hard constraints over named variables and answers
// satisfiability and weighted-minimization queries through gophersat.
// Names are interned to the 1-based integer ids the backend works with,
// the same scheme gophersat's maxsat layer uses.
type Solver struct {
	Verbose bool

	ids     map[string]int
	names   []string // names[i] is the variable with id i+1
	constrs []Constr
}

// NewSolver returns an empty solver.
func NewSolver() *Solver {
	return &Solver{ids: make(map[string]int)}
}

// Require adds hard constraints that every later solve must satisfy.
func (s *Solver) Require(cs ...Constr) {
	for _, c := range cs {
		for _, l := range c.Lits {
			s.intern(l.Var)
		}
	}
	s.constrs = append(s.constrs, cs...)
}

// Solve finds a model of all required constraints, or nil if none exists.
func (s *Solver) Solve() *Assignment {
	return s.solve(nil)
}

// SolveAssuming finds a model of all required constraints plus the given
// temporary ones. The temporary constraints are not retained.
func (s *Solver) SolveAssuming(cs ...Constr) *Assignment {
	return s.solve(cs)
}

// MinimizeOptions tunes a Minimize call.
type MinimizeOptions struct {
	// Progress, if set, is called between backend solves so the host can
	// yield. It must not re-enter the solver.
	Progress func()
	// BottomUp probes costs from zero upward instead of tightening the
	// bound downward from the current model. Pays off when the optimum is
	// expected to be small.
	BottomUp bool
}

// Minimize finds a model minimizing the weighted sum of the given terms,
// subject to every required constraint, then pins the optimum as a hard
// bound so later queries preserve it. current must be a model of the
// required constraints; it seeds the search. Returns the optimal model and
// the optimum.
func (s *Solver) Minimize(current *Assignment, terms []string, weights []int, opts MinimizeOptions) (*Assignment, int) {
	if len(terms) == 0 {
		return current, 0
	}
	best := current
	cost := current.WeightedSum(terms, weights)
	if opts.BottomUp {
		for bound := 0; bound < cost; bound++ {
			m := s.SolveAssuming(WeightedLeq(terms, weights, bound))
			if opts.Progress != nil {
				opts.Progress()
			}
			if m != nil {
				best = m
				cost = m.WeightedSum(terms, weights)
				break
			}
		}
	} else {
		for cost > 0 {
			m := s.SolveAssuming(WeightedLeq(terms, weights, cost-1))
			if opts.Progress != nil {
				opts.Progress()
			}
			if m == nil {
				break
			}
			best = m
			cost = m.WeightedSum(terms, weights)
		}
	}
	s.Require(WeightedLeq(terms, weights, cost))
	return best, cost
}

func (s *Solver) intern(v string) int {
	if id, ok := s.ids[v]; ok {
		return id
	}
	s.names = append(s.names, v)
	s.ids[v] = len(s.names)
	return len(s.names)
}

// translate rewrites a named constraint into gophersat's integer form.
// The bool result is false for trivially satisfied constraints, which the
// backend parser does not accept.
func (s *Solver) translate(c Constr) (solver.PBConstr, bool) {
	if c.AtLeast <= 0 {
		for _, l := range c.Lits {
			s.intern(l.Var)
		}
		return solver.PBConstr{}, false
	}
	lits := make([]int, len(c.Lits))
	for i, l := range c.Lits {
		id := s.intern(l.Var)
		if l.Negated {
			id = -id
		}
		lits[i] = id
	}
	if c.Coeffs == nil {
		if c.AtLeast == 1 {
			return solver.PropClause(lits...), true
		}
		return solver.AtLeast(lits, c.AtLeast), true
	}
	coeffs := make([]int, len(c.Coeffs))
	copy(coeffs, c.Coeffs)
	return solver.GtEq(lits, coeffs, c.AtLeast), true
}

func (s *Solver) solve(extra []Constr) *Assignment {
	pbcs := make([]solver.PBConstr, 0, len(s.constrs)+len(extra))
	for _, c := range s.constrs {
		if pb, ok := s.translate(c); ok {
			pbcs = append(pbcs, pb)
		}
	}
	for _, c := range extra {
		if pb, ok := s.translate(c); ok {
			pbcs = append(pbcs, pb)
		}
	}
	if len(pbcs) == 0 {
		// nothing constrains anything; the all-false assignment will do
		bindings := make(map[string]bool, len(s.names))
		for _, name := range s.names {
			bindings[name] = false
		}
		return &Assignment{model: bindings}
	}
	pb := solver.ParsePBConstrs(pbcs)
	gs := solver.New(pb)
	gs.Verbose = s.Verbose
	if gs.Solve() != solver.Sat {
		return nil
	}
	model := gs.Model()
	bindings := make(map[string]bool, len(s.names))
	for i, name := range s.names {
		if i < len(model) {
			bindings[name] = model[i]
		}
	}
	return &Assignment{model: bindings}
}
