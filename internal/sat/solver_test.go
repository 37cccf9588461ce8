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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveBasics(t *testing.T) {
	is := assert.New(t)

	s := NewSolver()
	s.Require(Unit("a"), Implies("a", "b"))
	m := s.Solve()
	is.NotNil(m)
	is.True(m.Evaluate("a"))
	is.True(m.Evaluate("b"))
	is.Equal([]string{"a", "b"}, m.TrueVars())
}

func TestSolveUnsat(t *testing.T) {
	is := assert.New(t)

	s := NewSolver()
	s.Require(Unit("a"), Clause(Neg("a")))
	is.Nil(s.Solve())
}

func TestAtMostOne(t *testing.T) {
	is := assert.New(t)

	s := NewSolver()
	s.Require(AtMostOne("a", "b", "c"))
	s.Require(Clause(Pos("a"), Pos("b"), Pos("c")))
	m := s.Solve()
	is.NotNil(m)
	count := 0
	for _, v := range []string{"a", "b", "c"} {
		if m.Evaluate(v) {
			count++
		}
	}
	is.Equal(1, count)
}

func TestAtMostOneDegenerate(t *testing.T) {
	is := assert.New(t)

	// a single candidate never constrains anything
	s := NewSolver()
	s.Require(AtMostOne("a"))
	s.Require(Unit("a"))
	m := s.Solve()
	is.NotNil(m)
	is.True(m.Evaluate("a"))
}

func TestSolveAssumingDoesNotPersist(t *testing.T) {
	is := assert.New(t)

	s := NewSolver()
	s.Require(Clause(Pos("a"), Pos("b")))
	is.Nil(s.SolveAssuming(Clause(Pos("a")), Clause(Neg("a")), Clause(Neg("b"))))
	is.NotNil(s.Solve())

	m := s.SolveAssuming(Clause(Neg("a")))
	is.NotNil(m)
	is.False(m.Evaluate("a"))
	is.True(m.Evaluate("b"))
}

func TestMinimize(t *testing.T) {
	for _, tcase := range []struct {
		name    string
		weights []int
		opts    MinimizeOptions
		optimum int
	}{
		{
			name:    "uniform weights, top down",
			weights: []int{1, 1, 1},
			optimum: 1,
		},
		{
			name:    "uniform weights, bottom up",
			weights: []int{1, 1, 1},
			opts:    MinimizeOptions{BottomUp: true},
			optimum: 1,
		},
		{
			name:    "skewed weights pick the cheap literal",
			weights: []int{5, 3, 1},
			optimum: 1,
		},
	} {
		t.Run(tcase.name, func(t *testing.T) {
			is := assert.New(t)

			s := NewSolver()
			s.Require(Clause(Pos("a"), Pos("b"), Pos("c")))
			m := s.Solve()
			is.NotNil(m)

			m, optimum := s.Minimize(m, []string{"a", "b", "c"}, tcase.weights, tcase.opts)
			is.NotNil(m)
			is.Equal(tcase.optimum, optimum)
			is.Equal(optimum, m.WeightedSum([]string{"a", "b", "c"}, tcase.weights))
		})
	}
}

func TestMinimizePinsOptimum(t *testing.T) {
	is := assert.New(t)

	s := NewSolver()
	s.Require(Clause(Pos("a"), Pos("b")))
	m := s.Solve()
	is.NotNil(m)

	m, optimum := s.Minimize(m, []string{"a", "b"}, []int{1, 1}, MinimizeOptions{})
	is.Equal(1, optimum)

	// the pinned bound survives later queries: both true is no longer a model
	is.Nil(s.SolveAssuming(Clause(Pos("a")), Clause(Pos("b"))))
	is.NotNil(s.Solve())
}

func TestMinimizeEmptyStep(t *testing.T) {
	is := assert.New(t)

	s := NewSolver()
	s.Require(Unit("a"))
	m := s.Solve()

	m2, optimum := s.Minimize(m, nil, nil, MinimizeOptions{})
	is.Equal(0, optimum)
	is.Equal(m, m2)
}

func TestMinimizeReportsProgress(t *testing.T) {
	is := assert.New(t)

	s := NewSolver()
	s.Require(Unit("a"))
	m := s.Solve()
	is.NotNil(m)

	nudged := 0
	_, optimum := s.Minimize(m, []string{"a"}, []int{1},
		MinimizeOptions{Progress: func() { nudged++ }})
	is.Equal(1, optimum)
	is.NotZero(nudged)
}

func TestBlockingEnumeration(t *testing.T) {
	is := assert.New(t)

	s := NewSolver()
	s.Require(Clause(Pos("a"), Pos("b")), AtMostOne("a", "b"))

	m := s.Solve()
	is.NotNil(m)
	seen := map[string]bool{pick(m): true}

	// forbid the first model, expect exactly one other
	block := blockOf(m)
	m2 := s.SolveAssuming(block)
	is.NotNil(m2)
	s.Require(block)
	seen[pick(m2)] = true
	is.Len(seen, 2)

	is.Nil(s.SolveAssuming(blockOf(m2)))
}

func pick(m *Assignment) string {
	if m.Evaluate("a") {
		return "a"
	}
	return "b"
}

func blockOf(m *Assignment) Constr {
	var lits []Lit
	for _, v := range []string{"a", "b"} {
		if m.Evaluate(v) {
			lits = append(lits, Neg(v))
		} else {
			lits = append(lits, Pos(v))
		}
	}
	return Clause(lits...)
}
