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

package solver

import (
	"fmt"

	"github.com/solverworks/versolve/internal/sat"
	"github.com/solverworks/versolve/internal/version"
)

// constraintRec is one collected constraint: the top level or a package
// version constrains toPackage to a range. Its conflict atom, when true,
// waives the constraint; minimizing waivers identifies the smallest set of
// constraints that must be dropped for satisfiability.
type constraintRec struct {
	fromVar     string // package-version atom of the source, "" for top level
	toPackage   string
	vc          *version.Constraint
	conflictVar string
}

func (r *run) addConstraint(fromVar, toPackage string, vc *version.Constraint) {
	r.constraints = append(r.constraints, &constraintRec{
		fromVar:     fromVar,
		toPackage:   toPackage,
		vc:          vc,
		conflictVar: fmt.Sprintf("conflict#%d", len(r.constraints)),
	})
}

// formula is the satisfaction formula of a (package, range) pair: either
// always true, or the clause ¬package ∨ pv_1 ∨ ... ∨ pv_k over the
// versions inside the range.
type formula struct {
	always bool
	lits   []sat.Lit
}

// formulaFor memoizes formulas by package plus raw range. Many constraints
// share the pair, and sharing keeps the clause count down.
func (r *run) formulaFor(pkg string, vc *version.Constraint) formula {
	key := pkg + "@" + vc.Raw()
	if f, ok := r.formulas[key]; ok {
		return f
	}
	targets := r.versionsOf(pkg)
	ok := make([]sat.Lit, 0, len(targets))
	for _, v := range targets {
		if vc.Satisfies(v) {
			ok = append(ok, sat.Pos(PkgVersion{Package: pkg, Version: v}.Atom()))
		}
	}
	var f formula
	if len(ok) == len(targets) {
		f = formula{always: true}
	} else {
		f = formula{lits: append([]sat.Lit{sat.Neg(pkg)}, ok...)}
	}
	r.formulas[key] = f
	return f
}
