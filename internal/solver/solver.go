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
	"sort"
	"strings"

	"github.com/Masterminds/log-go"

	"github.com/solverworks/versolve/internal/sat"
	"github.com/solverworks/versolve/internal/version"
)

// Options configures a Solve call.
type Options struct {
	// AllAnswers also enumerates every other solution that reaches the
	// same locked optima.
	AllAnswers bool
	// Nudge, when set, is called between backend solves during long
	// minimizations so the host can yield. It must not re-enter the
	// solver or mutate the input.
	Nudge func()
}

// Result is a successful solve.
type Result struct {
	// Answer maps every reachable package to its selected version.
	Answer map[string]string
	// NeededToUseUnanticipatedPrereleases is true when the answer selects
	// a prerelease the caller did not whitelist.
	NeededToUseUnanticipatedPrereleases bool
	// AllAnswers holds every optimum-equivalent solution, Answer first,
	// when Options.AllAnswers was set.
	AllAnswers []map[string]string
}

// run is the private state of one Solve invocation. Nothing in it outlives
// the call.
type run struct {
	in   *Input
	opts Options
	sat  *sat.Solver

	errs []string

	filtered map[string][]string

	reachable    []string
	reachableSet map[string]bool
	unknown      []string
	unknownReqs  map[string][]PkgVersion

	previousRootVersions []PkgVersion

	constraints []*constraintRec
	formulas    map[string]formula

	steps map[string]*step

	// selected is the version map of the final model, set before the
	// explainer runs.
	selected map[string]string
}

// Solve computes one version per reachable package, optimal under the
// ordered cost criteria, or returns a SolverError describing why no
// acceptable solution exists.
func Solve(in *Input, opts Options) (*Result, error) {
	r := &run{
		in:           in,
		opts:         opts,
		sat:          sat.NewSolver(),
		filtered:     make(map[string][]string),
		reachableSet: make(map[string]bool),
		unknownReqs:  make(map[string][]PkgVersion),
		formulas:     make(map[string]formula),
		steps:        make(map[string]*step),
	}

	if err := r.filterAllowedVersions(); err != nil {
		return nil, err
	}
	if err := r.analyze(); err != nil {
		return nil, err
	}
	if len(r.reachable) == 0 && len(r.constraints) == 0 {
		return &Result{Answer: map[string]string{}}, nil
	}

	r.assertWorld()

	// A model always exists at this point: selecting every package and
	// waiving every constraint satisfies all clauses.
	model := r.sat.Solve()
	if model == nil {
		return nil, internalErrorf("initial problem is unsatisfiable")
	}

	model = r.minimizeAll(model)
	r.selected = r.currentVersionMap(model)

	if err := r.postChecks(model); err != nil {
		return nil, err
	}

	res := &Result{
		Answer:                              r.selected,
		NeededToUseUnanticipatedPrereleases: r.steps["unanticipated_prereleases"].optimum > 0,
	}
	if r.opts.AllAnswers {
		res.AllAnswers = append([]map[string]string{res.Answer}, r.enumerate(model)...)
	}
	return res, nil
}

func (r *run) throwAny() error {
	if len(r.errs) == 0 {
		return nil
	}
	return &SolverError{Reasons: r.errs}
}

// assertWorld loads the boolean model: roots are present, every reachable
// package selects at most one version and is selected exactly when one of
// its versions is, strong dependencies force their targets, and every
// constraint holds unless waived or its source version is unselected.
func (r *run) assertWorld() {
	for _, p := range r.in.Dependencies {
		r.sat.Require(sat.Unit(p))
	}

	for _, p := range r.reachable {
		vs := r.versionsOf(p)
		atoms := make([]string, len(vs))
		for i, v := range vs {
			atoms[i] = PkgVersion{Package: p, Version: v}.Atom()
		}
		r.sat.Require(sat.AtMostOne(atoms...))
		lits := make([]sat.Lit, 0, len(atoms)+1)
		lits = append(lits, sat.Neg(p))
		for _, a := range atoms {
			lits = append(lits, sat.Pos(a))
		}
		r.sat.Require(sat.Clause(lits...))
		for _, a := range atoms {
			r.sat.Require(sat.Implies(a, p))
		}
	}

	for _, p := range r.reachable {
		for _, v := range r.versionsOf(p) {
			atom := PkgVersion{Package: p, Version: v}.Atom()
			for _, dep := range r.in.Catalog.DependenciesOf(p, v) {
				if !dep.Weak {
					r.sat.Require(sat.Implies(atom, dep.Package))
				}
			}
		}
	}

	for _, c := range r.constraints {
		f := r.formulaFor(c.toPackage, c.vc)
		if f.always {
			// satisfied by every candidate; the waiver stays free and
			// is minimized to false
			continue
		}
		lits := make([]sat.Lit, 0, len(f.lits)+2)
		lits = append(lits, sat.Pos(c.conflictVar))
		if c.fromVar != "" {
			lits = append(lits, sat.Neg(c.fromVar))
		}
		lits = append(lits, f.lits...)
		r.sat.Require(sat.Clause(lits...))
	}
}

// minimizeAll runs the lexicographic sequence. Every minimize pins its
// optimum, so each step observes all earlier ones.
func (r *run) minimizeAll(model *sat.Assignment) *sat.Assignment {
	min := func(st *step, o sat.MinimizeOptions) {
		o.Progress = r.opts.Nudge
		model, st.optimum = r.sat.Minimize(model, st.terms, st.weights, o)
		log.Debugf("step %s: optimum %d", st.name, st.optimum)
	}
	minAll := func(sts ...*step) {
		for _, st := range sts {
			min(st, sat.MinimizeOptions{})
		}
	}

	unknownStep := r.newStep("unknown_packages")
	for _, p := range r.unknown {
		unknownStep.addTerm(p, 1)
	}
	min(unknownStep, sat.MinimizeOptions{})

	conflicts := r.newStep("conflicts")
	for _, c := range r.constraints {
		conflicts.addTerm(c.conflictVar, 1)
	}
	// few conflicts are expected, so probe small costs first
	min(conflicts, sat.MinimizeOptions{BottomUp: true})

	prereleases := r.newStep("unanticipated_prereleases")
	for _, p := range r.reachable {
		for _, v := range r.versionsOf(p) {
			if version.IsPrerelease(v) && !r.in.isAnticipatedPrerelease(p, v) {
				prereleases.addTerm(PkgVersion{Package: p, Version: v}.Atom(), 1)
			}
		}
	}
	min(prereleases, sat.MinimizeOptions{})

	prevRoot := r.buildPreviousSteps("previous_root", r.previousRootVersions)
	toUpdate := r.upgradeTargets()
	if !r.in.AllowIncompatibleUpdate {
		// an upgrade may still not cross the previous major or go
		// backwards unless explicitly allowed
		for _, p := range toUpdate {
			if !r.in.IsRootDependency(p) || !r.in.IsInPreviousSolution(p) {
				continue
			}
			part := version.PartitionVersions(r.versionsOf(p), r.in.Previous[p])
			for _, v := range part.Older {
				prevRoot[0].addTerm(PkgVersion{Package: p, Version: v}.Atom(), 1)
			}
			for _, v := range part.HigherMajor {
				prevRoot[0].addTerm(PkgVersion{Package: p, Version: v}.Atom(), 1)
			}
		}
		min(prevRoot[0], sat.MinimizeOptions{})
	}

	minAll(r.buildPricedSteps("update", toUpdate, version.ModeUpdate)...)

	if r.in.AllowIncompatibleUpdate {
		min(prevRoot[0], sat.MinimizeOptions{})
	}
	minAll(prevRoot[1:]...)

	var prevIndirect []PkgVersion
	for _, p := range sortedKeys(r.in.Previous) {
		if r.reachableSet[p] && !r.in.IsRootDependency(p) {
			prevIndirect = append(prevIndirect, PkgVersion{Package: p, Version: r.in.Previous[p]})
		}
	}
	minAll(r.buildPreviousSteps("previous_indirect", prevIndirect)...)

	var newRoots []string
	for _, p := range r.in.Dependencies {
		if !r.in.IsInPreviousSolution(p) {
			newRoots = append(newRoots, p)
		}
	}
	minAll(r.buildPricedSteps("new_root", newRoots, version.ModeUpdate)...)

	// Pin what is now decided for every root, previous or upgrading
	// package, so the remaining steps cannot disturb them.
	vmap := r.currentVersionMap(model)
	for _, p := range r.reachable {
		if !r.in.IsRootDependency(p) && !r.in.IsInPreviousSolution(p) && !r.in.IsUpgrading(p) {
			continue
		}
		if v, ok := vmap[p]; ok {
			r.sat.Require(sat.Implies(p, PkgVersion{Package: p, Version: v}.Atom()))
		}
	}

	var newIndirect []string
	for _, p := range r.reachable {
		if !r.in.IsRootDependency(p) && !r.in.IsInPreviousSolution(p) && !r.in.IsUpgrading(p) {
			newIndirect = append(newIndirect, p)
		}
	}
	minAll(r.buildPricedSteps("new_indirect", newIndirect, version.ModeGravityWithPatches)...)

	total := r.newStep("total_packages")
	for _, p := range r.reachable {
		total.addTerm(p, 1)
	}
	min(total, sat.MinimizeOptions{})

	return model
}

// upgradeTargets returns the reachable packages marked for upgrade, in
// input order.
func (r *run) upgradeTargets() []string {
	var pkgs []string
	for _, p := range r.in.Upgrade {
		if r.reachableSet[p] {
			pkgs = append(pkgs, p)
		}
	}
	return pkgs
}

// postChecks turns a formally optimal model into user errors when the
// optima reveal that something had to give: an unknown package was needed,
// a constraint had to be waived, or a root needed a breaking change.
func (r *run) postChecks(model *sat.Assignment) error {
	if r.steps["unknown_packages"].optimum > 0 {
		for _, p := range r.unknown {
			if !model.Evaluate(p) {
				continue
			}
			var reqs []string
			for _, pv := range r.unknownReqs[p] {
				if model.Evaluate(pv.Atom()) {
					reqs = append(reqs, pv.String())
				}
			}
			r.errs = append(r.errs, fmt.Sprintf("unknown package: %s\nRequired by: %s",
				p, strings.Join(reqs, ", ")))
		}
		if len(r.errs) == 0 {
			return internalErrorf("unknown-package cost is positive but no unknown package is selected")
		}
		return r.throwAny()
	}

	if r.steps["conflicts"].optimum > 0 {
		if err := r.explainConflicts(model); err != nil {
			return err
		}
		return r.throwAny()
	}

	if !r.in.AllowIncompatibleUpdate {
		st := r.steps["previous_root_incompat"]
		if st.optimum > 0 {
			seen := make(map[string]bool)
			for i, t := range st.terms {
				if st.weights[i] == 0 || seen[t] || !model.Evaluate(t) {
					continue
				}
				seen[t] = true
				pv, _ := parseAtom(t)
				msg := fmt.Sprintf("Breaking change required to top-level dependency: %s %s, was %s.",
					pv.Package, pv.Version, r.in.Previous[pv.Package])
				if lst := r.listConstraintsOnPackage(pv.Package); lst != "" {
					msg += "\n" + lst
				}
				r.errs = append(r.errs, msg)
			}
			r.errs = append(r.errs,
				"To allow breaking changes to top-level dependencies, run again with --allow-incompatible-update.")
			return r.throwAny()
		}
	}
	return nil
}

// currentVersionMap decodes the selected package versions out of a model.
// Version atoms of unreachable packages can float free in the model (a weak
// dependency mentions them without requiring anything); only reachable
// packages belong to the answer.
func (r *run) currentVersionMap(model *sat.Assignment) map[string]string {
	vmap := make(map[string]string)
	for _, name := range model.TrueVars() {
		if pv, ok := parseAtom(name); ok && r.reachableSet[pv.Package] {
			vmap[pv.Package] = pv.Version
		}
	}
	return vmap
}

// enumerate finds every further model that reaches the same locked optima
// but selects a different version map. The atom universe is finite, so
// this terminates.
func (r *run) enumerate(model *sat.Assignment) []map[string]string {
	var all []map[string]string
	for {
		block := r.blockingClause(model)
		m := r.sat.SolveAssuming(block)
		if m == nil {
			return all
		}
		r.sat.Require(block)
		model = m
		all = append(all, r.currentVersionMap(m))
	}
}

// blockingClause forbids the model's version map: some selected version
// must change, or some unselected package must appear.
func (r *run) blockingClause(model *sat.Assignment) sat.Constr {
	vmap := r.currentVersionMap(model)
	lits := make([]sat.Lit, 0, len(r.reachable))
	for _, p := range r.reachable {
		if v, ok := vmap[p]; ok {
			lits = append(lits, sat.Neg(PkgVersion{Package: p, Version: v}.Atom()))
		} else {
			lits = append(lits, sat.Pos(p))
		}
	}
	return sat.Clause(lits...)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
