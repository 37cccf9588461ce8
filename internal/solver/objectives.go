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
	"github.com/solverworks/versolve/internal/version"
)

// buildPricedSteps prices the candidate versions of the given packages and
// spreads the four cost vectors over steps named <prefix>_major through
// <prefix>_rest.
func (r *run) buildPricedSteps(prefix string, pkgs []string, mode version.Mode) []*step {
	sts := []*step{
		r.newStep(prefix + "_major"),
		r.newStep(prefix + "_minor"),
		r.newStep(prefix + "_patch"),
		r.newStep(prefix + "_rest"),
	}
	for _, p := range pkgs {
		vs := r.versionsOf(p)
		major, minor, patch, rest := version.PriceVersions(vs, mode)
		for i, v := range vs {
			atom := PkgVersion{Package: p, Version: v}.Atom()
			sts[0].addTerm(atom, major[i])
			sts[1].addTerm(atom, minor[i])
			sts[2].addTerm(atom, patch[i])
			sts[3].addTerm(atom, rest[i])
		}
	}
	return sts
}

// buildPreviousSteps prices candidates against the remembered previous
// version of each package and spreads the five cost vectors over steps
// named <prefix>_incompat through <prefix>_rest.
func (r *run) buildPreviousSteps(prefix string, pvs []PkgVersion) []*step {
	sts := []*step{
		r.newStep(prefix + "_incompat"),
		r.newStep(prefix + "_major"),
		r.newStep(prefix + "_minor"),
		r.newStep(prefix + "_patch"),
		r.newStep(prefix + "_rest"),
	}
	for _, prev := range pvs {
		vs := r.versionsOf(prev.Package)
		incompat, major, minor, patch, rest := version.PriceVersionsWithPrevious(vs, prev.Version)
		for i, v := range vs {
			atom := PkgVersion{Package: prev.Package, Version: v}.Atom()
			sts[0].addTerm(atom, incompat[i])
			sts[1].addTerm(atom, major[i])
			sts[2].addTerm(atom, minor[i])
			sts[3].addTerm(atom, patch[i])
			sts[4].addTerm(atom, rest[i])
		}
	}
	return sts
}
