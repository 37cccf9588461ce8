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
	"strings"

	"github.com/solverworks/versolve/internal/sat"
)

// explainConflicts builds one message per waived constraint: which range
// was violated, what got selected instead, and where every constraint on
// that package comes from.
func (r *run) explainConflicts(model *sat.Assignment) error {
	for _, c := range r.constraints {
		if !model.Evaluate(c.conflictVar) {
			continue
		}
		v, ok := r.selected[c.toPackage]
		if !ok {
			return internalErrorf("constraint on %s is in conflict but no version of it is selected", c.toPackage)
		}
		msg := fmt.Sprintf("conflict: constraint %s@%s is not satisfied by %s %s.",
			c.toPackage, c.vc.Raw(), c.toPackage, v)
		if lst := r.listConstraintsOnPackage(c.toPackage); lst != "" {
			msg += "\n" + lst
		}
		r.errs = append(r.errs, msg)
	}
	return nil
}

// listConstraintsOnPackage renders every collected constraint targeting p,
// each with the reverse dependency paths that reach its source.
func (r *run) listConstraintsOnPackage(p string) string {
	var lines []string
	for _, c := range r.constraints {
		if c.toPackage != p {
			continue
		}
		display := fmt.Sprintf("%s@%s", p, c.vc.Raw())
		if c.fromVar == "" {
			lines = append(lines, fmt.Sprintf("* %s <- top level", display))
			continue
		}
		pv, _ := parseAtom(c.fromVar)
		for _, path := range r.pathsToPackageVersion(pv, make(map[string]bool)) {
			lines = append(lines, fmt.Sprintf("* %s <- %s", display, strings.Join(path, " <- ")))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return fmt.Sprintf("Constraints on package %s:\n%s", p, strings.Join(lines, "\n"))
}

// pathsToPackageVersion walks the selected assignment backwards from pv to
// a root. Only paths no longer than the shortest found so far are kept;
// the bound keeps dense graphs from exploding and prefers short
// explanations. The ignore set holds the packages on the current stack.
func (r *run) pathsToPackageVersion(pv PkgVersion, ignore map[string]bool) [][]string {
	if r.selected[pv.Package] != pv.Version {
		return nil
	}
	if r.in.IsRootDependency(pv.Package) {
		return [][]string{{pv.String()}}
	}

	ignore[pv.Package] = true
	defer delete(ignore, pv.Package)

	var paths [][]string
	shortest := 0
	for _, q := range r.reachable {
		qv, ok := r.selected[q]
		if !ok || ignore[q] || q == pv.Package {
			continue
		}
		if !r.dependsOn(q, qv, pv.Package) {
			continue
		}
		for _, sub := range r.pathsToPackageVersion(PkgVersion{Package: q, Version: qv}, ignore) {
			path := append([]string{pv.String()}, sub...)
			switch {
			case len(paths) == 0:
				paths = append(paths, path)
				shortest = len(path)
			case len(path) <= shortest:
				paths = append(paths, path)
				if len(path) < shortest {
					shortest = len(path)
				}
			}
		}
	}
	return paths
}

// dependsOn reports whether version qv of q lists p as a dependency,
// weakly or not.
func (r *run) dependsOn(q, qv, p string) bool {
	for _, d := range r.in.Catalog.DependenciesOf(q, qv) {
		if d.Package == p {
			return true
		}
	}
	return false
}
