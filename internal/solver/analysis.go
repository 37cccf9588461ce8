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

import "fmt"

// analyze triages the roots, computes reachability and collects every
// constraint the solve will reason about.
func (r *run) analyze() error {
	// Root triage. Unknown roots end the solve; known roots that had a
	// version and are not being upgraded anchor the stay-close costs.
	for _, p := range r.in.Dependencies {
		if !r.in.IsKnownPackage(p) {
			r.errs = append(r.errs, fmt.Sprintf("unknown package in top-level dependencies: %s", p))
			continue
		}
		if v, ok := r.in.Previous[p]; ok && !r.in.IsUpgrading(p) {
			r.previousRootVersions = append(r.previousRootVersions, PkgVersion{Package: p, Version: v})
		}
	}
	if err := r.throwAny(); err != nil {
		return err
	}

	// Reachability over strong dependencies, visiting every version of
	// every visited package. Weak dependencies do not propagate, unknown
	// targets are tracked with the package versions that want them.
	var visit func(p string)
	visit = func(p string) {
		if r.reachableSet[p] {
			return
		}
		r.reachableSet[p] = true
		r.reachable = append(r.reachable, p)
		for _, v := range r.versionsOf(p) {
			pv := PkgVersion{Package: p, Version: v}
			for _, dep := range r.in.Catalog.DependenciesOf(p, v) {
				if !r.in.IsKnownPackage(dep.Package) {
					if _, ok := r.unknownReqs[dep.Package]; !ok {
						r.unknown = append(r.unknown, dep.Package)
					}
					r.unknownReqs[dep.Package] = append(r.unknownReqs[dep.Package], pv)
				} else if !dep.Weak {
					visit(dep.Package)
				}
			}
		}
	}
	for _, p := range r.in.Dependencies {
		visit(p)
	}

	// Constraint collection: top-level pins first, then one constraint per
	// dependency, weak ones included, of every version of every reachable
	// package, as long as the target is known.
	for _, c := range r.in.Constraints {
		r.addConstraint("", c.Package, c.Constraint)
	}
	for _, p := range r.reachable {
		for _, v := range r.versionsOf(p) {
			from := PkgVersion{Package: p, Version: v}.Atom()
			for _, dep := range r.in.Catalog.DependenciesOf(p, v) {
				if r.in.IsKnownPackage(dep.Package) {
					r.addConstraint(from, dep.Package, dep.Constraint)
				}
			}
		}
	}
	return nil
}
