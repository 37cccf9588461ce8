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
)

// filterAllowedVersions prunes each constrained package's candidate list by
// the top-level constraints, before any clause generation. A package the
// catalog does not know is left alone so the unknown-package machinery can
// report it later. A candidate list emptied by the constraints is an
// immediate error.
func (r *run) filterAllowedVersions() error {
	seen := make(map[string]bool)
	for _, c := range r.in.Constraints {
		if seen[c.Package] {
			continue
		}
		seen[c.Package] = true

		vs := r.in.Catalog.VersionsOf(c.Package)
		if len(vs) == 0 {
			continue
		}
		for _, c2 := range r.in.Constraints {
			if c2.Package != c.Package {
				continue
			}
			kept := vs[:0:0]
			for _, v := range vs {
				if c2.Constraint.Satisfies(v) {
					kept = append(kept, v)
				}
			}
			vs = kept
		}
		if len(vs) == 0 {
			r.errs = append(r.errs, fmt.Sprintf(
				"No version of %s satisfies top-level constraints: %s",
				c.Package, r.topConstraintsOn(c.Package)))
			return r.throwAny()
		}
		r.filtered[c.Package] = vs
	}
	return nil
}

// versionsOf returns the filtered candidate list of p when one exists,
// the raw catalog list otherwise.
func (r *run) versionsOf(p string) []string {
	if vs, ok := r.filtered[p]; ok {
		return vs
	}
	return r.in.Catalog.VersionsOf(p)
}

func (r *run) topConstraintsOn(p string) string {
	var cs []string
	for _, c := range r.in.Constraints {
		if c.Package == p {
			cs = append(cs, fmt.Sprintf("%s@%s", p, c.Constraint.Raw()))
		}
	}
	return strings.Join(cs, ", ")
}
