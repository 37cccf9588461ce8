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
	"github.com/solverworks/versolve/internal/catalog"
	"github.com/solverworks/versolve/internal/version"
)

// PkgConstraint is a top-level pin on a package.
type PkgConstraint struct {
	Package    string
	Constraint *version.Constraint
}

// Input is everything a solve reads. It is not mutated.
type Input struct {
	// Dependencies are the root package names, unique, in input order.
	Dependencies []string
	// Constraints are the top-level pins, in input order.
	Constraints []PkgConstraint
	// Catalog knows the versions of every package and their dependencies.
	Catalog catalog.Catalog
	// Previous maps packages of a previous solution to their versions.
	Previous map[string]string
	// Upgrade lists packages whose version should move forward.
	Upgrade []string
	// AnticipatedPrereleases maps a package to prerelease versions that
	// should not be penalized when selected.
	AnticipatedPrereleases map[string][]string
	// AllowIncompatibleUpdate permits major-version breaks of roots that
	// were in the previous solution.
	AllowIncompatibleUpdate bool
}

// IsKnownPackage reports whether the catalog has any version of p.
func (in *Input) IsKnownPackage(p string) bool {
	return len(in.Catalog.VersionsOf(p)) > 0
}

// IsRootDependency reports whether p is one of the root dependencies.
func (in *Input) IsRootDependency(p string) bool {
	for _, d := range in.Dependencies {
		if d == p {
			return true
		}
	}
	return false
}

// IsInPreviousSolution reports whether p had a version in the previous
// solution.
func (in *Input) IsInPreviousSolution(p string) bool {
	_, ok := in.Previous[p]
	return ok
}

// IsUpgrading reports whether p is marked for upgrade.
func (in *Input) IsUpgrading(p string) bool {
	for _, u := range in.Upgrade {
		if u == p {
			return true
		}
	}
	return false
}

func (in *Input) isAnticipatedPrerelease(p, v string) bool {
	for _, a := range in.AnticipatedPrereleases[p] {
		if a == v {
			return true
		}
	}
	return false
}
