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

package catalog

import (
	"github.com/solverworks/versolve/internal/version"
)

// Dependency is one edge of a package version's dependency list. A weak
// dependency constrains its target's version without requiring the target
// to be selected.
type Dependency struct {
	Package    string
	Constraint *version.Constraint
	Weak       bool
}

// Catalog answers which versions exist for a package and what each version
// depends on. A package with no versions is unknown. The order returned by
// VersionsOf is arbitrary but must be stable for the duration of a solve.
type Catalog interface {
	VersionsOf(pkg string) []string
	DependenciesOf(pkg, ver string) []Dependency
}

// MemCatalog is an in-memory Catalog keeping versions in insertion order.
type MemCatalog struct {
	versions map[string][]string
	deps     map[string][]Dependency
}

// NewMemCatalog returns an empty catalog.
func NewMemCatalog() *MemCatalog {
	return &MemCatalog{
		versions: make(map[string][]string),
		deps:     make(map[string][]Dependency),
	}
}

// AddVersion registers a version of a package and its dependency list.
// Re-adding an existing version replaces its dependencies.
func (c *MemCatalog) AddVersion(pkg, ver string, deps ...Dependency) {
	key := pkg + " " + ver
	if _, ok := c.deps[key]; !ok {
		c.versions[pkg] = append(c.versions[pkg], ver)
	}
	c.deps[key] = deps
}

// VersionsOf implements Catalog.
func (c *MemCatalog) VersionsOf(pkg string) []string {
	return c.versions[pkg]
}

// DependenciesOf implements Catalog.
func (c *MemCatalog) DependenciesOf(pkg, ver string) []Dependency {
	return c.deps[pkg+" "+ver]
}
