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
	"io/ioutil"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/solverworks/versolve/internal/version"
)

// RootConstraint is a top-level pin on a package.
type RootConstraint struct {
	Package    string
	Constraint *version.Constraint
}

// World is everything a solve needs, loaded from a world file: the package
// catalog, the root dependencies, top-level constraints, the previous
// solution and the set of packages to upgrade.
type World struct {
	Catalog                *MemCatalog
	Roots                  []string
	Constraints            []RootConstraint
	Previous               map[string]string
	Upgrade                []string
	AnticipatedPrereleases map[string][]string
}

type worldFile struct {
	Packages []struct {
		Name         string `yaml:"name"`
		Version      string `yaml:"version"`
		Dependencies []struct {
			Name       string `yaml:"name"`
			Constraint string `yaml:"constraint"`
			Weak       bool   `yaml:"weak"`
		} `yaml:"dependencies"`
	} `yaml:"packages"`
	Roots       []string `yaml:"roots"`
	Constraints []struct {
		Name       string `yaml:"name"`
		Constraint string `yaml:"constraint"`
	} `yaml:"constraints"`
	Previous               map[string]string   `yaml:"previous"`
	Upgrade                []string            `yaml:"upgrade"`
	AnticipatedPrereleases map[string][]string `yaml:"anticipatedPrereleases"`
}

// LoadWorld reads and parses a world file.
func LoadWorld(path string) (*World, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading world file")
	}
	w, err := ParseWorld(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing world file %q", path)
	}
	return w, nil
}

// ParseWorld parses a YAML world document, validating that the names of
// catalog packages, their dependencies and constrained packages contain no
// spaces, and that every catalog version, previous-solution version and
// range parses as semver, so downstream pricing can assume well-formed
// input. Root and upgrade names and anticipated prerelease versions are
// not checked.
func ParseWorld(data []byte) (*World, error) {
	var wf worldFile
	if err := yaml.UnmarshalStrict(data, &wf); err != nil {
		return nil, err
	}

	w := &World{
		Catalog:                NewMemCatalog(),
		Roots:                  wf.Roots,
		Previous:               wf.Previous,
		Upgrade:                wf.Upgrade,
		AnticipatedPrereleases: wf.AnticipatedPrereleases,
	}
	for _, p := range wf.Packages {
		if err := checkName(p.Name); err != nil {
			return nil, err
		}
		if _, err := semver.NewVersion(p.Version); err != nil {
			return nil, errors.Wrapf(err, "package %s: bad version %q", p.Name, p.Version)
		}
		deps := make([]Dependency, 0, len(p.Dependencies))
		for _, d := range p.Dependencies {
			if err := checkName(d.Name); err != nil {
				return nil, err
			}
			vc, err := version.NewConstraint(d.Constraint)
			if err != nil {
				return nil, errors.Wrapf(err, "package %s %s: bad range %q for dependency %s",
					p.Name, p.Version, d.Constraint, d.Name)
			}
			deps = append(deps, Dependency{Package: d.Name, Constraint: vc, Weak: d.Weak})
		}
		w.Catalog.AddVersion(p.Name, p.Version, deps...)
	}
	for _, c := range wf.Constraints {
		if err := checkName(c.Name); err != nil {
			return nil, err
		}
		vc, err := version.NewConstraint(c.Constraint)
		if err != nil {
			return nil, errors.Wrapf(err, "constraint on %s: bad range %q", c.Name, c.Constraint)
		}
		w.Constraints = append(w.Constraints, RootConstraint{Package: c.Name, Constraint: vc})
	}
	for p, v := range wf.Previous {
		if _, err := semver.NewVersion(v); err != nil {
			return nil, errors.Wrapf(err, "previous solution: bad version %q for %s", v, p)
		}
	}
	return w, nil
}

func checkName(name string) error {
	if name == "" {
		return errors.New("empty package name")
	}
	if strings.Contains(name, " ") {
		return errors.Errorf("package name %q contains a space", name)
	}
	return nil
}
