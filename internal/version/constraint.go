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

package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Constraint is a version range together with its original textual form.
// The raw string identifies the constraint: two constraints with equal raw
// strings are interchangeable, which callers rely on for memoization.
type Constraint struct {
	raw   string
	check *semver.Constraints
}

// NewConstraint parses a semver range ("^1.2.0", ">=2.0.0 <3.0.0", ...).
func NewConstraint(raw string) (*Constraint, error) {
	c, err := semver.NewConstraint(raw)
	if err != nil {
		return nil, err
	}
	return &Constraint{raw: raw, check: c}, nil
}

// MustConstraint is like NewConstraint but panics on a malformed range.
func MustConstraint(raw string) *Constraint {
	c, err := NewConstraint(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Raw returns the range as it was written.
func (c *Constraint) Raw() string {
	return c.raw
}

// Satisfies reports whether version v is inside the range. Versions that do
// not parse as semver satisfy nothing.
func (c *Constraint) Satisfies(v string) bool {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return c.check.Check(sv)
}

// IsPrerelease reports whether v carries a prerelease tag.
func IsPrerelease(v string) bool {
	return strings.Contains(v, "-")
}
