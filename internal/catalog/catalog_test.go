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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solverworks/versolve/internal/version"
)

func TestMemCatalog(t *testing.T) {
	is := assert.New(t)

	c := NewMemCatalog()
	c.AddVersion("foo", "1.0.0")
	c.AddVersion("foo", "1.1.0",
		Dependency{Package: "bar", Constraint: version.MustConstraint("^2.0.0")})
	c.AddVersion("bar", "2.0.0")

	is.Equal([]string{"1.0.0", "1.1.0"}, c.VersionsOf("foo"))
	is.Empty(c.VersionsOf("nope"))
	is.Empty(c.DependenciesOf("foo", "1.0.0"))

	deps := c.DependenciesOf("foo", "1.1.0")
	is.Len(deps, 1)
	is.Equal("bar", deps[0].Package)
	is.False(deps[0].Weak)
}

func TestMemCatalogReaddReplacesDeps(t *testing.T) {
	is := assert.New(t)

	c := NewMemCatalog()
	c.AddVersion("foo", "1.0.0",
		Dependency{Package: "bar", Constraint: version.MustConstraint("^1.0.0")})
	c.AddVersion("foo", "1.0.0")

	is.Equal([]string{"1.0.0"}, c.VersionsOf("foo"))
	is.Empty(c.DependenciesOf("foo", "1.0.0"))
}
