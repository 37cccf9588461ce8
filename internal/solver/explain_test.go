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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solverworks/versolve/internal/catalog"
)

func TestExplainPrefersShortPaths(t *testing.T) {
	is := assert.New(t)

	// leaf's requirer is wanted both directly by the root and through a
	// detour; only the short explanation survives the shortest-so-far bound
	cat := catalog.NewMemCatalog()
	cat.AddVersion("root", "1.0.0", dep("direct", "^1.0.0"), dep("detour", "^1.0.0"))
	cat.AddVersion("direct", "1.0.0", dep("leaf", "=2.0.0"))
	cat.AddVersion("detour", "1.0.0", dep("direct", "^1.0.0"))
	cat.AddVersion("leaf", "1.0.0")

	_, err := Solve(&Input{Dependencies: []string{"root"}, Catalog: cat}, Options{})
	is.Error(err)
	is.Contains(err.Error(), "conflict: constraint leaf@=2.0.0 is not satisfied by leaf 1.0.0.")
	is.Contains(err.Error(), "* leaf@=2.0.0 <- direct 1.0.0 <- root 1.0.0")
	is.NotContains(err.Error(), "<- direct 1.0.0 <- detour 1.0.0")
}

func TestExplainWeakRequirerAppearsInPaths(t *testing.T) {
	is := assert.New(t)

	// weak dependencies still yield constraints, so the weak requirer's
	// constraint is listed with its path back to the root
	cat := catalog.NewMemCatalog()
	cat.AddVersion("root", "1.0.0", dep("puller", "^1.0.0"), dep("leaf", "=2.0.0"))
	cat.AddVersion("puller", "1.0.0", weakDep("leaf", ">=1.0.0"))
	cat.AddVersion("leaf", "1.0.0")

	_, err := Solve(&Input{Dependencies: []string{"root"}, Catalog: cat}, Options{})
	is.Error(err)
	is.Contains(err.Error(), "* leaf@=2.0.0 <- root 1.0.0")
	is.Contains(err.Error(), "* leaf@>=1.0.0 <- puller 1.0.0 <- root 1.0.0")
}
