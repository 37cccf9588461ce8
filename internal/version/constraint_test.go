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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraint(t *testing.T) {
	for _, tcase := range []struct {
		name      string
		rng       string
		version   string
		satisfies bool
	}{
		{name: "caret inside", rng: "^1.0.0", version: "1.2.3", satisfies: true},
		{name: "caret outside", rng: "^1.0.0", version: "2.0.0", satisfies: false},
		{name: "exact match", rng: "=2.0.0", version: "2.0.0", satisfies: true},
		{name: "exact mismatch", rng: "=2.0.0", version: "2.0.1", satisfies: false},
		{name: "tilde", rng: "~0.1.0", version: "0.1.100", satisfies: true},
		{name: "range", rng: ">=1.0.0 <2.0.0", version: "1.9.9", satisfies: true},
		{name: "garbage version", rng: "^1.0.0", version: "not-a-version", satisfies: false},
		{name: "prerelease excluded by release range", rng: "^1.0.0", version: "1.2.0-beta", satisfies: false},
	} {
		t.Run(tcase.name, func(t *testing.T) {
			is := assert.New(t)
			c, err := NewConstraint(tcase.rng)
			is.NoError(err)
			is.Equal(tcase.rng, c.Raw())
			is.Equal(tcase.satisfies, c.Satisfies(tcase.version))
		})
	}
}

func TestNewConstraintRejectsGarbage(t *testing.T) {
	_, err := NewConstraint("><nope")
	assert.Error(t, err)
}

func TestIsPrerelease(t *testing.T) {
	is := assert.New(t)
	is.True(IsPrerelease("1.0.0-beta"))
	is.False(IsPrerelease("1.0.0"))
	is.False(IsPrerelease("1.0.0+build"))
}
