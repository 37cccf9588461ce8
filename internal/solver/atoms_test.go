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
)

func TestAtomRoundTrip(t *testing.T) {
	is := assert.New(t)

	pv := PkgVersion{Package: "lib", Version: "1.0.0-beta+build"}
	is.Equal("lib 1.0.0-beta+build", pv.Atom())

	parsed, ok := parseAtom(pv.Atom())
	is.True(ok)
	is.Equal(pv, parsed)
}

func TestParseAtomRejectsPlainNames(t *testing.T) {
	is := assert.New(t)

	_, ok := parseAtom("lib")
	is.False(ok)
	_, ok = parseAtom("conflict#12")
	is.False(ok)
}
