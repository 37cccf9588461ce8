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

import "strings"

// PkgVersion identifies one version of one package.
type PkgVersion struct {
	Package string
	Version string
}

// Atom returns the boolean-variable name for the pair, "<package> <version>".
// Package names never contain spaces, so the encoding is injective and a
// name with a space is always a package-version atom.
func (pv PkgVersion) Atom() string {
	return pv.Package + " " + pv.Version
}

func (pv PkgVersion) String() string {
	return pv.Package + " " + pv.Version
}

// parseAtom recovers a PkgVersion from a variable name. Package atoms and
// conflict markers contain no space and are rejected.
func parseAtom(name string) (PkgVersion, bool) {
	i := strings.IndexByte(name, ' ')
	if i < 0 {
		return PkgVersion{}, false
	}
	return PkgVersion{Package: name[:i], Version: name[i+1:]}, true
}
