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

/*
Package solver picks one version for every reachable package of a dependency
catalog so that all constraints hold and the choice is optimal under an
ordered list of preferences.

Given root dependencies, top-level constraints, a catalog of package
versions and their dependency lists, an optional previous solution and a set
of packages to upgrade, a solve proceeds as:

 1. Prune each constrained package's candidate versions by the top-level
    constraints. An emptied candidate list is an immediate error.

 2. Analyze: triage roots (unknown roots error out, previous versions of
    known non-upgrading roots are remembered), walk strong dependencies from
    the roots visiting every version of every reachable package, track
    unknown packages together with the package versions that want them, and
    collect one constraint record per top-level pin and per dependency
    with a known target of every version of every reachable package.

 3. Encode: one boolean atom per package ("some version selected"), one per
    package version, one waiver atom per constraint. Clauses say that roots
    are present, that at most one version of a package is selected, that a
    package atom is equivalent to the disjunction of its version atoms, that
    a strong dependency forces its target package, and that each constraint
    either holds, or its source version is unselected, or its waiver atom is
    true.

 4. Optimize lexicographically with the gophersat pseudo-boolean backend:
    fewest unknown packages, fewest waived constraints, fewest unanticipated
    prereleases, no breaking changes to previously installed roots (an error
    when one would be forced and incompatible updates are not allowed),
    newest versions for packages being upgraded, closeness to the previous
    solution for everything else that had a version, newest versions for new
    roots, oldest-but-patched versions for new indirect packages, and
    finally the fewest packages overall. Each step's optimum is pinned
    before the next step runs.

 5. Decode the final model into a package-to-version map, or explain what
    went wrong: unknown packages list their requirers, waived constraints
    produce conflict messages with reverse dependency paths from the roots.

The solver is synchronous and keeps no state across invocations. A nudge
callback can be supplied to regain control between backend solves during
long minimizations.
*/
package solver
