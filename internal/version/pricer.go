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
	"sort"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// Mode selects the direction version costs are counted in.
type Mode int

const (
	// ModeUpdate makes the newest version the cheapest on every component.
	ModeUpdate Mode = iota
	// ModeGravityWithPatches makes the oldest major and minor the cheapest
	// while still preferring the newest patch within a minor series.
	ModeGravityWithPatches
)

// Partition splits a version list relative to a previous version.
type Partition struct {
	Older       []string
	Compatible  []string
	HigherMajor []string
}

// PriceVersions computes four equal-length cost vectors
// [major, minor, patch, rest] for the given versions. Costs are ranks among
// the distinct component values present, counted from the preferred end, so
// the preferred version of a component costs 0. Versions must parse as
// semver; the caller validates catalog input.
func PriceVersions(versions []string, mode Mode) (major, minor, patch, rest []int) {
	parsed := parseAll(versions)
	switch mode {
	case ModeUpdate:
		return rankCosts(parsed, true, true, true, true)
	case ModeGravityWithPatches:
		return rankCosts(parsed, false, false, true, true)
	}
	panic("unknown pricing mode")
}

// PartitionVersions classifies versions against a previous version:
// strictly older, same major and not older (compatible), or higher major.
func PartitionVersions(versions []string, prev string) Partition {
	pv := semver.MustParse(prev)
	var part Partition
	for _, v := range versions {
		sv := semver.MustParse(v)
		switch {
		case sv.LessThan(pv):
			part.Older = append(part.Older, v)
		case sv.Major() > pv.Major():
			part.HigherMajor = append(part.HigherMajor, v)
		default:
			part.Compatible = append(part.Compatible, v)
		}
	}
	return part
}

// PriceVersionsWithPrevious computes five equal-length cost vectors
// [incompat, major, minor, patch, rest] anchored at a previous version.
// Compatible versions cost 0 on incompat and are priced closest-to-prev
// first, so prev itself costs 0 on every component. Older versions are
// priced newest first, higher majors lowest first; both cost 1 on incompat.
func PriceVersionsWithPrevious(versions []string, prev string) (incompat, major, minor, patch, rest []int) {
	pv := semver.MustParse(prev)
	n := len(versions)
	incompat = make([]int, n)
	major = make([]int, n)
	minor = make([]int, n)
	patch = make([]int, n)
	rest = make([]int, n)

	// group indexes by partition
	var older, compat, higher []int
	for i, v := range versions {
		sv := semver.MustParse(v)
		switch {
		case sv.LessThan(pv):
			older = append(older, i)
			incompat[i] = 1
		case sv.Major() > pv.Major():
			higher = append(higher, i)
			incompat[i] = 1
		default:
			compat = append(compat, i)
		}
	}

	price := func(idx []int, newest bool) {
		if len(idx) == 0 {
			return
		}
		sub := make([]*semver.Version, len(idx))
		for j, i := range idx {
			sub[j] = semver.MustParse(versions[i])
		}
		ma, mi, pa, re := rankCosts(sub, newest, newest, newest, newest)
		for j, i := range idx {
			major[i], minor[i], patch[i], rest[i] = ma[j], mi[j], pa[j], re[j]
		}
	}
	price(older, true)   // among too-old versions, prefer the newest
	price(compat, false) // among compatible versions, stay close to prev
	price(higher, false) // among higher majors, take the smallest jump
	return incompat, major, minor, patch, rest
}

func parseAll(versions []string) []*semver.Version {
	parsed := make([]*semver.Version, len(versions))
	for i, v := range versions {
		parsed[i] = semver.MustParse(v)
	}
	return parsed
}

// rankCosts prices each component as the rank of its value among the
// distinct values sharing the enclosing components. A true flag counts that
// component newest-first.
func rankCosts(vs []*semver.Version, newMajor, newMinor, newPatch, newRest bool) (major, minor, patch, rest []int) {
	major = ranks(vs, func(v *semver.Version) string { return "" },
		(*semver.Version).Major, nil, newMajor)
	minor = ranks(vs, majorKey,
		(*semver.Version).Minor, nil, newMinor)
	patch = ranks(vs, minorKey,
		(*semver.Version).Patch, nil, newPatch)
	rest = ranks(vs, patchKey,
		nil, (*semver.Version).LessThan, newRest)
	return major, minor, patch, rest
}

func majorKey(v *semver.Version) string { return strconv.FormatUint(v.Major(), 10) }
func minorKey(v *semver.Version) string {
	return majorKey(v) + "." + strconv.FormatUint(v.Minor(), 10)
}
func patchKey(v *semver.Version) string {
	return minorKey(v) + "." + strconv.FormatUint(v.Patch(), 10)
}

// ranks groups versions by groupKey, orders the distinct component values of
// each group, and returns for every version the position of its value in its
// group's ordering. Either num or less selects the component.
func ranks(vs []*semver.Version, groupKey func(*semver.Version) string,
	num func(*semver.Version) uint64, less func(a, b *semver.Version) bool,
	newestFirst bool) []int {

	type member struct {
		idx int
		v   *semver.Version
	}
	groups := make(map[string][]member)
	var order []string
	for i, v := range vs {
		k := groupKey(v)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], member{i, v})
	}

	out := make([]int, len(vs))
	for _, k := range order {
		ms := groups[k]
		if num != nil {
			var vals []uint64
			seen := make(map[uint64]bool)
			for _, m := range ms {
				if !seen[num(m.v)] {
					seen[num(m.v)] = true
					vals = append(vals, num(m.v))
				}
			}
			sort.Slice(vals, func(i, j int) bool {
				if newestFirst {
					return vals[i] > vals[j]
				}
				return vals[i] < vals[j]
			})
			rank := make(map[uint64]int, len(vals))
			for r, val := range vals {
				rank[val] = r
			}
			for _, m := range ms {
				out[m.idx] = rank[num(m.v)]
			}
		} else {
			// full-precedence ranking for the prerelease tail
			sorted := make([]member, len(ms))
			copy(sorted, ms)
			sort.Slice(sorted, func(i, j int) bool {
				if newestFirst {
					return less(sorted[j].v, sorted[i].v)
				}
				return less(sorted[i].v, sorted[j].v)
			})
			r := 0
			for i, m := range sorted {
				if i > 0 && !sorted[i-1].v.Equal(m.v) {
					r++
				}
				out[m.idx] = r
			}
		}
	}
	return out
}
