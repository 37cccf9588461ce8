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

// step is one cost axis of the lexicographic objective: a weighted sum of
// atoms, minimized once, its optimum then locked for all later steps.
type step struct {
	name    string
	terms   []string
	weights []int
	optimum int
}

func (r *run) newStep(name string) *step {
	st := &step{name: name}
	r.steps[name] = st
	return st
}

// addTerm records a cost of w for term being true. Zero-weight terms are
// dropped.
func (st *step) addTerm(term string, w int) {
	if w == 0 {
		return
	}
	st.terms = append(st.terms, term)
	st.weights = append(st.weights, w)
}
