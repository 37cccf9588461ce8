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

package sat

import "sort"

// Assignment is a model found by the solver, binding every named variable
// interned at the time of the solve. Variables never mentioned in any
// constraint evaluate to false.
type Assignment struct {
	model map[string]bool
}

// Evaluate returns the binding of variable v.
func (a *Assignment) Evaluate(v string) bool {
	return a.model[v]
}

// TrueVars returns the names of all true variables, sorted.
func (a *Assignment) TrueVars() []string {
	var vars []string
	for v, b := range a.model {
		if b {
			vars = append(vars, v)
		}
	}
	sort.Strings(vars)
	return vars
}

// WeightedSum evaluates sum of weights_i * terms_i under the assignment.
func (a *Assignment) WeightedSum(terms []string, weights []int) int {
	sum := 0
	for i, t := range terms {
		if a.model[t] {
			sum += weights[i]
		}
	}
	return sum
}
