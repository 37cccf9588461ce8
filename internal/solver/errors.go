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
	"fmt"
	"strings"
)

// SolverError is the one error kind user input can produce. It carries
// every reason accumulated during the solve, newline-joined.
type SolverError struct {
	Reasons []string
}

func (e *SolverError) Error() string {
	return strings.Join(e.Reasons, "\n")
}

// InternalError reports a broken solver invariant. It signals a defect in
// the solver, not bad input.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "internal solver error: " + e.Msg
}

func internalErrorf(format string, args ...interface{}) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}
