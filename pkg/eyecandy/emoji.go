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

/*Package eyecandy renders the solver CLI's status lines, decorated with an
emoji or kept plain when the terminal should stay boring.
*/
package eyecandy

import (
	"fmt"

	"github.com/kyokomi/emoji/v2"
)

// Decorator renders user-facing status lines of the solver.
type Decorator struct {
	disabled bool
}

// NewDecorator returns a Decorator. A disabled one emits plain text.
func NewDecorator(disabled bool) Decorator {
	return Decorator{disabled: disabled}
}

// Status formats a message and decorates it with the given emoji code.
func (d Decorator) Status(code, format string, v ...interface{}) string {
	msg := fmt.Sprintf(format, v...)
	if d.disabled {
		return msg
	}
	return emoji.Sprint(msg + " " + code)
}

// Solved announces a successful solve of n packages.
func (d Decorator) Solved(n int) string {
	if n == 1 {
		return d.Status(":sparkles:", "Solved, 1 package selected!")
	}
	return d.Status(":sparkles:", "Solved, %d packages selected!", n)
}

// PrereleaseNote warns that the answer had to pick prereleases nobody
// anticipated.
func (d Decorator) PrereleaseNote() string {
	return d.Status(":warning:", "Note: unanticipated prereleases were needed.")
}
