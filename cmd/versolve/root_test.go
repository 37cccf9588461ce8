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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd(t *testing.T) {
	tests := []struct {
		name, args string
	}{
		{
			name: "defaults",
			args: "", // run default without any arguments
		},
		{
			name: "help",
			args: "help",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := executeCommandC(tt.args); err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
		})
	}
}

func TestVersionCmd(t *testing.T) {
	is := assert.New(t)

	_, out, err := executeCommandC("version --short")
	is.NoError(err)
	is.Contains(out, "v0.1.0")
}
