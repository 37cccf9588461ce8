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

package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func TestEnvSettings(t *testing.T) {
	tests := []struct {
		name string

		args    string
		envvars map[string]string

		debug    bool
		noColors bool
		jsonLogs bool
	}{
		{
			name: "defaults",
		},
		{
			name:     "with flags set",
			args:     "--debug --no-colors --json-logs",
			debug:    true,
			noColors: true,
			jsonLogs: true,
		},
		{
			name:     "with envvars set",
			envvars:  map[string]string{"VERSOLVE_DEBUG": "true", "VERSOLVE_NOCOLORS": "true"},
			debug:    true,
			noColors: true,
		},
		{
			name:     "flags win over envvars",
			args:     "--debug --no-colors",
			envvars:  map[string]string{"VERSOLVE_DEBUG": "false", "VERSOLVE_NOCOLORS": "false"},
			debug:    true,
			noColors: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer resetEnv()()

			for k, v := range tt.envvars {
				os.Setenv(k, v)
			}

			flags := pflag.NewFlagSet("testing", pflag.ContinueOnError)

			settings := New()
			settings.AddFlags(flags)
			err := flags.Parse(strings.Fields(tt.args))

			is := assert.New(t)
			is.NoError(err)
			is.Equal(tt.debug, settings.Debug)
			is.Equal(tt.noColors, settings.NoColors)
			is.Equal(tt.jsonLogs, settings.JSONLogs)
		})
	}
}

func resetEnv() func() {
	origEnv := os.Environ()

	// ensure any local envvars do not hose us
	for e := range New().EnvVars() {
		os.Unsetenv(e)
	}

	return func() {
		for _, pair := range origEnv {
			kv := strings.SplitN(pair, "=", 2)
			os.Setenv(kv[0], kv[1])
		}
	}
}
