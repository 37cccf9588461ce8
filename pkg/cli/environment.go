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

// Package cli holds the environment settings of the versolve command:
// values read from VERSOLVE_* variables and overridable by flags.
package cli

import (
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

type EnvSettings struct {
	// Debug enables verbose logging.
	Debug bool
	// NoColors disables colorized output.
	NoColors bool
	// NoEmojis strips emojis from messages.
	NoEmojis bool
	// JSONLogs switches logging to the JSON formatter.
	JSONLogs bool
}

func New() *EnvSettings {
	return &EnvSettings{
		Debug:    envBool("VERSOLVE_DEBUG"),
		NoColors: envBool("VERSOLVE_NOCOLORS"),
		NoEmojis: envBool("VERSOLVE_NOEMOJIS"),
		JSONLogs: envBool("VERSOLVE_JSONLOGS"),
	}
}

// AddFlags binds the settings to a flag set.
func (s *EnvSettings) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&s.Debug, "debug", s.Debug, "enable verbose output")
	fs.BoolVar(&s.NoColors, "no-colors", s.NoColors, "disable colorized output")
	fs.BoolVar(&s.NoEmojis, "no-emojis", s.NoEmojis, "disable emojis in output")
	fs.BoolVar(&s.JSONLogs, "json-logs", s.JSONLogs, "log in JSON format")
}

// EnvVars lists the environment variables the settings read, with their
// current values.
func (s *EnvSettings) EnvVars() map[string]string {
	return map[string]string{
		"VERSOLVE_DEBUG":    strconv.FormatBool(s.Debug),
		"VERSOLVE_NOCOLORS": strconv.FormatBool(s.NoColors),
		"VERSOLVE_NOEMOJIS": strconv.FormatBool(s.NoEmojis),
		"VERSOLVE_JSONLOGS": strconv.FormatBool(s.JSONLogs),
	}
}

func envBool(name string) bool {
	b, _ := strconv.ParseBool(os.Getenv(name))
	return b
}
