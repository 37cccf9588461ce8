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
	"bytes"
	"testing"

	"github.com/Masterminds/log-go"
	logcli "github.com/Masterminds/log-go/impl/cli"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/solverworks/versolve/pkg/cli"
)

// cmdTestCase describes one command-line invocation and what its captured
// output and error should look like.
type cmdTestCase struct {
	name        string
	cmd         string
	wantError   bool
	contains    []string
	notContains []string
	errContains []string
}

func runCmdTests(t *testing.T, tests []cmdTestCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := assert.New(t)
			_, out, err := executeCommandC(tt.cmd)
			if tt.wantError {
				is.Error(err)
			} else {
				is.NoError(err)
			}
			for _, want := range tt.contains {
				is.Contains(out, want)
			}
			for _, not := range tt.notContains {
				is.NotContains(out, not)
			}
			for _, want := range tt.errContains {
				if is.Error(err) {
					is.Contains(err.Error(), want)
				}
			}
		})
	}
}

// executeCommandC runs a full command line against a fresh root command.
// Everything the commands print goes through the logger, so a buffer-backed
// CLI logger is installed for the duration of the call.
func executeCommandC(cmd string) (*cobra.Command, string, error) {
	args, err := shellwords.Parse(cmd)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	logger := logcli.NewStandard()
	logger.InfoOut = buf
	logger.WarnOut = buf
	logger.ErrorOut = buf
	logger.DebugOut = buf
	oldLogger := log.Current
	log.Current = logger
	defer func() {
		log.Current = oldLogger
		settings = cli.New()
	}()

	root := newRootCmd(args)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	c, err := root.ExecuteC()
	return c, buf.String(), err
}
