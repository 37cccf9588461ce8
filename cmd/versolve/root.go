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
	"errors"
	"os"

	"github.com/Masterminds/log-go"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var globalUsage = `Usage: versolve command

A package-version dependency solver.
`

func newRootCmd(args []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "versolve",
		Short:         "A package-version dependency solver",
		Long:          globalUsage,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	settings.AddFlags(flags)

	cmd.AddCommand(
		newSolveCmd(),
		newVersionCmd(),
	)

	// settings must be live before Execute, so parse the persistent flags
	// now and let cobra reparse them later
	flags.ParseErrorsWhitelist.UnknownFlags = true
	err := flags.Parse(args)

	if err != nil && !errors.Is(err, pflag.ErrHelp) {
		log.Errorf("failed while parsing flags for %s: %s", args, err)

		os.Exit(1)
	}

	return cmd
}
