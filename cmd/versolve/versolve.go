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
	"os"

	"github.com/Masterminds/log-go"
	logcli "github.com/Masterminds/log-go/impl/cli"
	loglrs "github.com/Masterminds/log-go/impl/logrus"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/solverworks/versolve/pkg/cli"
)

var settings = cli.New()

var red = color.New(color.FgRed).SprintFunc()

func main() {
	cmd := newRootCmd(os.Args[1:])

	if settings.NoColors {
		color.NoColor = true // disable colorized output
	}

	if settings.JSONLogs {
		l := logrus.New()
		l.SetFormatter(&logrus.JSONFormatter{})
		if settings.Debug {
			l.SetLevel(logrus.DebugLevel)
		}
		log.Current = loglrs.New(l)
	} else {
		logger := logcli.NewStandard()
		if settings.Debug {
			logger.Level = log.DebugLevel
		}
		log.Current = logger
	}

	if err := cmd.Execute(); err != nil {
		log.Error(red(err.Error()))
		os.Exit(1)
	}
}
