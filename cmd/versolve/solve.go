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
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"

	"github.com/Masterminds/log-go"
	logio "github.com/Masterminds/log-go/io"
	"github.com/gofrs/flock"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/solverworks/versolve/internal/catalog"
	"github.com/solverworks/versolve/internal/solver"
	"github.com/solverworks/versolve/pkg/eyecandy"
)

const solveDesc = `
This command solves the dependency problem described by a world file.

A world file lists the package catalog (every known version of every
package, with its dependency ranges), the root dependencies, optional
top-level constraints, an optional previous solution and the packages to
upgrade. The solver picks exactly one version per reachable package,
preferring the previous solution, refusing breaking changes to roots
unless told otherwise, avoiding unexpected prereleases and keeping the
dependency tree small.

With --lock-file, the previous solution is read from the given file when
the world has none, and the answer is written back to it.
`

type solveOptions struct {
	output                  string
	lockFile                string
	upgrade                 []string
	allAnswers              bool
	allowIncompatibleUpdate bool
}

// solution is the marshalled shape of a solve, for yaml and json output.
type solution struct {
	Answer                   map[string]string   `json:"answer" yaml:"answer"`
	UnanticipatedPrereleases bool                `json:"neededToUseUnanticipatedPrereleases" yaml:"neededToUseUnanticipatedPrereleases"`
	AllAnswers               []map[string]string `json:"allAnswers,omitempty" yaml:"allAnswers,omitempty"`
}

func newSolveCmd() *cobra.Command {
	o := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve WORLD",
		Short: "solve the dependency problem in a world file",
		Long:  solveDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return o.run(args[0])
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "table",
		"prints the output in the specified format. Allowed values: table, yaml, json")
	f.StringVar(&o.lockFile, "lock-file", "",
		"read the previous solution from, and write the answer to, this file")
	f.StringSliceVar(&o.upgrade, "upgrade", nil,
		"packages to upgrade, in addition to the world file's upgrade list")
	f.BoolVar(&o.allAnswers, "all-answers", false,
		"enumerate every solution that is as good as the answer")
	f.BoolVar(&o.allowIncompatibleUpdate, "allow-incompatible-update", false,
		"allow breaking changes to top-level dependencies")
	return cmd
}

func (o *solveOptions) run(worldPath string) error {
	w, err := catalog.LoadWorld(worldPath)
	if err != nil {
		return err
	}

	in := &solver.Input{
		Dependencies:            w.Roots,
		Catalog:                 w.Catalog,
		Previous:                w.Previous,
		Upgrade:                 append(w.Upgrade, o.upgrade...),
		AnticipatedPrereleases:  w.AnticipatedPrereleases,
		AllowIncompatibleUpdate: o.allowIncompatibleUpdate,
	}
	for _, c := range w.Constraints {
		in.Constraints = append(in.Constraints, solver.PkgConstraint{
			Package:    c.Package,
			Constraint: c.Constraint,
		})
	}
	if o.lockFile != "" && len(in.Previous) == 0 {
		prev, err := readLockFile(o.lockFile)
		if err != nil {
			return err
		}
		in.Previous = prev
	}

	res, err := solver.Solve(in, solver.Options{
		AllAnswers: o.allAnswers,
		Nudge:      func() { log.Debug("still solving...") },
	})
	if err != nil {
		return err
	}

	candy := eyecandy.NewDecorator(settings.NoEmojis)
	wInfo := logio.NewWriter(log.Current, log.InfoLevel)
	if err := o.write(wInfo, res, candy); err != nil {
		return err
	}

	if o.lockFile != "" {
		if err := writeLockFile(o.lockFile, res.Answer); err != nil {
			return err
		}
	}
	log.Info(candy.Solved(len(res.Answer)))
	return nil
}

func (o *solveOptions) write(w io.Writer, res *solver.Result, candy eyecandy.Decorator) error {
	sol := solution{
		Answer:                   res.Answer,
		UnanticipatedPrereleases: res.NeededToUseUnanticipatedPrereleases,
		AllAnswers:               res.AllAnswers,
	}
	switch o.output {
	case "table":
		table := uitable.New()
		table.AddRow("PACKAGE", "VERSION")
		for _, p := range sortedPackages(res.Answer) {
			table.AddRow(p, res.Answer[p])
		}
		fmt.Fprintln(w, table)
		if res.NeededToUseUnanticipatedPrereleases {
			fmt.Fprintln(w, candy.PrereleaseNote())
		}
		if len(res.AllAnswers) > 1 {
			fmt.Fprintf(w, "%d equally good solutions exist.\n", len(res.AllAnswers))
		}
		return nil
	case "yaml":
		out, err := yaml.Marshal(sol)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "json":
		out, err := json.Marshal(sol)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	return errors.Errorf("unknown output format %q", o.output)
}

func readLockFile(path string) (map[string]string, error) {
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading lock file")
	}
	var prev map[string]string
	if err := yaml.Unmarshal(data, &prev); err != nil {
		return nil, errors.Wrapf(err, "parsing lock file %q", path)
	}
	return prev, nil
}

func writeLockFile(path string, answer map[string]string) error {
	fl := flock.New(path + ".lck")
	locked, err := fl.TryLock()
	if err != nil {
		return errors.Wrap(err, "locking lock file")
	}
	if !locked {
		return errors.Errorf("lock file %s is held by another process", path)
	}
	defer func() {
		_ = fl.Unlock()
	}()

	data, err := yaml.Marshal(answer)
	if err != nil {
		return err
	}
	return errors.Wrap(ioutil.WriteFile(path, data, 0644), "writing lock file")
}

func sortedPackages(answer map[string]string) []string {
	pkgs := make([]string, 0, len(answer))
	for p := range answer {
		pkgs = append(pkgs, p)
	}
	sort.Strings(pkgs)
	return pkgs
}
