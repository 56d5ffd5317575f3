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
	stderrors "errors"
	"os"

	"github.com/Masterminds/log-go"
	logcli "github.com/Masterminds/log-go/impl/cli"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sat-pm/satpm/pkg/action"
)

var globalUsage = `Usage: satpm command

A package manager that resolves dependencies with a SAT solver.
`

func newRootCmd(logger log.Logger, args []string) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:          "satpm",
		Short:        "A package manager that resolves dependencies with a SAT solver",
		Long:         globalUsage,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	settings.AddFlags(flags)

	// flags must be parsed before the action configuration reads the
	// settings, so --cache-dir and friends take effect
	flags.ParseErrorsWhitelist.UnknownFlags = true
	if err := flags.Parse(args); err != nil && !stderrors.Is(err, pflag.ErrHelp) {
		log.Errorf("failed while parsing flags for %s: %s", args, err)
		os.Exit(1)
	}

	if settings.NoColors {
		color.NoColor = true // disable colorized output
	}
	if settings.Debug {
		if std, ok := logger.(*logcli.Logger); ok {
			std.Level = log.DebugLevel
		}
	}

	actionConfig, err := action.NewConfiguration(settings)
	if err != nil {
		return nil, err
	}

	cmd.AddCommand(
		newInstallCmd(actionConfig, logger),
		newRemoveCmd(actionConfig, logger),
		newListCmd(actionConfig, logger),
		newSearchCmd(actionConfig, logger),
		newVersionCmd(logger),
	)

	return cmd, nil
}
