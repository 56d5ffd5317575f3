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
	"github.com/Masterminds/log-go"
	logio "github.com/Masterminds/log-go/io"
	"github.com/spf13/cobra"

	"github.com/sat-pm/satpm/pkg/action"
	"github.com/sat-pm/satpm/pkg/eyecandy"
)

const installDesc = `
This command resolves the given package specs against the package index and
installs the resulting set.

A spec is a package name, optionally followed by a version constraint:

    satpm install redis
    satpm install 'redis>=6.0.0' 'nginx^1.20.0'

The resolver picks one version per package so that every requested spec and
every dependency of every picked package is satisfied. When no such set
exists, the command fails and nothing is installed.
`

func newInstallCmd(actionConfig *action.Configuration, logger log.Logger) *cobra.Command {
	client := action.NewInstall(actionConfig)
	var outfmt outputFormat

	cmd := &cobra.Command{
		Use:   "install PACKAGE...",
		Short: "resolve and install packages",
		Long:  installDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			resolved, err := client.Run(logger, args)
			if err != nil {
				return err
			}

			wInfo := logio.NewWriter(logger, log.InfoLevel)
			if err := writePackages(wInfo, outfmt, resolved); err != nil {
				return err
			}
			if client.DryRun {
				logger.Info(eyecandy.ESPrintf(settings.NoEmojis, ":detective: dry run, %d package(s) would be installed", len(resolved)))
				return nil
			}
			logger.Info(eyecandy.ESPrint(settings.NoEmojis, "Done! :clapping_hands:"))
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&client.DryRun, "dry-run", false, "resolve the package set without installing it")
	bindOutputFlag(cmd, &outfmt)

	return cmd
}
