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
	"github.com/spf13/cobra"

	"github.com/sat-pm/satpm/pkg/action"
	"github.com/sat-pm/satpm/pkg/eyecandy"
)

var removeDesc = `remove installed packages matching the given specs`

func newRemoveCmd(actionConfig *action.Configuration, logger log.Logger) *cobra.Command {
	client := action.NewRemove(actionConfig)

	cmd := &cobra.Command{
		Use:   "remove PACKAGE...",
		Short: "remove packages",
		Long:  removeDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doomed, err := client.Run(logger, args)
			if err != nil {
				return err
			}
			for _, p := range doomed {
				if client.DryRun {
					logger.Info(eyecandy.ESPrintf(settings.NoEmojis, ":fire: would remove %s", p.GetFingerPrint()))
					continue
				}
				logger.Info(eyecandy.ESPrintf(settings.NoEmojis, ":fire: removed %s", p.GetFingerPrint()))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&client.DryRun, "dry-run", false, "show what would be removed without removing it")

	return cmd
}
