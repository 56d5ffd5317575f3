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
	"fmt"

	"github.com/Masterminds/log-go"
	logio "github.com/Masterminds/log-go/io"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/sat-pm/satpm/pkg/action"
)

var listDesc = `
This command lists the packages known to the index. Without arguments every
package name is shown with its latest version; specs narrow the listing to
matching packages.
`

func newListCmd(actionConfig *action.Configuration, logger log.Logger) *cobra.Command {
	client := action.NewList(actionConfig)

	cmd := &cobra.Command{
		Use:   "list [PACKAGE...]",
		Short: "list known packages",
		Long:  listDesc,
		RunE: func(_ *cobra.Command, args []string) error {
			entries, err := client.Run(args)
			if err != nil {
				return err
			}

			wInfo := logio.NewWriter(logger, log.InfoLevel)
			if len(entries) == 0 {
				logger.Info("No packages known")
				return nil
			}

			table := uitable.New()
			table.AddRow("NAME", "VERSION", "DESCRIPTION")
			for _, e := range entries {
				version := e.Pkg.Version.String()
				if e.Older > 0 {
					version = fmt.Sprintf("%s (+%d older)", version, e.Older)
				}
				table.AddRow(e.Pkg.Name, version, e.Pkg.Description)
			}
			_, err = wInfo.Write(append(table.Bytes(), '\n'))
			return err
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&client.All, "all", "a", false, "show every known version, not only the latest")

	return cmd
}
