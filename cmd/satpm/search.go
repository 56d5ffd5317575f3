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
	"github.com/sat-pm/satpm/pkg/search"
)

const searchDesc = `
Search the package index for packages whose name or description matches the
given keywords. Keywords are matched as case-insensitive substrings unless
--regexp is given.
`

func newSearchCmd(actionConfig *action.Configuration, logger log.Logger) *cobra.Command {
	o := &search.Options{}

	cmd := &cobra.Command{
		Use:   "search KEYWORD...",
		Short: "search packages by keyword",
		Long:  searchDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := actionConfig.Repository.UpdateIndex(); err != nil {
				return err
			}
			return o.Run(logger, actionConfig.Repository, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&o.Regexp, "regexp", "r", false, "use regular expressions for searching")
	f.BoolVarP(&o.Versions, "versions", "l", false, "show every matching version, not only the latest")
	f.BoolVar(&o.Pre, "pre", false, "include pre-release versions")
	f.StringVar(&o.Version, "version", "", "only show versions satisfying this constraint")
	f.UintVar(&o.MaxColWidth, "max-col-width", 50, "maximum column width for output table")

	return cmd
}
