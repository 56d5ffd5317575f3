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
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	pkg "github.com/sat-pm/satpm/internal/package"
)

const outputFlag = "output"

// outputFormat selects how a command renders its result.
type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
)

func outputFormats() []string {
	return []string{string(outputTable), string(outputJSON), string(outputYAML)}
}

func parseFormat(s string) (outputFormat, error) {
	switch of := outputFormat(s); of {
	case outputTable, outputJSON, outputYAML:
		return of, nil
	}
	return "", errors.Errorf("invalid format type %s", s)
}

// bindOutputFlag adds the output flag to the given command and binds the
// value to the given format pointer.
func bindOutputFlag(cmd *cobra.Command, varRef *outputFormat) {
	cmd.Flags().VarP(newOutputValue(outputTable, varRef), outputFlag, "o",
		fmt.Sprintf("prints the output in the specified format. Allowed values: %s", strings.Join(outputFormats(), ", ")))

	_ = cmd.RegisterFlagCompletionFunc(outputFlag, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var formatNames []string
		for _, format := range outputFormats() {
			if strings.HasPrefix(format, toComplete) {
				formatNames = append(formatNames, format)
			}
		}
		return formatNames, cobra.ShellCompDirectiveNoFileComp
	})
}

type outputValue outputFormat

func newOutputValue(defaultValue outputFormat, p *outputFormat) *outputValue {
	*p = defaultValue
	return (*outputValue)(p)
}

func (o *outputValue) String() string {
	return string(*o)
}

func (o *outputValue) Type() string {
	return "format"
}

func (o *outputValue) Set(s string) error {
	outfmt, err := parseFormat(s)
	if err != nil {
		return err
	}
	*o = outputValue(outfmt)
	return nil
}

// pkgRow is the serializable shape of one package in json/yaml output.
type pkgRow struct {
	Name         string            `json:"name" yaml:"name"`
	Version      string            `json:"version" yaml:"version"`
	Dependencies map[string]string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Description  string            `json:"description,omitempty" yaml:"description,omitempty"`
}

// writePackages renders a package set in the requested format.
func writePackages(w io.Writer, format outputFormat, pkgs []*pkg.Pkg) error {
	switch format {
	case outputJSON, outputYAML:
		rows := make([]pkgRow, 0, len(pkgs))
		for _, p := range pkgs {
			rows = append(rows, pkgRow{
				Name:         p.Name,
				Version:      p.Version.String(),
				Dependencies: p.Dependencies,
				Description:  p.Description,
			})
		}
		var b []byte
		var err error
		if format == outputJSON {
			b, err = json.MarshalIndent(rows, "", "  ")
		} else {
			b, err = yaml.Marshal(rows)
		}
		if err != nil {
			return errors.Wrap(err, "encoding output")
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	default:
		table := uitable.New()
		table.AddRow("NAME", "VERSION", "DESCRIPTION")
		for _, p := range pkgs {
			table.AddRow(p.Name, p.Version.String(), p.Description)
		}
		_, err := w.Write(append(table.Bytes(), '\n'))
		return err
	}
}
