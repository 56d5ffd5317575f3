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
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/sat-pm/satpm/pkg/cli"
)

var settings = cli.New()

func main() {
	logger := logcli.NewStandard()
	if settings.Debug {
		logger.Level = log.DebugLevel
	}
	log.Current = logger

	// piped output gets no color codes
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	cmd, err := newRootCmd(logger, os.Args[1:])
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		if settings.Debug {
			logger.Errorf("%+v", err)
		} else {
			logger.Errorf("%v", err)
		}
		os.Exit(1)
	}
}
