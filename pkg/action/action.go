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

// Package action holds the logic behind the satpm commands, kept out of
// cmd/ so it can be driven programmatically and tested without cobra.
package action

import (
	"strings"

	"github.com/sat-pm/satpm/internal/solver"
	"github.com/sat-pm/satpm/pkg/cli"
	"github.com/sat-pm/satpm/pkg/repo"
)

// Configuration injects the collaborators every action needs.
type Configuration struct {
	Repository *repo.PackageRepository
	Settings   *cli.EnvSettings
}

// NewConfiguration wires a configuration over the settings' cache dir.
func NewConfiguration(settings *cli.EnvSettings) (*Configuration, error) {
	repository, err := repo.New(settings.CacheDir)
	if err != nil {
		return nil, err
	}
	return &Configuration{
		Repository: repository,
		Settings:   settings,
	}, nil
}

// specOps are the operators recognized in a package spec, longest first so
// that ">=" wins over ">".
var specOps = []string{"==", ">=", "<=", "!=", ">", "<", "^", "~"}

// ParseSpec splits a package spec like "redis>=6.0.0" into its name and
// constraint. A bare name means any version; a spec with an operator not in
// the recognized set falls back to any version as a whole.
func ParseSpec(spec string) (name, constraint string) {
	for _, op := range specOps {
		if i := strings.Index(spec, op); i >= 0 {
			name = strings.TrimSpace(spec[:i])
			constraint = op + strings.TrimSpace(spec[i+len(op):])
			return name, constraint
		}
	}
	return strings.TrimSpace(spec), "*"
}

// ParseSpecs converts raw package specs into solver requests.
func ParseSpecs(specs []string) []solver.Request {
	requests := make([]solver.Request, 0, len(specs))
	for _, spec := range specs {
		name, constraint := ParseSpec(spec)
		requests = append(requests, solver.Request{Name: name, Constraint: constraint})
	}
	return requests
}
