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

package action

import (
	"github.com/Masterminds/log-go"

	pkg "github.com/sat-pm/satpm/internal/package"
	"github.com/sat-pm/satpm/internal/solver"
)

// Install resolves requested package specs against the index and reports
// the set of packages an installation would lay down. Actual file
// installation is the caller's concern.
type Install struct {
	Config *Configuration
	DryRun bool
}

func NewInstall(cfg *Configuration) *Install {
	return &Install{Config: cfg}
}

// Run updates the index, resolves the given specs and returns the resolved
// set, sorted by fingerprint.
func (i *Install) Run(logger log.Logger, specs []string) ([]*pkg.Pkg, error) {
	logger.Debug("updating package index")
	if err := i.Config.Repository.UpdateIndex(); err != nil {
		return nil, err
	}

	requests := ParseSpecs(specs)
	logger.Debugf("resolving %d spec(s)", len(requests))

	s := solver.New(i.Config.Repository.BuildDependencyGraph())
	return s.Solve(requests)
}

// RunBatch resolves several independent requests concurrently, one result
// per request, in input order.
func (i *Install) RunBatch(logger log.Logger, batches [][]string) ([]solver.Result, error) {
	if err := i.Config.Repository.UpdateIndex(); err != nil {
		return nil, err
	}

	requests := make([][]solver.Request, len(batches))
	for n, specs := range batches {
		requests[n] = ParseSpecs(specs)
	}
	logger.Debugf("resolving %d request batch(es)", len(requests))

	s := solver.New(i.Config.Repository.BuildDependencyGraph())
	return s.ParallelSolve(requests, i.Config.Settings.MaxWorkers), nil
}
