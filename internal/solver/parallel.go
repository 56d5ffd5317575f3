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

package solver

import (
	"golang.org/x/sync/errgroup"

	pkg "github.com/sat-pm/satpm/internal/package"
)

// DefaultMaxWorkers bounds ParallelSolve's worker pool when the caller
// passes no limit.
const DefaultMaxWorkers = 4

// Result is the outcome of one request of a ParallelSolve batch. Exactly
// one of Pkgs and Err is meaningful.
type Result struct {
	Pkgs []*pkg.Pkg
	Err  error
}

// ParallelSolve runs independent Solve calls concurrently on a bounded
// worker pool. Each run owns its variable space, clause list and oracle, so
// no locking is involved; a failing request never affects its siblings.
// Results are reported in input order.
func (s *Solver) ParallelSolve(requests [][]Request, maxWorkers int) []Result {
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}

	results := make([]Result, len(requests))
	var g errgroup.Group
	g.SetLimit(maxWorkers)
	for i, request := range requests {
		i, request := i, request
		g.Go(func() error {
			pkgs, err := s.Solve(request)
			results[i] = Result{Pkgs: pkgs, Err: err}
			// per-request failures live in the Result, never here
			return nil
		})
	}
	_ = g.Wait()
	return results
}
