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
	"fmt"

	pkg "github.com/sat-pm/satpm/internal/package"
)

// ResolutionError is the common interface of every error a resolution run
// can end with. All of them are fatal for the enclosing request; none are
// retried.
type ResolutionError interface {
	error
	resolutionError()
}

// PackageNotFoundError reports a requested name/constraint that matches no
// known record.
type PackageNotFoundError struct {
	Name       string
	Constraint string
}

func (e *PackageNotFoundError) Error() string {
	return fmt.Sprintf("package not found: %s %s", e.Name, e.Constraint)
}

func (e *PackageNotFoundError) resolutionError() {}

// UnsatisfiableDependencyError reports a reachable package whose declared
// dependency has zero candidates in the graph. It aborts the whole request,
// not just the branch that found it.
type UnsatisfiableDependencyError struct {
	Pkg        *pkg.Pkg
	DepName    string
	Constraint string
}

func (e *UnsatisfiableDependencyError) Error() string {
	return fmt.Sprintf("no package found for dependency: %s %s required by %s %s",
		e.DepName, e.Constraint, e.Pkg.Name, e.Pkg.Version)
}

func (e *UnsatisfiableDependencyError) resolutionError() {}

// NoSolutionError reports that the oracle proved the accumulated clauses
// unsatisfiable.
type NoSolutionError struct{}

func (e *NoSolutionError) Error() string {
	return "no solution found for the given constraints"
}

func (e *NoSolutionError) resolutionError() {}
