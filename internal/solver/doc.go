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

/*
Package solver resolves requested packages into a consistent, installable
set of concrete versions, by encoding the problem as boolean
satisfiability.

To resolve a request, for example "install packageA >=1.0.0", we:

 1. Resolve each requested (name, constraint) pair to a concrete package
    through the graph, and force its selection with a unit clause. A request
    that matches nothing fails right here with PackageNotFoundError.

 2. Walk the dependency closure from those roots, emitting clauses lazily as
    packages are discovered:
    - at most one version of a name may be selected: a pairwise exclusion
      clause against every sibling version;
    - if a package is selected, at least one satisfying candidate of each of
      its dependencies must be selected too: one implication clause per
      dependency, candidates ordered highest version first.
    Each (name, version) is expanded once, so cyclic dependency graphs
    terminate. A dependency with zero candidates aborts the whole request
    with UnsatisfiableDependencyError.

 3. Hand the accumulated clauses to the SAT oracle (gophersat by default)
    and call it exactly once. UNSAT becomes NoSolutionError.

 4. Map the model's true variables back to packages, then prune everything
    not reachable from the requested roots by dependency closure: the
    oracle may set variables nothing depends on to true, and those
    selections are not part of the answer.

The clause language is plain CNF over "package X is selected" variables,
one variable per (name, version) reachable from the request.
*/
package solver
