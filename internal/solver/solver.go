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
	"sort"

	"github.com/Masterminds/log-go"

	pkg "github.com/sat-pm/satpm/internal/package"
)

// Request is one requested (name, constraint) pair of a resolution.
type Request struct {
	Name       string
	Constraint string
}

// Solver turns resolution requests against a package graph into CNF
// formulas, drives a SAT oracle over them, and maps the oracle's model back
// to concrete packages.
//
// The Solver itself holds no per-run state: every Solve call builds its own
// variable table, clause list and oracle, so independent runs can share one
// Solver. The graph must not be mutated while a run is in flight.
type Solver struct {
	Graph *pkg.PkgGraph

	// NewOracle builds the SAT backend for each run. Left nil, the
	// gophersat-backed default is used.
	NewOracle OracleFactory
}

// New creates a Solver over the given package universe.
func New(graph *pkg.PkgGraph) *Solver {
	return &Solver{Graph: graph}
}

// Solve resolves the requested packages into a consistent set of concrete
// versions: every request is honored, every dependency of every selected
// package is satisfied by another selected package, and no two selected
// packages share a name. The returned set is sorted by fingerprint. On
// failure a ResolutionError is returned and the set is nil.
func (s *Solver) Solve(requested []Request) ([]*pkg.Pkg, error) {
	log.Debugf("resolving %d requested package(s)", len(requested))

	r := &resolution{
		graph:   s.Graph,
		f:       newFormula(),
		visited: map[string]bool{},
	}
	for _, req := range requested {
		if err := r.addRequest(req.Name, req.Constraint); err != nil {
			return nil, err
		}
	}
	if len(r.f.clauses) == 0 {
		return []*pkg.Pkg{}, nil
	}
	log.Debugf("solving CNF with %d clauses and %d variables",
		len(r.f.clauses), r.f.maxVar())

	newOracle := s.NewOracle
	if newOracle == nil {
		newOracle = NewGophersatOracle
	}
	oracle := newOracle()
	for _, clause := range r.f.clauses {
		oracle.AddClause(clause)
	}
	model, sat := oracle.Solve()
	if !sat {
		return nil, &NoSolutionError{}
	}

	selected := r.extract(model)
	result, err := r.prune(selected)
	if err != nil {
		return nil, err
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].GetFingerPrint() < result[j].GetFingerPrint()
	})
	log.Debugf("found solution with %d package(s)", len(result))
	return result, nil
}

// resolution is the per-run context: formula under construction, the
// packages whose clauses were already emitted, and the concrete roots the
// requests resolved to.
type resolution struct {
	graph   *pkg.PkgGraph
	f       *formula
	visited map[string]bool
	roots   []*pkg.Pkg
}

// addRequest resolves one requested (name, constraint) to a concrete
// package, forces its selection with a unit clause, and expands its
// constraint closure.
func (r *resolution) addRequest(name, constraint string) error {
	p, err := r.graph.Get(name, constraint)
	if err != nil {
		return err
	}
	if p == nil {
		return &PackageNotFoundError{Name: name, Constraint: constraint}
	}
	r.roots = append(r.roots, p)
	r.f.addClause(r.f.varFor(p))
	return r.emitConstraints(p)
}

// emitConstraints adds the mutual-exclusion and dependency clauses for p,
// then recurses into every dependency candidate. Each (name, version) is
// expanded at most once, so dependency cycles terminate once everything
// reachable has had its clauses emitted.
func (r *resolution) emitConstraints(p *pkg.Pkg) error {
	fp := p.GetFingerPrint()
	if r.visited[fp] {
		return nil
	}
	r.visited[fp] = true

	pVar := r.f.varFor(p)

	// at most one version of a name in any solution
	for _, q := range r.graph.Packages(p.Name) {
		if q.Equal(p) {
			continue
		}
		r.f.addClause(-pVar, -r.f.varFor(q))
	}

	for _, depName := range p.DepNames() {
		constraint := p.Dependencies[depName]
		var candidates []*pkg.Pkg
		for _, c := range r.graph.Packages(depName) {
			ok, err := c.Satisfies(constraint)
			if err != nil {
				return err
			}
			if ok {
				candidates = append(candidates, c)
			}
		}
		if len(candidates) == 0 {
			return &UnsatisfiableDependencyError{Pkg: p, DepName: depName, Constraint: constraint}
		}

		// highest version first, so clause emission is stable across
		// runs of the same graph
		if err := pkg.SortByVersionDesc(candidates); err != nil {
			return err
		}

		// p selected -> at least one satisfying candidate selected
		lits := make([]int, 0, len(candidates)+1)
		lits = append(lits, -pVar)
		for _, c := range candidates {
			lits = append(lits, r.f.varFor(c))
		}
		r.f.addClause(lits...)

		for _, c := range candidates {
			if err := r.emitConstraints(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// extract maps the model's true variables back to packages.
func (r *resolution) extract(model Model) []*pkg.Pkg {
	var selected []*pkg.Pkg
	for id := 1; id <= r.f.maxVar(); id++ {
		if model.ValueOf(id) {
			selected = append(selected, r.f.pkgOf[id])
		}
	}
	return selected
}

// prune drops selected packages not reachable from the requested roots by
// dependency closure. The oracle is free to set don't-care variables true
// (a sibling version nothing depends on, for instance); those selections
// are noise, not part of the answer.
func (r *resolution) prune(selected []*pkg.Pkg) ([]*pkg.Pkg, error) {
	byName := map[string][]*pkg.Pkg{}
	for _, p := range selected {
		byName[p.Name] = append(byName[p.Name], p)
	}

	reachable := map[string]*pkg.Pkg{}
	queue := append([]*pkg.Pkg(nil), r.roots...)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		fp := p.GetFingerPrint()
		if _, ok := reachable[fp]; ok {
			continue
		}
		reachable[fp] = p
		for _, depName := range p.DepNames() {
			for _, c := range byName[depName] {
				ok, err := c.Satisfies(p.Dependencies[depName])
				if err != nil {
					return nil, err
				}
				if ok {
					queue = append(queue, c)
				}
			}
		}
	}

	result := make([]*pkg.Pkg, 0, len(reachable))
	for _, p := range selected {
		if _, ok := reachable[p.GetFingerPrint()]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}
