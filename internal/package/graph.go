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

package pkg

import (
	"fmt"
	"sort"
)

// PkgGraph is the universe of known package records, indexed by name, with
// derived dependency edges. Record insertion order is preserved per name so
// that traversal stays stable; it carries no semantic meaning.
//
// The edge index maps every package to the single highest-versioned record
// satisfying each of its dependency constraints. That canonical choice is
// what the graph exposes for display and traversal; the solver enumerates
// all satisfying candidates itself and does not go through these edges.
//
// The graph is not safe for mutation concurrent with queries: callers must
// treat it as frozen while a resolution is in flight.
type PkgGraph struct {
	names    []string          // insertion order of first-seen names
	packages map[string][]*Pkg // name -> records, insertion order
	deps     map[string][]*Pkg // fingerprint -> canonical dependency targets
	reverse  map[string][]*Pkg // fingerprint -> dependents
	stale    bool
}

// DuplicatePackageError signals an Add of a (name, version) pair already in
// the graph.
type DuplicatePackageError struct {
	Name    string
	Version string
}

func (e *DuplicatePackageError) Error() string {
	return fmt.Sprintf("duplicate package: %s-%s already in graph", e.Name, e.Version)
}

func NewPkgGraph() *PkgGraph {
	return &PkgGraph{
		packages: map[string][]*Pkg{},
	}
}

// Add inserts a package record. Adding a (name, version) pair that is
// already present is rejected with a DuplicatePackageError; the caller
// decides whether that is fatal.
func (g *PkgGraph) Add(p *Pkg) error {
	records, known := g.packages[p.Name]
	for _, q := range records {
		if q.Equal(p) {
			return &DuplicatePackageError{Name: p.Name, Version: p.Version.String()}
		}
	}
	if !known {
		g.names = append(g.names, p.Name)
	}
	g.packages[p.Name] = append(records, p)
	g.stale = true
	return nil
}

// Packages returns all records under a name, in insertion order. The
// returned slice is owned by the graph.
func (g *PkgGraph) Packages(name string) []*Pkg {
	return g.packages[name]
}

// Names returns every known package name, in first-insertion order.
func (g *PkgGraph) Names() []string {
	return g.names
}

// Size returns the total number of package records in the graph.
func (g *PkgGraph) Size() int {
	n := 0
	for _, records := range g.packages {
		n += len(records)
	}
	return n
}

// Get returns the highest-versioned record of name that satisfies the
// constraint, or nil if the name is unknown or nothing matches.
func (g *PkgGraph) Get(name, constraint string) (*Pkg, error) {
	var candidates []*Pkg
	for _, p := range g.packages[name] {
		ok, err := p.Satisfies(constraint)
		if err != nil {
			return nil, err
		}
		if ok {
			candidates = append(candidates, p)
		}
	}
	return MaxVersion(candidates)
}

// DependenciesOf returns the canonical dependency targets of p, sorted by
// fingerprint.
func (g *PkgGraph) DependenciesOf(p *Pkg) ([]*Pkg, error) {
	if err := g.buildEdges(); err != nil {
		return nil, err
	}
	return sortedCopy(g.deps[p.GetFingerPrint()]), nil
}

// DependentsOf returns every package whose canonical dependency edges point
// at p, sorted by fingerprint.
func (g *PkgGraph) DependentsOf(p *Pkg) ([]*Pkg, error) {
	if err := g.buildEdges(); err != nil {
		return nil, err
	}
	return sortedCopy(g.reverse[p.GetFingerPrint()]), nil
}

// buildEdges recomputes the edge index from the current node set. It is
// idempotent and cached until the next Add.
func (g *PkgGraph) buildEdges() error {
	if g.deps != nil && !g.stale {
		return nil
	}
	g.deps = map[string][]*Pkg{}
	g.reverse = map[string][]*Pkg{}
	for _, name := range g.names {
		for _, p := range g.packages[name] {
			for _, depName := range p.DepNames() {
				target, err := g.Get(depName, p.Dependencies[depName])
				if err != nil {
					return err
				}
				if target == nil {
					// dangling constraints carry no edge; the solver is
					// the one that treats them as fatal
					continue
				}
				g.deps[p.GetFingerPrint()] = append(g.deps[p.GetFingerPrint()], target)
				g.reverse[target.GetFingerPrint()] = append(g.reverse[target.GetFingerPrint()], p)
			}
		}
	}
	g.stale = false
	return nil
}

func sortedCopy(pkgs []*Pkg) []*Pkg {
	out := append([]*Pkg(nil), pkgs...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].GetFingerPrint() < out[j].GetFingerPrint()
	})
	return out
}
