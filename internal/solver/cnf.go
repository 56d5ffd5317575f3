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
	pkg "github.com/sat-pm/satpm/internal/package"
)

// formula is the CNF being built for one resolution run: the package ->
// variable table plus the ordered clause list. Variable ids start at 1 and
// are never reused or renumbered within a run; the whole formula is
// discarded once the solution is extracted.
type formula struct {
	varOf   map[string]int // fingerprint -> variable id
	pkgOf   map[int]*pkg.Pkg
	nextVar int
	clauses [][]int
}

func newFormula() *formula {
	return &formula{
		varOf:   map[string]int{},
		pkgOf:   map[int]*pkg.Pkg{},
		nextVar: 1, // ids cannot be 0, a 0 literal is a clause terminator
	}
}

// varFor returns the variable id for p, allocating one on first use.
func (f *formula) varFor(p *pkg.Pkg) int {
	fp := p.GetFingerPrint()
	if id, ok := f.varOf[fp]; ok {
		return id
	}
	id := f.nextVar
	f.nextVar++
	f.varOf[fp] = id
	f.pkgOf[id] = p
	return id
}

func (f *formula) addClause(lits ...int) {
	f.clauses = append(f.clauses, lits)
}

// maxVar returns the highest allocated variable id, 0 when none.
func (f *formula) maxVar() int {
	return f.nextVar - 1
}
