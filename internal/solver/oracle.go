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
	gophersat "github.com/crillab/gophersat/solver"
)

// Model is a satisfying assignment: variable id -> boolean.
type Model interface {
	ValueOf(id int) bool
}

// Oracle is the boolean-satisfiability decision procedure the engine
// consumes. Clauses are slices of signed variable ids (+v selected,
// -v not selected); ids start at 1. Solve returns the model and true when
// the accumulated clauses are satisfiable. Swapping implementations must
// not change the encoding the engine produces.
type Oracle interface {
	AddClause(lits []int)
	Solve() (Model, bool)
}

// OracleFactory builds a fresh Oracle for one resolution run. Each run
// feeds one oracle instance and calls Solve exactly once.
type OracleFactory func() Oracle

// NewGophersatOracle returns the default oracle, backed by the gophersat
// CDCL solver.
func NewGophersatOracle() Oracle {
	return &gophersatOracle{}
}

type gophersatOracle struct {
	clauses [][]int
}

func (o *gophersatOracle) AddClause(lits []int) {
	clause := append([]int(nil), lits...)
	o.clauses = append(o.clauses, clause)
}

func (o *gophersatOracle) Solve() (Model, bool) {
	problem := gophersat.ParseSlice(o.clauses)
	s := gophersat.New(problem)
	if s.Solve() != gophersat.Sat {
		return nil, false
	}
	return sliceModel(s.Model()), true
}

// sliceModel adapts gophersat's []bool model, which is indexed by
// variable id minus one.
type sliceModel []bool

func (m sliceModel) ValueOf(id int) bool {
	if id < 1 || id > len(m) {
		return false
	}
	return m[id-1]
}
