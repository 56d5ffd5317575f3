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
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildTestGraph(t *testing.T, pkgs ...*Pkg) *PkgGraph {
	t.Helper()
	g := NewPkgGraph()
	for _, p := range pkgs {
		if err := g.Add(p); err != nil {
			t.Fatalf("adding %s: %v", p, err)
		}
	}
	return g
}

func TestAddDuplicate(t *testing.T) {
	is := assert.New(t)

	g := NewPkgGraph()
	is.NoError(g.Add(NewPkg("redis", "6.2.1", nil, "")))
	is.NoError(g.Add(NewPkg("redis", "6.2.2", nil, "")))

	err := g.Add(NewPkg("redis", "6.2.1", nil, "different description, same identity"))
	var dup *DuplicatePackageError
	is.ErrorAs(err, &dup)
	is.Equal(2, g.Size())
}

func TestGet(t *testing.T) {
	g := buildTestGraph(t,
		NewPkg("redis", "5.0.0", nil, ""),
		NewPkg("redis", "6.2.1", nil, ""),
		NewPkg("redis", "6.0.0", nil, ""),
	)

	for _, tcase := range []struct {
		name       string
		pkgName    string
		constraint string
		want       string // fingerprint, "" for nil
	}{
		{name: "star returns max", pkgName: "redis", constraint: "*", want: "redis-6.2.1"},
		{name: "bounded above", pkgName: "redis", constraint: "<6.2.1", want: "redis-6.0.0"},
		{name: "exact", pkgName: "redis", constraint: "==5.0.0", want: "redis-5.0.0"},
		{name: "caret picks max in range", pkgName: "redis", constraint: "^6.0.0", want: "redis-6.2.1"},
		{name: "nothing satisfies", pkgName: "redis", constraint: ">=7.0.0", want: ""},
		{name: "unknown name", pkgName: "memcached", constraint: "*", want: ""},
	} {
		t.Run(tcase.name, func(t *testing.T) {
			is := assert.New(t)
			got, err := g.Get(tcase.pkgName, tcase.constraint)
			is.NoError(err)
			if tcase.want == "" {
				is.Nil(got)
				return
			}
			if is.NotNil(got) {
				is.Equal(tcase.want, got.GetFingerPrint())
			}
		})
	}
}

func TestDependencyEdges(t *testing.T) {
	is := assert.New(t)

	app := NewPkg("app", "1.0.0", map[string]string{"lib": ">=1.0.0"}, "")
	tool := NewPkg("tool", "2.0.0", map[string]string{"lib": "^1.0.0"}, "")
	lib1 := NewPkg("lib", "1.0.0", nil, "")
	lib2 := NewPkg("lib", "1.5.0", nil, "")
	g := buildTestGraph(t, app, tool, lib1, lib2)

	// the canonical edge goes to the highest satisfying version only
	deps, err := g.DependenciesOf(app)
	is.NoError(err)
	if is.Len(deps, 1) {
		is.Equal("lib-1.5.0", deps[0].GetFingerPrint())
	}

	dependents, err := g.DependentsOf(lib2)
	is.NoError(err)
	is.Len(dependents, 2)

	dependents, err = g.DependentsOf(lib1)
	is.NoError(err)
	is.Empty(dependents)
}

func TestEdgesRecomputedAfterAdd(t *testing.T) {
	is := assert.New(t)

	app := NewPkg("app", "1.0.0", map[string]string{"lib": ">=1.0.0"}, "")
	lib1 := NewPkg("lib", "1.0.0", nil, "")
	g := buildTestGraph(t, app, lib1)

	deps, err := g.DependenciesOf(app)
	is.NoError(err)
	if is.Len(deps, 1) {
		is.Equal("lib-1.0.0", deps[0].GetFingerPrint())
	}

	// a newer record steals the canonical edge
	is.NoError(g.Add(NewPkg("lib", "2.0.0", nil, "")))
	deps, err = g.DependenciesOf(app)
	is.NoError(err)
	if is.Len(deps, 1) {
		is.Equal("lib-2.0.0", deps[0].GetFingerPrint())
	}
}

func TestDanglingDependencyHasNoEdge(t *testing.T) {
	is := assert.New(t)

	app := NewPkg("app", "1.0.0", map[string]string{"ghost": ">=1.0.0"}, "")
	g := buildTestGraph(t, app)

	deps, err := g.DependenciesOf(app)
	is.NoError(err)
	is.Empty(deps)
}

func TestNamesInsertionOrder(t *testing.T) {
	is := assert.New(t)

	g := buildTestGraph(t,
		NewPkg("zsh", "1.0.0", nil, ""),
		NewPkg("bash", "1.0.0", nil, ""),
		NewPkg("zsh", "2.0.0", nil, ""),
	)
	is.Equal([]string{"zsh", "bash"}, g.Names())
}
