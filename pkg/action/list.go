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
	"sort"

	pkg "github.com/sat-pm/satpm/internal/package"
)

// List reports known package records. With specs it shows every version
// matching each spec; without, one entry per name (all versions with All).
type List struct {
	Config *Configuration
	All    bool
}

func NewList(cfg *Configuration) *List {
	return &List{Config: cfg}
}

// Entry is one row of a listing.
type Entry struct {
	Pkg    *pkg.Pkg
	Latest bool // highest known version of its name
	Older  int  // versions hidden behind this entry, latest-only mode
}

func (l *List) Run(specs []string) ([]Entry, error) {
	if err := l.Config.Repository.UpdateIndex(); err != nil {
		return nil, err
	}
	if len(specs) > 0 {
		return l.listSpecs(specs)
	}
	return l.listAll()
}

func (l *List) listSpecs(specs []string) ([]Entry, error) {
	var entries []Entry
	for _, spec := range specs {
		name, constraint := ParseSpec(spec)
		found, err := l.Config.Repository.FindPackages(name, constraint)
		if err != nil {
			return nil, err
		}
		for n, p := range found {
			entries = append(entries, Entry{Pkg: p, Latest: n == 0})
		}
	}
	return entries, nil
}

func (l *List) listAll() ([]Entry, error) {
	names := append([]string(nil), l.Config.Repository.Names()...)
	sort.Strings(names)

	var entries []Entry
	for _, name := range names {
		versions := append([]*pkg.Pkg(nil), l.Config.Repository.Packages(name)...)
		if err := pkg.SortByVersionDesc(versions); err != nil {
			return nil, err
		}
		if len(versions) == 0 {
			continue
		}
		if !l.All {
			entries = append(entries, Entry{
				Pkg:    versions[0],
				Latest: true,
				Older:  len(versions) - 1,
			})
			continue
		}
		for n, p := range versions {
			entries = append(entries, Entry{Pkg: p, Latest: n == 0})
		}
	}
	return entries, nil
}
