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

	"github.com/sat-pm/satpm/internal/version"
)

// Status tags the lifecycle of a package record. It is informational only
// and never affects resolution.
type Status string

const (
	StatusInstalled Status = "installed"
	StatusAvailable Status = "available"
	StatusNotFound  Status = "not_found"
)

// Pkg is the minimum object the solver reasons about: a (name, version)
// identity plus the version constraints it declares on other packages.
// Note that each package is unique: the same name with a different version is
// a different package. E.g: redis-1.2.0 and redis-1.3.0 are different
// packages. Identity, equality and ordering never look at dependencies or
// description.
type Pkg struct {
	Name         string
	Version      version.Version
	Dependencies map[string]string // dependency name -> version constraint
	Description  string
	Status       Status
}

// NewPkg builds an available package record from raw strings.
func NewPkg(name, ver string, dependencies map[string]string, description string) *Pkg {
	if dependencies == nil {
		dependencies = map[string]string{}
	}
	return &Pkg{
		Name:         name,
		Version:      version.Parse(ver),
		Dependencies: dependencies,
		Description:  description,
		Status:       StatusAvailable,
	}
}

// GetFingerPrint returns a unique id of the package.
func (p *Pkg) GetFingerPrint() string {
	return fmt.Sprintf("%s-%s", p.Name, p.Version)
}

func (p *Pkg) String() string {
	return p.GetFingerPrint()
}

// Equal reports identity equality: same name, same version.
func (p *Pkg) Equal(o *Pkg) bool {
	return p.Name == o.Name && p.Version.Equal(o.Version)
}

// Satisfies checks this package's version against a textual constraint.
func (p *Pkg) Satisfies(constraint string) (bool, error) {
	return version.Satisfies(p.Version, constraint)
}

// DepNames returns the dependency names in sorted order, so that callers
// iterating the Dependencies map stay deterministic.
func (p *Pkg) DepNames() []string {
	names := make([]string, 0, len(p.Dependencies))
	for name := range p.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SortByVersionDesc orders packages from highest to lowest version, in
// place. Versions whose components cannot be ordered against each other
// surface a MalformedVersionError.
func SortByVersionDesc(pkgs []*Pkg) error {
	// insertion sort, so Compare errors can stop the run
	for i := 1; i < len(pkgs); i++ {
		for j := i; j > 0; j-- {
			cmp, err := version.Compare(pkgs[j].Version, pkgs[j-1].Version)
			if err != nil {
				return err
			}
			if cmp <= 0 {
				break
			}
			pkgs[j], pkgs[j-1] = pkgs[j-1], pkgs[j]
		}
	}
	return nil
}

// MaxVersion returns the highest-versioned package of the slice, or nil for
// an empty slice.
func MaxVersion(pkgs []*Pkg) (*Pkg, error) {
	var max *Pkg
	for _, p := range pkgs {
		if max == nil {
			max = p
			continue
		}
		cmp, err := version.Compare(p.Version, max.Version)
		if err != nil {
			return nil, err
		}
		if cmp > 0 {
			max = p
		}
	}
	return max, nil
}
