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

// Package repo manages package index storage and retrieval. The resolver
// itself never touches the filesystem; everything it knows about the
// package universe enters through this package.
package repo

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/log-go"
	"github.com/gofrs/flock"
	"github.com/pkg/errors"

	pkg "github.com/sat-pm/satpm/internal/package"
	"github.com/sat-pm/satpm/pkg/satpmpath"
)

// IndexBasename is the package index file inside the cache directory.
const IndexBasename = "packages.json"

const lockTimeout = 30 * time.Second

// PackageRepository loads package records from index files and exposes them
// as a PkgGraph for the resolver to consume.
type PackageRepository struct {
	CacheDir string
	graph    *pkg.PkgGraph
}

// New creates a PackageRepository over cacheDir, creating the directory if
// needed. An empty cacheDir means the default cache location.
func New(cacheDir string) (*PackageRepository, error) {
	if cacheDir == "" {
		cacheDir = satpmpath.CachePath()
	}
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating cache dir %s", cacheDir)
	}
	return &PackageRepository{
		CacheDir: cacheDir,
		graph:    pkg.NewPkgGraph(),
	}, nil
}

// Add inserts one raw index record. Records missing a name or version are
// rejected; a record whose (name, version) is already known is skipped, so
// reloading an index is harmless.
func (r *PackageRepository) Add(rec PkgRecord) error {
	if rec.Name == "" {
		return errors.New("invalid package record: missing name")
	}
	if rec.Version == "" {
		return errors.Errorf("invalid package record %s: missing version", rec.Name)
	}

	p := pkg.NewPkg(rec.Name, rec.Version, rec.Dependencies, rec.Description)
	if err := r.graph.Add(p); err != nil {
		var dup *pkg.DuplicatePackageError
		if errors.As(err, &dup) {
			log.Debugf("skipping already known package %s", p)
			return nil
		}
		return err
	}
	log.Debugf("added package %s", p)
	return nil
}

// LoadFile reads an index file into the repository, under a shared file
// lock.
func (r *PackageRepository) LoadFile(path string) error {
	unlock, err := lockIndex(path, false)
	if err != nil {
		return err
	}
	defer unlock()

	records, err := loadIndex(path)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := r.Add(rec); err != nil {
			return err
		}
	}
	log.Debugf("loaded %d package record(s) from %s", len(records), path)
	return nil
}

// WriteFile persists every known package record to path, under an exclusive
// file lock. Writing and re-reading an index reproduces an equivalent
// repository.
func (r *PackageRepository) WriteFile(path string) error {
	unlock, err := lockIndex(path, true)
	if err != nil {
		return err
	}
	defer unlock()

	var records []PkgRecord
	for _, name := range r.graph.Names() {
		for _, p := range r.graph.Packages(name) {
			records = append(records, PkgRecord{
				Name:         p.Name,
				Version:      p.Version.String(),
				Dependencies: p.Dependencies,
				Description:  p.Description,
			})
		}
	}
	return writeIndex(path, records)
}

// UpdateIndex refreshes the repository from the cached index, when one
// exists. Fetching from remote repositories would land here; today the
// cache is the only source.
func (r *PackageRepository) UpdateIndex() error {
	cacheFile := filepath.Join(r.CacheDir, IndexBasename)
	if _, err := os.Stat(cacheFile); os.IsNotExist(err) {
		return nil
	}
	return r.LoadFile(cacheFile)
}

// FindPackages returns every known record of name satisfying the
// constraint, highest version first.
func (r *PackageRepository) FindPackages(name, constraint string) ([]*pkg.Pkg, error) {
	var found []*pkg.Pkg
	for _, p := range r.graph.Packages(name) {
		ok, err := p.Satisfies(constraint)
		if err != nil {
			return nil, err
		}
		if ok {
			found = append(found, p)
		}
	}
	if err := pkg.SortByVersionDesc(found); err != nil {
		return nil, err
	}
	return found, nil
}

// GetLatestVersion returns the highest-versioned record of name, nil when
// the name is unknown.
func (r *PackageRepository) GetLatestVersion(name string) (*pkg.Pkg, error) {
	return pkg.MaxVersion(r.graph.Packages(name))
}

// Names returns every known package name in first-insertion order.
func (r *PackageRepository) Names() []string {
	return r.graph.Names()
}

// Packages returns all records under a name.
func (r *PackageRepository) Packages(name string) []*pkg.Pkg {
	return r.graph.Packages(name)
}

// BuildDependencyGraph returns the package universe as a graph for the
// resolver. The graph must be treated as frozen while a resolution runs.
func (r *PackageRepository) BuildDependencyGraph() *pkg.PkgGraph {
	return r.graph
}

// lockIndex takes an advisory lock on the index file, shared for reads and
// exclusive for writes, and returns the release func. Lock acquisition
// gives up after lockTimeout.
func lockIndex(path string, exclusive bool) (func(), error) {
	lockPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".lock"
	fileLock := flock.New(lockPath)

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	var locked bool
	var err error
	if exclusive {
		locked, err = fileLock.TryLockContext(ctx, time.Second)
	} else {
		locked, err = fileLock.TryRLockContext(ctx, time.Second)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to lock %s", path)
	}
	if !locked {
		return nil, errors.Errorf("unable to lock %s", path)
	}
	return func() {
		if err := fileLock.Unlock(); err != nil {
			log.Warnf("unable to release lock on %s: %v", path, err)
		}
	}, nil
}
