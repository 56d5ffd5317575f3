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

/* Package search implements querying the package index by keyword, so it
can be reused and composed over instead of living inside the search
command. */
package search

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/log-go"
	logio "github.com/Masterminds/log-go/io"
	"github.com/Masterminds/semver/v3"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"

	pkg "github.com/sat-pm/satpm/internal/package"
	"github.com/sat-pm/satpm/pkg/repo"
)

// Options filters a search and configures its output.
type Options struct {
	Versions    bool   // one line per version instead of latest only
	Regexp      bool   // treat the query as a regular expression
	Pre         bool   // include pre-release and development versions
	Version     string // constraint the shown versions must satisfy
	MaxColWidth uint
}

// Result is one matching package record.
type Result struct {
	Pkg *pkg.Pkg
}

// Run searches the repository and prints the matches as a table.
func (o *Options) Run(logger log.Logger, repository *repo.PackageRepository, terms []string) error {
	results, err := o.Search(repository, terms)
	if err != nil {
		return err
	}

	wInfo := logio.NewWriter(logger, log.InfoLevel)
	if len(results) == 0 {
		query := strings.Join(terms, " ")
		logger.Infof("No packages found matching %q", query)
		return nil
	}

	table := uitable.New()
	table.MaxColWidth = o.maxColWidth()
	table.AddRow("NAME", "VERSION", "DESCRIPTION")
	for _, res := range results {
		table.AddRow(res.Pkg.Name, res.Pkg.Version.String(), res.Pkg.Description)
	}
	_, err = wInfo.Write(append(table.Bytes(), '\n'))
	return err
}

// Search returns the matching records, sorted by name and descending
// version, without printing anything.
func (o *Options) Search(repository *repo.PackageRepository, terms []string) ([]*Result, error) {
	match, err := o.matcher(terms)
	if err != nil {
		return nil, err
	}

	names := append([]string(nil), repository.Names()...)
	sort.Strings(names)

	var results []*Result
	for _, name := range names {
		records := repository.Packages(name)
		if !matchesAny(match, name, records) {
			continue
		}

		shown, err := o.filterVersions(records)
		if err != nil {
			return nil, err
		}
		if len(shown) == 0 {
			continue
		}
		if !o.Versions {
			shown = shown[:1] // highest only
		}
		for _, p := range shown {
			results = append(results, &Result{Pkg: p})
		}
	}
	return results, nil
}

func (o *Options) matcher(terms []string) (func(string) bool, error) {
	query := strings.Join(terms, " ")
	if o.Regexp {
		re, err := regexp.Compile(query)
		if err != nil {
			return nil, errors.Wrap(err, "invalid search expression")
		}
		return re.MatchString, nil
	}
	query = strings.ToLower(query)
	return func(s string) bool {
		return strings.Contains(strings.ToLower(s), query)
	}, nil
}

func matchesAny(match func(string) bool, name string, records []*pkg.Pkg) bool {
	if match(name) {
		return true
	}
	for _, p := range records {
		if match(p.Description) {
			return true
		}
	}
	return false
}

// filterVersions applies the constraint and pre-release filters and orders
// what is left highest first.
func (o *Options) filterVersions(records []*pkg.Pkg) ([]*pkg.Pkg, error) {
	var shown []*pkg.Pkg
	for _, p := range records {
		if !o.Pre && isPreRelease(p) {
			continue
		}
		if o.Version != "" {
			ok, err := p.Satisfies(o.Version)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		shown = append(shown, p)
	}
	if err := pkg.SortByVersionDesc(shown); err != nil {
		return nil, err
	}
	return shown, nil
}

// isPreRelease reports whether the version carries a semver pre-release
// tag. Versions that are not valid semver are treated as stable.
func isPreRelease(p *pkg.Pkg) bool {
	sv, err := semver.NewVersion(p.Version.String())
	return err == nil && sv.Prerelease() != ""
}

func (o *Options) maxColWidth() uint {
	if o.MaxColWidth == 0 {
		return 50
	}
	return o.MaxColWidth
}
