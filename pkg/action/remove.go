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
	"github.com/Masterminds/log-go"
	"github.com/pkg/errors"

	pkg "github.com/sat-pm/satpm/internal/package"
)

// Remove reports the package records a removal would drop. Like Install,
// it stops short of touching the filesystem.
type Remove struct {
	Config *Configuration
	DryRun bool
}

func NewRemove(cfg *Configuration) *Remove {
	return &Remove{Config: cfg}
}

// Run matches each spec against the index and returns the records that
// would be removed. A spec that matches nothing is an error.
func (r *Remove) Run(logger log.Logger, specs []string) ([]*pkg.Pkg, error) {
	if err := r.Config.Repository.UpdateIndex(); err != nil {
		return nil, err
	}

	var doomed []*pkg.Pkg
	for _, spec := range specs {
		name, constraint := ParseSpec(spec)
		found, err := r.Config.Repository.FindPackages(name, constraint)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, errors.Errorf("package not found: %s %s", name, constraint)
		}
		logger.Debugf("%s %s matches %d record(s)", name, constraint, len(found))
		doomed = append(doomed, found...)
	}
	return doomed, nil
}
