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

package repo

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// PkgRecord is one entry of the persisted package index.
type PkgRecord struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
	Description  string            `json:"description,omitempty"`
}

// loadIndex decodes an index file into records. The canonical format is a
// JSON array of records; a single top-level object is accepted and treated
// as a one-record index. Files with a .yaml/.yml extension are converted to
// JSON first, so both formats decode through the same structs.
func loadIndex(path string) ([]PkgRecord, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't load package index (%s)", path)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		b, err = yaml.YAMLToJSON(b)
		if err != nil {
			return nil, errors.Wrapf(err, "converting package index %s", path)
		}
	}

	var records []PkgRecord
	if err := json.Unmarshal(b, &records); err != nil {
		var single PkgRecord
		if err2 := json.Unmarshal(b, &single); err2 != nil {
			return nil, errors.Wrapf(err, "parsing package index %s", path)
		}
		records = []PkgRecord{single}
	}
	return records, nil
}

// writeIndex writes records as an indented JSON array, the canonical index
// format.
func writeIndex(path string, records []PkgRecord) error {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding package index")
	}
	if err := ioutil.WriteFile(path, b, 0644); err != nil {
		return errors.Wrapf(err, "writing package index %s", path)
	}
	return nil
}
