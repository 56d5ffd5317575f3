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
	"bytes"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/Masterminds/log-go"
	logcli "github.com/Masterminds/log-go/impl/cli"
	"github.com/stretchr/testify/assert"

	"github.com/sat-pm/satpm/pkg/cli"
	"github.com/sat-pm/satpm/pkg/repo"
)

// testLogger returns a logger writing into the returned buffer.
func testLogger() (log.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	logger := logcli.NewStandard()
	logger.InfoOut = buf
	logger.WarnOut = buf
	logger.ErrorOut = buf
	logger.DebugOut = buf
	return logger, buf
}

// testConfiguration seeds a repository cache with the given index records
// and wires a configuration around it.
func testConfiguration(t *testing.T, records []repo.PkgRecord) *Configuration {
	t.Helper()

	cacheDir := t.TempDir()
	b, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(filepath.Join(cacheDir, repo.IndexBasename), b, 0644); err != nil {
		t.Fatal(err)
	}

	settings := cli.New()
	settings.CacheDir = cacheDir
	cfg, err := NewConfiguration(settings)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestParseSpec(t *testing.T) {
	for _, tcase := range []struct {
		spec       string
		name       string
		constraint string
	}{
		{spec: "redis", name: "redis", constraint: "*"},
		{spec: "redis>=6.0.0", name: "redis", constraint: ">=6.0.0"},
		{spec: "redis<=6.0.0", name: "redis", constraint: "<=6.0.0"},
		{spec: "redis==6.0.0", name: "redis", constraint: "==6.0.0"},
		{spec: "redis>6", name: "redis", constraint: ">6"},
		{spec: "redis<6", name: "redis", constraint: "<6"},
		{spec: "redis^6.0.0", name: "redis", constraint: "^6.0.0"},
		{spec: "redis~6.0.0", name: "redis", constraint: "~6.0.0"},
		{spec: "redis!=6.0.0", name: "redis", constraint: "!=6.0.0"},
		{spec: "redis == 6.0.0", name: "redis", constraint: "==6.0.0"},
		// an unrecognized operator means the whole spec is a name
		{spec: "redis@6.0.0", name: "redis@6.0.0", constraint: "*"},
	} {
		t.Run(tcase.spec, func(t *testing.T) {
			is := assert.New(t)
			name, constraint := ParseSpec(tcase.spec)
			is.Equal(tcase.name, name)
			is.Equal(tcase.constraint, constraint)
		})
	}
}

func TestParseSpecs(t *testing.T) {
	is := assert.New(t)

	requests := ParseSpecs([]string{"a", "b^1.0.0"})
	is.Len(requests, 2)
	is.Equal("a", requests[0].Name)
	is.Equal("*", requests[0].Constraint)
	is.Equal("b", requests[1].Name)
	is.Equal("^1.0.0", requests[1].Constraint)
}
