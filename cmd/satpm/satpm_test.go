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

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"testing"

	logcli "github.com/Masterminds/log-go/impl/cli"
	shellwords "github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/sat-pm/satpm/pkg/repo"
)

// executeCommandC runs the root command with a shell-style argument string
// against a throwaway cache dir, capturing everything the logger prints.
func executeCommandC(t *testing.T, cmd string) (*cobra.Command, string, error) {
	t.Helper()

	args, err := shellwords.Parse(cmd)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	logger := logcli.NewStandard()
	logger.InfoOut = buf
	logger.WarnOut = buf
	logger.ErrorOut = buf
	logger.DebugOut = buf

	root, err := newRootCmd(logger, args)
	if err != nil {
		return nil, "", err
	}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	c, err := root.ExecuteC()
	return c, buf.String(), err
}

// seedCache points the global settings at a fresh cache dir holding the
// given index records, restoring the old dir when the test ends.
func seedCache(t *testing.T, records []repo.PkgRecord) {
	t.Helper()

	cacheDir := t.TempDir()
	b, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(filepath.Join(cacheDir, repo.IndexBasename), b, 0644); err != nil {
		t.Fatal(err)
	}

	oldDir := settings.CacheDir
	settings.CacheDir = cacheDir
	t.Cleanup(func() { settings.CacheDir = oldDir })
}

func TestRootCmd(t *testing.T) {
	is := assert.New(t)
	seedCache(t, nil)

	_, out, err := executeCommandC(t, "")
	is.NoError(err)
	is.Contains(out, "satpm")
}

func TestVersionCmd(t *testing.T) {
	is := assert.New(t)
	seedCache(t, nil)

	_, out, err := executeCommandC(t, "version")
	is.NoError(err)
	is.Contains(out, "BuildInfo")

	_, out, err = executeCommandC(t, "version --short")
	is.NoError(err)
	is.Contains(out, "v0.1")
}

func TestInstallCmd(t *testing.T) {
	seedCache(t, []repo.PkgRecord{
		{Name: "redis", Version: "6.2.0", Dependencies: map[string]string{"jemalloc": "^5.0.0"}},
		{Name: "jemalloc", Version: "5.2.1"},
	})

	t.Run("dry run resolves the closure", func(t *testing.T) {
		is := assert.New(t)
		_, out, err := executeCommandC(t, "install --dry-run --no-emojis redis")
		is.NoError(err)
		is.Contains(out, "redis")
		is.Contains(out, "jemalloc")
		is.Contains(out, "dry run")
	})

	t.Run("unknown package fails", func(t *testing.T) {
		is := assert.New(t)
		_, _, err := executeCommandC(t, "install ghost")
		is.Error(err)
	})

	t.Run("json output", func(t *testing.T) {
		is := assert.New(t)
		_, out, err := executeCommandC(t, "install --dry-run -o json jemalloc")
		is.NoError(err)
		is.Contains(out, `"name": "jemalloc"`)
	})
}

func TestListCmd(t *testing.T) {
	seedCache(t, []repo.PkgRecord{
		{Name: "redis", Version: "6.0.0"},
		{Name: "redis", Version: "6.2.0"},
	})

	t.Run("latest only", func(t *testing.T) {
		is := assert.New(t)
		_, out, err := executeCommandC(t, "list")
		is.NoError(err)
		is.Contains(out, "redis")
		is.Contains(out, "6.2.0 (+1 older)")
	})

	t.Run("all versions", func(t *testing.T) {
		is := assert.New(t)
		_, out, err := executeCommandC(t, "list --all")
		is.NoError(err)
		is.Contains(out, "6.0.0")
		is.Contains(out, "6.2.0")
	})
}

func TestSearchCmd(t *testing.T) {
	seedCache(t, []repo.PkgRecord{
		{Name: "redis", Version: "6.2.0", Description: "in-memory data store"},
	})

	is := assert.New(t)
	_, out, err := executeCommandC(t, "search data")
	is.NoError(err)
	is.Contains(out, "redis")

	_, out, err = executeCommandC(t, "search nothingmatches")
	is.NoError(err)
	is.Contains(out, "No packages found")
}

func TestRemoveCmd(t *testing.T) {
	seedCache(t, []repo.PkgRecord{
		{Name: "redis", Version: "6.2.0"},
	})

	is := assert.New(t)
	_, out, err := executeCommandC(t, "remove --dry-run --no-emojis redis")
	is.NoError(err)
	is.Contains(out, "would remove redis-6.2.0")

	_, _, err = executeCommandC(t, "remove ghost")
	is.Error(err)
}
