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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sat-pm/satpm/pkg/repo"
)

var listIndex = []repo.PkgRecord{
	{Name: "vim", Version: "8.2.0", Description: "a text editor"},
	{Name: "vim", Version: "9.0.0", Description: "a text editor"},
	{Name: "emacs", Version: "27.1", Description: "another text editor"},
}

func TestListAll(t *testing.T) {
	is := assert.New(t)
	cfg := testConfiguration(t, listIndex)

	entries, err := NewList(cfg).Run(nil)
	if !is.NoError(err) {
		return
	}
	// one row per name, sorted, highest version shown
	if !is.Len(entries, 2) {
		return
	}
	is.Equal("emacs-27.1", entries[0].Pkg.GetFingerPrint())
	is.True(entries[0].Latest)
	is.Equal(0, entries[0].Older)
	is.Equal("vim-9.0.0", entries[1].Pkg.GetFingerPrint())
	is.True(entries[1].Latest)
	is.Equal(1, entries[1].Older)
}

func TestListAllVersions(t *testing.T) {
	is := assert.New(t)
	cfg := testConfiguration(t, listIndex)

	l := NewList(cfg)
	l.All = true
	entries, err := l.Run(nil)
	if !is.NoError(err) {
		return
	}
	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Pkg.GetFingerPrint())
	}
	is.Equal([]string{"emacs-27.1", "vim-9.0.0", "vim-8.2.0"}, got)
	is.True(entries[1].Latest)
	is.False(entries[2].Latest)
}

func TestListSpecs(t *testing.T) {
	is := assert.New(t)
	cfg := testConfiguration(t, listIndex)

	entries, err := NewList(cfg).Run([]string{"vim<9"})
	if !is.NoError(err) {
		return
	}
	if !is.Len(entries, 1) {
		return
	}
	is.Equal("vim-8.2.0", entries[0].Pkg.GetFingerPrint())
}
