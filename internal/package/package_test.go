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

func TestGetFingerPrint(t *testing.T) {
	is := assert.New(t)

	p := NewPkg("redis", "6.2.1", nil, "in-memory store")
	is.Equal("redis-6.2.1", p.GetFingerPrint())
	is.Equal("redis-6.2.1", p.String())
	is.Equal(StatusAvailable, p.Status)
}

func TestEqualIgnoresMetadata(t *testing.T) {
	is := assert.New(t)

	a := NewPkg("redis", "6.2.1", map[string]string{"glibc": ">=2.0.0"}, "one")
	b := NewPkg("redis", "6.2.1", nil, "other")
	c := NewPkg("redis", "6.2.2", nil, "one")

	is.True(a.Equal(b))
	is.False(a.Equal(c))
}

func TestDepNamesSorted(t *testing.T) {
	is := assert.New(t)

	p := NewPkg("app", "1.0.0", map[string]string{
		"zlib":  "*",
		"glibc": ">=2.0.0",
		"mylib": "^1.2.0",
	}, "")
	is.Equal([]string{"glibc", "mylib", "zlib"}, p.DepNames())
}

func TestSortByVersionDesc(t *testing.T) {
	is := assert.New(t)

	pkgs := []*Pkg{
		NewPkg("x", "1.0.0", nil, ""),
		NewPkg("x", "2.0.0", nil, ""),
		NewPkg("x", "1.9.0", nil, ""),
		NewPkg("x", "1.10.0", nil, ""),
	}
	is.NoError(SortByVersionDesc(pkgs))

	got := make([]string, len(pkgs))
	for i, p := range pkgs {
		got[i] = p.Version.String()
	}
	is.Equal([]string{"2.0.0", "1.10.0", "1.9.0", "1.0.0"}, got)
}

func TestMaxVersion(t *testing.T) {
	is := assert.New(t)

	max, err := MaxVersion(nil)
	is.NoError(err)
	is.Nil(max)

	pkgs := []*Pkg{
		NewPkg("x", "0.1.100", nil, ""),
		NewPkg("x", "0.2.0", nil, ""),
		NewPkg("x", "0.1.200", nil, ""),
	}
	max, err = MaxVersion(pkgs)
	is.NoError(err)
	is.Equal("x-0.2.0", max.GetFingerPrint())
}
