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

// Package version implements the dot-separated version model used by the
// resolver, and the evaluation of textual version constraints against it.
//
// A version is an ordered sequence of components, obtained by splitting the
// version string on ".". Components that parse as integers compare
// numerically; anything else is kept as an opaque string token. Comparing an
// integer component against a string component has no defined ordering and
// returns a MalformedVersionError instead of guessing.
package version

import (
	"strconv"
	"strings"
)

// component is a single dot-separated element of a version string.
type component struct {
	num   int
	str   string
	isNum bool
}

// Version is a parsed, comparable version string.
type Version struct {
	parts []component
}

// Parse splits a version string on "." into components. Non-numeric
// components are retained as string tokens rather than rejected; they only
// become an error if a comparison ever pits them against a numeric component.
func Parse(s string) Version {
	fields := strings.Split(s, ".")
	parts := make([]component, 0, len(fields))
	for _, f := range fields {
		if n, err := strconv.Atoi(f); err == nil {
			parts = append(parts, component{num: n, isNum: true})
		} else {
			parts = append(parts, component{str: f})
		}
	}
	return Version{parts: parts}
}

func (v Version) String() string {
	fields := make([]string, len(v.parts))
	for i, p := range v.parts {
		if p.isNum {
			fields[i] = strconv.Itoa(p.num)
		} else {
			fields[i] = p.str
		}
	}
	return strings.Join(fields, ".")
}

// Equal reports whether both component sequences are identical. Unlike
// Compare, equality between mixed component types is well defined: a numeric
// component is never equal to a string component.
func (v Version) Equal(o Version) bool {
	if len(v.parts) != len(o.parts) {
		return false
	}
	for i, p := range v.parts {
		q := o.parts[i]
		if p.isNum != q.isNum {
			return false
		}
		if p.isNum && p.num != q.num {
			return false
		}
		if !p.isNum && p.str != q.str {
			return false
		}
	}
	return true
}

// Compare orders two versions lexicographically over their component
// sequences, each component compared with its own ordering. It returns -1, 0
// or 1. When a numeric component meets a string component the ordering is
// undefined and a MalformedVersionError is returned.
func Compare(a, b Version) (int, error) {
	for i := 0; i < len(a.parts) && i < len(b.parts); i++ {
		p, q := a.parts[i], b.parts[i]
		if p.isNum != q.isNum {
			return 0, &MalformedVersionError{A: a.String(), B: b.String()}
		}
		switch {
		case p.isNum && p.num != q.num:
			if p.num < q.num {
				return -1, nil
			}
			return 1, nil
		case !p.isNum && p.str != q.str:
			if p.str < q.str {
				return -1, nil
			}
			return 1, nil
		}
	}
	// all shared components equal, the shorter sequence orders first
	switch {
	case len(a.parts) < len(b.parts):
		return -1, nil
	case len(a.parts) > len(b.parts):
		return 1, nil
	}
	return 0, nil
}

// MalformedVersionError signals a comparison between an integer component and
// a string component, for which no ordering exists.
type MalformedVersionError struct {
	A, B string
}

func (e *MalformedVersionError) Error() string {
	return "malformed version: no ordering between \"" + e.A + "\" and \"" + e.B + "\""
}
