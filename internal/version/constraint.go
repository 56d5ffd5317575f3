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

package version

import "strings"

// Satisfies reports whether v matches the textual constraint. Recognized
// forms: "*" or the empty string (always true), "==V", ">=V", "<=V", ">V",
// "<V", "^V" (caret range), and a bare version string, which means exact
// match. Any other prefix falls back to exact string comparison, so e.g.
// "~1.0.0" matches nothing; callers wanting a wildcard must pass "*".
func Satisfies(v Version, constraint string) (bool, error) {
	c := strings.TrimSpace(constraint)
	if c == "" || c == "*" {
		return true, nil
	}

	switch {
	case strings.HasPrefix(c, "=="):
		lit, err := constraintVersion(c, c[2:])
		if err != nil {
			return false, err
		}
		return v.Equal(lit), nil
	case strings.HasPrefix(c, ">="):
		lit, err := constraintVersion(c, c[2:])
		if err != nil {
			return false, err
		}
		cmp, err := Compare(v, lit)
		return cmp >= 0, err
	case strings.HasPrefix(c, "<="):
		lit, err := constraintVersion(c, c[2:])
		if err != nil {
			return false, err
		}
		cmp, err := Compare(v, lit)
		return cmp <= 0, err
	case strings.HasPrefix(c, ">"):
		lit, err := constraintVersion(c, c[1:])
		if err != nil {
			return false, err
		}
		cmp, err := Compare(v, lit)
		return cmp > 0, err
	case strings.HasPrefix(c, "<"):
		lit, err := constraintVersion(c, c[1:])
		if err != nil {
			return false, err
		}
		cmp, err := Compare(v, lit)
		return cmp < 0, err
	case strings.HasPrefix(c, "^"):
		lit, err := constraintVersion(c, c[1:])
		if err != nil {
			return false, err
		}
		return satisfiesCaret(v, lit)
	}

	return v.String() == c, nil
}

// satisfiesCaret checks v against [base, nextBreaking(base)), where
// nextBreaking bumps the first non-zero component of base and zeroes
// everything after it. A base of all zeros has no component to bump, which
// leaves the range unbounded above; that behavior is kept on purpose.
func satisfiesCaret(v, base Version) (bool, error) {
	cmp, err := Compare(v, base)
	if err != nil {
		return false, err
	}
	if cmp < 0 {
		return false, nil
	}

	upper := base
	upper.parts = append([]component(nil), base.parts...)
	bumped := false
	for i, p := range upper.parts {
		if !p.isNum {
			// a caret range needs numeric components up to the first
			// non-zero one; bail out rather than invent an ordering
			return false, &MalformedVersionError{A: base.String(), B: base.String()}
		}
		if p.num != 0 {
			upper.parts[i].num++
			for j := i + 1; j < len(upper.parts); j++ {
				upper.parts[j] = component{num: 0, isNum: true}
			}
			bumped = true
			break
		}
	}
	if !bumped {
		// ^0.0.0 and friends: unbounded upper range
		return true, nil
	}

	cmp, err = Compare(v, upper)
	if err != nil {
		return false, err
	}
	return cmp < 0, nil
}

func constraintVersion(constraint, rest string) (Version, error) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return Version{}, &MalformedConstraintError{Constraint: constraint}
	}
	return Parse(rest), nil
}

// MalformedConstraintError signals a constraint operator with no version
// literal behind it, e.g. ">=" on its own.
type MalformedConstraintError struct {
	Constraint string
}

func (e *MalformedConstraintError) Error() string {
	return "malformed constraint: \"" + e.Constraint + "\" has no version to compare against"
}
