// Package version checks the semantic versions carried by saved state.
package version

import (
	"errors"
	"strings"

	"golang.org/x/mod/semver"
)

// CURRENT is the version written with new state.
const CURRENT = "v1.0.0"

// Parse returns the canonical form of a semantic version. The leading 'v'
// is optional.
func Parse(s string) (v string, err error) {
	v = strings.TrimSpace(s)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	if !semver.IsValid(v) {
		err = errors.Join(ErrVersion, errors.New(s))
		v = ""
		return
	}

	v = semver.Canonical(v)
	return
}

// Compare two versions, as per cmp.Compare. Invalid versions sort first.
func Compare(a, b string) int {
	va, _ := Parse(a)
	vb, _ := Parse(b)
	return semver.Compare(va, vb)
}

// Compatible reports if a reader of version want can use state of version
// have: the same major version, and no older.
func Compatible(have, want string) bool {
	vh, err := Parse(have)
	if err != nil {
		return false
	}

	vw, err := Parse(want)
	if err != nil {
		return false
	}

	return semver.Major(vh) == semver.Major(vw) && semver.Compare(vh, vw) >= 0
}
