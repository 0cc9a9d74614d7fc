// Package semver parses and increments MAJOR.MINOR.PATCH version triplets.
package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	xsemver "golang.org/x/mod/semver"
)

// Pattern is the digit triplet expression applied to captured field
// values. The match is unanchored so surrounding text, such as a
// pre-release suffix, does not prevent a match.
const Pattern = `(\d+)\.(\d+)\.(\d+)`

var tripletRe = regexp.MustCompile(Pattern)

// ErrNoTriplet reports a value without a MAJOR.MINOR.PATCH sequence.
var ErrNoTriplet = errors.New("no version triplet found")

// NewService creates a new semver service.
func NewService() Service {
	return &service{}
}

// Find locates the first version triplet in value and parses its three
// components as decimal integers. Component values that overflow int are
// rejected.
func (s *service) Find(value string) (Version, error) {
	m := tripletRe.FindStringSubmatch(value)
	if m == nil {
		return Version{}, ErrNoTriplet
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, fmt.Errorf("invalid major component %q: %w", m[1], err)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, fmt.Errorf("invalid minor component %q: %w", m[2], err)
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, fmt.Errorf("invalid patch component %q: %w", m[3], err)
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// Bump returns v with the named component incremented. Major and minor
// bumps reset the lower components to zero; a patch bump leaves the
// higher components untouched.
func (s *service) Bump(v Version, component string) (Version, error) {
	switch component {
	case ComponentMajor:
		return Version{Major: v.Major + 1}, nil
	case ComponentMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case ComponentPatch:
		v.Patch++
		return v, nil
	default:
		return Version{}, fmt.Errorf("unsupported component: %s", component)
	}
}

// Format renders v in canonical MAJOR.MINOR.PATCH form. Leading zeros in
// the source value do not survive a round trip through Find and Format.
func (s *service) Format(v Version) string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ValidateExplicit checks that value can replace a matched version as-is,
// for example "2.0.0" or "1.4.0-rc.1". Shortened forms such as "1.2" are
// rejected even though they are valid semver, because the replacement
// must itself contain a triplet for later runs to find.
func (s *service) ValidateExplicit(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("explicit version is empty")
	}
	if !tripletRe.MatchString(value) || !xsemver.IsValid("v"+value) {
		return fmt.Errorf("invalid semver version: %s", value)
	}
	return nil
}
