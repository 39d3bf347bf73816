package model

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SupportedMajor is the configuration schema major version this package reads.
const SupportedMajor = 1

// Version is a semantic version.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// ErrVersionSuffix is returned for versions carrying a pre-release or
// build metadata suffix, which schema versions never have.
var ErrVersionSuffix = errors.New("pre-release and build metadata are not allowed")

// ParseVersion parses a version string such as "1.0.0". Missing minor or
// patch components default to zero.
func ParseVersion(s string) (Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, ErrVersionSuffix)
	}
	return Version{Major: v.Major(), Minor: v.Minor(), Patch: v.Patch()}, nil
}

// IsSupported reports whether v satisfies the "^1" schema constraint.
func (v Version) IsSupported() bool {
	constraint, err := semver.NewConstraint(fmt.Sprintf("^%d", SupportedMajor))
	if err != nil {
		return false
	}
	return constraint.Check(v.semver())
}

// Compare returns -1, 0 or +1 ordering by (major, minor, patch).
func (v Version) Compare(other Version) int {
	return v.semver().Compare(other.semver())
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports whether v and other are the same version.
func (v Version) Equal(other Version) bool {
	return v == other
}

// String returns "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v Version) semver() *semver.Version {
	return semver.New(v.Major, v.Minor, v.Patch, "", "")
}
