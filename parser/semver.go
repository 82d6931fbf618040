package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Version is a parsed "major.minor[.patch][-prerelease]" version string such
// as the value of a document's openapi field.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
}

// ParseVersion parses s. Two or three numeric components are accepted.
func ParseVersion(s string) (Version, error) {
	var prerelease string
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		prerelease = s[idx+1:]
		s = s[:idx]
	}

	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid version format: %q", s)
	}

	nums := [3]int{}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > math.MaxInt32 || part != strconv.Itoa(n) {
			return Version{}, fmt.Errorf("invalid version component %q in %q", part, s)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2], Prerelease: prerelease}, nil
}

// String returns the canonical three-component form.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	return s
}

// LessThan reports whether v < other. A prerelease sorts before its release;
// prereleases compare lexically.
func (v Version) LessThan(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	if v.Patch != other.Patch {
		return v.Patch < other.Patch
	}
	if v.Prerelease == "" || other.Prerelease == "" {
		return v.Prerelease != "" && other.Prerelease == ""
	}
	return v.Prerelease < other.Prerelease
}

// SameMinor reports whether v and other share major and minor components.
func (v Version) SameMinor(other Version) bool {
	return v.Major == other.Major && v.Minor == other.Minor
}
