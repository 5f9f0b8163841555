package version

import "strings"

// Compare returns -1, 0 or 1 depending on whether a sorts before, equal to or
// after b. Numeric components are compared first; ties fall through to a
// byte-wise comparison of the prerelease tokens. Metadata is ignored.
func Compare(a, b Version) int {
	if c := compareUint(a.major, b.major); c != 0 {
		return c
	}
	if c := compareUint(a.minor, b.minor); c != 0 {
		return c
	}
	if c := compareUint(a.patch, b.patch); c != 0 {
		return c
	}
	return strings.Compare(a.prerelease, b.prerelease)
}

// Equal reports whether a and b have the same precedence. Versions differing
// only in metadata are equal.
func Equal(a, b Version) bool {
	return Compare(a, b) == 0
}

// Less reports whether a sorts before b.
func Less(a, b Version) bool {
	return Compare(a, b) < 0
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
