package version

import (
	"regexp"
	"strconv"

	modsemver "golang.org/x/mod/semver"
)

var (
	versionPattern = regexp.MustCompile(`^([0-9]+)\.([0-9]+)\.([0-9]+)(-[0-9A-Za-z-]+)?(\+[0-9A-Za-z-]+)?$`)
	tokenPattern   = regexp.MustCompile(`^[0-9A-Za-z-]+$`)
)

// Version is an immutable semantic version. The zero value serializes to
// ".." and is not valid; construct versions with Parse or New.
type Version struct {
	major, minor, patch uint64

	// digits as written, so leading zeros survive serialization.
	majorText, minorText, patchText string

	prerelease string
	metadata   string
}

// New returns the release version major.minor.patch with no prerelease or
// metadata.
func New(major, minor, patch uint64) Version {
	return Version{
		major:     major,
		minor:     minor,
		patch:     patch,
		majorText: strconv.FormatUint(major, 10),
		minorText: strconv.FormatUint(minor, 10),
		patchText: strconv.FormatUint(patch, 10),
	}
}

// Parse decomposes input into a Version. The whole string must match the
// grammar; otherwise a *GrammarError carrying input is returned.
func Parse(input string) (Version, error) {
	m := versionPattern.FindStringSubmatch(input)
	if m == nil {
		return Version{}, &GrammarError{Input: input}
	}

	var v Version
	var err error
	if v.major, err = strconv.ParseUint(m[1], 10, 64); err != nil {
		return Version{}, &GrammarError{Input: input}
	}
	if v.minor, err = strconv.ParseUint(m[2], 10, 64); err != nil {
		return Version{}, &GrammarError{Input: input}
	}
	if v.patch, err = strconv.ParseUint(m[3], 10, 64); err != nil {
		return Version{}, &GrammarError{Input: input}
	}
	v.majorText, v.minorText, v.patchText = m[1], m[2], m[3]

	if m[4] != "" {
		v.prerelease = m[4][1:]
	}
	if m[5] != "" {
		v.metadata = m[5][1:]
	}
	return v, nil
}

// MustParse is like Parse but panics if input is not a valid version.
func MustParse(input string) Version {
	v, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return v
}

// IsValid reports whether input satisfies the version grammar.
func IsValid(input string) bool {
	_, err := Parse(input)
	return err == nil
}

// ValidToken reports whether s can be used as a prerelease or metadata token.
func ValidToken(s string) bool {
	return tokenPattern.MatchString(s)
}

func validateToken(field, s string) error {
	if !ValidToken(s) {
		return &GrammarError{Input: s, Field: field}
	}
	return nil
}

// Major returns the numeric major component.
func (v Version) Major() uint64 { return v.major }

// Minor returns the numeric minor component.
func (v Version) Minor() uint64 { return v.minor }

// Patch returns the numeric patch component.
func (v Version) Patch() uint64 { return v.patch }

// Prerelease returns the prerelease token without its leading "-", or "".
func (v Version) Prerelease() string { return v.prerelease }

// Metadata returns the metadata token without its leading "+", or "".
func (v Version) Metadata() string { return v.metadata }

// WithPrerelease returns a copy of v carrying prerelease p. An empty p clears
// the token.
func (v Version) WithPrerelease(p string) (Version, error) {
	if p != "" {
		if err := validateToken("prerelease", p); err != nil {
			return Version{}, err
		}
	}
	v.prerelease = p
	return v, nil
}

// WithMetadata returns a copy of v carrying metadata m. An empty m clears the
// token.
func (v Version) WithMetadata(m string) (Version, error) {
	if m != "" {
		if err := validateToken("metadata", m); err != nil {
			return Version{}, err
		}
	}
	v.metadata = m
	return v, nil
}

// String serializes v as MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA].
func (v Version) String() string {
	s := v.majorText + "." + v.minorText + "." + v.patchText
	if v.prerelease != "" {
		s += "-" + v.prerelease
	}
	if v.metadata != "" {
		s += "+" + v.metadata
	}
	return s
}

// IsCanonical reports whether v is also valid strict semantic versioning as
// understood by Go module tooling. Leading zeros in numeric fields or in a
// numeric prerelease make a version non-canonical.
func (v Version) IsCanonical() bool {
	return modsemver.IsValid("v" + v.String())
}
