// Package version implements the version grammar used by semver: parsing,
// serialization, ordering and bump transitions.
//
// # Grammar
//
// A version is written as
//
//	MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA]
//
// where each numeric field is one or more ASCII digits and PRERELEASE and
// METADATA are single tokens of ASCII letters, digits and hyphens. Dots are not
// allowed inside either token, and no "v" prefix or surrounding whitespace is
// accepted. Digits are kept as written, so "01.2.3" serializes back to "01.2.3",
// while comparisons and bumps operate on the numeric value.
//
// # Ordering
//
// Compare orders versions by major, minor and patch numerically, then by a plain
// byte-wise comparison of the prerelease tokens. Metadata never takes part in the
// ordering. Note that this is not SemVer 2.0 precedence: a release without a
// prerelease token sorts before the same release with one, because the empty
// string sorts first.
//
//	a := version.MustParse("1.0.0")
//	b := version.MustParse("1.0.0-alpha")
//	version.Compare(a, b) // -1
//
// # Bumping
//
// Bump applies one Instruction to a version and returns a new value:
//
//	next, err := version.Bump(current, version.BumpMinor())
//
// Errors are returned, never raised as process exits. Grammar violations match
// ErrInvalidFormat with errors.Is and carry the offending input in a
// *GrammarError.
package version
