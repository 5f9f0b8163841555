package version

import (
	"fmt"
	"math"
	"strconv"
)

// Kind selects the transition applied by Bump.
type Kind int

const (
	KindMajor Kind = iota + 1
	KindMinor
	KindPatch
	KindPrerelease
	KindMetadata
	KindForce
)

// String returns the bump-type label used on the command line.
func (k Kind) String() string {
	switch k {
	case KindMajor:
		return "major"
	case KindMinor:
		return "minor"
	case KindPatch:
		return "patch"
	case KindPrerelease:
		return "prerel"
	case KindMetadata:
		return "meta"
	case KindForce:
		return "force"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Instruction is a single bump request. Value holds the prerelease token,
// metadata token or forced version string, depending on Kind.
type Instruction struct {
	Kind  Kind
	Value string
}

func (in Instruction) String() string {
	if in.Value == "" {
		return in.Kind.String()
	}
	return in.Kind.String() + " " + in.Value
}

// BumpMajor increments major and resets everything below it.
func BumpMajor() Instruction { return Instruction{Kind: KindMajor} }

// BumpMinor increments minor and resets patch and the suffixes.
func BumpMinor() Instruction { return Instruction{Kind: KindMinor} }

// BumpPatch increments patch and clears the suffixes.
func BumpPatch() Instruction { return Instruction{Kind: KindPatch} }

// SetPrerelease replaces the prerelease token and clears metadata.
func SetPrerelease(p string) Instruction { return Instruction{Kind: KindPrerelease, Value: p} }

// SetMetadata replaces the metadata token.
func SetMetadata(m string) Instruction { return Instruction{Kind: KindMetadata, Value: m} }

// Force discards the current version in favour of v, with no ordering checks.
func Force(v string) Instruction { return Instruction{Kind: KindForce, Value: v} }

// Bump applies in to current and returns the resulting version. current is
// never modified; on error the zero Version is returned.
func Bump(current Version, in Instruction) (Version, error) {
	switch in.Kind {
	case KindMajor:
		major, err := increment(current.major)
		if err != nil {
			return Version{}, fmt.Errorf("major %s: %w", current.majorText, err)
		}
		return New(major, 0, 0), nil
	case KindMinor:
		minor, err := increment(current.minor)
		if err != nil {
			return Version{}, fmt.Errorf("minor %s: %w", current.minorText, err)
		}
		next := New(current.major, minor, 0)
		next.majorText = current.majorText
		return next, nil
	case KindPatch:
		patch, err := increment(current.patch)
		if err != nil {
			return Version{}, fmt.Errorf("patch %s: %w", current.patchText, err)
		}
		next := New(current.major, current.minor, patch)
		next.majorText, next.minorText = current.majorText, current.minorText
		return next, nil
	case KindPrerelease:
		if err := validateToken("prerelease", in.Value); err != nil {
			return Version{}, err
		}
		next := current
		next.prerelease = in.Value
		next.metadata = ""
		return next, nil
	case KindMetadata:
		if err := validateToken("metadata", in.Value); err != nil {
			return Version{}, err
		}
		next := current
		next.metadata = in.Value
		return next, nil
	case KindForce:
		return Parse(in.Value)
	default:
		return Version{}, fmt.Errorf("%w: %s", ErrUnknownInstruction, in.Kind)
	}
}

func increment(n uint64) (uint64, error) {
	if n == math.MaxUint64 {
		return 0, ErrOverflow
	}
	return n + 1, nil
}
