package version

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is matched by every grammar violation.
	ErrInvalidFormat = errors.New("invalid version format")
	// ErrOverflow is returned when a bump would exceed the numeric range.
	ErrOverflow = errors.New("version component overflow")
	// ErrUnknownInstruction is returned by Bump for an unrecognized instruction kind.
	ErrUnknownInstruction = errors.New("unknown bump instruction")
)

// GrammarError describes input that does not satisfy the version grammar.
type GrammarError struct {
	// Input is the offending string exactly as given.
	Input string
	// Field names the token that was checked ("prerelease" or "metadata"),
	// empty when a whole version string was parsed.
	Field string
}

func (e *GrammarError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s %q: must be one or more of [0-9A-Za-z-]", e.Field, e.Input)
	}
	return fmt.Sprintf("version %q does not match MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA]", e.Input)
}

// Unwrap lets errors.Is match ErrInvalidFormat.
func (e *GrammarError) Unwrap() error {
	return ErrInvalidFormat
}
