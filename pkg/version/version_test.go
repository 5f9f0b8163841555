package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		major      uint64
		minor      uint64
		patch      uint64
		prerelease string
		metadata   string
	}{
		{name: "release", input: "1.2.3", major: 1, minor: 2, patch: 3},
		{name: "zeros", input: "0.0.0"},
		{name: "prerelease", input: "1.2.3-rc1", major: 1, minor: 2, patch: 3, prerelease: "rc1"},
		{name: "metadata", input: "1.2.3+build5", major: 1, minor: 2, patch: 3, metadata: "build5"},
		{name: "both", input: "1.2.3-rc1+build5", major: 1, minor: 2, patch: 3, prerelease: "rc1", metadata: "build5"},
		{name: "hyphens inside tokens", input: "4.5.6-alpha-2+sha-abc", major: 4, minor: 5, patch: 6, prerelease: "alpha-2", metadata: "sha-abc"},
		{name: "prerelease made of a hyphen", input: "1.2.3--", major: 1, minor: 2, patch: 3, prerelease: "-"},
		{name: "leading zeros", input: "01.002.3", major: 1, minor: 2, patch: 3},
		{name: "large components", input: "18446744073709551615.0.0", major: 18446744073709551615},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.major, v.Major())
			assert.Equal(t, tt.minor, v.Minor())
			assert.Equal(t, tt.patch, v.Patch())
			assert.Equal(t, tt.prerelease, v.Prerelease())
			assert.Equal(t, tt.metadata, v.Metadata())
			assert.Equal(t, tt.input, v.String(), "serialization must reproduce the input")
		})
	}
}

// TestParseInvalid pins the grammar boundary. Every numeric field needs at
// least one digit, and a "-" or "+" sigil must be followed by a token, so
// "1.2.3-" and "1.2.-3" are rejected rather than read as an empty prerelease
// or a negative patch.
func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"",
		"1.2",
		"1",
		"1.2.3.4",
		"1.2.",
		"1..3",
		".2.3",
		"1.2.-3",
		"-1.2.3",
		"1.2.3-",
		"1.2.3+",
		"1.2.3-+meta",
		"1.2.3-rc.1",
		"1.2.3+build.5",
		"1.2.3-rc_1",
		"1.2.3+meta+more",
		"v1.2.3",
		" 1.2.3",
		"1.2.3 ",
		"1.2.3\n",
		"a.b.c",
		"1.2.3-ünïcode",
		"18446744073709551616.0.0",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)

			var gerr *GrammarError
			require.True(t, errors.As(err, &gerr))
			assert.Equal(t, input, gerr.Input)
			assert.Empty(t, gerr.Field)
			assert.False(t, IsValid(input))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	triples := [][3]uint64{{0, 0, 0}, {1, 2, 3}, {10, 0, 7}, {999, 1000, 1}}
	tokens := []string{"", "alpha", "rc1", "0", "a-b-c", "-"}

	for _, tr := range triples {
		for _, pre := range tokens {
			for _, meta := range tokens {
				v := New(tr[0], tr[1], tr[2])
				v, err := v.WithPrerelease(pre)
				require.NoError(t, err)
				v, err = v.WithMetadata(meta)
				require.NoError(t, err)

				got, err := Parse(v.String())
				require.NoError(t, err, "parsing %q", v.String())
				assert.Equal(t, v, got, "round trip of %q", v.String())
			}
		}
	}
}

func TestNew(t *testing.T) {
	v := New(1, 2, 3)
	assert.Equal(t, "1.2.3", v.String())
	assert.Equal(t, MustParse("1.2.3"), v)
	assert.Empty(t, v.Prerelease())
	assert.Empty(t, v.Metadata())
}

func TestWithTokens(t *testing.T) {
	v := MustParse("1.2.3-rc1+b1")

	cleared, err := v.WithPrerelease("")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3+b1", cleared.String())

	cleared, err = v.WithMetadata("")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-rc1", cleared.String())

	_, err = v.WithPrerelease("rc.1")
	var gerr *GrammarError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "prerelease", gerr.Field)
	assert.Equal(t, "rc.1", gerr.Input)

	_, err = v.WithMetadata("a b")
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "metadata", gerr.Field)

	// the receiver is untouched
	assert.Equal(t, "1.2.3-rc1+b1", v.String())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("1.2") })
	assert.NotPanics(t, func() { MustParse("1.2.3") })
}

func TestValidToken(t *testing.T) {
	assert.True(t, ValidToken("rc1"))
	assert.True(t, ValidToken("A-z-0"))
	assert.False(t, ValidToken(""))
	assert.False(t, ValidToken("rc.1"))
	assert.False(t, ValidToken("rc+1"))
	assert.False(t, ValidToken("rc 1"))
}

func TestIsCanonical(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1.2.3", true},
		{"1.2.3-rc1+build5", true},
		{"0.1.0", true},
		{"01.2.3", false},
		{"1.02.3", false},
		{"1.2.3-01", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MustParse(tt.input).IsCanonical(), tt.input)
	}
}

func TestGrammarErrorMessage(t *testing.T) {
	_, err := Parse("1.2")
	assert.EqualError(t, err, `version "1.2" does not match MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA]`)

	_, err = MustParse("1.0.0").WithMetadata("x.y")
	assert.EqualError(t, err, `invalid metadata "x.y": must be one or more of [0-9A-Za-z-]`)
}
