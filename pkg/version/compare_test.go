package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.2.3", "1.2.4", -1},
		{"1.3.0", "1.2.9", 1},
		{"2.0.0", "1.99.99", 1},
		{"0.0.1", "0.1.0", -1},
		{"10.0.0", "9.0.0", 1},
		{"1.2.3+a", "1.2.3+b", 0},
		{"1.2.3-rc1+a", "1.2.3-rc1", 0},
		{"01.2.3", "1.2.3", 0},
		{"1.010.0", "1.9.0", 1},

		// byte-wise prerelease ordering, not SemVer precedence
		{"1.0.0", "1.0.0-alpha", -1},
		{"1.0.0-alpha", "1.0.0-beta", -1},
		{"1.0.0-rc1", "1.0.0-beta", 1},
		{"1.0.0-rc10", "1.0.0-rc9", -1},
		{"1.0.0-Z", "1.0.0-a", -1},
		{"1.0.0-1", "1.0.0-a", -1},
		{"1.0.0-alpha", "1.0.0-alpha-1", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)
			assert.Equal(t, tt.want, Compare(a, b))
			assert.Equal(t, -tt.want, Compare(b, a), "antisymmetry")
			assert.Equal(t, tt.want == 0, Equal(a, b))
			assert.Equal(t, tt.want < 0, Less(a, b))
		})
	}
}

// TestCompareReleaseBeforePrerelease asserts the literal result of comparing
// "" with "alpha": the release sorts first.
func TestCompareReleaseBeforePrerelease(t *testing.T) {
	release := New(1, 0, 0)
	pre, err := release.WithPrerelease("alpha")
	assert.NoError(t, err)
	assert.Equal(t, -1, Compare(release, pre))
}

func TestCompareProperties(t *testing.T) {
	inputs := []string{
		"0.0.0", "0.0.1", "0.1.0", "1.0.0", "1.0.0-alpha", "1.0.0-beta",
		"1.0.0-rc1", "1.0.0+meta", "1.0.0-alpha+meta", "1.2.3", "01.2.3",
		"2.0.0-0", "2.0.0", "10.0.0",
	}
	vs := make([]Version, 0, len(inputs))
	for _, in := range inputs {
		vs = append(vs, MustParse(in))
	}

	for _, a := range vs {
		assert.Equal(t, 0, Compare(a, a), "reflexive for %s", a)
		for _, b := range vs {
			assert.Equal(t, Compare(a, b), -Compare(b, a), "antisymmetric for %s, %s", a, b)
			for _, c := range vs {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 {
					assert.LessOrEqual(t, Compare(a, c), 0, "transitive for %s <= %s <= %s", a, b, c)
				}
			}
		}
	}
}
