package vrange

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anchore/libversion/libversion"
)

func TestRange_Contains(t *testing.T) {
	tests := []struct {
		name     string
		r        Range
		included []string
		excluded []string
	}{
		{
			name:     "unbounded",
			r:        Range{},
			included: []string{"", "0", "1.0", "99999", "1.0alpha1"},
		},
		{
			name:     "closed",
			r:        Range{Start: Including("1.0"), End: Including("2.0")},
			included: []string{"1.0", "1.00", "1.0patch1", "1.5", "2.0", "2.0.0"},
			excluded: []string{"1.0alpha1", "0.9", "2.0a", "2.0.1", "2.1"},
		},
		{
			name:     "half open",
			r:        Range{Start: Including("1.0"), End: Excluding("2.0")},
			included: []string{"1.0", "1.9.9", "2.0rc1"},
			excluded: []string{"2.0", "2.0.0", "0.9"},
		},
		{
			name:     "open start",
			r:        Range{Start: Excluding("1.0"), End: Including("2.0")},
			included: []string{"1.0.1", "1.0patch1", "2.0"},
			excluded: []string{"1.0", "1.0.0", "1.0rc1"},
		},
		{
			name:     "only end",
			r:        Range{End: Excluding("1.2.3")},
			included: []string{"0", "1.2.2", "1.2.3beta1"},
			excluded: []string{"1.2.3", "1.3"},
		},
		{
			name:     "only start",
			r:        Range{Start: Including("3")},
			included: []string{"3", "3.0.0", "4"},
			excluded: []string{"2.99", "3.0rc1"},
		},
		{
			name:     "exact",
			r:        Exact("1.0.2k"),
			included: []string{"1.0.2k", "1.0.2K", "01.0.2k"},
			excluded: []string{"1.0.2", "1.0.2l", "1.0.2.1"},
		},
		{
			name:     "prefix",
			r:        Prefix("1.0"),
			included: []string{"1.0", "1.0alpha1", "1.0.5", "1.0patch2", "1.0a"},
			excluded: []string{"0.9", "1.1", "1.1alpha1", "2"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, v := range test.included {
				assert.True(t, test.r.Contains(v), "expected %q in %s", v, test.r)
			}
			for _, v := range test.excluded {
				assert.False(t, test.r.Contains(v), "expected %q outside %s", v, test.r)
			}
		})
	}
}

func TestRange_ContainsVersion_Flags(t *testing.T) {
	r := Range{Start: Excluding("1.0")}

	assert.False(t, r.ContainsVersion(libversion.NewVersion("1.0p1", libversion.NoFlags)))
	assert.True(t, r.ContainsVersion(libversion.NewVersion("1.0p1", libversion.PIsPatch)))
}

func TestRange_String(t *testing.T) {
	tests := []struct {
		r        Range
		expected string
	}{
		{r: Range{}, expected: "(-∞, +∞)"},
		{r: Range{Start: Including("1.0")}, expected: "[1.0, +∞)"},
		{r: Range{Start: Excluding("1.0")}, expected: "(1.0, +∞)"},
		{r: Range{End: Including("2.0")}, expected: "(-∞, 2.0]"},
		{r: Range{End: Excluding("2.0")}, expected: "(-∞, 2.0)"},
		{r: Range{Start: Including("1.0"), End: Excluding("2.0")}, expected: "[1.0, 2.0)"},
		{r: Exact("1.0"), expected: "1.0"},
		{r: Prefix("1.0"), expected: "1.0.*"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.r.String())
		})
	}
}

func TestRanges(t *testing.T) {
	rs := Ranges{
		{Start: Including("1.0"), End: Excluding("1.1")},
		Exact("2.0.3"),
	}

	assert.True(t, rs.Contains("1.0.5"))
	assert.True(t, rs.Contains("2.0.3"))
	assert.False(t, rs.Contains("1.1"))
	assert.False(t, rs.Contains("2.0.4"))
	assert.False(t, Ranges(nil).Contains("1.0"))
	assert.Equal(t, "[1.0, 1.1) || 2.0.3", rs.String())
}
