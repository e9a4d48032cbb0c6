package pkgorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageFlagValues(t *testing.T) {
	assert.Equal(t, PackageFlags(1<<7), Rolling)
	assert.Equal(t, PackageFlags(1<<8), Sink)
	assert.Equal(t, PackageFlags(1<<10), PIsPatch)
	assert.Equal(t, PackageFlags(1<<11), AnyIsPatch)
	assert.Equal(t, PackageFlags(1<<20), Recalled)
}

func TestParsePackageFlags(t *testing.T) {
	tests := []struct {
		names    []string
		expected PackageFlags
		wantErr  require.ErrorAssertionFunc
	}{
		{names: nil, expected: 0},
		{names: []string{"none"}, expected: 0},
		{names: []string{"Rolling"}, expected: Rolling},
		{names: []string{"sink", "p_is_patch"}, expected: Sink | PIsPatch},
		{names: []string{" any-is-patch ", ""}, expected: AnyIsPatch},
		{names: []string{"bogus"}, wantErr: require.Error},
	}

	for _, test := range tests {
		t.Run(test.expected.String(), func(t *testing.T) {
			if test.wantErr == nil {
				test.wantErr = require.NoError
			}
			actual, err := ParsePackageFlags(test.names...)
			test.wantErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestPackageFlagsString(t *testing.T) {
	assert.Equal(t, "none", PackageFlags(0).String())
	assert.Equal(t, "rolling|p-is-patch", (PIsPatch | Rolling).String())
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		line     string
		expected Entry
		wantErr  require.ErrorAssertionFunc
	}{
		{
			line:     "openssh 9.6p1 p-is-patch",
			expected: Entry{PackageName: "openssh", PackageVersion: "9.6p1", PackageFlags: PIsPatch},
		},
		{
			line:     "  bash\t5.2  ",
			expected: Entry{PackageName: "bash", PackageVersion: "5.2"},
		},
		{
			line:     "firefox 130.0 rolling,vulnerable",
			expected: Entry{PackageName: "firefox", PackageVersion: "130.0", PackageFlags: Rolling | Vulnerable},
		},
		{line: "lonely", wantErr: require.Error},
		{line: "a 1.0 rolling extra", wantErr: require.Error},
		{line: "a 1.0 bogus", wantErr: require.Error},
	}

	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			if test.wantErr == nil {
				test.wantErr = require.NoError
			}
			actual, err := ParseEntry(test.line)
			test.wantErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, test.expected, actual)
		})
	}
}
