package vrange

import (
	"testing"

	"github.com/facebookincubator/nvdtools/cvefeed/nvd/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCPEMatch(t *testing.T) {
	tests := []struct {
		name     string
		match    *schema.NVDCVEFeedJSON10DefCPEMatch
		expected *CPEMatch
		wantErr  require.ErrorAssertionFunc
	}{
		{
			name: "range",
			match: &schema.NVDCVEFeedJSON10DefCPEMatch{
				Cpe23Uri:              "cpe:2.3:a:gnu:bash:*:*:*:*:*:*:*:*",
				VersionStartIncluding: "4.0",
				VersionEndExcluding:   "5.1",
				Vulnerable:            true,
			},
			expected: &CPEMatch{
				Vendor:  "gnu",
				Product: "bash",
				Range:   Range{Start: Including("4.0"), End: Excluding("5.1")},
			},
		},
		{
			name: "including takes precedence over excluding",
			match: &schema.NVDCVEFeedJSON10DefCPEMatch{
				Cpe23Uri:              "cpe:2.3:a:gnu:bash:*:*:*:*:*:*:*:*",
				VersionStartExcluding: "3.0",
				VersionStartIncluding: "4.0",
				VersionEndIncluding:   "5.1",
				Vulnerable:            true,
			},
			expected: &CPEMatch{
				Vendor:  "gnu",
				Product: "bash",
				Range:   Range{Start: Including("4.0"), End: Including("5.1")},
			},
		},
		{
			name: "wildcard version without bounds",
			match: &schema.NVDCVEFeedJSON10DefCPEMatch{
				Cpe23Uri:   "cpe:2.3:a:gnu:bash:*:*:*:*:*:*:*:*",
				Vulnerable: true,
			},
			expected: &CPEMatch{
				Vendor:  "gnu",
				Product: "bash",
			},
		},
		{
			name: "single version with letter update",
			match: &schema.NVDCVEFeedJSON10DefCPEMatch{
				Cpe23Uri:   "cpe:2.3:a:openssl:openssl:1.0.2:k:*:*:*:*:*:*",
				Vulnerable: true,
			},
			expected: &CPEMatch{
				Vendor:  "openssl",
				Product: "openssl",
				Range:   Exact("1.0.2k"),
			},
		},
		{
			name: "single version with numeric update",
			match: &schema.NVDCVEFeedJSON10DefCPEMatch{
				Cpe23Uri:   "cpe:2.3:a:vendor:product:2.4:3:*:*:*:*:*:*",
				Vulnerable: true,
			},
			expected: &CPEMatch{
				Vendor:  "vendor",
				Product: "product",
				Range:   Exact("2.4-3"),
			},
		},
		{
			name: "allowed operating system",
			match: &schema.NVDCVEFeedJSON10DefCPEMatch{
				Cpe23Uri:            "cpe:2.3:o:linux:linux_kernel:*:*:*:*:*:*:*:*",
				VersionEndExcluding: "5.10.8",
				Vulnerable:          true,
			},
			expected: &CPEMatch{
				Vendor:  "linux",
				Product: "linux_kernel",
				Range:   Range{End: Excluding("5.10.8")},
			},
		},
		{
			name: "other operating system",
			match: &schema.NVDCVEFeedJSON10DefCPEMatch{
				Cpe23Uri:   "cpe:2.3:o:microsoft:windows_10:1607:*:*:*:*:*:*:*",
				Vulnerable: true,
			},
		},
		{
			name: "hardware",
			match: &schema.NVDCVEFeedJSON10DefCPEMatch{
				Cpe23Uri:   "cpe:2.3:h:cisco:router:1.0:*:*:*:*:*:*:*",
				Vulnerable: true,
			},
		},
		{
			name: "not applicable version",
			match: &schema.NVDCVEFeedJSON10DefCPEMatch{
				Cpe23Uri:   "cpe:2.3:a:gnu:bash:-:*:*:*:*:*:*:*",
				Vulnerable: true,
			},
		},
		{
			name: "not vulnerable",
			match: &schema.NVDCVEFeedJSON10DefCPEMatch{
				Cpe23Uri:   "cpe:2.3:a:gnu:bash:4.0:*:*:*:*:*:*:*",
				Vulnerable: false,
			},
		},
		{
			name: "nil",
		},
		{
			name: "malformed",
			match: &schema.NVDCVEFeedJSON10DefCPEMatch{
				Cpe23Uri:   "not-a-cpe",
				Vulnerable: true,
			},
			wantErr: require.Error,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.wantErr == nil {
				test.wantErr = require.NoError
			}
			actual, err := FromCPEMatch(test.match)
			test.wantErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestFromNode(t *testing.T) {
	node := &schema.NVDCVEFeedJSON10DefNode{
		Operator: "OR",
		CPEMatch: []*schema.NVDCVEFeedJSON10DefCPEMatch{
			{
				Cpe23Uri:            "cpe:2.3:a:gnu:bash:*:*:*:*:*:*:*:*",
				VersionEndIncluding: "4.3",
				Vulnerable:          true,
			},
			{
				Cpe23Uri:   "cpe:2.3:a:gnu:bash:4.3:p1:*:*:*:*:*:*",
				Vulnerable: true,
			},
			{
				Cpe23Uri:   "garbage",
				Vulnerable: true,
			},
			{
				Cpe23Uri:   "cpe:2.3:h:acme:toaster:1:*:*:*:*:*:*:*",
				Vulnerable: true,
			},
		},
	}

	matches := FromNode(node)
	require.Len(t, matches, 2)
	assert.Equal(t, "gnu:bash (-∞, 4.3]", matches[0].String())
	assert.Equal(t, "gnu:bash 4.3p1", matches[1].String())

	assert.True(t, Affected(matches, "gnu", "bash", "4.2"))
	assert.True(t, Affected(matches, "gnu", "bash", "4.3"))
	assert.False(t, Affected(matches, "gnu", "bash", "4.3.1"))
	assert.False(t, Affected(matches, "gnu", "zsh", "4.2"))

	assert.Empty(t, FromNode(nil))
	assert.Empty(t, FromNode(&schema.NVDCVEFeedJSON10DefNode{Operator: "AND", CPEMatch: node.CPEMatch}))
	assert.Empty(t, FromNode(&schema.NVDCVEFeedJSON10DefNode{Operator: "OR", Negate: true, CPEMatch: node.CPEMatch}))
}
