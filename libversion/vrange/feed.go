package vrange

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/facebookincubator/nvdtools/cvefeed/nvd/schema"
)

// Vulnerability is a CVE together with the CPE match ranges its configurations declare.
type Vulnerability struct {
	ID      string
	Matches []CPEMatch
}

// ReadFeed decodes an NVD JSON 1.0 CVE feed.
func ReadFeed(reader io.Reader) (*schema.NVDCVEFeedJSON10, error) {
	var feed schema.NVDCVEFeedJSON10
	if err := json.NewDecoder(reader).Decode(&feed); err != nil {
		return nil, fmt.Errorf("unable to decode NVD feed: %w", err)
	}
	return &feed, nil
}

// FromFeed collects the CPE match ranges of every CVE in the feed. CVEs without any usable match are left out.
func FromFeed(feed *schema.NVDCVEFeedJSON10) []Vulnerability {
	if feed == nil {
		return nil
	}

	var vulns []Vulnerability
	for _, item := range feed.CVEItems {
		if item == nil || item.CVE == nil || item.CVE.CVEDataMeta == nil || item.Configurations == nil {
			continue
		}

		var matches []CPEMatch
		for _, node := range item.Configurations.Nodes {
			matches = append(matches, FromNode(node)...)
		}
		if len(matches) == 0 {
			continue
		}

		vulns = append(vulns, Vulnerability{
			ID:      item.CVE.CVEDataMeta.ID,
			Matches: matches,
		})
	}
	return vulns
}

// AffectedBy returns the IDs of the vulnerabilities affecting the given version of vendor:product, in feed order.
func AffectedBy(vulns []Vulnerability, vendor, product, version string) []string {
	var ids []string
	for _, v := range vulns {
		if Affected(v.Matches, vendor, product, version) {
			ids = append(ids, v.ID)
		}
	}
	return ids
}
