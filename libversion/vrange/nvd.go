package vrange

import (
	"fmt"
	"strings"

	"github.com/facebookincubator/nvdtools/cvefeed/nvd/schema"
	"github.com/facebookincubator/nvdtools/wfn"

	"github.com/anchore/libversion/internal/log"
)

const (
	applicationPart     = "a"
	operatingSystemPart = "o"
)

// operating systems whose CPEs describe a single upstream project (and thus can be matched by version)
var osVendorProductAllowList = map[[2]string]struct{}{
	{"coreboot", "coreboot"}:  {},
	{"linux", "linux"}:        {},
	{"linux", "linux_kernel"}: {},
	{"xen", "xen"}:            {},
}

// CPEMatch is the version range a vulnerability affects for a single vendor and product.
type CPEMatch struct {
	Vendor  string
	Product string
	Range   Range
}

func (m CPEMatch) String() string {
	return fmt.Sprintf("%s:%s %s", m.Vendor, m.Product, m.Range)
}

// FromCPEMatch derives the affected version range of an NVD CPE match. Explicit versionStart*/versionEnd* fields
// take effect when the CPE version is a wildcard, otherwise the CPE version (plus its update field) is the single
// affected version. A nil match is returned for entries which do not describe a vulnerable, versioned application.
func FromCPEMatch(m *schema.NVDCVEFeedJSON10DefCPEMatch) (*CPEMatch, error) {
	if m == nil || !m.Vulnerable {
		return nil, nil
	}

	attrs, err := wfn.UnbindFmtString(m.Cpe23Uri)
	if err != nil {
		return nil, fmt.Errorf("unable to parse CPE %q: %w", m.Cpe23Uri, err)
	}

	vendor, product := unescapeWFN(attrs.Vendor), unescapeWFN(attrs.Product)
	if !isVersionedProject(attrs.Part, vendor, product) {
		return nil, nil
	}

	result := CPEMatch{
		Vendor:  vendor,
		Product: product,
	}

	switch attrs.Version {
	case wfn.NA:
		return nil, nil
	case wfn.Any:
		result.Range = Range{
			Start: boundFromEither(m.VersionStartIncluding, m.VersionStartExcluding),
			End:   boundFromEither(m.VersionEndIncluding, m.VersionEndExcluding),
		}
	default:
		result.Range = Exact(cpeVersion(unescapeWFN(attrs.Version), attrs.Update))
	}

	return &result, nil
}

// FromNode collects the CPE match ranges of a configuration node. Only plain OR nodes are understood; nodes
// combining matches any other way are skipped, as are individual unusable matches.
func FromNode(node *schema.NVDCVEFeedJSON10DefNode) []CPEMatch {
	if node == nil {
		return nil
	}

	if !strings.EqualFold(node.Operator, "OR") || node.Negate {
		log.Debugf("skipping CVE configuration node (operator=%q negate=%v)", node.Operator, node.Negate)
		return nil
	}

	var matches []CPEMatch
	for _, m := range node.CPEMatch {
		match, err := FromCPEMatch(m)
		if err != nil {
			log.Debugf("skipping CPE match: %v", err)
			continue
		}
		if match == nil {
			continue
		}
		matches = append(matches, *match)
	}
	return matches
}

// Affected reports whether the given version of vendor:product falls into any of the matches.
func Affected(matches []CPEMatch, vendor, product, version string) bool {
	for _, m := range matches {
		if m.Vendor == vendor && m.Product == product && m.Range.Contains(version) {
			return true
		}
	}
	return false
}

func isVersionedProject(part, vendor, product string) bool {
	switch part {
	case applicationPart:
		return true
	case operatingSystemPart:
		_, ok := osVendorProductAllowList[[2]string{vendor, product}]
		return ok
	}
	return false
}

func boundFromEither(including, excluding string) *Bound {
	if including != "" {
		return Including(including)
	}
	if excluding != "" {
		return Excluding(excluding)
	}
	return nil
}

// cpeVersion folds a meaningful CPE update field into the version: "1.0" + "p1" is "1.0p1", "1.0" + "2" is "1.0-2".
func cpeVersion(version, update string) string {
	if update == wfn.Any || update == wfn.NA {
		return version
	}
	update = unescapeWFN(update)
	if update == "" {
		return version
	}
	if update[0] >= '0' && update[0] <= '9' {
		return version + "-" + update
	}
	return version + update
}

// unescapeWFN drops the backslash quoting WFN attribute values carry (e.g. `1\.0\.2` is 1.0.2).
func unescapeWFN(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	escaped := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		sb.WriteByte(s[i])
	}
	return sb.String()
}
