package constraint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/anchore/libversion/libversion"
	"github.com/anchore/libversion/libversion/vrange"
)

// operator group only matches on range operators (GT, LT, GTE, LTE, EQ, NE)
// version group matches on everything after the operator, which may include whitespace and quotes
var unitPattern = regexp.MustCompile(`^\s*(?P<operator>[><=!]*)\s*(?P<version>.*?)\s*$`)

// unit is a single "<operator> <version>" condition.
type unit struct {
	operator Operator
	version  string
	// prefix is set for operands written as "1.0.*", which stand for every version starting with "1.0"
	prefix bool
}

func parseUnit(phrase string) (*unit, error) {
	match := unitPattern.FindStringSubmatch(phrase)
	if match == nil {
		return nil, fmt.Errorf("unable to parse constraint unit: %q", phrase)
	}

	op, err := ParseOperator(match[unitPattern.SubexpIndex("operator")])
	if err != nil {
		return nil, fmt.Errorf("unable to parse constraint operator in %q: %w", phrase, err)
	}

	version := strings.Trim(match[unitPattern.SubexpIndex("version")], `"`)

	prefix := false
	if trimmed := strings.TrimSuffix(version, "*"); trimmed != version {
		prefix = true
		version = strings.TrimRight(trimmed, ".")
	}

	if version == "" && !prefix {
		return nil, fmt.Errorf("no version given in constraint unit: %q", phrase)
	}

	return &unit{
		operator: op,
		version:  version,
		prefix:   prefix,
	}, nil
}

// ranges expresses the unit as the union of version ranges it accepts. The constraint operand is interpreted with
// the given flags.
func (u unit) ranges(flags libversion.Flags) vrange.Ranges {
	lower := flags
	upper := flags
	if u.prefix {
		// a bare "*" has no prefix at all and is unbounded on both ends
		if u.version == "" {
			if u.operator == NE {
				return nil
			}
			return vrange.Ranges{{}}
		}
		lower |= libversion.LowerBound
		upper |= libversion.UpperBound
	}

	switch u.operator {
	case NE:
		return vrange.Ranges{
			{End: &vrange.Bound{Version: u.version, Excluded: true, Flags: lower}},
			{Start: &vrange.Bound{Version: u.version, Excluded: true, Flags: upper}},
		}
	case GT:
		return vrange.Ranges{{Start: &vrange.Bound{Version: u.version, Excluded: true, Flags: upper}}}
	case GTE:
		return vrange.Ranges{{Start: &vrange.Bound{Version: u.version, Flags: lower}}}
	case LT:
		return vrange.Ranges{{End: &vrange.Bound{Version: u.version, Excluded: true, Flags: lower}}}
	case LTE:
		return vrange.Ranges{{End: &vrange.Bound{Version: u.version, Flags: upper}}}
	}
	return vrange.Ranges{{
		Start: &vrange.Bound{Version: u.version, Flags: lower},
		End:   &vrange.Bound{Version: u.version, Flags: upper},
	}}
}

func (u unit) String() string {
	version := u.version
	if u.prefix {
		version = strings.TrimLeft(version+".*", ".")
	}
	if u.operator == EQ {
		return version
	}
	return fmt.Sprintf("%s %s", u.operator, version)
}
