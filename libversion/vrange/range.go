package vrange

import (
	"fmt"
	"strings"

	"github.com/anchore/libversion/libversion"
)

// Bound is one end of a version range.
type Bound struct {
	Version  string
	Excluded bool
	// Flags are applied to Version when comparing against it (e.g. libversion.UpperBound for a "1.0.*" end).
	Flags libversion.Flags
}

// Range is a (possibly open-ended) interval of versions. A nil Start or End means the range is unbounded on that
// side.
type Range struct {
	Start *Bound
	End   *Bound
}

func Including(version string) *Bound {
	return &Bound{Version: version}
}

func Excluding(version string) *Bound {
	return &Bound{Version: version, Excluded: true}
}

// Exact is the range holding only versions equal to the given one.
func Exact(version string) Range {
	return Range{
		Start: Including(version),
		End:   Including(version),
	}
}

// Prefix is the range of all versions the given version is a prefix of, e.g. Prefix("1.0") holds 1.0alpha1,
// 1.0, 1.0.5 and 1.0patch2 but not 1.1.
func Prefix(version string) Range {
	return Range{
		Start: &Bound{Version: version, Flags: libversion.LowerBound},
		End:   &Bound{Version: version, Flags: libversion.UpperBound},
	}
}

// Contains reports whether the version (compared without flags) falls within the range.
func (r Range) Contains(version string) bool {
	return r.ContainsVersion(libversion.NewVersion(version, libversion.NoFlags))
}

func (r Range) ContainsVersion(v libversion.Version) bool {
	if r.Start != nil {
		cmp := libversion.CompareWithFlags(r.Start.Version, r.Start.Flags, v.Raw, v.Flags)
		if cmp > 0 || cmp == 0 && r.Start.Excluded {
			return false
		}
	}
	if r.End != nil {
		cmp := v.Compare(libversion.NewVersion(r.End.Version, r.End.Flags))
		if cmp > 0 || cmp == 0 && r.End.Excluded {
			return false
		}
	}
	return true
}

func (r Range) isPrefix() bool {
	return r.Start != nil && r.End != nil &&
		r.Start.Version == r.End.Version &&
		r.Start.Flags.Has(libversion.LowerBound) && r.End.Flags.Has(libversion.UpperBound)
}

// String renders the range in interval notation, e.g. "[1.0, 2.0)" or "(-∞, 1.5]". A single-version range renders
// as the version itself and a prefix range as "1.0.*".
func (r Range) String() string {
	switch {
	case r.Start == nil && r.End == nil:
		return "(-∞, +∞)"
	case r.isPrefix():
		return strings.TrimRight(r.Start.Version, ".") + ".*"
	case r.Start != nil && r.End != nil && r.Start.Version == r.End.Version && r.Start.Flags == r.End.Flags:
		return r.Start.Version
	}

	open, start := "(", "-∞"
	if r.Start != nil {
		start = r.Start.Version
		if !r.Start.Excluded {
			open = "["
		}
	}

	end, closing := "+∞", ")"
	if r.End != nil {
		end = r.End.Version
		if !r.End.Excluded {
			closing = "]"
		}
	}

	return fmt.Sprintf("%s%s, %s%s", open, start, end, closing)
}

// Ranges is a union of ranges.
type Ranges []Range

func (rs Ranges) Contains(version string) bool {
	return rs.ContainsVersion(libversion.NewVersion(version, libversion.NoFlags))
}

func (rs Ranges) ContainsVersion(v libversion.Version) bool {
	for _, r := range rs {
		if r.ContainsVersion(v) {
			return true
		}
	}
	return false
}

func (rs Ranges) String() string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}
	return strings.Join(parts, " || ")
}
