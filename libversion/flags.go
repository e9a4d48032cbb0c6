package libversion

import (
	"fmt"
	"strings"
)

// Flags alter how a single version string is interpreted during a comparison.
type Flags uint32

const (
	// PIsPatch makes a bare "p" keyword a post-release ("patch") marker instead of a pre-release one.
	PIsPatch Flags = 1 << iota
	// AnyIsPatch makes every unrecognized keyword a post-release marker.
	AnyIsPatch
	// LowerBound makes the version compare below every version it is a prefix of.
	LowerBound
	// UpperBound makes the version compare above every version it is a prefix of.
	UpperBound
)

// NoFlags is the empty flag set.
const NoFlags Flags = 0

var flagNames = []struct {
	flag Flags
	name string
}{
	{PIsPatch, "p-is-patch"},
	{AnyIsPatch, "any-is-patch"},
	{LowerBound, "lower-bound"},
	{UpperBound, "upper-bound"},
}

// Has reports whether all bits of other are set.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// Intersects reports whether any bit of other is set.
func (f Flags) Intersects(other Flags) bool {
	return f&other != 0
}

func (f Flags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseFlags builds a flag set from flag names such as "p-is-patch" (case-insensitive, "_" and "-" are
// interchangeable). Empty names and "none" are ignored.
func ParseFlags(names ...string) (Flags, error) {
	var flags Flags
	for _, name := range names {
		n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
		if n == "" || n == "none" {
			continue
		}
		found := false
		for _, fn := range flagNames {
			if fn.name == n {
				flags |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return NoFlags, fmt.Errorf("unknown version flag: %q", name)
		}
	}
	return flags, nil
}
