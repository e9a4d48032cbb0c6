package libversion

import "sort"

var _ sort.Interface = (*Versions)(nil)

// Versions orders a list of versions ascending.
type Versions []Version

func (vs Versions) Len() int {
	return len(vs)
}

func (vs Versions) Less(i, j int) bool {
	return vs[i].Less(vs[j])
}

func (vs Versions) Swap(i, j int) {
	vs[i], vs[j] = vs[j], vs[i]
}

// Sort orders versions ascending. Versions comparing equal keep their relative order.
func Sort(vs []Version) {
	sort.Stable(Versions(vs))
}

// SortDescending orders versions newest first. Versions comparing equal keep their relative order.
func SortDescending(vs []Version) {
	sort.Stable(sort.Reverse(Versions(vs)))
}

// SortStrings orders plain version strings ascending, interpreting each with the given flags.
func SortStrings(vs []string, flags Flags) {
	sort.SliceStable(vs, func(i, j int) bool {
		return CompareWithFlags(vs[i], flags, vs[j], flags) < 0
	})
}

// Max returns the greatest version (the first one found among equals). The boolean is false when vs is empty.
func Max(vs ...Version) (Version, bool) {
	return extreme(vs, 1)
}

// Min returns the least version (the first one found among equals). The boolean is false when vs is empty.
func Min(vs ...Version) (Version, bool) {
	return extreme(vs, -1)
}

func extreme(vs []Version, direction int) (Version, bool) {
	if len(vs) == 0 {
		return Version{}, false
	}
	best := vs[0]
	for _, v := range vs[1:] {
		if v.Compare(best) == direction {
			best = v
		}
	}
	return best, true
}
