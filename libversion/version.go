package libversion

import "fmt"

// Version pairs a raw version string with the flags it should be compared under. Equality is defined by
// comparison, not by text: "1.0", "1.00" and "v1.0" are all equal.
type Version struct {
	Raw   string
	Flags Flags
}

func NewVersion(raw string, flags Flags) Version {
	return Version{
		Raw:   raw,
		Flags: flags,
	}
}

// Compare compares this version to another version.
// This returns -1, 0, or 1 if this version is smaller,
// equal, or larger than the other version, respectively.
func (v Version) Compare(other Version) int {
	return CompareWithFlags(v.Raw, v.Flags, other.Raw, other.Flags)
}

func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

func (v Version) String() string {
	if v.Flags == NoFlags {
		return v.Raw
	}
	return fmt.Sprintf("%s (%s)", v.Raw, v.Flags)
}
