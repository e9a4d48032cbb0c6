package libversion

import "fmt"

// ComponentKind is the class of a version component. Kinds are declared in ascending order: a component of a
// lower kind always compares below a component of a higher kind, regardless of payload.
type ComponentKind uint8

const (
	LowerBoundKind ComponentKind = iota
	PreReleaseKind
	ZeroKind
	PostReleaseKind
	NonZeroKind
	LetterSuffixKind
	UpperBoundKind
)

var componentKindStr = []string{
	"lower-bound",
	"pre-release",
	"zero",
	"post-release",
	"nonzero",
	"letter-suffix",
	"upper-bound",
}

func (k ComponentKind) String() string {
	if int(k) >= len(componentKindStr) {
		return fmt.Sprintf("ComponentKind(%d)", k)
	}
	return componentKindStr[k]
}

// Component is a single classified unit of a version string.
//
// Letter holds the lowercased first letter for PreReleaseKind, PostReleaseKind and LetterSuffixKind. Number holds
// the digits of a NonZeroKind component: never empty and never starting with '0', sliced from the source string.
type Component struct {
	Kind   ComponentKind
	Letter byte
	Number string
}

var (
	lowerBoundComponent = Component{Kind: LowerBoundKind}
	zeroComponent       = Component{Kind: ZeroKind}
	upperBoundComponent = Component{Kind: UpperBoundKind}
)

// Compare returns -1, 0 or 1 if c orders before, the same as, or after other.
func (c Component) Compare(other Component) int {
	if c.Kind != other.Kind {
		if c.Kind < other.Kind {
			return -1
		}
		return 1
	}

	switch c.Kind {
	case PreReleaseKind, PostReleaseKind, LetterSuffixKind:
		return compareBytes(c.Letter, other.Letter)
	case NonZeroKind:
		// both numbers are free of leading zeroes, so the longer one is larger
		if len(c.Number) != len(other.Number) {
			if len(c.Number) < len(other.Number) {
				return -1
			}
			return 1
		}
		switch {
		case c.Number < other.Number:
			return -1
		case c.Number > other.Number:
			return 1
		}
	}
	return 0
}

func (c Component) String() string {
	switch c.Kind {
	case PreReleaseKind, PostReleaseKind, LetterSuffixKind:
		return fmt.Sprintf("%s(%c)", c.Kind, c.Letter)
	case NonZeroKind:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Number)
	}
	return c.Kind.String()
}

func compareBytes(a, b byte) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
