package libversion

// CompareWithFlags compares two version strings, each interpreted according to its own flags.
// This returns -1, 0, or 1 if a is smaller, equal, or larger than b, respectively.
//
// Every string is a valid version: bytes other than ASCII letters and digits only separate components.
func CompareWithFlags(a string, aFlags Flags, b string, bFlags Flags) int {
	aCursor := newComponentCursor(a, aFlags)
	bCursor := newComponentCursor(b, bFlags)

	// bound flags only show up in the default component, so make sure it is compared at least once
	// even when both strings run out at the same time
	extraRound := (aFlags | bFlags).Intersects(LowerBound | UpperBound)

	for {
		if res := aCursor.next().Compare(bCursor.next()); res != 0 {
			return res
		}

		if aCursor.isExhausted() && bCursor.isExhausted() {
			if !extraRound {
				return 0
			}
			extraRound = false
		}
	}
}

// Compare compares two version strings without any flags.
// This returns -1, 0, or 1 if a is smaller, equal, or larger than b, respectively.
func Compare(a, b string) int {
	return CompareWithFlags(a, NoFlags, b, NoFlags)
}

// Components returns the components a version string decomposes into, up to (not including) the default
// component produced once the string is used up.
func Components(version string, flags Flags) []Component {
	var components []Component
	cursor := newComponentCursor(version, flags)
	for {
		c := cursor.next()
		if cursor.isExhausted() {
			return components
		}
		components = append(components, c)
	}
}
