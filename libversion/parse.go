package libversion

// letterComponent builds a letter-carrying component for the given keyword class, using fallback for
// unrecognized keywords.
func letterComponent(class keywordClass, fallback ComponentKind, first byte) Component {
	kind := fallback
	switch class {
	case preReleaseKeyword:
		kind = PreReleaseKind
	case postReleaseKeyword:
		kind = PostReleaseKind
	}
	return Component{Kind: kind, Letter: toLower(first)}
}

// parseToken consumes a single letter run or number from the start of s (which must not be empty nor start with
// a separator).
func parseToken(s string, flags Flags) (Component, string) {
	letters, rest := splitLetters(s)
	if letters != "" {
		fallback := PreReleaseKind
		if flags.Has(AnyIsPatch) {
			fallback = PostReleaseKind
		}
		return letterComponent(classifyKeyword(letters, flags), fallback, letters[0]), rest
	}

	number, rest := splitDigits(trimZeroes(s))
	if number == "" {
		return zeroComponent, rest
	}
	return Component{Kind: NonZeroKind, Number: number}, rest
}

// defaultComponent is what an exhausted version string keeps producing.
func defaultComponent(flags Flags) Component {
	switch {
	case flags.Has(LowerBound):
		return lowerBoundComponent
	case flags.Has(UpperBound):
		return upperBoundComponent
	}
	return zeroComponent
}

// nextComponents consumes one unit of s (with leading separators already skipped) and returns the produced
// component, a second component for a glued letter suffix (when hasSecond is set), and the unconsumed remainder.
//
// A letter run glued to the preceding token is split off as its own component unless a digit follows it:
// "1.0a" yields 0 and letter-suffix(a), while "1.0a1" yields 0 here and leaves "a1" for the next unit.
func nextComponents(s string, flags Flags) (first, second Component, hasSecond bool, rest string) {
	if s == "" {
		return defaultComponent(flags), Component{}, false, ""
	}

	first, rest = parseToken(s, flags)

	letters, afterLetters := splitLetters(rest)
	if letters != "" && (afterLetters == "" || !isDigit(afterLetters[0])) {
		second = letterComponent(classifyKeyword(letters, flags), LetterSuffixKind, letters[0])
		return first, second, true, afterLetters
	}

	return first, Component{}, false, rest
}
