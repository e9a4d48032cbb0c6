package libversion

// the helpers below operate on raw bytes: anything outside ASCII letters and digits (including every byte of a
// multi-byte UTF-8 sequence) is treated as a separator.

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSeparator(c byte) bool {
	return !isLetter(c) && !isDigit(c)
}

// toLower folds A-Z only, leaving every other byte untouched.
func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// equalFold reports whether s matches the lowercase literal lower, ignoring ASCII case in s.
func equalFold(s, lower string) bool {
	if len(s) != len(lower) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if toLower(s[i]) != lower[i] {
			return false
		}
	}
	return true
}

// hasPrefixFold reports whether s starts with the lowercase literal prefix, ignoring ASCII case in s.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && equalFold(s[:len(prefix)], prefix)
}

// splitLetters returns the leading run of letters and the remainder.
func splitLetters(s string) (string, string) {
	i := 0
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// splitDigits returns the leading run of digits and the remainder.
func splitDigits(s string) (string, string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func trimZeroes(s string) string {
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	return s[i:]
}

func trimSeparators(s string) string {
	i := 0
	for i < len(s) && isSeparator(s[i]) {
		i++
	}
	return s[i:]
}
