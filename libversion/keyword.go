package libversion

type keywordClass int

const (
	unknownKeyword keywordClass = iota
	preReleaseKeyword
	postReleaseKeyword
)

// classifyKeyword maps a run of letters onto a release class. The first matching rule wins.
func classifyKeyword(s string, flags Flags) keywordClass {
	switch {
	case equalFold(s, "alpha"), equalFold(s, "beta"), equalFold(s, "rc"):
		return preReleaseKeyword
	case hasPrefixFold(s, "pre"):
		return preReleaseKeyword
	case hasPrefixFold(s, "post"), hasPrefixFold(s, "patch"):
		return postReleaseKeyword
	case equalFold(s, "pl"): // patchlevel
		return postReleaseKeyword
	case equalFold(s, "errata"):
		return postReleaseKeyword
	case flags.Has(PIsPatch) && equalFold(s, "p"):
		return postReleaseKeyword
	}
	return unknownKeyword
}

func (k keywordClass) String() string {
	switch k {
	case preReleaseKeyword:
		return "pre-release"
	case postReleaseKeyword:
		return "post-release"
	}
	return "unknown"
}
