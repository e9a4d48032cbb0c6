package libversion

// componentCursor lazily splits a version string into components. Once the string is used up it produces the
// default component forever.
type componentCursor struct {
	rest       string
	flags      Flags
	carried    Component
	hasCarried bool
	exhausted  bool
}

func newComponentCursor(version string, flags Flags) componentCursor {
	return componentCursor{
		rest:  version,
		flags: flags,
	}
}

func (c *componentCursor) next() Component {
	if c.hasCarried {
		c.hasCarried = false
		return c.carried
	}

	s := trimSeparators(c.rest)
	if s == "" {
		c.exhausted = true
	}

	first, second, hasSecond, rest := nextComponents(s, c.flags)
	c.rest = rest
	if hasSecond {
		c.carried = second
		c.hasCarried = true
	}
	return first
}

// isExhausted reports whether the cursor has started producing the default component.
func (c *componentCursor) isExhausted() bool {
	return c.exhausted
}
