package constraint

import "errors"

// ErrUnsupportedGroups is returned for constraint phrases using parentheses.
var ErrUnsupportedGroups = errors.New("version constraint groups are unsupported (use of parentheses)")
