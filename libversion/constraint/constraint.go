package constraint

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/anchore/libversion/internal/log"
	"github.com/anchore/libversion/libversion"
)

// Constraint is a parsed version constraint phrase such as ">= 1.0, < 2.0 || 3.1.*". Units separated by a comma
// must all be satisfied; groups separated by "||" are alternatives.
type Constraint struct {
	raw   string
	flags libversion.Flags
	units [][]unit
}

// New parses a constraint phrase. Operand versions are compared without flags.
func New(phrase string) (*Constraint, error) {
	return NewWithFlags(phrase, libversion.NoFlags)
}

// NewWithFlags parses a constraint phrase whose operand versions are interpreted with the given flags (bound flags
// are ignored, operands ending in "*" select them).
func NewWithFlags(phrase string, flags libversion.Flags) (*Constraint, error) {
	groups, err := scanExpression(phrase)
	if err != nil {
		return nil, fmt.Errorf("unable to parse constraint %q: %w", phrase, err)
	}

	var errs error
	orUnits := make([][]unit, 0, len(groups))
	for _, group := range groups {
		andUnits := make([]unit, 0, len(group))
		for _, part := range group {
			u, err := parseUnit(part)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			andUnits = append(andUnits, *u)
		}
		orUnits = append(orUnits, andUnits)
	}
	if errs != nil {
		return nil, fmt.Errorf("invalid constraint %q: %w", phrase, errs)
	}

	return &Constraint{
		raw:   phrase,
		flags: flags &^ (libversion.LowerBound | libversion.UpperBound),
		units: orUnits,
	}, nil
}

// MustNew is meant for testing only, do not use within the library
func MustNew(phrase string) *Constraint {
	c, err := New(phrase)
	if err != nil {
		panic(err)
	}
	return c
}

// Satisfied reports whether the version (compared without flags) meets the constraint. An empty constraint is
// satisfied by every version.
func (c Constraint) Satisfied(version string) bool {
	return c.SatisfiedBy(libversion.NewVersion(version, libversion.NoFlags))
}

func (c Constraint) SatisfiedBy(v libversion.Version) bool {
	if len(c.units) == 0 {
		return true
	}

	for _, andUnits := range c.units {
		allSatisfied := true
		for _, u := range andUnits {
			if !u.ranges(c.flags).ContainsVersion(v) {
				log.Debugf("version %s does not satisfy %q of constraint %q", v, u, c.raw)
				allSatisfied = false
				break
			}
		}
		if allSatisfied {
			return true
		}
	}
	return false
}

func (c Constraint) String() string {
	if len(c.units) == 0 {
		return "none"
	}
	groups := make([]string, len(c.units))
	for i, andUnits := range c.units {
		parts := make([]string, len(andUnits))
		for j, u := range andUnits {
			parts[j] = u.String()
		}
		groups[i] = strings.Join(parts, ", ")
	}
	return strings.Join(groups, " || ")
}

// Raw returns the phrase the constraint was parsed from.
func (c Constraint) Raw() string {
	return c.raw
}
