package pkgorder

import (
	"fmt"
	"strings"
)

// PackageFlags are the per-package markers a repository assigns while processing its packages.
type PackageFlags uint32

const (
	Remove PackageFlags = 1 << iota
	Devel
	Ignore
	Incorrect
	Untrusted
	NoScheme
	_
	// Rolling packages track upstream heads and sort above any released version.
	Rolling
	// Sink packages sort below any released version.
	Sink
	Legacy
	// PIsPatch makes a lone "p" in the package version a post-release ("1.0p1" is a patch to 1.0).
	PIsPatch
	// AnyIsPatch makes every unknown word in the package version a post-release.
	AnyIsPatch
	Trace
	WeakDevel
	Stable
	AltVer
	Vulnerable
	AltScheme
	NoLegacy
	Outdated
	Recalled
)

var packageFlagNames = []struct {
	flag PackageFlags
	name string
}{
	{Remove, "remove"},
	{Devel, "devel"},
	{Ignore, "ignore"},
	{Incorrect, "incorrect"},
	{Untrusted, "untrusted"},
	{NoScheme, "noscheme"},
	{Rolling, "rolling"},
	{Sink, "sink"},
	{Legacy, "legacy"},
	{PIsPatch, "p-is-patch"},
	{AnyIsPatch, "any-is-patch"},
	{Trace, "trace"},
	{WeakDevel, "weak-devel"},
	{Stable, "stable"},
	{AltVer, "altver"},
	{Vulnerable, "vulnerable"},
	{AltScheme, "altscheme"},
	{NoLegacy, "nolegacy"},
	{Outdated, "outdated"},
	{Recalled, "recalled"},
}

func (f PackageFlags) Has(flag PackageFlags) bool {
	return f&flag == flag
}

func (f PackageFlags) String() string {
	var names []string
	for _, n := range packageFlagNames {
		if f.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParsePackageFlags combines package flags by name ("rolling", "p-is-patch", ...). Names are case insensitive and
// may use "_" in place of "-".
func ParsePackageFlags(names ...string) (PackageFlags, error) {
	var flags PackageFlags
	for _, name := range names {
		normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
		if normalized == "" || normalized == "none" {
			continue
		}
		found := false
		for _, n := range packageFlagNames {
			if n.name == normalized {
				flags |= n.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown package flag: %q", name)
		}
	}
	return flags, nil
}
