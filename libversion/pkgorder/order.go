/*
Package pkgorder orders packages of a single project the way a version listing presents them: rolling packages
first, then regular ones, then sink packages, newest version first within each tier.
*/
package pkgorder

import (
	"sort"

	"github.com/anchore/libversion/libversion"
)

// Package is a packaged version of a project in some repository.
type Package interface {
	Version() string
	Flags() PackageFlags
}

// NamedPackage is a Package that is presented under a name.
type NamedPackage interface {
	Package
	Name() string
}

// VersionFlags derives the flags the package version is compared with.
func VersionFlags(p Package) libversion.Flags {
	flags := libversion.NoFlags
	if p.Flags().Has(PIsPatch) {
		flags |= libversion.PIsPatch
	}
	if p.Flags().Has(AnyIsPatch) {
		flags |= libversion.AnyIsPatch
	}
	return flags
}

// Version is the package version together with the flags it is compared with.
func Version(p Package) libversion.Version {
	return libversion.NewVersion(p.Version(), VersionFlags(p))
}

// Metaorder ranks packages before their versions are looked at: rolling is 1, sink is -1 and everything else 0.
func Metaorder(p Package) int {
	switch {
	case p.Flags().Has(Rolling):
		return 1
	case p.Flags().Has(Sink):
		return -1
	}
	return 0
}

// CompareByVersion orders packages by metaorder and then by version, returning -1, 0, or 1 if a is smaller, equal,
// or larger than b, respectively.
func CompareByVersion(a, b Package) int {
	if res := compareInts(Metaorder(a), Metaorder(b)); res != 0 {
		return res
	}
	return Version(a).Compare(Version(b))
}

// CompareByNameAscVersionDesc orders packages by name first, then the greater package (per CompareByVersion)
// comes first.
func CompareByNameAscVersionDesc(a, b NamedPackage) int {
	switch {
	case a.Name() < b.Name():
		return -1
	case a.Name() > b.Name():
		return 1
	}
	return -CompareByVersion(a, b)
}

// SortByVersionDescending sorts packages greatest first, keeping the original order of equal packages.
func SortByVersionDescending[P Package](packages []P) {
	sort.SliceStable(packages, func(i, j int) bool {
		return CompareByVersion(packages[i], packages[j]) > 0
	})
}

// SortByNameAscVersionDescending sorts packages by name, greatest first within each name, keeping the original
// order of equal packages.
func SortByNameAscVersionDescending[P NamedPackage](packages []P) {
	sort.SliceStable(packages, func(i, j int) bool {
		return CompareByNameAscVersionDesc(packages[i], packages[j]) < 0
	})
}

// Newest returns the greatest of the given packages per CompareByVersion, the first one among equals. The boolean
// is false for no packages.
func Newest[P Package](packages []P) (P, bool) {
	var newest P
	if len(packages) == 0 {
		return newest, false
	}
	newest = packages[0]
	for _, p := range packages[1:] {
		if CompareByVersion(p, newest) > 0 {
			newest = p
		}
	}
	return newest, true
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
