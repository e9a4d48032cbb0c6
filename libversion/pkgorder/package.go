package pkgorder

import (
	"fmt"
	"strings"
)

// Entry is a plain Package implementation.
type Entry struct {
	PackageName    string       `json:"name"`
	PackageVersion string       `json:"version"`
	PackageFlags   PackageFlags `json:"flags"`
}

func (e Entry) Name() string {
	return e.PackageName
}

func (e Entry) Version() string {
	return e.PackageVersion
}

func (e Entry) Flags() PackageFlags {
	return e.PackageFlags
}

func (e Entry) String() string {
	if e.PackageFlags == 0 {
		return fmt.Sprintf("%s %s", e.PackageName, e.PackageVersion)
	}
	return fmt.Sprintf("%s %s (%s)", e.PackageName, e.PackageVersion, e.PackageFlags)
}

// ParseEntry reads a "NAME VERSION [FLAG[,FLAG...]]" line.
func ParseEntry(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return Entry{}, fmt.Errorf("expected 'NAME VERSION [FLAGS]', got %q", line)
	}

	var flags PackageFlags
	if len(fields) == 3 {
		var err error
		flags, err = ParsePackageFlags(strings.Split(fields[2], ",")...)
		if err != nil {
			return Entry{}, fmt.Errorf("invalid package line %q: %w", line, err)
		}
	}

	return Entry{
		PackageName:    fields[0],
		PackageVersion: fields[1],
		PackageFlags:   flags,
	}, nil
}
