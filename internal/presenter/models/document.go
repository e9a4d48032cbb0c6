package models

import (
	"github.com/anchore/libversion/libversion"
	"github.com/anchore/libversion/libversion/pkgorder"
)

// Document is the presentable result of ordering a list of versions.
type Document struct {
	Versions []Version `json:"versions"`
}

// Version is a single entry of an ordered version listing.
type Version struct {
	// Rank is the 1-based position of the version, shared by versions comparing equal.
	Rank    int    `json:"rank"`
	Name    string `json:"name,omitempty"`
	Version string `json:"version"`
	Flags   string `json:"flags,omitempty"`
}

// NewDocument builds a document from versions already in their final order.
func NewDocument(versions []libversion.Version) Document {
	doc := Document{Versions: make([]Version, 0, len(versions))}
	rank := 0
	for i, v := range versions {
		if i == 0 || !v.Equal(versions[i-1]) {
			rank++
		}
		doc.Versions = append(doc.Versions, Version{
			Rank:    rank,
			Version: v.Raw,
			Flags:   flagsString(v.Flags),
		})
	}
	return doc
}

// NewPackageDocument builds a document from packages already in their final order. Ranks restart for every
// package name.
func NewPackageDocument(packages []pkgorder.Entry) Document {
	doc := Document{Versions: make([]Version, 0, len(packages))}
	rank := 0
	for i, p := range packages {
		switch {
		case i == 0 || p.Name() != packages[i-1].Name():
			rank = 1
		case pkgorder.CompareByVersion(p, packages[i-1]) != 0:
			rank++
		}
		var flags string
		if p.Flags() != 0 {
			flags = p.Flags().String()
		}
		doc.Versions = append(doc.Versions, Version{
			Rank:    rank,
			Name:    p.Name(),
			Version: p.Version(),
			Flags:   flags,
		})
	}
	return doc
}

func flagsString(f libversion.Flags) string {
	if f == libversion.NoFlags {
		return ""
	}
	return f.String()
}
