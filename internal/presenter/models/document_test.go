package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anchore/libversion/libversion"
	"github.com/anchore/libversion/libversion/pkgorder"
)

func TestNewDocument(t *testing.T) {
	versions := []libversion.Version{
		libversion.NewVersion("1.0alpha1", libversion.NoFlags),
		libversion.NewVersion("1.0", libversion.NoFlags),
		libversion.NewVersion("1.0.0", libversion.NoFlags),
		libversion.NewVersion("1.0p1", libversion.PIsPatch),
	}

	doc := NewDocument(versions)

	assert.Equal(t, []Version{
		{Rank: 1, Version: "1.0alpha1"},
		{Rank: 2, Version: "1.0"},
		{Rank: 2, Version: "1.0.0"},
		{Rank: 3, Version: "1.0p1", Flags: "p-is-patch"},
	}, doc.Versions)
}

func TestNewDocument_Empty(t *testing.T) {
	doc := NewDocument(nil)
	assert.NotNil(t, doc.Versions)
	assert.Empty(t, doc.Versions)
}

func TestNewPackageDocument(t *testing.T) {
	packages := []pkgorder.Entry{
		{PackageName: "bash", PackageVersion: "5.1"},
		{PackageName: "bash", PackageVersion: "5.1.0"},
		{PackageName: "bash", PackageVersion: "5.0"},
		{PackageName: "zlib", PackageVersion: "1.3", PackageFlags: pkgorder.Rolling},
	}

	doc := NewPackageDocument(packages)

	assert.Equal(t, []Version{
		{Rank: 1, Name: "bash", Version: "5.1"},
		{Rank: 1, Name: "bash", Version: "5.1.0"},
		{Rank: 2, Name: "bash", Version: "5.0"},
		{Rank: 1, Name: "zlib", Version: "1.3", Flags: "rolling"},
	}, doc.Versions)
}
