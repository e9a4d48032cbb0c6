package presenter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchore/libversion/internal/format"
	"github.com/anchore/libversion/internal/presenter/models"
)

func sampleDocument() models.Document {
	return models.Document{
		Versions: []models.Version{
			{Rank: 1, Version: "1.0alpha1"},
			{Rank: 2, Version: "1.0"},
			{Rank: 2, Version: "1.0.0"},
			{Rank: 3, Version: "1.0p1", Flags: "p-is-patch"},
		},
	}
}

func TestGetPresenter(t *testing.T) {
	doc := sampleDocument()
	assert.IsType(t, &TextPresenter{}, GetPresenter(format.TextFormat, Config{}, doc))
	assert.IsType(t, &JSONPresenter{}, GetPresenter(format.JSONFormat, Config{}, doc))
	assert.IsType(t, &TablePresenter{}, GetPresenter(format.TableFormat, Config{}, doc))
	assert.IsType(t, &TemplatePresenter{}, GetPresenter(format.TemplateFormat, Config{}, doc))
	assert.Nil(t, GetPresenter(format.UnknownFormat, Config{}, doc))
}

func TestTextPresenter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextPresenter(sampleDocument()).Present(&buf))
	assert.Equal(t, "1.0alpha1\n1.0\n1.0.0\n1.0p1\n", buf.String())

	buf.Reset()
	doc := models.Document{Versions: []models.Version{{Rank: 1, Name: "bash", Version: "5.1"}}}
	require.NoError(t, NewTextPresenter(doc).Present(&buf))
	assert.Equal(t, "bash 5.1\n", buf.String())
}

func TestJSONPresenter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONPresenter(sampleDocument()).Present(&buf))

	var actual models.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &actual))
	if diffs := deep.Equal(sampleDocument(), actual); len(diffs) > 0 {
		t.Errorf("unexpected document: %+v", diffs)
	}
	assert.NotContains(t, buf.String(), `"name"`)
}

func TestTablePresenter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTablePresenter(sampleDocument(), false).Present(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"RANK", "VERSION", "FLAGS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "1.0alpha1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"3", "1.0p1", "p-is-patch"}, strings.Fields(lines[4]))
}

func TestTablePresenter_Names(t *testing.T) {
	var buf bytes.Buffer
	doc := models.Document{Versions: []models.Version{{Rank: 1, Name: "bash", Version: "5.1", Flags: "rolling"}}}
	require.NoError(t, NewTablePresenter(doc, false).Present(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"NAME", "RANK", "VERSION", "FLAGS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"bash", "1", "5.1", "rolling"}, strings.Fields(lines[1]))
}

func TestTablePresenter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTablePresenter(models.Document{}, true).Present(&buf))
	assert.Equal(t, "No versions given\n", buf.String())
}

func TestTemplatePresenter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTemplatePresenter(sampleDocument(), "test-fixtures/listing.tmpl").Present(&buf))
	assert.Equal(t, "1:1.0ALPHA1,2:1.0,2:1.0.0,3:1.0P1\n", buf.String())
}

func TestTemplatePresenter_MissingFile(t *testing.T) {
	err := NewTemplatePresenter(sampleDocument(), "test-fixtures/missing.tmpl").Present(&bytes.Buffer{})
	assert.Error(t, err)
}

func TestFuncMap_VersionCompare(t *testing.T) {
	compare, ok := FuncMap["versionCompare"].(func(string, string) int)
	require.True(t, ok)
	assert.Equal(t, -1, compare("1.0rc1", "1.0"))
}
