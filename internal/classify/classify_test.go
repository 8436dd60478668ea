package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_BuiltinTable(t *testing.T) {
	for c, exts := range builtin {
		for _, ext := range exts {
			assert.Equal(t, c, Classify(ext), "Classify(%q)", ext)
			// Repeated lookups agree.
			assert.Equal(t, Classify(ext), Classify(ext))
		}
	}
}

func TestClassify_Cases(t *testing.T) {
	tests := []struct {
		ext  string
		want Category
	}{
		{".png", CategoryImages},
		{".PNG", CategoryImages},
		{"png", CategoryImages},
		{" .Jpeg ", CategoryImages},
		{".pdf", CategoryDocs},
		{".Md", CategoryDocs},
		{".flac", CategoryAudio},
		{".mkv", CategoryVideo},
		{".xyz", CategoryOther},
		{"", CategoryOther},
		{".", CategoryOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.ext), "Classify(%q)", tt.ext)
	}
}

func TestBuiltin_Disjoint(t *testing.T) {
	seen := make(map[string]Category)
	for c, exts := range builtin {
		for _, ext := range exts {
			owner, dup := seen[ext]
			assert.False(t, dup, "%s listed under %s and %s", ext, owner, c)
			seen[ext] = c
		}
	}
}

func TestNewTable_Extras(t *testing.T) {
	tbl, err := NewTable(map[Category][]string{
		CategoryImages: {".HEIC", "avif"},
		CategoryDocs:   {".odt"},
	})
	require.NoError(t, err)

	assert.Equal(t, CategoryImages, tbl.Classify(".heic"))
	assert.Equal(t, CategoryImages, tbl.Classify(".avif"))
	assert.Equal(t, CategoryDocs, tbl.Classify("ODT"))
	assert.Equal(t, CategoryImages, tbl.Classify(".png"))
	assert.Equal(t, CategoryOther, tbl.Classify(".xyz"))

	// Built-in table is untouched.
	assert.Equal(t, CategoryOther, Classify(".heic"))
}

func TestNewTable_UnknownCategory(t *testing.T) {
	_, err := NewTable(map[Category][]string{"archives": {".zip"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestNewTable_OtherIsNotFileable(t *testing.T) {
	_, err := NewTable(map[Category][]string{CategoryOther: {".zip"}})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestNewTable_Conflict(t *testing.T) {
	_, err := NewTable(map[Category][]string{CategoryAudio: {".png"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already belongs to images")
}

func TestNewTable_EmptyExtension(t *testing.T) {
	_, err := NewTable(map[Category][]string{CategoryAudio: {""}})
	assert.Error(t, err)
}

func TestTable_Nil(t *testing.T) {
	var tbl *Table
	assert.Equal(t, CategoryOther, tbl.Classify(".png"))
	assert.Nil(t, tbl.Extensions(CategoryImages))
}

func TestTable_Extensions(t *testing.T) {
	assert.ElementsMatch(t, builtin[CategoryAudio], Default().Extensions(CategoryAudio))
	assert.Empty(t, Default().Extensions(CategoryOther))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []Category{CategoryImages, CategoryDocs, CategoryAudio, CategoryVideo, CategoryOther}, Categories())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Images ")
	require.NoError(t, err)
	assert.Equal(t, CategoryImages, c)

	c, err = ParseCategory("other")
	require.NoError(t, err)
	assert.Equal(t, CategoryOther, c)

	_, err = ParseCategory("music")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"a.png", ".png"},
		{"Photo.JPG", ".jpg"},
		{"archive.tar.gz", ".gz"},
		{"README", ""},
		{".bashrc", ""},
		{".config.yaml", ".yaml"},
		{"/some/dir/song.mp3", ".mp3"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtensionOf(tt.name), "ExtensionOf(%q)", tt.name)
	}
}
