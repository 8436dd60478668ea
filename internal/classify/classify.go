package classify

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Category is the folder a file is filed under.
type Category string

const (
	CategoryImages Category = "images"
	CategoryDocs   Category = "docs"
	CategoryAudio  Category = "audio"
	CategoryVideo  Category = "video"
	CategoryOther  Category = "other"
)

// ErrUnknownCategory is returned when extra extensions target a category
// outside the fixed set.
var ErrUnknownCategory = errors.New("unknown category")

// categoryOrder is the fixed lookup and listing order.
var categoryOrder = []Category{CategoryImages, CategoryDocs, CategoryAudio, CategoryVideo}

var builtin = map[Category][]string{
	CategoryImages: {".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".tiff"},
	CategoryDocs:   {".pdf", ".doc", ".docx", ".xls", ".xlsx", ".csv", ".txt", ".rtf", ".md", ".ppt", ".pptx"},
	CategoryAudio:  {".mp3", ".wav", ".m4a", ".aac", ".flac"},
	CategoryVideo:  {".mp4", ".mov", ".avi", ".mkv", ".webm"},
}

// Table maps extensions to categories. The zero value classifies everything
// as other.
type Table struct {
	byExt map[string]Category
}

var defaultTable = mustTable(nil)

// Default returns the built-in table.
func Default() *Table { return defaultTable }

// Classify maps an extension with the built-in table.
func Classify(ext string) Category { return defaultTable.Classify(ext) }

// NewTable builds the built-in table plus extra extensions per category.
// Extras may only extend images, docs, audio and video.
func NewTable(extra map[Category][]string) (*Table, error) {
	t := &Table{byExt: make(map[string]Category)}
	for _, c := range categoryOrder {
		for _, ext := range builtin[c] {
			t.byExt[ext] = c
		}
	}

	for c, exts := range extra {
		if !isFileable(c) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
		for _, raw := range exts {
			ext := normalize(raw)
			if ext == "" {
				return nil, fmt.Errorf("category %s: empty extension", c)
			}
			if owner, ok := t.byExt[ext]; ok && owner != c {
				return nil, fmt.Errorf("extension %s already belongs to %s", ext, owner)
			}
			t.byExt[ext] = c
		}
	}
	return t, nil
}

func mustTable(extra map[Category][]string) *Table {
	t, err := NewTable(extra)
	if err != nil {
		panic(err)
	}
	return t
}

// Classify returns the category for ext, case-insensitively. The leading
// dot is optional. Unknown and empty extensions are other.
func (t *Table) Classify(ext string) Category {
	if t == nil {
		return CategoryOther
	}
	if c, ok := t.byExt[normalize(ext)]; ok {
		return c
	}
	return CategoryOther
}

// Extensions returns the extensions mapped to c, in no particular order.
func (t *Table) Extensions(c Category) []string {
	if t == nil {
		return nil
	}
	var exts []string
	for ext, owner := range t.byExt {
		if owner == c {
			exts = append(exts, ext)
		}
	}
	return exts
}

// Categories lists every label, other last.
func Categories() []Category {
	out := make([]Category, 0, len(categoryOrder)+1)
	out = append(out, categoryOrder...)
	return append(out, CategoryOther)
}

// ParseCategory validates a label from config.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// ExtensionOf returns the lower-cased suffix of a file name, dot included.
// Dotfiles such as ".bashrc" have no suffix.
func ExtensionOf(name string) string {
	base := filepath.Base(name)
	trimmed := strings.TrimLeft(base, ".")
	return strings.ToLower(filepath.Ext(trimmed))
}

func isFileable(c Category) bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

func normalize(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
