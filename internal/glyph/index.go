package glyph

import (
	"os"
	"path/filepath"
	"strings"
)

// extRank orders override formats; formats with alpha beat JPEG.
var extRank = map[string]int{
	".jpg":  1,
	".jpeg": 1,
	".tga":  2,
	".webp": 2,
	".png":  3,
}

// Index maps lowercase glyph names to override files.
type Index struct {
	entries map[string]string // stem.lower() -> full path
}

// BuildIndex scans dir (non-recursively) for image files. An empty dir
// yields an empty index.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx
	}

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		rank, ok := extRank[ext]
		if !ok {
			continue
		}
		stem := strings.ToLower(strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		path := filepath.Join(dir, e.Name())

		existing, exists := idx.entries[stem]
		if !exists || rank > extRank[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[stem] = path
		}
	}

	return idx
}

// ResolvePath returns the override path for a glyph name, or ("", false).
func (idx *Index) ResolvePath(name string) (string, bool) {
	path, ok := idx.entries[strings.ToLower(name)]
	return path, ok
}

// Len returns the number of indexed overrides.
func (idx *Index) Len() int {
	return len(idx.entries)
}
