package glyph

import (
	"image"
	"sync"

	"glyph-animator/internal/logging"
)

// Resolver resolves a glyph name to a decoded image.
type Resolver interface {
	Resolve(name string) (*image.NRGBA, error)
}

// Cache is a concurrency-safe glyph cache. Overrides from the index win
// over built-in glyphs.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
	index *Index
}

// NewCache creates a cache backed by index. A nil index disables overrides.
func NewCache(index *Index) *Cache {
	if index == nil {
		index = &Index{entries: map[string]string{}}
	}
	return &Cache{
		items: make(map[string]*image.NRGBA),
		index: index,
	}
}

// Resolve loads and caches a glyph by name.
func (c *Cache) Resolve(name string) (*image.NRGBA, error) {
	c.mu.RLock()
	img, ok := c.items[name]
	c.mu.RUnlock()
	if ok {
		return img, nil
	}

	img, err := c.load(name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[name]; ok {
		return existing, nil
	}
	c.items[name] = img
	return img, nil
}

func (c *Cache) load(name string) (*image.NRGBA, error) {
	if path, ok := c.index.ResolvePath(name); ok {
		img, err := Load(path)
		if err == nil {
			logging.Logger().Debug("glyph override loaded", "name", name, "path", path)
			return img, nil
		}
		logging.Logger().Warn("glyph override unusable, using built-in", "name", name, "err", err)
	}
	return Generate(name)
}

// Preload resolves every name, returning the first failure.
func (c *Cache) Preload(names ...string) error {
	for _, n := range names {
		if _, err := c.Resolve(n); err != nil {
			return err
		}
	}
	return nil
}
