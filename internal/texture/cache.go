package texture

import (
	"image"
	"sync"
)

// Resolver resolves a texture path to a decoded image, or nil.
type Resolver interface {
	Resolve(path string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache. Failed loads are cached as nil
// so a missing file is only reported once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
	onErr func(path string, err error)
}

// NewCache creates an empty cache. onErr, if non-nil, is called once per
// texture that fails to load.
func NewCache(onErr func(path string, err error)) *Cache {
	return &Cache{
		items: make(map[string]*image.NRGBA),
		onErr: onErr,
	}
}

// Resolve loads and caches a texture by path. Returns nil if it cannot load.
func (c *Cache) Resolve(path string) *image.NRGBA {
	c.mu.RLock()
	img, exists := c.items[path]
	c.mu.RUnlock()
	if exists {
		return img
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Double-check: another worker may have loaded it meanwhile.
	if img, exists := c.items[path]; exists {
		return img
	}
	img, err := LoadTexture(path)
	if err != nil && c.onErr != nil {
		c.onErr(path, err)
	}
	c.items[path] = img
	return img
}

// Len returns the number of cached entries, failed loads included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
