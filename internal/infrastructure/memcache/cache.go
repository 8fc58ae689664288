package memcache

import (
	"sync"
	"time"

	"github.com/mononotes/mononotes/internal/domain/contract"
	"github.com/mononotes/mononotes/internal/domain/entity"
)

type cacheEntry struct {
	posts     []entity.Post
	tag       string
	fetchedAt time.Time
}

// Cache is an in-process TTL cache for post fetch results. Concurrent
// readers never block each other; a refresh by one reader may run while
// others still serve the stale-but-unevicted entry.
type Cache struct {
	mu    sync.RWMutex
	items map[string]cacheEntry
	ttl   time.Duration
}

// New creates a Cache with a fixed TTL for every entry.
func New(ttl time.Duration) *Cache {
	return &Cache{
		items: make(map[string]cacheEntry),
		ttl:   ttl,
	}
}

var _ contract.IPostCache = (*Cache)(nil)

// GetPosts returns the cached value and true when present and fresh.
func (c *Cache) GetPosts(key string) ([]entity.Post, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Since(entry.fetchedAt) > c.ttl {
		// re-check under the write lock: a concurrent SetPosts may have
		// refreshed the entry since the read above
		c.mu.Lock()
		if current, ok := c.items[key]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return entry.posts, true
}

// SetPosts inserts or overwrites an entry under the given invalidation tag.
func (c *Cache) SetPosts(key, tag string, posts []entity.Post) {
	c.mu.Lock()
	c.items[key] = cacheEntry{posts: posts, tag: tag, fetchedAt: time.Now()}
	c.mu.Unlock()
}

// InvalidateTag drops every entry carrying the tag, regardless of TTL.
// Safe to call redundantly.
func (c *Cache) InvalidateTag(tag string) {
	c.mu.Lock()
	for key, entry := range c.items {
		if entry.tag == tag {
			delete(c.items, key)
		}
	}
	c.mu.Unlock()
}

// Size returns the current number of entries.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
