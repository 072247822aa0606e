package emby

import "sync"

// cacheStore backs every lazily computed collection: the root aggregate's
// named collections and entity-scoped ones like an album's songs. Entries
// are whole resolved sequences keyed by a logical name; a forced fetch
// always replaces, never merges. All invalidation flows through
// invalidateAll so the refresh semantics stay in one place.
type cacheStore struct {
	mu      sync.RWMutex
	entries map[string][]Object
}

func newCacheStore() *cacheStore {
	return &cacheStore{entries: make(map[string][]Object)}
}

// get returns the cached sequence for key if it is present and non-empty.
func (c *cacheStore) get(key string) ([]Object, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items, ok := c.entries[key]
	if !ok || len(items) == 0 {
		return nil, false
	}
	return items, true
}

// put unconditionally overwrites the entry for key.
func (c *cacheStore) put(key string, items []Object) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = items
}

// invalidateAll clears every entry and returns the keys that were
// populated, so the caller can re-run their forced accessors.
func (c *cacheStore) invalidateAll() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	c.entries = make(map[string][]Object)
	return keys
}
