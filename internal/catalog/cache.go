package catalog

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

// cachedEntry holds one cached catalog read. Exactly one field is set.
type cachedEntry struct {
	item    *domain.Item
	items   []domain.Item
	rewards []domain.RewardDefinition
}

// catalogCache is an expiring LRU over catalog reads.
// The generation counter lets a purge win against loads that started before it.
// writeMu pairs the generation check with the add so a purge cannot land between them.
type catalogCache struct {
	lru        *expirable.LRU[string, *cachedEntry]
	generation atomic.Uint64
	writeMu    sync.Mutex
}

func newCatalogCache(size int, ttl time.Duration) *catalogCache {
	return &catalogCache{
		lru: expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

func (c *catalogCache) get(key string) (*cachedEntry, bool) {
	return c.lru.Get(key)
}

// set stores entry unless the cache was purged since gen was read
func (c *catalogCache) set(gen uint64, key string, entry *cachedEntry) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.generation.Load() != gen {
		return
	}
	c.lru.Add(key, entry)
}

func (c *catalogCache) currentGeneration() uint64 {
	return c.generation.Load()
}

func (c *catalogCache) purge() {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.generation.Add(1)
	c.lru.Purge()
}

func (c *catalogCache) len() int {
	return c.lru.Len()
}
