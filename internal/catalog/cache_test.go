package catalog

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

func TestCatalogCache_SetAfterPurgeIsDropped(t *testing.T) {
	c := newCatalogCache(16, time.Minute)
	gen := c.currentGeneration()

	c.purge()
	c.set(gen, "item:a", &cachedEntry{item: &domain.Item{ID: "a"}})

	_, ok := c.get("item:a")
	assert.False(t, ok)
}

func TestCatalogCache_ConcurrentPurgeLeavesNoStaleEntries(t *testing.T) {
	c := newCatalogCache(1024, time.Minute)
	gen := c.currentGeneration()

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			c.set(gen, fmt.Sprintf("item:%d", i), &cachedEntry{item: &domain.Item{ID: fmt.Sprint(i)}})
		}(i)
	}

	close(start)
	c.purge()
	wg.Wait()

	assert.Equal(t, 0, c.len(), "entries loaded before a purge must not survive it")
}
