package cache

import (
	"sync"

	"github.com/tiendc/go-deepcopy"

	"jsonlens/types"
)

// Cache is a bounded LRU cache of per-file schema columns and export
// headers, keyed by the file's content hash (internal/hashutil.FileHash).
// Every return path copies out of the stored entry (columns via go-deepcopy,
// header strings via a plain slice copy) so a caller mutating the returned
// slice can never corrupt the cached copy —
// the teacher's SortStage.Execute has a "make a copy of rows slice to avoid
// mutating cached data" comment guarding the same hazard by hand; here the
// copy itself is delegated to a library instead of a manual loop.
type Cache struct {
	mu      sync.Mutex
	list    *lruList
	entries map[string]*entry
	max     int
}

func New(maxEntries int) *Cache {
	return &Cache{
		list:    newLRUList(),
		entries: make(map[string]*entry),
		max:     maxEntries,
	}
}

func (c *Cache) GetColumns(fileHash string) ([]types.ColumnInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[fileHash]
	if !ok || e.columns == nil {
		return nil, false
	}
	c.list.moveToFront(c.list.nodes[fileHash])
	var out []types.ColumnInfo
	if err := deepcopy.Copy(&out, &e.columns); err != nil {
		return nil, false
	}
	return out, true
}

func (c *Cache) StoreColumns(fileHash string, columns []types.ColumnInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entryFor(fileHash)
	var stored []types.ColumnInfo
	if err := deepcopy.Copy(&stored, &columns); err != nil {
		stored = columns
	}
	e.columns = stored
}

func (c *Cache) GetHeaders(fileHash string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[fileHash]
	if !ok || e.headers == nil {
		return nil, false
	}
	c.list.moveToFront(c.list.nodes[fileHash])
	out := make([]string, len(e.headers))
	copy(out, e.headers)
	return out, true
}

func (c *Cache) StoreHeaders(fileHash string, headers []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entryFor(fileHash)
	stored := make([]string, len(headers))
	copy(stored, headers)
	e.headers = stored
}

func (c *Cache) entryFor(fileHash string) *entry {
	e, ok := c.entries[fileHash]
	if !ok {
		e = &entry{}
		c.entries[fileHash] = e
	}
	c.list.addToFront(fileHash)
	if c.list.Size() > c.max {
		oldest := c.list.removeOldest()
		delete(c.entries, oldest)
	}
	return e
}

func (l *lruList) Size() int { return l.size }
