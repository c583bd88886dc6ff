// Package cache implements the engine's per-registry LRU compilation
// cache: at most one CompiledExpr per (registry-id, expression-text)
// key, per spec.md §4.G.
package cache

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	list "github.com/bahlo/generic-list-go"

	"flint/compiled"
)

// Key identifies one cached compilation.
type Key struct {
	RegistryID string
	Expr       string
}

type entry struct {
	key        Key
	artifact   *compiled.Expr
	lastAccess uint64
}

// Stats is a snapshot of hit/miss/eviction counters, mirroring the
// teacher's verb_cache_stats()/ConsumeVerbCacheStats pattern
// (db/store.go) -- surfaced because the cache invariants are otherwise
// unobservable from outside this package.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// table is one registry's LRU ring: a bounded map + doubly linked list
// ordered most- to least-recently-used.
type table struct {
	limit int
	ll    *list.List[*entry]
	items map[string]*list.Element[*entry] // keyed by expression text
}

func newTable(limit int) *table {
	return &table{
		limit: limit,
		ll:    list.New[*entry](),
		items: make(map[string]*list.Element[*entry]),
	}
}

// Cache is the process-wide compilation cache: one LRU table per
// registry, created lazily on first use. The zero value is not usable;
// construct with New. A nil *Cache is accepted by Get/Put (the "cache
// table absent" case spec.md §4.G allows for) and behaves as a
// always-miss, warn-once no-op -- see warnAbsentOnce.
type Cache struct {
	mu        sync.Mutex
	tables    map[string]*table
	accessSeq uint64
	hits      uint64
	misses    uint64
	evictions uint64
}

// New constructs an empty, ready-to-use Cache.
func New() *Cache {
	return &Cache{tables: make(map[string]*table)}
}

var warnAbsentOnce int32 // atomic one-shot flag, process-wide per spec.md §4.G

func warnAbsent() {
	if atomic.CompareAndSwapInt32(&warnAbsentOnce, 0, 1) {
		fmt.Fprintln(os.Stderr, "flint/cache: cache table not initialized, caching disabled for this process")
	}
}

// Get looks up a cached artifact by (registryID, expr). A nil Cache, or
// an uninitialized table for registryID, is a plain miss.
func (c *Cache) Get(registryID, expr string) (*compiled.Expr, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.tables[registryID]
	if !ok {
		c.misses++
		return nil, false
	}
	el, ok := t.items[expr]
	if !ok {
		c.misses++
		return nil, false
	}
	c.accessSeq++
	el.Value.lastAccess = c.accessSeq
	t.ll.MoveToFront(el)
	c.hits++
	return el.Value.artifact, true
}

// Put inserts or refreshes a cached artifact, evicting the least-
// recently-used entry if the registry's table is at limit. enabled=false
// or limit<=0 makes Put a no-op (the caller's per-registry
// cache_enabled=false / cache_limit case). If c is nil, Put warns once
// (process-wide) and is otherwise a no-op -- the "cache table absent"
// path spec.md §4.G describes.
func (c *Cache) Put(registryID, expr string, artifact *compiled.Expr, enabled bool, limit int) {
	if c == nil {
		warnAbsent()
		return
	}
	if !enabled || limit <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.tables[registryID]
	if !ok {
		t = newTable(limit)
		c.tables[registryID] = t
	}
	t.limit = limit

	c.accessSeq++
	if el, ok := t.items[expr]; ok {
		el.Value.artifact = artifact
		el.Value.lastAccess = c.accessSeq
		t.ll.MoveToFront(el)
		return
	}

	el := t.ll.PushFront(&entry{key: Key{RegistryID: registryID, Expr: expr}, artifact: artifact, lastAccess: c.accessSeq})
	t.items[expr] = el

	for t.ll.Len() > t.limit {
		oldest := t.ll.Back()
		if oldest == nil {
			break
		}
		t.ll.Remove(oldest)
		delete(t.items, oldest.Value.key.Expr)
		c.evictions++
	}
}

// Clear drops every cached entry for a single registry, e.g. when a
// caller wants to force recompilation without discarding other
// registries' entries.
func (c *Cache) Clear(registryID string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tables, registryID)
}

// Stats returns a snapshot of this process's hit/miss/eviction counters
// across all registries. Unlike the teacher's ConsumeVerbCacheStats,
// this does not reset the counters -- spec.md gives no "interval" concept
// for this cache, so Stats is a plain cumulative snapshot.
func (c *Cache) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Hits: c.hits, Misses: c.misses, Evictions: c.evictions}
}

// Len reports how many entries are cached for one registry, used by
// tests to assert the size invariant (count ≤ configured limit).
func (c *Cache) Len(registryID string) int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.tables[registryID]
	if !ok {
		return 0
	}
	return t.ll.Len()
}
