package solar

import (
	"math"
	"sync"
)

const (
	// DefaultCacheSize bounds the number of cached days.
	DefaultCacheSize = 4096

	// Key rounding: ~10 m of latitude and a few seconds of zone offset.
	coordKeyScale = 1e4
	zoneKeyScale  = 1e3
)

// cacheKey identifies a computation up to the rounding applied by the cache.
type cacheKey struct {
	lat, lon   int64
	zone       int64
	year       int
	month, day int
}

func keyFor(q Query) cacheKey {
	d := q.Date.UTC()
	return cacheKey{
		lat:   int64(math.Round(q.Lat * coordKeyScale)),
		lon:   int64(math.Round(q.Lon * coordKeyScale)),
		zone:  int64(math.Round(q.TZOffsetHours * zoneKeyScale)),
		year:  d.Year(),
		month: int(d.Month()),
		day:   d.Day(),
	}
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits    int
	Misses  int
	Entries int
}

// Cache memoizes Compute for repeated queries, e.g. redrawing a year of days
// while only the highlighted instant changes. Queries that round to the same
// key share a result. A Cache is safe for concurrent use.
type Cache struct {
	mu sync.RWMutex

	entries map[cacheKey]Result
	maxSize int

	hits   int
	misses int
}

// NewCache creates a cache holding at most maxSize results. A non-positive
// size selects DefaultCacheSize.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &Cache{
		entries: make(map[cacheKey]Result),
		maxSize: maxSize,
	}
}

// Compute returns the cached result for q, computing it on a miss. The
// returned result always carries q's own instant.
func (c *Cache) Compute(q Query) Result {
	key := keyFor(q)

	c.mu.RLock()
	res, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return res.WithInstant(q.Date)
	}

	res = Compute(q)

	c.mu.Lock()
	c.misses++
	if len(c.entries) >= c.maxSize {
		// Reset when full.
		c.entries = make(map[cacheKey]Result)
	}
	c.entries[key] = res
	c.mu.Unlock()

	return res
}

// Stats returns a snapshot of the hit/miss counters.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{Hits: c.hits, Misses: c.misses, Entries: len(c.entries)}
}

// Clear removes all cached results.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[cacheKey]Result)
	c.mu.Unlock()
}
