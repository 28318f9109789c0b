package solar

import (
	"sync"
	"testing"
	"time"
)

func TestCache_HitsAndMisses(t *testing.T) {
	c := NewCache(0)
	q := Query{Lat: 52.52, Lon: 13.405, Date: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), TZOffsetHours: 2}

	first := c.Compute(q)
	second := c.Compute(q)
	if first != second {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Entries != 1 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss, 1 entry", stats)
	}
}

func TestCache_KeepsCallerInstant(t *testing.T) {
	c := NewCache(10)
	morning := Query{Lat: 52.52, Lon: 13.405, Date: time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC), TZOffsetHours: 2}
	noon := morning
	noon.Date = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	if c.Compute(morning).IsDaytime() {
		t.Error("03:00 should be night")
	}
	r := c.Compute(noon)
	if !r.IsDaytime() {
		t.Error("cached result kept the earlier instant")
	}
	if c.Stats().Hits != 1 {
		t.Errorf("same day at a different time should hit, stats = %+v", c.Stats())
	}
}

func TestCache_MatchesCompute(t *testing.T) {
	c := NewCache(10)
	q := Query{Lat: -33.87, Lon: 151.21, Date: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), TZOffsetHours: 11}
	if got, want := c.Compute(q), Compute(q); got != want {
		t.Errorf("Cache.Compute() = %+v, want %+v", got, want)
	}
}

func TestCache_ResetWhenFull(t *testing.T) {
	c := NewCache(3)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		c.Compute(Query{Lat: 10, Lon: 10, Date: base.AddDate(0, 0, i)})
	}
	if n := c.Stats().Entries; n != 1 {
		t.Errorf("Entries = %d after overflow, want 1", n)
	}

	c.Clear()
	if n := c.Stats().Entries; n != 0 {
		t.Errorf("Entries = %d after Clear, want 0", n)
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := NewCache(100)
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 30; i++ {
				c.Compute(Query{Lat: 60, Lon: 25, Date: base.AddDate(0, 0, i), TZOffsetHours: 3})
			}
		}()
	}
	wg.Wait()

	stats := c.Stats()
	if stats.Hits+stats.Misses != 8*30 {
		t.Errorf("Hits+Misses = %d, want %d", stats.Hits+stats.Misses, 8*30)
	}
	if stats.Entries != 30 {
		t.Errorf("Entries = %d, want 30", stats.Entries)
	}
}
