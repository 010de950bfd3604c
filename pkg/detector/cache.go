package detector

import (
	"container/list"
	"sync"

	"github.com/ocampoLuis/conflictgraph/pkg/model"
)

// overlapKey identifies one memoized comparison. It carries the ids plus the
// full day/time tuples of both assignments, so an assignment re-added with
// different times can never hit a stale entry.
type overlapKey struct {
	id1, id2       int64
	day1, day2     model.Weekday
	start1, end1   model.TimeOfDay
	start2, end2   model.TimeOfDay
}

func newOverlapKey(a1, a2 *model.Assignment) overlapKey {
	// Canonical order by id keeps the key symmetric in its arguments.
	if a2.Id < a1.Id {
		a1, a2 = a2, a1
	}
	return overlapKey{
		id1: a1.Id, id2: a2.Id,
		day1: a1.Day, day2: a2.Day,
		start1: a1.StartTime, end1: a1.EndTime,
		start2: a2.StartTime, end2: a2.EndTime,
	}
}

type cacheEntry struct {
	key      overlapKey
	overlaps bool
}

// overlapCache is a bounded LRU of pairwise overlap results. A zero limit
// disables it entirely; every method on a disabled cache is a no-op.
type overlapCache struct {
	mu      sync.Mutex
	limit   int
	order   *list.List // front is most recently used
	entries map[overlapKey]*list.Element
}

func newOverlapCache(limit int) *overlapCache {
	c := &overlapCache{limit: limit}
	if limit > 0 {
		c.order = list.New()
		c.entries = make(map[overlapKey]*list.Element, limit)
	}
	return c
}

func (c *overlapCache) get(k overlapKey) (overlaps, ok bool) {
	if c.limit == 0 {
		return false, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.entries[k]
	if !ok {
		return false, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(cacheEntry).overlaps, true
}

func (c *overlapCache) put(k overlapKey, overlaps bool) {
	if c.limit == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.entries[k]; ok {
		c.order.MoveToFront(elem)
		elem.Value = cacheEntry{key: k, overlaps: overlaps}
		return
	}
	if c.order.Len() >= c.limit {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(cacheEntry).key)
	}
	c.entries[k] = c.order.PushFront(cacheEntry{key: k, overlaps: overlaps})
}

func (c *overlapCache) clear() {
	if c.limit == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	clear(c.entries)
}

func (c *overlapCache) len() int {
	if c.limit == 0 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
