package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocampoLuis/conflictgraph/pkg/model"
)

func TestOverlapResultsAreMemoized(t *testing.T) {
	// Arrange
	d := New()
	a1 := resolvedAssignment(1)
	a2 := resolvedAssignment(2)

	// Act
	first, err1 := d.AssignmentsOverlap(a1, a2)
	second, err2 := d.AssignmentsOverlap(a2, a1) // Reversed arguments hit the same entry

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, d.CacheLen())
}

func TestCacheKeyedByTimes(t *testing.T) {
	// Arrange
	d := New()
	a1 := resolvedAssignment(1)
	a2 := resolvedAssignment(2)

	// Act
	before, err1 := d.AssignmentsOverlap(a1, a2)

	a2.StartTime, a2.EndTime = at(14, 0), at(16, 0)
	after, err2 := d.AssignmentsOverlap(a1, a2)

	// Assert: the rescheduled pair lands on a fresh entry instead of the stale one.
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, before)
	assert.False(t, after)
	assert.Equal(t, 2, d.CacheLen())
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	// Arrange
	cache := newOverlapCache(2)
	k1 := newOverlapKey(resolvedAssignment(1), resolvedAssignment(2))
	k2 := newOverlapKey(resolvedAssignment(1), resolvedAssignment(3))
	k3 := newOverlapKey(resolvedAssignment(2), resolvedAssignment(3))

	// Act
	cache.put(k1, true)
	cache.put(k2, false)
	cache.get(k1) // Refresh k1 so k2 becomes the eviction candidate
	cache.put(k3, true)

	// Assert
	assert.Equal(t, 2, cache.len())

	_, ok := cache.get(k2)
	assert.False(t, ok, "least recently used entry was evicted")

	overlaps, ok := cache.get(k1)
	assert.True(t, ok)
	assert.True(t, overlaps)

	overlaps, ok = cache.get(k3)
	assert.True(t, ok)
	assert.True(t, overlaps)
}

func TestCacheDisabled(t *testing.T) {
	// Arrange
	d := New(WithCacheSize(0))
	a1 := resolvedAssignment(1)
	a2 := resolvedAssignment(2)

	// Act
	for range 5 {
		_, err := d.AssignmentsOverlap(a1, a2)
		require.NoError(t, err)
	}

	// Assert
	assert.Equal(t, 0, d.CacheLen())
}

func TestClearCache(t *testing.T) {
	// Arrange
	d := New()
	_, err := d.AssignmentsOverlap(resolvedAssignment(1), resolvedAssignment(2))
	require.NoError(t, err)
	require.Equal(t, 1, d.CacheLen())

	// Act
	d.ClearCache()

	// Assert
	assert.Equal(t, 0, d.CacheLen())
}

func TestCacheNeverStoresFailedComparisons(t *testing.T) {
	// Arrange
	d := New()
	a1 := resolvedAssignment(1)
	broken := resolvedAssignment(2)
	broken.StartTime, broken.EndTime = at(10, 0), at(8, 0)

	// Act
	_, err := d.AssignmentsOverlap(a1, broken)

	// Assert
	require.ErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, 0, d.CacheLen())
}

func TestCacheEntryUpdateKeepsSize(t *testing.T) {
	// Arrange
	cache := newOverlapCache(4)
	key := newOverlapKey(resolvedAssignment(1), resolvedAssignment(2))

	// Act
	cache.put(key, true)
	cache.put(key, true)

	// Assert
	assert.Equal(t, 1, cache.len())
}

func TestDayMismatchIsCachedToo(t *testing.T) {
	// Arrange
	d := New()
	a1 := resolvedAssignment(1)
	a2 := resolvedAssignment(2)
	a2.Day = model.Saturday

	// Act
	overlaps, err := d.AssignmentsOverlap(a1, a2)

	// Assert
	require.NoError(t, err)
	assert.False(t, overlaps)
	assert.Equal(t, 1, d.CacheLen())
}
