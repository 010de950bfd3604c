package model

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPairKeyCanonicalizes(t *testing.T) {
	assert.Equal(t, PairKey("3-17"), NewPairKey(3, 17))
	assert.Equal(t, PairKey("3-17"), NewPairKey(17, 3))
	assert.Equal(t, PairKey("5-5"), NewPairKey(5, 5))
}

func TestPairKeySplitRoundTrip(t *testing.T) {
	for range 50 {
		id1, id2 := rand.Int64N(10_000)+1, rand.Int64N(10_000)+1

		low, high, err := NewPairKey(id1, id2).Split()

		require.NoError(t, err)
		assert.LessOrEqual(t, low, high)
		assert.ElementsMatch(t, []int64{id1, id2}, []int64{low, high})
	}
}

func TestPairKeySplitRejectsMalformedKeys(t *testing.T) {
	for _, key := range []PairKey{"", "12", "a-b", "12-", "-12", "9-3"} {
		_, _, err := key.Split()
		assert.ErrorIs(t, err, ErrInvalidPairKey, "key %q", key)
	}
}

func TestPairKeyContains(t *testing.T) {
	key := NewPairKey(4, 9)

	assert.True(t, key.Contains(4))
	assert.True(t, key.Contains(9))
	assert.False(t, key.Contains(5))
	assert.False(t, key.Self())
	assert.True(t, NewPairKey(7, 7).Self())
}

func TestConflictEdgeCanonicalOrder(t *testing.T) {
	edge := NewConflictEdge(SameRoom, 21, 8)

	assert.Equal(t, int64(8), edge.FirstId)
	assert.Equal(t, int64(21), edge.SecondId)
	assert.Equal(t, PairKey("8-21"), edge.Key())
	assert.False(t, edge.Self())

	self := NewSelfEdge(ProfessorBlocked, 8)
	assert.True(t, self.Self())
	assert.Equal(t, PairKey("8-8"), self.Key())
}

func TestConflictTypePartition(t *testing.T) {
	for _, ct := range SelfConflictTypes() {
		assert.False(t, ct.Pairwise(), "%s", ct)
	}
	for _, ct := range PairwiseConflictTypes() {
		assert.True(t, ct.Pairwise(), "%s", ct)
	}
	assert.ElementsMatch(t,
		append(SelfConflictTypes(), PairwiseConflictTypes()...),
		ConflictTypes(),
	)
}

func TestConflictTypeCodesAndLabelsAreClosed(t *testing.T) {
	seenCodes := make(map[string]bool)
	seenLabels := make(map[string]bool)

	for _, ct := range ConflictTypes() {
		require.True(t, ct.Valid())
		assert.False(t, seenCodes[ct.String()], "duplicate code %s", ct)
		assert.False(t, seenLabels[ct.Label()], "duplicate label %s", ct.Label())
		seenCodes[ct.String()] = true
		seenLabels[ct.Label()] = true
	}

	unknown := ConflictType(99)
	assert.False(t, unknown.Valid())
	assert.Equal(t, "ConflictType(99)", unknown.String())
}
