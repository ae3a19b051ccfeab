package replacer

import (
	"testing"

	"cowtrie/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUReplacer(t *testing.T) {
	_, err := NewLRUReplacer(0)
	assert.ErrorIs(t, err, common.ErrInvalidParam)

	r, err := NewLRUReplacer(7)
	require.NoError(t, err)
	assert.Equal(t, common.ReplacerPolicyLRU, r.Policy())

	access(t, r, 1, 2, 3, 4, 5, 6)
	evictable(t, r, true, 1, 2, 3, 4, 5, 6)
	evictable(t, r, true, 6)
	assert.Equal(t, 6, r.Size())

	// Touching 1 makes it the most recent.
	access(t, r, 1)
	mustEvict(t, r, 2)
	mustEvict(t, r, 3)
	assert.Equal(t, 4, r.Size())

	// Pinned frames are skipped.
	evictable(t, r, false, 4)
	assert.Equal(t, 3, r.Size())
	mustEvict(t, r, 5)

	assert.ErrorIs(t, r.Remove(4), common.ErrFrameNotEvictable)
	require.NoError(t, r.Remove(6))
	require.NoError(t, r.Remove(6))
	assert.Equal(t, 1, r.Size())
	r.Print()

	mustEvict(t, r, 1)
	_, ok := r.Evict()
	assert.False(t, ok)
	assert.Equal(t, 0, r.Size())

	evictable(t, r, true, 4)
	mustEvict(t, r, 4)

	assert.ErrorIs(t, r.RecordAccess(7, common.AccessScan), common.ErrInvalidFrameID)
	assert.ErrorIs(t, r.SetEvictable(-1, true), common.ErrInvalidFrameID)
	assert.ErrorIs(t, r.Remove(7), common.ErrInvalidFrameID)
	assert.Equal(t, 0, r.lruList.Len())
}

// Both policies agree when k = 1.
func TestLRUMatchesLRUK1(t *testing.T) {
	lru, err := NewLRUReplacer(16)
	require.NoError(t, err)
	lruk := newLRUK(t, 16, 1)

	seq := []common.FrameID{3, 7, 1, 3, 9, 12, 7, 0, 15, 3, 1, 9}
	for _, r := range []Replacer{lru, lruk} {
		access(t, r, seq...)
		evictable(t, r, true, 0, 1, 3, 7, 9, 12, 15)
		evictable(t, r, false, 9)
	}
	for lru.Size() > 0 {
		want, ok := lru.Evict()
		require.True(t, ok)
		mustEvict(t, lruk, want)
	}
	assert.Equal(t, 0, lruk.Size())
}
