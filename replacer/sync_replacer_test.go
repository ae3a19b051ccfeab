package replacer

import (
	"sync"
	"testing"

	"cowtrie/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncReplacerConcurrent(t *testing.T) {
	const frames = 64
	r := NewSyncReplacer(newLRUK(t, frames, 2))
	assert.Equal(t, common.ReplacerPolicyLRUK, r.Policy())

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < frames/8; i++ {
				id := common.FrameID(g*(frames/8) + i)
				for n := 0; n < 3; n++ {
					if err := r.RecordAccess(id, common.AccessLookup); err != nil {
						t.Errorf("record access %d: %v", id, err)
					}
				}
				if err := r.SetEvictable(id, true); err != nil {
					t.Errorf("set evictable %d: %v", id, err)
				}
			}
		}(g)
	}
	wg.Wait()
	assert.Equal(t, frames, r.Size())

	var seenMu sync.Mutex
	seen := make(map[common.FrameID]bool)
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				id, ok := r.Evict()
				if !ok {
					return
				}
				if err := r.Remove(id); err != nil {
					t.Errorf("remove of evicted %d: %v", id, err)
				}
				seenMu.Lock()
				seen[id] = true
				seenMu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Len(t, seen, frames)
	assert.Equal(t, 0, r.Size())
	r.Print()
}
