// Use of this software is governed by an Apache 2.0
// licence which can be found in the license file

// This file defines the replacer interface used by a buffer pool manager to
// pick which page frame to reclaim. The buffer pool reports every page touch,
// flips evictability on pin count transitions and asks for a victim when it
// has no free frame. lru_k_replacer.go implements the LRU-K policy,
// lru_replacer.go a plain LRU one.
//
// Replacers are not synchronized. The buffer pool is expected to hold one
// latch across RecordAccess, SetEvictable and Evict so that a victim is
// picked against a consistent view of history and evictability. Wrap a
// replacer with NewSyncReplacer when no such latch exists.

package replacer

import "cowtrie/common"

// Replacer - The replacer interface. Following methods have to be
// implemented by an eviction policy.
// RecordAccess -- a frame was touched; starts tracking unknown frames.
// SetEvictable -- toggles whether a tracked frame may be evicted.
// Evict        -- picks, forgets and returns a victim frame.
// Remove       -- forgets a specific evictable frame.
// Size         -- # of tracked frames that are evictable.
// Print        -- logs the replacer state.
// Policy       -- Returns replacer's policy (lru_k/lru, etc.)
type Replacer interface {
	// RecordAccess fails with common.ErrInvalidFrameID for a frame id
	// outside of the replacer's capacity.
	RecordAccess(frameID common.FrameID, accessType common.AccessType) error
	// SetEvictable is a no-op for untracked frames.
	SetEvictable(frameID common.FrameID, evictable bool) error
	Evict() (common.FrameID, bool)
	// Remove is a no-op for untracked frames and fails with
	// common.ErrFrameNotEvictable for tracked frames that are pinned.
	Remove(frameID common.FrameID) error
	Size() int
	Print()
	Policy() string
}
