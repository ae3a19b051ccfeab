package replacer

import (
	"sync"

	"cowtrie/common"
)

// SyncReplacer -- serializes every call to the wrapped replacer with a single
// mutex. For callers without a latch of their own.
type SyncReplacer struct {
	mu    sync.Mutex
	inner Replacer
}

// NewSyncReplacer -- wraps r.
func NewSyncReplacer(r Replacer) *SyncReplacer {
	return &SyncReplacer{inner: r}
}

// RecordAccess - records an access to frameID under the lock.
func (s *SyncReplacer) RecordAccess(frameID common.FrameID, accessType common.AccessType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.RecordAccess(frameID, accessType)
}

// SetEvictable - marks frameID evictable or pinned under the lock.
func (s *SyncReplacer) SetEvictable(frameID common.FrameID, evictable bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.SetEvictable(frameID, evictable)
}

// Evict - evicts a victim frame under the lock.
func (s *SyncReplacer) Evict() (common.FrameID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Evict()
}

// Remove - forgets frameID under the lock.
func (s *SyncReplacer) Remove(frameID common.FrameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Remove(frameID)
}

// Size - number of evictable frames.
func (s *SyncReplacer) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Size()
}

// Print - dumps the wrapped replacer.
func (s *SyncReplacer) Print() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Print()
}

// Policy - policy name of the wrapped replacer. Immutable, so no lock.
func (s *SyncReplacer) Policy() string {
	return s.inner.Policy()
}
