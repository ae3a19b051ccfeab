// Use of this software is governed by an Apache 2.0
// licence which can be found in the license file

// This file implements a plain LRU replacer: the victim is the evictable
// frame whose last access is the oldest. It behaves like LRU-K with k = 1
// but picks a victim in O(evictable frames at the cold end of the list).

package replacer

import (
	"container/list"
	"fmt"

	"cowtrie/common"

	"github.com/golang/glog"
)

// listElem -- each list element tracks one frame.
type listElem struct {
	frameID     common.FrameID
	isEvictable bool
}

func (le *listElem) String() string {
	return fmt.Sprintf("{frame: %d, evictable: %v}", le.frameID, le.isEvictable)
}

// LRUReplacer -- plain LRU replacer.
// numFrames -- capacity; valid frame ids are [0, numFrames).
// size      -- # of evictable frames.
// lruList   -- tracked frames, most recently accessed at the front.
// frameMap  -- map for finding the list element of a frame.
type LRUReplacer struct {
	numFrames int
	size      int
	lruList   *list.List
	frameMap  map[common.FrameID]*list.Element
}

// NewLRUReplacer -- instantiates a new LRU replacer.
func NewLRUReplacer(numFrames int) (*LRUReplacer, error) {
	if numFrames <= 0 {
		glog.Errorf("invalid lru parameters: frames: %d", numFrames)
		return nil, fmt.Errorf("%w: frames %d", common.ErrInvalidParam, numFrames)
	}
	return &LRUReplacer{numFrames: numFrames, lruList: list.New(),
		frameMap: make(map[common.FrameID]*list.Element, numFrames)}, nil
}

// updateSize - Update the evictable count on a flag flip.
func (r *LRUReplacer) updateSize(add bool) {
	if add {
		r.size++
	} else {
		r.size--
	}
	glog.V(2).Infof("current size: %d, frames: %d", r.size, r.numFrames)
}

// RecordAccess - moves the frame to the front, tracking it if needed.
func (r *LRUReplacer) RecordAccess(frameID common.FrameID, accessType common.AccessType) error {
	if err := checkFrameID("record access", frameID, r.numFrames); err != nil {
		return err
	}
	if elem, ok := r.frameMap[frameID]; ok {
		r.lruList.MoveToFront(elem)
		glog.V(2).Infof("record access (%v): promoting %v", accessType, elem.Value)
		return nil
	}
	r.frameMap[frameID] = r.lruList.PushFront(&listElem{frameID: frameID})
	glog.V(2).Infof("record access (%v): tracking frame %d", accessType, frameID)
	return nil
}

// SetEvictable - toggles evictability of a tracked frame.
func (r *LRUReplacer) SetEvictable(frameID common.FrameID, evictable bool) error {
	if err := checkFrameID("set evictable", frameID, r.numFrames); err != nil {
		return err
	}
	elem, ok := r.frameMap[frameID]
	if !ok {
		return nil
	}
	le := elem.Value.(*listElem)
	if le.isEvictable != evictable {
		le.isEvictable = evictable
		r.updateSize(evictable)
	}
	return nil
}

// removeInt -- just remove the frame. Sanity checks are already done.
func (r *LRUReplacer) removeInt(frameID common.FrameID, elem *list.Element) {
	glog.V(2).Infof("removing %v", elem.Value)
	delete(r.frameMap, frameID)
	r.lruList.Remove(elem)
	r.updateSize(false)
}

// Evict - evicts the least recently accessed evictable frame.
func (r *LRUReplacer) Evict() (common.FrameID, bool) {
	for elem := r.lruList.Back(); elem != nil; elem = elem.Prev() {
		le := elem.Value.(*listElem)
		if le.isEvictable {
			glog.V(2).Infof("evicting: %v", le)
			r.removeInt(le.frameID, elem)
			return le.frameID, true
		}
	}
	return common.InvalidFrameID, false
}

// Remove - forgets an evictable frame.
func (r *LRUReplacer) Remove(frameID common.FrameID) error {
	if err := checkFrameID("remove", frameID, r.numFrames); err != nil {
		return err
	}
	elem, ok := r.frameMap[frameID]
	if !ok {
		return nil
	}
	if !elem.Value.(*listElem).isEvictable {
		return errNotEvictable(frameID)
	}
	r.removeInt(frameID, elem)
	return nil
}

// Size - # of evictable frames.
func (r *LRUReplacer) Size() int {
	return r.size
}

// Print the LRU
func (r *LRUReplacer) Print() {
	// Iterate through list and print its contents.
	glog.Infof("printing LRU list")
	for e := r.lruList.Front(); e != nil; e = e.Next() {
		glog.Infof("%v", e.Value)
	}
}

// Policy returns the string representation of the replacer policy.
func (r *LRUReplacer) Policy() string {
	return common.ReplacerPolicyLRU
}
