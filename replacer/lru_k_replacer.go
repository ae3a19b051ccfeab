// Use of this software is governed by an Apache 2.0
// licence which can be found in the license file

// This file implements the LRU-K replacement policy. The victim is the
// evictable frame whose k-th most recent access lies furthest in the past
// (its backward k-distance is the largest). Frames with fewer than k
// recorded accesses have an infinite distance and are evicted first, oldest
// first access first.

package replacer

import (
	"fmt"
	"math"
	"sort"

	"cowtrie/common"

	"github.com/golang/glog"
)

// infDistance - backward k-distance of a frame with fewer than k accesses.
const infDistance uint64 = math.MaxUint64

// lrukNode -- access record of one tracked frame.
// frameID     -- frame this record is about.
// k           -- history depth of the owning replacer.
// history     -- logical timestamps of the most recent accesses, oldest
//                first. Never longer than k.
// isEvictable -- whether the frame may be picked by Evict.
type lrukNode struct {
	frameID     common.FrameID
	k           int
	history     []uint64
	isEvictable bool
}

// access - appends ts to the history, keeping only the last k entries.
func (node *lrukNode) access(ts uint64) {
	if len(node.history) == node.k {
		copy(node.history, node.history[1:])
		node.history = node.history[:node.k-1]
	}
	node.history = append(node.history, ts)
}

// distance - backward k-distance as of now.
func (node *lrukNode) distance(now uint64) uint64 {
	if len(node.history) < node.k {
		return infDistance
	}
	return now - node.history[len(node.history)-node.k]
}

func (node *lrukNode) String() string {
	return fmt.Sprintf("{frame: %d, evictable: %v, history: %v}",
		node.frameID, node.isEvictable, node.history)
}

// LRUKReplacer -- LRU-K replacer.
// numFrames        -- capacity; valid frame ids are [0, numFrames).
// k                -- history depth.
// currentTimestamp -- logical clock, advanced on every RecordAccess.
// nodeStore        -- access records of tracked frames.
type LRUKReplacer struct {
	numFrames        int
	k                int
	currentTimestamp uint64
	nodeStore        map[common.FrameID]*lrukNode
}

// NewLRUKReplacer -- instantiates a new LRU-K replacer for numFrames frames
// with history depth k.
func NewLRUKReplacer(numFrames, k int) (*LRUKReplacer, error) {
	if numFrames <= 0 || k <= 0 {
		glog.Errorf("invalid lru-k parameters: frames: %d, k: %d", numFrames, k)
		return nil, fmt.Errorf("%w: frames %d, k %d", common.ErrInvalidParam, numFrames, k)
	}
	return &LRUKReplacer{numFrames: numFrames, k: k,
		nodeStore: make(map[common.FrameID]*lrukNode, numFrames)}, nil
}

// RecordAccess - records an access to frameID at the current logical time.
func (r *LRUKReplacer) RecordAccess(frameID common.FrameID, accessType common.AccessType) error {
	if err := checkFrameID("record access", frameID, r.numFrames); err != nil {
		return err
	}
	r.currentTimestamp++
	node, ok := r.nodeStore[frameID]
	if !ok {
		node = &lrukNode{frameID: frameID, k: r.k, history: make([]uint64, 0, r.k)}
		r.nodeStore[frameID] = node
	}
	node.access(r.currentTimestamp)
	glog.V(2).Infof("record access (%v) %v at %d", accessType, node, r.currentTimestamp)
	return nil
}

// SetEvictable - toggles evictability of a tracked frame.
func (r *LRUKReplacer) SetEvictable(frameID common.FrameID, evictable bool) error {
	if err := checkFrameID("set evictable", frameID, r.numFrames); err != nil {
		return err
	}
	node, ok := r.nodeStore[frameID]
	if !ok {
		glog.V(2).Infof("set evictable: frame %d is not tracked", frameID)
		return nil
	}
	node.isEvictable = evictable
	return nil
}

// Evict - evicts the evictable frame with the largest backward k-distance.
// Among frames with infinite distance the one whose oldest access is the
// earliest wins. Equal finite distances go to the lowest frame id.
func (r *LRUKReplacer) Evict() (common.FrameID, bool) {
	var victim *lrukNode
	var victimDist uint64
	for _, node := range r.nodeStore {
		if !node.isEvictable {
			continue
		}
		dist := node.distance(r.currentTimestamp)
		if victim == nil || r.preferred(node, dist, victim, victimDist) {
			victim = node
			victimDist = dist
		}
	}
	if victim == nil {
		glog.V(2).Infof("evict: no evictable frame")
		return common.InvalidFrameID, false
	}
	delete(r.nodeStore, victim.frameID)
	glog.V(2).Infof("evict: %v (distance: %d)", victim, victimDist)
	return victim.frameID, true
}

// preferred - whether node is a better victim than the current best.
func (r *LRUKReplacer) preferred(node *lrukNode, dist uint64, best *lrukNode, bestDist uint64) bool {
	switch {
	case dist == infDistance && bestDist == infDistance:
		return node.history[0] < best.history[0]
	case dist != bestDist:
		return dist > bestDist
	default:
		return node.frameID < best.frameID
	}
}

// Remove - forgets an evictable frame and its history.
func (r *LRUKReplacer) Remove(frameID common.FrameID) error {
	if err := checkFrameID("remove", frameID, r.numFrames); err != nil {
		return err
	}
	node, ok := r.nodeStore[frameID]
	if !ok {
		return nil
	}
	if !node.isEvictable {
		return errNotEvictable(frameID)
	}
	delete(r.nodeStore, frameID)
	glog.V(2).Infof("remove: %v", node)
	return nil
}

// Size - # of evictable frames.
func (r *LRUKReplacer) Size() int {
	size := 0
	for _, node := range r.nodeStore {
		if node.isEvictable {
			size++
		}
	}
	return size
}

// Print the node store, in frame id order.
func (r *LRUKReplacer) Print() {
	glog.Infof("printing lru-k replacer (k: %d, now: %d, tracked: %d)",
		r.k, r.currentTimestamp, len(r.nodeStore))
	ids := make([]int, 0, len(r.nodeStore))
	for id := range r.nodeStore {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	for _, id := range ids {
		glog.Infof("%v", r.nodeStore[common.FrameID(id)])
	}
}

// Policy returns the string representation of the replacer policy.
func (r *LRUKReplacer) Policy() string {
	return common.ReplacerPolicyLRUK
}
