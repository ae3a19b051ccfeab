package replacer

import (
	"fmt"

	"cowtrie/common"

	"github.com/golang/glog"
)

// checkFrameID - frame ids handed to a replacer must lie in [0, numFrames).
// Anything else is a bug in the caller.
func checkFrameID(op string, frameID common.FrameID, numFrames int) error {
	if frameID < 0 || int(frameID) >= numFrames {
		glog.Errorf("%s: frame %d out of range [0, %d)", op, frameID, numFrames)
		return fmt.Errorf("%w: %s: frame %d, capacity %d", common.ErrInvalidFrameID,
			op, frameID, numFrames)
	}
	return nil
}

// errNotEvictable - Remove was called on a pinned frame.
func errNotEvictable(frameID common.FrameID) error {
	glog.Errorf("remove: frame %d is not evictable", frameID)
	return fmt.Errorf("%w: frame %d", common.ErrFrameNotEvictable, frameID)
}
