package common

import "errors"

// Errors types used.
var (
	ErrNotFound          = errors.New("key not found")
	ErrInvalidParam      = errors.New("invalid configuration parameter")
	ErrExists            = errors.New("already exists")
	ErrInvalidFrameID    = errors.New("invalid frame id")
	ErrFrameNotEvictable = errors.New("frame is not evictable")
	ErrPublishFailed     = errors.New("failed to publish snapshot")
)
