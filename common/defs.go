package common

import "fmt"

// OpType -- type of catalog operation that is to be done.
type OpType int

// String -- printable op name.
func (op OpType) String() string {
	switch op {
	case OpStore:
		return "store"
	case OpDelete:
		return "delete"
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// FrameID -- identifier of an in-memory page frame of a buffer pool.
type FrameID int32

// InvalidFrameID is never handed out by a replacer.
const InvalidFrameID FrameID = -1

// AccessType -- the kind of page access reported to a replacer. The baseline
// policies ignore it.
type AccessType int

const (
	AccessUnknown AccessType = iota
	AccessLookup
	AccessScan
	AccessIndex
)

func (at AccessType) String() string {
	switch at {
	case AccessLookup:
		return "lookup"
	case AccessScan:
		return "scan"
	case AccessIndex:
		return "index"
	}
	return "unknown"
}
