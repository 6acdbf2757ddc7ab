package observable

import (
	"fmt"

	"bindlist/lists"
)

var (
	ErrIndexOutOfRange        = lists.ErrIndexOutOfBounds
	ErrCapacityExceeded       = lists.ErrCapacityExceeded
	ErrConcurrentModification = lists.ErrConcurrentModification
)

// IndexError reports an index argument outside the range an operation accepts.
type IndexError struct {
	Op    string
	Index int
	Count int
}

func (e *IndexError) Error() string {
	if e.Op == opInsert {
		return fmt.Sprintf("observable: %s: index %d out of range [0,%d]", e.Op, e.Index, e.Count)
	}
	return fmt.Sprintf("observable: %s: index %d out of range [0,%d)", e.Op, e.Index, e.Count)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

const (
	opGet      = "get"
	opSet      = "set"
	opInsert   = "insert"
	opRemoveAt = "remove at"
	opCopyTo   = "copy to"
)
