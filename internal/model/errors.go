package model

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every IndexError.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports an index that does not address an item.
type IndexError struct {
	Op    string // "complete" | "remove"
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("%s: index %d out of range: list is empty", e.Op, e.Index)
	}
	return fmt.Sprintf("%s: index %d out of range: valid indexes are 0..%d", e.Op, e.Index, e.Len-1)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }
