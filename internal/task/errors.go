package task

import (
	"errors"
	"fmt"
)

// Validation and data errors raised by the task model.
var (
	ErrEmptyDescription = errors.New("cannot track task without description")
	ErrReservedChar     = errors.New("description cannot contain '|' or line breaks")
	ErrAlreadyDone      = errors.New("the specified task is already completed")
	ErrNotDone          = errors.New("this task is already in progress")
	ErrEventOrder       = errors.New("event must end after it starts")
	ErrDateFormat       = errors.New("unrecognised date, use yyyy-mm-dd or yyyy-mm-dd HHmm")
	ErrCorruptDate      = errors.New("corrupt stored date")
	ErrMalformedRecord  = errors.New("malformed save record")
	ErrIndexOutOfRange  = errors.New("the specified task does not exist")
)

// IndexError reports a 1-based index outside the current list.
type IndexError struct {
	Index int
	Size  int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("task %d does not exist: the list is empty", e.Index)
	}
	return fmt.Sprintf("task %d does not exist: pick a number from 1 to %d", e.Index, e.Size)
}

// Is lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// AsIndexError checks if an error is an IndexError and returns it.
func AsIndexError(err error) (*IndexError, bool) {
	var idxErr *IndexError
	ok := errors.As(err, &idxErr)
	return idxErr, ok
}
