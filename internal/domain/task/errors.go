package task

import "errors"

var (
	// ErrTitleRequired indicates a blank or missing task title.
	ErrTitleRequired = errors.New("task title is required")
	// ErrTaskNotFound indicates the task doesn't exist in any known column.
	ErrTaskNotFound = errors.New("task not found")
	// ErrUnknownColumn indicates a column id outside the board's fixed set.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrIndexOutOfRange indicates a position inconsistent with the current
	// column contents, usually a stale client view.
	ErrIndexOutOfRange = errors.New("index out of range")
)
