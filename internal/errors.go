package internal

import "errors"

var (
	// ErrForeignCell is raised when cells from two different graphs are wired together.
	ErrForeignCell = errors.New("cell belongs to another graph")

	// ErrNilFunc is raised when a compute or callback cell is built without a function.
	ErrNilFunc = errors.New("nil cell function")
)
