package util

import "errors"

var (
	ErrUnreadableInput = errors.New("input is not readable tabular data")

	ErrInvalidQuery   = errors.New("invalid query: malformed node key")
	ErrAnchorNotFound = errors.New("anchor node not found in graph")
	ErrOutOfRange     = errors.New("score outside valid MMSE range 0-30")
	ErrNoStageDefined = errors.New("no stage range covers this score")
)
