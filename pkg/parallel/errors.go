package parallel

import "errors"

var (
	ErrTimeout      = errors.New("parallel: operation timed out waiting for future completion")
	ErrInvalidLimit = errors.New("parallel: limit must be positive")
	ErrPanic        = errors.New("parallel: task panicked")
)
