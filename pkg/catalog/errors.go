package catalog

import "errors"

var (
	ErrInvalidCheck   = errors.New("catalog: check needs a topic, a name and a run function")
	ErrDuplicateCheck = errors.New("catalog: duplicate check")
	ErrUnknownTopic   = errors.New("catalog: unknown topic")
	ErrMismatch       = errors.New("catalog: mismatch")
	ErrPanic          = errors.New("catalog: check panicked")
	ErrUnknownFormat  = errors.New("catalog: unknown report format")

	ErrInvalidParallelism = errors.New("catalog: parallelism must not be negative")
)
