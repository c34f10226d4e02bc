package textutil

import "errors"

var (
	ErrOutOfRange      = errors.New("textutil: index out of range")
	ErrNotCharBoundary = errors.New("textutil: index is not on a rune boundary")
)
