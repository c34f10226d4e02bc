package ownership

import "errors"

var (
	ErrIndexOutOfRange = errors.New("ownership: index out of range")
	ErrReleased        = errors.New("ownership: handle already released")
)
