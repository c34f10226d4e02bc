package convert

import "errors"

var (
	// ErrOutOfRange is returned when a value is not representable in the target type.
	ErrOutOfRange = errors.New("convert: value out of range for target type")
)
