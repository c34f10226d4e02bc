package arith

import "errors"

var (
	ErrOverflow       = errors.New("arith: integer overflow")
	ErrDivisionByZero = errors.New("arith: division by zero")
)
