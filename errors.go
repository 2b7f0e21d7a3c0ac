package smartptr

import "errors"

var (
	ErrDanglingPtr   = errors.New("dangling weak pointer")
	ErrPoolExhausted = errors.New("alloc object out of limit")
)
