package registry

import "errors"

var (
	ErrFrozen          = errors.New("registry is frozen")
	ErrIncompleteEntry = errors.New("conversion entry is incomplete")
)
