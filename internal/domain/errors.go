package domain

import "errors"

var (
	ErrNodeNotFound = errors.New("redpoint node not found")
	ErrInvalidPath  = errors.New("invalid node path")
)
