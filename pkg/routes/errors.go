package routes

import "errors"

var (
	ErrInvalidPath    = errors.New("invalid route path")
	ErrEmptyComponent = errors.New("route component is empty")
	ErrDuplicatePath  = errors.New("duplicate route path")
)
