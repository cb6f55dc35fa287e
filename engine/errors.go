package engine

import "errors"

var (
	ErrInvalidCount     = errors.New("engine: render count must be a positive integer")
	ErrMissingComponent = errors.New("engine: camera, lighting, renderer, libraries and host are all required")
)
