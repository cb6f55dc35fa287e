package renderer

import "errors"

var (
	ErrNoBounds = errors.New("renderer: host did not report subject bounds")
	ErrNoDepth  = errors.New("renderer: host did not produce a depth pass")
)
