package mines

import "errors"

var (
	ErrDimensions  = errors.New("board must have at least one row and one column")
	ErrOutOfBounds = errors.New("cell position out of bounds")
)
