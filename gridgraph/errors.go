package gridgraph

import "errors"

var (
	// ErrNegativeSize indicates New was called with width < 0 or height < 0.
	ErrNegativeSize = errors.New("gridgraph: width and height must be non-negative")
	// ErrEmptyGrid indicates the input rows are empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid was read or written.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrBadSymbol indicates a map character that has no cost mapping.
	ErrBadSymbol = errors.New("gridgraph: unknown map symbol")
)
