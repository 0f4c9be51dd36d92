package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no cells, or no rooms to raster.
	ErrEmptyGrid = errors.New("gridgraph: grid has no cells")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: ragged rows")
	// ErrGridTooLarge indicates a raster larger than MaxCells.
	ErrGridTooLarge = errors.New("gridgraph: raster exceeds cell limit")
)
