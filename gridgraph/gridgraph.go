package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/shipwright/room"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// with its origin at (0, 0). It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return newGrid(cells, 0, 0, opts), nil
}

// FromRooms rasterizes rooms into the smallest grid covering all of them.
// Cell (x, y) holds i+1 when room i covers it and 0 otherwise; rooms are
// drawn in order, so a later room wins an overlapping cell.
//
// Errors: ErrEmptyGrid (no rooms, or only empty rooms), ErrGridTooLarge.
//
// Complexity: O(W×H + Σ areas).
func FromRooms(rooms []room.Room, opts GridOptions) (*GridGraph, error) {
	var bounds room.Room
	first := true
	for _, r := range rooms {
		if r.Empty() {
			continue
		}
		if first {
			bounds, first = r, false
			continue
		}
		bounds = bounds.Union(r)
	}
	if first {
		return nil, ErrEmptyGrid
	}
	w, h := bounds.Width(), bounds.Height()
	if w*h > MaxCells {
		return nil, fmt.Errorf("%dx%d cells: %w", w, h, ErrGridTooLarge)
	}

	cells := make([][]int, h)
	for y := range cells {
		cells[y] = make([]int, w)
	}
	for i, r := range rooms {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				cells[y-bounds.Min.Y][x-bounds.Min.X] = i + 1
			}
		}
	}

	return newGrid(cells, bounds.Min.X, bounds.Min.Y, opts), nil
}

// newGrid precomputes neighbor offsets for the chosen connectivity.
func newGrid(cells [][]int, ox, oy int, opts GridOptions) *GridGraph {
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           len(cells[0]),
		Height:          len(cells),
		OriginX:         ox,
		OriginY:         oy,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}
}

// InBounds reports whether grid cell (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Occupied reports whether grid cell (x,y) reaches LandThreshold.
func (gg *GridGraph) Occupied(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// RoomAt returns the index of the room covering world cell (wx, wy), or -1.
// Meaningful for grids built by FromRooms.
func (gg *GridGraph) RoomAt(wx, wy int) int {
	x, y := wx-gg.OriginX, wy-gg.OriginY
	if !gg.InBounds(x, y) {
		return -1
	}

	return gg.CellValues[y][x] - 1
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to grid (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// World converts a row-major index to world coordinates.
func (gg *GridGraph) World(idx int) (wx, wy int) {
	x, y := gg.Coordinate(idx)
	return x + gg.OriginX, y + gg.OriginY
}
