package gridgraph

// MaxCells bounds the raster built by FromRooms.
const MaxCells = 1 << 22

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered occupied.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns LandThreshold=1 (any room cell) and Conn4, so
// rooms meeting only at a corner stay separate sections.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// CellValues[y][x] holds the cell value; grid cell (x, y) covers the world
// cell (OriginX+x, OriginY+y).
type GridGraph struct {
	Width, Height    int
	OriginX, OriginY int
	CellValues       [][]int
	Conn             Connectivity
	LandThreshold    int
	neighborOffsets  [][2]int
}
