package delaunay

import "errors"

// Sentinel errors for triangulation.
var (
	// ErrDuplicatePoint indicates two input points share coordinates.
	ErrDuplicatePoint = errors.New("delaunay: duplicate point")

	// ErrCoordinateRange indicates the input's bounding box exceeds MaxSpan.
	ErrCoordinateRange = errors.New("delaunay: coordinate span too large")
)

// MaxSpan bounds the width and height of the input's bounding box.
const MaxSpan = 1 << 18

// Point is an integer input point.
type Point struct {
	X, Y int64
}

// Triangulation is the result of Triangulate.
type Triangulation struct {
	// Points is a copy of the input, indexed as given.
	Points []Point

	// Triangles holds three counter-clockwise vertex indices per triangle.
	Triangles []int

	// Halfedges maps each half-edge to its twin, or -1 on the convex hull.
	Halfedges []int
}

// Len returns the number of triangles.
func (t *Triangulation) Len() int {
	return len(t.Triangles) / 3
}

// NextHalfedge returns the half-edge following e inside its triangle.
func NextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}

	return e + 1
}

// PrevHalfedge returns the half-edge preceding e inside its triangle.
func PrevHalfedge(e int) int {
	if e%3 == 0 {
		return e + 2
	}

	return e - 1
}

// Edge returns the start and end vertex of half-edge e.
func (t *Triangulation) Edge(e int) (p, q int) {
	return t.Triangles[e], t.Triangles[NextHalfedge(e)]
}

// ForEachEdge calls fn once per undirected edge, in half-edge order. A
// half-edge e is visited only when its twin is absent or has a smaller
// index, so shared edges are reported by exactly one of their two sides.
//
// Complexity: O(T) for T triangles.
func (t *Triangulation) ForEachEdge(fn func(e, p, q int)) {
	for e := range t.Triangles {
		if t.Halfedges[e] < e {
			p, q := t.Edge(e)
			fn(e, p, q)
		}
	}
}
