package delaunay

import (
	"fmt"
	"slices"
)

// triangle holds three counter-clockwise vertex indices.
type triangle [3]int

// directed is a half-edge key used to pair twins.
type directed [2]int

// Triangulate returns the Delaunay triangulation of points.
//
// Steps:
//  1. Reject duplicates; return an empty triangulation for fewer than 3 points.
//  2. Translate the bounding box to the origin and check it against MaxSpan.
//  3. Seed the mesh with a super triangle whose vertices lie outside every
//     possible circumcircle of the input.
//  4. Insert points in input order: remove every triangle whose circumcircle
//     strictly contains the point, then fan the cavity's boundary to it.
//  5. Drop triangles touching the super vertices and pair twin half-edges.
//
// Errors: ErrDuplicatePoint, ErrCoordinateRange.
//
// Complexity: O(n²) time, O(n) memory.
func Triangulate(points []Point) (*Triangulation, error) {
	n := len(points)
	t := &Triangulation{
		Points:    slices.Clone(points),
		Triangles: []int{},
		Halfedges: []int{},
	}

	// 1. Duplicates break the in-circle test, so they are an input error.
	seen := make(map[Point]int, n)
	for i, p := range points {
		if j, ok := seen[p]; ok {
			return nil, fmt.Errorf("points %d and %d at (%d,%d): %w", j, i, p.X, p.Y, ErrDuplicatePoint)
		}
		seen[p] = i
	}
	if n < 3 {
		return t, nil
	}

	// 2. Work in local coordinates anchored at the bounding box minimum.
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	span := max(maxX-minX, maxY-minY)
	if span > MaxSpan {
		return nil, fmt.Errorf("span %d exceeds %d: %w", span, MaxSpan, ErrCoordinateRange)
	}
	span = max(span, 1)

	pts := make([]Point, n+3)
	for i, p := range points {
		pts[i] = Point{p.X - minX, p.Y - minY}
	}

	// 3. A lattice triangle inside a span×span box has circumradius at most
	//    √2·span³, so super vertices ~11·span³ away are never inside a
	//    circumcircle of the input. span ≤ 2^18 keeps m at 2^57 and every
	//    coordinate difference (at most 5m) below 2^60.
	m := 8 * span * span * span
	pts[n] = Point{-m, -m}
	pts[n+1] = Point{4 * m, -m}
	pts[n+2] = Point{-m, 4 * m}
	tris := []triangle{{n, n + 1, n + 2}}

	// 4. Bowyer–Watson insertion.
	for i := 0; i < n; i++ {
		tris = insert(pts, tris, i)
	}

	// 5. Keep input-only triangles and pair their half-edges.
	for _, tr := range tris {
		if tr[0] >= n || tr[1] >= n || tr[2] >= n {
			continue
		}
		t.Triangles = append(t.Triangles, tr[0], tr[1], tr[2])
	}
	t.Halfedges = pairHalfedges(t.Triangles)

	return t, nil
}

// insert adds point i to the mesh and returns the new triangle list.
// The cavity (all triangles whose circumcircle strictly contains the point)
// is star-shaped around it, so each boundary edge (u,v) forms a new
// counter-clockwise triangle (u, v, i).
func insert(pts []Point, tris []triangle, i int) []triangle {
	p := pts[i]
	next := make([]triangle, 0, len(tris)+2)
	var bad []triangle
	for _, tr := range tris {
		if inCircle(pts[tr[0]], pts[tr[1]], pts[tr[2]], p) > 0 {
			bad = append(bad, tr)
			continue
		}
		next = append(next, tr)
	}

	// Interior cavity edges appear twice with opposite directions.
	inCavity := make(map[directed]struct{}, 3*len(bad))
	for _, tr := range bad {
		for k := 0; k < 3; k++ {
			inCavity[directed{tr[k], tr[(k+1)%3]}] = struct{}{}
		}
	}
	for _, tr := range bad {
		for k := 0; k < 3; k++ {
			u, v := tr[k], tr[(k+1)%3]
			if _, shared := inCavity[directed{v, u}]; shared {
				continue
			}
			next = append(next, triangle{u, v, i})
		}
	}

	return next
}

// pairHalfedges links every half-edge to its reversed twin.
func pairHalfedges(triangles []int) []int {
	halfedges := make([]int, len(triangles))
	index := make(map[directed]int, len(triangles))
	for e := range triangles {
		index[directed{triangles[e], triangles[NextHalfedge(e)]}] = e
	}
	for e := range triangles {
		twin, ok := index[directed{triangles[NextHalfedge(e)], triangles[e]}]
		if !ok {
			twin = -1
		}
		halfedges[e] = twin
	}

	return halfedges
}
