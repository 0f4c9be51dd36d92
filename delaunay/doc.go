// Package delaunay computes the Delaunay triangulation of a set of integer
// points, exposing it in the compact half-edge form popularized by
// delaunator.
//
// What:
//
//   - Triangulate runs Bowyer–Watson insertion with exact predicates: both
//     the orientation and the in-circle determinant are evaluated with
//     math/big, so cocircular and collinear inputs (common when rooms are
//     mirrored across the spine) resolve identically on every platform.
//   - The enclosing super triangle is placed farther out than the largest
//     circumradius any lattice triangle inside the input's bounding box can
//     have, so stripping it leaves a triangulation of the full convex hull.
//
// Output layout:
//
//	Triangles[3t], Triangles[3t+1], Triangles[3t+2]  vertex indices of triangle t, counter-clockwise
//	Halfedges[e]                                      the opposite half-edge of e, or -1 on the hull
//
// Half-edge e runs from Triangles[e] to Triangles[NextHalfedge(e)]. Every
// undirected edge is visited once by taking e only when Halfedges[e] < e
// (the twin is absent or has a smaller index); ForEachEdge does exactly that.
//
// Degenerate input:
//
//   - Fewer than three points, or all points collinear, yields zero
//     triangles and no error. Callers decide how to connect such inputs.
//   - Repeated points are rejected with ErrDuplicatePoint.
//   - A bounding box wider or taller than MaxSpan is rejected with
//     ErrCoordinateRange, which keeps every intermediate value inside int64.
//
// Complexity:
//
//   - Time O(n²) in the worst case (each insertion scans all triangles),
//     Memory O(n). Ship layouts hold tens of rooms, where this is cheaper
//     than maintaining a point-location structure.
package delaunay
