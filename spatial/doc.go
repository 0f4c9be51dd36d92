// Package spatial turns a list of rooms into the connectivity graph used to
// plan corridors.
//
// Two passes run over the same room list and are merged into one core.Graph:
//
//  1. Proximity: the Delaunay triangulation of the room centers. Each
//     triangulation edge becomes Weighted(spine, dist), where spine is the
//     mean |center.y| of the two rooms and dist the distance between their
//     centers.
//  2. Adjacency: every unordered pair whose rectangles share more than a
//     single corner cell (see Adjacent) gets an Adjacent edge. Adjacent sorts
//     before every Weighted value, so it replaces a proximity edge on the
//     same pair.
//
// Centers are triangulated in doubled coordinates (room.Room.Center2) so that
// half-cell centers stay exact.
//
// Degenerate layouts:
//
//   - 0 or 1 room: edgeless graph.
//   - 2 rooms: a single edge, Adjacent or Weighted, without triangulating.
//   - Collinear centers: no triangle exists, so rooms are chained in order
//     along their common line.
//
// Build is a pure function of its input and consumes no randomness.
//
// Complexity: O(n²) time for n rooms (triangulation and the pairwise
// adjacency scan), O(n) edges.
package spatial
