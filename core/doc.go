// Package core defines the room connectivity graph: an undirected graph over
// room indices whose edges carry a tagged, totally ordered weight.
//
// What:
//
//   - Graph stores vertices 0..n-1 (one per room) and at most one undirected
//     edge per unordered pair, in an index-keyed adjacency list.
//   - Weight is a tagged union. KindAdjacent marks rooms whose rectangles
//     share a wall; KindWeighted carries (Spine, Dist): the mean distance of
//     the two rooms from the ship's spine and the Euclidean distance between
//     their centers.
//   - Weights are never summed into a scalar; they are only ordered.
//
// Weight order:
//
//	Adjacent  <  Weighted(s1, d1)  <  Weighted(s2, d2)   when s1 < s2, or s1 == s2 and d1 < d2
//
// Adding an edge for a pair that already has one keeps the lesser weight, so
// an Adjacent edge overrides a triangulation edge on the same pair.
//
// Concurrency:
//
//   - All methods are safe for concurrent use; mutations take a write lock,
//     queries a read lock. Returned slices are copies.
//
// Determinism:
//
//   - Edges() is sorted by (From, To); Neighbors() by the opposite endpoint.
//     Nothing depends on map iteration order.
//
// Errors:
//
//	ErrVertexOutOfRange - an index outside 0..n-1.
//	ErrLoopNotAllowed   - an edge from a vertex to itself.
//	ErrEdgeNotFound     - a lookup for a pair with no edge.
package core
