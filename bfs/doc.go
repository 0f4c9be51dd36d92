// Package bfs walks a core.Graph breadth-first.
//
// What:
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - BFSResult holds the visit Order plus per-vertex Depth and Parent.
//   - Options: WithContext, WithOnVisit (may abort), WithMaxDepth,
//     WithFilterEdge (e.g. only Adjacent edges, meaning shared walls).
//
// On a ship's corridor plan the depth of a room is the number of corridors
// between it and the start room, and PathTo lists the rooms a crew member
// walks through.
//
// Determinism:
//
//	core.Graph.Neighbors returns edges sorted by neighbor index, so the visit
//	order is reproducible.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
