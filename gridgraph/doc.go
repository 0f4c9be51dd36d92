// Package gridgraph rasterizes a ship's rooms into a grid of cells and
// treats that grid as a graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a LandThreshold and a
//     world-space origin. FromRooms builds one from room rectangles: a cell
//     holds roomIndex+1, or 0 for open space.
//   - ConnectedComponents finds contiguous regions of occupied cells
//     ("hull sections"): rooms that touch along a wall merge into one.
//   - RoomAt maps world coordinates back to a room index.
//   - Render draws an ASCII deck plan with one glyph per mirrored room pair.
//
// Why:
//
//   - A cell view is the cheapest way to eyeball a seed, and hull sections
//     tell how many separate blocks of rooms a layout has before corridors.
//
// Complexity:
//
//   - FromRooms:           O(W×H + Σ room areas), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbors).
//   - Render:              O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered occupied.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns, or no rooms.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrGridTooLarge: the rooms' bounding box exceeds MaxCells.
package gridgraph
