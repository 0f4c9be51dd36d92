// Package room defines the integer rectangle geometry shared by placement,
// the spatial graph builder and the deck raster.
//
// A Room is an axis-aligned, half-open rectangle of grid cells: it covers the
// cells x in [Min.X, Max.X) and y in [Min.Y, Max.Y). The ship's spine is the
// x axis (y = 0); mirrored rooms are reflections across it.
//
// Invariants:
//
//   - A valid Room has Min.X < Max.X and Min.Y < Max.Y (positive area).
//   - Rooms emitted by generation never intersect with positive area;
//     touching along an edge is allowed and is what "adjacent" means.
//
// All operations are pure value computations; Room is safe to copy and to
// share between goroutines.
package room
