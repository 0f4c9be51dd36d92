// Package shipwright generates procedural spaceship deck layouts: rooms
// mirrored across a central spine, a connectivity graph over them, and a
// corridor plan that links every room at minimum cost.
//
// Everything is deterministic for a given seed. Pure algorithm packages do
// no logging and hold no global state:
//
//	rng/           xoshiro256** generator seeded by SplitMix64
//	room/          integer rectangles, spine geometry, stable colors
//	core/          index graph with tagged (adjacent / weighted) edges
//	placement/     spine-mirrored room placement with bounded restarts
//	delaunay/      exact-arithmetic Delaunay triangulation
//	spatial/       proximity and adjacency graph over rooms
//	prim_kruskal/  minimum spanning forest (corridor plan)
//	bfs/           corridor walks: hop depth and routes between rooms
//	gridgraph/     deck raster, section count and ASCII rendering
//	ship/          the pipeline and the Rooms aggregate
//
// A small deck as the CLI draws it:
//
//	....aaaaaa.....
//	--bbbbb--cccc--
//	--bbbbb--cccc--
//	....aaaaaa.....
//
// 'a' is a room and its mirror, 'b' and 'c' sit on the spine.
//
//	go run ./cmd/shipwright -seed 42
package shipwright
