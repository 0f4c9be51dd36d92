// Package ship generates procedural spaceship deck layouts.
//
// What:
//
//	Generate turns Parameters and a seed into a Rooms aggregate:
//
//	  parameters + seed → rooms (placement) → graph (spatial) → corridors (prim_kruskal)
//
//	Rooms holds the room rectangles, the full connectivity graph and its
//	minimum spanning forest, the corridor plan.
//
// Determinism:
//
//	All randomness flows through one rng.Rand owned by the call. Equal
//	Parameters with equal seeds produce identical rooms, graphs and
//	corridors on every platform. A missing seed is drawn from entropy and
//	recorded in the result (Rooms.Seed) so the ship can be rebuilt.
//
// Errors:
//
//	ErrInvalidParameters (via *ParamError) is returned before any random
//	draw. ErrRoomFloor wraps placement.ErrUnderYield when no pass met
//	MinRooms within the attempt bound.
//
// Concurrency:
//
//	A Generator is immutable after construction and may be shared. Each
//	Generate call seeds its own rng.Rand; GenerateWith requires the caller
//	to own the generator it passes. Rooms is read-only and safe to share.
package ship
