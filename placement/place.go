package placement

import (
	"fmt"

	"github.com/katalvlaran/shipwright/rng"
	"github.com/katalvlaran/shipwright/room"
)

// Result is the outcome of Place.
type Result struct {
	// Rooms in commit order; an off-spine room is followed by its mirror.
	Rooms []room.Room

	// Attempts is the number of passes run, including the accepted one.
	Attempts int

	// Best is the largest yield seen across passes.
	Best int
}

// Place runs passes until one commits at least MinRooms rooms.
//
// Steps:
//  1. Validate cfg before any randomness is consumed.
//  2. Run Pass; accept it when the floor is met.
//  3. Otherwise discard the rooms and retry with the same generator,
//     up to the configured number of attempts.
//
// Errors: ErrInvalidConfig, ErrUnderYield.
func Place(cfg Config, r *rng.Rand) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	limit := cfg.attempts()
	best := 0
	for attempt := 1; attempt <= limit; attempt++ {
		rooms := Pass(cfg, r)
		best = max(best, len(rooms))
		if len(rooms) >= cfg.MinRooms {
			return &Result{Rooms: rooms, Attempts: attempt, Best: best}, nil
		}
	}

	return nil, fmt.Errorf("best yield %d < floor %d after %d attempts: %w",
		best, cfg.MinRooms, limit, ErrUnderYield)
}

// PlaceRooms is Place returning only the rooms.
func PlaceRooms(cfg Config, r *rng.Rand) ([]room.Room, error) {
	res, err := Place(cfg, r)
	if err != nil {
		return nil, err
	}

	return res.Rooms, nil
}

// Pass places up to MaxRooms candidates once, without enforcing the floor.
// cfg must be valid.
func Pass(cfg Config, r *rng.Rand) []room.Room {
	rooms := make([]room.Room, 0, 2*cfg.MaxRooms)
	for i := 0; i < cfg.MaxRooms; i++ {
		rooms = placeCandidate(cfg, r, rooms)
	}

	return rooms
}

// placeCandidate draws one room and appends whatever it commits.
func placeCandidate(cfg Config, r *rng.Rand, rooms []room.Room) []room.Room {
	// 1. Draw order is part of the seed contract: x, width, height.
	x := r.Range(0, cfg.ShipLength)
	w := r.Range(cfg.WidthMin, cfg.WidthMax+1)
	h := r.Range(cfg.HeightMin, cfg.HeightMax+1)

	// 2. Slide toward the spine until blocked or the spine is reached.
	cy := cfg.MaxWidth + h
	reachedSpine := false
	for {
		cy--
		c := room.FromCenterSize(room.Point{X: x, Y: cy}, w, h)
		if c.Min.Y <= 0 {
			reachedSpine = true
			break
		}
		if overlapsAny(c, rooms) {
			break
		}
	}

	// 3. A spine room is its own mirror.
	if reachedSpine && r.Bool() {
		s := room.FromCenterSize(room.Point{X: x}, w, SpineHeight(h))
		if !overlapsAny(s, rooms) {
			return append(rooms, s)
		}
	}

	// 4. Back off to the last free position.
	cy++
	if cy > cfg.MaxWidth {
		return rooms
	}
	placed := room.FromCenterSize(room.Point{X: x, Y: cy}, w, h)

	return append(rooms, placed, placed.Mirror())
}

// overlapsAny reports whether c has positive-area overlap with any room.
func overlapsAny(c room.Room, rooms []room.Room) bool {
	for _, o := range rooms {
		if c.Overlaps(o) {
			return true
		}
	}

	return false
}
