// Package placement samples non-overlapping rooms along a ship's spine.
//
// What:
//
//	Each candidate draws an x position and a size, starts above the hull at
//	y = MaxWidth + h and slides one cell at a time toward the spine (y = 0)
//	until it either touches an accepted room or reaches the spine:
//
//	  - blocked: back off one cell; the room rests against its blocker.
//	  - spine reached: flip a coin. Heads re-centers the room on the spine
//	    with its height halved to an even number, so the spine bisects it.
//	    Tails (or a spine slot that is already taken) backs off one cell,
//	    leaving the spine strip free.
//
//	A room whose resting center lies above MaxWidth never fit and is
//	dropped. Every committed off-spine room is committed together with its
//	mirror image below the spine.
//
// Retry:
//
//	Pass performs one sweep of MaxRooms candidates. Place repeats whole
//	passes, reusing the advancing generator, until one yields MinRooms
//	rooms or MaxAttempts passes have failed (ErrUnderYield).
//
// Determinism:
//
//	Draw order per candidate is x, width, height, then one coin flip only
//	when the spine is reached. Equal seeds therefore place equal rooms.
//
// Complexity:
//
//	O(MaxRooms · (MaxWidth + HeightMax) · R) per pass, R = rooms accepted so
//	far; each descent step scans the accepted rooms.
//
// Errors:
//
//   - ErrInvalidConfig: bounds that cannot be sampled.
//   - ErrUnderYield: room floor still unmet after MaxAttempts passes.
package placement
