package gridgraph

import (
	"strings"

	"github.com/katalvlaran/shipwright/room"
)

// glyphs are assigned to mirrored room pairs in order of first appearance.
const glyphs = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Render draws the deck built by FromRooms, top row first (largest y).
// A room and its mirror share a glyph; open space is '.', except for the
// two rows that flank the spine, drawn as '-'.
//
// Complexity: O(W×H + R) for R rooms.
func (gg *GridGraph) Render(rooms []room.Room) string {
	glyph := pairGlyphs(rooms)

	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for y := gg.Height - 1; y >= 0; y-- {
		wy := y + gg.OriginY
		for x := 0; x < gg.Width; x++ {
			v := gg.CellValues[y][x]
			switch {
			case v > 0 && v <= len(glyph):
				sb.WriteByte(glyph[v-1])
			case wy == 0 || wy == -1:
				sb.WriteByte('-')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// pairGlyphs gives each room the glyph of its mirror class.
func pairGlyphs(rooms []room.Room) []byte {
	out := make([]byte, len(rooms))
	class := make(map[room.Room]byte, len(rooms))
	next := 0
	for i, r := range rooms {
		key := r
		if r.Min.Y < 0 && !r.OnSpine() {
			key = r.Mirror()
		}
		g, ok := class[key]
		if !ok {
			g = glyphs[next%len(glyphs)]
			class[key] = g
			next++
		}
		out[i] = g
	}

	return out
}
