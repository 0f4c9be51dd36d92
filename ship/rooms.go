package ship

import (
	"slices"

	"github.com/katalvlaran/shipwright/bfs"
	"github.com/katalvlaran/shipwright/core"
	"github.com/katalvlaran/shipwright/prim_kruskal"
	"github.com/katalvlaran/shipwright/room"
)

// Rooms is the generated ship: room rectangles, their connectivity graph
// and the corridor plan. It is never mutated after construction; every
// accessor returns a copy.
type Rooms struct {
	rooms    []room.Room
	graph    *core.Graph
	tree     []core.Edge
	seed     uint64
	attempts int
	params   Parameters
}

// Len returns the number of rooms.
func (s *Rooms) Len() int { return len(s.rooms) }

// Rooms returns the rooms in placement order. An off-spine room is
// immediately followed by its mirror.
func (s *Rooms) Rooms() []room.Room { return slices.Clone(s.rooms) }

// Room returns room i, or false when i is out of range.
func (s *Rooms) Room(i int) (room.Room, bool) {
	if i < 0 || i >= len(s.rooms) {
		return room.Room{}, false
	}

	return s.rooms[i], true
}

// Graph returns a copy of the full connectivity graph.
func (s *Rooms) Graph() *core.Graph { return s.graph.Clone() }

// SpanningTree returns the corridor plan in acceptance order.
func (s *Rooms) SpanningTree() []core.Edge { return slices.Clone(s.tree) }

// Seed returns the seed the ship was generated from.
func (s *Rooms) Seed() uint64 { return s.seed }

// Attempts returns how many placement passes were run.
func (s *Rooms) Attempts() int { return s.attempts }

// Params returns the parameters with the resolved seed filled in, so that
// Generate(s.Params()) rebuilds the same ship.
func (s *Rooms) Params() Parameters {
	return s.params.WithSeed(s.seed)
}

// Bounds returns the smallest rectangle containing every room, or the zero
// Room when there are none.
func (s *Rooms) Bounds() room.Room {
	if len(s.rooms) == 0 {
		return room.Room{}
	}
	b := s.rooms[0]
	for _, r := range s.rooms[1:] {
		b = b.Union(r)
	}

	return b
}

// Stats summarizes a ship for display.
type Stats struct {
	Rooms         int
	Length        int // bounding extent along the spine
	Width         int // bounding extent across the spine
	GraphEdges    int
	AdjacentEdges int
	TreeEdges     int
	Components    int // trees in the corridor plan
	SpineRooms    int
}

// Stats computes the summary.
// Complexity: O(R + E).
func (s *Rooms) Stats() Stats {
	b := s.Bounds()
	st := Stats{
		Rooms:         len(s.rooms),
		Length:        b.Width(),
		Width:         b.Height(),
		GraphEdges:    s.graph.EdgeCount(),
		AdjacentEdges: s.graph.CountKind(core.KindAdjacent),
		TreeEdges:     len(s.tree),
		Components:    prim_kruskal.Components(len(s.rooms), s.tree),
	}
	for _, r := range s.rooms {
		if r.OnSpine() {
			st.SpineRooms++
		}
	}

	return st
}

// Corridors returns the corridor plan as a graph over the rooms.
func (s *Rooms) Corridors() *core.Graph {
	g := core.NewGraph(len(s.rooms))
	for _, e := range s.tree {
		// Tree edges come from the graph, so they are always in range.
		_ = g.AddEdge(e.From, e.To, e.Weight)
	}

	return g
}

// Walk explores the corridor plan breadth-first from room start. Depth is
// the number of corridors between a room and start.
func (s *Rooms) Walk(start int, opts ...bfs.Option) (*bfs.BFSResult, error) {
	return bfs.BFS(s.Corridors(), start, opts...)
}

// Route lists the rooms on the corridor path from one room to another.
// Rooms in different components have no route.
func (s *Rooms) Route(from, to int) ([]int, error) {
	res, err := s.Walk(from)
	if err != nil {
		return nil, err
	}

	return res.PathTo(to)
}
