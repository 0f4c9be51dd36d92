package spatial

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/shipwright/core"
	"github.com/katalvlaran/shipwright/delaunay"
	"github.com/katalvlaran/shipwright/room"
)

// Pair is an unordered room index pair, normalized so I < J.
type Pair struct {
	I, J int
}

// MakePair returns the normalized pair of i and j.
func MakePair(i, j int) Pair {
	if i > j {
		i, j = j, i
	}

	return Pair{I: i, J: j}
}

// Adjacent reports whether a and b share a wall: one of them, grown by one
// cell on every side, overlaps the other by more than one cell. Rooms that
// meet only at a corner are not adjacent. The larger of the two one-sided
// overlaps decides, so Adjacent(a, b) == Adjacent(b, a).
func Adjacent(a, b room.Room) bool {
	return max(contactArea(a, b), contactArea(b, a)) > 1
}

// contactArea is the overlap of a grown by one cell with b.
func contactArea(a, b room.Room) int {
	return a.Inset(-1).Intersect(b).Area()
}

// Proximity returns the weight of a triangulation edge between a and b.
func Proximity(a, b room.Room) core.Weight {
	spine := (a.SpineDistance() + b.SpineDistance()) / 2

	return core.Weighted(spine, a.Distance(b))
}

// AdjacentPairs returns every pair of rooms that share a wall.
// Complexity: O(n²).
func AdjacentPairs(rooms []room.Room) mapset.Set[Pair] {
	pairs := mapset.New[Pair]()
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if Adjacent(rooms[i], rooms[j]) {
				pairs.Put(Pair{I: i, J: j})
			}
		}
	}

	return pairs
}

// ProximityPairs returns the pairs joined by the triangulation of the room
// centers, or by the collinear chain when no triangle exists.
//
// Errors: wraps delaunay.ErrDuplicatePoint (two rooms share a center) and
// delaunay.ErrCoordinateRange.
func ProximityPairs(rooms []room.Room) (mapset.Set[Pair], error) {
	pairs := mapset.New[Pair]()
	switch n := len(rooms); {
	case n < 2:
		return pairs, nil
	case n == 2:
		pairs.Put(Pair{I: 0, J: 1})
		return pairs, nil
	}

	pts := make([]delaunay.Point, len(rooms))
	for i, r := range rooms {
		c := r.Center2()
		pts[i] = delaunay.Point{X: int64(c.X), Y: int64(c.Y)}
	}
	tr, err := delaunay.Triangulate(pts)
	if err != nil {
		return pairs, fmt.Errorf("spatial: triangulate %d rooms: %w", len(rooms), err)
	}
	if tr.Len() == 0 {
		chain(pts, pairs)
		return pairs, nil
	}
	tr.ForEachEdge(func(_, p, q int) {
		pairs.Put(MakePair(p, q))
	})

	return pairs, nil
}

// chain links collinear points to their neighbors along the line.
// Lexicographic (X, Y) order walks any line monotonically.
func chain(pts []delaunay.Point, pairs mapset.Set[Pair]) {
	order := make([]int, len(pts))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(pts[a].X, pts[b].X); c != 0 {
			return c
		}
		return cmp.Compare(pts[a].Y, pts[b].Y)
	})
	for k := 1; k < len(order); k++ {
		pairs.Put(MakePair(order[k-1], order[k]))
	}
}

// Build returns the merged proximity and adjacency graph over rooms.
//
// Steps:
//  1. Collect the adjacency pairs.
//  2. Collect the proximity pairs (triangulation, chain, or the single pair).
//  3. Add Adjacent edges, then Weighted edges for proximity pairs that are
//     not already adjacent.
//
// Edge insertion follows sorted pair order, so the graph is identical for
// identical input.
//
// Errors: see ProximityPairs.
func Build(rooms []room.Room) (*core.Graph, error) {
	g := core.NewGraph(len(rooms))
	if len(rooms) < 2 {
		return g, nil
	}

	// 1.
	adjacent := AdjacentPairs(rooms)

	// 2.
	proximity, err := ProximityPairs(rooms)
	if err != nil {
		return nil, err
	}

	// 3.
	for _, p := range sortedPairs(adjacent) {
		if err := g.AddEdge(p.I, p.J, core.Adjacent()); err != nil {
			return nil, fmt.Errorf("spatial: adjacent %d-%d: %w", p.I, p.J, err)
		}
	}
	for _, p := range sortedPairs(proximity) {
		if adjacent.Has(p) {
			continue
		}
		if err := g.AddEdge(p.I, p.J, Proximity(rooms[p.I], rooms[p.J])); err != nil {
			return nil, fmt.Errorf("spatial: proximity %d-%d: %w", p.I, p.J, err)
		}
	}

	return g, nil
}

// sortedPairs lists a set in (I, J) order.
func sortedPairs(s mapset.Set[Pair]) []Pair {
	out := make([]Pair, 0, s.Size())
	s.Each(func(p Pair) {
		out = append(out, p)
	})
	slices.SortFunc(out, func(a, b Pair) int {
		if a.I != b.I {
			return a.I - b.I
		}
		return a.J - b.J
	})

	return out
}
