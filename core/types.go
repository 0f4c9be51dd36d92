package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside 0..n-1.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates that no edge joins the requested pair.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// WeightKind tags the variant held by a Weight.
type WeightKind uint8

const (
	// KindAdjacent marks rooms that touch along a shared wall.
	KindAdjacent WeightKind = iota
	// KindWeighted marks a proximity edge derived from triangulation.
	KindWeighted
)

// String returns "adjacent" or "weighted".
func (k WeightKind) String() string {
	switch k {
	case KindAdjacent:
		return "adjacent"
	case KindWeighted:
		return "weighted"
	default:
		return fmt.Sprintf("WeightKind(%d)", uint8(k))
	}
}

// Weight is the tagged edge weight. Spine and Dist are meaningful only when
// Kind == KindWeighted; Adjacent weights keep them zero.
type Weight struct {
	// Kind selects the variant.
	Kind WeightKind

	// Spine is the mean |center.y| of the two rooms.
	Spine float64

	// Dist is the Euclidean distance between the two room centers.
	Dist float64
}

// Adjacent returns the weight of a shared-wall edge.
func Adjacent() Weight {
	return Weight{Kind: KindAdjacent}
}

// Weighted returns a proximity weight ordered by spine distance, then by
// Euclidean distance.
func Weighted(spine, dist float64) Weight {
	return Weight{Kind: KindWeighted, Spine: spine, Dist: dist}
}

// IsAdjacent reports whether w is the Adjacent variant.
func (w Weight) IsAdjacent() bool { return w.Kind == KindAdjacent }

// Compare returns -1, 0 or +1 as w sorts before, with, or after o.
// Every Adjacent weight sorts before every Weighted weight.
//
// Complexity: O(1).
func (w Weight) Compare(o Weight) int {
	if w.Kind != o.Kind {
		if w.Kind == KindAdjacent {
			return -1
		}
		return 1
	}
	if w.Kind == KindAdjacent {
		return 0
	}
	switch {
	case w.Spine < o.Spine:
		return -1
	case w.Spine > o.Spine:
		return 1
	case w.Dist < o.Dist:
		return -1
	case w.Dist > o.Dist:
		return 1
	}

	return 0
}

// Less reports whether w sorts strictly before o.
func (w Weight) Less(o Weight) bool { return w.Compare(o) < 0 }

// String renders "adjacent" or "weighted(spine, dist)".
func (w Weight) String() string {
	if w.Kind == KindAdjacent {
		return "adjacent"
	}

	return fmt.Sprintf("weighted(%.3f, %.3f)", w.Spine, w.Dist)
}

// Edge is an undirected edge between room indices From < To.
type Edge struct {
	// From is the smaller endpoint.
	From int

	// To is the larger endpoint.
	To int

	// Weight orders the edge for spanning-tree extraction.
	Weight Weight
}

// Other returns the endpoint opposite v. The result is undefined if v is not
// an endpoint.
func (e Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// Less orders edges by weight, breaking ties by (From, To).
func (e Edge) Less(o Edge) bool {
	if c := e.Weight.Compare(o.Weight); c != 0 {
		return c < 0
	}
	if e.From != o.From {
		return e.From < o.From
	}

	return e.To < o.To
}

// String renders "from-to:weight".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d:%v", e.From, e.To, e.Weight)
}

// pair is the canonical unordered key of an edge.
type pair struct {
	u, v int
}

// Graph is an undirected room graph with at most one edge per pair.
//
// mu guards edges and adj. The vertex count is fixed at construction.
type Graph struct {
	mu sync.RWMutex

	n     int
	edges map[pair]Weight
	adj   [][]int // adj[u] lists neighbors of u in insertion order
}

// NewGraph returns an edgeless graph over vertices 0..n-1. A negative n is
// treated as zero.
//
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{
		n:     n,
		edges: make(map[pair]Weight),
		adj:   make([][]int, n),
	}
}
