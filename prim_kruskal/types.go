// Package prim_kruskal defines configuration options and sentinel errors for
// spanning forest computation. It selects between Kruskal and Prim via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shipwright/core"
)

// ErrInvalidGraph indicates a nil graph or an unknown method name.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph or method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which algorithm to run and, for Prim, where to start.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   int    - start vertex for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets Prim's starting vertex.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns Kruskal with root 0, after applying opts in order.
// Complexity: O(len(opts)).
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// ValidMethod reports whether m names a supported algorithm.
func ValidMethod(m string) bool {
	return m == MethodKruskal || m == MethodPrim
}

// Compute runs the algorithm selected by opts.Method.
//
//	- MethodKruskal: Kruskal(graph).
//	- MethodPrim:    Prim(graph, opts.Root).
//	- otherwise:     ErrInvalidGraph.
//
// Both methods return the same edge set: ties are broken by (From, To), so
// the minimum spanning forest is unique.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return nil, fmt.Errorf("method %q: %w", opts.Method, ErrInvalidGraph)
	}
}

// Components returns the number of trees a forest with the given edges forms
// over vertices 0..n-1. Edges with endpoints outside that range are ignored.
//
// Complexity: O(n + E·α(n)).
func Components(n int, edges []core.Edge) int {
	if n <= 0 {
		return 0
	}
	ds := newDisjointSet(n)
	count := n
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			continue
		}
		if ds.union(e.From, e.To) {
			count--
		}
	}

	return count
}
