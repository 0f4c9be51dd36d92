package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/shipwright/core"
)

// Kruskal computes the minimum spanning forest of graph.
// It uses a disjoint-set (union-find) with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph: graph is nil.
//
// A disconnected graph is not an error: the result then holds one tree per
// component, n - components edges in total.
//
// Steps:
//  1. Validate graph != nil; fewer than two vertices give an empty forest.
//  2. Collect edges via graph.Edges() (sorted by From, To).
//  3. Stable-sort by weight; ties keep the (From, To) order.
//  4. Scan edges, accepting each one that joins two different sets.
//  5. Stop early once |V|-1 edges are accepted.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, error) {
	// 1. Validate.
	if graph == nil {
		return nil, ErrInvalidGraph
	}
	n := graph.VertexCount()
	if n < 2 {
		return []core.Edge{}, nil
	}

	// 2-3. Edges arrive in (From, To) order; a stable sort by weight keeps it for ties.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight.Less(edges[j].Weight)
	})

	// 4. Accept edges that join two components.
	ds := newDisjointSet(n)
	forest := make([]core.Edge, 0, n-1)
	for _, e := range edges {
		if !ds.union(e.From, e.To) {
			continue
		}
		forest = append(forest, e)
		// 5. A spanning tree is complete.
		if len(forest) == n-1 {
			break
		}
	}

	return forest, nil
}

// disjointSet is a union-find over 0..n-1.
type disjointSet struct {
	parent []int
	rank   []int
}

// newDisjointSet returns n singleton sets.
func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the root of u, halving the path on the way.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank and reports whether they were
// disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	if ds.rank[ru] < ds.rank[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	if ds.rank[ru] == ds.rank[rv] {
		ds.rank[ru]++
	}

	return true
}
