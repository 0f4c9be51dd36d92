package core

import (
	"fmt"
	"slices"
)

// VertexCount returns n, the number of rooms the graph spans.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.n
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasVertex reports whether v is a valid index.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.n
}

// checkPair validates endpoints and returns the canonical key.
func (g *Graph) checkPair(u, v int) (pair, error) {
	if !g.HasVertex(u) {
		return pair{}, fmt.Errorf("vertex %d of %d: %w", u, g.n, ErrVertexOutOfRange)
	}
	if !g.HasVertex(v) {
		return pair{}, fmt.Errorf("vertex %d of %d: %w", v, g.n, ErrVertexOutOfRange)
	}
	if u == v {
		return pair{}, fmt.Errorf("vertex %d: %w", u, ErrLoopNotAllowed)
	}
	if u > v {
		u, v = v, u
	}

	return pair{u, v}, nil
}

// AddEdge joins u and v with weight w. If the pair already has an edge, the
// lesser of the two weights is kept and the edge is not duplicated.
//
// Errors: ErrVertexOutOfRange, ErrLoopNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w Weight) error {
	key, err := g.checkPair(u, v)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if old, ok := g.edges[key]; ok {
		if w.Less(old) {
			g.edges[key] = w
		}
		return nil
	}
	g.edges[key] = w
	g.adj[key.u] = append(g.adj[key.u], key.v)
	g.adj[key.v] = append(g.adj[key.v], key.u)

	return nil
}

// HasEdge reports whether u and v are joined.
func (g *Graph) HasEdge(u, v int) bool {
	_, err := g.Edge(u, v)
	return err == nil
}

// Edge returns the edge joining u and v, normalized so From < To.
//
// Errors: ErrVertexOutOfRange, ErrLoopNotAllowed, ErrEdgeNotFound.
func (g *Graph) Edge(u, v int) (Edge, error) {
	key, err := g.checkPair(u, v)
	if err != nil {
		return Edge{}, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.edges[key]
	if !ok {
		return Edge{}, fmt.Errorf("edge %d-%d: %w", key.u, key.v, ErrEdgeNotFound)
	}

	return Edge{From: key.u, To: key.v, Weight: w}, nil
}

// Edges returns every edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edges))
	for k, w := range g.edges {
		out = append(out, Edge{From: k.u, To: k.v, Weight: w})
	}
	g.mu.RUnlock()

	slices.SortFunc(out, func(a, b Edge) int {
		if a.From != b.From {
			return a.From - b.From
		}
		return a.To - b.To
	})

	return out
}

// Neighbors returns the edges incident to v, sorted by the opposite endpoint.
//
// Errors: ErrVertexOutOfRange.
//
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("vertex %d of %d: %w", v, g.n, ErrVertexOutOfRange)
	}

	g.mu.RLock()
	out := make([]Edge, 0, len(g.adj[v]))
	for _, u := range g.adj[v] {
		key := pair{min(u, v), max(u, v)}
		out = append(out, Edge{From: key.u, To: key.v, Weight: g.edges[key]})
	}
	g.mu.RUnlock()

	slices.SortFunc(out, func(a, b Edge) int {
		return a.Other(v) - b.Other(v)
	})

	return out, nil
}

// Degree returns the number of edges incident to v.
//
// Errors: ErrVertexOutOfRange.
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("vertex %d of %d: %w", v, g.n, ErrVertexOutOfRange)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[v]), nil
}

// CountKind returns how many edges carry the given weight variant.
func (g *Graph) CountKind(k WeightKind) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	count := 0
	for _, w := range g.edges {
		if w.Kind == k {
			count++
		}
	}

	return count
}

// Components returns the connected components, each sorted ascending, in
// order of their smallest vertex. Isolated vertices form singleton
// components.
//
// Complexity: O(V + E).
func (g *Graph) Components() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make([]bool, g.n)
	var comps [][]int
	for start := 0; start < g.n; start++ {
		if seen[start] {
			continue
		}
		// BFS over the adjacency list.
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, w := range g.adj[u] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		slices.Sort(queue)
		comps = append(comps, queue)
	}

	return comps
}

// Clone returns a deep copy that shares no state with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		n:     g.n,
		edges: make(map[pair]Weight, len(g.edges)),
		adj:   make([][]int, g.n),
	}
	for k, w := range g.edges {
		c.edges[k] = w
	}
	for v, nbrs := range g.adj {
		c.adj[v] = slices.Clone(nbrs)
	}

	return c
}
