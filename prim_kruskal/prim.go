package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/shipwright/core"
)

// Prim computes the minimum spanning forest of graph by growing a tree from
// root with a min-heap, then from the lowest unvisited vertex of every
// remaining component.
//
// Error Conditions:
//   - ErrInvalidGraph         : graph is nil.
//   - core.ErrVertexOutOfRange: root is not a vertex (checked when |V| > 0).
//
// Steps:
//  1. Validate graph and root.
//  2. For each start (root first, then ascending unvisited vertices):
//     a. Mark start visited and push its edges.
//     b. Pop the least edge (weight, then From, To); skip it if its far end
//        is visited, otherwise accept it and push the far end's edges.
//  3. Return edges in acceptance order.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, error) {
	// 1. Validate.
	if graph == nil {
		return nil, ErrInvalidGraph
	}
	n := graph.VertexCount()
	if n == 0 {
		return []core.Edge{}, nil
	}
	if !graph.HasVertex(root) {
		return nil, fmt.Errorf("prim root %d: %w", root, core.ErrVertexOutOfRange)
	}

	visited := mapset.New[int]()
	forest := make([]core.Edge, 0, n-1)
	pq := &edgePQ{}

	// 2. Grow one tree per component.
	grow := func(start int) error {
		visited.Put(start)
		if err := pushFrontier(graph, pq, visited, start); err != nil {
			return err
		}
		for pq.Len() > 0 {
			c := heap.Pop(pq).(candidate)
			if visited.Has(c.to) {
				continue
			}
			visited.Put(c.to)
			forest = append(forest, c.edge)
			if err := pushFrontier(graph, pq, visited, c.to); err != nil {
				return err
			}
		}

		return nil
	}

	if err := grow(root); err != nil {
		return nil, err
	}
	for v := 0; v < n && visited.Size() < n; v++ {
		if visited.Has(v) {
			continue
		}
		if err := grow(v); err != nil {
			return nil, err
		}
	}

	// 3.
	return forest, nil
}

// pushFrontier pushes every edge from u to an unvisited vertex.
func pushFrontier(graph *core.Graph, pq *edgePQ, visited mapset.Set[int], u int) error {
	neighbors, err := graph.Neighbors(u)
	if err != nil {
		return err
	}
	for _, e := range neighbors {
		if to := e.Other(u); !visited.Has(to) {
			heap.Push(pq, candidate{edge: e, to: to})
		}
	}

	return nil
}

// candidate is a frontier edge and the vertex it would add.
type candidate struct {
	edge core.Edge
	to   int
}

// edgePQ implements heap.Interface as a min-heap ordered by core.Edge.Less.
type edgePQ []candidate

// Len returns the number of queued candidates.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then by (From, To).
func (pq edgePQ) Less(i, j int) bool { return pq[i].edge.Less(pq[j].edge) }

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate. Called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(candidate)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
