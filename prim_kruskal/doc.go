// Package prim_kruskal computes the minimum spanning forest of a room graph
// with Prim's or Kruskal's algorithm. The forest is the ship's corridor plan:
// each accepted edge is one corridor between two rooms.
//
// What & Why
//
//   - What is a minimum spanning forest?
//     Given an undirected graph G = (V, E) with ordered edge weights, a
//     spanning forest connects every vertex to everything it can reach
//     without forming a cycle; it is minimum when no other such forest
//     takes smaller edges. A connected graph yields a single tree with
//     |V|-1 edges; in general the forest has |V| - components edges.
//
//   - Why a forest and not an error?
//     A room with no triangulation or adjacency edge is a valid layout.
//     Both algorithms therefore span every component instead of failing.
//
//   - Ordering, not summing.
//     core.Weight is a tagged pair (Adjacent, or Weighted(spine, dist)) that
//     is only ever compared. Minimality is with respect to that order, with
//     ties broken by (From, To). Because the order is total over distinct
//     pairs, the minimum forest is unique and Prim and Kruskal return the
//     same edge set (in different acceptance order).
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, error)
//     Sort all edges by weight (stable over the graph's (From, To) order),
//     then accept every edge joining two disjoint sets of a union-find with
//     path halving and union by rank.
//     Time O(E log E + α(V)·E), Space O(V + E).
//
//   - Prim(g *core.Graph, root int) ([]core.Edge, error)
//     Grow a tree from root with a min-heap of frontier edges; when the heap
//     drains, restart from the lowest unvisited vertex. The visited set is a
//     mapset.Set.
//     Time O(E log E), Space O(V + E).
//
//   - Compute(g, MSTOptions) dispatches on MSTOptions.Method;
//     Components(n, edges) counts the trees of a forest.
//
// Error Conditions
//
//	- ErrInvalidGraph          : nil graph, or unknown method in Compute.
//	- core.ErrVertexOutOfRange : Prim root outside 0..n-1.
//
// For examples of usage, see example_test.go in this package.
package prim_kruskal
