package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/shipwright/bfs"
	"github.com/katalvlaran/shipwright/core"
)

// build returns an n-vertex graph with unit weighted edges.
func build(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], core.Weighted(0, 1)); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := build(t, 2)
	if _, err := bfs.BFS(g, 2); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestCycleAndDepths covers a 4-cycle 0-1-2-3-0.
func TestCycleAndDepths(t *testing.T) {
	g := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if v, d := res.Farthest(); v != 2 || d != 2 {
		t.Errorf("Farthest = (%d,%d); want (2,2)", v, d)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := build(t, 4, [2]int{0, 1}, [2]int{2, 3})
	res, err := bfs.BFS(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, []int{2, 3}) {
		t.Errorf("Order = %v; want [2 3]", res.Order)
	}
	if res.Reached(0) || res.Depth[0] != -1 || res.Parent[0] != -1 {
		t.Errorf("vertex 0 should be unreached, got depth %d parent %d", res.Depth[0], res.Parent[0])
	}
	if _, err := res.PathTo(0); err == nil {
		t.Error("PathTo(0): want error")
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for a limit, zero and a large value.
func TestBFS_MaxDepth(t *testing.T) {
	g := build(t, 3, [2]int{0, 1}, [2]int{1, 2})
	for _, tc := range []struct {
		depth int
		want  []int
	}{
		{1, []int{0, 1}},
		{0, []int{0, 1, 2}},
		{10, []int{0, 1, 2}},
	} {
		res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(tc.depth))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(res.Order, tc.want) {
			t.Errorf("MaxDepth=%d: got %v; want %v", tc.depth, res.Order, tc.want)
		}
	}
}

// TestBFS_FilterEdge walks only through shared walls.
func TestBFS_FilterEdge(t *testing.T) {
	g := core.NewGraph(3)
	_ = g.AddEdge(0, 1, core.Adjacent())
	_ = g.AddEdge(1, 2, core.Weighted(1, 1))
	res, err := bfs.BFS(g, 0, bfs.WithFilterEdge(func(_ int, e core.Edge) bool {
		return e.Weight.IsAdjacent()
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterEdge: got %v; want %v", res.Order, want)
	}
}

// TestBFS_PathTo reconstructs a shortest path on a ladder.
func TestBFS_PathTo(t *testing.T) {
	// 0-1-2
	// |   |
	// 3-4-5
	g := build(t, 6, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{2, 5})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(5)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 5}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(5) = %v; want %v", path, want)
	}
	if path, _ := res.PathTo(0); !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo(start) = %v; want [0]", path)
	}
}

// TestBFS_OnVisitAbort stops at the first hook error.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := build(t, 3, [2]int{0, 1}, [2]int{1, 2})
	stop := errors.New("stop")
	var seen []int
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		seen = append(seen, v)
		if v == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want hook error, got %v", err)
	}
	if !reflect.DeepEqual(seen, []int{0, 1}) {
		t.Errorf("visited %v; want [0 1]", seen)
	}
}

// TestBFS_Cancelled honors a cancelled context.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := build(t, 2, [2]int{0, 1})
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
