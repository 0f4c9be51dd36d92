package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/shipwright/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Edge weights are ignored; depth counts edges.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := range n {
		w.res.Depth[v] = -1
		w.res.Parent[v] = -1
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// enqueue marks v visited at depth d and records its parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[v]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if err := w.enqueueNeighbors(v, d); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen
// neighbor in Neighbors order, which keeps the visit order deterministic.
func (w *walker) enqueueNeighbors(v, d int) error {
	next := d + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", v, err)
	}
	for _, e := range edges {
		if !w.opts.FilterEdge(v, e) {
			continue
		}
		if u := e.Other(v); w.res.Depth[u] < 0 {
			w.enqueue(u, next, v)
		}
	}

	return nil
}
