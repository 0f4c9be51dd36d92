package bfs_test

import (
	"testing"

	"github.com/katalvlaran/shipwright/bfs"
	"github.com/katalvlaran/shipwright/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph(N)
	for i := 0; i+1 < N; i++ {
		_ = g.AddEdge(i, i+1, core.Adjacent())
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of 1023 vertices.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const n = 1<<10 - 1
	g := core.NewGraph(n)
	for v := 1; v < n; v++ {
		_ = g.AddEdge((v-1)/2, v, core.Adjacent())
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
