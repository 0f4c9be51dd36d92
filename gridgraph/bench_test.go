package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/shipwright/gridgraph"
	"github.com/katalvlaran/shipwright/rng"
	"github.com/katalvlaran/shipwright/room"
)

// BenchmarkConnectedComponents measures ConnectedComponents on a
// 1000×1000 grid with random values in [0,4].
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	r := rng.New(42)
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = r.Intn(5)
		}
		grid[y] = row
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkFromRooms measures rasterizing a ship-sized layout.
func BenchmarkFromRooms(b *testing.B) {
	r := rng.New(7)
	rooms := make([]room.Room, 0, 50)
	for i := 0; i < 50; i++ {
		x, y := r.Intn(64), r.Range(-24, 24)
		rooms = append(rooms, room.FromCenterSize(room.Point{X: x, Y: y}, r.Range(4, 17), r.Range(4, 17)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.FromRooms(rooms, gridgraph.DefaultGridOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
