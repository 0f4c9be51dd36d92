package spatial_test

import (
	"fmt"

	"github.com/katalvlaran/shipwright/room"
	"github.com/katalvlaran/shipwright/spatial"
)

// ExampleBuild connects three rooms: two share a wall, the third is reached
// through the triangulation.
func ExampleBuild() {
	rooms := []room.Room{
		room.New(0, 1, 4, 5),
		room.New(4, 1, 8, 5),
		room.New(2, -9, 6, -5),
	}
	g, err := spatial.Build(rooms)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Println(e)
	}
	// Output:
	// 0-1:adjacent
	// 0-2:weighted(5.000, 10.198)
	// 1-2:weighted(5.000, 10.198)
}
