package ship_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/shipwright/ship"
)

// ExampleGenerator_Generate builds the reference ship for seed 42.
func ExampleGenerator_Generate() {
	g := ship.NewGenerator(ship.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s, err := g.Generate(ship.DefaultParameters().WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	st := s.Stats()
	first, _ := s.Room(0)
	fmt.Println("rooms:", st.Rooms, "spine:", st.SpineRooms)
	fmt.Println("first:", first)
	fmt.Println("bounds:", st.Length, "x", st.Width)
	fmt.Println("corridors:", st.TreeEdges, "of", st.GraphEdges)
	// Output:
	// rooms: 26 spine: 2
	// first: [(17,-2)..(27,2))
	// bounds: 77 x 54
	// corridors: 25 of 67
}
