package ship_test

import (
	"bytes"
	"log/slog"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shipwright/core"
	"github.com/katalvlaran/shipwright/placement"
	"github.com/katalvlaran/shipwright/prim_kruskal"
	"github.com/katalvlaran/shipwright/rng"
	"github.com/katalvlaran/shipwright/room"
	"github.com/katalvlaran/shipwright/ship"
)

func quiet() ship.Option {
	return ship.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
}

func TestGenerate_Seed42Golden(t *testing.T) {
	s, err := ship.NewGenerator(quiet()).Generate(ship.DefaultParameters().WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, uint64(42), s.Seed())
	assert.Equal(t, 1, s.Attempts())
	first, ok := s.Room(0)
	require.True(t, ok)
	assert.Equal(t, room.New(17, -2, 27, 2), first)
	assert.Equal(t, ship.Stats{
		Rooms:         26,
		Length:        77,
		Width:         54,
		GraphEdges:    67,
		AdjacentEdges: 26,
		TreeEdges:     25,
		Components:    1,
		SpineRooms:    2,
	}, s.Stats())
}

func TestGenerate_Deterministic(t *testing.T) {
	g := ship.NewGenerator(quiet())
	p := ship.DefaultParameters().WithSeed(42)
	a, err := g.Generate(p)
	require.NoError(t, err)
	b, err := g.Generate(p)
	require.NoError(t, err)

	assert.Equal(t, a.Rooms(), b.Rooms())
	assert.Equal(t, a.Graph().Edges(), b.Graph().Edges())
	assert.Equal(t, a.SpanningTree(), b.SpanningTree())
}

func TestGenerate_EntropySeedIsReplayable(t *testing.T) {
	g := ship.NewGenerator(quiet())
	a, err := g.Generate(ship.DefaultParameters())
	require.NoError(t, err)

	replay := a.Params()
	require.NotNil(t, replay.Seed)
	assert.Equal(t, a.Seed(), *replay.Seed)

	b, err := g.Generate(replay)
	require.NoError(t, err)
	assert.Equal(t, a.Rooms(), b.Rooms())
	assert.Equal(t, a.SpanningTree(), b.SpanningTree())
}

func TestGenerate_Invariants(t *testing.T) {
	g := ship.NewGenerator(quiet())
	p := ship.DefaultParameters()
	for seed := uint64(0); seed < 32; seed++ {
		s, err := g.Generate(p.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)

		rooms := s.Rooms()
		require.GreaterOrEqual(t, len(rooms), p.MinRooms)
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				require.False(t, rooms[i].Overlaps(rooms[j]), "seed %d: %d overlaps %d", seed, i, j)
			}
		}

		graph := s.Graph()
		tree := s.SpanningTree()
		for _, e := range tree {
			require.True(t, graph.HasEdge(e.From, e.To), "seed %d: corridor %v not in graph", seed, e)
		}
		st := s.Stats()
		assert.Equal(t, st.Rooms-st.Components, st.TreeEdges, "seed %d: forest size", seed)
		assert.Equal(t, len(graph.Components()), st.Components, "seed %d: forest spans graph components", seed)
		assert.LessOrEqual(t, st.AdjacentEdges, st.GraphEdges)
	}
}

func TestGenerate_PrimMatchesKruskal(t *testing.T) {
	kg := ship.NewGenerator(quiet(), ship.WithMSTMethod(prim_kruskal.MethodKruskal))
	pg := ship.NewGenerator(quiet(), ship.WithMSTMethod(prim_kruskal.MethodPrim))
	sortEdges := func(es []core.Edge) []core.Edge {
		slices.SortFunc(es, func(a, b core.Edge) int {
			if a.From != b.From {
				return a.From - b.From
			}
			return a.To - b.To
		})
		return es
	}
	for seed := uint64(0); seed < 8; seed++ {
		p := ship.DefaultParameters().WithSeed(seed)
		k, err := kg.Generate(p)
		require.NoError(t, err)
		pr, err := pg.Generate(p)
		require.NoError(t, err)
		assert.Equal(t, sortEdges(k.SpanningTree()), sortEdges(pr.SpanningTree()), "seed %d", seed)
	}
}

func TestGenerate_InvalidParametersConsumeNoRandomness(t *testing.T) {
	p := ship.DefaultParameters()
	p.ShipLength = 0

	_, err := ship.Generate(p)
	assert.ErrorIs(t, err, ship.ErrInvalidParameters)

	r := rng.New(1)
	_, err = ship.NewGenerator(quiet()).GenerateWith(p, r)
	assert.ErrorIs(t, err, ship.ErrInvalidParameters)
	assert.Zero(t, r.Draws())
}

func TestGenerateWith_NilRand(t *testing.T) {
	_, err := ship.NewGenerator(quiet()).GenerateWith(ship.DefaultParameters(), nil)
	assert.ErrorIs(t, err, ship.ErrNilRand)
}

func TestGenerateWith_MatchesSeededGenerate(t *testing.T) {
	g := ship.NewGenerator(quiet())
	a, err := g.GenerateWith(ship.DefaultParameters(), rng.New(9))
	require.NoError(t, err)
	b, err := g.Generate(ship.DefaultParameters().WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, a.Rooms(), b.Rooms())
	assert.Equal(t, uint64(9), a.Seed())
}

func TestGenerate_RoomFloor(t *testing.T) {
	// One spine slot at x=0 and no room for anything off the spine: at most
	// one room per pass.
	p := ship.Parameters{
		ShipLength: 1, MaxWidth: 1, MinRooms: 2, MaxRooms: 2,
		RoomWidthMin: 4, RoomWidthMax: 4, RoomHeightMin: 4, RoomHeightMax: 4,
	}
	_, err := ship.NewGenerator(quiet(), ship.WithMaxAttempts(3)).Generate(p.WithSeed(5))
	require.Error(t, err)
	assert.ErrorIs(t, err, ship.ErrRoomFloor)
	assert.ErrorIs(t, err, placement.ErrUnderYield)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestGenerate_ZeroFloorMayBeEmpty(t *testing.T) {
	p := ship.Parameters{
		ShipLength: 1, MaxWidth: 1, MinRooms: 0, MaxRooms: 1,
		RoomWidthMin: 4, RoomWidthMax: 4, RoomHeightMin: 4, RoomHeightMax: 4,
	}
	for seed := uint64(0); seed < 16; seed++ {
		s, err := ship.NewGenerator(quiet()).Generate(p.WithSeed(seed))
		require.NoError(t, err)
		require.LessOrEqual(t, s.Len(), 1)
		assert.Empty(t, s.SpanningTree())
		if s.Len() == 0 {
			assert.Equal(t, room.Room{}, s.Bounds())
		}
	}
}

func TestGenerate_Logs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := ship.NewGenerator(ship.WithLogger(l)).Generate(ship.DefaultParameters().WithSeed(42))
	require.NoError(t, err)

	out := buf.String()
	for _, msg := range []string{"rooms placed", "graph built", "corridors planned", "ship generated"} {
		assert.Contains(t, out, msg)
	}
	assert.Contains(t, out, "seed=42")
}

func TestRooms_AccessorsReturnCopies(t *testing.T) {
	s, err := ship.NewGenerator(quiet()).Generate(ship.DefaultParameters().WithSeed(3))
	require.NoError(t, err)

	rooms := s.Rooms()
	rooms[0] = room.Room{}
	again, _ := s.Room(0)
	assert.NotEqual(t, room.Room{}, again)

	tree := s.SpanningTree()
	tree[0] = core.Edge{}
	assert.NotEqual(t, core.Edge{}, s.SpanningTree()[0])

	_, ok := s.Room(-1)
	assert.False(t, ok)
	_, ok = s.Room(s.Len())
	assert.False(t, ok)
}

func TestGenerator_ConcurrentUse(t *testing.T) {
	g := ship.NewGenerator(quiet())
	want, err := g.Generate(ship.DefaultParameters().WithSeed(11))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := g.Generate(ship.DefaultParameters().WithSeed(11))
			if err != nil {
				errs <- err
				return
			}
			if !slices.Equal(got.Rooms(), want.Rooms()) {
				errs <- assert.AnError
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { ship.WithLogger(nil) })
	assert.Panics(t, func() { ship.WithMaxAttempts(-1) })
	assert.Panics(t, func() { ship.WithMSTMethod("boruvka") })
	assert.NotPanics(t, func() { ship.WithMaxAttempts(0) })
}

func TestRooms_CorridorWalk(t *testing.T) {
	s, err := ship.NewGenerator(quiet()).Generate(ship.DefaultParameters().WithSeed(42))
	require.NoError(t, err)

	corridors := s.Corridors()
	assert.Equal(t, s.Len(), corridors.VertexCount())
	assert.Equal(t, len(s.SpanningTree()), corridors.EdgeCount())

	res, err := s.Walk(0)
	require.NoError(t, err)
	assert.Len(t, res.Order, s.Len(), "seed 42 has one component")

	far, depth := res.Farthest()
	route, err := s.Route(0, far)
	require.NoError(t, err)
	assert.Len(t, route, depth+1)
	assert.Equal(t, 0, route[0])
	assert.Equal(t, far, route[len(route)-1])
	for i := 1; i < len(route); i++ {
		assert.True(t, corridors.HasEdge(route[i-1], route[i]), "hop %d-%d is not a corridor", route[i-1], route[i])
	}

	_, err = s.Walk(s.Len())
	assert.Error(t, err)
}

func TestGenerate_ExtremeExtents(t *testing.T) {
	cases := map[string]ship.Parameters{
		// Odd-height rooms resting at the outer edge put doubled centers
		// 4·MaxWidth+2 apart across the spine.
		"odd height at full width": {
			ShipLength: 1, MaxWidth: ship.MaxExtent, MinRooms: 0, MaxRooms: 2,
			RoomWidthMin: 1, RoomWidthMax: 1, RoomHeightMin: 21845, RoomHeightMax: 21845,
		},
		"every extent at the cap": {
			ShipLength: ship.MaxExtent, MaxWidth: ship.MaxExtent, MinRooms: 0, MaxRooms: 4,
			RoomWidthMin: 1, RoomWidthMax: ship.MaxExtent, RoomHeightMin: 1, RoomHeightMax: ship.MaxExtent,
		},
	}
	g := ship.NewGenerator(quiet())
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, p.Validate())
			for seed := uint64(0); seed < 16; seed++ {
				s, err := g.Generate(p.WithSeed(seed))
				require.NoError(t, err, "seed %d", seed)
				st := s.Stats()
				assert.Equal(t, st.Rooms-st.Components, st.TreeEdges, "seed %d", seed)
			}
		})
	}
}
