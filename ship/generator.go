package ship

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/shipwright/core"
	"github.com/katalvlaran/shipwright/placement"
	"github.com/katalvlaran/shipwright/prim_kruskal"
	"github.com/katalvlaran/shipwright/rng"
	"github.com/katalvlaran/shipwright/spatial"
)

var (
	// ErrRoomFloor indicates MinRooms was never reached; it wraps
	// placement.ErrUnderYield.
	ErrRoomFloor = errors.New("ship: could not satisfy room-count floor")

	// ErrNilRand indicates GenerateWith was called without a generator.
	ErrNilRand = errors.New("ship: nil random generator")
)

// Generator builds ships. The zero value is not usable; call NewGenerator.
type Generator struct {
	log         *slog.Logger
	maxAttempts int
	method      string
}

// NewGenerator returns a Generator with Kruskal corridors, the default
// attempt bound and slog.Default() tagged component=ship, then applies opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		log:    slog.Default().With("component", "ship"),
		method: prim_kruskal.MethodKruskal,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate validates p, resolves its seed and builds a ship.
func (g *Generator) Generate(p Parameters) (*Rooms, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var seed uint64
	if p.Seed != nil {
		seed = *p.Seed
	} else {
		seed = rng.EntropySeed()
		g.log.Debug("seed drawn from entropy", "seed", seed)
	}

	return g.generate(p, rng.New(seed))
}

// GenerateWith builds a ship from r, ignoring p.Seed. The caller must own r
// for the duration of the call. Validation happens before r is touched.
func (g *Generator) GenerateWith(p Parameters, r *rng.Rand) (*Rooms, error) {
	if r == nil {
		return nil, ErrNilRand
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return g.generate(p, r)
}

// generate runs the pipeline on validated parameters.
//
// Steps:
//  1. Place rooms, restarting whole passes until MinRooms is met.
//  2. Build the proximity and adjacency graph.
//  3. Extract the minimum spanning forest as the corridor plan.
//  4. Assemble the aggregate.
func (g *Generator) generate(p Parameters, r *rng.Rand) (*Rooms, error) {
	seed := r.Seed()
	log := g.log.With("seed", seed)

	// 1.
	placed, err := placement.Place(p.placementConfig(g.maxAttempts), r)
	if err != nil {
		if errors.Is(err, placement.ErrUnderYield) {
			log.Warn("room floor not met", "min_rooms", p.MinRooms, "error", err)
			return nil, fmt.Errorf("%w: %w", ErrRoomFloor, err)
		}
		return nil, fmt.Errorf("ship: placement: %w", err)
	}
	log.Debug("rooms placed", "rooms", len(placed.Rooms), "attempts", placed.Attempts, "draws", r.Draws())

	// 2.
	graph, err := spatial.Build(placed.Rooms)
	if err != nil {
		return nil, fmt.Errorf("ship: graph: %w", err)
	}
	log.Debug("graph built", "edges", graph.EdgeCount(), "adjacent", graph.CountKind(core.KindAdjacent))

	// 3.
	tree, err := prim_kruskal.Compute(graph, prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(g.method)))
	if err != nil {
		return nil, fmt.Errorf("ship: corridors: %w", err)
	}
	log.Debug("corridors planned", "method", g.method, "corridors", len(tree))

	// 4.
	out := &Rooms{
		rooms:    placed.Rooms,
		graph:    graph,
		tree:     tree,
		seed:     seed,
		attempts: placed.Attempts,
		params:   p,
	}
	st := out.Stats()
	log.Info("ship generated",
		"rooms", st.Rooms,
		"length", st.Length,
		"width", st.Width,
		"corridors", st.TreeEdges,
		"attempts", out.attempts,
	)

	return out, nil
}

// Generate builds a ship with a default Generator.
func Generate(p Parameters) (*Rooms, error) {
	return NewGenerator().Generate(p)
}
