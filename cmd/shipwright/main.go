// Command shipwright generates spaceship deck layouts.
//
// Settings come from the environment (and .env) first; flags override them.
//
//	shipwright -seed 42
//	shipwright -phrase nostromo -method prim
//	shipwright -count 100 -min-rooms 20
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/shipwright/gridgraph"
	"github.com/katalvlaran/shipwright/internal/config"
	"github.com/katalvlaran/shipwright/internal/logger"
	"github.com/katalvlaran/shipwright/prim_kruskal"
	"github.com/katalvlaran/shipwright/rng"
	"github.com/katalvlaran/shipwright/ship"
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init()

	err := run(os.Args[1:], config.GlobalConfig.Ship, os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		slog.Error("generation failed", "component", "cli", "error", err)
		os.Exit(1)
	}
}

// options is the merged env and flag configuration of one invocation.
type options struct {
	ship.Parameters
	seed        string
	phrase      string
	count       int
	ascii       bool
	method      string
	maxAttempts int
}

func parseFlags(args []string, c config.ShipConfig, stderr io.Writer) (options, error) {
	p := c.Parameters()
	o := options{
		Parameters:  p,
		phrase:      c.SeedPhrase,
		count:       c.Count,
		method:      c.MSTMethod,
		maxAttempts: c.MaxAttempts,
	}
	if c.Seed != nil {
		o.seed = strconv.FormatUint(*c.Seed, 10)
	}

	fs := flag.NewFlagSet("shipwright", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.seed, "seed", o.seed, "seed (decimal or 0x hex); empty draws one from entropy")
	fs.StringVar(&o.phrase, "phrase", o.phrase, "seed phrase, used when -seed is empty")
	fs.IntVar(&o.count, "count", o.count, "number of ships; above 1 prints aggregate statistics")
	fs.BoolVar(&o.ascii, "ascii", true, "draw the deck")
	fs.StringVar(&o.method, "method", o.method, "spanning forest algorithm: kruskal or prim")
	fs.IntVar(&o.maxAttempts, "attempts", o.maxAttempts, "placement passes before giving up; 0 uses the default")
	fs.IntVar(&o.ShipLength, "length", p.ShipLength, "ship length along the spine")
	fs.IntVar(&o.MaxWidth, "width", p.MaxWidth, "half-width measured from the spine")
	fs.IntVar(&o.MinRooms, "min-rooms", p.MinRooms, "room-count floor")
	fs.IntVar(&o.MaxRooms, "max-rooms", p.MaxRooms, "room candidates per pass")
	fs.IntVar(&o.RoomWidthMin, "room-width-min", p.RoomWidthMin, "smallest room width")
	fs.IntVar(&o.RoomWidthMax, "room-width-max", p.RoomWidthMax, "largest room width")
	fs.IntVar(&o.RoomHeightMin, "room-height-min", p.RoomHeightMin, "smallest room height")
	fs.IntVar(&o.RoomHeightMax, "room-height-max", p.RoomHeightMax, "largest room height")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	o.Seed = nil
	switch {
	case o.seed != "":
		seed, err := strconv.ParseUint(o.seed, 0, 64)
		if err != nil {
			return o, fmt.Errorf("-seed: %w", err)
		}
		o.Parameters = o.WithSeed(seed)
	case o.phrase != "":
		o.Parameters = o.WithSeed(rng.SeedFromString(o.phrase))
	}

	switch {
	case o.count < 1:
		return o, fmt.Errorf("-count must be at least 1")
	case o.maxAttempts < 0:
		return o, fmt.Errorf("-attempts must not be negative")
	case !prim_kruskal.ValidMethod(o.method):
		return o, fmt.Errorf("-method must be kruskal or prim")
	}

	return o, o.Validate()
}

// run parses args over c and writes ships to stdout; flag usage and parse
// errors go to stderr.
func run(args []string, c config.ShipConfig, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, c, stderr)
	if err != nil {
		return err
	}

	g := ship.NewGenerator(
		ship.WithMaxAttempts(o.maxAttempts),
		ship.WithMSTMethod(o.method),
	)
	if o.count == 1 {
		s, err := g.Generate(o.Parameters)
		if err != nil {
			return err
		}
		return printShip(stdout, s, o.ascii)
	}

	return runBatch(stdout, g, o)
}

// runBatch generates o.count ships from seeds derived off one base seed.
func runBatch(w io.Writer, g *ship.Generator, o options) error {
	base := rng.EntropySeed()
	if o.Seed != nil {
		base = *o.Seed
	}

	var (
		failures           int
		total              int
		minRooms, maxRooms int
		built              int
	)
	for i := 0; i < o.count; i++ {
		s, err := g.Generate(o.WithSeed(rng.DeriveSeed(base, uint64(i))))
		if errors.Is(err, ship.ErrRoomFloor) {
			failures++
			continue
		}
		if err != nil {
			return err
		}
		n := s.Len()
		if built == 0 || n < minRooms {
			minRooms = n
		}
		if n > maxRooms {
			maxRooms = n
		}
		total += n
		built++
	}

	fmt.Fprintf(w, "base seed: %d\n", base)
	fmt.Fprintf(w, "ships: %d built, %d failed\n", built, failures)
	if built > 0 {
		fmt.Fprintf(w, "rooms: min %d, mean %.2f, max %d\n", minRooms, float64(total)/float64(built), maxRooms)
	}

	return nil
}

func printShip(w io.Writer, s *ship.Rooms, ascii bool) error {
	st := s.Stats()
	fmt.Fprintf(w, "seed: %d\n", s.Seed())
	fmt.Fprintf(w, "rooms: %d (%d on the spine) after %d attempt(s)\n", st.Rooms, st.SpineRooms, s.Attempts())
	fmt.Fprintf(w, "bounds: %d x %d\n", st.Length, st.Width)
	fmt.Fprintf(w, "graph: %d edges, %d adjacent\n", st.GraphEdges, st.AdjacentEdges)
	fmt.Fprintf(w, "corridors: %d across %d component(s)\n", st.TreeEdges, st.Components)

	if ascii && s.Len() > 0 {
		rooms := s.Rooms()
		deck, err := gridgraph.FromRooms(rooms, gridgraph.DefaultGridOptions())
		if err != nil {
			slog.Warn("deck not drawn", "component", "cli", "error", err)
		} else {
			fmt.Fprintf(w, "sections: %d\n\n%s\n", deck.SectionCount(), deck.Render(rooms))
		}
	}

	if s.Len() > 0 {
		walk, err := s.Walk(0)
		if err != nil {
			return err
		}
		far, depth := walk.Farthest()
		fmt.Fprintf(w, "deepest room from 0: %d at %d corridor(s)\n", far, depth)
	}

	for _, e := range s.SpanningTree() {
		fmt.Fprintf(w, "  %s\n", e)
	}

	return nil
}
