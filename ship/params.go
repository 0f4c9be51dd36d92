package ship

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shipwright/placement"
)

// MaxExtent bounds every length-like parameter. Doubled room centers then
// span at most 4·MaxExtent+2 across the spine, inside delaunay.MaxSpan.
const MaxExtent = 1 << 15

// ErrInvalidParameters is wrapped by every *ParamError.
var ErrInvalidParameters = errors.New("ship: invalid parameters")

// ParamError names the offending field.
type ParamError struct {
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("ship: invalid %s: %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidParameters.
func (e *ParamError) Unwrap() error { return ErrInvalidParameters }

// Parameters configures one ship. Size bounds are inclusive; MaxWidth is
// the half-width measured from the spine.
type Parameters struct {
	ShipLength int
	MaxWidth   int
	MinRooms   int
	MaxRooms   int

	RoomWidthMin, RoomWidthMax   int
	RoomHeightMin, RoomHeightMax int

	// Seed makes generation reproducible; nil draws one from entropy.
	Seed *uint64
}

// DefaultParameters returns the reference layout: a 64-cell ship, 24 cells
// either side of the spine, 10 to 25 rooms of 4 to 16 cells per side.
func DefaultParameters() Parameters {
	return Parameters{
		ShipLength:    64,
		MaxWidth:      24,
		MinRooms:      10,
		MaxRooms:      25,
		RoomWidthMin:  4,
		RoomWidthMax:  16,
		RoomHeightMin: 4,
		RoomHeightMax: 16,
	}
}

// WithSeed returns a copy of p with its seed set.
func (p Parameters) WithSeed(seed uint64) Parameters {
	p.Seed = &seed
	return p
}

// Validate checks every invariant and reports the first violation.
func (p Parameters) Validate() error {
	extents := []struct {
		name string
		v    int
	}{
		{"ShipLength", p.ShipLength},
		{"MaxWidth", p.MaxWidth},
		{"RoomWidthMin", p.RoomWidthMin},
		{"RoomWidthMax", p.RoomWidthMax},
		{"RoomHeightMin", p.RoomHeightMin},
		{"RoomHeightMax", p.RoomHeightMax},
		{"MaxRooms", p.MaxRooms},
	}
	for _, f := range extents {
		if f.v < 1 || f.v > MaxExtent {
			return &ParamError{Field: f.name, Reason: fmt.Sprintf("%d not in [1, %d]", f.v, MaxExtent)}
		}
	}

	switch {
	case p.MinRooms < 0:
		return &ParamError{Field: "MinRooms", Reason: fmt.Sprintf("%d < 0", p.MinRooms)}
	case p.MinRooms > p.MaxRooms:
		return &ParamError{Field: "MinRooms", Reason: fmt.Sprintf("%d > MaxRooms %d", p.MinRooms, p.MaxRooms)}
	case p.RoomWidthMin > p.RoomWidthMax:
		return &ParamError{Field: "RoomWidthMin", Reason: fmt.Sprintf("%d > RoomWidthMax %d", p.RoomWidthMin, p.RoomWidthMax)}
	case p.RoomHeightMin > p.RoomHeightMax:
		return &ParamError{Field: "RoomHeightMin", Reason: fmt.Sprintf("%d > RoomHeightMax %d", p.RoomHeightMin, p.RoomHeightMax)}
	}

	return nil
}

// placementConfig maps p onto the placement bounds.
func (p Parameters) placementConfig(maxAttempts int) placement.Config {
	return placement.Config{
		ShipLength:  p.ShipLength,
		MaxWidth:    p.MaxWidth,
		MinRooms:    p.MinRooms,
		MaxRooms:    p.MaxRooms,
		WidthMin:    p.RoomWidthMin,
		WidthMax:    p.RoomWidthMax,
		HeightMin:   p.RoomHeightMin,
		HeightMax:   p.RoomHeightMax,
		MaxAttempts: maxAttempts,
	}
}
