package placement

import (
	"errors"
	"fmt"
)

// DefaultMaxAttempts bounds full placement passes when Config.MaxAttempts is 0.
const DefaultMaxAttempts = 64

// Sentinel errors for placement.
var (
	// ErrInvalidConfig indicates bounds that cannot be sampled.
	ErrInvalidConfig = errors.New("placement: invalid config")

	// ErrUnderYield indicates the room floor was never met.
	ErrUnderYield = errors.New("placement: room floor not met")
)

// Config holds the placement bounds. Size bounds are inclusive.
type Config struct {
	ShipLength int // x positions are drawn from [0, ShipLength)
	MaxWidth   int // largest resting center distance from the spine
	MinRooms   int // floor on rooms per accepted pass
	MaxRooms   int // candidates per pass

	WidthMin, WidthMax   int
	HeightMin, HeightMax int

	// MaxAttempts bounds the number of passes; 0 means DefaultMaxAttempts.
	MaxAttempts int
}

// Validate reports bounds that would make sampling impossible.
func (c Config) Validate() error {
	switch {
	case c.ShipLength < 1:
		return fmt.Errorf("ShipLength=%d < 1: %w", c.ShipLength, ErrInvalidConfig)
	case c.MaxWidth < 1:
		return fmt.Errorf("MaxWidth=%d < 1: %w", c.MaxWidth, ErrInvalidConfig)
	case c.MaxRooms < 1:
		return fmt.Errorf("MaxRooms=%d < 1: %w", c.MaxRooms, ErrInvalidConfig)
	case c.MinRooms < 0:
		return fmt.Errorf("MinRooms=%d < 0: %w", c.MinRooms, ErrInvalidConfig)
	case c.WidthMin < 1 || c.WidthMin > c.WidthMax:
		return fmt.Errorf("width bounds [%d,%d]: %w", c.WidthMin, c.WidthMax, ErrInvalidConfig)
	case c.HeightMin < 1 || c.HeightMin > c.HeightMax:
		return fmt.Errorf("height bounds [%d,%d]: %w", c.HeightMin, c.HeightMax, ErrInvalidConfig)
	case c.MaxAttempts < 0:
		return fmt.Errorf("MaxAttempts=%d < 0: %w", c.MaxAttempts, ErrInvalidConfig)
	}

	return nil
}

// attempts returns the effective pass bound.
func (c Config) attempts() int {
	if c.MaxAttempts == 0 {
		return DefaultMaxAttempts
	}

	return c.MaxAttempts
}

// SpineHeight returns the height of a spine-centered room drawn with height
// h: half of h rounded up to an even number, at least 2.
func SpineHeight(h int) int {
	half := (h + 1) / 2
	if half%2 == 1 {
		half++
	}

	return max(half, 2)
}
