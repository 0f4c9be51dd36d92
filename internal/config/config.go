// Package config loads shipwright settings from the environment, with an
// optional .env file in the working directory.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/shipwright/prim_kruskal"
	"github.com/katalvlaran/shipwright/rng"
	"github.com/katalvlaran/shipwright/ship"
)

type Config struct {
	Ship    ShipConfig
	Logging LoggingConfig
}

type ShipConfig struct {
	Length        int
	MaxWidth      int
	MinRooms      int
	MaxRooms      int
	RoomWidthMin  int
	RoomWidthMax  int
	RoomHeightMin int
	RoomHeightMax int

	// Seed wins over SeedPhrase; with neither the seed comes from entropy.
	Seed       *uint64
	SeedPhrase string

	MaxAttempts int
	MSTMethod   string
	Count       int
}

type LoggingConfig struct {
	Level  string
	Format string
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using system environment variables")
	}

	config, err := Load()
	if err != nil {
		return err
	}

	GlobalConfig = config
	return nil
}

// Load reads and validates the current environment without touching .env.
func Load() (*Config, error) {
	config, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetEnv returns the value of key, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func load() (*Config, error) {
	shipConfig, err := loadShipConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Ship:    shipConfig,
		Logging: loadLoggingConfig(),
	}, nil
}

func loadShipConfig() (ShipConfig, error) {
	defaults := ship.DefaultParameters()
	var (
		c   ShipConfig
		err error
	)
	ints := []struct {
		key      string
		fallback int
		dst      *int
	}{
		{"SHIP_LENGTH", defaults.ShipLength, &c.Length},
		{"SHIP_MAX_WIDTH", defaults.MaxWidth, &c.MaxWidth},
		{"SHIP_MIN_ROOMS", defaults.MinRooms, &c.MinRooms},
		{"SHIP_MAX_ROOMS", defaults.MaxRooms, &c.MaxRooms},
		{"SHIP_ROOM_WIDTH_MIN", defaults.RoomWidthMin, &c.RoomWidthMin},
		{"SHIP_ROOM_WIDTH_MAX", defaults.RoomWidthMax, &c.RoomWidthMax},
		{"SHIP_ROOM_HEIGHT_MIN", defaults.RoomHeightMin, &c.RoomHeightMin},
		{"SHIP_ROOM_HEIGHT_MAX", defaults.RoomHeightMax, &c.RoomHeightMax},
		{"SHIP_MAX_ATTEMPTS", 0, &c.MaxAttempts},
		{"SHIP_COUNT", 1, &c.Count},
	}
	for _, f := range ints {
		if *f.dst, err = strconv.Atoi(GetEnv(f.key, strconv.Itoa(f.fallback))); err != nil {
			return c, fmt.Errorf("%s: %w", f.key, err)
		}
	}

	if raw := GetEnv("SHIP_SEED", ""); raw != "" {
		seed, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return c, fmt.Errorf("SHIP_SEED: %w", err)
		}
		c.Seed = &seed
	}
	c.SeedPhrase = GetEnv("SHIP_SEED_PHRASE", "")
	c.MSTMethod = GetEnv("SHIP_MST_METHOD", prim_kruskal.MethodKruskal)

	return c, nil
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  GetEnv("LOG_LEVEL", "info"),
		Format: GetEnv("LOG_FORMAT", "text"),
	}
}

// validate checks everything but the ship parameters, which are validated
// once flags are merged over them.
func (c *Config) validate() error {
	if c.Ship.MaxAttempts < 0 {
		return fmt.Errorf("SHIP_MAX_ATTEMPTS must not be negative")
	}

	if c.Ship.Count < 1 {
		return fmt.Errorf("SHIP_COUNT must be at least 1")
	}

	if !prim_kruskal.ValidMethod(c.Ship.MSTMethod) {
		return fmt.Errorf("SHIP_MST_METHOD must be %q or %q", prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json")
	}

	return nil
}

// Parameters returns the ship parameters with the seed resolved from Seed or
// SeedPhrase. The seed stays nil when neither is set.
func (c ShipConfig) Parameters() ship.Parameters {
	p := ship.Parameters{
		ShipLength:    c.Length,
		MaxWidth:      c.MaxWidth,
		MinRooms:      c.MinRooms,
		MaxRooms:      c.MaxRooms,
		RoomWidthMin:  c.RoomWidthMin,
		RoomWidthMax:  c.RoomWidthMax,
		RoomHeightMin: c.RoomHeightMin,
		RoomHeightMax: c.RoomHeightMax,
	}
	switch {
	case c.Seed != nil:
		p = p.WithSeed(*c.Seed)
	case c.SeedPhrase != "":
		p = p.WithSeed(rng.SeedFromString(c.SeedPhrase))
	}

	return p
}
