package game

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// Config represents the command-line parameters of the game.
type Config struct {
	Width         int
	Height        int
	TPS           int
	SpawnInterval time.Duration
	HoleLifetime  time.Duration
	Seed          uint64
	Debug         bool
	Hitboxes      bool
}

// NewConfig returns a Config populated with the default game settings.
func NewConfig() *Config {
	return &Config{
		Width:         1280,
		Height:        720,
		TPS:           60,
		SpawnInterval: 600 * time.Millisecond,
		HoleLifetime:  time.Second,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "updates per second")
	fs.DurationVar(&c.SpawnInterval, "spawn", c.SpawnInterval, "time between new holes")
	fs.DurationVar(&c.HoleLifetime, "lifetime", c.HoleLifetime, "time before a hole escapes")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed for hole placement, 0 picks one")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show the imgui debug windows")
	fs.BoolVar(&c.Hitboxes, "hitboxes", c.Hitboxes, "outline hole hitboxes")
}

var errNotPositive = errors.New("must be positive")

// Validate reports the first setting the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("width %d: %w", c.Width, errNotPositive)
	case c.Height <= 0:
		return fmt.Errorf("height %d: %w", c.Height, errNotPositive)
	case c.TPS <= 0:
		return fmt.Errorf("tps %d: %w", c.TPS, errNotPositive)
	case c.SpawnInterval <= 0:
		return fmt.Errorf("spawn interval %s: %w", c.SpawnInterval, errNotPositive)
	case c.HoleLifetime <= 0:
		return fmt.Errorf("hole lifetime %s: %w", c.HoleLifetime, errNotPositive)
	}
	return nil
}
