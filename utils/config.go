// File: utils/config.go
package utils

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// BallResetMode selects how the ball velocity is re-seeded after a score.
type BallResetMode string

const (
	// ResetPreserve keeps the pre-reset velocity unchanged.
	ResetPreserve BallResetMode = "preserve"
	// ResetRandom re-seeds each velocity axis to a random magnitude in
	// [ResetMinSpeed, ResetMaxSpeed) with a random sign.
	ResetRandom BallResetMode = "random"
)

// Config holds all configurable game parameters. The simulation core treats
// every field as a given constant for the session.
type Config struct {
	// Timing
	TickPeriod time.Duration `yaml:"tickPeriod"` // Fixed simulation step period

	// Field
	FieldWidth  float64 `yaml:"fieldWidth"`  // Playing field width in pixels
	FieldHeight float64 `yaml:"fieldHeight"` // Playing field height in pixels

	// Paddle properties
	PaddleWidth  float64 `yaml:"paddleWidth"`  // Paddle thickness
	PaddleHeight float64 `yaml:"paddleHeight"` // Paddle length along the wall
	PaddleMargin float64 `yaml:"paddleMargin"` // Distance from paddle to its wall
	InputSpeed   float64 `yaml:"inputSpeed"`   // Vertical speed assigned on key-down
	AISpeed      float64 `yaml:"aiSpeed"`      // Vertical speed of the tracking paddle

	// Ball properties
	BallSize      float64 `yaml:"ballSize"`      // Ball is a square of this side
	BallVelocityX float64 `yaml:"ballVelocityX"` // Initial horizontal velocity
	BallVelocityY float64 `yaml:"ballVelocityY"` // Initial vertical velocity

	// Reset behavior
	ResetMode     BallResetMode `yaml:"resetMode"`
	ResetMinSpeed float64       `yaml:"resetMinSpeed"` // Only used by ResetRandom
	ResetMaxSpeed float64       `yaml:"resetMaxSpeed"` // Only used by ResetRandom

	// Seed for the world's random source. Zero means seed from the clock.
	Seed int64 `yaml:"seed"`

	// Host
	ListenAddr string `yaml:"listenAddr"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		TickPeriod: 16 * time.Millisecond,

		FieldWidth:  500,
		FieldHeight: 500,

		PaddleWidth:  10,
		PaddleHeight: 40,
		PaddleMargin: 20,
		InputSpeed:   2,
		AISpeed:      1.5,

		BallSize:      10,
		BallVelocityX: 2,
		BallVelocityY: 1.5,

		ResetMode:     ResetPreserve,
		ResetMinSpeed: 1.5,
		ResetMaxSpeed: 2.5,

		ListenAddr: ":3001",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the structural constraints the simulation assumes.
func (c Config) Validate() error {
	if c.FieldWidth <= 0 || c.FieldHeight <= 0 {
		return fmt.Errorf("field dimensions must be positive, got %gx%g", c.FieldWidth, c.FieldHeight)
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		return fmt.Errorf("paddle dimensions must be positive, got %gx%g", c.PaddleWidth, c.PaddleHeight)
	}
	if c.BallSize <= 0 {
		return fmt.Errorf("ball size must be positive, got %g", c.BallSize)
	}
	if c.BallVelocityX == 0 || c.BallVelocityY == 0 {
		return fmt.Errorf("initial ball velocity components must be nonzero, got (%g, %g)", c.BallVelocityX, c.BallVelocityY)
	}
	if c.TickPeriod <= 0 {
		return fmt.Errorf("tick period must be positive, got %v", c.TickPeriod)
	}
	switch c.ResetMode {
	case ResetPreserve, ResetRandom:
	default:
		return fmt.Errorf("unknown reset mode %q", c.ResetMode)
	}
	if c.ResetMode == ResetRandom && (c.ResetMinSpeed <= 0 || c.ResetMaxSpeed < c.ResetMinSpeed) {
		return fmt.Errorf("invalid reset speed range [%g, %g]", c.ResetMinSpeed, c.ResetMaxSpeed)
	}
	return nil
}

// TunnelingRisk reports whether a single step can move the ball further than
// the thinnest obstacle along its path, which would let it pass through a
// paddle or skip a wall check entirely. The host should warn and pick a
// smaller step or slower ball.
func (c Config) TunnelingRisk() bool {
	maxSpeed := math.Max(math.Abs(c.BallVelocityX), math.Abs(c.BallVelocityY))
	if c.ResetMode == ResetRandom {
		maxSpeed = math.Max(maxSpeed, c.ResetMaxSpeed)
	}
	return maxSpeed > math.Min(c.PaddleWidth, c.BallSize)
}
