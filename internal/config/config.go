// Package config provides YAML-based configuration loading and validation
// for the fledge simulation and platform.
package config

import "fmt"

// Config contains every tunable the simulation recognizes.
// All values are fixed at world construction; nothing is re-read at tick time.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Actor     Actor     `yaml:"actor"`
	Playfield Playfield `yaml:"playfield"`
	Timing    Timing    `yaml:"timing"`
}

// Physics defines the actor's motion parameters.
// Units are world pixels and seconds.
type Physics struct {
	Gravity         float64 `yaml:"gravity"`          // Downward acceleration (px/s^2)
	ImpulseVelocity float64 `yaml:"impulse_velocity"` // Velocity set by a flap (negative = up)
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`   // Terminal velocity (px/s)
}

// Obstacles defines pipe geometry, movement, and spawn cadence.
type Obstacles struct {
	GapHeight     float64 `yaml:"gap_height"`     // Vertical size of the passable opening
	PipeWidth     float64 `yaml:"pipe_width"`     // Horizontal size of a pipe
	ScrollSpeed   float64 `yaml:"scroll_speed"`   // Leftward speed (px/s)
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawn attempts
	PoolSize      int     `yaml:"pool_size"`      // Fixed obstacle slot count
	MarginTop     float64 `yaml:"margin_top"`     // Minimum clearance below the top boundary
	MarginBottom  float64 `yaml:"margin_bottom"`  // Minimum clearance above the ground
}

// Actor defines the player body's placement and hitbox.
type Actor struct {
	X            float64 `yaml:"x"`             // Fixed horizontal position (left edge)
	Width        float64 `yaml:"width"`         // Visual box width
	Height       float64 `yaml:"height"`        // Visual box height
	HitboxMargin float64 `yaml:"hitbox_margin"` // Inward shrink applied to the collision box
}

// Playfield defines the world coordinate space.
type Playfield struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Top of the ground plane
}

// Timing defines the clock bounds and phase timers.
type Timing struct {
	MinStep      float64 `yaml:"min_step"`      // Smallest dt the clock will emit (s)
	NominalStep  float64 `yaml:"nominal_step"`  // dt emitted on a first tick (s)
	MaxStep      float64 `yaml:"max_step"`      // Largest dt the clock will emit (s)
	RestartDwell float64 `yaml:"restart_dwell"` // Seconds input is ignored after game over
}

// Validate checks the configuration for values the simulation cannot run
// with. A bad config is a setup-time error, never a tick-time condition.
func (c Config) Validate() error {
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.ImpulseVelocity >= 0 {
		return fmt.Errorf("config: impulse_velocity must be negative (upward), got %g", c.Physics.ImpulseVelocity)
	}
	if c.Physics.MaxFallSpeed <= 0 {
		return fmt.Errorf("config: max_fall_speed must be positive, got %g", c.Physics.MaxFallSpeed)
	}
	if c.Obstacles.PoolSize < 1 {
		return fmt.Errorf("config: pool_size must be at least 1, got %d", c.Obstacles.PoolSize)
	}
	if c.Obstacles.ScrollSpeed <= 0 {
		return fmt.Errorf("config: scroll_speed must be positive, got %g", c.Obstacles.ScrollSpeed)
	}
	if c.Obstacles.SpawnInterval <= 0 {
		return fmt.Errorf("config: spawn_interval must be positive, got %g", c.Obstacles.SpawnInterval)
	}
	if c.Obstacles.PipeWidth <= 0 {
		return fmt.Errorf("config: pipe_width must be positive, got %g", c.Obstacles.PipeWidth)
	}
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("config: playfield must have positive dimensions, got %gx%g",
			c.Playfield.Width, c.Playfield.Height)
	}
	if c.Playfield.GroundY <= 0 || c.Playfield.GroundY > c.Playfield.Height {
		return fmt.Errorf("config: ground_y %g outside playfield height %g",
			c.Playfield.GroundY, c.Playfield.Height)
	}
	usable := c.Playfield.GroundY - c.Obstacles.MarginTop - c.Obstacles.MarginBottom
	if c.Obstacles.GapHeight <= 0 || c.Obstacles.GapHeight > usable {
		return fmt.Errorf("config: gap_height %g does not fit between margins (usable %g)",
			c.Obstacles.GapHeight, usable)
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		return fmt.Errorf("config: actor must have positive dimensions, got %gx%g",
			c.Actor.Width, c.Actor.Height)
	}
	if c.Actor.HitboxMargin < 0 || c.Actor.HitboxMargin*2 >= c.Actor.Width || c.Actor.HitboxMargin*2 >= c.Actor.Height {
		return fmt.Errorf("config: hitbox_margin %g would collapse the actor hitbox", c.Actor.HitboxMargin)
	}
	if c.Timing.MinStep <= 0 {
		return fmt.Errorf("config: min_step must be positive, got %g", c.Timing.MinStep)
	}
	if c.Timing.NominalStep < c.Timing.MinStep || c.Timing.MaxStep < c.Timing.NominalStep {
		return fmt.Errorf("config: clock steps must satisfy min <= nominal <= max, got %g/%g/%g",
			c.Timing.MinStep, c.Timing.NominalStep, c.Timing.MaxStep)
	}
	if c.Timing.RestartDwell < 0 {
		return fmt.Errorf("config: restart_dwell must not be negative, got %g", c.Timing.RestartDwell)
	}
	return nil
}
