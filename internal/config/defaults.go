package config

import (
	_ "embed"
)

//go:embed defaults/fledge.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// Tuned for a 480x640 world at 60 ticks per second.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:         1800,
			ImpulseVelocity: -420,
			MaxFallSpeed:    650,
		},
		Obstacles: Obstacles{
			GapHeight:     160,
			PipeWidth:     70,
			ScrollSpeed:   170,
			SpawnInterval: 1.6,
			PoolSize:      4,
			MarginTop:     100,
			MarginBottom:  80,
		},
		Actor: Actor{
			X:            120,
			Width:        34,
			Height:       24,
			HitboxMargin: 2,
		},
		Playfield: Playfield{
			Width:   480,
			Height:  640,
			GroundY: 600,
		},
		Timing: Timing{
			MinStep:      0.001,
			NominalStep:  1.0 / 60.0,
			MaxStep:      0.05,
			RestartDwell: 0.5,
		},
	}
}
