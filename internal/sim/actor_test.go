package sim

import (
	"testing"

	"github.com/fledgegame/fledge/internal/config"
)

const testDT = 1.0 / 60.0

func TestActorGravity(t *testing.T) {
	a := NewActor(config.Default())
	y0 := a.Y

	a.Integrate(testDT)

	if a.Vel <= 0 {
		t.Errorf("Velocity should be positive after gravity, got %f", a.Vel)
	}
	if a.Y <= y0 {
		t.Errorf("Gravity should pull actor down, Y went %f -> %f", y0, a.Y)
	}
}

func TestActorTerminalVelocity(t *testing.T) {
	cfg := config.Default()
	a := NewActor(cfg)
	a.Y = 100 // Away from the ground so nothing clamps position

	// Fall long enough to exceed max fall speed many times over
	for i := 0; i < 300; i++ {
		a.Y = 100
		a.Integrate(testDT)
		if a.Vel > cfg.Physics.MaxFallSpeed {
			t.Fatalf("Velocity %f exceeded max fall speed %f at tick %d",
				a.Vel, cfg.Physics.MaxFallSpeed, i)
		}
	}

	if a.Vel != cfg.Physics.MaxFallSpeed {
		t.Errorf("Velocity should settle at max fall speed %f, got %f",
			cfg.Physics.MaxFallSpeed, a.Vel)
	}
}

func TestActorImpulseOverridesVelocity(t *testing.T) {
	cfg := config.Default()
	a := NewActor(cfg)

	// A flap wins even at terminal velocity
	a.Vel = cfg.Physics.MaxFallSpeed
	a.ApplyImpulse()
	if a.Vel != cfg.Physics.ImpulseVelocity {
		t.Errorf("Impulse should set velocity to %f, got %f", cfg.Physics.ImpulseVelocity, a.Vel)
	}

	// And also while already climbing
	a.ApplyImpulse()
	if a.Vel != cfg.Physics.ImpulseVelocity {
		t.Errorf("Repeated impulse should reset velocity to %f, got %f", cfg.Physics.ImpulseVelocity, a.Vel)
	}
}

func TestActorCeilingClamp(t *testing.T) {
	cfg := config.Default()
	a := NewActor(cfg)
	a.Y = cfg.Actor.Height / 2
	a.Vel = -10000 // Hard upward

	grounded := a.Integrate(testDT)

	if grounded {
		t.Error("Ceiling contact must not report ground contact")
	}
	if a.Y < cfg.Actor.Height/2 {
		t.Errorf("Actor escaped the top boundary, Y=%f", a.Y)
	}
	if a.Vel < 0 {
		t.Errorf("Upward velocity should be zeroed at the ceiling, got %f", a.Vel)
	}
}

func TestActorGroundContact(t *testing.T) {
	cfg := config.Default()
	a := NewActor(cfg)
	a.Y = cfg.Playfield.GroundY - cfg.Actor.Height/2 - 1
	a.Vel = cfg.Physics.MaxFallSpeed

	grounded := a.Integrate(testDT)

	if !grounded {
		t.Error("Integrate should report ground contact")
	}
	want := cfg.Playfield.GroundY - cfg.Actor.Height/2
	if a.Y != want {
		t.Errorf("Actor should clamp to ground, Y=%f, want %f", a.Y, want)
	}
}

func TestActorAngleIsCosmetic(t *testing.T) {
	cfg := config.Default()
	a := NewActor(cfg)

	box := a.Bounds()
	a.Angle = 1.5
	if a.Bounds() != box {
		t.Error("Orientation must not influence the collision box")
	}
}

func TestActorBoundsFairnessMargin(t *testing.T) {
	cfg := config.Default()
	a := NewActor(cfg)

	visual := a.VisualBounds()
	hit := a.Bounds()

	m := cfg.Actor.HitboxMargin
	if hit.X != visual.X+m || hit.Y != visual.Y+m {
		t.Errorf("Hitbox should be inset by margin %f: visual %+v, hit %+v", m, visual, hit)
	}
	if hit.W != visual.W-2*m || hit.H != visual.H-2*m {
		t.Errorf("Hitbox should shrink by margin on all sides: visual %+v, hit %+v", visual, hit)
	}
}
