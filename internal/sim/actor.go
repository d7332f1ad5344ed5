package sim

import (
	"math"

	"github.com/fledgegame/fledge/internal/config"
)

// Orientation smoothing constants. The angle is cosmetic only: renderers may
// use it to tilt the bird, but it never participates in collision geometry.
const (
	angleUp     = -0.45 // Radians while climbing
	angleDown   = 1.25  // Radians at terminal velocity
	angleFollow = 9.0   // Smoothing rate toward the target angle (1/s)
	hoverFreq   = 2.2   // Idle bobbing frequency in Ready (rad/s)
	hoverAmp    = 6.0   // Idle bobbing amplitude (px)
)

// Actor is the falling/flying body. Y is the vertical center of the visual
// box; X is fixed for the whole run (the world scrolls, not the bird).
type Actor struct {
	Y     float64 // Vertical center
	Vel   float64 // Signed vertical velocity, clamped to max fall speed
	Angle float64 // Cosmetic tilt, smoothed toward a velocity-derived target

	startY float64
	cfg    config.Config
}

// NewActor returns an actor at the idle start position.
func NewActor(cfg config.Config) Actor {
	a := Actor{cfg: cfg}
	a.Reset()
	return a
}

// Reset returns the actor to its initial position and velocity.
func (a *Actor) Reset() {
	a.startY = a.cfg.Playfield.GroundY * 0.45
	a.Y = a.startY
	a.Vel = 0
	a.Angle = 0
}

// ApplyImpulse sets the velocity to the configured upward impulse,
// unconditionally overriding the current trajectory. A flap always wins.
func (a *Actor) ApplyImpulse() {
	a.Vel = a.cfg.Physics.ImpulseVelocity
}

// Integrate advances the actor by dt seconds and returns true on ground
// contact. The ceiling clamps position and kills upward velocity but never
// ends the round; the ground is terminal and is handled by the caller.
func (a *Actor) Integrate(dt float64) bool {
	a.Vel += a.cfg.Physics.Gravity * dt
	if a.Vel > a.cfg.Physics.MaxFallSpeed {
		a.Vel = a.cfg.Physics.MaxFallSpeed
	}
	a.Y += a.Vel * dt
	a.updateAngle(dt)

	halfH := a.cfg.Actor.Height / 2

	// Ceiling: clamp and zero any velocity still pushing out.
	if a.Y-halfH < 0 {
		a.Y = halfH
		if a.Vel < 0 {
			a.Vel = 0
		}
	}

	// Ground: clamp and report contact.
	if a.Y+halfH >= a.cfg.Playfield.GroundY {
		a.Y = a.cfg.Playfield.GroundY - halfH
		return true
	}
	return false
}

// Hover applies the decorative idle bobbing used in the Ready phase.
// The actor is not physics-integrated here; t is the accumulated idle time.
func (a *Actor) Hover(t float64) {
	a.Y = a.startY + math.Sin(t*hoverFreq)*hoverAmp
	a.Vel = 0
	a.Angle = 0
}

// updateAngle eases the cosmetic tilt toward a target derived from the
// velocity sign: nose up while climbing, nose down while diving.
func (a *Actor) updateAngle(dt float64) {
	var target float64
	if a.Vel < 0 {
		target = angleUp
	} else {
		target = angleDown * math.Min(1, a.Vel/a.cfg.Physics.MaxFallSpeed)
	}
	blend := math.Min(1, angleFollow*dt)
	a.Angle += (target - a.Angle) * blend
}

// VisualBounds returns the actor's full visual box.
func (a *Actor) VisualBounds() Rect {
	return NewRect(a.cfg.Actor.X, a.Y-a.cfg.Actor.Height/2, a.cfg.Actor.Width, a.cfg.Actor.Height)
}

// Bounds returns the collision box: the visual box shrunk inward by the
// fairness margin so near-misses feel forgiving.
func (a *Actor) Bounds() Rect {
	return a.VisualBounds().Shrink(a.cfg.Actor.HitboxMargin)
}
