package sim

import "time"

// Clock converts wall-clock timestamps into bounded simulation steps.
// It shields the physics from frame-rate variance: the emitted dt is never
// negative, never zero, and never large enough to tunnel the actor through
// an obstacle after a stall or a backgrounded frame.
type Clock struct {
	minStep float64
	nominal float64
	maxStep float64
	last    time.Time
	armed   bool
}

// NewClock creates a clock with the given step bounds in seconds.
func NewClock(minStep, nominalStep, maxStep float64) *Clock {
	return &Clock{
		minStep: minStep,
		nominal: nominalStep,
		maxStep: maxStep,
	}
}

// Tick records the timestamp and returns the simulation step in seconds.
// The first tick after construction or after Rearm returns the nominal
// step so there is no discontinuity across a pause.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.armed {
		c.armed = true
		c.last = now
		return c.nominal
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now

	if dt < c.minStep {
		dt = c.minStep
	}
	if dt > c.maxStep {
		dt = c.maxStep
	}
	return dt
}

// Rearm makes the next Tick behave like a first tick.
// Called when the simulation resumes after a suspension so the frozen
// interval is not replayed as elapsed time.
func (c *Clock) Rearm() {
	c.armed = false
}
