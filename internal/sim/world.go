package sim

import (
	"math/rand"
	"time"

	"github.com/fledgegame/fledge/internal/config"
)

// Phase is the state machine variant governing per-tick behavior.
type Phase int

const (
	PhaseReady     Phase = iota // Hovering idle, waiting for the first flap
	PhaseActive                 // Full physics, obstacles, collision
	PhaseFalling                // Post-pipe-collision, uncontrollable descent
	PhaseEnded                  // Terminal until restart
	PhaseSuspended              // Paused, re-entrant to Active
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhaseActive:
		return "Active"
	case PhaseFalling:
		return "Falling"
	case PhaseEnded:
		return "Ended"
	case PhaseSuspended:
		return "Suspended"
	default:
		return "Unknown"
	}
}

// Reporter receives the final score of a round exactly once, at the edge
// leaving Active, and reports whether it is a new best. Purely advisory:
// the return value never affects simulation behavior beyond the snapshot's
// NewBest flag.
type Reporter func(score int) bool

// World owns the complete simulation state: clock, actor, obstacle pool,
// phase, and score. It is single-threaded; external collaborators read
// snapshots and must never mutate it.
type World struct {
	cfg   config.Config
	clock *Clock
	actor Actor
	pool  *Pool
	rng   *rand.Rand

	phase     Phase
	score     int
	newBest   bool
	finalized bool    // Score reported for the current round
	dwell     float64 // Seconds since the current phase began
	idleTime  float64 // Drives the Ready hover bobbing

	reporter Reporter
}

// Option customizes world construction.
type Option func(*World)

// WithReporter wires the score persistence collaborator.
func WithReporter(r Reporter) Option {
	return func(w *World) {
		w.reporter = r
	}
}

// New constructs a world in the Ready phase. A malformed configuration is
// rejected here; nothing is fallible at tick granularity.
func New(cfg config.Config, seed int64, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	w := &World{
		cfg:   cfg,
		clock: NewClock(cfg.Timing.MinStep, cfg.Timing.NominalStep, cfg.Timing.MaxStep),
		actor: NewActor(cfg),
		pool:  NewPool(cfg, rng),
		rng:   rng,
		phase: PhaseReady,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.Config {
	return w.cfg
}

// Phase returns the current phase.
func (w *World) Phase() Phase {
	return w.phase
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Tick advances the simulation using the wall clock.
func (w *World) Tick(now time.Time) {
	w.Advance(w.clock.Tick(now))
}

// Advance runs one simulation step of dt seconds. Exposed separately from
// Tick so tests can drive the world with fixed steps.
//
// Within one step the update order is fixed: physics, then obstacle
// spawn/advance/reclaim, then collision, so collision always sees obstacle
// positions already advanced for this step.
func (w *World) Advance(dt float64) {
	switch w.phase {
	case PhaseReady:
		w.dwell += dt
		w.idleTime += dt
		w.actor.Hover(w.idleTime)

	case PhaseActive:
		w.dwell += dt
		w.stepActive(dt)

	case PhaseFalling:
		w.dwell += dt
		w.stepFalling(dt)

	case PhaseEnded:
		// All motion frozen; only the restart debounce timer accrues.
		w.dwell += dt

	case PhaseSuspended:
		// Frozen completely: dwell and spawn accumulators hold their
		// values so resuming does not fast-forward through paused time.
	}
}

func (w *World) stepActive(dt float64) {
	w.actor.Integrate(dt)
	w.pool.Tick(dt)

	outcome, passed := Evaluate(&w.actor, w.pool, w.cfg)
	w.score += passed

	switch outcome {
	case OutcomePipe:
		w.finalize()
		w.setPhase(PhaseFalling)
	case OutcomeGround:
		// Ground contact is immediately terminal; Falling is skipped.
		w.finalize()
		w.setPhase(PhaseEnded)
	}
}

func (w *World) stepFalling(dt float64) {
	// Gravity only: impulses are ignored and obstacles stay frozen.
	if w.actor.Integrate(dt) {
		w.setPhase(PhaseEnded)
	}
}

// Activate is the single abstract input event. Its meaning depends on the
// phase: first flap, mid-air flap, restart, or resume. Input sources
// (pointer, key) are indistinguishable to the simulation.
func (w *World) Activate() {
	switch w.phase {
	case PhaseReady:
		w.setPhase(PhaseActive)
		w.actor.ApplyImpulse()

	case PhaseActive:
		w.actor.ApplyImpulse()

	case PhaseFalling:
		// Uncontrollable descent; flaps are ignored.

	case PhaseEnded:
		// Debounce against the very input that caused the death.
		if w.dwell >= w.cfg.Timing.RestartDwell {
			w.reset()
			w.setPhase(PhaseReady)
		}

	case PhaseSuspended:
		w.Resume()
	}
}

// Suspend freezes the simulation. Only Active can be suspended; in every
// other phase the signal is a no-op, so the host may deliver it blindly on
// focus loss.
func (w *World) Suspend() {
	if w.phase != PhaseActive {
		return
	}
	// Dwell is preserved across the suspension, not reset.
	w.phase = PhaseSuspended
}

// Resume returns a suspended world to Active. The clock is rearmed so the
// next tick is treated as a first tick and the frozen interval never reaches
// the physics.
func (w *World) Resume() {
	if w.phase != PhaseSuspended {
		return
	}
	w.phase = PhaseActive
	w.clock.Rearm()
}

// finalize reports the round's score exactly once, at the edge leaving
// Active. Falling->Ended must not re-report.
func (w *World) finalize() {
	if w.finalized {
		return
	}
	w.finalized = true
	if w.reporter != nil {
		w.newBest = w.reporter(w.score)
	}
}

// reset clears the round state for Ended -> Ready. The RNG stream continues
// across rounds; a given seed plus input sequence stays reproducible.
func (w *World) reset() {
	w.score = 0
	w.newBest = false
	w.finalized = false
	w.idleTime = 0
	w.actor.Reset()
	w.pool.Reset()
}

func (w *World) setPhase(p Phase) {
	w.phase = p
	w.dwell = 0
}
