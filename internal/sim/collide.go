package sim

import "github.com/fledgegame/fledge/internal/config"

// Outcome is the result of one collision evaluation.
type Outcome int

const (
	OutcomeNone   Outcome = iota // No collision, round continues
	OutcomePipe                  // Actor struck a pipe segment
	OutcomeGround                // Actor reached the ground plane
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomePipe:
		return "Pipe"
	case OutcomeGround:
		return "Ground"
	default:
		return "Unknown"
	}
}

// Evaluate applies the collision and scoring rule for one tick.
//
// Checks run in a fixed order: ground first, then pipe segments, so a
// simultaneous ground+pipe overlap always reports Ground. When nothing
// collides, obstacles whose trailing edge has passed the actor's leading
// edge are marked scored (exactly once per obstacle) and counted.
//
// Returns the outcome and the number of obstacles passed this tick.
// Score advances as a side effect of passage, never of survival.
func Evaluate(a *Actor, p *Pool, cfg config.Config) (Outcome, int) {
	// Ground contact is terminal and takes precedence over pipes.
	if a.VisualBounds().Bottom() >= cfg.Playfield.GroundY {
		return OutcomeGround, 0
	}

	box := a.Bounds()
	slots := p.Slots()

	for i := range slots {
		if !slots[i].Active {
			continue
		}
		if box.Intersects(slots[i].TopRect(cfg)) || box.Intersects(slots[i].BottomRect(cfg)) {
			return OutcomePipe, 0
		}
	}

	// No collision: score passage. The Scored flag makes this idempotent;
	// evaluating the same unchanged state twice cannot double-count.
	leading := cfg.Actor.X + cfg.Actor.Width
	passed := 0
	for i := range slots {
		if !slots[i].Active || slots[i].Scored {
			continue
		}
		if slots[i].X+cfg.Obstacles.PipeWidth < leading {
			slots[i].Scored = true
			passed++
		}
	}

	return OutcomeNone, passed
}
