package sim

import (
	"math/rand"

	"github.com/fledgegame/fledge/internal/config"
)

// Obstacle is one slot in the pool: a paired top/bottom pipe with a gap.
// A slot is either inactive (free for reuse) or active with a position.
// An obstacle never changes identity mid-life; its slot is reused only
// after deactivation.
type Obstacle struct {
	Active    bool
	X         float64 // Left edge, decreasing over time
	GapCenter float64 // Vertical midpoint of the passable opening
	Scored    bool    // Set once the actor has passed, gates double counting
}

// TopRect returns the collision rectangle of the pipe segment above the gap.
func (o Obstacle) TopRect(cfg config.Config) Rect {
	gapTop := o.GapCenter - cfg.Obstacles.GapHeight/2
	return NewRect(o.X, 0, cfg.Obstacles.PipeWidth, gapTop)
}

// BottomRect returns the collision rectangle of the pipe segment below the
// gap, extending to the ground.
func (o Obstacle) BottomRect(cfg config.Config) Rect {
	gapBottom := o.GapCenter + cfg.Obstacles.GapHeight/2
	return NewRect(o.X, gapBottom, cfg.Obstacles.PipeWidth, cfg.Playfield.GroundY-gapBottom)
}

// Pool is a fixed-capacity collection of obstacle slots. It owns spawn
// placement and recycling; it never allocates after construction, so the
// per-tick cost is O(pool size) regardless of run length.
type Pool struct {
	slots      []Obstacle
	spawnTimer float64
	rng        *rand.Rand
	cfg        config.Config
}

// NewPool creates a pool with cfg.Obstacles.PoolSize inactive slots.
// The random source is injected so spawn placement is reproducible under a
// seeded generator.
func NewPool(cfg config.Config, rng *rand.Rand) *Pool {
	return &Pool{
		slots: make([]Obstacle, cfg.Obstacles.PoolSize),
		rng:   rng,
		cfg:   cfg,
	}
}

// Reset deactivates every slot and clears the spawn accumulator.
func (p *Pool) Reset() {
	for i := range p.slots {
		p.slots[i] = Obstacle{}
	}
	p.spawnTimer = 0
}

// Tick runs one simulation step of the obstacle lifecycle: advance active
// slots, accumulate the spawn timer, and reclaim slots that scrolled out.
func (p *Pool) Tick(dt float64) {
	p.Advance(dt)

	// The accumulator is decremented by the interval rather than reset so
	// cadence stays accurate under variable frame timing.
	p.spawnTimer += dt
	for p.spawnTimer >= p.cfg.Obstacles.SpawnInterval {
		p.spawnTimer -= p.cfg.Obstacles.SpawnInterval
		p.TrySpawn()
	}

	p.Reclaim()
}

// Advance moves every active obstacle leftward by dt worth of scroll.
func (p *Pool) Advance(dt float64) {
	dx := p.cfg.Obstacles.ScrollSpeed * dt
	for i := range p.slots {
		if p.slots[i].Active {
			p.slots[i].X -= dx
		}
	}
}

// TrySpawn activates a free slot just beyond the right edge with a gap
// center chosen uniformly within the margin bounds. With no free slot it is
// a silent no-op; the pool never grows.
func (p *Pool) TrySpawn() bool {
	idx := -1
	for i := range p.slots {
		if !p.slots[i].Active {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	halfGap := p.cfg.Obstacles.GapHeight / 2
	lo := p.cfg.Obstacles.MarginTop + halfGap
	hi := p.cfg.Playfield.GroundY - p.cfg.Obstacles.MarginBottom - halfGap

	p.slots[idx] = Obstacle{
		Active:    true,
		X:         p.cfg.Playfield.Width,
		GapCenter: lo + p.rng.Float64()*(hi-lo),
	}
	return true
}

// Reclaim deactivates slots whose trailing edge has fully left the
// playfield, freeing them for reuse. Idempotent: with nothing off-screen it
// changes no slot state.
func (p *Pool) Reclaim() {
	for i := range p.slots {
		if p.slots[i].Active && p.slots[i].X+p.cfg.Obstacles.PipeWidth < 0 {
			p.slots[i] = Obstacle{}
		}
	}
}

// ActiveCount returns the number of active slots.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Slots exposes the slot array for the collision rule and snapshots.
// Callers outside the simulation must treat it as read-only.
func (p *Pool) Slots() []Obstacle {
	return p.slots
}
