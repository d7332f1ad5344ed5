package sim

// ObstacleView is the read-only projection of one active obstacle.
type ObstacleView struct {
	X         float64
	GapCenter float64
}

// Snapshot captures everything external collaborators (renderer, HUD,
// persistence) may consume. It carries no renderer-specific fields and
// holds copies only: mutating a snapshot never touches the simulation.
type Snapshot struct {
	Phase      Phase
	Score      int
	NewBest    bool // Whether the finalized score beat the stored best
	ActorY     float64
	ActorVel   float64
	ActorAngle float64
	Obstacles  []ObstacleView // Active obstacles only
	Dwell      float64        // Seconds since the current phase began
}

// Snapshot returns the current read-only view of the world.
func (w *World) Snapshot() Snapshot {
	slots := w.pool.Slots()
	obstacles := make([]ObstacleView, 0, len(slots))
	for i := range slots {
		if slots[i].Active {
			obstacles = append(obstacles, ObstacleView{
				X:         slots[i].X,
				GapCenter: slots[i].GapCenter,
			})
		}
	}

	return Snapshot{
		Phase:      w.phase,
		Score:      w.score,
		NewBest:    w.newBest,
		ActorY:     w.actor.Y,
		ActorVel:   w.actor.Vel,
		ActorAngle: w.actor.Angle,
		Obstacles:  obstacles,
		Dwell:      w.dwell,
	}
}
