package tui

import (
	"strings"
	"testing"

	"github.com/fledgegame/fledge/internal/config"
	"github.com/fledgegame/fledge/internal/sim"
)

func newTestWorld(t *testing.T) *sim.World {
	t.Helper()
	w, err := sim.New(config.Default(), 7)
	if err != nil {
		t.Fatalf("sim.New() failed: %v", err)
	}
	return w
}

func TestRendererDrawsGroundAndBird(t *testing.T) {
	world := newTestWorld(t)
	r := NewRenderer(world.Config())
	screen := NewScreen(80, 24)

	r.Draw(world.Snapshot(), 0, screen)

	// Ground line spans the full width at the ground row
	cfg := world.Config()
	groundRow := int(cfg.Playfield.GroundY / cfg.Playfield.Height * 24)
	if screen.Get(0, groundRow).Rune != groundChar {
		t.Errorf("Ground not drawn at row %d, got %q", groundRow, screen.Get(0, groundRow).Rune)
	}

	// Something besides the ground must be drawn (bird + HUD)
	content := strings.ReplaceAll(screen.String(), string(groundChar), " ")
	if strings.TrimSpace(content) == "" {
		t.Error("Render should draw the bird and HUD")
	}
}

func TestRendererDrawsObstacles(t *testing.T) {
	world := newTestWorld(t)
	r := NewRenderer(world.Config())
	screen := NewScreen(80, 24)

	// Drive the world until at least one obstacle is active
	world.Activate()
	for i := 0; i < 240 && len(world.Snapshot().Obstacles) == 0; i++ {
		world.Activate() // Keep flapping so the round survives
		world.Advance(1.0 / 60.0)
	}
	if len(world.Snapshot().Obstacles) == 0 {
		t.Fatal("No obstacle spawned within 4 simulated seconds")
	}

	// Let the obstacle scroll fully into view before drawing
	for i := 0; i < 30; i++ {
		world.Activate()
		world.Advance(1.0 / 60.0)
	}
	snap := world.Snapshot()

	r.Draw(snap, 0, screen)

	if !strings.ContainsRune(screen.String(), pipeChar) {
		t.Error("Active obstacle should render pipe cells")
	}
}

func TestRendererPhaseOverlays(t *testing.T) {
	world := newTestWorld(t)
	r := NewRenderer(world.Config())
	screen := NewScreen(80, 24)

	// Ready overlay
	r.Draw(world.Snapshot(), 0, screen)
	if !strings.Contains(screen.String(), "SPACE") {
		t.Error("Ready phase should show the start hint")
	}

	// Game over overlay
	world.Activate()
	for i := 0; i < 1200 && world.Phase() != sim.PhaseEnded; i++ {
		world.Advance(1.0 / 60.0) // No flaps: fall to the ground
	}
	if world.Phase() != sim.PhaseEnded {
		t.Fatal("World never ended")
	}

	r.Draw(world.Snapshot(), 0, screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("Ended phase should show the game over overlay")
	}
}

func TestRendererHUDShowsBest(t *testing.T) {
	world := newTestWorld(t)
	r := NewRenderer(world.Config())
	screen := NewScreen(80, 24)

	r.Draw(world.Snapshot(), 17, screen)
	if !strings.Contains(screen.String(), "Best: 17") {
		t.Error("HUD should show the stored best score")
	}
}
