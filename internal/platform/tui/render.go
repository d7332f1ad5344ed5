package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/fledgegame/fledge/internal/config"
	"github.com/fledgegame/fledge/internal/sim"
)

// Visual characters
const (
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
	birdBody      = '●'
)

// colorStyles maps Color to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault:      lipgloss.NewStyle(),
	ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// Renderer projects world coordinates onto the character grid. It consumes
// read-only snapshots; all decision logic stays in the simulation.
type Renderer struct {
	cfg config.Config
}

// NewRenderer creates a renderer for the given simulation config.
func NewRenderer(cfg config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// cellX maps a world x-coordinate to a screen column.
func (r *Renderer) cellX(dst *Screen, wx float64) int {
	return int(wx / r.cfg.Playfield.Width * float64(dst.Width()))
}

// cellY maps a world y-coordinate to a screen row.
func (r *Renderer) cellY(dst *Screen, wy float64) int {
	return int(wy / r.cfg.Playfield.Height * float64(dst.Height()))
}

// Draw paints one snapshot into the screen buffer. best is the stored high
// score shown in the HUD (0 when storage is unavailable).
func (r *Renderer) Draw(snap sim.Snapshot, best int, dst *Screen) {
	dst.Clear()

	groundRow := r.cellY(dst, r.cfg.Playfield.GroundY)
	if groundRow >= dst.Height() {
		groundRow = dst.Height() - 1
	}

	for _, o := range snap.Obstacles {
		r.drawObstacle(dst, o, groundRow)
	}

	dst.DrawHLine(0, groundRow, dst.Width(), groundChar, ColorYellow)

	r.drawBird(dst, snap)
	r.drawHUD(dst, snap, best)
}

// drawObstacle renders one pipe pair with its gap.
func (r *Renderer) drawObstacle(dst *Screen, o sim.ObstacleView, groundRow int) {
	x0 := r.cellX(dst, o.X)
	x1 := r.cellX(dst, o.X+r.cfg.Obstacles.PipeWidth)
	if x1 <= x0 {
		x1 = x0 + 1
	}

	gapTopRow := r.cellY(dst, o.GapCenter-r.cfg.Obstacles.GapHeight/2)
	gapBottomRow := r.cellY(dst, o.GapCenter+r.cfg.Obstacles.GapHeight/2)

	for x := x0; x < x1; x++ {
		for y := 0; y < gapTopRow-1; y++ {
			dst.Set(x, y, pipeChar, ColorGreen)
		}
		if gapTopRow > 0 {
			dst.Set(x, gapTopRow-1, pipeCapTop, ColorBrightGreen)
		}
		if gapBottomRow < groundRow {
			dst.Set(x, gapBottomRow, pipeCapBottom, ColorBrightGreen)
		}
		for y := gapBottomRow + 1; y < groundRow; y++ {
			dst.Set(x, y, pipeChar, ColorGreen)
		}
	}
}

// drawBird renders the actor with a beak glyph derived from its cosmetic
// orientation.
func (r *Renderer) drawBird(dst *Screen, snap sim.Snapshot) {
	x0 := r.cellX(dst, r.cfg.Actor.X)
	x1 := r.cellX(dst, r.cfg.Actor.X+r.cfg.Actor.Width)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	row := r.cellY(dst, snap.ActorY)

	beak := '▶'
	switch {
	case snap.ActorAngle < -0.15:
		beak = '◥'
	case snap.ActorAngle > 0.6:
		beak = '◢'
	}

	for x := x0; x < x1-1; x++ {
		dst.Set(x, row, birdBody, ColorBrightYellow)
	}
	dst.Set(x1-1, row, beak, ColorOrange)
}

// drawHUD renders the score line and the per-phase overlay messages.
func (r *Renderer) drawHUD(dst *Screen, snap sim.Snapshot, best int) {
	hud := fmt.Sprintf(" Score: %d ", snap.Score)
	if best > 0 {
		hud += fmt.Sprintf(" Best: %d ", best)
	}
	dst.DrawText(2, 0, hud, ColorBrightWhite)

	switch snap.Phase {
	case sim.PhaseReady:
		dst.DrawTextCentered(dst.Height()/3, "F L E D G E", ColorBrightYellow)
		dst.DrawTextCentered(dst.Height()/3+2, "Press SPACE to flap", ColorWhite)

	case sim.PhaseSuspended:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED", ColorBrightWhite)
		dst.DrawTextCentered(dst.Height()/2+1, "Press SPACE to resume", ColorGray)

	case sim.PhaseEnded:
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "GAME OVER", ColorRed)
		dst.DrawTextCentered(mid, fmt.Sprintf("Score: %d", snap.Score), ColorBrightWhite)
		if snap.NewBest {
			dst.DrawTextCentered(mid+1, "NEW BEST!", ColorBrightYellow)
		}
		if snap.Dwell >= r.cfg.Timing.RestartDwell {
			dst.DrawTextCentered(mid+3, "Press SPACE to play again  |  Q to quit", ColorGray)
		}
	}
}
