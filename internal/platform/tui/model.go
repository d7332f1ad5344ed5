package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fledgegame/fledge/internal/sim"
	"github.com/fledgegame/fledge/internal/storage"
)

// Model is the Bubble Tea model that drives one game session. It owns the
// frame loop and input mapping; the simulation owns everything else. The
// model only ever reads snapshots and calls the world's public entry points
// (Tick, Activate, Suspend, Resume).
type Model struct {
	world    *sim.World
	screen   *Screen
	renderer *Renderer
	store    *storage.Store
	tickRate int
	best     int
	quitting bool
}

// NewModel creates a session model for the given world.
// store may be nil; the game runs without persistence.
func NewModel(world *sim.World, store *storage.Store, tickRate, width, height int) Model {
	best := 0
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			best = high
		}
	}

	return Model{
		world:    world,
		screen:   NewScreen(width, height),
		renderer: NewRenderer(world.Config()),
		store:    store,
		tickRate: tickRate,
		best:     best,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Any pointer press is the same abstract input as a key flap.
		if msg.Action == tea.MouseActionPress {
			m.world.Activate()
		}
		return m, nil

	case tea.BlurMsg:
		// Host lost focus: suspend. The world ignores this outside Active.
		m.world.Suspend()
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keys to the simulation's single abstract input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case " ", "up", "w", "enter":
		m.world.Activate()

	case "p", "esc":
		// Manual pause toggle rides the same suspend/resume edges as
		// focus loss.
		if m.world.Phase() == sim.PhaseSuspended {
			m.world.Resume()
		} else {
			m.world.Suspend()
		}
	}

	return m, nil
}

// handleTick advances the simulation one frame and keeps the best score
// display current after a finalized round.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.world.Tick(now)

	snap := m.world.Snapshot()
	if snap.NewBest && snap.Score > m.best {
		m.best = snap.Score
	}

	return m, tickCmd(m.tickRate)
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.world.Snapshot(), m.best, m.screen)
	return renderScreen(m.screen)
}

// renderScreen converts a Screen buffer to a styled string, grouping
// adjacent same-color cells to minimize ANSI escape sequences.
func renderScreen(s *Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.Get(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(world *sim.World, store *storage.Store, tickRate, width, height int) error {
	model := NewModel(world, store, tickRate, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Pointer taps count as flaps
		tea.WithReportFocus(),     // Focus loss suspends the simulation
	)

	_, err := p.Run()
	return err
}
