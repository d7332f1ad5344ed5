package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fledgegame/fledge/internal/config"
	"github.com/fledgegame/fledge/internal/platform/tui"
	"github.com/fledgegame/fledge/internal/sim"
	"github.com/fledgegame/fledge/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W - Flap (also starts and restarts a round)
  Click      - Flap
  P/Esc      - Pause / resume
  Q/Ctrl+C   - Quit

Examples:
  fledge play
  fledge play --seed 42
  fledge play --config ./my-fledge.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the renderer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Open score storage; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	var reporter sim.Reporter
	if store != nil {
		reporter = func(score int) bool {
			best, submitErr := store.Submit(score)
			if submitErr != nil {
				return false
			}
			return best
		}
	}

	world, err := sim.New(cfg, seed, sim.WithReporter(reporter))
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(world, store, flagFPS, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
