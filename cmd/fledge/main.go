// fledge is a terminal side-scrolling reflex game: keep the bird airborne
// with discrete flaps and thread it through the pipe gaps.
//
// Usage:
//
//	fledge play              - Play the game
//	fledge scores            - Show high scores
//	fledge serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.fledge/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fledge",
	Short: "Fledge - a flappy terminal bird",
	Long: `Fledge is a terminal reflex game. A bird falls under gravity;
flap to stay airborne and pass through the gaps in the pipes.

Available commands:
  play     - Play the game
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  fledge play
  fledge play --seed 42
  fledge scores
  fledge serve --ssh :2222`,
	// Bare "fledge" starts a game.
	RunE: func(cmd *cobra.Command, args []string) error {
		runPlay(cmd, args)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fledge/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
