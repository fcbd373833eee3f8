// flappy is a terminal Flappy Bird: one bird, endless procedurally
// generated pipes, rendered with Unicode block characters.
//
// Usage:
//
//	flappy                   - Play
//	flappy version           - Print the version
//
// Flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for a reproducible pipe layout
//	--config <path>  - Path to custom tuning config YAML
//	--mute           - Disable sound
//
// The seed can also come from the FLAPPY_SEED environment variable; an
// explicit --seed wins over it.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/seed"
)

const version = "0.3.0"

var (
	flagFPS    int
	flagSeed   uint64
	flagConfig string
	flagMute   bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "flappy",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird in your terminal.

Controls:
  Space/Up/W - Flap
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a screenshot to ~/.flappy/screenshots

Tuning keys (shown in a HUD once used):
  a/z        - Gravity up/down
  s/x        - Flap impulse up/down
  d/c        - Scroll speed up/down

Examples:
  flappy
  flappy --seed 12345
  flappy --fps 30 --mute
  flappy --config ./my-flappy.yaml`,
	Run: runGame,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = FLAPPY_SEED env or time-based)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("flappy %s\n", version)
	},
}

func runGame(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "path", flagConfig, "error", err)
	}

	// Probe terminal size; Bubble Tea sends the real size on startup.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed.Resolve(flagSeed),
	}
	if rt.TickRate <= 0 {
		logger.Fatal("invalid tick rate", "fps", flagFPS)
	}

	audioCfg := cfg.Audio
	if flagMute {
		audioCfg.Enabled = false
	}
	sounds := audio.NewPlayer(audioCfg)
	if audioErr := sounds.Init(); audioErr != nil {
		// The game is playable without a sound device.
		logger.Warn("audio disabled", "error", audioErr)
	}
	defer sounds.Close()

	game := flappy.New(cfg)
	if err := tui.Run(game, sounds, rt); err != nil {
		logger.Fatal("game crashed", "error", err)
	}
}
