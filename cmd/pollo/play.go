package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pollo-run/internal/audio"
	"github.com/vovakirdan/pollo-run/internal/core"
	"github.com/vovakirdan/pollo-run/internal/games/pollo"
	"github.com/vovakirdan/pollo-run/internal/games/pollo/sim"
	"github.com/vovakirdan/pollo-run/internal/platform/tui"
	"github.com/vovakirdan/pollo-run/internal/registry"
)

const defaultLevel = "pollo"

var (
	flagFPS        int
	flagDifficulty string
	flagLevelsDir  string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level (default: pollo).

Controls:
  Left/A, Right/D  - Walk
  Space/Up/W       - Jump
  F/X              - Throw a bottle
  P/Esc            - Pause
  R                - Restart (after the run ended)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Softer hits, more starting bottles, slower enraged boss
  normal  - Config as loaded
  hard    - Harder hits, tougher boss, longer throw cooldown

Examples:
  pollo play
  pollo play pollo-boss --difficulty easy
  pollo play pollo --levels-dir ./levels --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", core.DefaultFrameRate, "Frames rendered per second (the simulation always runs at 60 Hz)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory searched for level files before the built-ins")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.4, "Sound volume (0..1)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultLevel
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown level %q, run 'pollo list' to see available levels", gameID)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
		Seed:      flagSeed,
	}

	pollo.SetDifficultyPreset(flagDifficulty)
	pollo.SetLevelDir(flagLevelsDir)

	notifiers := sim.Multi{sim.LogNotifier{Logger: logger}}
	if !flagMute {
		sound := audio.NewSoundManager(flagVolume)
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, playing silent", "err", err)
		} else {
			defer sound.Cleanup()
			notifiers = append(notifiers, sound)
		}
	}
	pollo.SetNotifier(notifiers)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Info("starting", "level", gameID, "fps", flagFPS, "difficulty", flagDifficulty)

	// Keep stderr logs off the alt screen
	if flagLogFile == "" {
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(os.Stderr)
	}
	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
