package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/audio"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Arrows/WASD - Steer
  Enter       - Select / resume / back to menu
  Mouse       - Click buttons
  1/2/3       - Pick a level
  H           - Help
  P           - Pause / resume
  Esc         - Back (quits while playing)
  Ctrl+S      - Save a screenshot to ~/.gridsnake/screenshots
  Q/Ctrl+C    - Quit

The terminal must be at least 64x24.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("play needs an interactive terminal; use 'gridsnake simulate' for scripted runs")
	}

	cfg, logger, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	if w, h, sizeErr := term.GetSize(fd); sizeErr == nil && (w < snake.ViewCols || h < snake.ViewRows) {
		logger.Warn("terminal too small", "width", w, "height", h)
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, snake.ViewCols, snake.ViewRows)
	}

	// A missing track aborts before the session starts
	sink, err := audio.Open(cfg.Audio)
	if err != nil {
		logger.Error("audio unavailable", "track", cfg.Audio.Track, "error", err)
		return fmt.Errorf("%w (use --no-audio to play without music)", err)
	}
	defer sink.Close()
	if err := sink.Loop(); err != nil {
		return err
	}

	rc := runtimeConfig(cfg, playSeed())
	logger.Debug("session config", "seed", rc.Seed, "tick_rate", rc.TickRate, "food_attempts", rc.FoodMaxAttempts)
	sess := snake.NewSession(rc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, sess, logger); err != nil {
		logger.Error("terminal loop failed", "error", err)
		return err
	}

	snap := sess.Snapshot()
	logger.Info("session ended", "frames", snap.Frames, "phase", snap.Phase)
	return nil
}
