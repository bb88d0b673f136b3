package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/headless"
)

var (
	flagRender   bool
	flagTrace    bool
	flagRealtime bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <script.yaml>",
	Short: "Replay an input script without a terminal",
	Long: `Run the game headless, feeding it the events listed in a YAML script,
and print the final state.

Script format:
  seed: 7              # optional, defaults to 0; --seed overrides it
  frames: 40           # optional, defaults to one past the last event
  events:
    - {frame: 0, key: confirm}
    - {frame: 1, click: {x: 200, y: 170}}
    - {frame: 4, key: left}
    - {frame: 39, quit: true}

Keys: up, down, left, right, confirm, cancel, pause, help, level1, level2, level3.
Clicks use board units (640x480).`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final screen")
	simulateCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print one state line per frame")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the game tick rate")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, logger, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	script, err := headless.LoadScript(args[0])
	if err != nil {
		return err
	}
	src, err := headless.NewScriptSource(script)
	if err != nil {
		return err
	}

	// A script without a seed replays with seed 0, never a clock seed
	seed := script.Seed
	if cmd.Flags().Changed("seed") {
		seed = flagSeed
	}
	rc := runtimeConfig(cfg, seed)
	sess := snake.NewSession(rc)

	out := cmd.OutOrStdout()
	rec := headless.NewScreenRecorder()
	presenters := headless.Multi{rec}
	if flagTrace {
		presenters = append(presenters, headless.NewTraceWriter(out))
	}

	var clock headless.Clock = headless.NewManualClock(time.Now())
	if flagRealtime {
		clock = headless.SystemClock{}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("simulation started", "script", args[0], "seed", rc.Seed, "frames", script.TotalFrames())
	if err := headless.Run(ctx, sess, src, presenters, clock); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	snap := sess.Snapshot()
	logger.Info("simulation finished", "frames", snap.Frames, "phase", snap.Phase, "score", snap.Score)

	if flagRender {
		fmt.Fprintln(out, rec.Screen().String())
	}
	fmt.Fprintln(out, headless.FormatSnapshot(snap))
	return nil
}
