// gridsnake is a grid-based snake game for the terminal.
//
// Usage:
//
//	gridsnake                        - Play (same as "gridsnake play")
//	gridsnake play                   - Play in the terminal
//	gridsnake simulate <script.yaml> - Replay an input script without a terminal
//	gridsnake levels                 - List the levels
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.gridsnake/config.yaml, ./configs/gridsnake.yaml)
//	--seed <value>      - RNG seed for reproducible food placement
//	--log-level <level> - Override log.level from the config
//	--no-audio          - Do not load the background track
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagNoAudio  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Grid snake - a three-level snake game in your terminal",
	Long: `gridsnake is a classic snake game on a 32x24 grid with three levels:
walls only, a central obstacle bar, and two patrolling enemies.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Replay a YAML input script headless
  levels    - Show the levels and their hazards

Examples:
  gridsnake
  gridsnake play --seed 42 --no-audio
  gridsnake simulate ./run.yaml --render
  gridsnake levels`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (play picks one from the clock when 0)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudio, "no-audio", false, "Disable background music")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup loads the configuration, applies flag overrides and builds the
// logger. The closer must be called before exit.
func setup() (config.Config, *log.Logger, io.Closer, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger = logger.With("run", uuid.NewString())
	logger.Info("starting", "config", source, "audio", cfg.Audio.Enabled)
	return cfg, logger, closer, nil
}

// runtimeConfig builds the session configuration with the seed used as is.
func runtimeConfig(cfg config.Config, seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.FoodMaxAttempts = cfg.Food.MaxAttempts
	rc.Seed = seed
	return rc
}

// playSeed returns the --seed value, or one from the clock when it is zero.
func playSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
