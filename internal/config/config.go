// Package config provides YAML-based configuration loading for gridsnake.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("invalid config")

// Config contains all user-tunable settings. Board geometry and tick rate
// are fixed and not part of it.
type Config struct {
	Audio AudioConfig `yaml:"audio"`
	Log   LogConfig   `yaml:"log"`
	Food  FoodConfig  `yaml:"food"`
}

// AudioConfig defines the background music track.
type AudioConfig struct {
	Enabled bool   `yaml:"enabled"`
	Track   string `yaml:"track"` // Relative paths resolve against the working directory
}

// LogConfig defines where and how verbosely to log.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
	File  string `yaml:"file"`  // "-" means stderr
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Random samples before the fallback scan
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	if c.Food.MaxAttempts <= 0 {
		return fmt.Errorf("%w: food.max_attempts must be positive, got %d", ErrInvalid, c.Food.MaxAttempts)
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.Log.File == "" {
		return fmt.Errorf("%w: log.file is empty", ErrInvalid)
	}
	if c.Audio.Enabled && c.Audio.Track == "" {
		return fmt.Errorf("%w: audio.track is empty", ErrInvalid)
	}
	return nil
}
