package config

import (
	_ "embed"
)

//go:embed defaults/gridsnake.yaml
var defaultYAML []byte

// DefaultTrack is the background music file looked up when none is configured.
const DefaultTrack = "snake_music.mp3"

// DefaultLogFile is the log destination when none is configured.
const DefaultLogFile = "~/.gridsnake/gridsnake.log"

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Audio: AudioConfig{
			Enabled: true,
			Track:   DefaultTrack,
		},
		Log: LogConfig{
			Level: "info",
			File:  DefaultLogFile,
		},
		Food: FoodConfig{
			MaxAttempts: 1024,
		},
	}
}
