package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sources reported by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the configuration and reports where it came from.
// Search order: customPath -> ~/.gridsnake/config.yaml -> ./configs/gridsnake.yaml -> embedded default
//
// Files are decoded on top of Default, so a partial file only overrides the
// keys it sets.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "gridsnake.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultYAML); err == nil && cfg.Validate() == nil {
		return cfg, SourceEmbedded, nil
	}
	return Default(), SourceBuiltin, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridsnake", filename)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !hasHomePrefix(path) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)
}
