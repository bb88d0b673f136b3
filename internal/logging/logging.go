// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
)

// Stderr is the log.file value that sends output to standard error.
const Stderr = "-"

// Prefix is prepended to every log line.
const Prefix = "gridsnake"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger writing to cfg.File at cfg.Level. The returned closer
// releases the log file and must be called on shutdown.
func New(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	w, closer, err := open(cfg.File)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

func open(file string) (io.Writer, io.Closer, error) {
	if file == "" || file == Stderr {
		return os.Stderr, nopCloser{}, nil
	}

	path, err := config.ExpandHome(file)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return f, f, nil
}
