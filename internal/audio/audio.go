// Package audio owns the background music track. It does not decode or
// play sound. Open checks that the track exists and is a non-empty file,
// and the sink records whether looping was requested until it is closed.
package audio

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/vovakirdan/gridsnake/internal/config"
)

// ErrTrackMissing is returned when the configured track cannot be opened.
var ErrTrackMissing = errors.New("audio track missing")

// ErrClosed is returned by Loop after Close.
var ErrClosed = errors.New("audio sink closed")

// Sink plays a single background track on repeat.
type Sink interface {
	// Loop starts looping the track. Calling it again is a no-op.
	Loop() error
	Close() error
}

// Open validates the configured track and returns a sink for it. When audio
// is disabled a silent sink is returned.
func Open(cfg config.AudioConfig) (Sink, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}

	f, err := os.Open(cfg.Track)
	if err != nil {
		return nil, fmt.Errorf("audio: %w: %s: %v", ErrTrackMissing, cfg.Track, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: %w: %s: %v", ErrTrackMissing, cfg.Track, err)
	}
	if info.IsDir() || info.Size() == 0 {
		f.Close()
		return nil, fmt.Errorf("audio: %w: %s is not a playable file", ErrTrackMissing, cfg.Track)
	}

	return &TrackSink{file: f, size: info.Size()}, nil
}

// TrackSink holds an open track file.
type TrackSink struct {
	mu      sync.Mutex
	file    *os.File
	size    int64
	looping bool
	closed  bool
}

// Loop records that the track should loop. No sound is produced.
func (s *TrackSink) Loop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.looping = true
	return nil
}

// Looping reports whether Loop has been called and the sink is still open.
func (s *TrackSink) Looping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.looping && !s.closed
}

// Path returns the track file name.
func (s *TrackSink) Path() string { return s.file.Name() }

// Size returns the track size in bytes.
func (s *TrackSink) Size() int64 { return s.size }

// Close stops playback and releases the track. It is safe to call twice.
func (s *TrackSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.looping = false
	return s.file.Close()
}

// Nop is a silent sink.
type Nop struct{}

func (Nop) Loop() error  { return nil }
func (Nop) Close() error { return nil }
