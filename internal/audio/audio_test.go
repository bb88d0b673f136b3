package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/config"
)

func TestOpenMissingTrack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake_music.mp3")

	_, err := Open(config.AudioConfig{Enabled: true, Track: path})
	if !errors.Is(err, ErrTrackMissing) {
		t.Errorf("err = %v, expected ErrTrackMissing", err)
	}
}

func TestOpenUnplayableTrack(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.mp3")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{dir, empty} {
		if _, err := Open(config.AudioConfig{Enabled: true, Track: path}); !errors.Is(err, ErrTrackMissing) {
			t.Errorf("Open(%q) err = %v, expected ErrTrackMissing", path, err)
		}
	}
}

func TestOpenDisabled(t *testing.T) {
	sink, err := Open(config.AudioConfig{Enabled: false, Track: "/does/not/exist.mp3"})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, ok := sink.(Nop); !ok {
		t.Errorf("sink = %T, expected Nop", sink)
	}
	if err := sink.Loop(); err != nil {
		t.Errorf("Loop() failed: %v", err)
	}
}

func TestTrackSinkLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake_music.mp3")
	if err := os.WriteFile(path, []byte("ID3\x03\x00"), 0o644); err != nil {
		t.Fatal(err)
	}

	sink, err := Open(config.AudioConfig{Enabled: true, Track: path})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	track := sink.(*TrackSink)
	if track.Size() != 5 || track.Path() != path {
		t.Errorf("track path=%q size=%d", track.Path(), track.Size())
	}
	if track.Looping() {
		t.Error("track should not loop before Loop()")
	}

	if err := sink.Loop(); err != nil {
		t.Fatalf("Loop() failed: %v", err)
	}
	if err := sink.Loop(); err != nil {
		t.Fatalf("second Loop() failed: %v", err)
	}
	if !track.Looping() {
		t.Error("track should loop")
	}

	if err := sink.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
	if track.Looping() {
		t.Error("closed track should not loop")
	}
	if err := sink.Loop(); !errors.Is(err, ErrClosed) {
		t.Errorf("Loop() after Close err = %v, expected ErrClosed", err)
	}
}
