package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Pause      key.Binding
	Help       key.Binding
	Level1     key.Binding
	Level2     key.Binding
	Level3     key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "help"),
		),
		Level1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "level 1"),
		),
		Level2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "level 2"),
		),
		Level3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "level 3"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Resolve translates a key message to a semantic key.
// Returns KeyNone for unbound keys.
func (k KeyMap) Resolve(msg tea.KeyMsg) core.Key {
	bindings := []struct {
		b   key.Binding
		key core.Key
	}{
		{k.Up, core.KeyUp},
		{k.Down, core.KeyDown},
		{k.Left, core.KeyLeft},
		{k.Right, core.KeyRight},
		{k.Confirm, core.KeyConfirm},
		{k.Cancel, core.KeyCancel},
		{k.Pause, core.KeyPause},
		{k.Help, core.KeyHelp},
		{k.Level1, core.KeyLevel1},
		{k.Level2, core.KeyLevel2},
		{k.Level3, core.KeyLevel3},
	}
	for _, e := range bindings {
		if key.Matches(msg, e.b) {
			return e.key
		}
	}
	return core.KeyNone
}

// HelpFor returns the bindings worth showing on the given screen.
func (k KeyMap) HelpFor(p snake.Phase) []key.Binding {
	switch p {
	case snake.PhaseMenu:
		return []key.Binding{k.Confirm, k.Help, k.Quit}
	case snake.PhaseLevelSelect:
		return []key.Binding{k.Level1, k.Level2, k.Level3, k.Cancel, k.Quit}
	case snake.PhaseHelp:
		return []key.Binding{k.Confirm, k.Quit}
	case snake.PhasePlaying:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Quit}
	case snake.PhasePaused:
		return []key.Binding{k.Pause, k.Quit}
	case snake.PhaseGameOver:
		return []key.Binding{k.Confirm, k.Quit}
	default:
		return []key.Binding{k.Quit}
	}
}
