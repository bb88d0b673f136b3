package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Model is the Bubble Tea model for running a session.
type Model struct {
	session    *snake.Session
	screen     *core.Screen
	viewport   snake.Viewport
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	logger     *log.Logger
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(sess *snake.Session, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		session:    sess,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
	m.resize(snake.ViewCols, snake.ViewRows+footerHeight)
	return m
}

// footerHeight is the number of rows reserved for the key help line.
const footerHeight = 1

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key for the next frame. Quit is handled immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Handle(core.QuitEvent())
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if k := m.keys.Resolve(msg); k != core.KeyNone {
		m.inputFrame.Push(core.KeyEvent(k))
	}
	return m, nil
}

// handleMouse converts a left click to surface units.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if x, y, ok := m.viewport.SurfacePoint(msg.X, msg.Y); ok {
		m.inputFrame.Push(core.ClickEvent(x, y))
	}
	return m, nil
}

// resize fits the board area to the terminal, leaving room for the footer
// when there is space for it.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	boardH := height
	if height > snake.ViewRows {
		boardH = height - footerHeight
	}
	if m.screen == nil {
		m.screen = core.NewScreen(width, boardH)
	} else {
		m.screen.Resize(width, boardH)
	}
	m.viewport = snake.Layout(width, boardH)
	m.help.Width = width
}

// handleTick runs one frame of the session.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	events := m.inputFrame.Drain()

	// The simulation waits while the board does not fit
	if m.viewport.TooSmall {
		return m, tickCmd(m.session.TickRate())
	}

	m.session.Frame(events)
	m.logTransitions()

	if !m.session.Running() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.session.TickRate())
}

// StageKey labels the chosen level in log lines. "level" is taken by the
// logger for severity.
const StageKey = "stage"

func (m Model) logTransitions() {
	for _, t := range m.session.Transitions() {
		m.logger.Debug("phase changed", "from", t.From, "to", t.To)
		switch {
		case t.To == snake.PhasePlaying && t.From == snake.PhaseLevelSelect:
			m.logger.Info("game started", StageKey, int(m.session.Level()))
		case t.To == snake.PhaseGameOver:
			m.logger.Info("game over",
				StageKey, int(m.session.Level()),
				"score", m.session.State().Score,
				"outcome", m.session.LastOutcome(),
			)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".gridsnake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("gridsnake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.height > snake.ViewRows && !m.viewport.TooSmall {
		view += "\n" + m.help.ShortHelpView(m.keys.HelpFor(m.session.Phase()))
	}
	return view
}

// Run starts the Bubble Tea program and blocks until the session stops or
// ctx is cancelled.
func Run(ctx context.Context, sess *snake.Session, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(sess, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
		return nil
	})

	return g.Wait()
}
