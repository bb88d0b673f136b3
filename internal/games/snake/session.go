package snake

import (
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Phase is the active top-level screen.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseLevelSelect
	PhaseHelp
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseLevelSelect:
		return "level_select"
	case PhaseHelp:
		return "help"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Pointer hit regions in surface units (inclusive bounds).
var (
	StartButton  = core.Span(210, 350, 460, 380)
	HelpButton   = core.Span(240, 400, 450, 430)
	PauseButton  = core.Span(550, 10, 620, 40)
	LevelButtons = [LevelCount]core.Rect{
		core.Span(130, 150, 300, 200),
		core.Span(130, 220, 300, 270),
		core.Span(130, 290, 300, 320),
	}
)

// Transition records a phase change.
type Transition struct {
	From, To Phase
}

// Session is the top-level state machine. It owns the active screen and the
// world of the current game.
type Session struct {
	cfg     core.RuntimeConfig
	rng     *rand.Rand
	phase   Phase
	level   Level
	world   *World
	running bool
	frames  uint64

	transitions []Transition
	lastOutcome Outcome
}

// NewSession creates a session showing the menu.
func NewSession(cfg core.RuntimeConfig) *Session {
	if cfg.FoodMaxAttempts <= 0 {
		cfg.FoodMaxAttempts = DefaultFoodAttempts
	}
	return &Session{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		phase:   PhaseMenu,
		running: true,
	}
}

// Frame handles every event observed this frame in order, then runs at most
// one simulation tick.
func (s *Session) Frame(events []core.Event) core.StepResult {
	s.frames++
	for _, ev := range events {
		if !s.running {
			break
		}
		s.Handle(ev)
	}
	return s.Tick()
}

// Handle applies a single input event. Inputs that do not apply to the
// current phase are ignored.
func (s *Session) Handle(ev core.Event) {
	if !s.running {
		return
	}
	if ev.Kind == core.EventQuit {
		s.running = false
		return
	}

	switch s.phase {
	case PhaseMenu:
		s.handleMenu(ev)
	case PhaseLevelSelect:
		s.handleLevelSelect(ev)
	case PhaseHelp:
		if isKey(ev, core.KeyConfirm) || isKey(ev, core.KeyCancel) {
			s.setPhase(PhaseMenu)
		}
	case PhasePlaying:
		s.handlePlaying(ev)
	case PhasePaused:
		if isKey(ev, core.KeyConfirm) || isKey(ev, core.KeyPause) {
			s.setPhase(PhasePlaying)
		}
	case PhaseGameOver:
		if isKey(ev, core.KeyConfirm) {
			s.returnToMenu()
		}
	}
}

func (s *Session) handleMenu(ev core.Event) {
	switch {
	case isClick(ev, StartButton), isKey(ev, core.KeyConfirm):
		s.setPhase(PhaseLevelSelect)
	case isClick(ev, HelpButton), isKey(ev, core.KeyHelp):
		s.setPhase(PhaseHelp)
	}
}

func (s *Session) handleLevelSelect(ev core.Event) {
	if isKey(ev, core.KeyCancel) {
		s.setPhase(PhaseMenu)
		return
	}
	for i, r := range LevelButtons {
		if isClick(ev, r) {
			s.start(Level(i + 1))
			return
		}
	}
	switch {
	case isKey(ev, core.KeyLevel1):
		s.start(Level1)
	case isKey(ev, core.KeyLevel2):
		s.start(Level2)
	case isKey(ev, core.KeyLevel3):
		s.start(Level3)
	}
}

func (s *Session) handlePlaying(ev core.Event) {
	if isClick(ev, PauseButton) {
		s.setPhase(PhasePaused)
		return
	}
	if ev.Kind != core.EventKey {
		return
	}
	switch ev.Key {
	case core.KeyUp:
		s.world.Turn(DirUp)
	case core.KeyDown:
		s.world.Turn(DirDown)
	case core.KeyLeft:
		s.world.Turn(DirLeft)
	case core.KeyRight:
		s.world.Turn(DirRight)
	case core.KeyPause:
		s.setPhase(PhasePaused)
	case core.KeyCancel:
		s.running = false
	}
}

// Tick steps the world when a game is being played.
func (s *Session) Tick() core.StepResult {
	if !s.running || s.phase != PhasePlaying {
		return core.StepResult{State: s.State()}
	}
	s.world.Step()
	s.lastOutcome = s.world.LastOutcome()
	if s.world.GameOver() {
		s.setPhase(PhaseGameOver)
	}
	return core.StepResult{State: s.State()}
}

// start builds a fresh world for the chosen level and begins play.
func (s *Session) start(level Level) {
	s.level = level
	s.world = NewWorld(level, s.rng, s.cfg.FoodMaxAttempts)
	s.lastOutcome = OutcomeMoved
	s.setPhase(PhasePlaying)
}

// returnToMenu drops the world and the level choice.
func (s *Session) returnToMenu() {
	s.world = nil
	s.level = LevelNone
	s.lastOutcome = OutcomeMoved
	s.setPhase(PhaseMenu)
}

func (s *Session) setPhase(p Phase) {
	if p == s.phase {
		return
	}
	s.transitions = append(s.transitions, Transition{From: s.phase, To: p})
	s.phase = p
}

// Transitions returns the phase changes since the previous call.
func (s *Session) Transitions() []Transition {
	out := s.transitions
	s.transitions = nil
	return out
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	st := core.GameState{Paused: s.phase == PhasePaused}
	if s.world != nil {
		st.Score = s.world.Score()
		st.GameOver = s.world.GameOver()
	}
	return st
}

// Phase returns the active screen.
func (s *Session) Phase() Phase { return s.phase }

// Level returns the chosen level, or LevelNone outside a game.
func (s *Session) Level() Level { return s.level }

// World returns the active world, or nil outside a game.
func (s *Session) World() *World { return s.world }

// Running reports whether the session still wants frames.
func (s *Session) Running() bool { return s.running }

// TickRate returns the simulation cadence in ticks per second.
func (s *Session) TickRate() int {
	if s.cfg.TickRate <= 0 {
		return core.DefaultTickRate
	}
	return s.cfg.TickRate
}

// LastOutcome returns the outcome of the most recent world tick.
func (s *Session) LastOutcome() Outcome { return s.lastOutcome }

func isKey(ev core.Event, k core.Key) bool {
	return ev.Kind == core.EventKey && ev.Key == k
}

func isClick(ev core.Event, r core.Rect) bool {
	return ev.Kind == core.EventClick && r.Contains(ev.X, ev.Y)
}
