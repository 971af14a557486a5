package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// controlHold is how long a single key event keeps the control pressed.
// Terminals report presses, not releases; holding a key produces a stream
// of repeats that this window bridges into a continuous hold.
const controlHold = 150 * time.Millisecond

// holdTicks converts controlHold to whole ticks at the given runtime rate.
func holdTicks(cfg core.RuntimeConfig) int {
	return core.Max(1, int(math.Ceil(controlHold.Seconds()/cfg.TickSeconds())))
}

// Model is the Bubble Tea model for one play session. Bubble Tea is the
// scheduler: every TickMsg advances the session by one fixed step.
type Model struct {
	loopID     int64
	session    *flappy.Session
	course     string
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	hold       int // Ticks left before the control is released
	last       flappy.Snapshot
	paused     bool
	quitting   bool
	backToMenu bool
	canGoBack  bool // Set when hosted by the course menu
}

// NewModel creates a play model over an existing session. A nil logger
// discards output.
func NewModel(session *flappy.Session, course string, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		loopID:     nextLoopID(),
		session:    session,
		course:     course,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(0, cfg.ScreenH-1)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger.With("course", course),
		inputFrame: core.NewInputFrame(),
		last:       session.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started", "phase", m.last.Phase)
	return tickCmd(m.loopID, m.config.TickDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.loopID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. The control and restart are queued
// for the next tick; pause, screenshot and quit act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch m.keys.PlayAction(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionControl:
		m.hold = holdTicks(m.config)
	case core.ActionPause:
		m.paused = !m.paused
		m.logger.Debug("pause toggled", "paused", m.paused, "tick", m.last.Tick)
	case core.ActionRestart:
		if m.last.Phase == flappy.PhaseTerminal {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionBack:
		if m.canGoBack && (m.paused || m.last.Phase == flappy.PhaseTerminal) {
			m.backToMenu = true
		}
	}

	return m, nil
}

// handleResize keeps one row free for the help line. The session is not
// touched: the scene is scaled into whatever size the terminal has.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(0, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the session by one fixed step unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.loopID, m.config.TickDuration())
	if m.backToMenu || m.quitting {
		return m, nil
	}
	if m.paused {
		return m, next
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.session.Reset()
		m.last = m.session.Snapshot()
		m.hold = 0
		m.inputFrame.Clear()
		m.logger.Debug("session restarted")
		return m, next
	}

	control := m.hold > 0
	if m.hold > 0 {
		m.hold--
	}

	snap := m.session.Tick(m.config.TickSeconds(), control)
	if snap.Phase != m.last.Phase {
		m.logger.Debug("phase changed",
			"from", m.last.Phase,
			"to", snap.Phase,
			"tick", snap.Tick,
			"bumped", snap.Bumped,
			"landed", snap.Landed,
		)
	}
	m.last = snap
	m.inputFrame.Clear()

	return m, next
}

// saveScreenshot writes the current frame as plain text to
// ~/.flappy/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	drawScene(m.screen, m.session, m.last, m.course, m.paused)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.course, timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the scene above the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawScene(m.screen, m.session, m.last, m.course, m.paused)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

// Snapshot returns the most recent snapshot.
func (m Model) Snapshot() flappy.Snapshot {
	return m.last
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the course menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for the session and blocks until it exits.
func Run(session *flappy.Session, course string, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, course, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
