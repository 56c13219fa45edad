package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-shooter/internal/core"
	"github.com/vovakirdan/balloon-shooter/internal/games/shooter"
)

// helpHeight is the number of terminal rows reserved below the playfield.
const helpHeight = 1

// Options configures the terminal frontend.
type Options struct {
	Width      int           // Initial terminal width in cells
	Height     int           // Initial terminal height in cells
	KeyRelease time.Duration // Time without a key repeat before a held arrow counts as released
	Logger     *log.Logger
}

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game   *shooter.Game
	screen *core.Screen
	queue  *core.EventQueue
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	interval   time.Duration // One simulation tick
	keyRelease time.Duration
	heldKey    core.Key  // Arrow currently treated as held
	lastRepeat time.Time // When heldKey was last seen
	now        func() time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *shooter.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Width, opts.Height-helpHeight),
		queue:      &core.EventQueue{},
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		interval:   tickInterval(game.Config().Runtime.TickRate),
		keyRelease: opts.KeyRelease,
		now:        time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-helpHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues game events for a key press. Terminals report no key
// releases, so a change of arrow releases the previous one first.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	gameKey, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.queue.Push(core.QuitEvent())
		return m, nil
	}

	switch gameKey {
	case core.KeyUp, core.KeyDown:
		if m.heldKey != gameKey {
			if m.heldKey != core.KeyNone {
				m.queue.Push(core.KeyUpEvent(m.heldKey))
			}
			m.queue.Push(core.KeyDownEvent(gameKey))
			m.heldKey = gameKey
		}
		m.lastRepeat = m.now()
	case core.KeyFire:
		m.queue.Push(core.KeyDownEvent(core.KeyFire))
	}
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.game.State().Quit {
		m.quitting = true
		m.logger.Info("quit", "missed_shots", m.game.State().MissedShots)
		return m, tea.Quit
	}

	// Synthesize the release of an arrow that stopped repeating
	if m.heldKey != core.KeyNone && now.Sub(m.lastRepeat) > m.keyRelease {
		m.queue.Push(core.KeyUpEvent(m.heldKey))
		m.heldKey = core.KeyNone
	}

	res := m.game.Step(m.queue.Drain())
	shooter.LogStep(m.logger, res)

	return m, tickCmd(m.interval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program for the given game and blocks until the
// player quits.
func Run(game *shooter.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
