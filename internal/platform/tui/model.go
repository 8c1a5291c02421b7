package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Options tunes the terminal shell.
type Options struct {
	// Terminals report no key releases, only auto-repeated presses. A held
	// direction is released when no press arrives within HoldInitial after the
	// first press, or within HoldRepeat once the key is repeating.
	HoldInitial time.Duration
	HoldRepeat  time.Duration

	Logger *log.Logger
}

// DefaultOptions returns hold timeouts that suit common key repeat settings.
func DefaultOptions() Options {
	return Options{
		HoldInitial: 400 * time.Millisecond,
		HoldRepeat:  100 * time.Millisecond,
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	log      *log.Logger
	opts     Options
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	board    Scoreboard
	state    core.GameState
	held     map[string]uint64 // Direction key -> sequence of its latest press
	seq      uint64
	ticks    uint64
	best     int // Session high score
	width    int
	height   int
	saved    bool // Whether the finished run has been stored
	scores   bool // Whether the scoreboard replaces the board
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game and starts a session.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.HoldInitial <= 0 || opts.HoldRepeat <= 0 {
		def := DefaultOptions()
		opts.HoldInitial, opts.HoldRepeat = def.HoldInitial, def.HoldRepeat
	}

	m := Model{
		game:   game,
		store:  store,
		log:    opts.Logger,
		opts:   opts,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   make(map[string]uint64),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.screen = core.NewScreen(m.boardSize())
	m.board = NewScoreboard(store, game.ID(), game.Title(), cfg.ScreenW, cfg.ScreenH)
	m.help.Width = cfg.ScreenW
	m.newSession()

	return m
}

// boardSize returns the screen area left for the game; the last row holds help.
func (m Model) boardSize() (int, int) {
	return m.width, max(m.height-1, 0)
}

// newSession resets the game and all per-run shell state.
func (m *Model) newSession() {
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.ticks = 0
	m.saved = false
	m.scores = false
	clear(m.held)
	m.keys.setGameOver(false)
	m.keys.setScoresShown(false)

	m.log.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "lives", m.state.Lives)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case releaseMsg:
		if seq, ok := m.held[msg.key]; ok && seq == msg.seq {
			m.release(msg.key)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Shot):
		if err := m.saveScreenshot(); err != nil {
			m.log.Error("screenshot failed", "err", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.config.Seed = time.Now().UnixNano()
		m.newSession()
		return m, nil

	case key.Matches(msg, m.keys.Scores):
		m.scores = !m.scores
		m.keys.setScoresShown(m.scores)
		if m.scores {
			if err := m.board.Reload(); err != nil {
				m.log.Error("cannot load scores", "err", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.clearScores()
		return m, nil

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg)
		return m, cmd
	}

	if dir, ok := m.keys.direction(msg); ok {
		return m, m.press(dir)
	}

	return m, nil
}

// press marks a direction as held and schedules its release.
// Pressing one direction releases the other.
func (m *Model) press(dir string) tea.Cmd {
	if other := opposite(dir); m.isHeld(other) {
		m.release(other)
	}

	timeout := m.opts.HoldRepeat
	if !m.isHeld(dir) {
		timeout = m.opts.HoldInitial
		m.dispatch(core.KeyDown(dir))
	}

	m.seq++
	m.held[dir] = m.seq
	return releaseCmd(dir, m.seq, timeout)
}

// release ends a held direction.
func (m *Model) release(dir string) {
	delete(m.held, dir)
	m.dispatch(core.KeyUp(dir))
}

func (m Model) isHeld(dir string) bool {
	_, ok := m.held[dir]
	return ok
}

// handleMouse moves the paddle under the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state.GameOver {
		return m, nil
	}
	w, h := m.boardSize()
	if x, ok := m.game.PointerX(msg.X, w, h); ok {
		m.dispatch(core.PointerMove(x))
	}
	return m, nil
}

// handleResize processes window resize events.
// Game geometry is independent of the terminal, so the session continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(m.boardSize())
	m.board.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.state.GameOver {
		m.ticks++
		m.dispatch(core.Tick())
	}
	return m, tickCmd(m.config.TickRate)
}

// dispatch forwards one event to the game and reacts to the outcome.
func (m *Model) dispatch(ev core.Event) {
	prev := m.state
	m.state = m.game.Dispatch(ev).State

	if m.state.Lives < prev.Lives {
		m.log.Info("life lost", "lives", m.state.Lives, "score", m.state.Score)
	}
	if m.state.GameOver && !prev.GameOver {
		m.finish()
	}
}

// finish records a finished run once.
func (m *Model) finish() {
	clear(m.held)
	m.keys.setGameOver(true)

	result := "lost"
	if m.state.Won {
		result = "won"
	}
	m.log.Info("game over", "result", result, "score", m.state.Score, "ticks", m.ticks)

	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	_, err := m.store.SaveRun(storage.Run{
		GameID: m.game.ID(),
		Score:  m.state.Score,
		Lives:  m.state.Lives,
		Won:    m.state.Won,
		Ticks:  m.ticks,
	})
	if err != nil {
		m.log.Error("cannot save run", "err", err)
		return
	}

	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.log.Error("cannot load high score", "err", err)
		return
	}
	if best > m.best {
		m.log.Info("new session best", "score", best)
	}
	m.best = best
	m.log.Info("run saved", "score", m.state.Score, "best", m.best)
}

// clearScores empties the session scoreboard.
func (m *Model) clearScores() {
	if m.store == nil {
		return
	}
	if err := m.store.Clear(m.game.ID()); err != nil {
		m.log.Error("cannot clear scores", "err", err)
		return
	}
	m.best = 0
	if err := m.board.Reload(); err != nil {
		m.log.Error("cannot load scores", "err", err)
	}
	m.log.Info("scores cleared", "game", m.game.ID())
}

// saveScreenshot writes the current board as plain text.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return err
	}

	m.log.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.scores {
		body = m.board.View()
	} else {
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	footer := m.help.View(m.keys)
	if m.best > 0 {
		footer += fmt.Sprintf(" • best: %d", m.best)
	}
	return body + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program for one game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
