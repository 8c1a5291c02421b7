package breakout

import (
	"math/rand"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game adapts the reducer to the platform. It holds the only mutable
// reference to the session State and replaces it on every event.
type Game struct {
	reducer *Reducer
	state   State
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	ticks   uint64
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// The CLI validates the config up front; a broken file here means it
	// changed underneath us, so play on defaults.
	cfg, err := config.LoadBreakoutPreset(configPath, difficultyPreset)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}

	g.start(cfg, rand.New(rand.NewSource(runtime.Seed))) //#nosec G404 -- gameplay randomness
}

// start begins a session with explicit parameters and randomness.
func (g *Game) start(cfg config.BreakoutConfig, rng Rand) {
	g.cfg = cfg
	g.reducer = NewReducer(cfg, rng)
	g.state = g.reducer.NewState()
	g.ticks = 0
}

// Dispatch applies one input event.
func (g *Game) Dispatch(ev core.Event) core.StepResult {
	if ev.Kind == core.EventTick && !g.state.Over() {
		g.ticks++
	}
	g.state = g.reducer.Apply(g.state, ev)
	return core.StepResult{State: g.State()}
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	Render(g.Snapshot(), g.cfg, dst)
}

// PointerX maps a screen column to a canvas x coordinate for a screen of
// the given width. ok is false outside the playfield.
func (g *Game) PointerX(col, screenW, screenH int) (float64, bool) {
	return newViewport(g.cfg, screenW, screenH).canvasX(col)
}

// State returns the platform view of the session.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Lives:    g.state.Lives,
		GameOver: g.state.Over(),
		Won:      g.state.Won(),
	}
}

// Config returns the parameters of the running session.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Current returns the session State.
func (g *Game) Current() State {
	return g.state
}

// Snapshot returns a render-ready copy of the session State.
func (g *Game) Snapshot() Snapshot {
	return NewSnapshot(g.state, g.ticks)
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
