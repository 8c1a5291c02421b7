package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines the key bindings while playing.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Scores  key.Binding
	Clear   key.Binding
	Up      key.Binding
	Down    key.Binding
	Shot    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Restart, k.Scores, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Restart, k.Scores, k.Clear, k.Up, k.Down},
		{k.Shot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
			key.WithDisabled(),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
			key.WithDisabled(),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear scores"),
			key.WithDisabled(),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
			key.WithDisabled(),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
			key.WithDisabled(),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setGameOver enables the bindings that only make sense after a session ends.
func (k *KeyMap) setGameOver(over bool) {
	k.Restart.SetEnabled(over)
	k.Scores.SetEnabled(over)
	k.Left.SetEnabled(!over)
	k.Right.SetEnabled(!over)
}

// setScoresShown enables table scrolling and clearing.
func (k *KeyMap) setScoresShown(shown bool) {
	k.Clear.SetEnabled(shown)
	k.Up.SetEnabled(shown)
	k.Down.SetEnabled(shown)
}

// direction maps a key message to a game key identifier.
func (k KeyMap) direction(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyArrowLeft, true
	case key.Matches(msg, k.Right):
		return core.KeyArrowRight, true
	}
	return "", false
}

// opposite returns the other direction.
func opposite(dir string) string {
	if core.IsLeftKey(dir) {
		return core.KeyArrowRight
	}
	return core.KeyArrowLeft
}
