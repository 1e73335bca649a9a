package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// KeyMap defines the key bindings for the board.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Place      key.Binding
	RestartX   key.Binding
	RestartO   key.Binding
	Dismiss    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the one-line help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Place, k.RestartX, k.RestartO, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Place, k.Dismiss},
		{k.RestartX, k.RestartO, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows, WASD and vim keys
// move the cursor.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "place"),
		),
		RestartX: key.NewBinding(
			key.WithKeys("r", "x"),
			key.WithHelp("r", "restart (X starts)"),
		),
		RestartO: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "restart (O starts)"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close dialog"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys and for the screenshot key, which the
// model handles itself.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Place):
		return core.ActionPlace
	case key.Matches(msg, k.RestartX):
		return core.ActionRestartX
	case key.Matches(msg, k.RestartO):
		return core.ActionRestartO
	case key.Matches(msg, k.Dismiss):
		return core.ActionDismiss
	}
	return core.ActionNone
}
