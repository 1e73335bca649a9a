package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
	"github.com/vovakirdan/tui-tictactoe/internal/game"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

type testModel struct {
	m   Model
	g   *game.Game
	dir string
}

// newTestModel builds an 80x25 model: an 80x24 board plus the help row.
func newTestModel(t *testing.T, cfg config.Config) *testModel {
	t.Helper()
	cfg.Input.DebounceMS = 0
	g := game.New(cfg)
	t.Cleanup(g.Close)

	tm := &testModel{g: g, dir: t.TempDir()}
	tm.m = NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60},
		WithScreenshotDir(tm.dir))
	require.NotNil(t, tm.m.Init())
	return tm
}

func (tm *testModel) send(msg tea.Msg) tea.Cmd {
	next, cmd := tm.m.Update(msg)
	tm.m = next.(Model)
	return cmd
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runes("w"), core.ActionUp},
		{"k", runes("k"), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runes("a"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPlace},
		{"space", runes(" "), core.ActionPlace},
		{"r", runes("r"), core.ActionRestartX},
		{"x", runes("x"), core.ActionRestartX},
		{"o", runes("o"), core.ActionRestartO},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionDismiss},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
		{"unbound", runes("z"), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.MapKey(tt.msg))
		})
	}
}

func TestKeyAppliedOnTick(t *testing.T) {
	tm := newTestModel(t, config.Default())

	tm.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, engine.Empty, tm.g.Engine().Board()[4], "input waits for the tick")

	require.NotNil(t, tm.send(TickMsg{}))
	assert.Equal(t, engine.MarkX, tm.g.Engine().Board()[4])

	tm.send(TickMsg{})
	assert.Equal(t, 1, tm.g.Engine().MoveCount(), "frame is cleared after a tick")
}

func TestRestartKeys(t *testing.T) {
	tm := newTestModel(t, config.Default())
	tm.send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.send(TickMsg{})

	tm.send(runes("o"))
	tm.send(TickMsg{})

	assert.Equal(t, engine.Board{}, tm.g.Engine().Board())
	assert.Equal(t, engine.InProgress{Player: engine.O}, tm.g.Engine().Status())
}

func TestQuit(t *testing.T) {
	tm := newTestModel(t, config.Default())

	cmd := tm.send(runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, tm.m.View())
}

func TestMouseTap(t *testing.T) {
	tm := newTestModel(t, config.Default())

	tm.send(tea.MouseMsg{X: 28, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, 0, tm.g.Engine().MoveCount(), "release is ignored")

	tm.send(click(28, 3))
	assert.Equal(t, engine.MarkX, tm.g.Engine().Board()[0])

	tm.send(click(0, 0))
	assert.Equal(t, 1, tm.g.Engine().MoveCount())
}

func TestBellInViewForOneTick(t *testing.T) {
	cfg := config.Default()
	cfg.Haptics.Bell = true
	tm := newTestModel(t, cfg)

	assert.Nil(t, tm.send(click(28, 3)))
	assert.True(t, strings.HasPrefix(tm.m.View(), "\a"))

	tm.send(TickMsg{})
	assert.NotContains(t, tm.m.View(), "\a")

	tm.send(tea.KeyMsg{Type: tea.KeyRight})
	tm.send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.send(TickMsg{})
	require.Equal(t, engine.MarkO, tm.g.Engine().Board()[1])
	assert.True(t, strings.HasPrefix(tm.m.View(), "\a"), "keyboard move rings on its tick")

	tm.send(TickMsg{})
	assert.NotContains(t, tm.m.View(), "\a")
}

func TestNoBellByDefault(t *testing.T) {
	tm := newTestModel(t, config.Default())

	tm.send(click(28, 3))
	assert.NotContains(t, tm.m.View(), "\a")

	tm.send(tea.KeyMsg{Type: tea.KeyRight})
	tm.send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.send(TickMsg{})
	require.Equal(t, engine.MarkO, tm.g.Engine().Board()[1])
	assert.NotContains(t, tm.m.View(), "\a")
}

func TestResizeKeepsGame(t *testing.T) {
	tm := newTestModel(t, config.Default())
	tm.send(click(28, 3))

	tm.send(tea.WindowSizeMsg{Width: 120, Height: 41})

	assert.Equal(t, engine.MarkX, tm.g.Engine().Board()[0])
	assert.Equal(t, 120, tm.m.screen.Width())
	assert.Equal(t, 40, tm.m.screen.Height())

	// The board moved to x=47.
	tm.send(click(56, 7))
	assert.Equal(t, engine.MarkO, tm.g.Engine().Board()[4])
}

func TestView(t *testing.T) {
	tm := newTestModel(t, config.Default())

	view := tm.m.View()

	assert.Contains(t, view, "Tic-Tac-Toe")
	assert.Contains(t, view, "Turn: X")
	assert.Contains(t, view, "place")
	assert.Contains(t, view, "quit")
}

func TestScreenshot(t *testing.T) {
	tm := newTestModel(t, config.Default())
	tm.send(click(28, 3))

	assert.Nil(t, tm.send(tea.KeyMsg{Type: tea.KeyCtrlS}))

	files, err := filepath.Glob(filepath.Join(tm.dir, "tictactoe_*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Tic-Tac-Toe")
	assert.Contains(t, string(data), "Turn: O")
}

func TestRenderScreen(t *testing.T) {
	t.Run("uncolored matches plain text", func(t *testing.T) {
		s := core.NewScreen(6, 2)
		s.DrawText(0, 0, "hello")
		s.DrawText(1, 1, "world")

		assert.Equal(t, s.String(), RenderScreen(s))
	})

	t.Run("colored runs keep their text", func(t *testing.T) {
		s := core.NewScreen(10, 1)
		s.DrawText(0, 0, "a")
		s.DrawTextColored(1, 0, "XX", core.ColorBlue)
		s.DrawTextColored(3, 0, "OO", core.ColorRed)

		out := RenderScreen(s)
		assert.Contains(t, out, "XX")
		assert.Contains(t, out, "OO")
		assert.Contains(t, out, "a")
	})
}
