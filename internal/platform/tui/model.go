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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/game"
)

// footerHeight is the number of rows below the board reserved for help.
const footerHeight = 1

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithScreenshotDir overrides the screenshot directory.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) { m.screenshotDir = dir }
}

// Model is the Bubble Tea model for the board.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	quitting   bool

	logger        *log.Logger
	screenshotDir string
	ringBell      bool // Emit BEL with the next frame
}

// NewModel creates a Bubble Tea model for g. cfg.ScreenH includes the help
// footer row.
func NewModel(g *game.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	m := Model{
		game:       g,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.screenshotDir == "" {
		m.screenshotDir = defaultScreenshotDir()
	}
	m.screen = core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH))
	m.help.Width = cfg.ScreenW
	return m
}

func boardHeight(h int) int {
	return core.Max(0, h-footerHeight)
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".tictactoe", "screenshots")
}

// Init starts a fresh game and the tick loop.
func (m Model) Init() tea.Cmd {
	rc := m.config
	rc.ScreenH = boardHeight(rc.ScreenH)
	m.game.Reset(rc)
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

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse taps the cell under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.game.TapAt(msg.X, msg.Y) && m.game.PulsePending() {
		m.ringBell = true
	}
	return m, nil
}

// handleResize resizes the screen. Game state is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.game.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the game with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	// A bell stays in the output for one tick only.
	m.ringBell = m.game.PulsePending()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current board to a timestamped text file.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	name := fmt.Sprintf("tictactoe_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the board and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
	if m.ringBell {
		view = "\a" + view
	}
	return view
}

// Run starts the Bubble Tea program for g.
func Run(g *game.Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(g, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
