// Package game adapts the rule engine to an interactive screen: it turns taps
// into moves, debounces them, animates new marks, and decides when the result
// dialog appears. It renders into a core.Screen and never imports Bubble Tea.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
)

// Dialog is the one-shot result notice shown when a game ends.
type Dialog struct {
	Title   string
	Message string
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithClock replaces time.Now, used for the tap debounce.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// Game is the presentation adapter around an engine.Engine.
type Game struct {
	eng         *engine.Engine
	unsubscribe func()

	cfg     config.Config
	theme   config.Theme
	starter engine.Player
	logger  *log.Logger
	now     func() time.Time

	runtime core.RuntimeConfig
	tick    uint64
	layout  layout

	cursor  int
	lastTap time.Time

	// Last state seen through the engine subscription
	board      engine.Board
	lastStatus engine.Status

	dialog    *Dialog
	presented int // Result dialogs shown since creation

	anims       [engine.BoardSize]scaleAnim
	pulse       pulseAnim
	bellPending bool
}

// New creates a game. cfg should already be validated; invalid theme colors
// fall back to the defaults.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		eng:     engine.New(),
		cfg:     cfg,
		logger:  log.New(io.Discard),
		now:     time.Now,
		runtime: core.DefaultConfig(),
		cursor:  4,
	}
	if cfg.TickRate > 0 {
		g.runtime.TickRate = cfg.TickRate
	}
	g.layout = computeLayout(g.runtime.ScreenW, g.runtime.ScreenH)
	for _, opt := range opts {
		opt(g)
	}

	theme, err := cfg.ResolveTheme()
	if err != nil {
		theme, _ = config.Default().ResolveTheme()
	}
	g.theme = theme

	if g.starter, err = cfg.Starter(); err != nil {
		g.starter = engine.X
	}

	g.lastStatus = g.eng.Status()
	g.pulse.cell = -1
	g.unsubscribe = g.eng.Subscribe(g.onChange)
	return g
}

// Close detaches the game from its engine.
func (g *Game) Close() {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
}

// Engine exposes the underlying rule engine for read access.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Reset adopts new screen settings and starts a fresh game with the
// configured starting player.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.Resize(rc.ScreenW, rc.ScreenH)
	if rc.TickRate > 0 {
		g.runtime.TickRate = rc.TickRate
	}
	g.tick = 0
	g.cursor = 4
	g.lastTap = time.Time{}
	g.Restart(g.starter)
}

// Resize updates the layout without touching game state.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.layout = computeLayout(w, h)
}

// Restart clears the board with p to move and closes any dialog.
func (g *Game) Restart(p engine.Player) {
	g.eng.Reset(p)
	g.pulse = pulseAnim{cell: -1}
	g.bellPending = false
	g.logger.Info("new game", "starts", p)
}

// Tap attempts a move at index. Taps inside the debounce window are dropped
// and rule rejections are ignored; either way Tap returns false.
func (g *Game) Tap(index int) bool {
	now := g.now()
	if !g.lastTap.IsZero() && now.Sub(g.lastTap) < g.cfg.Debounce() {
		g.logger.Debug("tap debounced", "cell", index)
		return false
	}
	g.lastTap = now

	if err := g.eng.AttemptMove(index); err != nil {
		g.logger.Debug("move rejected", "cell", index, "err", err)
		return false
	}

	g.cursor = index
	if g.cfg.Haptics.Enabled {
		g.pulse = pulseAnim{cell: index, remaining: g.runtime.Ticks(g.cfg.Pulse())}
		g.bellPending = g.cfg.Haptics.Bell
	}
	return true
}

// TapAt taps the cell under screen position (x, y). A click while the result
// dialog is open dismisses it instead.
func (g *Game) TapAt(x, y int) bool {
	if g.dialog != nil {
		g.Dismiss()
		return false
	}
	idx := g.CellAt(x, y)
	if idx < 0 {
		return false
	}
	return g.Tap(idx)
}

// Dismiss closes the result dialog. The terminal status stays until restart.
func (g *Game) Dismiss() {
	g.dialog = nil
}

// Step advances animations by one tick and applies the frame's actions.
func (g *Game) Step(in core.InputFrame) {
	g.tick++
	g.advanceAnimations()

	switch {
	case in.Has(core.ActionRestartX):
		g.Restart(engine.X)
		return
	case in.Has(core.ActionRestartO):
		g.Restart(engine.O)
		return
	}

	if g.dialog != nil {
		if in.Has(core.ActionDismiss) || in.Has(core.ActionPlace) {
			g.Dismiss()
		}
		return
	}

	// The board is not drawn, so cursor input has nothing to act on.
	if g.layout.tooSmall {
		return
	}

	row, col := g.cursor/3, g.cursor%3
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	}
	g.cursor = core.Clamp(row, 0, 2)*3 + core.Clamp(col, 0, 2)

	if in.Has(core.ActionPlace) {
		g.Tap(g.cursor)
	}
}

// PulsePending reports whether a bell should ring for the last move, and
// clears the request.
func (g *Game) PulsePending() bool {
	p := g.bellPending
	g.bellPending = false
	return p
}

// DialogOpen reports whether the result dialog is showing.
func (g *Game) DialogOpen() bool {
	return g.dialog != nil
}

// onChange runs after every engine mutation.
func (g *Game) onChange() {
	board := g.eng.Board()
	status := g.eng.Status()

	for i := range board {
		switch {
		case board[i] != engine.Empty && g.board[i] == engine.Empty:
			g.anims[i] = newScaleAnim(g.cfg.Animation.ScaleFrom, g.runtime.Ticks(g.cfg.ScaleIn()))
		case board[i] == engine.Empty:
			g.anims[i] = scaleAnim{}
		}
	}

	// Present once per transition into a terminal status.
	if engine.IsTerminal(status) && !engine.IsTerminal(g.lastStatus) {
		g.dialog = resultDialog(status)
		g.presented++
		g.logger.Info("game over", "result", status, "moves", board.Count())
	}
	if !engine.IsTerminal(status) {
		g.dialog = nil
	}

	g.board = board
	g.lastStatus = status
}

func resultDialog(s engine.Status) *Dialog {
	if w, ok := s.(engine.Won); ok {
		return &Dialog{
			Title:   "Player " + w.Player.String() + " wins!",
			Message: "Press R to play again.",
		}
	}
	return &Dialog{
		Title:   "It's a draw.",
		Message: "Nobody won this round.",
	}
}

// Snapshot is a plain copy of the observable game state.
type Snapshot struct {
	Tick      uint64
	Board     engine.Board
	Status    engine.Status
	Version   uint64
	Cursor    int
	Dialog    *Dialog
	Presented int
	Scales    [engine.BoardSize]float64
	PulseCell int // -1 when no pulse is running
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Board:     g.eng.Board(),
		Status:    g.eng.Status(),
		Version:   g.eng.Version(),
		Cursor:    g.cursor,
		Presented: g.presented,
		PulseCell: -1,
	}
	if g.dialog != nil {
		d := *g.dialog
		s.Dialog = &d
	}
	for i := range s.Scales {
		s.Scales[i] = g.anims[i].scale()
	}
	if g.pulse.remaining > 0 {
		s.PulseCell = g.pulse.cell
	}
	return s
}
