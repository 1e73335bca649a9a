package game

import (
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
)

const (
	cellWidth  = 8 // Width of each cell (including the left border)
	cellHeight = 4 // Height of each cell (including the top border)

	boardW = 3*cellWidth + 1
	boardH = 3*cellHeight + 1

	headerHeight = 2
	minWidth     = boardW + 2
	minHeight    = headerHeight + boardH + 3
)

// Marks below this scale are drawn as a single small letter.
const smallGlyphScale = 0.85

var glyphs = map[engine.Cell][3]string{
	engine.MarkX: {"╲ ╱", " ╳ ", "╱ ╲"},
	engine.MarkO: {"╭─╮", "│ │", "╰─╯"},
}

// layout is the screen placement of the board, recomputed on resize.
type layout struct {
	screenW, screenH int
	board            core.Rect
	statusY          int
	tooSmall         bool
}

func computeLayout(w, h int) layout {
	l := layout{screenW: w, screenH: h}
	if w < minWidth || h < minHeight {
		l.tooSmall = true
		return l
	}
	l.board = core.NewRect((w-boardW)/2, headerHeight, boardW, boardH)
	l.statusY = l.board.Bottom() + 1
	return l
}

// cellRect returns the bounds of cell idx including its grid lines.
func (l layout) cellRect(idx int) core.Rect {
	row, col := idx/3, idx%3
	return core.NewRect(l.board.X+col*cellWidth, l.board.Y+row*cellHeight, cellWidth+1, cellHeight+1)
}

// CellAt returns the cell index under screen position (x, y), or -1 when the
// position is outside every cell interior.
func (g *Game) CellAt(x, y int) int {
	if g.layout.tooSmall {
		return -1
	}
	for i := 0; i < engine.BoardSize; i++ {
		if g.layout.cellRect(i).Inset(1).Contains(x, y) {
			return i
		}
	}
	return -1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHeader(dst)
	g.renderBoard(dst)
	g.renderStatus(dst)

	if g.dialog != nil {
		cx, cy := g.layout.board.Center()
		g.drawOverlay(dst, cx, cy, g.dialog.Title, g.dialog.Message, "", "Enter: OK")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.layout.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

func (g *Game) renderHeader(dst *core.Screen) {
	b := g.layout.board
	dst.DrawText(b.X, 0, "Tic-Tac-Toe")

	text, color := g.indicator()
	dst.DrawTextColored(b.Right()-len(text), 0, text, color)
}

// indicator is the short turn/result label in the header.
func (g *Game) indicator() (string, core.Color) {
	switch s := g.eng.Status().(type) {
	case engine.InProgress:
		return s.Player.String(), g.playerColor(s.Player)
	case engine.Won:
		return s.Player.String() + " wins", g.playerColor(s.Player)
	default:
		return "Draw", core.ColorDefault
	}
}

func (g *Game) renderStatus(dst *core.Screen) {
	text, color := StatusText(g.eng.Status()), core.ColorDefault
	switch s := g.eng.Status().(type) {
	case engine.InProgress:
		color = g.playerColor(s.Player)
	case engine.Won:
		color = g.theme.Highlight
	}
	dst.DrawTextCentered(g.layout.statusY, text, color)
}

// StatusText is the one-line description of s shown under the board.
func StatusText(s engine.Status) string {
	switch s := s.(type) {
	case engine.InProgress:
		return "Turn: " + s.Player.String()
	case engine.Won:
		return "Player " + s.Player.String() + " wins!"
	default:
		return "It's a draw."
	}
}

func (g *Game) renderBoard(dst *core.Screen) {
	g.renderGrid(dst)

	line, won := g.eng.WinningLine()
	board := g.eng.Board()

	for i, c := range board {
		if c == engine.Empty {
			continue
		}
		color := g.markColor(c)
		if won && line.Contains(i) {
			color = g.theme.Highlight
		}
		g.drawMark(dst, i, c, g.anims[i].scale(), color)
	}

	// Frames, lowest priority first so the winning line stays on top.
	if _, ok := g.eng.CurrentPlayer(); ok && g.dialog == nil {
		dst.DrawBox(g.layout.cellRect(g.cursor), core.ColorWhite)
	}
	if g.pulse.remaining > 0 && g.pulse.cell >= 0 {
		dst.DrawHeavyBox(g.layout.cellRect(g.pulse.cell), g.markColor(board[g.pulse.cell]))
	}
	if won {
		for _, idx := range line {
			dst.DrawHeavyBox(g.layout.cellRect(idx), g.theme.Highlight)
		}
	}
}

// renderGrid draws the 3x3 grid lines.
func (g *Game) renderGrid(dst *core.Screen) {
	b := g.layout.board
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			px := b.X + x*cellWidth
			py := b.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == 3:
				corner = '┐'
			case y == 3 && x == 0:
				corner = '└'
			case y == 3 && x == 3:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == 3:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == 3:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < 3 {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < 3 {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// drawMark draws c centered in cell idx. While the scale-in animation is
// early the mark is a single letter; it then switches to the full glyph.
func (g *Game) drawMark(dst *core.Screen, idx int, c engine.Cell, scale float64, color core.Color) {
	inner := g.layout.cellRect(idx).Inset(1)
	cx, cy := inner.Center()

	if scale < smallGlyphScale {
		small := 'x'
		if c == engine.MarkO {
			small = 'o'
		}
		dst.SetColored(cx, cy, small, color)
		return
	}

	for row, text := range glyphs[c] {
		dst.DrawTextColored(cx-1, inner.Y+row, text, color)
	}
}

func (g *Game) playerColor(p engine.Player) core.Color {
	if p == engine.O {
		return g.theme.O
	}
	return g.theme.X
}

func (g *Game) markColor(c engine.Cell) core.Color {
	if c == engine.MarkO {
		return g.theme.O
	}
	return g.theme.X
}

// drawOverlay draws a boxed block of centered lines.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len([]rune(line)))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, g.theme.Highlight)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
