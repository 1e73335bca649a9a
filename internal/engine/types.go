// Package engine implements the tic-tac-toe rules: board, turns, and win/draw
// detection. It has no UI or framework dependencies; presentation layers read
// its state and drive it through AttemptMove and Reset.
package engine

import (
	"fmt"
	"strings"
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

// Cell is the content of a single board cell.
type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

// String returns "X", "O", or "." for an empty cell.
func (c Cell) String() string {
	switch c {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "."
	}
}

// Player is one of the two sides.
type Player uint8

const (
	X Player = iota + 1
	O
)

// Next returns the other player.
func (p Player) Next() Player {
	if p == X {
		return O
	}
	return X
}

// Mark returns the cell value this player places.
func (p Player) Mark() Cell {
	if p == O {
		return MarkO
	}
	return MarkX
}

// String returns "X" or "O".
func (p Player) String() string {
	if p == O {
		return "O"
	}
	return "X"
}

// ParsePlayer parses "x"/"X"/"o"/"O".
func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return 0, fmt.Errorf("unknown player %q (want X or O)", s)
	}
}

// Board holds the 9 cells in row-major order:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Board [BoardSize]Cell

// Full reports whether every cell is marked.
func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// Count returns the number of marked cells.
func (b Board) Count() int {
	n := 0
	for _, c := range b {
		if c != Empty {
			n++
		}
	}
	return n
}

// String renders the board as three rows of "X", "O" and ".".
func (b Board) String() string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Line is a triple of board indices.
type Line [3]int

// Contains reports whether idx is one of the line's cells.
func (l Line) Contains(idx int) bool {
	return l[0] == idx || l[1] == idx || l[2] == idx
}

// String formats the line as "0-3-6".
func (l Line) String() string {
	return fmt.Sprintf("%d-%d-%d", l[0], l[1], l[2])
}

// WinningLines lists every three-in-a-row, in the order they are checked.
var WinningLines = [8]Line{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// WinnerOf scans WinningLines in order and returns the first line whose three
// cells hold the same mark.
func WinnerOf(b Board) (Player, Line, bool) {
	for _, line := range WinningLines {
		c := b[line[0]]
		if c == Empty || b[line[1]] != c || b[line[2]] != c {
			continue
		}
		if c == MarkX {
			return X, line, true
		}
		return O, line, true
	}
	return 0, Line{}, false
}
