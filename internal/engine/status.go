package engine

import "fmt"

// Status describes where the game stands. It is implemented only by
// InProgress, Won and Draw.
type Status interface {
	fmt.Stringer
	status()
}

// InProgress means Player is to move.
type InProgress struct {
	Player Player
}

func (InProgress) status() {}

func (s InProgress) String() string {
	return fmt.Sprintf("in progress (%s to move)", s.Player)
}

// Won means Player completed Line.
type Won struct {
	Player Player
	Line   Line
}

func (Won) status() {}

func (s Won) String() string {
	return fmt.Sprintf("%s won on %s", s.Player, s.Line)
}

// Draw means the board filled with no three-in-a-row.
type Draw struct{}

func (Draw) status() {}

func (Draw) String() string {
	return "draw"
}

// IsTerminal reports whether s is Won or Draw.
func IsTerminal(s Status) bool {
	switch s.(type) {
	case Won, Draw:
		return true
	default:
		return false
	}
}
