package engine

import "fmt"

// Engine owns a board and its status. The zero value is an empty board with
// X to move. It is not safe for concurrent use; the caller drives it from a
// single event loop.
type Engine struct {
	board   Board
	status  Status
	version uint64

	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func()
}

// New creates an engine with an empty board and X to move.
func New() *Engine {
	return NewWithStarter(X)
}

// NewWithStarter creates an engine with an empty board and starter to move.
// Any value other than O means X.
func NewWithStarter(starter Player) *Engine {
	return &Engine{status: InProgress{Player: normalize(starter)}}
}

func normalize(p Player) Player {
	if p != O {
		return X
	}
	return p
}

// Board returns a copy of the current board.
func (e *Engine) Board() Board {
	return e.board
}

// Status returns the current status.
func (e *Engine) Status() Status {
	if e.status == nil {
		return InProgress{Player: X}
	}
	return e.status
}

// CurrentPlayer returns the player to move, or false once the game is over.
func (e *Engine) CurrentPlayer() (Player, bool) {
	if s, ok := e.Status().(InProgress); ok {
		return s.Player, true
	}
	return 0, false
}

// WinningLine returns the completed line when the status is Won.
func (e *Engine) WinningLine() (Line, bool) {
	if s, ok := e.Status().(Won); ok {
		return s.Line, true
	}
	return Line{}, false
}

// MoveCount returns the number of marks on the board.
func (e *Engine) MoveCount() int {
	return e.board.Count()
}

// Version is incremented after every successful AttemptMove or Reset.
func (e *Engine) Version() uint64 {
	return e.version
}

// Subscribe registers fn to be called after every successful mutation.
// Callbacks run synchronously in registration order and carry no payload;
// observers re-read state. The returned func removes the subscription.
func (e *Engine) Subscribe(fn func()) (unsubscribe func()) {
	id := e.nextID
	e.nextID++
	e.observers = append(e.observers, observer{id: id, fn: fn})

	return func() {
		for i, o := range e.observers {
			if o.id == id {
				e.observers = append(e.observers[:i], e.observers[i+1:]...)
				return
			}
		}
	}
}

// Reset clears the board and gives the move to starter.
func (e *Engine) Reset(starter Player) {
	e.board = Board{}
	e.status = InProgress{Player: normalize(starter)}
	e.changed()
}

// AttemptMove places the current player's mark at index.
// Preconditions are checked in order (range, occupancy, game over); a failed
// check returns an error wrapping ErrOutOfRange, ErrCellOccupied or
// ErrGameAlreadyOver and leaves the engine untouched.
func (e *Engine) AttemptMove(index int) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d", ErrOutOfRange, index)
	}
	if e.board[index] != Empty {
		return fmt.Errorf("%w: cell %d", ErrCellOccupied, index)
	}
	current, ok := e.Status().(InProgress)
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameAlreadyOver, e.status)
	}

	mover := current.Player
	e.board[index] = mover.Mark()

	// Only the mover can have completed a line on this move.
	switch winner, line, won := WinnerOf(e.board); {
	case won && winner == mover:
		e.status = Won{Player: mover, Line: line}
	case e.board.Full():
		e.status = Draw{}
	default:
		e.status = InProgress{Player: mover.Next()}
	}

	e.changed()
	return nil
}

func (e *Engine) changed() {
	e.version++
	// Copy so callbacks may unsubscribe while being notified.
	obs := append([]observer(nil), e.observers...)
	for _, o := range obs {
		o.fn()
	}
}
