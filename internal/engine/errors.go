package engine

import "errors"

// Move rejections. None of them change state.
var (
	ErrOutOfRange      = errors.New("cell index out of range")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrGameAlreadyOver = errors.New("game is already over")
)
