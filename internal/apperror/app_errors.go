package apperror

import "errors"

var (
	ErrParse            = errors.New("input must be integer")
	ErrOutOfBounds      = errors.New("input out of bounds")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidConfig    = errors.New("invalid board configuration")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNoAvailableMoves = errors.New("no available moves")
)
