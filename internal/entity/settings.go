package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

var (
	ErrNonPositiveSettings = fmt.Errorf("%w: rows, cols and length to win must be positive", apperror.ErrInvalidConfig)
	ErrWinLengthTooLong    = fmt.Errorf("%w: length to win exceeds rows or cols", apperror.ErrInvalidConfig)
)

// Settings fixes the board shape and run length for one game.
type Settings struct {
	Rows        int
	Cols        int
	LengthToWin int
}

func (that Settings) Validate() error {
	if that.Rows <= 0 || that.Cols <= 0 || that.LengthToWin <= 0 {
		return fmt.Errorf("%w: %dx%d, length %d", ErrNonPositiveSettings, that.Rows, that.Cols, that.LengthToWin)
	}

	if that.LengthToWin > that.Rows || that.LengthToWin > that.Cols {
		return fmt.Errorf("%w: %dx%d, length %d", ErrWinLengthTooLong, that.Rows, that.Cols, that.LengthToWin)
	}

	return nil
}
