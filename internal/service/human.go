package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// OccupiedError reports the 0-based cell a move was refused on.
type OccupiedError struct {
	At entity.Coord
}

func (that *OccupiedError) Error() string {
	return fmt.Sprintf("%s: %s", apperror.ErrCellOccupied, that.At)
}

func (that *OccupiedError) Unwrap() error {
	return apperror.ErrCellOccupied
}

// ValidateHumanMove turns 1-based row and column input into a free 0-based coordinate.
func ValidateHumanMove(board *entity.Board, rowInput, colInput string) (entity.Coord, error) {
	row, err := ParseInt(rowInput)
	if err != nil {
		return entity.Coord{}, err
	}

	col, err := ParseInt(colInput)
	if err != nil {
		return entity.Coord{}, err
	}

	return ValidateCoord(board, row, col)
}

// ValidateCoord checks already parsed 1-based coordinates.
func ValidateCoord(board *entity.Board, row, col int) (entity.Coord, error) {
	if row < 1 || row > board.Rows() || col < 1 || col > board.Cols() {
		return entity.Coord{}, fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, row, col)
	}

	at := entity.Coord{Row: row - 1, Col: col - 1}
	if board.At(at.Row, at.Col) != entity.Empty {
		return entity.Coord{}, &OccupiedError{At: at}
	}

	return at, nil
}

func ParseInt(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrParse, input)
	}

	return n, nil
}
