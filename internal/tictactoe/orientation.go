package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// Direction selects which way a diagonal window runs from its anchor cell.
type Direction int

const (
	// DiagonalRight walks down and to the right.
	DiagonalRight Direction = iota
	// DiagonalLeft walks down and to the left.
	DiagonalLeft
)

// Rows returns every row of the board, left to right.
func Rows(board *entity.Board) [][]entity.Cell {
	lines := make([][]entity.Cell, board.Rows())
	for r := range lines {
		lines[r] = board.Row(r)
	}

	return lines
}

// Columns returns every column, top to bottom, as the rows of the transposed board.
func Columns(board *entity.Board) [][]entity.Cell {
	return Rows(board.Transpose())
}

// DiagonalWindows returns every length-k diagonal window in direction dir.
// Anchors are the cells from which a full window fits on the board.
func DiagonalWindows(board *entity.Board, k int, dir Direction) [][]entity.Cell {
	var windows [][]entity.Cell
	for r := 0; r+k <= board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			if window, ok := diagonalWindow(board, k, dir, r, c); ok {
				windows = append(windows, window)
			}
		}
	}

	return windows
}

func diagonalWindow(board *entity.Board, k int, dir Direction, r, c int) ([]entity.Cell, bool) {
	step := 1
	if dir == DiagonalLeft {
		step = -1
	}

	end := c + step*(k-1)
	if k <= 0 || r+k > board.Rows() || end < 0 || end >= board.Cols() {
		return nil, false
	}

	window := make([]entity.Cell, k)
	for i := range window {
		window[i] = board.At(r+i, c+step*i)
	}

	return window, true
}
