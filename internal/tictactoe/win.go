package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// CheckWin reports whether any row, column or length-k diagonal window holds a run of k
// identical marks. Checks stop at the first hit: rows, then columns, then diagonals.
func CheckWin(board *entity.Board, k int) bool {
	return HorizontalWin(board, k) || VerticalWin(board, k) || DiagonalWin(board, k)
}

// HorizontalWin reports a run of k in any row.
func HorizontalWin(board *entity.Board, k int) bool {
	return anyRun(Rows(board), k)
}

// VerticalWin reuses the row scan on the transposed board.
func VerticalWin(board *entity.Board, k int) bool {
	return HorizontalWin(board.Transpose(), k)
}

// DiagonalWin reports a run of k in any length-k window of either diagonal direction.
func DiagonalWin(board *entity.Board, k int) bool {
	return anyRun(DiagonalWindows(board, k, DiagonalRight), k) ||
		anyRun(DiagonalWindows(board, k, DiagonalLeft), k)
}

// directions through a cell: horizontal, vertical, diagonal right, diagonal left.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// CheckWinAt only looks at the four lines through at. It agrees with CheckWin whenever the
// mark at that cell is the only one placed since the last check.
func CheckWinAt(board *entity.Board, k int, at entity.Coord) bool {
	if !board.InBounds(at) {
		return false
	}

	mark := board.At(at.Row, at.Col)
	if mark == entity.Empty || k <= 0 {
		return false
	}

	for _, d := range directions {
		count := 1 + countFrom(board, at, d[0], d[1], mark) + countFrom(board, at, -d[0], -d[1], mark)
		if count >= k {
			return true
		}
	}

	return false
}

// countFrom counts consecutive cells equal to mark, stepping away from at (exclusive).
func countFrom(board *entity.Board, at entity.Coord, dr, dc int, mark entity.Cell) int {
	count := 0
	next := entity.Coord{Row: at.Row + dr, Col: at.Col + dc}
	for board.InBounds(next) && board.At(next.Row, next.Col) == mark {
		count++
		next = entity.Coord{Row: next.Row + dr, Col: next.Col + dc}
	}

	return count
}

// IsDraw holds only for a full board without a winning run.
func IsDraw(board *entity.Board, k int) bool {
	return board.IsFull() && !CheckWin(board, k)
}

func anyRun(lines [][]entity.Cell, k int) bool {
	for _, line := range lines {
		if HasRun(line, k) {
			return true
		}
	}

	return false
}
