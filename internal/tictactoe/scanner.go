package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// HasRun reports whether line contains at least k consecutive copies of one non-empty mark.
// A line shorter than k never does.
func HasRun(line []entity.Cell, k int) bool {
	if k <= 0 || len(line) < k {
		return false
	}

	xCount, oCount := 0, 0
	for _, cell := range line {
		switch cell {
		case entity.MarkX:
			xCount++
			oCount = 0
		case entity.MarkO:
			oCount++
			xCount = 0
		default:
			xCount, oCount = 0, 0
		}

		if xCount >= k || oCount >= k {
			return true
		}
	}

	return false
}
