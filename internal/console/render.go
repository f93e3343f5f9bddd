package console

import (
	"bufio"
	"io"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const cellSeparator = "───|"

// RenderBoard writes each row as " c |" cells with a separator row beneath it.
func RenderBoard(w io.Writer, board *entity.Board) error {
	buf := bufio.NewWriter(w)

	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			buf.WriteString(" " + board.At(r, c).String() + " |")
		}
		buf.WriteByte('\n')

		for c := 0; c < board.Cols(); c++ {
			buf.WriteString(cellSeparator)
		}
		buf.WriteByte('\n')
	}

	return buf.Flush()
}
