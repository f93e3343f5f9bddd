package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

var ErrRaggedBoard = errors.New("board rows must have equal length")

func (c Cell) String() string {
	switch c {
	case Empty:
		return "#"
	case MarkX:
		return "x"
	case MarkO:
		return "o"
	default:
		return "?"
	}
}

// Opponent returns the other mark. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// Coord is a 0-based board coordinate.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board is a fixed-size grid. Its shape never changes after creation.
type Board struct {
	rows  int
	cols  int
	cells [][]Cell
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: board is %dx%d", apperror.ErrInvalidConfig, rows, cols)
	}

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}

	return &Board{rows: rows, cols: cols, cells: cells}, nil
}

// BoardFromCells copies a rectangular grid into a new Board.
func BoardFromCells(grid [][]Cell) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", apperror.ErrInvalidConfig)
	}

	board, err := NewBoard(len(grid), len(grid[0]))
	if err != nil {
		return nil, err
	}

	for r, row := range grid {
		if len(row) != board.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedBoard, r, len(row), board.cols)
		}
		copy(board.cells[r], row)
	}

	return board, nil
}

func (that *Board) Rows() int {
	return that.rows
}

func (that *Board) Cols() int {
	return that.cols
}

func (that *Board) InBounds(at Coord) bool {
	return at.Row >= 0 && at.Row < that.rows && at.Col >= 0 && at.Col < that.cols
}

// At returns the cell at (row, col). The coordinate must be in bounds.
func (that *Board) At(row, col int) Cell {
	return that.cells[row][col]
}

// Set places mark on an empty in-bounds cell.
func (that *Board) Set(at Coord, mark Cell) error {
	if !that.InBounds(at) {
		return fmt.Errorf("%w: %s on %dx%d board", apperror.ErrOutOfBounds, at, that.rows, that.cols)
	}

	if that.cells[at.Row][at.Col] != Empty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, at)
	}

	that.cells[at.Row][at.Col] = mark

	return nil
}

// Row returns a copy of row r.
func (that *Board) Row(r int) []Cell {
	row := make([]Cell, that.cols)
	copy(row, that.cells[r])

	return row
}

// Transpose returns a new board with rows and columns swapped: out[i][j] = in[j][i].
func (that *Board) Transpose() *Board {
	out := &Board{rows: that.cols, cols: that.rows, cells: make([][]Cell, that.cols)}
	for i := range out.cells {
		out.cells[i] = make([]Cell, that.rows)
		for j := range out.cells[i] {
			out.cells[i][j] = that.cells[j][i]
		}
	}

	return out
}

// Rotate returns the board turned 90 degrees counter-clockwise: out[i][j] = in[j][cols-1-i].
func (that *Board) Rotate() *Board {
	out := &Board{rows: that.cols, cols: that.rows, cells: make([][]Cell, that.cols)}
	for i := range out.cells {
		out.cells[i] = make([]Cell, that.rows)
		for j := range out.cells[i] {
			out.cells[i][j] = that.cells[j][that.cols-1-i]
		}
	}

	return out
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// EmptyCells lists empty coordinates in row-major order.
func (that *Board) EmptyCells() []Coord {
	var free []Coord
	for r, row := range that.cells {
		for c, cell := range row {
			if cell == Empty {
				free = append(free, Coord{Row: r, Col: c})
			}
		}
	}

	return free
}
