package connect4

import (
	"fmt"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/entity"
)

const (
	Rows    = 6
	Columns = 7
	WinLen  = 4

	// ColumnLabels and RowLabels name cells in entries such as "a1". Row "1" is index 0, the bottom row.
	ColumnLabels = "abcdefg"
	RowLabels    = "123456"
)

// Window is a run of WinLen cells starting at Start and stepping by (DRow, DCol).
type Window struct {
	Start entity.Cell
	DRow  int
	DCol  int
}

// Cells expands the window into its WinLen cells.
func (that Window) Cells() [WinLen]entity.Cell {
	var cells [WinLen]entity.Cell
	for i := range cells {
		cells[i] = entity.Cell{
			Row:    that.Start.Row + i*that.DRow,
			Column: that.Start.Column + i*that.DCol,
		}
	}
	return cells
}

// Windows holds every window scanned for a win, in scan order:
// rows, columns, "/" diagonals, "\" diagonals.
var Windows = buildWindows()

func buildWindows() []Window {
	scans := []struct {
		rowFrom, rowTo int
		colFrom, colTo int
		dRow, dCol     int
	}{
		{0, Rows - 1, 0, Columns - WinLen, 0, 1},
		{0, Rows - WinLen, 0, Columns - 1, 1, 0},
		{0, Rows - WinLen, 0, Columns - WinLen, 1, 1},
		{WinLen - 1, Rows - 1, 0, Columns - WinLen, -1, 1},
	}

	var windows []Window
	for _, scan := range scans {
		for r := scan.rowFrom; r <= scan.rowTo; r++ {
			for c := scan.colFrom; c <= scan.colTo; c++ {
				windows = append(windows, Window{
					Start: entity.Cell{Row: r, Column: c},
					DRow:  scan.dRow,
					DCol:  scan.dCol,
				})
			}
		}
	}

	return windows
}

// Board is a 6x7 grid indexed [row][column] with row 0 at the bottom.
type Board [Rows][Columns]entity.Mark

// NewBoard returns an empty 6x7 board.
func NewBoard() *Board {
	return &Board{}
}

func (that *Board) At(cell entity.Cell) entity.Mark {
	return that[cell.Row][cell.Column]
}

// Label returns the entry label of a cell, e.g. "a1" for the bottom-left cell.
func Label(cell entity.Cell) string {
	return string(ColumnLabels[cell.Column]) + string(RowLabels[cell.Row])
}

// AvailablePositions returns the label of the lowest empty cell of every column that still has room,
// in column order. Full columns contribute nothing.
func (that *Board) AvailablePositions() []string {
	positions := make([]string, 0, Columns)
	for col := 0; col < Columns; col++ {
		if row, ok := that.landingRow(col); ok {
			positions = append(positions, Label(entity.Cell{Row: row, Column: col}))
		}
	}

	return positions
}

// Drop places mark in the first empty cell of col, scanning up from row 0, and returns that row.
func (that *Board) Drop(col int, mark entity.Mark) (int, error) {
	if col < 0 || col >= Columns {
		return 0, fmt.Errorf("%w: column %d", apperror.ErrOutOfRange, col)
	}

	row, ok := that.landingRow(col)
	if !ok {
		return 0, fmt.Errorf("%w: column %c is full", apperror.ErrCellOccupied, ColumnLabels[col])
	}

	that[row][col] = mark

	return row, nil
}

func (that *Board) landingRow(col int) (int, bool) {
	for row := 0; row < Rows; row++ {
		if that[row][col] == entity.Empty {
			return row, true
		}
	}

	return 0, false
}

func (that *Board) HasWin() bool {
	for _, window := range Windows {
		cells := window.Cells()
		first := that.At(cells[0])
		if first == entity.Empty {
			continue
		}

		won := true
		for _, cell := range cells[1:] {
			if that.At(cell) != first {
				won = false
				break
			}
		}

		if won {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if _, ok := that.landingRow(col); ok {
			return false
		}
	}

	return true
}

// Evaluate reports the terminal state of the board, checking for a win before a full board.
func (that *Board) Evaluate() entity.Outcome {
	switch {
	case that.HasWin():
		return entity.Win
	case that.IsFull():
		return entity.Draw
	default:
		return entity.Ongoing
	}
}
