package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/entity"
)

const Size = 3

// WinCombos lists every line of three cells that wins the game: rows, columns, then both diagonals.
var WinCombos = [][3]entity.Cell{
	{{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 0, Column: 2}},
	{{Row: 1, Column: 0}, {Row: 1, Column: 1}, {Row: 1, Column: 2}},
	{{Row: 2, Column: 0}, {Row: 2, Column: 1}, {Row: 2, Column: 2}},
	{{Row: 0, Column: 0}, {Row: 1, Column: 0}, {Row: 2, Column: 0}},
	{{Row: 0, Column: 1}, {Row: 1, Column: 1}, {Row: 2, Column: 1}},
	{{Row: 0, Column: 2}, {Row: 1, Column: 2}, {Row: 2, Column: 2}},
	{{Row: 0, Column: 0}, {Row: 1, Column: 1}, {Row: 2, Column: 2}},
	{{Row: 0, Column: 2}, {Row: 1, Column: 1}, {Row: 2, Column: 0}},
}

type Board [Size][Size]entity.Mark

// NewBoard returns an empty 3x3 board.
func NewBoard() *Board {
	return &Board{}
}

func (that *Board) At(cell entity.Cell) entity.Mark {
	return that[cell.Row][cell.Column]
}

// Place writes mark into cell if it is still empty.
func (that *Board) Place(cell entity.Cell, mark entity.Mark) error {
	if !inBounds(cell) {
		return fmt.Errorf("%w: row %d column %d", apperror.ErrOutOfRange, cell.Row, cell.Column)
	}

	if that.At(cell) != entity.Empty {
		return fmt.Errorf("%w: row %d column %d", apperror.ErrCellOccupied, cell.Row, cell.Column)
	}

	that[cell.Row][cell.Column] = mark

	return nil
}

func (that *Board) HasWin() bool {
	for _, combo := range WinCombos {
		a, b, c := that.At(combo[0]), that.At(combo[1]), that.At(combo[2])
		if a != entity.Empty && a == b && b == c {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, mark := range row {
			if mark == entity.Empty {
				return false
			}
		}
	}

	return true
}

// Evaluate reports the terminal state of the board. A win is checked before a full board,
// since the filling move may itself complete a line.
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

func inBounds(cell entity.Cell) bool {
	return cell.Row >= 0 && cell.Row < Size && cell.Column >= 0 && cell.Column < Size
}
