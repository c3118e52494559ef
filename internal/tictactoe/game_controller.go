package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/entity"
)

// ParseEntry resolves a "row,column" entry such as "0,1" to a cell.
// It does not look at the board; occupancy is checked by Place.
func ParseEntry(entry string) (entity.Cell, error) {
	if len(entry) != 3 || entry[1] != ',' || !isDigit(entry[0]) || !isDigit(entry[2]) {
		return entity.Cell{}, fmt.Errorf("%w: %q", apperror.ErrInvalidFormat, entry)
	}

	cell := entity.Cell{
		Row:    int(entry[0] - '0'),
		Column: int(entry[2] - '0'),
	}

	if !inBounds(cell) {
		return entity.Cell{}, fmt.Errorf("%w: %q", apperror.ErrOutOfRange, entry)
	}

	return cell, nil
}

// Game owns the board of one tic-tac-toe match.
type Game struct {
	board *Board
}

func NewGame() *Game {
	return &Game{board: NewBoard()}
}

func (that *Game) Board() *Board {
	return that.board
}

// Play validates entry and places mark on the resolved cell.
func (that *Game) Play(mark entity.Mark, entry string) (entity.Cell, error) {
	cell, err := ParseEntry(entry)
	if err != nil {
		return entity.Cell{}, err
	}

	if err = that.board.Place(cell, mark); err != nil {
		return entity.Cell{}, err
	}

	return cell, nil
}

func (that *Game) Evaluate() entity.Outcome {
	return that.board.Evaluate()
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
