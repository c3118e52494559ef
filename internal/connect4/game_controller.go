package connect4

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/entity"
)

// ParseEntry accepts entry only if it is exactly one of the board's available positions,
// so "a1" is rejected once column a has filled past row 1 even though the column has room.
func ParseEntry(board *Board, entry string) (entity.Cell, error) {
	if !slices.Contains(board.AvailablePositions(), entry) {
		return entity.Cell{}, fmt.Errorf("%w: %q", apperror.ErrNoSuchAvailablePosition, entry)
	}

	return entity.Cell{
		Row:    strings.IndexByte(RowLabels, entry[1]),
		Column: strings.IndexByte(ColumnLabels, entry[0]),
	}, nil
}

// Game owns the board of one connect 4 match.
type Game struct {
	board *Board
}

func NewGame() *Game {
	return &Game{board: NewBoard()}
}

func (that *Game) Board() *Board {
	return that.board
}

func (that *Game) AvailablePositions() []string {
	return that.board.AvailablePositions()
}

// Play validates entry against the available positions, then drops mark into its column.
// Only the column of the entry is used for placement; the drop finds the landing row on its own.
func (that *Game) Play(mark entity.Mark, entry string) (entity.Cell, error) {
	cell, err := ParseEntry(that.board, entry)
	if err != nil {
		return entity.Cell{}, err
	}

	row, err := that.board.Drop(cell.Column, mark)
	if err != nil {
		return entity.Cell{}, err
	}

	return entity.Cell{Row: row, Column: cell.Column}, nil
}

func (that *Game) Evaluate() entity.Outcome {
	return that.board.Evaluate()
}
