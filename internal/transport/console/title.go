package console

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/connect4"
	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/tictactoe"
	"github.com/rocketscienceinc/console-games/internal/usecase"
)

const (
	TicTacToe = "tictactoe"
	Connect4  = "connect4"
)

// board is an engine plus the console-only parts of a game.
type board interface {
	usecase.Engine
	Render(w io.Writer) error
	// Hint is printed before every prompt; empty means nothing is printed.
	Hint() string
	// Selection is printed right after an entry is read.
	Selection() string
	Accepted(entry string, cell entity.Cell) string
}

// Title describes how one game is played on the console.
type Title struct {
	Name          string
	EntryPrompt   string
	RematchPrompt string

	newBoard func() board
}

func TitleByName(name string) (Title, error) {
	switch name {
	case TicTacToe:
		return Title{
			Name:          TicTacToe,
			EntryPrompt:   "Please enter row and column number separated by a comma: ",
			RematchPrompt: "Another game? Enter Y or y for yes. ",
			newBoard:      func() board { return &ticTacToeBoard{Game: tictactoe.NewGame()} },
		}, nil
	case Connect4:
		return Title{
			Name:          Connect4,
			EntryPrompt:   "Please enter column-letter and row-number (e.g., a1): ",
			RematchPrompt: "Another game (y/n): ",
			newBoard:      func() board { return &connect4Board{Game: connect4.NewGame()} },
		}, nil
	default:
		return Title{}, fmt.Errorf("%w: %q", apperror.ErrUnknownGame, name)
	}
}

type ticTacToeBoard struct {
	*tictactoe.Game
}

func (that *ticTacToeBoard) Render(w io.Writer) error {
	return RenderTicTacToe(w, that.Board())
}

func (that *ticTacToeBoard) Hint() string {
	return ""
}

func (that *ticTacToeBoard) Selection() string {
	return ""
}

func (that *ticTacToeBoard) Accepted(_ string, cell entity.Cell) string {
	return fmt.Sprintf("You have entered row #%d \n\t\tand column #%d.\n", cell.Row, cell.Column)
}

type connect4Board struct {
	*connect4.Game
}

func (that *connect4Board) Render(w io.Writer) error {
	return RenderConnect4(w, that.Board())
}

func (that *connect4Board) Hint() string {
	return fmt.Sprintf("Available positions: %s \n\n", formatPositions(that.AvailablePositions()))
}

func (that *connect4Board) Selection() string {
	return "Thank you for your selection,\n"
}

func (that *connect4Board) Accepted(entry string, cell entity.Cell) string {
	return fmt.Sprintf("You have entered column %c \n\t\tand row #%c.\n", entry[0], connect4.RowLabels[cell.Row])
}
