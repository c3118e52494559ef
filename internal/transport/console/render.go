package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/console-games/internal/connect4"
	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/tictactoe"
)

const (
	ticTacToeSeparator = "-----------------"
	ticTacToeHeader    = "|R/C| 0 | 1 | 2 |"

	connect4Separator = "---------------------------------"
	connect4Footer    = "|R/C| a | b | c | d | e | f | g |"
)

// RenderTicTacToe draws the board with its header and one labelled line per row.
func RenderTicTacToe(w io.Writer, board *tictactoe.Board) error {
	var sb strings.Builder

	sb.WriteString(ticTacToeSeparator + "\n")
	sb.WriteString(ticTacToeHeader + "\n")
	sb.WriteString(ticTacToeSeparator + "\n")

	for row := 0; row < tictactoe.Size; row++ {
		fmt.Fprintf(&sb, "| %d |", row)
		for col := 0; col < tictactoe.Size; col++ {
			fmt.Fprintf(&sb, " %s |", board.At(entity.Cell{Row: row, Column: col}).Symbol())
		}
		sb.WriteString("\n" + ticTacToeSeparator + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderConnect4 draws the board top row first, so row 1 ends up at the bottom above the column footer.
func RenderConnect4(w io.Writer, board *connect4.Board) error {
	var sb strings.Builder

	for row := connect4.Rows - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "| %c ", connect4.RowLabels[row])
		for col := 0; col < connect4.Columns; col++ {
			fmt.Fprintf(&sb, "| %s ", board.At(entity.Cell{Row: row, Column: col}).Symbol())
		}
		sb.WriteString("|\n" + connect4Separator + "\n")
	}

	sb.WriteString(connect4Footer + "\n\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// formatPositions lists labels as ['a1', 'b1'].
func formatPositions(positions []string) string {
	quoted := make([]string, len(positions))
	for i, position := range positions {
		quoted[i] = "'" + position + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
