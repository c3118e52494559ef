package console

import (
	"bytes"
	"testing"

	"github.com/rocketscienceinc/console-games/internal/connect4"
	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTicTacToe(t *testing.T) {
	// Given: a board with X in the centre and O top right
	board := tictactoe.NewBoard()
	require.NoError(t, board.Place(entity.Cell{Row: 1, Column: 1}, entity.X))
	require.NoError(t, board.Place(entity.Cell{Row: 0, Column: 2}, entity.O))

	// When: rendering it
	var out bytes.Buffer
	require.NoError(t, RenderTicTacToe(&out, board))

	// Then: the grid has headers, row labels and separators
	expected := "" +
		"-----------------\n" +
		"|R/C| 0 | 1 | 2 |\n" +
		"-----------------\n" +
		"| 0 |   |   | O |\n" +
		"-----------------\n" +
		"| 1 |   | X |   |\n" +
		"-----------------\n" +
		"| 2 |   |   |   |\n" +
		"-----------------\n"
	assert.Equal(t, expected, out.String())
}

func TestRenderConnect4(t *testing.T) {
	// Given: X dropped into column a, then O into column a and X into column g
	board := connect4.NewBoard()
	_, err := board.Drop(0, entity.X)
	require.NoError(t, err)
	_, err = board.Drop(0, entity.O)
	require.NoError(t, err)
	_, err = board.Drop(6, entity.X)
	require.NoError(t, err)

	// When: rendering it
	var out bytes.Buffer
	require.NoError(t, RenderConnect4(&out, board))

	// Then: row 6 is printed first and row 1 sits just above the footer
	expected := "" +
		"| 6 |   |   |   |   |   |   |   |\n" +
		"---------------------------------\n" +
		"| 5 |   |   |   |   |   |   |   |\n" +
		"---------------------------------\n" +
		"| 4 |   |   |   |   |   |   |   |\n" +
		"---------------------------------\n" +
		"| 3 |   |   |   |   |   |   |   |\n" +
		"---------------------------------\n" +
		"| 2 | O |   |   |   |   |   |   |\n" +
		"---------------------------------\n" +
		"| 1 | X |   |   |   |   |   | X |\n" +
		"---------------------------------\n" +
		"|R/C| a | b | c | d | e | f | g |\n" +
		"\n"
	assert.Equal(t, expected, out.String())
}

func TestFormatPositions(t *testing.T) {
	assert.Equal(t, "['a1', 'b3']", formatPositions([]string{"a1", "b3"}))
	assert.Equal(t, "[]", formatPositions(nil))
}
