package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/usecase"
)

// Session plays matches of one title over a line-based console until the player declines a rematch.
type Session struct {
	logger *slog.Logger
	in     *bufio.Reader
	out    io.Writer
	title  Title
}

func NewSession(logger *slog.Logger, in io.Reader, out io.Writer, title Title) *Session {
	return &Session{
		logger: logger.With("component", "console", "game", title.Name),
		in:     bufio.NewReader(in),
		out:    out,
		title:  title,
	}
}

// Run blocks until the player stops playing, input ends, or ctx is cancelled.
func (that *Session) Run(ctx context.Context) error {
	for {
		if err := that.playMatch(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				that.logger.Warn("Input closed during a match")
				break
			}
			return err
		}

		answer, err := that.readLine(ctx, that.title.RematchPrompt)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		if !strings.EqualFold(answer, "y") {
			break
		}
	}

	that.print("Thank you for playing!\n")

	return nil
}

func (that *Session) playMatch(ctx context.Context) error {
	game := that.title.newBoard()
	match := usecase.NewMatch(that.logger, game)

	that.logger.Info("Match started", "match_id", match.ID())

	that.print("New Game: X Goes First\n\n")
	if err := game.Render(that.out); err != nil {
		return fmt.Errorf("could not render board: %w", err)
	}

	for {
		player := match.Turn()
		that.print(fmt.Sprintf("%s's Turn.\n", player))
		that.print(fmt.Sprintf("Where do you want your %s placed?\n", player))
		that.print(game.Hint())

		entry, err := that.readLine(ctx, that.title.EntryPrompt)
		if err != nil {
			return err
		}
		that.print(game.Selection())

		turn, err := match.Submit(entry)
		if err != nil {
			message, ok := rejectionMessage(err)
			if !ok {
				return fmt.Errorf("could not play %q: %w", entry, err)
			}

			that.print(message)
			continue
		}

		that.print(game.Accepted(entry, turn.Cell))
		if err = game.Render(that.out); err != nil {
			return fmt.Errorf("could not render board: %w", err)
		}

		if turn.State.IsTerminal() {
			that.print(outcomeMessage(turn.State))
			return nil
		}
	}
}

// readLine prints prompt and returns the next input line without its line ending.
// A final line without a newline is returned as is; io.EOF is returned only when nothing is left.
func (that *Session) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	that.print(prompt)

	line, err := that.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (that *Session) print(text string) {
	if text == "" {
		return
	}

	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("could not write to console", "error", err)
	}
}

func rejectionMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, apperror.ErrInvalidFormat):
		return "Invalid format: try again.\nEntry must be in the format row,column (e.g., 0,1).\n", true
	case errors.Is(err, apperror.ErrOutOfRange):
		return "Invalid entry: try again.\nRow & column numbers must be either 0, 1, or 2.\n", true
	case errors.Is(err, apperror.ErrNoSuchAvailablePosition):
		return "\nInvalid entry: try again.\nColumn must be a-g and row must be 1-6. \n\n", true
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken. \n Please make another selection.\n", true
	default:
		return "", false
	}
}

func outcomeMessage(state entity.State) string {
	if state.Outcome == entity.Win {
		return fmt.Sprintf("Game Over: We have a winner!\nPlayer %s wins!\n", state.Player)
	}
	return "Game Over: It's a draw!\n"
}
