package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/entity"
)

// Engine validates and applies moves on a board it owns, and evaluates that board.
type Engine interface {
	Play(mark entity.Mark, entry string) (entity.Cell, error)
	Evaluate() entity.Outcome
}

// Turn describes one accepted move and the state it led to.
type Turn struct {
	Move   int          `json:"move"`
	Player entity.Mark  `json:"player"`
	Cell   entity.Cell  `json:"cell"`
	State  entity.State `json:"state"`
}

// Match drives one game from the first move to a win or a draw.
type Match struct {
	id     string
	logger *slog.Logger
	engine Engine

	state entity.State
	moves int
}

func NewMatch(logger *slog.Logger, engine Engine) *Match {
	id := uuid.NewString()

	return &Match{
		id:     id,
		logger: logger.With("component", "match", "match_id", id),
		engine: engine,
		state:  entity.InitialState(),
	}
}

func (that *Match) ID() string {
	return that.id
}

func (that *Match) State() entity.State {
	return that.state
}

// Turn returns the player expected to move.
func (that *Match) Turn() entity.Mark {
	return that.state.Player
}

func (that *Match) Moves() int {
	return that.moves
}

// Winner returns the winning mark, or entity.Empty while ongoing or after a draw.
func (that *Match) Winner() entity.Mark {
	if that.state.Outcome == entity.Win {
		return that.state.Player
	}
	return entity.Empty
}

// Submit plays entry for the current player. A rejected entry keeps the same player on turn.
func (that *Match) Submit(entry string) (*Turn, error) {
	if that.state.IsTerminal() {
		return nil, apperror.ErrGameFinished
	}

	player := that.state.Player

	cell, err := that.engine.Play(player, entry)
	if err != nil {
		that.logger.Debug("Move rejected", "player", player, "entry", entry, "error", err)
		return nil, fmt.Errorf("move rejected: %w", err)
	}

	that.moves++
	that.state.Phase = entity.PhaseEvaluating
	that.state = entity.NextState(that.state, that.engine.Evaluate())

	that.logger.Debug("Move accepted", "player", player, "row", cell.Row, "column", cell.Column, "move", that.moves)

	if that.state.IsTerminal() {
		that.logger.Info("Match finished", "outcome", that.state.Outcome, "winner", that.Winner(), "moves", that.moves)
	}

	return &Turn{
		Move:   that.moves,
		Player: player,
		Cell:   cell,
		State:  that.state,
	}, nil
}
