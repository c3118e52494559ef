package entity

type Outcome string

const (
	Ongoing Outcome = "ongoing"
	Win     Outcome = "win"
	Draw    Outcome = "draw"
)

type Phase string

const (
	PhaseAwaitingMove Phase = "awaiting_move"
	PhaseEvaluating   Phase = "evaluating"
	PhaseTerminal     Phase = "terminal"
)

// State is a snapshot of the turn state machine. Player is the mark expected
// to move while awaiting, or the winner once terminal with a Win outcome.
type State struct {
	Phase   Phase   `json:"phase"`
	Player  Mark    `json:"player"`
	Outcome Outcome `json:"outcome"`
}

func InitialState() State {
	return State{
		Phase:   PhaseAwaitingMove,
		Player:  X,
		Outcome: Ongoing,
	}
}

func (that State) IsTerminal() bool {
	return that.Phase == PhaseTerminal
}

// NextState applies the outcome of evaluating the board after current.Player moved.
func NextState(current State, outcome Outcome) State {
	switch outcome {
	case Win:
		return State{Phase: PhaseTerminal, Player: current.Player, Outcome: Win}
	case Draw:
		return State{Phase: PhaseTerminal, Player: Empty, Outcome: Draw}
	default:
		return State{Phase: PhaseAwaitingMove, Player: current.Player.Next(), Outcome: Ongoing}
	}
}
