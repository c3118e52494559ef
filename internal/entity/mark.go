package entity

// Mark is the content of a board cell, or the player who owns it.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Next returns the player who moves after m. X always moves first.
func (m Mark) Next() Mark {
	if m == X {
		return O
	}
	return X
}

func (m Mark) IsPlayer() bool {
	return m == X || m == O
}

// Symbol is the single character drawn for the mark on a rendered board.
func (m Mark) Symbol() string {
	if m == Empty {
		return " "
	}
	return string(m)
}

// Cell is a resolved (row, column) pair on a board.
type Cell struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}
