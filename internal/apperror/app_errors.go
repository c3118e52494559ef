package apperror

import "errors"

var (
	ErrInvalidFormat           = errors.New("invalid format")
	ErrOutOfRange              = errors.New("entry out of range")
	ErrNoSuchAvailablePosition = errors.New("no such available position")
	ErrCellOccupied            = errors.New("cell is already occupied")
	ErrGameFinished            = errors.New("game is already finished")
	ErrUnknownGame             = errors.New("unknown game")
)
