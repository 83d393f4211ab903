package apperror

import "errors"

var (
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrBoardDecided      = errors.New("board is already decided")
	ErrEmptyCandidateSet = errors.New("no candidate cells for opponent move")
	ErrBoardNotFound     = errors.New("board not found")
	ErrGameNotRunning    = errors.New("game is not running")
)
