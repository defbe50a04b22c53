package apperror

import "errors"

var (
	ErrGameFinished        = errors.New("game is already finished")
	ErrInvalidColumn       = errors.New("invalid column index")
	ErrColumnFull          = errors.New("column is full")
	ErrPlayerNotRegistered = errors.New("player not registered")
	ErrSamePlayer          = errors.New("winner and loser must be different players")
	ErrEmptyName           = errors.New("player name is empty")
	ErrResultNotFound      = errors.New("game result not found")
)
