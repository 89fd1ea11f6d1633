package game

import (
	"errors"
	"fmt"
)

var (
	// ErrQuit is the cause of a session the player quit.
	ErrQuit = errors.New("quit")
	// ErrNotPlaying is returned when playing a session that is not in progress.
	ErrNotPlaying = errors.New("game is not in progress")
	// ErrStarted is returned when starting a session twice.
	ErrStarted = errors.New("game already started")
	// ErrSaveNotFound is returned when loading a save file that does not exist.
	ErrSaveNotFound = errors.New("save file not found")
	// ErrDisplayTooSmall is returned when the play area cannot hold a room
	// with a floor.
	ErrDisplayTooSmall = errors.New("display too small")
)

// Causes of a lost session.
const (
	CauseQuit       = "quit"
	CauseStarvation = "starvation"
)

// LoseError ends a session in defeat.
type LoseError struct {
	Cause string // Shown to the player, e.g. "starvation"
	Err   error
}

func (e *LoseError) Error() string {
	return fmt.Sprintf("lost: %s", e.Cause)
}

func (e *LoseError) Unwrap() error {
	return e.Err
}
