// Package game provides the turn loop, level transitions and the session
// state machine.
package game

// State represents the current session state.
type State int

const (
	// StateUninitialized is a session with no player or level yet.
	StateUninitialized State = iota
	// StatePlaying is a session in progress.
	StatePlaying
	// StateWon is a session that ended with the amulet out of the dungeon.
	StateWon
	// StateLost is a session that ended by quitting or dying.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}
