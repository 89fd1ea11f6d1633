// Package input defines the commands the player can issue and the source
// that produces them.
package input

import (
	"context"
	"errors"
)

// ErrExhausted is returned by a Script that has no commands left.
var ErrExhausted = errors.New("input: no more commands")

// Kind is the type of a player command.
type Kind int

const (
	// KindUnknown is an unrecognized key. It never consumes a turn.
	KindUnknown Kind = iota
	KindMove
	KindRest
	KindInventory
	KindDescend
	KindAscend
	KindQuit
)

// String returns a human-readable command name.
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindMove:
		return "move"
	case KindRest:
		return "rest"
	case KindInventory:
		return "inventory"
	case KindDescend:
		return "descend"
	case KindAscend:
		return "ascend"
	case KindQuit:
		return "quit"
	default:
		return "invalid"
	}
}

// Direction is one of the eight movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

var deltas = [...]struct {
	name       string
	drow, dcol int
}{
	Up:        {"up", -1, 0},
	Down:      {"down", 1, 0},
	Left:      {"left", 0, -1},
	Right:     {"right", 0, 1},
	UpLeft:    {"up-left", -1, -1},
	UpRight:   {"up-right", -1, 1},
	DownLeft:  {"down-left", 1, -1},
	DownRight: {"down-right", 1, 1},
}

// Delta returns the row and column offsets for the direction.
func (d Direction) Delta() (drow, dcol int) {
	if d < 0 || int(d) >= len(deltas) {
		return 0, 0
	}
	return deltas[d].drow, deltas[d].dcol
}

// String returns the direction name.
func (d Direction) String() string {
	if d < 0 || int(d) >= len(deltas) {
		return "none"
	}
	return deltas[d].name
}

// Command is a single logical player command.
type Command struct {
	Kind Kind
	Dir  Direction // Only meaningful for KindMove
	Key  rune      // The key that produced the command, when known
}

// Move returns a movement command.
func Move(d Direction) Command {
	return Command{Kind: KindMove, Dir: d}
}

// Of returns a non-movement command.
func Of(k Kind) Command {
	return Command{Kind: k}
}

// Source produces player commands, blocking until one is available.
type Source interface {
	Next(ctx context.Context) (Command, error)
}

// Script is a Source that replays a fixed list of commands.
type Script struct {
	commands []Command
	pos      int
}

// NewScript creates a scripted source.
func NewScript(commands ...Command) *Script {
	return &Script{commands: commands}
}

// Next returns the next scripted command, or ErrExhausted.
func (s *Script) Next(ctx context.Context) (Command, error) {
	if err := ctx.Err(); err != nil {
		return Command{}, err
	}
	if s.pos >= len(s.commands) {
		return Command{}, ErrExhausted
	}
	c := s.commands[s.pos]
	s.pos++
	return c, nil
}

// Remaining returns how many commands have not been read.
func (s *Script) Remaining() int {
	return len(s.commands) - s.pos
}
