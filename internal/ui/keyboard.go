package ui

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/doom/internal/input"
)

// ErrClosed is returned when reading keys from a closed screen.
var ErrClosed = errors.New("screen closed")

// Keyboard reads commands from a Screen. It implements input.Source.
type Keyboard struct {
	screen *Screen
}

var _ input.Source = (*Keyboard)(nil)

// NewKeyboard creates a command source for the given screen.
func NewKeyboard(screen *Screen) *Keyboard {
	return &Keyboard{screen: screen}
}

// Next blocks until a key maps to a command. Keys with no meaning at all,
// such as function keys, are skipped.
func (k *Keyboard) Next(ctx context.Context) (input.Command, error) {
	stop := context.AfterFunc(ctx, func() {
		_ = k.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		if err := ctx.Err(); err != nil {
			return input.Command{}, err
		}

		switch ev := k.screen.PollEvent().(type) {
		case nil:
			return input.Command{}, ErrClosed
		case *tcell.EventResize:
			k.screen.Sync()
		case *tcell.EventKey:
			if cmd, ok := commandFor(ev); ok {
				return cmd, nil
			}
		}
	}
}

var specialKeys = map[tcell.Key]input.Command{
	tcell.KeyUp:    input.Move(input.Up),
	tcell.KeyDown:  input.Move(input.Down),
	tcell.KeyLeft:  input.Move(input.Left),
	tcell.KeyRight: input.Move(input.Right),
	tcell.KeyHome:  input.Move(input.UpLeft),
	tcell.KeyPgUp:  input.Move(input.UpRight),
	tcell.KeyEnd:   input.Move(input.DownLeft),
	tcell.KeyPgDn:  input.Move(input.DownRight),
	tcell.KeyCtrlC: input.Of(input.KindQuit),
}

func commandFor(ev *tcell.EventKey) (input.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		return input.FromRune(ev.Rune()), true
	}
	cmd, ok := specialKeys[ev.Key()]
	return cmd, ok
}
