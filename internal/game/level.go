package game

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/doom/internal/display"
	"github.com/samdwyer/doom/internal/entity"
	"github.com/samdwyer/doom/internal/input"
	"github.com/samdwyer/doom/internal/telemetry"
	"github.com/samdwyer/doom/internal/world"
)

const (
	// MaxLevel is the deepest level of the dungeon.
	MaxLevel = 99
	// AmuletLevel is the level the Amulet of Yendor is found on.
	AmuletLevel = 26
)

var (
	msgNoStairs = display.Msg("I see no way %s")
	msgBlocked  = display.Msg("Your way is magically blocked")
	msgAmulet   = display.Message{Short: "You find the Amulet of Yendor!", Long: " Now get out of here alive"}
	msgIllegal  = display.Message{Short: "Illegal command", Long: " '%s'"}
)

// Level is the dungeon level the player is currently on, together with the
// collaborators needed to run its turn loop.
type Level struct {
	*world.Level

	player  *entity.Player
	display display.Gateway
	input   input.Source
	logger  *log.Logger
}

func newLevel(wl *world.Level, p *entity.Player, d display.Gateway, in input.Source, logger *log.Logger) *Level {
	return &Level{
		Level:   wl,
		player:  p,
		display: d,
		input:   in,
		logger:  logger,
	}
}

// Tick advances the level one turn.
func (l *Level) Tick() error {
	p := l.player
	if p.SkipTurns > 0 {
		p.SkipTurns--
	}

	p.Heal()

	if err := p.Digest(); err != nil {
		if errors.Is(err, entity.ErrStarved) {
			return &LoseError{Cause: CauseStarvation, Err: err}
		}
		return err
	}
	return nil
}

// Narrow reports whether the level is drawn on a narrow display.
func (l *Level) Narrow() bool {
	return display.Narrow(l.Cols)
}

// Message shows a message on the display.
func (l *Level) Message(m display.Message, args ...any) {
	l.display.Message(m, args...)
}

// CheckStairs tries to take the stairs the player is standing on. It returns
// the depth to go to and whether the player leaves the level.
func (l *Level) CheckStairs(down bool) (int, bool) {
	dir := "up"
	if down {
		dir = "down"
	}

	if l.TileAt(l.player.Position()) != world.Stairs {
		l.Message(msgNoStairs, dir)
		return 0, false
	}

	if down {
		if l.Depth >= AmuletLevel-1 && !l.player.HasAmulet() {
			l.player.AddToPack(entity.NewAmulet())
			l.Message(msgAmulet)
		}
		return min(l.Depth+1, MaxLevel), true
	}

	if !l.player.HasAmulet() {
		l.Message(msgBlocked)
		return 0, false
	}
	return l.Depth - 1, true
}

// Play runs the turn loop until the player takes the stairs. It returns the
// next depth, where 0 means the player left the dungeon. A *LoseError ends
// the session; any other error means input could not be read.
func (l *Level) Play(ctx context.Context) (int, error) {
	ctx, span := telemetry.Tracer("level").Start(ctx, "level.play",
		trace.WithAttributes(attribute.Int("level.depth", l.Depth)))
	defer span.End()

	commands := 0
	for {
		l.display.Update(l.player.Status(l.Depth))

		cmd, err := l.input.Next(ctx)
		if err != nil {
			span.RecordError(err)
			return 0, err
		}
		commands++
		l.display.ClearMessage()

		next, leave, err := l.handle(cmd)
		if err != nil {
			span.SetAttributes(attribute.Int("level.commands", commands))
			return 0, err
		}
		if leave {
			span.SetAttributes(
				attribute.Int("level.commands", commands),
				attribute.Int("level.next", next),
			)
			return next, nil
		}
	}
}

// handle performs a single command.
func (l *Level) handle(cmd input.Command) (next int, leave bool, err error) {
	switch cmd.Kind {
	case input.KindMove:
		drow, dcol := cmd.Dir.Delta()
		return 0, false, l.player.Move(drow, dcol)

	case input.KindRest:
		return 0, false, l.player.Rest()

	case input.KindInventory:
		l.Message(display.Msg(strings.Join(l.player.Inventory(), "  ")))

	case input.KindDescend:
		next, leave = l.CheckStairs(true)

	case input.KindAscend:
		next, leave = l.CheckStairs(false)

	case input.KindQuit:
		return 0, false, &LoseError{Cause: CauseQuit, Err: ErrQuit}

	default:
		l.logger.Debug("illegal command", "key", string(cmd.Key))
		l.Message(msgIllegal, string(cmd.Key))
	}
	return next, leave, nil
}
