package game

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/doom/internal/display"
	"github.com/samdwyer/doom/internal/entity"
	"github.com/samdwyer/doom/internal/input"
	"github.com/samdwyer/doom/internal/rng"
	"github.com/samdwyer/doom/internal/telemetry"
	"github.com/samdwyer/doom/internal/world"
)

const (
	loadedName  = "Loaded Game"
	loadedDepth = 15

	// Smallest play area: a walled room around one floor cell.
	minRows = 3
	minCols = 3
)

var (
	msgWelcome     = display.Message{Short: "Hello %s.", Long: " Welcome to the Dungeons of Doom"}
	msgWelcomeBack = display.Message{Short: "Hello %s.", Long: " Welcome back to the Dungeons of Doom"}
	msgWin         = display.Msg("You win, congratulations!!")
	msgDeath       = display.Message{Short: "You're dead!", Long: " Killed by %s"}
	msgQuit        = display.Msg("You quit with %d gold pieces")
)

// Score is the record of a finished session.
type Score struct {
	Session  string
	Name     string
	Outcome  State
	Cause    string
	Depth    int
	MaxDepth int
	Gold     int
	Seed     int64
	EndedAt  time.Time
}

// ScoreRecorder stores the record of finished sessions.
type ScoreRecorder interface {
	RecordScore(ctx context.Context, s Score) error
}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	display  display.Gateway
	input    input.Source
	logger   *log.Logger
	scores   ScoreRecorder
	session  uuid.UUID
	rng      *rng.RNG
	rngState rng.State
	player   *entity.Player
	level    *Level
	rows     int // Play area, fixed when the session starts
	cols     int
	maxLevel int
	state    State
	cause    string
}

// New creates an uninitialized game. Call NewGame or Load before Play.
func New(cfg Config, d display.Gateway, in input.Source, logger *log.Logger) *Game {
	return &Game{
		cfg:     cfg.withDefaults(),
		display: d,
		input:   in,
		logger:  logger,
		session: uuid.New(),
		state:   StateUninitialized,
	}
}

// SetScoreRecorder sets where finished sessions are recorded.
func (g *Game) SetScoreRecorder(r ScoreRecorder) {
	g.scores = r
}

// NewGame seeds the generator, creates the player and the first level.
func (g *Game) NewGame(ctx context.Context) error {
	if g.state != StateUninitialized {
		return ErrStarted
	}
	if err := g.measure(); err != nil {
		return err
	}

	ctx, span := telemetry.Tracer("game").Start(ctx, "game.new")
	defer span.End()

	if g.cfg.Seed == 0 {
		g.rng = rng.NewFromTime()
	} else {
		g.rng = rng.New(g.cfg.Seed)
	}
	g.start(ctx, g.cfg.Name, 1)
	g.display.Message(msgWelcome, g.player.Name)

	span.SetAttributes(
		attribute.String("game.session", g.session.String()),
		attribute.Int64("game.seed", g.rngState.Initial),
	)
	g.logger.Info("new game", "session", g.session, "seed", g.rngState.Initial, "name", g.player.Name)
	return nil
}

// Load resumes a saved session. Saves are not read yet: the file must
// exist, and play resumes on a fresh level deep in the dungeon.
func (g *Game) Load(ctx context.Context, path string) error {
	if g.state != StateUninitialized {
		return ErrStarted
	}
	if err := g.measure(); err != nil {
		return err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, ErrSaveNotFound)
		}
		return fmt.Errorf("load %s: %w", path, err)
	}

	ctx, span := telemetry.Tracer("game").Start(ctx, "game.load")
	defer span.End()

	g.rng = rng.NewFromTime()
	g.start(ctx, loadedName, loadedDepth)
	g.display.Message(msgWelcomeBack, g.player.Name)

	span.SetAttributes(
		attribute.String("game.session", g.session.String()),
		attribute.String("game.save", path),
	)
	g.logger.Info("loaded game", "session", g.session, "save", path, "seed", g.rngState.Initial)
	return nil
}

// measure fixes the play area for the whole session. Every level of a seed
// is dug on the same grid.
func (g *Game) measure() error {
	rows, cols := g.display.Size()
	if rows < minRows || cols < minCols {
		return fmt.Errorf("play area %dx%d: %w", rows, cols, ErrDisplayTooSmall)
	}
	g.rows, g.cols = rows, cols
	return nil
}

func (g *Game) start(ctx context.Context, name string, depth int) {
	g.rngState = g.rng.State()
	g.player = entity.NewPlayer(name, g.rng)
	g.enter(ctx, depth)
	g.state = StatePlaying
}

// enter builds a fresh level at depth and puts the player in it.
func (g *Game) enter(ctx context.Context, depth int) {
	rows, cols := g.rows, g.cols

	wl := world.NewLevel(depth, rows, cols, g.rng, g.display, g.logger)
	wl.Generate(ctx)
	wl.RevealAll()

	g.level = newLevel(wl, g.player, g.display, g.input, g.logger)
	g.maxLevel = max(g.maxLevel, depth)
	g.player.Enter(g.level, (rows-2)/2, (cols-2)/2)
}

// Play runs the session until it is won or lost. Errors reading input end
// play early and are returned; winning and losing are not errors.
func (g *Game) Play(ctx context.Context) error {
	if g.state != StatePlaying {
		return ErrNotPlaying
	}

	for {
		next, err := g.level.Play(ctx)
		if err != nil {
			var lose *LoseError
			if errors.As(err, &lose) {
				g.end(ctx, StateLost, lose.Cause)
				return nil
			}
			return fmt.Errorf("play level %d: %w", g.level.Depth, err)
		}

		if next == 0 {
			g.end(ctx, StateWon, "")
			return nil
		}
		g.transition(ctx, next)
	}
}

func (g *Game) transition(ctx context.Context, next int) {
	next = min(max(next, 1), MaxLevel)

	ctx, span := telemetry.Tracer("game").Start(ctx, "game.transition")
	defer span.End()
	span.SetAttributes(
		attribute.Int("level.from", g.level.Depth),
		attribute.Int("level.to", next),
	)

	g.logger.Info("level change", "from", g.level.Depth, "to", next)
	g.enter(ctx, next)
}

// end shows the final message, records the score and waits for one more
// key before the session is over.
func (g *Game) end(ctx context.Context, state State, cause string) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.end")
	defer span.End()

	g.state = state
	g.cause = cause

	switch {
	case state == StateWon:
		g.display.Message(msgWin)
	case cause == CauseQuit:
		g.display.Message(msgQuit, g.player.Gold)
	default:
		g.display.Message(msgDeath, cause)
	}
	g.display.Update(g.player.Status(g.level.Depth))

	span.SetAttributes(
		attribute.String("game.outcome", state.String()),
		attribute.String("game.cause", cause),
		attribute.Int("game.max_level", g.maxLevel),
	)
	g.logger.Info("game over", "session", g.session, "outcome", state, "cause", cause,
		"depth", g.level.Depth, "max_level", g.maxLevel)

	if g.scores != nil {
		if err := g.scores.RecordScore(ctx, g.Score()); err != nil {
			span.RecordError(err)
			g.logger.Warn("could not record score", "err", err)
		}
	}

	if _, err := g.input.Next(ctx); err != nil {
		g.logger.Debug("no final key", "err", err)
	}
}

// Score returns the record of the session so far.
func (g *Game) Score() Score {
	s := Score{
		Session:  g.session.String(),
		Outcome:  g.state,
		Cause:    g.cause,
		MaxDepth: g.maxLevel,
		Seed:     g.rngState.Initial,
		EndedAt:  time.Now(),
	}
	if g.player != nil {
		s.Name = g.player.Name
		s.Gold = g.player.Gold
	}
	if g.level != nil {
		s.Depth = g.level.Depth
	}
	return s
}

// State returns the session state.
func (g *Game) State() State {
	return g.state
}

// Cause returns why a lost session ended.
func (g *Game) Cause() string {
	return g.cause
}

// Session returns the unique id of this session.
func (g *Game) Session() uuid.UUID {
	return g.session
}

// Player returns the player, or nil before the game starts.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Level returns the current level, or nil before the game starts.
func (g *Game) Level() *Level {
	return g.level
}

// MaxLevel returns the deepest level reached.
func (g *Game) MaxLevel() int {
	return g.maxLevel
}

// RNGState returns the generator state captured when the session started.
func (g *Game) RNGState() rng.State {
	return g.rngState
}
