package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/samdwyer/doom/internal/game"
	"github.com/samdwyer/doom/internal/gamedata"
	"github.com/samdwyer/doom/internal/storage"
	"github.com/samdwyer/doom/internal/ui"
)

var (
	flagSeed int64
	flagName string
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagName != "" {
		cfg.PlayerName = flagName
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := checkTerminal(cfg.Screen.Rows, cfg.Screen.Cols); err != nil {
		return err
	}

	logger, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer startTelemetry(ctx, cfg, logger)()

	palette, err := gamedata.LoadPalette()
	if err != nil {
		return fmt.Errorf("load palette: %w", err)
	}

	store, err := storage.Open(cfg.ScoreDB)
	if err != nil {
		logger.Warn("scores will not be recorded", "err", err)
	} else {
		defer store.Close()
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	renderer := ui.NewRenderer(screen, palette, cfg.Screen.Rows, cfg.Screen.Cols)
	g := game.New(cfg.Game(), renderer, ui.NewKeyboard(screen), logger)
	if store != nil {
		g.SetScoreRecorder(store)
	}

	err = start(ctx, g, args)
	if err == nil {
		err = g.Play(ctx)
	}
	screen.Close()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("Interrupted.")
			return nil
		}
		return err
	}

	printOutcome(g.Score())
	return nil
}

func start(ctx context.Context, g *game.Game, args []string) error {
	if len(args) == 1 {
		return g.Load(ctx, args[0])
	}
	return g.NewGame(ctx)
}

// checkTerminal refuses to start on a terminal too small to hold a level.
func checkTerminal(rows, cols int) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("doom must be run in a terminal")
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}
	if width < cols || height < rows {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", width, height, cols, rows)
	}
	return nil
}

func printOutcome(s game.Score) {
	switch {
	case s.Outcome == game.StateWon:
		fmt.Printf("%s escaped with the Amulet of Yendor and %d gold.\n", s.Name, s.Gold)
	case s.Cause == game.CauseQuit:
		fmt.Printf("%s quit on level %d with %d gold.\n", s.Name, s.Depth, s.Gold)
	default:
		fmt.Printf("%s died of %s on level %d.\n", s.Name, s.Cause, s.Depth)
	}
	fmt.Printf("Deepest level: %d  Seed: %d\n", s.MaxDepth, s.Seed)
}
