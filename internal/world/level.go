package world

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/doom/internal/rng"
	"github.com/samdwyer/doom/internal/telemetry"
)

// Drawer renders a single glyph at a grid position.
type Drawer interface {
	Draw(row, col int, glyph rune)
}

// Actor is anything the level can draw at its own position.
type Actor interface {
	Position() (row, col int)
	Glyph() rune
}

// Level is the tile grid for one dungeon depth.
type Level struct {
	Depth int
	Rows  int
	Cols  int
	Tiles [][]Tile

	rng    *rng.RNG
	drawer Drawer
	logger *log.Logger
}

// NewLevel creates a level of the given size with every cell set to Nothing.
func NewLevel(depth, rows, cols int, r *rng.RNG, drawer Drawer, logger *log.Logger) *Level {
	tiles := make([][]Tile, rows)
	for row := range tiles {
		tiles[row] = make([]Tile, cols)
	}

	return &Level{
		Depth:  depth,
		Rows:   rows,
		Cols:   cols,
		Tiles:  tiles,
		rng:    r,
		drawer: drawer,
		logger: logger,
	}
}

// Generate digs the level layout and places the stairs.
func (l *Level) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()

	// A single room filling the whole play area
	l.Dig(Room{Row: 0, Col: 0, Rows: l.Rows, Cols: l.Cols})
	row, col := l.PlaceStairs()

	span.SetAttributes(
		attribute.Int("level.depth", l.Depth),
		attribute.Int("level.rows", l.Rows),
		attribute.Int("level.cols", l.Cols),
		attribute.Int("level.stairs_row", row),
		attribute.Int("level.stairs_col", col),
		attribute.Int64("level.generation_us", time.Since(startTime).Microseconds()),
	)
}

// Dig carves a room: a wall border with distinct corners and a floor interior.
func (l *Level) Dig(room Room) {
	top, bottom := room.Row, room.Bottom()
	left, right := room.Col, room.Right()

	for col := left + 1; col <= right-1; col++ {
		l.SetTile(top, col, WallHorizontal)
		l.SetTile(bottom, col, WallHorizontal)
	}
	for row := top + 1; row <= bottom-1; row++ {
		l.SetTile(row, left, WallVertical)
		l.SetTile(row, right, WallVertical)
		for col := left + 1; col <= right-1; col++ {
			l.SetTile(row, col, Floor)
		}
	}

	l.SetTile(top, left, CornerTopLeft)
	l.SetTile(top, right, CornerTopRight)
	l.SetTile(bottom, left, CornerBottomLeft)
	l.SetTile(bottom, right, CornerBottomRight)
}

// PlaceStairs samples random cells until it finds Floor and turns it into
// Stairs. It does not terminate on a level without floor.
func (l *Level) PlaceStairs() (row, col int) {
	for {
		row = l.rng.Rnd(l.Rows)
		col = l.rng.Rnd(l.Cols)
		if l.Tiles[row][col] == Floor {
			l.Tiles[row][col] = Stairs
			return row, col
		}
	}
}

// InBounds returns true if the position is inside the grid.
func (l *Level) InBounds(row, col int) bool {
	return row >= 0 && row < l.Rows && col >= 0 && col < l.Cols
}

// IsPassable returns true if the given position is inside the grid and not a wall.
func (l *Level) IsPassable(row, col int) bool {
	if !l.InBounds(row, col) {
		l.logger.Warn("passability check outside level",
			"row", row, "col", col, "rows", l.Rows, "cols", l.Cols)
		return false
	}
	return l.Tiles[row][col].Category() != CategoryWall
}

// TileAt returns the tile at the given position, or Nothing outside the grid.
func (l *Level) TileAt(row, col int) Tile {
	if !l.InBounds(row, col) {
		return Nothing
	}
	return l.Tiles[row][col]
}

// SetTile overwrites a cell. Positions outside the grid are ignored.
func (l *Level) SetTile(row, col int, t Tile) bool {
	if !l.InBounds(row, col) {
		return false
	}
	l.Tiles[row][col] = t
	return true
}

// Reveal redraws the tile stored at a position.
func (l *Level) Reveal(row, col int) {
	if !l.InBounds(row, col) {
		return
	}
	l.drawer.Draw(row, col, l.Tiles[row][col].Glyph())
}

// RevealAll redraws the whole grid.
func (l *Level) RevealAll() {
	for row := range l.Tiles {
		for col := range l.Tiles[row] {
			l.drawer.Draw(row, col, l.Tiles[row][col].Glyph())
		}
	}
}

// Draw renders an actor's glyph at its current position.
func (l *Level) Draw(a Actor) {
	row, col := a.Position()
	l.drawer.Draw(row, col, a.Glyph())
}
