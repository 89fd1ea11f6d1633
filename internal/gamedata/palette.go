package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/doom/internal/world"
)

// StyleDef is a color with optional attributes.
type StyleDef struct {
	Color string `json:"color"`
	Bold  bool   `json:"bold,omitempty"`
}

// MonsterDef is the color of the monster shown by one letter.
type MonsterDef struct {
	Letter string `json:"letter"` // Uppercase letter (e.g., "D")
	Color  string `json:"color"`  // Hex or named color
}

// LetterRune returns the letter as a rune.
func (m *MonsterDef) LetterRune() rune {
	if len(m.Letter) == 0 {
		return '?'
	}
	return rune(m.Letter[0])
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Player     StyleDef          `json:"player"`
	Categories map[string]string `json:"categories"` // Category name -> color
	Tiles      map[string]string `json:"tiles"`      // Tile name -> color, overrides the category
	Message    StyleDef          `json:"message"`
	Status     StyleDef          `json:"status"`
	Monsters   []MonsterDef      `json:"monsters"`
}

// Palette resolves tiles to terminal styles.
type Palette struct {
	player  tcell.Style
	message tcell.Style
	status  tcell.Style
	tiles   map[world.Tile]tcell.Style
}

// LoadPalette loads the palette from the embedded palette.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(file)
}

// NewPalette builds a palette. Every tile gets its category color unless
// the file names it directly; monster letters use their own color.
func NewPalette(f PaletteFile) (*Palette, error) {
	p := &Palette{
		tiles: make(map[world.Tile]tcell.Style),
	}

	var err error
	if p.player, err = styleOf(f.Player); err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	if p.message, err = styleOf(f.Message); err != nil {
		return nil, fmt.Errorf("message: %w", err)
	}
	if p.status, err = styleOf(f.Status); err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	byName := make(map[string]world.Tile)
	for _, t := range world.AllTiles() {
		byName[t.String()] = t

		c, err := ParseColor(f.Categories[t.Category().String()])
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", t.Category(), err)
		}
		p.tiles[t] = tcell.StyleDefault.Foreground(c)
	}

	for name, color := range f.Tiles {
		t, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown tile %q", name)
		}
		c, err := ParseColor(color)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", name, err)
		}
		p.tiles[t] = tcell.StyleDefault.Foreground(c)
	}

	for i := range f.Monsters {
		m := &f.Monsters[i]
		t, ok := world.MonsterTile(m.LetterRune())
		if !ok {
			return nil, fmt.Errorf("monster %q is not an uppercase letter", m.Letter)
		}
		c, err := ParseColor(m.Color)
		if err != nil {
			return nil, fmt.Errorf("monster %s: %w", m.Letter, err)
		}
		p.tiles[t] = tcell.StyleDefault.Foreground(c)
	}

	return p, nil
}

func styleOf(d StyleDef) (tcell.Style, error) {
	c, err := ParseColor(d.Color)
	if err != nil {
		return tcell.StyleDefault, err
	}
	return tcell.StyleDefault.Foreground(c).Bold(d.Bold), nil
}

// Tile returns the style a tile is drawn with.
func (p *Palette) Tile(t world.Tile) tcell.Style {
	if s, ok := p.tiles[t]; ok {
		return s
	}
	return tcell.StyleDefault
}

// Player returns the style of the player glyph.
func (p *Palette) Player() tcell.Style {
	return p.player
}

// Message returns the style of the message line.
func (p *Palette) Message() tcell.Style {
	return p.message
}

// Status returns the style of the status line.
func (p *Palette) Status() tcell.Style {
	return p.status
}
