// Package entity provides the player character and the items it carries.
package entity

import (
	"fmt"

	"github.com/samdwyer/doom/internal/display"
	"github.com/samdwyer/doom/internal/rng"
	"github.com/samdwyer/doom/internal/world"
)

// Level is the part of the current dungeon level the player interacts with.
type Level interface {
	IsPassable(row, col int) bool
	TileAt(row, col int) world.Tile
	Reveal(row, col int)
	Draw(a world.Actor)
	// Tick advances the world one turn after a successful action.
	Tick() error
	// Narrow reports whether the display is narrow.
	Narrow() bool
	Message(m display.Message, args ...any)
}

const (
	// Glyph is the player's display character.
	Glyph = '@'
	// BareArmorClass is the armor class when wearing no armor.
	BareArmorClass = 1

	startHP  = 12
	startStr = 16
)

// Ring hands.
const (
	RingLeft = iota
	RingRight
)

// Player is the character controlled by the user.
type Player struct {
	Name     string
	Row, Col int

	HP, HPMax   int
	Str, StrMax int
	Gold        int
	XP          int
	Food        int // Food left in stomach, may go negative

	Armor  *Item    // Worn armor, nil when none
	Weapon *Item    // Wielded weapon, nil when none
	Rings  [2]*Item // Left and right hand, nil when empty
	Pack   []*Item  // Inventory in pickup order

	// SkipTurns counts turns the player is incapacitated.
	SkipTurns int

	quiet int // Turns since HP last changed
	level Level
	rng   *rng.RNG
}

// NewPlayer creates a player with starting stats.
func NewPlayer(name string, r *rng.RNG) *Player {
	return &Player{
		Name:   name,
		HP:     startHP,
		HPMax:  startHP,
		Str:    startStr,
		StrMax: startStr,
		Food:   r.Spread(StartFood),
		rng:    r,
	}
}

// Enter places the player on a level and draws it there.
func (p *Player) Enter(l Level, row, col int) {
	p.level = l
	p.Row = row
	p.Col = col
	l.Draw(p)
}

// Level returns the level the player is on.
func (p *Player) Level() Level {
	return p.level
}

// Position returns the current row and column.
func (p *Player) Position() (int, int) {
	return p.Row, p.Col
}

// Glyph returns the player's display character.
func (p *Player) Glyph() rune {
	return Glyph
}

// Move tries to move by the given delta. Blocked moves are free: position,
// food and turn count are left untouched.
func (p *Player) Move(drow, dcol int) error {
	row, col := p.Row+drow, p.Col+dcol

	if !p.level.IsPassable(row, col) {
		return nil
	}
	// Stepping onto a monster would start a fight, which does not exist yet.
	if !p.level.TileAt(row, col).Walkable() {
		return nil
	}

	p.level.Reveal(p.Row, p.Col)
	p.Row, p.Col = row, col
	p.level.Draw(p)

	return p.level.Tick()
}

// Rest spends a turn without moving.
func (p *Player) Rest() error {
	return p.level.Tick()
}

// Heal regenerates hit points over quiet turns.
func (p *Player) Heal() {
	lv := p.XPLevel()
	old := p.HP
	p.quiet++

	if lv < 8 {
		if p.quiet+(lv<<1) > 20 {
			p.HP++
		}
	} else if p.quiet >= 3 {
		p.HP += p.rng.Rnd(lv-7) + 1
	}

	if p.HP != old {
		if p.HP > p.HPMax {
			p.HP = p.HPMax
		}
		p.quiet = 0
	}
}

// ArmorClass returns the worn armor's class, or BareArmorClass.
func (p *Player) ArmorClass() int {
	if p.Armor == nil {
		return BareArmorClass
	}
	return p.Armor.ArmorClass
}

// XPLevel returns the experience level derived from XP.
func (p *Player) XPLevel() int {
	return XPLevel(p.XP)
}

// HasAmulet returns true if the Amulet of Yendor is in the pack.
func (p *Player) HasAmulet() bool {
	for _, it := range p.Pack {
		if it.IsAmulet() {
			return true
		}
	}
	return false
}

// AddToPack appends an item to the inventory.
func (p *Player) AddToPack(it *Item) {
	p.Pack = append(p.Pack, it)
}

// Inventory returns one lettered line per pack item in pickup order.
func (p *Player) Inventory() []string {
	if len(p.Pack) == 0 {
		return []string{"You are empty handed"}
	}
	lines := make([]string, len(p.Pack))
	for i, it := range p.Pack {
		lines[i] = fmt.Sprintf("%c) %s", 'a'+i, it)
	}
	return lines
}

// Status returns the status line snapshot for the given depth.
func (p *Player) Status(depth int) display.Status {
	return display.Status{
		Depth:      depth,
		Gold:       p.Gold,
		HP:         p.HP,
		HPMax:      p.HPMax,
		Str:        p.Str,
		StrMax:     p.StrMax,
		ArmorClass: p.ArmorClass(),
		XPLevel:    p.XPLevel(),
		XP:         p.XP,
		Hunger:     p.HungerStage(),
	}
}

func (p *Player) message(m display.Message, args ...any) {
	if p.level != nil {
		p.level.Message(m, args...)
	}
}
