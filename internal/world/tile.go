// Package world provides the dungeon tile taxonomy and level grid.
package world

// Tile identifies what occupies a single dungeon cell.
type Tile uint8

const (
	// Walls
	Nothing Tile = iota
	WallHorizontal
	WallVertical
	CornerTopLeft
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	// Passages
	Floor
	Tunnel

	// Features
	Stairs
	Door
	Trap

	// Objects
	Armor
	Weapon
	Scroll
	Potion
	Gold
	Food
	Stick
	Ring
	Amulet

	// Monsters, one per letter. Values are contiguous from MonsterA.
	MonsterA
	MonsterB
	MonsterC
	MonsterD
	MonsterE
	MonsterF
	MonsterG
	MonsterH
	MonsterI
	MonsterJ
	MonsterK
	MonsterL
	MonsterM
	MonsterN
	MonsterO
	MonsterP
	MonsterQ
	MonsterR
	MonsterS
	MonsterT
	MonsterU
	MonsterV
	MonsterW
	MonsterX
	MonsterY
	MonsterZ

	numTiles
)

// Category groups tiles by how they affect movement.
type Category uint8

const (
	// CategoryWall is never passable.
	CategoryWall Category = iota
	// CategoryPassage is passable and can hold dropped items.
	CategoryPassage
	// CategoryFeature is passable but cannot hold dropped items.
	CategoryFeature
	// CategoryObject is passable and can be picked up.
	CategoryObject
	// CategoryMonster cannot be walked through.
	CategoryMonster
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryWall:
		return "wall"
	case CategoryPassage:
		return "passage"
	case CategoryFeature:
		return "feature"
	case CategoryObject:
		return "object"
	case CategoryMonster:
		return "monster"
	default:
		return "unknown"
	}
}

type tileInfo struct {
	name     string
	glyph    rune
	category Category
}

var tiles = [numTiles]tileInfo{
	Nothing:           {"Nothing", ' ', CategoryWall},
	WallHorizontal:    {"WallHorizontal", '═', CategoryWall},
	WallVertical:      {"WallVertical", '║', CategoryWall},
	CornerTopLeft:     {"CornerTopLeft", '╔', CategoryWall},
	CornerTopRight:    {"CornerTopRight", '╗', CategoryWall},
	CornerBottomLeft:  {"CornerBottomLeft", '╚', CategoryWall},
	CornerBottomRight: {"CornerBottomRight", '╝', CategoryWall},

	Floor:  {"Floor", '.', CategoryPassage},
	Tunnel: {"Tunnel", '▒', CategoryPassage},

	Stairs: {"Stairs", '≡', CategoryFeature},
	Door:   {"Door", '╬', CategoryFeature},
	Trap:   {"Trap", '♦', CategoryFeature},

	Armor:  {"Armor", '◘', CategoryObject},
	Weapon: {"Weapon", '↑', CategoryObject},
	Scroll: {"Scroll", '♪', CategoryObject},
	Potion: {"Potion", '¡', CategoryObject},
	Gold:   {"Gold", '☼', CategoryObject},
	Food:   {"Food", '♣', CategoryObject},
	Stick:  {"Stick", 'τ', CategoryObject},
	Ring:   {"Ring", '○', CategoryObject},
	Amulet: {"Amulet", '♀', CategoryObject},
}

func init() {
	for t := MonsterA; t <= MonsterZ; t++ {
		letter := rune('A' + int(t-MonsterA))
		tiles[t] = tileInfo{"Monster" + string(letter), letter, CategoryMonster}
	}
}

// Category returns the movement category the tile belongs to.
func (t Tile) Category() Category {
	if t >= numTiles {
		return CategoryWall
	}
	return tiles[t].category
}

// Glyph returns the tile's display character.
func (t Tile) Glyph() rune {
	if t >= numTiles {
		return '?'
	}
	return tiles[t].glyph
}

// String returns the tile name.
func (t Tile) String() string {
	if t >= numTiles {
		return "Unknown"
	}
	return tiles[t].name
}

// Walkable returns true if an actor may step onto the tile.
// Monsters are passable in the grid sense but occupied.
func (t Tile) Walkable() bool {
	switch t.Category() {
	case CategoryPassage, CategoryFeature, CategoryObject:
		return true
	default:
		return false
	}
}

// MonsterTile returns the monster tile for an uppercase letter.
func MonsterTile(letter rune) (Tile, bool) {
	if letter < 'A' || letter > 'Z' {
		return Nothing, false
	}
	return MonsterA + Tile(letter-'A'), true
}

// AllTiles returns every tile value in declaration order.
func AllTiles() []Tile {
	all := make([]Tile, 0, numTiles)
	for t := Tile(0); t < numTiles; t++ {
		all = append(all, t)
	}
	return all
}
