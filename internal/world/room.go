package world

// Room represents a rectangular room in the dungeon, walls included.
type Room struct {
	Row, Col   int // Top-left corner position
	Rows, Cols int // Dimensions of the room
}

// Bottom returns the row of the bottom wall.
func (r Room) Bottom() int {
	return r.Row + r.Rows - 1
}

// Right returns the column of the right wall.
func (r Room) Right() int {
	return r.Col + r.Cols - 1
}
