// Package display defines the contract between the game engine and whatever
// renders it, plus an in-memory implementation.
package display

import "fmt"

// NarrowCols is the widest display still treated as narrow.
const NarrowCols = 40

// Gateway is everything the engine asks of a display.
type Gateway interface {
	// Draw renders a single cell of the play area.
	Draw(row, col int, glyph rune)
	// Message shows a status line message.
	Message(m Message, args ...any)
	// ClearMessage blanks the status line message.
	ClearMessage()
	// Update refreshes the whole frame.
	Update(s Status)
	// Size returns the play area extents.
	Size() (rows, cols int)
}

// Narrow reports whether a display of cols columns is narrow.
func Narrow(cols int) bool {
	return cols <= NarrowCols
}

// Status is the frame snapshot shown on the status line.
type Status struct {
	Depth      int
	Gold       int
	HP, HPMax  int
	Str        int
	StrMax     int
	ArmorClass int
	XPLevel    int
	XP         int
	Hunger     string
}

// String renders the status line.
func (s Status) String() string {
	line := fmt.Sprintf("Level:%-2d Gold:%-5d Hp:%d(%d) Str:%d(%d) Arm:%-2d Exp:%d/%d",
		s.Depth, s.Gold, s.HP, s.HPMax, s.Str, s.StrMax, s.ArmorClass, s.XPLevel, s.XP)
	if s.Hunger != "" {
		line += "  " + s.Hunger
	}
	return line
}
