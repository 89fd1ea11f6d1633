package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/doom/internal/display"
	"github.com/samdwyer/doom/internal/entity"
	"github.com/samdwyer/doom/internal/gamedata"
	"github.com/samdwyer/doom/internal/world"
)

// Rows outside the play area: the message line on top and the status line
// at the bottom.
const (
	messageRow = 0
	mapTop     = 1
	chromeRows = 2
)

// Renderer draws the game on a Screen. It implements display.Gateway.
// The frame has a fixed size anchored at the top-left corner, whatever
// the size of the terminal, so a seed always digs the same levels.
type Renderer struct {
	screen     *Screen
	palette    *gamedata.Palette
	styles     map[rune]tcell.Style
	rows, cols int
}

var _ display.Gateway = (*Renderer)(nil)

// NewRenderer creates a renderer drawing a rows by cols frame, message and
// status lines included.
func NewRenderer(screen *Screen, palette *gamedata.Palette, rows, cols int) *Renderer {
	styles := make(map[rune]tcell.Style)
	for _, t := range world.AllTiles() {
		styles[t.Glyph()] = palette.Tile(t)
	}
	styles[entity.Glyph] = palette.Player()

	return &Renderer{
		screen:  screen,
		palette: palette,
		styles:  styles,
		rows:    rows,
		cols:    cols,
	}
}

// Draw renders one play area cell. Cells outside the play area are dropped.
func (r *Renderer) Draw(row, col int, glyph rune) {
	if row < 0 || row >= r.rows-chromeRows || col < 0 || col >= r.cols {
		return
	}
	style, ok := r.styles[glyph]
	if !ok {
		style = tcell.StyleDefault
	}
	r.screen.SetContent(col, row+mapTop, glyph, style)
}

// Message shows a message on the top line.
func (r *Renderer) Message(m display.Message, args ...any) {
	r.line(messageRow, m.Text(display.Narrow(r.cols), args...), r.palette.Message())
	r.screen.Show()
}

// ClearMessage blanks the top line.
func (r *Renderer) ClearMessage() {
	r.line(messageRow, "", r.palette.Message())
}

// Update redraws the status line and flushes the frame.
func (r *Renderer) Update(s display.Status) {
	r.line(r.rows-1, s.String(), r.palette.Status())
	r.screen.Show()
}

// Size returns the play area extents.
func (r *Renderer) Size() (rows, cols int) {
	return r.rows - chromeRows, r.cols
}

// line replaces a whole frame row with text.
func (r *Renderer) line(y int, text string, style tcell.Style) {
	x := 0
	for _, ch := range text {
		if x >= r.cols {
			break
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	for ; x < r.cols; x++ {
		r.screen.SetContent(x, y, ' ', style)
	}
}
