package display

// Buffer is an in-memory Gateway. It keeps the last glyph drawn in every
// cell and every message shown, which makes it usable for headless runs and
// tests.
type Buffer struct {
	rows, cols int
	cells      map[[2]int]rune
	messages   []string
	current    string
	status     Status
	updates    int
}

// NewBuffer creates a buffer with the given play area size.
func NewBuffer(rows, cols int) *Buffer {
	return &Buffer{
		rows:  rows,
		cols:  cols,
		cells: make(map[[2]int]rune),
	}
}

// Draw records a glyph at a cell.
func (b *Buffer) Draw(row, col int, glyph rune) {
	b.cells[[2]int{row, col}] = glyph
}

// Message records the composed message text.
func (b *Buffer) Message(m Message, args ...any) {
	text := m.Text(Narrow(b.cols), args...)
	b.messages = append(b.messages, text)
	b.current = text
}

// ClearMessage blanks the current message.
func (b *Buffer) ClearMessage() {
	b.current = ""
}

// Update records the latest status frame.
func (b *Buffer) Update(s Status) {
	b.status = s
	b.updates++
}

// Size returns the play area size.
func (b *Buffer) Size() (rows, cols int) {
	return b.rows, b.cols
}

// Cell returns the last glyph drawn at a cell, and whether any was drawn.
func (b *Buffer) Cell(row, col int) (rune, bool) {
	g, ok := b.cells[[2]int{row, col}]
	return g, ok
}

// Messages returns every message shown so far.
func (b *Buffer) Messages() []string {
	return b.messages
}

// Current returns the message currently on the status line.
func (b *Buffer) Current() string {
	return b.current
}

// Status returns the last status frame.
func (b *Buffer) Status() Status {
	return b.status
}

// Updates returns how many frames were refreshed.
func (b *Buffer) Updates() int {
	return b.updates
}
