package input

// FromRune maps a typed character to a command. Unmapped characters produce
// a KindUnknown command carrying the key.
func FromRune(r rune) Command {
	var c Command
	switch r {
	case 'k':
		c = Move(Up)
	case 'j':
		c = Move(Down)
	case 'h':
		c = Move(Left)
	case 'l':
		c = Move(Right)
	case 'y':
		c = Move(UpLeft)
	case 'u':
		c = Move(UpRight)
	case 'b':
		c = Move(DownLeft)
	case 'n':
		c = Move(DownRight)
	case '.', ' ':
		c = Of(KindRest)
	case 'i':
		c = Of(KindInventory)
	case '>':
		c = Of(KindDescend)
	case '<':
		c = Of(KindAscend)
	case 'Q':
		c = Of(KindQuit)
	default:
		c = Of(KindUnknown)
	}
	c.Key = r
	return c
}
