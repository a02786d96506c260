package navtui

// Key identifies the kind of a decoded key event.
type Key int

const (
	// KeyNormal is a plain printable character; the event's Char holds it.
	KeyNormal Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeySpace
	KeyEscape
)

// KeyEvent is one decoded keystroke. Char is set only for KeyNormal.
type KeyEvent struct {
	Key  Key
	Char byte
}

func (k Key) String() string {
	switch k {
	case KeyNormal:
		return "normal"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	case KeyEscape:
		return "escape"
	}
	return "unknown"
}
