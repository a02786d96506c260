package navtui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// Terminal is the capability set the navigation loop consumes. The POSIX
// implementation below drives a real tty; tests substitute a scripted fake.
type Terminal interface {
	// Setup puts the terminal into raw mode. Restore undoes it; the two are
	// paired exactly once per Run.
	Setup() error
	Restore() error

	// Size returns the terminal dimensions in character cells.
	Size() (rows, cols int)

	ClearScreen()
	// MoveCursor positions the cursor (1-based row and column).
	MoveCursor(row, col int)
	// Print writes text at the current cursor position. Output is buffered
	// until Flush.
	Print(s string)
	Flush()

	// ReadKey blocks until one key event is available.
	ReadKey() (KeyEvent, error)
}

// debugInput enables key decode tracing via the NAVTUI_DEBUG env var.
var debugInput = os.Getenv("NAVTUI_DEBUG") != ""

// ANSITerminal drives a POSIX terminal with raw-mode input and
// cursor-addressed ANSI output. Output accumulates in an internal buffer and
// reaches the terminal on Flush, so a frame lands in one write.
type ANSITerminal struct {
	in  *os.File
	out io.Writer
	fd  int

	origTermios *unix.Termios
	inRawMode   bool

	buf bytes.Buffer
}

// NewTerminal creates a terminal writing to w. Pass nil to use os.Stdout.
// Input always comes from os.Stdin.
func NewTerminal(w io.Writer) *ANSITerminal {
	if w == nil {
		w = os.Stdout
	}
	return &ANSITerminal{
		in:  os.Stdin,
		out: w,
		fd:  int(os.Stdin.Fd()),
	}
}

// Setup saves the current termios state and enters raw mode: no echo, no
// canonical buffering, byte-at-a-time reads. It also clears the screen and
// hides the cursor.
func (t *ANSITerminal) Setup() error {
	if t.inRawMode {
		return nil
	}

	termios, err := unix.IoctlGetTermios(t.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("failed to get termios: %w", err)
	}
	t.origTermios = termios

	raw := *termios
	// Input flags: disable break, CR to NL, parity, strip, flow control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Local flags: disable echo, canonical mode, signals, extended input
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Control chars: min bytes = 1, timeout = 0
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	t.inRawMode = true

	t.buf.WriteString("\x1b[2J\x1b[H") // clear, home
	t.buf.WriteString("\x1b[?25l")     // hide cursor
	t.Flush()
	return nil
}

// Restore shows the cursor, resets formatting, and puts the terminal back
// into its original mode.
func (t *ANSITerminal) Restore() error {
	if !t.inRawMode {
		return nil
	}

	t.buf.WriteString("\x1b[?25h") // show cursor
	t.buf.WriteString("\x1b[0m")   // reset formatting
	t.Flush()

	if t.origTermios != nil {
		if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, t.origTermios); err != nil {
			return fmt.Errorf("failed to restore termios: %w", err)
		}
	}
	t.inRawMode = false
	return nil
}

// Size returns the terminal dimensions, falling back to 24x80 when the
// ioctl fails (e.g. output is not a tty).
func (t *ANSITerminal) Size() (rows, cols int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 24, 80
	}
	return int(ws.Row), int(ws.Col)
}

// ClearScreen clears the display and homes the cursor.
func (t *ANSITerminal) ClearScreen() {
	t.buf.WriteString("\x1b[2J\x1b[H")
}

// MoveCursor positions the cursor at the 1-based row and column.
func (t *ANSITerminal) MoveCursor(row, col int) {
	t.buf.WriteString("\x1b[")
	t.buf.WriteString(strconv.Itoa(row))
	t.buf.WriteByte(';')
	t.buf.WriteString(strconv.Itoa(col))
	t.buf.WriteByte('H')
}

// Print appends text to the output buffer.
func (t *ANSITerminal) Print(s string) {
	t.buf.WriteString(s)
}

// Flush writes the accumulated buffer to the terminal in one write.
func (t *ANSITerminal) Flush() {
	if t.buf.Len() > 0 {
		t.out.Write(t.buf.Bytes())
		t.buf.Reset()
	}
}

// readByte blocks for one byte of input.
func (t *ANSITerminal) readByte() (byte, error) {
	var b [1]byte
	n, err := t.in.Read(b[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return b[0], nil
}

// pendingInput reports whether another input byte is already available,
// without blocking. Used to tell a lone Escape press from the lead byte of
// an escape sequence.
func (t *ANSITerminal) pendingInput() bool {
	fds := []unix.PollFd{{Fd: int32(t.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 10) // milliseconds
	return err == nil && n > 0
}

// ReadKey blocks until one key event arrives and decodes it. Escape
// sequences for the arrow keys collapse into their Key kinds; unrecognized
// sequences and control bytes come back as KeyNormal with a zero Char,
// which the navigation layer ignores.
func (t *ANSITerminal) ReadKey() (KeyEvent, error) {
	b, err := t.readByte()
	if err != nil {
		return KeyEvent{}, err
	}

	if b == 0x1b {
		ev, err := t.readEscape()
		if err != nil {
			return KeyEvent{}, err
		}
		if debugInput {
			fmt.Fprintf(os.Stderr, "navtui: key %s\n", ev.Key)
		}
		return ev, nil
	}

	ev := decodeByte(b)
	if debugInput {
		fmt.Fprintf(os.Stderr, "navtui: key %s char %q\n", ev.Key, ev.Char)
	}
	return ev, nil
}

// readEscape decodes the remainder of an escape sequence after 0x1b.
func (t *ANSITerminal) readEscape() (KeyEvent, error) {
	if !t.pendingInput() {
		return KeyEvent{Key: KeyEscape}, nil
	}

	b, err := t.readByte()
	if err != nil {
		return KeyEvent{}, err
	}
	if b == 0x1b {
		return KeyEvent{Key: KeyEscape}, nil
	}
	if b != '[' && b != 'O' {
		return KeyEvent{Key: KeyNormal}, nil
	}

	final, err := t.readByte()
	if err != nil {
		return KeyEvent{}, err
	}
	switch final {
	case 'A':
		return KeyEvent{Key: KeyUp}, nil
	case 'B':
		return KeyEvent{Key: KeyDown}, nil
	case 'C':
		return KeyEvent{Key: KeyRight}, nil
	case 'D':
		return KeyEvent{Key: KeyLeft}, nil
	case '3', '5', '6':
		// Delete / PgUp / PgDn carry a trailing '~'.
		if t.pendingInput() {
			t.readByte()
		}
		return KeyEvent{Key: KeyNormal}, nil
	}
	return KeyEvent{Key: KeyNormal}, nil
}

func decodeByte(b byte) KeyEvent {
	switch b {
	case '\r', '\n':
		return KeyEvent{Key: KeyEnter}
	case ' ':
		return KeyEvent{Key: KeySpace}
	case 0x03: // Ctrl-C behaves like Escape in raw mode
		return KeyEvent{Key: KeyEscape}
	}
	if b >= 32 && b <= 126 {
		return KeyEvent{Key: KeyNormal, Char: b}
	}
	return KeyEvent{Key: KeyNormal}
}
