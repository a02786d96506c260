package navtui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// centerLine left-pads s so it sits centered in width columns. The pad
// floors and never goes negative, so over-wide lines come back untouched.
func centerLine(s string, width int) string {
	pad := (width - runewidth.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// centerWrap lays out text for a content area of the given width: explicit
// newlines split lines, lines exceeding width soft-wrap at their last space,
// and every emitted line is centered independently. A line with no space
// stays unbroken even when it overflows. Returns the laid-out text (no
// trailing newline) and the number of emitted lines, which callers use to
// anchor blocks upward from a fixed bottom row.
//
// When centering is disabled the text passes through unchanged as one line.
func centerWrap(text string, width int, center bool) (string, int) {
	if !center {
		return text, 1
	}

	var lines []string
	line := make([]rune, 0, width)

	for _, r := range text {
		if r == '\n' {
			lines = append(lines, centerLine(string(line), width))
			line = line[:0]
			continue
		}

		line = append(line, r)

		if runewidth.StringWidth(string(line)) > width {
			// Break at the last space, keeping the remainder accumulating.
			// No space means the line stays whole until it ends naturally.
			brk := -1
			for i := len(line) - 1; i >= 0; i-- {
				if line[i] == ' ' {
					brk = i
					break
				}
			}
			if brk >= 0 {
				lines = append(lines, centerLine(string(line[:brk]), width))
				line = append(line[:0], line[brk+1:]...)
			}
		}
	}

	if len(line) > 0 {
		lines = append(lines, centerLine(string(line), width))
	}

	return strings.Join(lines, "\n"), len(lines)
}
