package navtui

import "strconv"

// Color is a basic ANSI foreground color (SGR code).
type Color int

const (
	ColorDefault Color = 0
	Black        Color = 30
	Red          Color = 31
	Green        Color = 32
	Yellow       Color = 33
	Blue         Color = 34
	Magenta      Color = 35
	Cyan         Color = 36
	White        Color = 37
	BrightBlack  Color = 90
	BrightRed    Color = 91
	BrightGreen  Color = 92
	BrightYellow Color = 93
	BrightBlue   Color = 94
	BrightMagenta Color = 95
	BrightCyan   Color = 96
	BrightWhite  Color = 97
)

// sgr returns the escape sequence selecting c as the foreground color.
func (c Color) sgr() string {
	if c == ColorDefault {
		return "\x1b[39m"
	}
	return "\x1b[" + strconv.Itoa(int(c)) + "m"
}

const (
	sgrReset   = "\x1b[0m"
	sgrBold    = "\x1b[1m"
	sgrDim     = "\x1b[2m"
	sgrReverse = "\x1b[7m"
)

// sgrRGB returns the escape sequence selecting a 24-bit foreground color.
func sgrRGB(r, g, b uint8) string {
	return "\x1b[38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

// BorderStyle selects the rune set used for the optional content border.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota
	BorderDouble
	BorderSharp
	BorderASCII
)

// runes returns topLeft, topRight, bottomLeft, bottomRight, horizontal,
// vertical for the style.
func (b BorderStyle) runes() (tl, tr, bl, br, h, v string) {
	switch b {
	case BorderDouble:
		return "╔", "╗", "╚", "╝", "═", "║"
	case BorderSharp:
		return "┌", "┐", "└", "┘", "─", "│"
	case BorderASCII:
		return "+", "+", "+", "+", "-", "|"
	}
	return "╭", "╮", "╰", "╯", "─", "│"
}

// Theme controls how items and highlights are drawn.
type Theme struct {
	SelectedPrefix   string // prefix for selected items
	UnselectedPrefix string // prefix for unselected items
	UseUnicode       bool
	UseColors        bool
	Border           BorderStyle
	Accent           Color // highlight color when colors are on

	// Gradient, when non-nil, colors body rows with interpolated RGB.
	Gradient          *GradientPreset
	RandomizeGradient bool
}

// Layout controls geometry: centering, content width limits and page size.
type Layout struct {
	CenterHorizontal bool
	CenterVertical   bool
	MaxContentWidth  int
	MinContentWidth  int
	VerticalPadding  int
	AutoResize       bool // clamp content width to the terminal
	ShowBorders      bool
	ItemsPerPage     int
}

// TextConfig holds the fixed strings of the interface.
type TextConfig struct {
	SectionTitle    string // title of the section list
	ItemTitlePrefix string // prepended to the section name in item view
	EmptyMessage    string // shown for a section with no items
	HelpSections    string
	HelpItems       string
	ShowHelp        bool
	ShowPageNumbers bool
	ShowCounters    bool // per-section (selected/total) counters
}

// Config is the complete configuration of a NavigationTUI.
type Config struct {
	Theme  Theme
	Layout Layout
	Text   TextConfig

	// CustomShortcuts documents keys handled by the OnCustomCommand hook;
	// the map is informational (key → description).
	CustomShortcuts map[byte]string

	EnableQuickSelect bool // digit keys jump to sections/pages
	EnableVimKeys     bool // j/k/h navigation
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Theme: Theme{
			SelectedPrefix:   "✓ ",
			UnselectedPrefix: "  ",
			UseUnicode:       true,
			UseColors:        true,
			Border:           BorderRounded,
			Accent:           Cyan,
		},
		Layout: Layout{
			CenterHorizontal: true,
			CenterVertical:   true,
			MaxContentWidth:  80,
			MinContentWidth:  40,
			VerticalPadding:  2,
			AutoResize:       true,
			ShowBorders:      false,
			ItemsPerPage:     20,
		},
		Text: TextConfig{
			SectionTitle:    "Select Section",
			ItemTitlePrefix: "Section: ",
			EmptyMessage:    "No items in this section.",
			HelpSections:    "Enter - select | q - quit | 1-9 - quick select",
			HelpItems:       "Space - toggle | Enter - select | b/Esc - back | 1-9 - page",
			ShowHelp:        true,
			ShowPageNumbers: true,
			ShowCounters:    true,
		},
		EnableQuickSelect: true,
	}
}
