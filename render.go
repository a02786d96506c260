package navtui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// render repaints the whole screen from scratch: geometry first, then the
// body for the active view, then the footer pinned to the bottom rows.
func (n *NavigationTUI) render() {
	rows, cols := n.terminal.Size()
	width := n.contentWidth(cols)
	left := 0
	if n.config.Layout.CenterHorizontal {
		left = (cols - width) / 2
		if left < 0 {
			left = 0
		}
	}

	n.terminal.ClearScreen()

	var body []renderLine
	if n.state == StateSections {
		body = n.sectionLines(width)
	} else {
		body = n.itemLines(width)
	}

	startRow := n.startRow(rows, len(body))
	if n.config.Layout.ShowBorders {
		n.drawBorder(startRow-1, left, width, len(body))
	}
	for i, line := range body {
		n.terminal.MoveCursor(startRow+i, left+1+line.indent)
		n.terminal.Print(line.text)
	}

	n.renderFooter(rows, cols, width, left)
	n.terminal.Flush()
}

// renderLine is one body row: text possibly carrying SGR codes, indent in
// columns relative to the content area.
type renderLine struct {
	text   string
	indent int
}

// contentWidth derives the usable width from the terminal width: with auto
// resize the terminal width minus margins, clamped to the configured range;
// otherwise the configured maximum.
func (n *NavigationTUI) contentWidth(cols int) int {
	l := n.config.Layout
	if !l.AutoResize {
		return l.MaxContentWidth
	}
	w := cols - 4
	if w > l.MaxContentWidth {
		w = l.MaxContentWidth
	}
	if w < l.MinContentWidth {
		w = l.MinContentWidth
	}
	return w
}

// startRow picks the first body row: vertically centered over the body plus
// the title and footer margins, or a fixed top offset.
func (n *NavigationTUI) startRow(rows, bodyLines int) int {
	if !n.config.Layout.CenterVertical {
		return 1 + n.config.Layout.VerticalPadding
	}
	total := bodyLines + 5 // top margin, title spacing, footer rows
	row := (rows - total) / 2
	if row < 1 {
		row = 1
	}
	return row
}

// centered returns a renderLine whose indent centers visible (the text with
// no escape codes) inside width, carrying styled as the printed text.
func centered(styled, visible string, width int) renderLine {
	indent := (width - runewidth.StringWidth(visible)) / 2
	if indent < 0 {
		indent = 0
	}
	return renderLine{text: styled, indent: indent}
}

func (n *NavigationTUI) sectionLines(width int) []renderLine {
	theme := n.config.Theme
	title := n.config.Text.SectionTitle
	lines := []renderLine{
		centered(n.styleTitle(title), title, width),
		{},
	}

	var colors []RGB
	if theme.UseColors && theme.Gradient != nil {
		colors = theme.Gradient.Colors(len(n.sections), theme.RandomizeGradient)
	}

	for i := range n.sections {
		sec := &n.sections[i]
		label := sec.DisplayString()
		if n.config.Text.ShowCounters {
			label = sec.DisplayStringWithCount()
		}
		text := fmt.Sprintf("%d. %s", i+1, label)
		lines = append(lines, renderLine{text: n.styleEntry(text, i == n.selectionIndex, colors, i)})
	}
	return lines
}

func (n *NavigationTUI) itemLines(width int) []renderLine {
	theme := n.config.Theme
	sec := n.Section(n.sectionIndex)
	if sec == nil {
		return nil
	}

	title := n.config.Text.ItemTitlePrefix + sec.Name
	if n.config.Text.ShowCounters {
		title = fmt.Sprintf("%s (%d/%d selected)", title, sec.SelectedCount(), sec.Len())
	}
	lines := []renderLine{
		centered(n.styleTitle(title), title, width),
		{},
	}

	if sec.Empty() {
		msg := n.config.Text.EmptyMessage
		return append(lines, centered(msg, msg, width))
	}

	start, end := n.PageBounds()
	var colors []RGB
	if theme.UseColors && theme.Gradient != nil {
		colors = theme.Gradient.Colors(end-start, theme.RandomizeGradient)
	}

	for global := start; global < end; global++ {
		item := sec.Item(global)
		local := global - start
		text := item.DisplayString(theme.SelectedPrefix, theme.UnselectedPrefix)
		lines = append(lines, renderLine{text: n.styleEntry(text, local == n.selectionIndex, colors, local)})
	}

	if total := n.TotalPages(); n.config.Text.ShowPageNumbers && total > 1 {
		info := fmt.Sprintf("Page %d/%d", n.page+1, total)
		lines = append(lines, renderLine{}, centered(n.styleDim(info), info, width))
	}
	return lines
}

// renderFooter draws the context description block above the help line. The
// description wraps to the content width and grows upward so its last line
// stays anchored just above the help row.
func (n *NavigationTUI) renderFooter(rows, cols, width, left int) {
	if desc := n.currentDescription(); desc != "" {
		wrapped, count := centerWrap(desc, width, true)
		anchor := rows - 3
		for i, line := range strings.Split(wrapped, "\n") {
			row := anchor - (count - 1) + i
			if row < 1 {
				continue
			}
			n.terminal.MoveCursor(row, left+1)
			n.terminal.Print(n.styleDim(line))
		}
	}

	if n.config.Text.ShowHelp {
		help := n.config.Text.HelpItems
		if n.state == StateSections {
			help = n.config.Text.HelpSections
		}
		line := centered(n.styleDim(help), help, width)
		n.terminal.MoveCursor(rows-1, left+1+line.indent)
		n.terminal.Print(line.text)
	}
}

// currentDescription returns the description of the entry under the cursor,
// if any.
func (n *NavigationTUI) currentDescription() string {
	if n.state == StateSections {
		if sec := n.Section(n.selectionIndex); sec != nil {
			return sec.Description
		}
		return ""
	}
	sec := n.Section(n.sectionIndex)
	if sec == nil {
		return ""
	}
	start, _ := n.PageBounds()
	if item := sec.Item(start + n.selectionIndex); item != nil {
		return item.Description
	}
	return ""
}

func (n *NavigationTUI) drawBorder(top, left, width, bodyLines int) {
	tl, tr, bl, br, h, v := n.config.Theme.Border.runes()
	if top < 1 {
		top = 1
	}
	if left < 1 {
		left = 1
	}
	bottom := top + bodyLines + 1
	horizontal := strings.Repeat(h, width)

	n.terminal.MoveCursor(top, left)
	n.terminal.Print(tl + horizontal + tr)
	for row := top + 1; row < bottom; row++ {
		n.terminal.MoveCursor(row, left)
		n.terminal.Print(v)
		n.terminal.MoveCursor(row, left+width+1)
		n.terminal.Print(v)
	}
	n.terminal.MoveCursor(bottom, left)
	n.terminal.Print(bl + horizontal + br)
}

// --- Styling helpers ---

func (n *NavigationTUI) styleTitle(s string) string {
	if !n.config.Theme.UseColors {
		return s
	}
	return sgrBold + n.config.Theme.Accent.sgr() + s + sgrReset
}

func (n *NavigationTUI) styleDim(s string) string {
	if !n.config.Theme.UseColors {
		return s
	}
	return sgrDim + s + sgrReset
}

// styleEntry renders one list entry, marking the cursor line and applying
// the gradient color for its position when one is configured.
func (n *NavigationTUI) styleEntry(text string, cursor bool, colors []RGB, i int) string {
	marker := "  "
	if cursor {
		marker = "> "
	}
	if !n.config.Theme.UseColors {
		return marker + text
	}

	var color string
	if i < len(colors) {
		c := colors[i]
		color = sgrRGB(c.R, c.G, c.B)
	} else {
		color = n.config.Theme.Accent.sgr()
	}
	if cursor {
		return sgrBold + color + marker + text + sgrReset
	}
	return color + marker + text + sgrReset
}
