package navtui

import (
	"errors"
	"fmt"
)

// NavState identifies which of the two views is active.
type NavState int

const (
	// StateSections is the top-level section list.
	StateSections NavState = iota
	// StateItems is the paginated item list of the current section.
	StateItems
)

func (s NavState) String() string {
	if s == StateItems {
		return "items"
	}
	return "sections"
}

// ErrNoSections is returned by Run when no sections have been added.
var ErrNoSections = errors.New("no sections to display")

// Observer callback signatures.
type (
	SectionSelectedFunc func(sectionIndex int, section *Section)
	ItemToggledFunc     func(sectionIndex, itemIndex int, selected bool)
	PageChangedFunc     func(page, totalPages int)
	StateChangedFunc    func(oldState, newState NavState)
	ExitFunc            func(sections []Section)
	// CustomCommandFunc sees every non-quit character before default
	// handling; returning true consumes the event.
	CustomCommandFunc func(char byte, state NavState) bool
)

// NavigationTUI is the two-level selection interface: a list of sections,
// each holding a paginated list of toggleable items. It exclusively owns its
// sections for the lifetime of one interactive session and must be driven
// from a single goroutine.
type NavigationTUI struct {
	sections []Section
	config   Config
	terminal Terminal

	state          NavState
	sectionIndex   int // section the cursor entered (or is on, in section view)
	selectionIndex int // cursor offset within the visible list/page
	page           int

	running     bool
	needsRedraw bool

	onSectionSelected SectionSelectedFunc
	onItemToggled     ItemToggledFunc
	onPageChanged     PageChangedFunc
	onStateChanged    StateChangedFunc
	onExit            ExitFunc
	onCustomCommand   CustomCommandFunc
}

// New creates a NavigationTUI with the given configuration, driving the
// process terminal.
func New(config Config) *NavigationTUI {
	return NewWithTerminal(config, NewTerminal(nil))
}

// NewWithTerminal creates a NavigationTUI on an explicit terminal driver.
// Tests use this with a scripted fake.
func NewWithTerminal(config Config, term Terminal) *NavigationTUI {
	if config.Layout.ItemsPerPage <= 0 {
		config.Layout.ItemsPerPage = DefaultConfig().Layout.ItemsPerPage
	}
	return &NavigationTUI{
		config:      config,
		terminal:    term,
		state:       StateSections,
		needsRedraw: true,
	}
}

// --- Section management ---

// AddSection appends a section. The NavigationTUI takes ownership.
func (n *NavigationTUI) AddSection(s Section) {
	n.sections = append(n.sections, s)
	n.validateIndices()
	n.needsRedraw = true
}

// AddSections appends a batch of sections.
func (n *NavigationTUI) AddSections(sections ...Section) {
	n.sections = append(n.sections, sections...)
	n.validateIndices()
	n.needsRedraw = true
}

// Section returns the section at index, or nil if out of range.
func (n *NavigationTUI) Section(index int) *Section {
	if index < 0 || index >= len(n.sections) {
		return nil
	}
	return &n.sections[index]
}

// SectionByName returns the first section with the given name, or nil.
func (n *NavigationTUI) SectionByName(name string) *Section {
	for i := range n.sections {
		if n.sections[i].Name == name {
			return &n.sections[i]
		}
	}
	return nil
}

// SectionCount returns the number of sections.
func (n *NavigationTUI) SectionCount() int {
	return len(n.sections)
}

// RemoveSection removes the section at index and re-validates the cursor.
func (n *NavigationTUI) RemoveSection(index int) bool {
	if index < 0 || index >= len(n.sections) {
		return false
	}
	n.sections = append(n.sections[:index], n.sections[index+1:]...)
	n.validateIndices()
	n.needsRedraw = true
	return true
}

// RemoveSectionByName removes the first section with the given name.
func (n *NavigationTUI) RemoveSectionByName(name string) bool {
	for i := range n.sections {
		if n.sections[i].Name == name {
			return n.RemoveSection(i)
		}
	}
	return false
}

// ClearSections removes all sections and resets navigation to the initial
// state.
func (n *NavigationTUI) ClearSections() {
	n.sections = nil
	n.sectionIndex = 0
	n.selectionIndex = 0
	n.page = 0
	n.state = StateSections
	n.needsRedraw = true
}

// --- Observer callbacks ---

// SetSectionSelectedFunc registers the section-entered observer.
func (n *NavigationTUI) SetSectionSelectedFunc(fn SectionSelectedFunc) { n.onSectionSelected = fn }

// SetItemToggledFunc registers the item-toggled observer. The item index it
// receives is global within the section, not page-relative.
func (n *NavigationTUI) SetItemToggledFunc(fn ItemToggledFunc) { n.onItemToggled = fn }

// SetPageChangedFunc registers the page-changed observer.
func (n *NavigationTUI) SetPageChangedFunc(fn PageChangedFunc) { n.onPageChanged = fn }

// SetStateChangedFunc registers the state-changed observer; it fires only
// when the state actually differs.
func (n *NavigationTUI) SetStateChangedFunc(fn StateChangedFunc) { n.onStateChanged = fn }

// SetExitFunc registers the exit observer, which receives the final
// sections exactly once after the loop ends.
func (n *NavigationTUI) SetExitFunc(fn ExitFunc) { n.onExit = fn }

// SetCustomCommandFunc registers the pre-default command hook.
func (n *NavigationTUI) SetCustomCommandFunc(fn CustomCommandFunc) { n.onCustomCommand = fn }

// --- Accessors ---

// State returns the active view.
func (n *NavigationTUI) State() NavState { return n.state }

// CurrentSectionIndex returns the index of the section the cursor entered,
// or is on in section view.
func (n *NavigationTUI) CurrentSectionIndex() int { return n.sectionIndex }

// CurrentPage returns the active page in item view.
func (n *NavigationTUI) CurrentPage() int { return n.page }

// CurrentSelectionIndex returns the cursor offset within the visible page
// (item view) or list (section view).
func (n *NavigationTUI) CurrentSelectionIndex() int { return n.selectionIndex }

// Config returns the active configuration.
func (n *NavigationTUI) Config() Config { return n.config }

// --- Configuration updates ---

// UpdateConfig swaps the whole configuration.
func (n *NavigationTUI) UpdateConfig(config Config) {
	if config.Layout.ItemsPerPage <= 0 {
		config.Layout.ItemsPerPage = DefaultConfig().Layout.ItemsPerPage
	}
	n.config = config
	n.needsRedraw = true
}

// UpdateTheme swaps the theme.
func (n *NavigationTUI) UpdateTheme(theme Theme) {
	n.config.Theme = theme
	n.needsRedraw = true
}

// UpdateLayout swaps the layout.
func (n *NavigationTUI) UpdateLayout(layout Layout) {
	if layout.ItemsPerPage <= 0 {
		layout.ItemsPerPage = DefaultConfig().Layout.ItemsPerPage
	}
	n.config.Layout = layout
	n.needsRedraw = true
}

// UpdateText swaps the text configuration.
func (n *NavigationTUI) UpdateText(text TextConfig) {
	n.config.Text = text
	n.needsRedraw = true
}

// --- Selection queries ---

// AllSelections maps section names to their selected item names, omitting
// sections with no selections.
func (n *NavigationTUI) AllSelections() map[string][]string {
	selections := make(map[string][]string)
	for i := range n.sections {
		if names := n.sections[i].SelectedNames(); len(names) > 0 {
			selections[n.sections[i].Name] = names
		}
	}
	return selections
}

// SectionSelections returns the selected item names of one section, in
// display order. An invalid index yields nil.
func (n *NavigationTUI) SectionSelections(index int) []string {
	if index < 0 || index >= len(n.sections) {
		return nil
	}
	return n.sections[index].SelectedNames()
}

// ClearAllSelections deselects every item in every section.
func (n *NavigationTUI) ClearAllSelections() {
	for i := range n.sections {
		n.sections[i].ClearSelections()
	}
	n.needsRedraw = true
}

// ClearSectionSelections deselects every item in one section.
func (n *NavigationTUI) ClearSectionSelections(index int) {
	if index < 0 || index >= len(n.sections) {
		return
	}
	n.sections[index].ClearSelections()
	n.needsRedraw = true
}

// --- Control loop ---

// Run enters raw mode and drives the interface until the user quits or
// Exit is called. It refuses to start with zero sections. The terminal is
// restored on every exit path, and the exit observer then receives the
// final sections exactly once.
func (n *NavigationTUI) Run() error {
	if len(n.sections) == 0 {
		return ErrNoSections
	}

	if err := n.terminal.Setup(); err != nil {
		return fmt.Errorf("terminal setup: %w", err)
	}
	defer n.terminal.Restore()

	n.validateIndices()
	n.needsRedraw = true
	n.running = true

	for n.running {
		if n.needsRedraw {
			n.render()
			n.needsRedraw = false
		}
		ev, err := n.terminal.ReadKey()
		if err != nil {
			break
		}
		n.handleInput(ev)
	}

	n.terminal.Restore()
	if n.onExit != nil {
		n.onExit(n.sections)
	}
	return nil
}

// Exit requests loop termination. The loop stops after the event currently
// being processed.
func (n *NavigationTUI) Exit() {
	n.running = false
}

// --- Navigation ---

// ReturnToSections leaves item view, firing the section's exit callback and
// positioning the section cursor on the section the user came from. No-op
// in section view.
func (n *NavigationTUI) ReturnToSections() {
	if n.state == StateSections {
		return
	}
	if sec := n.Section(n.sectionIndex); sec != nil {
		sec.triggerExit()
	}
	n.changeState(StateSections)
	n.selectionIndex = n.sectionIndex
	n.page = 0
	n.needsRedraw = true
}

// EnterSection switches to item view for the given section: the item cursor
// and page reset, the section's enter callback fires, then the
// section-selected observer. No-op for an invalid index.
func (n *NavigationTUI) EnterSection(index int) {
	if index < 0 || index >= len(n.sections) {
		return
	}
	n.sectionIndex = index
	n.selectionIndex = 0
	n.page = 0
	n.changeState(StateItems)

	sec := &n.sections[index]
	sec.triggerEnter()
	if n.onSectionSelected != nil {
		n.onSectionSelected(index, sec)
	}
	n.needsRedraw = true
}

// GoToPage jumps to page, resetting the in-page cursor and firing the
// page-changed observer. A no-op unless the page is valid and different.
func (n *NavigationTUI) GoToPage(page int) {
	total := n.TotalPages()
	if page < 0 || page >= total || page == n.page {
		return
	}
	n.page = page
	n.selectionIndex = 0
	if n.onPageChanged != nil {
		n.onPageChanged(page, total)
	}
	n.needsRedraw = true
}

// NextPage advances one page.
func (n *NavigationTUI) NextPage() { n.GoToPage(n.page + 1) }

// PreviousPage retreats one page.
func (n *NavigationTUI) PreviousPage() { n.GoToPage(n.page - 1) }

// TotalPages returns the page count of the current section in item view;
// the section list itself does not paginate.
func (n *NavigationTUI) TotalPages() int {
	if n.state != StateItems {
		return 1
	}
	sec := n.Section(n.sectionIndex)
	if sec == nil {
		return 1
	}
	return totalPages(sec.Len(), n.config.Layout.ItemsPerPage)
}

// PageBounds returns the half-open global item range [start, end) of the
// current page, or [0, 0) outside item view.
func (n *NavigationTUI) PageBounds() (start, end int) {
	if n.state != StateItems {
		return 0, 0
	}
	sec := n.Section(n.sectionIndex)
	if sec == nil {
		return 0, 0
	}
	return pageBounds(n.page, sec.Len(), n.config.Layout.ItemsPerPage)
}

// MoveUp moves the cursor up one entry. At the top of a non-first page it
// retreats to the previous page, cursor on that page's last entry; on the
// first page (and in section view) it clamps.
func (n *NavigationTUI) MoveUp() {
	if n.state == StateSections {
		if n.selectionIndex > 0 {
			n.selectionIndex--
		}
	} else {
		if n.selectionIndex > 0 {
			n.selectionIndex--
		} else if n.page > 0 {
			n.GoToPage(n.page - 1)
			start, end := n.PageBounds()
			n.selectionIndex = end - start - 1
		}
	}
	n.needsRedraw = true
}

// MoveDown moves the cursor down one entry. Past the last entry of a
// non-final page it advances to the next page, cursor on its first entry;
// on the final page (and in section view) it clamps.
func (n *NavigationTUI) MoveDown() {
	if n.state == StateSections {
		if n.selectionIndex < len(n.sections)-1 {
			n.selectionIndex++
		}
	} else {
		start, end := n.PageBounds()
		if n.selectionIndex < end-start-1 {
			n.selectionIndex++
		} else if n.page < n.TotalPages()-1 {
			n.GoToPage(n.page + 1)
			n.selectionIndex = 0
		}
	}
	n.needsRedraw = true
}

// SelectCurrentItem activates the entry under the cursor: in section view
// it enters that section, in item view it toggles the current item.
func (n *NavigationTUI) SelectCurrentItem() {
	if n.state == StateSections {
		n.EnterSection(n.selectionIndex)
	} else {
		n.ToggleCurrentItem()
	}
}

// ToggleCurrentItem toggles the item under the cursor in item view, firing
// the item-toggled observer with the item's global index. No-op in section
// view.
func (n *NavigationTUI) ToggleCurrentItem() {
	if n.state != StateItems {
		return
	}
	sec := n.Section(n.sectionIndex)
	if sec == nil {
		return
	}
	start, _ := n.PageBounds()
	global := start + n.selectionIndex
	if sec.ToggleItem(global) {
		if n.onItemToggled != nil {
			if item := sec.Item(global); item != nil {
				n.onItemToggled(n.sectionIndex, global, item.Selected)
			}
		}
		n.needsRedraw = true
	}
}

// --- Input handling ---

func (n *NavigationTUI) handleInput(ev KeyEvent) {
	// The quit key stops the loop before anything else sees the event.
	if ev.Key == KeyNormal && (ev.Char == 'q' || ev.Char == 'Q') {
		n.Exit()
		return
	}

	if n.onCustomCommand != nil && n.onCustomCommand(ev.Char, n.state) {
		return
	}

	switch ev.Key {
	case KeyEscape:
		n.ReturnToSections()

	case KeyUp:
		n.MoveUp()

	case KeyDown:
		n.MoveDown()

	case KeyLeft:
		n.PreviousPage()

	case KeyRight:
		n.NextPage()

	case KeySpace:
		n.ToggleCurrentItem()

	case KeyEnter:
		if n.state == StateItems {
			n.ReturnToSections()
		} else {
			n.SelectCurrentItem()
		}

	case KeyNormal:
		n.handleChar(ev.Char)
	}
}

func (n *NavigationTUI) handleChar(c byte) {
	if c >= '1' && c <= '9' && n.config.EnableQuickSelect {
		n.handleDigit(c)
		return
	}

	if n.state == StateItems {
		switch c {
		case 'b':
			n.ReturnToSections()
			return
		case 'a':
			if sec := n.Section(n.sectionIndex); sec != nil {
				sec.SelectAll()
				n.needsRedraw = true
			}
			return
		case 'n':
			if sec := n.Section(n.sectionIndex); sec != nil {
				sec.ClearSelections()
				n.needsRedraw = true
			}
			return
		}
	}

	if n.config.EnableVimKeys {
		switch c {
		case 'j':
			n.MoveDown()
		case 'k':
			n.MoveUp()
		case 'h':
			n.ReturnToSections()
		}
	}
}

// handleDigit overloads the digit keys by state: section quick select at
// the top level, page jump inside a section.
func (n *NavigationTUI) handleDigit(c byte) {
	num := int(c - '0')
	if n.state == StateSections {
		if num <= len(n.sections) {
			n.EnterSection(num - 1)
		}
	} else {
		n.GoToPage(num - 1)
	}
}

// --- State helpers ---

func (n *NavigationTUI) changeState(newState NavState) {
	if n.state == newState {
		return
	}
	oldState := n.state
	n.state = newState
	if n.onStateChanged != nil {
		n.onStateChanged(oldState, newState)
	}
}

// validateIndices clamps the cursors after any structural mutation: the
// section index into the section list, then the selection index into the
// visible range.
func (n *NavigationTUI) validateIndices() {
	if n.sectionIndex >= len(n.sections) {
		n.sectionIndex = 0
		if len(n.sections) > 0 {
			n.sectionIndex = len(n.sections) - 1
		}
	}
	if total := n.TotalPages(); n.page >= total {
		n.page = total - 1
	}
	n.clampSelection()
}

func (n *NavigationTUI) clampSelection() {
	if n.state == StateSections {
		if n.selectionIndex >= len(n.sections) {
			n.selectionIndex = 0
			if len(n.sections) > 0 {
				n.selectionIndex = len(n.sections) - 1
			}
		}
		return
	}
	start, end := n.PageBounds()
	if visible := end - start; n.selectionIndex >= visible {
		n.selectionIndex = 0
		if visible > 0 {
			n.selectionIndex = visible - 1
		}
	}
}
