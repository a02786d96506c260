package navtui

import "sort"

// SectionBuilder assembles a Section through chained calls. It is a value
// type; each call returns the updated builder.
type SectionBuilder struct {
	section Section
}

// BuildSection starts building a section with the given name.
func BuildSection(name string) SectionBuilder {
	return SectionBuilder{section: Section{Name: name}}
}

// Description sets the section description shown in the footer.
func (b SectionBuilder) Description(desc string) SectionBuilder {
	b.section.Description = desc
	return b
}

// AddItem appends an unselected item by name.
func (b SectionBuilder) AddItem(name string) SectionBuilder {
	b.section.Items = append(b.section.Items, NewItem(name))
	return b
}

// AddItemDesc appends an unselected item with a description.
func (b SectionBuilder) AddItemDesc(name, desc string) SectionBuilder {
	b.section.Items = append(b.section.Items, NewItemDesc(name, desc))
	return b
}

// AddSelectedItem appends an item that starts selected.
func (b SectionBuilder) AddSelectedItem(name string) SectionBuilder {
	item := NewItem(name)
	item.Selected = true
	b.section.Items = append(b.section.Items, item)
	return b
}

// AddItems appends one unselected item per name.
func (b SectionBuilder) AddItems(names ...string) SectionBuilder {
	for _, name := range names {
		b.section.Items = append(b.section.Items, NewItem(name))
	}
	return b
}

// Add appends a fully formed item.
func (b SectionBuilder) Add(item SelectableItem) SectionBuilder {
	b.section.Items = append(b.section.Items, item)
	return b
}

// SelectItems marks the named items selected; unknown names are ignored.
func (b SectionBuilder) SelectItems(names ...string) SectionBuilder {
	for _, name := range names {
		for i := range b.section.Items {
			if b.section.Items[i].Name == name {
				b.section.Items[i].Selected = true
			}
		}
	}
	return b
}

// SelectAll marks every item selected.
func (b SectionBuilder) SelectAll() SectionBuilder {
	for i := range b.section.Items {
		b.section.Items[i].Selected = true
	}
	return b
}

// SelectNone clears every selection.
func (b SectionBuilder) SelectNone() SectionBuilder {
	for i := range b.section.Items {
		b.section.Items[i].Selected = false
	}
	return b
}

// SortItems orders items alphabetically by name.
func (b SectionBuilder) SortItems() SectionBuilder {
	sort.SliceStable(b.section.Items, func(i, j int) bool {
		return b.section.Items[i].Name < b.section.Items[j].Name
	})
	return b
}

// ReverseItems reverses the current item order.
func (b SectionBuilder) ReverseItems() SectionBuilder {
	items := b.section.Items
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return b
}

// ApplyToItems runs fn over every item added so far.
func (b SectionBuilder) ApplyToItems(fn func(*SelectableItem)) SectionBuilder {
	for i := range b.section.Items {
		fn(&b.section.Items[i])
	}
	return b
}

// FilterItems keeps only items for which pred returns true.
func (b SectionBuilder) FilterItems(pred func(*SelectableItem) bool) SectionBuilder {
	kept := b.section.Items[:0:0]
	for i := range b.section.Items {
		if pred(&b.section.Items[i]) {
			kept = append(kept, b.section.Items[i])
		}
	}
	b.section.Items = kept
	return b
}

// ItemCallback sets the per-item toggle callback on every item added so far.
func (b SectionBuilder) ItemCallback(fn func(selected bool)) SectionBuilder {
	for i := range b.section.Items {
		b.section.Items[i].OnToggle = fn
	}
	return b
}

// UserData attaches arbitrary data to the section.
func (b SectionBuilder) UserData(data any) SectionBuilder {
	b.section.Data = data
	return b
}

// OnEnter sets the callback fired when the section is entered.
func (b SectionBuilder) OnEnter(fn func()) SectionBuilder {
	b.section.OnEnter = fn
	return b
}

// OnExit sets the callback fired when the section is left.
func (b SectionBuilder) OnExit(fn func()) SectionBuilder {
	b.section.OnExit = fn
	return b
}

// OnItemToggled sets the section-level toggle callback.
func (b SectionBuilder) OnItemToggled(fn func(index int, selected bool)) SectionBuilder {
	b.section.OnItemToggled = fn
	return b
}

// Build returns the assembled section.
func (b SectionBuilder) Build() Section {
	return b.section
}

// Builder assembles a NavigationTUI: configuration tweaks, preset themes
// and layouts, sections and observers, all chainable.
type Builder struct {
	config   Config
	sections []Section

	onSectionSelected SectionSelectedFunc
	onItemToggled     ItemToggledFunc
	onPageChanged     PageChangedFunc
	onStateChanged    StateChangedFunc
	onExit            ExitFunc
	onCustomCommand   CustomCommandFunc

	terminal Terminal
}

// NewBuilder starts a builder from the stock configuration.
func NewBuilder() Builder {
	return Builder{config: DefaultConfig()}
}

// Config replaces the whole configuration.
func (b Builder) Config(config Config) Builder {
	b.config = config
	return b
}

// --- Theme ---

// SelectedPrefix sets the marker drawn before selected items.
func (b Builder) SelectedPrefix(prefix string) Builder {
	b.config.Theme.SelectedPrefix = prefix
	return b
}

// UnselectedPrefix sets the marker drawn before unselected items.
func (b Builder) UnselectedPrefix(prefix string) Builder {
	b.config.Theme.UnselectedPrefix = prefix
	return b
}

// Colors toggles SGR color output.
func (b Builder) Colors(on bool) Builder {
	b.config.Theme.UseColors = on
	return b
}

// Accent sets the highlight color.
func (b Builder) Accent(c Color) Builder {
	b.config.Theme.Accent = c
	return b
}

// Border sets the border rune style.
func (b Builder) Border(style BorderStyle) Builder {
	b.config.Theme.Border = style
	return b
}

// Gradient colors body rows with the preset's interpolated RGB ramp.
func (b Builder) Gradient(g GradientPreset) Builder {
	b.config.Theme.Gradient = &g
	return b
}

// RandomGradient shuffles the gradient ramp on each repaint.
func (b Builder) RandomGradient(g GradientPreset) Builder {
	b.config.Theme.Gradient = &g
	b.config.Theme.RandomizeGradient = true
	return b
}

// --- Layout ---

// ItemsPerPage sets the page size for item view.
func (b Builder) ItemsPerPage(n int) Builder {
	b.config.Layout.ItemsPerPage = n
	return b
}

// ContentWidth sets the content width clamp range.
func (b Builder) ContentWidth(min, max int) Builder {
	b.config.Layout.MinContentWidth = min
	b.config.Layout.MaxContentWidth = max
	return b
}

// Centered toggles horizontal and vertical centering together.
func (b Builder) Centered(on bool) Builder {
	b.config.Layout.CenterHorizontal = on
	b.config.Layout.CenterVertical = on
	return b
}

// AutoResize toggles fitting the content width to the terminal.
func (b Builder) AutoResize(on bool) Builder {
	b.config.Layout.AutoResize = on
	return b
}

// Borders toggles the content border.
func (b Builder) Borders(on bool) Builder {
	b.config.Layout.ShowBorders = on
	return b
}

// --- Text ---

// SectionTitle sets the section list title.
func (b Builder) SectionTitle(title string) Builder {
	b.config.Text.SectionTitle = title
	return b
}

// ItemTitlePrefix sets the string prepended to the section name in item
// view.
func (b Builder) ItemTitlePrefix(prefix string) Builder {
	b.config.Text.ItemTitlePrefix = prefix
	return b
}

// EmptyMessage sets the text shown for a section with no items.
func (b Builder) EmptyMessage(msg string) Builder {
	b.config.Text.EmptyMessage = msg
	return b
}

// HelpText sets the per-view help lines.
func (b Builder) HelpText(sections, items string) Builder {
	b.config.Text.HelpSections = sections
	b.config.Text.HelpItems = items
	return b
}

// ShowHelp toggles the help footer line.
func (b Builder) ShowHelp(on bool) Builder {
	b.config.Text.ShowHelp = on
	return b
}

// ShowCounters toggles the (selected/total) counters.
func (b Builder) ShowCounters(on bool) Builder {
	b.config.Text.ShowCounters = on
	return b
}

// --- Keys ---

// QuickSelect toggles digit shortcuts.
func (b Builder) QuickSelect(on bool) Builder {
	b.config.EnableQuickSelect = on
	return b
}

// VimKeys toggles j/k/h navigation.
func (b Builder) VimKeys(on bool) Builder {
	b.config.EnableVimKeys = on
	return b
}

// Shortcut documents a key handled by the custom command hook.
func (b Builder) Shortcut(key byte, desc string) Builder {
	shortcuts := make(map[byte]string, len(b.config.CustomShortcuts)+1)
	for k, v := range b.config.CustomShortcuts {
		shortcuts[k] = v
	}
	shortcuts[key] = desc
	b.config.CustomShortcuts = shortcuts
	return b
}

// --- Preset themes ---

// Minimal is a monochrome theme with plain ASCII markers.
func (b Builder) Minimal() Builder {
	b.config.Theme = Theme{
		SelectedPrefix:   "* ",
		UnselectedPrefix: "  ",
		Border:           BorderASCII,
	}
	return b
}

// Fancy keeps unicode markers and adds a rainbow gradient.
func (b Builder) Fancy() Builder {
	b.config.Theme = Theme{
		SelectedPrefix:   "✓ ",
		UnselectedPrefix: "  ",
		UseUnicode:       true,
		UseColors:        true,
		Border:           BorderRounded,
		Accent:           Magenta,
		Gradient:         &GradientRainbow,
	}
	return b
}

// Retro uses ASCII markers with green-on-black styling.
func (b Builder) Retro() Builder {
	b.config.Theme = Theme{
		SelectedPrefix:   "[x] ",
		UnselectedPrefix: "[ ] ",
		UseColors:        true,
		Border:           BorderDouble,
		Accent:           Green,
	}
	return b
}

// Modern uses sharp borders with a cool gradient.
func (b Builder) Modern() Builder {
	b.config.Theme = Theme{
		SelectedPrefix:   "● ",
		UnselectedPrefix: "○ ",
		UseUnicode:       true,
		UseColors:        true,
		Border:           BorderSharp,
		Accent:           BrightBlue,
		Gradient:         &GradientOcean,
	}
	return b
}

// --- Preset layouts ---

// Compact packs more rows onto each page with no centering.
func (b Builder) Compact() Builder {
	b.config.Layout = Layout{
		MaxContentWidth: 60,
		MinContentWidth: 40,
		AutoResize:      true,
		ItemsPerPage:    30,
	}
	return b
}

// Comfortable is the stock layout with a smaller page size.
func (b Builder) Comfortable() Builder {
	b.config.Layout = DefaultConfig().Layout
	b.config.Layout.ItemsPerPage = 15
	return b
}

// Fullscreen stretches the content to the whole terminal width.
func (b Builder) Fullscreen() Builder {
	b.config.Layout = Layout{
		MaxContentWidth: 200,
		MinContentWidth: 40,
		AutoResize:      true,
		ItemsPerPage:    25,
	}
	return b
}

// --- Sections and observers ---

// AddSection appends a section.
func (b Builder) AddSection(s Section) Builder {
	b.sections = append(b.sections, s)
	return b
}

// AddSections appends a batch of sections.
func (b Builder) AddSections(sections ...Section) Builder {
	b.sections = append(b.sections, sections...)
	return b
}

// OnSectionSelected registers the section-entered observer.
func (b Builder) OnSectionSelected(fn SectionSelectedFunc) Builder {
	b.onSectionSelected = fn
	return b
}

// OnItemToggled registers the item-toggled observer.
func (b Builder) OnItemToggled(fn ItemToggledFunc) Builder {
	b.onItemToggled = fn
	return b
}

// OnPageChanged registers the page-changed observer.
func (b Builder) OnPageChanged(fn PageChangedFunc) Builder {
	b.onPageChanged = fn
	return b
}

// OnStateChanged registers the state-changed observer.
func (b Builder) OnStateChanged(fn StateChangedFunc) Builder {
	b.onStateChanged = fn
	return b
}

// OnExit registers the exit observer.
func (b Builder) OnExit(fn ExitFunc) Builder {
	b.onExit = fn
	return b
}

// OnCustomCommand registers the pre-default command hook.
func (b Builder) OnCustomCommand(fn CustomCommandFunc) Builder {
	b.onCustomCommand = fn
	return b
}

// WithTerminal substitutes the terminal driver; tests use a scripted fake.
func (b Builder) WithTerminal(term Terminal) Builder {
	b.terminal = term
	return b
}

// Build assembles the NavigationTUI.
func (b Builder) Build() *NavigationTUI {
	term := b.terminal
	if term == nil {
		term = NewTerminal(nil)
	}
	nav := NewWithTerminal(b.config, term)
	nav.AddSections(b.sections...)
	nav.onSectionSelected = b.onSectionSelected
	nav.onItemToggled = b.onItemToggled
	nav.onPageChanged = b.onPageChanged
	nav.onStateChanged = b.onStateChanged
	nav.onExit = b.onExit
	nav.onCustomCommand = b.onCustomCommand
	return nav
}
