package navtui

import (
	"fmt"
	"sort"
)

// Section is a named, ordered group of selectable items. Item order is the
// canonical display and pagination order; it changes only through explicit
// add/remove/sort operations.
type Section struct {
	Name        string
	Description string
	Items       []SelectableItem
	Data        any

	// Lifecycle callbacks.
	OnEnter func()
	OnExit  func()

	// OnItemToggled fires with the item's index in this section and its new
	// state whenever any item changes state through the section. This is
	// separate from each item's own OnToggle.
	OnItemToggled func(index int, selected bool)
}

// NewSection creates an empty section.
func NewSection(name string) Section {
	return Section{Name: name}
}

// NewSectionDesc creates an empty section with a description.
func NewSectionDesc(name, description string) Section {
	return Section{Name: name, Description: description}
}

// AddItem appends an item.
func (s *Section) AddItem(item SelectableItem) {
	s.Items = append(s.Items, item)
}

// AddItemName appends a bare item with the given name.
func (s *Section) AddItemName(name string) {
	s.Items = append(s.Items, SelectableItem{Name: name})
}

// AddItems appends a batch of items.
func (s *Section) AddItems(items ...SelectableItem) {
	s.Items = append(s.Items, items...)
}

// AddItemNames appends one bare item per name, in order.
func (s *Section) AddItemNames(names ...string) {
	for _, name := range names {
		s.Items = append(s.Items, SelectableItem{Name: name})
	}
}

// Len returns the number of items.
func (s *Section) Len() int {
	return len(s.Items)
}

// Empty reports whether the section has no items.
func (s *Section) Empty() bool {
	return len(s.Items) == 0
}

// Item returns the item at index, or nil if out of range.
func (s *Section) Item(index int) *SelectableItem {
	if index < 0 || index >= len(s.Items) {
		return nil
	}
	return &s.Items[index]
}

// ItemByName returns the first item with the given name, or nil.
func (s *Section) ItemByName(name string) *SelectableItem {
	for i := range s.Items {
		if s.Items[i].Name == name {
			return &s.Items[i]
		}
	}
	return nil
}

// ItemByID returns the first item with the given id, or nil. Ids are not
// deduplicated, so with the default id of 0 this can match any item that
// was never assigned one.
func (s *Section) ItemByID(id int) *SelectableItem {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// ToggleItem toggles the item at index. Returns false if out of range.
func (s *Section) ToggleItem(index int) bool {
	if index < 0 || index >= len(s.Items) {
		return false
	}
	state := s.Items[index].Toggle()
	if s.OnItemToggled != nil {
		s.OnItemToggled(index, state)
	}
	return true
}

// SetItemSelected sets the item's state explicitly. Returns true only if
// the state actually changed.
func (s *Section) SetItemSelected(index int, selected bool) bool {
	if index < 0 || index >= len(s.Items) {
		return false
	}
	changed := s.Items[index].SetSelected(selected)
	if changed && s.OnItemToggled != nil {
		s.OnItemToggled(index, selected)
	}
	return changed
}

// SelectedCount returns the number of selected items.
func (s *Section) SelectedCount() int {
	n := 0
	for i := range s.Items {
		if s.Items[i].Selected {
			n++
		}
	}
	return n
}

// SelectedNames returns the names of selected items in display order.
func (s *Section) SelectedNames() []string {
	var names []string
	for i := range s.Items {
		if s.Items[i].Selected {
			names = append(names, s.Items[i].Name)
		}
	}
	return names
}

// SelectedItems returns copies of the selected items in display order.
func (s *Section) SelectedItems() []SelectableItem {
	var items []SelectableItem
	for i := range s.Items {
		if s.Items[i].Selected {
			items = append(items, s.Items[i])
		}
	}
	return items
}

// SelectedIndices returns the indices of selected items in display order.
func (s *Section) SelectedIndices() []int {
	var indices []int
	for i := range s.Items {
		if s.Items[i].Selected {
			indices = append(indices, i)
		}
	}
	return indices
}

// ClearSelections deselects every item, firing toggle callbacks for the
// items that were selected.
func (s *Section) ClearSelections() {
	for i := range s.Items {
		if s.Items[i].Selected {
			s.Items[i].SetSelected(false)
			if s.OnItemToggled != nil {
				s.OnItemToggled(i, false)
			}
		}
	}
}

// SelectAll selects every item, firing toggle callbacks for the items that
// were unselected.
func (s *Section) SelectAll() {
	for i := range s.Items {
		if !s.Items[i].Selected {
			s.Items[i].SetSelected(true)
			if s.OnItemToggled != nil {
				s.OnItemToggled(i, true)
			}
		}
	}
}

// InvertSelections toggles every item.
func (s *Section) InvertSelections() {
	for i := range s.Items {
		state := s.Items[i].Toggle()
		if s.OnItemToggled != nil {
			s.OnItemToggled(i, state)
		}
	}
}

// RemoveItem removes the item at index. Returns false if out of range.
func (s *Section) RemoveItem(index int) bool {
	if index < 0 || index >= len(s.Items) {
		return false
	}
	s.Items = append(s.Items[:index], s.Items[index+1:]...)
	return true
}

// RemoveItemByName removes the first item with the given name.
func (s *Section) RemoveItemByName(name string) bool {
	for i := range s.Items {
		if s.Items[i].Name == name {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return true
		}
	}
	return false
}

// ClearItems removes all items.
func (s *Section) ClearItems() {
	s.Items = nil
}

// SortByName sorts items lexicographically by name.
func (s *Section) SortByName() {
	sort.SliceStable(s.Items, func(i, j int) bool {
		return s.Items[i].Name < s.Items[j].Name
	})
}

// SortBySelection partitions items by selection state, keeping relative
// order within each group.
func (s *Section) SortBySelection(selectedFirst bool) {
	sort.SliceStable(s.Items, func(i, j int) bool {
		if selectedFirst {
			return s.Items[i].Selected && !s.Items[j].Selected
		}
		return !s.Items[i].Selected && s.Items[j].Selected
	})
}

// DisplayString returns "name - description", or just the name.
func (s *Section) DisplayString() string {
	if s.Description == "" {
		return s.Name
	}
	return s.Name + " - " + s.Description
}

// DisplayStringWithCount appends a "(selected/total)" counter for non-empty
// sections.
func (s *Section) DisplayStringWithCount() string {
	if len(s.Items) == 0 {
		return s.DisplayString()
	}
	return fmt.Sprintf("%s (%d/%d)", s.DisplayString(), s.SelectedCount(), s.Len())
}

// HasData reports whether a user payload is attached.
func (s *Section) HasData() bool {
	return s.Data != nil
}

func (s *Section) triggerEnter() {
	if s.OnEnter != nil {
		s.OnEnter()
	}
}

func (s *Section) triggerExit() {
	if s.OnExit != nil {
		s.OnExit()
	}
}
